package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTimeOfAndClock(t *testing.T) {
	lt := LocalTimeOf(13, 45, 30, 500)
	hour, min, sec := lt.Clock()
	assert.Equal(t, 13, hour)
	assert.Equal(t, 45, min)
	assert.Equal(t, 30, sec)
	assert.Equal(t, 500, lt.Nanosecond())
}

func TestLocalTimeOfPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { LocalTimeOf(24, 0, 0, 0) })
	assert.Panics(t, func() { LocalTimeOf(0, 60, 0, 0) })
}

func TestLocalTimeWrap(t *testing.T) {
	lt := LocalTimeOf(23, 30, 0, 0)
	got := lt.PlusHours(2)
	assert.Equal(t, LocalTimeOf(1, 30, 0, 0), got)
}

func TestLocalTimeCompare(t *testing.T) {
	a := LocalTimeOf(1, 0, 0, 0)
	b := LocalTimeOf(2, 0, 0, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestLocalTimePlusRejectsDateComponent(t *testing.T) {
	_, err := Midnight.Plus(PeriodOfDays(1))
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestLocalTimeString(t *testing.T) {
	assert.Equal(t, "00:00:00", Midnight.String())
	assert.Equal(t, "13:45:30", LocalTimeOf(13, 45, 30, 0).String())
}
