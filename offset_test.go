package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOffsetArithmetic verifies signed addition with reduction.
func TestOffsetArithmetic(t *testing.T) {
	a := OffsetOfHoursMinutes(5, 30)
	b := OffsetOfHoursMinutes(-2, 0)
	want := OffsetOfHoursMinutes(3, 30)
	assert.Equal(t, want, a.Plus(b))
}

func TestOffsetString(t *testing.T) {
	assert.Equal(t, "Z", UTC.String())
	assert.Equal(t, "+05:30", OffsetOfHoursMinutes(5, 30).String())
	assert.Equal(t, "-00:30", OffsetOfHoursMinutes(0, -30).String())
}

func TestOffsetWrap(t *testing.T) {
	// For all offsets, -24h < o < +24h.
	o := OffsetOfSeconds(25 * 3600)
	assert.Less(t, o.Seconds(), secondsPerDay)
	assert.Greater(t, o.Seconds(), -secondsPerDay)
}
