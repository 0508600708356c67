package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJulianCrossCalendar checks that the ISO date 1970-01-01 shares a day
// position with the Julian date 1969-12-19.
func TestJulianCrossCalendar(t *testing.T) {
	isoDays := ISO().DaysSinceEpoch(PackYearMonthDay(1970, 1, 1))
	julianDays := Julian().DaysSinceEpoch(PackYearMonthDay(1969, 12, 19))
	assert.Equal(t, isoDays, julianDays)
}

func TestJulianLeapYear(t *testing.T) {
	sys := Julian()
	assert.True(t, sys.IsLeapYear(1900)) // Julian has no century exception.
	assert.True(t, sys.IsLeapYear(2000))
	assert.False(t, sys.IsLeapYear(2001))
}

func TestJulianRoundTrip(t *testing.T) {
	sys := Julian()
	for year := 1800; year < 2200; year++ {
		for _, month := range []int{1, 2, 6, 12} {
			ymd := PackYearMonthDay(year, month, 10)
			days := sys.DaysSinceEpoch(ymd)
			got := sys.YearMonthDayFromDaysSinceEpoch(days)
			require.Equal(t, ymd, got)
		}
	}
}
