package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOLeapYear(t *testing.T) {
	sys := ISO()
	assert.True(t, sys.IsLeapYear(2000))
	assert.False(t, sys.IsLeapYear(1900))
	assert.False(t, sys.IsLeapYear(2100))
	assert.True(t, sys.IsLeapYear(2004))
}

// TestISOFebruary29 checks century-year leap rules around Feb 29.
func TestISOFebruary29(t *testing.T) {
	sys := ISO()

	require.NoError(t, sys.Validate(2000, 2, 29))
	assert.Error(t, sys.Validate(1900, 2, 29))
	assert.Error(t, sys.Validate(2100, 2, 29))
}

func TestISORoundTrip(t *testing.T) {
	sys := ISO()
	for year := 1800; year < 2200; year++ {
		for _, month := range []int{1, 2, 3, 6, 12} {
			for _, day := range []int{1, 15, sys.DaysInMonth(year, month)} {
				ymd := PackYearMonthDay(year, month, day)
				days := sys.DaysSinceEpoch(ymd)
				got := sys.YearMonthDayFromDaysSinceEpoch(days)
				require.Equal(t, ymd, got, "year=%d month=%d day=%d", year, month, day)
			}
		}
	}
}

func TestISOMonthLengthsSumToYearLength(t *testing.T) {
	sys := ISO()
	for year := 1990; year < 2030; year++ {
		total := 0
		for m := 1; m <= 12; m++ {
			total += sys.DaysInMonth(year, m)
		}
		assert.Equal(t, sys.DaysInYear(year), total)
	}
}

func TestISOEpoch(t *testing.T) {
	sys := ISO()
	assert.Equal(t, int64(0), sys.DaysSinceEpoch(PackYearMonthDay(1970, 1, 1)))
}

func TestISODayOfWeek(t *testing.T) {
	sys := ISO()
	// 1970-01-01 was a Thursday.
	assert.Equal(t, Thursday, sys.DayOfWeek(PackYearMonthDay(1970, 1, 1)))
	// 2023-01-02 was a Monday.
	assert.Equal(t, Monday, sys.DayOfWeek(PackYearMonthDay(2023, 1, 2)))
}

// TestISOWeekYear checks the week-year boundary at a year edge.
func TestISOWeekYear(t *testing.T) {
	sys := ISO()

	wy, w := sys.WeekYear(PackYearMonthDay(2011, 1, 1)), sys.WeekOfWeekYear(PackYearMonthDay(2011, 1, 1))
	assert.Equal(t, 2010, wy)
	assert.Equal(t, 52, w)

	wy, w = sys.WeekYear(PackYearMonthDay(2012, 12, 31)), sys.WeekOfWeekYear(PackYearMonthDay(2012, 12, 31))
	assert.Equal(t, 2013, wy)
	assert.Equal(t, 1, w)
}
