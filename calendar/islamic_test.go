package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIslamicFlyweight(t *testing.T) {
	a := IslamicTabular(Base15, EpochCivil)
	b := IslamicTabular(Base15, EpochCivil)
	assert.Equal(t, a.Ordinal(), b.Ordinal())

	c := IslamicTabular(Base16, EpochCivil)
	assert.NotEqual(t, a.Ordinal(), c.Ordinal())
}

func TestIslamicLeapYearCounts(t *testing.T) {
	sys := IslamicTabular(Base15, EpochCivil).(*islamicSystem)
	leapCount := 0
	for year := 1; year <= 30; year++ {
		if sys.isLeap(year) {
			leapCount++
		}
	}
	assert.Equal(t, 11, leapCount)
}

func TestIslamicRoundTrip(t *testing.T) {
	for _, pattern := range []IslamicLeapYearPattern{Base15, Base16, Indian, HabashAlHasib} {
		for _, epoch := range []IslamicEpoch{EpochCivil, EpochAstronomical} {
			sys := IslamicTabular(pattern, epoch)
			for year := 1400; year < 1440; year++ {
				for _, month := range []int{1, 6, 12} {
					ymd := PackYearMonthDay(year, month, 1)
					days := sys.DaysSinceEpoch(ymd)
					got := sys.YearMonthDayFromDaysSinceEpoch(days)
					require.Equal(t, ymd, got, "%s year=%d month=%d", sys.ID(), year, month)
				}
			}
		}
	}
}

func TestIslamicMonthLengthsSumToYearLength(t *testing.T) {
	sys := IslamicTabular(Base15, EpochCivil)
	for year := 1400; year < 1420; year++ {
		total := 0
		for m := 1; m <= 12; m++ {
			total += sys.DaysInMonth(year, m)
		}
		assert.Equal(t, sys.DaysInYear(year), total)
	}
}
