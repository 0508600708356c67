package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempora-go/chrono"
	"github.com/tempora-go/chrono/calendar"
	"github.com/tempora-go/chrono/internal/chronotest"
)

func TestInvariantInstantDurationRoundTrip(t *testing.T) {
	gen := chronotest.NewGen(1)
	for i := 0; i < 500; i++ {
		a := gen.Instant()
		d := gen.Duration()

		sum, err := a.Plus(d)
		if err != nil {
			continue // overflow is a legitimate outcome for extreme inputs
		}
		back, err := sum.Minus(a)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}

	a := chronotest.NewGen(2).Instant()
	zero, err := a.Minus(a)
	require.NoError(t, err)
	assert.Equal(t, chrono.ZeroDuration(), zero)
}

func TestInvariantOffsetStaysWithinOneDay(t *testing.T) {
	gen := chronotest.NewGen(3)
	for i := 0; i < 500; i++ {
		seconds := int(gen.Ticks() % (3 * 86400))
		o := chrono.OffsetOfSeconds(seconds)
		assert.Greater(t, o.Seconds(), -86400)
		assert.Less(t, o.Seconds(), 86400)
	}
}

func TestInvariantCalendarRoundTrip(t *testing.T) {
	systems := []calendar.System{calendar.ISO(), calendar.Julian(), calendar.Coptic()}
	gen := chronotest.NewGen(4)

	for _, sys := range systems {
		for i := 0; i < 200; i++ {
			year := 1 + gen.Year()
			month := 1 + (i % sys.MonthsInYear(year))
			day := 1 + (i % sys.DaysInMonth(year, month))

			ymd := calendar.PackYearMonthDay(year, month, day)
			days := sys.DaysSinceEpoch(ymd)
			back := sys.YearMonthDayFromDaysSinceEpoch(days)
			assert.Equal(t, ymd, back, "system %s year=%d month=%d day=%d", sys.ID(), year, month, day)
		}
	}
}

func TestInvariantMonthLengthsSumToYearLength(t *testing.T) {
	systems := []calendar.System{calendar.ISO(), calendar.Julian(), calendar.Coptic()}
	gen := chronotest.NewGen(5)

	for _, sys := range systems {
		for i := 0; i < 50; i++ {
			year := gen.Year()
			total := 0
			for m := 1; m <= sys.MonthsInYear(year); m++ {
				total += sys.DaysInMonth(year, m)
			}
			assert.Equal(t, sys.DaysInYear(year), total, "system %s year %d", sys.ID(), year)
		}
	}
}

func TestInvariantLeapYearConsistency(t *testing.T) {
	sys := calendar.ISO()
	gen := chronotest.NewGen(6)
	for i := 0; i < 200; i++ {
		year := gen.Year()
		wantLeapLen := 365
		if sys.IsLeapYear(year) {
			wantLeapLen = 366
		}
		assert.Equal(t, wantLeapLen, sys.DaysInYear(year))
	}
}

func TestInvariantPeriodUntilTowardStart(t *testing.T) {
	gen := chronotest.NewGen(7)
	for i := 0; i < 300; i++ {
		start := gen.LocalDate()
		end := gen.LocalDate()
		if start.Compare(end) == 0 {
			continue
		}
		if start.Compare(end) > 0 {
			start, end = end, start
		}

		p := start.PeriodUntil(end)
		applied, err := start.Plus(p)
		require.NoError(t, err)
		assert.True(t, applied.Compare(end) <= 0)

		oneMoreDay, err := applied.Plus(chrono.PeriodOfDays(1))
		require.NoError(t, err)
		assert.True(t, oneMoreDay.Compare(end) > 0)
	}
}

func TestInvariantEqualityRespectsCalendar(t *testing.T) {
	iso := chrono.LocalDateOf(2000, 1, 1)
	julian := chrono.LocalDateOfCalendar(calendar.Julian(), 2000, 1, 1)
	assert.NotEqual(t, iso.Calendar().Ordinal(), julian.Calendar().Ordinal())
	assert.NotEqual(t, iso, julian)
}
