package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempora-go/chrono/calendar"
)

func TestLocalDateOfISOValidation(t *testing.T) {
	assert.Panics(t, func() { LocalDateOf(2023, 2, 29) })
	assert.NotPanics(t, func() { LocalDateOf(2024, 2, 29) })
}

func TestLocalDateDaysSinceEpochRoundTrip(t *testing.T) {
	d := LocalDateOf(2024, 3, 15)
	days := d.DaysSinceEpoch()
	got := localDateFromDays(d.Calendar(), days)
	assert.Equal(t, d, got)
}

func TestLocalDatePlusMonthsClamps(t *testing.T) {
	d := LocalDateOf(2024, 1, 31)
	got := d.PlusMonths(1)
	assert.Equal(t, LocalDateOf(2024, 2, 29), got)
}

func TestLocalDatePlusYearsClampsLeapDay(t *testing.T) {
	d := LocalDateOf(2024, 2, 29)
	got := d.PlusYears(1)
	assert.Equal(t, LocalDateOf(2025, 2, 28), got)
}

func TestLocalDateCompare(t *testing.T) {
	a := LocalDateOf(2024, 1, 1)
	b := LocalDateOf(2024, 1, 2)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}

func TestLocalDatePeriodUntil(t *testing.T) {
	a := LocalDateOf(2020, 1, 31)
	b := LocalDateOf(2021, 3, 1)
	p := a.PeriodUntil(b)
	assert.Equal(t, int64(1), p.Years)
	assert.Equal(t, int64(1), p.Months)
	assert.Equal(t, int64(1), p.Days)
}

// TestLocalDatePeriodUntilDayThirtyOneAcrossShortMonth guards against a
// clamped intermediate (Jan 31 -> Feb 28) leaking into the day count for a
// later month that doesn't need clamping.
func TestLocalDatePeriodUntilDayThirtyOneAcrossShortMonth(t *testing.T) {
	a := LocalDateOf(2013, 1, 31)
	b := LocalDateOf(2013, 3, 31)
	p := a.PeriodUntil(b)
	assert.Equal(t, int64(0), p.Years)
	assert.Equal(t, int64(2), p.Months)
	assert.Equal(t, int64(0), p.Days)

	got, err := a.Plus(p)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestLocalDateString(t *testing.T) {
	assert.Equal(t, "2024-03-15", LocalDateOf(2024, 3, 15).String())
}

func TestLocalDateNextAndPrevious(t *testing.T) {
	friday := LocalDateOf(2024, 3, 15)
	assert.Equal(t, calendar.Friday, friday.DayOfWeek())

	assert.Equal(t, LocalDateOf(2024, 3, 18), friday.Next(calendar.Monday))
	assert.Equal(t, LocalDateOf(2024, 3, 11), friday.Previous(calendar.Monday))

	// Next/Previous always move strictly off the current date, even when
	// asked for the date's own weekday.
	assert.Equal(t, LocalDateOf(2024, 3, 22), friday.Next(calendar.Friday))
	assert.Equal(t, LocalDateOf(2024, 3, 8), friday.Previous(calendar.Friday))
}

func TestLocalDateWith(t *testing.T) {
	d := LocalDateOf(2024, 3, 15)
	got := d.With(func(d LocalDate) LocalDate { return d.PlusDays(10) })
	assert.Equal(t, LocalDateOf(2024, 3, 25), got)
}
