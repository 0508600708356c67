package chrono

import (
	"fmt"

	"github.com/tempora-go/chrono/calendar"
)

// LocalDate is a date without a time-of-day or time-zone component,
// interpreted in a particular calendar system. The zero LocalDate is not a
// valid date: its year, month and day are all 0, and its nil calendar is
// treated as ISO.
type LocalDate struct {
	ymd    calendar.YearMonthDay
	system calendar.System
}

// LocalDateOf returns the LocalDate for the given year, month, and day in
// the ISO calendar. Panics if the date is invalid.
func LocalDateOf(year, month, day int) LocalDate {
	return LocalDateOfCalendar(calendar.ISO(), year, month, day)
}

// LocalDateOfCalendar returns the LocalDate for the given year, month, and
// day interpreted in sys. Panics if the date is invalid in that calendar.
func LocalDateOfCalendar(sys calendar.System, year, month, day int) LocalDate {
	if err := sys.Validate(year, month, day); err != nil {
		panic(err)
	}
	return LocalDate{ymd: calendar.PackYearMonthDay(year, month, day), system: sys}
}

// localDateFromDays builds a LocalDate directly from a days-since-epoch
// value in sys, used internally by instant/zone resolution code that
// already works on the continuous day axis.
func localDateFromDays(sys calendar.System, days int64) LocalDate {
	return LocalDate{ymd: sys.YearMonthDayFromDaysSinceEpoch(days), system: sys}
}

func (d LocalDate) calendarSystem() calendar.System {
	if d.system == nil {
		return calendar.ISO()
	}
	return d.system
}

// Year returns the year component.
func (d LocalDate) Year() int { return d.ymd.Year() }

// Month returns the 1-based month component.
func (d LocalDate) Month() int { return d.ymd.Month() }

// Day returns the 1-based day-of-month component.
func (d LocalDate) Day() int { return d.ymd.Day() }

// Calendar returns the calendar system this date is interpreted in.
func (d LocalDate) Calendar() calendar.System { return d.calendarSystem() }

// DaysSinceEpoch returns the signed day count from the Unix epoch
// (1970-01-01 ISO) to d.
func (d LocalDate) DaysSinceEpoch() int64 {
	return d.calendarSystem().DaysSinceEpoch(d.ymd)
}

// DayOfWeek returns the ISO 8601 numbered weekday of d.
func (d LocalDate) DayOfWeek() calendar.Weekday {
	return d.calendarSystem().DayOfWeek(d.ymd)
}

// WeekYear and WeekOfWeekYear return d's position in its calendar's
// ISO-8601-style week-numbering scheme.
func (d LocalDate) WeekYear() int        { return d.calendarSystem().WeekYear(d.ymd) }
func (d LocalDate) WeekOfWeekYear() int  { return d.calendarSystem().WeekOfWeekYear(d.ymd) }

// IsLeapYear reports whether d's year is a leap year in its calendar.
func (d LocalDate) IsLeapYear() bool { return d.calendarSystem().IsLeapYear(d.Year()) }

// WithCalendar reinterprets d's absolute day position in a different
// calendar system, producing the date that falls on the same day in sys.
func (d LocalDate) WithCalendar(sys calendar.System) LocalDate {
	return localDateFromDays(sys, d.DaysSinceEpoch())
}

// Compare orders d against d2. Both must share the same calendar system;
// comparing across calendars panics, treating it as a programmer error
// rather than a recoverable one (use WithCalendar to convert first).
func (d LocalDate) Compare(d2 LocalDate) int {
	if d.calendarSystem().Ordinal() != d2.calendarSystem().Ordinal() {
		panic(fmt.Sprintf("chrono: cannot compare dates from different calendars (%s vs %s)", d.calendarSystem().ID(), d2.calendarSystem().ID()))
	}
	return d.calendarSystem().Compare(d.ymd, d2.ymd)
}

// Before reports whether d is strictly before d2.
func (d LocalDate) Before(d2 LocalDate) bool { return d.Compare(d2) < 0 }

// After reports whether d is strictly after d2.
func (d LocalDate) After(d2 LocalDate) bool { return d.Compare(d2) > 0 }

// PlusDays returns d shifted by the given number of days.
func (d LocalDate) PlusDays(days int64) LocalDate {
	return localDateFromDays(d.calendarSystem(), d.DaysSinceEpoch()+days)
}

// PlusWeeks returns d shifted by the given number of weeks.
func (d LocalDate) PlusWeeks(weeks int64) LocalDate {
	return d.PlusDays(weeks * 7)
}

// PlusMonths returns d shifted by the given number of months, clamping the
// day-of-month into range if the target month is shorter (e.g. Jan 31 + 1
// month = Feb 28/29).
func (d LocalDate) PlusMonths(months int64) LocalDate {
	sys := d.calendarSystem()
	totalMonths := int64(d.Year())*int64(sys.MonthsInYear(d.Year())) + int64(d.Month()-1) + months
	monthsInYear := int64(sys.MonthsInYear(d.Year()))
	year := int(floorDivInt64(totalMonths, monthsInYear))
	month := int(floorModInt64(totalMonths, monthsInYear)) + 1
	day := d.Day()
	if max := sys.DaysInMonth(year, month); day > max {
		day = max
	}
	return LocalDate{ymd: calendar.PackYearMonthDay(year, month, day), system: sys}
}

// PlusYears returns d shifted by the given number of years, clamping the
// day-of-month if necessary (e.g. a leap day in a non-leap target year).
func (d LocalDate) PlusYears(years int64) LocalDate {
	sys := d.calendarSystem()
	year := d.Year() + int(years)
	day := d.Day()
	if max := sys.DaysInMonth(year, d.Month()); day > max {
		day = max
	}
	return LocalDate{ymd: calendar.PackYearMonthDay(year, d.Month(), day), system: sys}
}

// Plus applies the date components of p (years, months, weeks, days) to d,
// in that order, following the same clamping rules as PlusYears/PlusMonths.
// The time components of p, if any, are rejected with ErrInvalidPeriod;
// use LocalDateTime.Plus to apply a period with both components.
func (d LocalDate) Plus(p Period) (LocalDate, error) {
	if p.hasTimeComponent() {
		return LocalDate{}, ErrInvalidPeriod
	}
	return d.PlusYears(p.Years).PlusMonths(p.Months).PlusDays(p.Weeks*7 + p.Days), nil
}

// PeriodUntil computes the period, expressed in whole years, months, and
// days, from d to d2 (d2 - d). The algorithm greedily consumes the largest
// units first ("toward start"): it subtracts as many whole years as
// possible, then months, then days, walking from d toward d2.
func (d LocalDate) PeriodUntil(d2 LocalDate) Period {
	if d.calendarSystem().Ordinal() != d2.calendarSystem().Ordinal() {
		panic("chrono: cannot compute period between dates from different calendars")
	}
	if d.Compare(d2) > 0 {
		return d2.PeriodUntil(d).Negated()
	}

	// Each candidate boundary is measured fresh from d rather than by
	// cascading from the previous candidate: PlusMonths clamps the day of
	// month in short months (e.g. Jan 31 + 1 month = Feb 28), and cascading
	// from that clamped result would permanently lose the original day of
	// month for every later month in the count.
	years := int64(0)
	for d.PlusYears(years+1).Compare(d2) <= 0 {
		years++
	}

	months := int64(0)
	for d.PlusYears(years).PlusMonths(months+1).Compare(d2) <= 0 {
		months++
	}

	cursor := d.PlusYears(years).PlusMonths(months)
	days := d2.DaysSinceEpoch() - cursor.DaysSinceEpoch()
	return Period{Years: years, Months: months, Days: days}
}

// With returns f(d), a pure-transform adjuster. It exists so call sites can
// chain field adjustments the same way they chain Plus/With on other value
// types, without this package needing a bespoke adjuster per field.
func (d LocalDate) With(f func(LocalDate) LocalDate) LocalDate {
	return f(d)
}

// Next returns the first date strictly after d that falls on weekday dow.
func (d LocalDate) Next(dow calendar.Weekday) LocalDate {
	delta := int64(dow) - int64(d.DayOfWeek())
	if delta <= 0 {
		delta += 7
	}
	return d.PlusDays(delta)
}

// Previous returns the first date strictly before d that falls on weekday
// dow.
func (d LocalDate) Previous(dow calendar.Weekday) LocalDate {
	delta := int64(d.DayOfWeek()) - int64(dow)
	if delta <= 0 {
		delta += 7
	}
	return d.PlusDays(-delta)
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

func floorDivInt64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt64(a, b int64) int64 {
	return a - floorDivInt64(a, b)*b
}
