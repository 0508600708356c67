package chrono

import (
	"github.com/tempora-go/chrono/calendar"
)

// LocalDateTime is a date and time of day without a time-zone component,
// interpreted in a particular calendar system.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// LocalDateTimeOf combines a LocalDate and LocalTime.
func LocalDateTimeOf(date LocalDate, time LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: time}
}

// LocalDateTimeOfComponents is shorthand for building a LocalDateTime from
// individual ISO calendar components.
func LocalDateTimeOfComponents(year, month, day, hour, min, sec, nsec int) LocalDateTime {
	return LocalDateTime{date: LocalDateOf(year, month, day), time: LocalTimeOf(hour, min, sec, nsec)}
}

// Date returns the date component.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time-of-day component.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// Calendar returns the calendar system the date component is interpreted in.
func (dt LocalDateTime) Calendar() calendar.System { return dt.date.Calendar() }

// Compare orders dt against dt2, first by date then by time of day. Dates
// must share a calendar system; see LocalDate.Compare.
func (dt LocalDateTime) Compare(dt2 LocalDateTime) int {
	if c := dt.date.Compare(dt2.date); c != 0 {
		return c
	}
	return dt.time.Compare(dt2.time)
}

// Before reports whether dt is strictly before dt2.
func (dt LocalDateTime) Before(dt2 LocalDateTime) bool { return dt.Compare(dt2) < 0 }

// After reports whether dt is strictly after dt2.
func (dt LocalDateTime) After(dt2 LocalDateTime) bool { return dt.Compare(dt2) > 0 }

// Plus applies p to dt: the date component of p is applied to the date,
// then the time component is applied to the time, carrying any day
// rollover from the time arithmetic back into the date.
func (dt LocalDateTime) Plus(p Period) LocalDateTime {
	datePart := Period{Years: p.Years, Months: p.Months, Weeks: p.Weeks, Days: p.Days}
	newDate, _ := dt.date.Plus(datePart)

	timeNanos := dt.time.NanosecondOfDay() + p.timeComponentNanos()
	dayCarry := floorDivInt64(timeNanos, NanosecondsPerDay)
	newDate = newDate.PlusDays(dayCarry)
	newTime := localTimeOfNanoOfDay(floorModInt64(timeNanos, NanosecondsPerDay))

	return LocalDateTime{date: newDate, time: newTime}
}

// toDayTicks converts dt to a (days, tickOfDay) pair on the continuous day
// axis, the internal representation used throughout zone resolution.
func (dt LocalDateTime) toDayTicks() (days int64, tickOfDay int64) {
	return dt.date.DaysSinceEpoch(), dt.time.NanosecondOfDay() / NanosecondsPerTick
}

// localDateTimeFromDayTicks is the inverse of toDayTicks, in the given
// calendar.
func localDateTimeFromDayTicks(sys calendar.System, days, tickOfDay int64) LocalDateTime {
	return LocalDateTime{
		date: localDateFromDays(sys, days),
		time: localTimeOfNanoOfDay(tickOfDay * NanosecondsPerTick),
	}
}

// With returns f(dt), a pure-transform adjuster over the whole value.
func (dt LocalDateTime) With(f func(LocalDateTime) LocalDateTime) LocalDateTime {
	return f(dt)
}

// Next returns dt with its date advanced to the first date strictly after
// it that falls on weekday dow, time of day unchanged.
func (dt LocalDateTime) Next(dow calendar.Weekday) LocalDateTime {
	return LocalDateTime{date: dt.date.Next(dow), time: dt.time}
}

// Previous returns dt with its date moved back to the first date strictly
// before it that falls on weekday dow, time of day unchanged.
func (dt LocalDateTime) Previous(dow calendar.Weekday) LocalDateTime {
	return LocalDateTime{date: dt.date.Previous(dow), time: dt.time}
}

func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// At combines dt with a fixed offset to produce an OffsetDateTime.
func (dt LocalDateTime) At(offset Offset) OffsetDateTime {
	return OffsetDateTime{local: dt, offset: offset}
}
