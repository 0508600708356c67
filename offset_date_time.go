package chrono

import (
	"github.com/tempora-go/chrono/calendar"
	"github.com/tempora-go/chrono/tz"
)

// OffsetDateTime is a LocalDateTime combined with a fixed Offset from UTC.
// Unlike ZonedDateTime, the offset never changes with the calendar: it is
// not tied to any DateTimeZone's transition rules.
type OffsetDateTime struct {
	local  LocalDateTime
	offset Offset
}

// OffsetDateTimeOf combines a LocalDateTime and an Offset.
func OffsetDateTimeOf(local LocalDateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{local: local, offset: offset}
}

// LocalDateTime returns the wall-clock date and time component.
func (dt OffsetDateTime) LocalDateTime() LocalDateTime { return dt.local }

// Offset returns the UTC offset component.
func (dt OffsetDateTime) Offset() Offset { return dt.offset }

// Date returns the date component of the wall-clock reading.
func (dt OffsetDateTime) Date() LocalDate { return dt.local.Date() }

// Time returns the time-of-day component of the wall-clock reading.
func (dt OffsetDateTime) Time() LocalTime { return dt.local.Time() }

// ToInstant converts dt to the absolute Instant it represents: the
// wall-clock reading, minus the offset, mapped onto the UTC timeline.
func (dt OffsetDateTime) ToInstant() Instant {
	days, tickOfDay := dt.local.toDayTicks()
	ticks := days*TicksPerDay + tickOfDay - int64(dt.offset.Seconds())*TicksPerSecond
	return Instant{ticks: ticks}
}

// WithOffset reinterprets dt's absolute instant at a different fixed
// offset, adjusting the wall-clock reading to match (unlike
// LocalDateTime.At/OffsetTime.WithOffset, which keep the wall-clock
// reading fixed and change only the label).
func (dt OffsetDateTime) WithOffset(offset Offset) OffsetDateTime {
	instant := dt.ToInstant()
	return instant.At(offset)
}

// Compare orders dt against dt2 by their underlying instant (the offsets
// are subtracted out first), ignoring the calendar of either wall-clock
// reading.
func (dt OffsetDateTime) Compare(dt2 OffsetDateTime) int {
	return dt.ToInstant().Compare(dt2.ToInstant())
}

// CompareLocal orders dt against dt2 by their wall-clock reading (year,
// month, day, then time of day), ignoring offset entirely. Unlike Compare,
// this can disagree with instant order when the two offsets differ: a
// later wall-clock reading at a very negative offset can represent an
// earlier instant than an earlier wall-clock reading at a very positive
// one. Both values must share a calendar system; LocalDateTime.Compare
// panics otherwise.
func (dt OffsetDateTime) CompareLocal(dt2 OffsetDateTime) int {
	return dt.local.Compare(dt2.local)
}

func (dt OffsetDateTime) String() string {
	return dt.local.String() + dt.offset.String()
}

// At returns the OffsetDateTime representing i's wall-clock reading at the
// given fixed offset.
func (i Instant) At(offset Offset) OffsetDateTime {
	total := i.ticks + int64(offset.Seconds())*TicksPerSecond
	days := floorDivInt64(total, TicksPerDay)
	tickOfDay := floorModInt64(total, TicksPerDay)
	local := localDateTimeFromDayTicks(calendar.ISO(), days, tickOfDay)
	return OffsetDateTime{local: local, offset: offset}
}

// UTC returns the OffsetDateTime representing i's wall-clock reading at
// the zero offset.
func (i Instant) UTC() OffsetDateTime {
	return i.At(UTC)
}

// In returns the ZonedDateTime representing i's wall-clock reading in zone.
func (i Instant) In(zone tz.DateTimeZone) ZonedDateTime {
	return InInstant(i, zone)
}

// InUTC is shorthand for In(tz.UTC).
func (i Instant) InUTC() ZonedDateTime {
	return InInstant(i, tz.UTC)
}
