package chrono

import (
	"github.com/tempora-go/chrono/calendar"
	"github.com/tempora-go/chrono/tz"
)

// ZonedDateTime is a LocalDateTime combined with a DateTimeZone. Unlike
// OffsetDateTime, the effective offset is derived from the zone's rules at
// construction time and changes when the underlying instant moves across
// a zone transition (see WithZone).
type ZonedDateTime struct {
	local         LocalDateTime
	zone          tz.DateTimeZone
	offsetSeconds int32
}

// NewZonedDateTime resolves local against zone using policy, returning a
// ZonedDateTime pinned to the resulting offset. Returns
// *tz.SkippedTimeError or *tz.AmbiguousTimeError under tz.Strict if local
// falls in a gap or overlap.
func NewZonedDateTime(local LocalDateTime, zone tz.DateTimeZone, policy tz.ResolverPolicy) (ZonedDateTime, error) {
	li := localInstantOf(local)
	instant, err := tz.Resolve(zone, li, policy)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{local: local, zone: zone, offsetSeconds: zone.ZoneIntervalAt(instant).WallOffset}, nil
}

// InInstant returns the ZonedDateTime representing i's wall-clock reading
// in zone.
func InInstant(i Instant, zone tz.DateTimeZone) ZonedDateTime {
	interval := zone.ZoneIntervalAt(tz.Instant(i.EpochTicks()))
	local := localDateTimeFromTicks(i.EpochTicks() + int64(interval.WallOffset)*TicksPerSecond)
	return ZonedDateTime{local: local, zone: zone, offsetSeconds: interval.WallOffset}
}

func localInstantOf(local LocalDateTime) tz.LocalInstant {
	days, tickOfDay := local.toDayTicks()
	return tz.LocalInstant(days*TicksPerDay + tickOfDay)
}

func localDateTimeFromTicks(ticks int64) LocalDateTime {
	days := floorDivInt64(ticks, TicksPerDay)
	tickOfDay := floorModInt64(ticks, TicksPerDay)
	return localDateTimeFromDayTicks(calendar.ISO(), days, tickOfDay)
}

// LocalDateTime returns the wall-clock date and time component.
func (z ZonedDateTime) LocalDateTime() LocalDateTime { return z.local }

// Date returns the date component of the wall-clock reading.
func (z ZonedDateTime) Date() LocalDate { return z.local.Date() }

// Time returns the time-of-day component of the wall-clock reading.
func (z ZonedDateTime) Time() LocalTime { return z.local.Time() }

// Zone returns the zone this value is expressed in.
func (z ZonedDateTime) Zone() tz.DateTimeZone { return z.zone }

// Offset returns the offset currently in effect.
func (z ZonedDateTime) Offset() Offset { return Offset(z.offsetSeconds) }

// ToInstant converts z to the absolute Instant it represents.
func (z ZonedDateTime) ToInstant() Instant {
	days, tickOfDay := z.local.toDayTicks()
	ticks := days*TicksPerDay + tickOfDay - int64(z.offsetSeconds)*TicksPerSecond
	return Instant{ticks: ticks}
}

// WithZone recomputes the wall-clock reading for the same instant in a
// different zone.
func (z ZonedDateTime) WithZone(other tz.DateTimeZone) ZonedDateTime {
	return InInstant(z.ToInstant(), other)
}

// Plus adds d to z's underlying instant and re-derives the wall-clock
// reading and offset in the same zone (an instant-preserving operation,
// unlike adding a Period, which preserves the wall clock instead).
func (z ZonedDateTime) Plus(d Duration) ZonedDateTime {
	return InInstant(z.ToInstant().Add(d), z.zone)
}

// PlusPeriod applies p to z's local date and time, re-resolving the result
// against z's zone with the given policy. This is local-preserving: the
// wall clock advances by p regardless of any zone transition crossed, and
// the offset (and possibly the instant's relationship to it) is
// recomputed.
func (z ZonedDateTime) PlusPeriod(p Period, policy tz.ResolverPolicy) (ZonedDateTime, error) {
	return NewZonedDateTime(z.local.Plus(p), z.zone, policy)
}

func (z ZonedDateTime) String() string {
	return z.local.String() + Offset(z.offsetSeconds).String() + " " + z.zone.ID()
}
