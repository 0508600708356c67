package tz

// DateTimeZone is the contract every zone variant implements: the ability
// to map an Instant to the ZoneInterval containing it (a total function —
// it must never fail to return one) and, via ZoneIntervalsAt, a
// LocalInstant to the interval(s) that might contain it.
type DateTimeZone interface {
	// ID is the zone's identifier, globally unique within a provider set
	// (e.g. an IANA name like "America/Los_Angeles", or "UTC").
	ID() string

	// IsFixed reports whether the zone has a single, constant offset for
	// all time.
	IsFixed() bool

	// MinOffsetSeconds and MaxOffsetSeconds bound the offsets the zone can
	// produce, narrowing the local-instant search.
	MinOffsetSeconds() int32
	MaxOffsetSeconds() int32

	// ZoneIntervalAt returns the interval containing i. Total: every
	// Instant in [MinInstant, MaxInstant] falls in exactly one interval.
	ZoneIntervalAt(i Instant) ZoneInterval
}

// NameAt and OffsetSecondsAt are convenience lookups built on
// ZoneIntervalAt, available for any DateTimeZone.
func NameAt(zone DateTimeZone, i Instant) string {
	return zone.ZoneIntervalAt(i).Name
}

func OffsetSecondsAt(zone DateTimeZone, i Instant) int32 {
	return zone.ZoneIntervalAt(i).WallOffset
}

// ZoneIntervalsAt resolves l against zone using the algorithm described in
// the design this engine is built from:
//
//  1. Treat l's tick value as a first guess for the UTC instant and fetch
//     the interval I containing that guess.
//  2. If I contains l as a local instant, it's a candidate: check whether
//     the interval immediately before or after I also contains l, in which
//     case l is ambiguous between the two.
//  3. If I does not contain l, the guess landed one transition off: probe
//     the previous and next intervals; if exactly one contains l, the
//     resolution is unambiguous; if neither does, l falls in a gap.
//
// This is correct provided no adjacent pair of intervals differs in offset
// by more than 24h, which holds for every real-world zone.
func ZoneIntervalsAt(zone DateTimeZone, l LocalInstant) ZoneIntervalPair {
	guess := Instant(l)
	i := zone.ZoneIntervalAt(guess)

	if i.ContainsLocal(l) {
		if prev, ok := intervalBefore(zone, i); ok && prev.ContainsLocal(l) {
			return ZoneIntervalPair{Classification: Ambiguous, Early: prev, Late: i}
		}
		if next, ok := intervalAfter(zone, i); ok && next.ContainsLocal(l) {
			return ZoneIntervalPair{Classification: Ambiguous, Early: i, Late: next}
		}
		return ZoneIntervalPair{Classification: Unambiguous, Early: i}
	}

	if prev, ok := intervalBefore(zone, i); ok && prev.ContainsLocal(l) {
		return ZoneIntervalPair{Classification: Unambiguous, Early: prev}
	}
	if next, ok := intervalAfter(zone, i); ok && next.ContainsLocal(l) {
		return ZoneIntervalPair{Classification: Unambiguous, Early: next}
	}
	// Gap: i lies on one side of it; pair i with its neighbour across the gap.
	if int64(l) < addSaturating(int64(i.Start), int64(i.WallOffset)*TicksPerSecond) {
		prev, _ := intervalBefore(zone, i)
		return ZoneIntervalPair{Classification: Gap, Early: prev, Late: i}
	}
	next, _ := intervalAfter(zone, i)
	return ZoneIntervalPair{Classification: Gap, Early: i, Late: next}
}

func intervalBefore(zone DateTimeZone, i ZoneInterval) (ZoneInterval, bool) {
	if i.Start == MinInstant {
		return ZoneInterval{}, false
	}
	return zone.ZoneIntervalAt(i.Start - 1), true
}

func intervalAfter(zone DateTimeZone, i ZoneInterval) (ZoneInterval, bool) {
	if i.End == MaxInstant {
		return ZoneInterval{}, false
	}
	return zone.ZoneIntervalAt(i.End), true
}
