package tz

import "fmt"

// ZoneInterval is a maximal contiguous range [Start, End) of instants
// during which a zone's offset and name are constant.
type ZoneInterval struct {
	Name string

	// Start and End bound the interval on the UTC timeline. Start may be
	// MinInstant and End may be MaxInstant for an unbounded interval.
	Start, End Instant

	// WallOffset is the total offset from UTC in effect during the
	// interval, in seconds; Savings is the portion of it attributable to
	// daylight saving (standard offset = WallOffset - Savings).
	WallOffset int32
	Savings    int32
}

// Contains reports whether i falls within [Start, End).
func (zi ZoneInterval) Contains(i Instant) bool {
	return i >= zi.Start && i < zi.End
}

// ContainsLocal reports whether the local instant l falls within the
// interval's local-time range, [Start+WallOffset, End+WallOffset).
func (zi ZoneInterval) ContainsLocal(l LocalInstant) bool {
	offset := int64(zi.WallOffset) * TicksPerSecond
	start := addSaturating(int64(zi.Start), offset)
	end := addSaturating(int64(zi.End), offset)
	return int64(l) >= start && int64(l) < end
}

// StandardOffset returns the non-daylight portion of the interval's offset.
func (zi ZoneInterval) StandardOffset() int32 {
	return zi.WallOffset - zi.Savings
}

func (zi ZoneInterval) String() string {
	return fmt.Sprintf("%s[%d,%d)%+ds", zi.Name, zi.Start, zi.End, zi.WallOffset)
}

func addSaturating(a, b int64) int64 {
	sum := a + b
	if b > 0 && sum < a {
		return int64(MaxInstant)
	}
	if b < 0 && sum > a {
		return int64(MinInstant)
	}
	return sum
}

// Classification is the outcome of resolving a LocalInstant against a zone.
type Classification int

const (
	// Unambiguous means exactly one interval contains the local instant.
	Unambiguous Classification = iota
	// Ambiguous means the local instant falls in the overlap produced by
	// a clock moving backward (daylight saving ends); Early is the
	// earlier-offset interval, Late the later one.
	Ambiguous
	// Gap means no interval contains the local instant (daylight saving
	// begins and the clock skips over it); Early is the interval ending
	// where the gap begins, Late the one starting after it.
	Gap
)

// ZoneIntervalPair is the result of resolving a LocalInstant: which
// interval(s), if any, contain it, and how.
type ZoneIntervalPair struct {
	Classification Classification
	Early, Late    ZoneInterval
}
