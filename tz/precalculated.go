package tz

import "sort"

// PrecalculatedZone holds an explicit, sorted table of intervals covering
// a historical window, optionally followed by a tail zone (typically a
// DaylightSavingsZone) that projects rules forward beyond the table.
type PrecalculatedZone struct {
	id        string
	intervals []ZoneInterval // sorted by Start; instants before intervals[0].Start resolve to intervals[0]
	tail      DateTimeZone   // covers [intervals[len-1].End, MaxInstant); nil if intervals already reach MaxInstant
	minOffset int32
	maxOffset int32
}

// NewPrecalculatedZone builds a PrecalculatedZone from a sorted, gapless
// interval table and an optional tail zone for the open-ended future.
func NewPrecalculatedZone(id string, intervals []ZoneInterval, tail DateTimeZone) *PrecalculatedZone {
	z := &PrecalculatedZone{id: id, intervals: intervals, tail: tail}
	if len(intervals) == 0 {
		return z
	}
	z.minOffset, z.maxOffset = intervals[0].WallOffset, intervals[0].WallOffset
	for _, iv := range intervals {
		if iv.WallOffset < z.minOffset {
			z.minOffset = iv.WallOffset
		}
		if iv.WallOffset > z.maxOffset {
			z.maxOffset = iv.WallOffset
		}
	}
	if tail != nil {
		if o := tail.MinOffsetSeconds(); o < z.minOffset {
			z.minOffset = o
		}
		if o := tail.MaxOffsetSeconds(); o > z.maxOffset {
			z.maxOffset = o
		}
	}
	return z
}

func (z *PrecalculatedZone) ID() string          { return z.id }
func (z *PrecalculatedZone) IsFixed() bool       { return false }
func (z *PrecalculatedZone) MinOffsetSeconds() int32 { return z.minOffset }
func (z *PrecalculatedZone) MaxOffsetSeconds() int32 { return z.maxOffset }

func (z *PrecalculatedZone) ZoneIntervalAt(i Instant) ZoneInterval {
	n := len(z.intervals)
	if n == 0 {
		if z.tail != nil {
			return z.tail.ZoneIntervalAt(i)
		}
		return ZoneInterval{Start: MinInstant, End: MaxInstant}
	}

	if z.tail != nil && i >= z.intervals[n-1].End {
		return z.tail.ZoneIntervalAt(i)
	}

	idx := sort.Search(n, func(k int) bool { return z.intervals[k].End > i })
	if idx >= n {
		idx = n - 1
	}
	return z.intervals[idx]
}
