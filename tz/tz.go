// Package tz implements the time-zone engine: zone intervals, the Fixed,
// Precalculated, daylight-savings-rule, and cached zone variants, and the
// local-instant-to-UTC-instant resolution algorithm that classifies a wall
// clock reading as unambiguous, ambiguous (clock fell back), or a gap
// (clock sprang forward).
//
// This package intentionally does not import the root chrono package: the
// original design chains CalendarSystem, Chronology, and DateTimeZone
// together in a reference cycle (see the design notes this module is built
// from), and the rewrite eliminates that cycle by having tz work directly
// in epoch ticks rather than chrono.Instant. The root package converts at
// its boundary (Instant.EpochTicks() / InstantOfTicks()).
package tz

import "math"

// TicksPerSecond mirrors chrono's tick unit (100ns); duplicated here rather
// than imported to keep this package free of a dependency on the root
// package (see the package doc comment).
const TicksPerSecond int64 = 10_000_000

// Instant is a point on the UTC timeline, expressed as ticks since the Unix
// epoch.
type Instant int64

// MinInstant and MaxInstant bound the representable range and double as
// the sentinels for an unbounded zone-interval end.
const (
	MinInstant Instant = math.MinInt64
	MaxInstant Instant = math.MaxInt64
)

// LocalInstant is a tick value that, interpreted as UTC, would display the
// same wall-clock reading as the local time it represents. It carries no
// zone of its own; resolving it against a DateTimeZone is what produces a
// real Instant.
type LocalInstant int64
