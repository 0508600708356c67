package chrono

import (
	"math"
	"time"
)

// Instant represents an instantaneous point on the continuous UTC
// timeline, independent of any zone or calendar. It is stored as a signed
// 64-bit tick count (100ns units) since the Unix epoch, spanning roughly
// ±29,000 years. There are no leap seconds on this timeline.
type Instant struct {
	ticks int64
}

// Now returns the Instant representing the current point in time.
func Now() Instant {
	now := time.Now().UTC()
	return Instant{ticks: now.Unix()*TicksPerSecond + int64(now.Nanosecond())/NanosecondsPerTick}
}

// InstantOfTicks returns the Instant that is the given number of ticks
// (100ns units) since the Unix epoch.
func InstantOfTicks(ticks int64) Instant {
	return Instant{ticks: ticks}
}

// InstantOfNanoseconds returns the Instant that is the given number of
// nanoseconds since the Unix epoch, truncated to the nearest tick.
func InstantOfNanoseconds(nsec int64) Instant {
	return Instant{ticks: nsec / NanosecondsPerTick}
}

// EpochTicks returns the number of ticks since the Unix epoch represented
// by i. This is the only state an Instant carries.
func (i Instant) EpochTicks() int64 { return i.ticks }

// EpochNanoseconds returns the number of nanoseconds since the Unix epoch
// represented by i. The result overflows silently for instants far enough
// from the epoch that the nanosecond count itself would not fit in an
// int64; EpochTicks is exact over the full range.
func (i Instant) EpochNanoseconds() int64 { return i.ticks * NanosecondsPerTick }

// Plus returns i+d, or ErrOverflow if the result cannot be represented.
func (i Instant) Plus(d Duration) (Instant, error) {
	sum, under, over := addInt64(i.ticks, d.ticks)
	if under || over {
		return Instant{}, ErrOverflow
	}
	return Instant{ticks: sum}, nil
}

// Add returns i+d. It panics if the result would overflow.
func (i Instant) Add(d Duration) Instant {
	out, err := i.Plus(d)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Minus returns the Duration i-v, or ErrOverflow if the result cannot be
// represented.
func (i Instant) Minus(v Instant) (Duration, error) {
	if v.ticks == math.MinInt64 {
		// -v.ticks itself would overflow; i - MinInt64 fits only when i is negative.
		if i.ticks >= 0 {
			return Duration{}, ErrOverflow
		}
		return Duration{ticks: i.ticks - v.ticks}, nil
	}
	diff, under, over := addInt64(i.ticks, -v.ticks)
	if under || over {
		return Duration{}, ErrOverflow
	}
	return Duration{ticks: diff}, nil
}

// Sub returns the Duration i-v. It panics if the result would overflow.
func (i Instant) Sub(v Instant) Duration {
	out, err := i.Minus(v)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Until is shorthand for v.Sub(i): the Duration elapsed from i to v.
func (i Instant) Until(v Instant) Duration {
	return v.Sub(i)
}

// Elapsed is shorthand for i.Until(Now()).
func (i Instant) Elapsed() Duration {
	return i.Until(Now())
}

// Compare orders i against v: -1 if i < v, 1 if i > v, 0 if equal.
func (i Instant) Compare(v Instant) int {
	switch {
	case i.ticks < v.ticks:
		return -1
	case i.ticks > v.ticks:
		return 1
	default:
		return 0
	}
}

// Before reports whether i occurs strictly before v.
func (i Instant) Before(v Instant) bool { return i.ticks < v.ticks }

// After reports whether i occurs strictly after v.
func (i Instant) After(v Instant) bool { return i.ticks > v.ticks }

func (i Instant) String() string {
	return i.UTC().String()
}

// MinInstant returns the smallest representable Instant, a reserved
// sentinel used by unbounded zone intervals.
func MinInstant() Instant { return Instant{ticks: math.MinInt64} }

// MaxInstant returns the largest representable Instant, a reserved
// sentinel used by unbounded zone intervals.
func MaxInstant() Instant { return Instant{ticks: math.MaxInt64} }

// toStdTime converts i to a standard library time.Time in UTC. Nothing in
// the package calls it (String formats through UTC()). It is not part of
// the public surface: Instant deliberately does not interoperate with
// time.Time as a host-platform interop shim.
func (i Instant) toStdTime() time.Time {
	sec := i.ticks / TicksPerSecond
	rem := i.ticks % TicksPerSecond
	if rem < 0 {
		rem += TicksPerSecond
		sec--
	}
	return time.Unix(sec, rem*NanosecondsPerTick).UTC()
}

func instantFromStdTime(t time.Time) Instant {
	return Instant{ticks: t.Unix()*TicksPerSecond + int64(t.Nanosecond())/NanosecondsPerTick}
}
