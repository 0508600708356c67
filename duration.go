package chrono

import (
	"fmt"
	"math"
)

// Duration represents a signed elapsed amount of time, stored as a signed
// 64-bit tick count (1 tick == 100ns). It is total-ordered and arithmetic
// with Instant and with other Durations is exact.
type Duration struct {
	ticks int64
}

// DurationOfTicks returns the Duration representing the given number of
// ticks (100ns units).
func DurationOfTicks(ticks int64) Duration {
	return Duration{ticks: ticks}
}

// DurationOfNanoseconds returns the Duration representing the given number
// of nanoseconds, truncated to the nearest tick.
func DurationOfNanoseconds(nsec int64) Duration {
	return Duration{ticks: nsec / NanosecondsPerTick}
}

// DurationOfMicroseconds returns the Duration representing the given number
// of microseconds. Panics on overflow.
func DurationOfMicroseconds(usec int64) Duration {
	return mustTicks(mulInt64(usec, TicksPerMillisecond/1000))
}

// DurationOfMilliseconds returns the Duration representing the given number
// of milliseconds. Panics on overflow.
func DurationOfMilliseconds(msec int64) Duration {
	return mustTicks(mulInt64(msec, TicksPerMillisecond))
}

// DurationOfSeconds returns the Duration representing the given number of
// seconds. Panics on overflow.
func DurationOfSeconds(sec int64) Duration {
	return mustTicks(mulInt64(sec, TicksPerSecond))
}

// DurationOfMinutes returns the Duration representing the given number of
// minutes. Panics on overflow.
func DurationOfMinutes(min int64) Duration {
	return mustTicks(mulInt64(min, TicksPerMinute))
}

// DurationOfHours returns the Duration representing the given number of
// hours. Panics on overflow.
func DurationOfHours(hours int64) Duration {
	return mustTicks(mulInt64(hours, TicksPerHour))
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 {
		// MinInt64 / -1 wraps back to MinInt64, so the check below misses it.
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func mustTicks(ticks int64, ok bool) Duration {
	if !ok {
		panic(ErrOverflow.Error())
	}
	return Duration{ticks: ticks}
}

// Ticks returns the number of ticks (100ns units) represented by d.
func (d Duration) Ticks() int64 { return d.ticks }

// Nanoseconds returns the number of nanoseconds represented by d. The
// result overflows silently if d is farther from zero than an int64
// nanosecond count can represent; Ticks is exact over the full range.
func (d Duration) Nanoseconds() int64 { return d.ticks * NanosecondsPerTick }

// Microseconds returns the (truncated) number of microseconds in d.
func (d Duration) Microseconds() int64 { return d.ticks / (TicksPerMillisecond / 1000) }

// Milliseconds returns the (truncated) number of milliseconds in d.
func (d Duration) Milliseconds() int64 { return d.ticks / TicksPerMillisecond }

// Seconds returns the elapsed time in d as a floating-point number of
// seconds.
func (d Duration) Seconds() float64 { return float64(d.ticks) / float64(TicksPerSecond) }

// Minutes returns the elapsed time in d as a floating-point number of
// minutes.
func (d Duration) Minutes() float64 { return float64(d.ticks) / float64(TicksPerMinute) }

// Hours returns the elapsed time in d as a floating-point number of hours.
func (d Duration) Hours() float64 { return float64(d.ticks) / float64(TicksPerHour) }

// Plus returns d+d2, or ErrOverflow if the result cannot be represented.
func (d Duration) Plus(d2 Duration) (Duration, error) {
	sum, under, over := addInt64(d.ticks, d2.ticks)
	if under || over {
		return Duration{}, ErrOverflow
	}
	return Duration{ticks: sum}, nil
}

// Add returns d+d2. It panics if the result would overflow; use Plus to
// handle that case without a panic.
func (d Duration) Add(d2 Duration) Duration {
	out, err := d.Plus(d2)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Minus returns d-d2, or ErrOverflow if the result cannot be represented.
func (d Duration) Minus(d2 Duration) (Duration, error) {
	if d2.ticks == math.MinInt64 {
		// d2 cannot be negated; d - MinInt64 fits only when d is negative.
		if d.ticks >= 0 {
			return Duration{}, ErrOverflow
		}
		return Duration{ticks: d.ticks - d2.ticks}, nil
	}
	return d.Plus(d2.Negate())
}

// Sub returns d-d2. It panics if the result would overflow.
func (d Duration) Sub(d2 Duration) Duration {
	out, err := d.Minus(d2)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// ScaledBy returns d*factor, or ErrOverflow if the result cannot be
// represented.
func (d Duration) ScaledBy(factor int64) (Duration, error) {
	ticks, ok := mulInt64(d.ticks, factor)
	if !ok {
		return Duration{}, ErrOverflow
	}
	return Duration{ticks: ticks}, nil
}

// Scale returns d*factor. It panics if the result would overflow.
func (d Duration) Scale(factor int64) Duration {
	return mustTicks(mulInt64(d.ticks, factor))
}

// Negate returns -d. Negating MinDuration panics, since its magnitude has
// no positive representation.
func (d Duration) Negate() Duration {
	if d.ticks == math.MinInt64 {
		panic(ErrOverflow.Error())
	}
	return Duration{ticks: -d.ticks}
}

// Abs returns the absolute value of d.
func (d Duration) Abs() Duration {
	if d.ticks < 0 {
		return d.Negate()
	}
	return d
}

// Compare orders d against d2: -1 if d < d2, 1 if d > d2, 0 if equal.
func (d Duration) Compare(d2 Duration) int {
	switch {
	case d.ticks < d2.ticks:
		return -1
	case d.ticks > d2.ticks:
		return 1
	default:
		return 0
	}
}

func (d Duration) String() string {
	if d.ticks == 0 {
		return "PT0S"
	}

	sign := ""
	ticks := d.ticks
	if ticks < 0 {
		sign = "-"
		ticks = -ticks
	}

	whole := ticks / TicksPerSecond
	frac := ticks % TicksPerSecond

	if frac == 0 {
		return fmt.Sprintf("%sPT%dS", sign, whole)
	}
	return fmt.Sprintf("%sPT%d.%07dS", sign, whole, frac)
}

// ZeroDuration returns the zero-length Duration.
func ZeroDuration() Duration { return Duration{} }

// MinDuration returns the smallest representable Duration.
func MinDuration() Duration { return Duration{ticks: math.MinInt64} }

// MaxDuration returns the largest representable Duration.
func MaxDuration() Duration { return Duration{ticks: math.MaxInt64} }
