package chrono

import "fmt"

// LocalTime is a time of day without a date or time zone, with nanosecond
// resolution, stored as nanoseconds since midnight in [0, 86_400_000_000_000).
type LocalTime struct {
	nanoOfDay int64
}

// Midnight is 00:00:00.
var Midnight = LocalTime{}

// LocalTimeOf returns the LocalTime representing the given hour, minute,
// second, and nanosecond offset within that second. Panics if any
// component is out of range.
func LocalTimeOf(hour, min, sec, nsec int) LocalTime {
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 || nsec < 0 || nsec >= int(NanosecondsPerSecond) {
		panic(fmt.Sprintf("%v: invalid time %02d:%02d:%02d.%09d", ErrOutOfRange, hour, min, sec, nsec))
	}
	return LocalTime{nanoOfDay: int64(hour)*NanosecondsPerHour + int64(min)*NanosecondsPerMinute + int64(sec)*NanosecondsPerSecond + int64(nsec)}
}

// localTimeOfNanoOfDay constructs a LocalTime directly from an already
// validated nanosecond-of-day value.
func localTimeOfNanoOfDay(nanoOfDay int64) LocalTime {
	return LocalTime{nanoOfDay: nanoOfDay}
}

// NanosecondOfDay returns the number of nanoseconds since midnight
// represented by t.
func (t LocalTime) NanosecondOfDay() int64 { return t.nanoOfDay }

// Clock returns the hour, minute, and second represented by t.
func (t LocalTime) Clock() (hour, min, sec int) {
	n := t.nanoOfDay
	hour = int(n / NanosecondsPerHour)
	n %= NanosecondsPerHour
	min = int(n / NanosecondsPerMinute)
	n %= NanosecondsPerMinute
	sec = int(n / NanosecondsPerSecond)
	return
}

// Nanosecond returns the nanosecond offset within the second represented by
// t, in [0, 999999999].
func (t LocalTime) Nanosecond() int {
	return int(t.nanoOfDay % NanosecondsPerSecond)
}

// Compare orders t against t2: -1 if t < t2, 1 if t > t2, 0 if equal.
func (t LocalTime) Compare(t2 LocalTime) int {
	switch {
	case t.nanoOfDay < t2.nanoOfDay:
		return -1
	case t.nanoOfDay > t2.nanoOfDay:
		return 1
	default:
		return 0
	}
}

// PlusHours returns t shifted by the given number of hours, wrapping
// modulo 24h.
func (t LocalTime) PlusHours(hours int64) LocalTime {
	return t.plusNanos(hours * NanosecondsPerHour)
}

// PlusMinutes returns t shifted by the given number of minutes, wrapping
// modulo 24h.
func (t LocalTime) PlusMinutes(mins int64) LocalTime {
	return t.plusNanos(mins * NanosecondsPerMinute)
}

// PlusSeconds returns t shifted by the given number of seconds, wrapping
// modulo 24h.
func (t LocalTime) PlusSeconds(secs int64) LocalTime {
	return t.plusNanos(secs * NanosecondsPerSecond)
}

// PlusNanoseconds returns t shifted by the given number of nanoseconds,
// wrapping modulo 24h.
func (t LocalTime) PlusNanoseconds(nsec int64) LocalTime {
	return t.plusNanos(nsec)
}

func (t LocalTime) plusNanos(delta int64) LocalTime {
	n := (t.nanoOfDay + delta) % NanosecondsPerDay
	if n < 0 {
		n += NanosecondsPerDay
	}
	return LocalTime{nanoOfDay: n}
}

// Plus adds a Period to t. The period must have no date component (years,
// months, weeks, or days); ErrInvalidPeriod is returned otherwise. Time
// components wrap modulo 24h, discarding any day carry.
func (t LocalTime) Plus(p Period) (LocalTime, error) {
	if p.hasDateComponent() {
		return LocalTime{}, ErrInvalidPeriod
	}
	return t.plusNanos(p.timeComponentNanos()), nil
}

func (t LocalTime) String() string {
	hour, min, sec := t.Clock()
	nsec := t.Nanosecond()
	if nsec == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hour, min, sec)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", hour, min, sec, nsec)
}

// In returns the OffsetTime combining t with the given offset.
func (t LocalTime) In(offset Offset) OffsetTime {
	return OffsetTime{local: t, offset: offset}
}
