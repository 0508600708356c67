package chrono

import "fmt"

// UTC is the zero Offset, representing Universal Coordinated Time.
const UTC = Offset(0)

// MinPracticalOffset and MaxPracticalOffset bound the range real-world
// offsets fall within. They are advisory only: the stored range is the
// wider (-24h, +24h), and construction does not reject values outside
// these two.
const (
	MinPracticalOffset = Offset(-18 * 3600)
	MaxPracticalOffset = Offset(18 * 3600)
)

// secondsPerDay bounds the range an Offset is reduced into: the stored
// value stays strictly within (-24h, +24h).
const secondsPerDay = 24 * 60 * 60

// Offset represents a constant displacement from UTC, stored as signed
// seconds. Inputs outside (-24h, +24h) are reduced modulo 24h.
type Offset int32

// OffsetOfSeconds returns the Offset representing the given number of
// seconds, reduced into (-24h, +24h) if necessary.
func OffsetOfSeconds(seconds int) Offset {
	s := seconds % secondsPerDay
	return Offset(s)
}

// OffsetOfHoursMinutes returns the Offset represented by a number of hours
// and minutes. If hours is non-zero, the sign of minutes is ignored, e.g.:
//   - OffsetOfHoursMinutes(-2, 30) = -02:30
//   - OffsetOfHoursMinutes(2, -30) = +02:30
//   - OffsetOfHoursMinutes(0, 30) = +00:30
//   - OffsetOfHoursMinutes(0, -30) = -00:30
func OffsetOfHoursMinutes(hours, mins int) Offset {
	return OffsetOfSeconds(makeOffsetSeconds(hours, mins))
}

func makeOffsetSeconds(hours, mins int) int {
	if hours == 0 {
		return mins * 60
	}
	if mins < 0 {
		mins = -mins
	}
	if hours < 0 {
		return hours*3600 - mins*60
	}
	return hours*3600 + mins*60
}

// Seconds returns the number of seconds represented by o.
func (o Offset) Seconds() int { return int(o) }

// Plus returns o+o2, reduced into (-24h, +24h).
func (o Offset) Plus(o2 Offset) Offset {
	return OffsetOfSeconds(int(o) + int(o2))
}

// Negate returns -o.
func (o Offset) Negate() Offset { return -o }

// Compare orders o against o2: -1 if o < o2, 1 if o > o2, 0 if equal.
func (o Offset) Compare(o2 Offset) int {
	switch {
	case o < o2:
		return -1
	case o > o2:
		return 1
	default:
		return 0
	}
}

// AsDuration returns the Duration equivalent to applying o for its own
// length of time (used when converting between local and UTC instants).
func (o Offset) AsDuration() Duration {
	return DurationOfSeconds(int64(o))
}

// String returns the ISO 8601 time-zone designator ±hh:mm, followed by
// :ss when the seconds are non-zero. The zero Offset formats as "Z".
func (o Offset) String() string {
	if o == 0 {
		return "Z"
	}

	sign := "+"
	s := int(o)
	if s < 0 {
		sign = "-"
		s = -s
	}

	hours := s / 3600
	mins := (s % 3600) / 60
	secs := s % 60

	if secs != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, mins, secs)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, mins)
}
