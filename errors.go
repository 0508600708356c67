package chrono

import "errors"

// Sentinel errors for the failure kinds this package returns. Use
// errors.Is to test for a particular kind; wrapped errors carry
// additional context via %w.
var (
	// ErrUnsupportedRepresentation indicates that the requested value
	// cannot be represented, or that the requested value is not present.
	ErrUnsupportedRepresentation = errors.ErrUnsupported

	// ErrOutOfRange indicates a year/month/day/hour/... value is out of
	// range for its calendar or fixed bound.
	ErrOutOfRange = errors.New("chrono: value out of range")

	// ErrInvalidArgument indicates an operation that requires matching
	// calendars (comparison, period calculation) was given mismatched ones.
	ErrInvalidArgument = errors.New("chrono: invalid argument")

	// ErrOverflow indicates 64-bit tick/nanosecond arithmetic exceeded the
	// representable range.
	ErrOverflow = errors.New("chrono: arithmetic overflow")

	// ErrInvalidPeriod indicates a date-bearing Period was added to a
	// LocalTime, or a time-bearing Period was added to a LocalDate.
	ErrInvalidPeriod = errors.New("chrono: invalid period for this operation")

	// ErrUnknownZoneID indicates a zone id had no match across all
	// configured providers.
	ErrUnknownZoneID = errors.New("chrono: unknown time zone id")

	// ErrMalformedTzdbStream indicates a tzdb reader encountered an unknown
	// discriminator inside a known field, a bad length, or an out-of-range
	// string-pool index.
	ErrMalformedTzdbStream = errors.New("chrono: malformed tzdb stream")
)
