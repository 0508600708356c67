package tz

import "fmt"

// SkippedTimeError is returned when a local instant falls inside a gap
// (the clock sprang forward past it) and the caller requested strict
// resolution.
type SkippedTimeError struct {
	Local  LocalInstant
	ZoneID string
}

func (e *SkippedTimeError) Error() string {
	return fmt.Sprintf("tz: local time is skipped in zone %q (daylight saving gap)", e.ZoneID)
}

// AmbiguousTimeError is returned when a local instant occurs twice (the
// clock fell back over it) and the caller requested strict resolution.
type AmbiguousTimeError struct {
	Local          LocalInstant
	ZoneID         string
	Earlier, Later ZoneInterval
}

func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("tz: local time is ambiguous in zone %q, between %s and %s", e.ZoneID, e.Earlier.Name, e.Later.Name)
}

// UnknownZoneIDError is returned by RequireForID when no provider
// recognizes the requested id.
type UnknownZoneIDError struct {
	ZoneID string
}

func (e *UnknownZoneIDError) Error() string {
	return fmt.Sprintf("tz: unknown zone id %q", e.ZoneID)
}
