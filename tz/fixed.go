package tz

// FixedZone is a DateTimeZone with a single interval spanning
// (MinInstant, MaxInstant) at a constant offset — the degenerate case used
// for UTC and simple fixed-offset zones like "+05:30".
type FixedZone struct {
	id            string
	name          string
	offsetSeconds int32
}

// NewFixedZone returns the fixed zone id, displaying name, at the given
// constant offset in seconds.
func NewFixedZone(id, name string, offsetSeconds int32) *FixedZone {
	return &FixedZone{id: id, name: name, offsetSeconds: offsetSeconds}
}

func (z *FixedZone) ID() string          { return z.id }
func (z *FixedZone) IsFixed() bool       { return true }
func (z *FixedZone) MinOffsetSeconds() int32 { return z.offsetSeconds }
func (z *FixedZone) MaxOffsetSeconds() int32 { return z.offsetSeconds }

func (z *FixedZone) ZoneIntervalAt(Instant) ZoneInterval {
	return ZoneInterval{Name: z.name, Start: MinInstant, End: MaxInstant, WallOffset: z.offsetSeconds}
}

// UTC is the fixed zone at zero offset.
var UTC DateTimeZone = NewFixedZone("UTC", "UTC", 0)
