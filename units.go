package chrono

// Numeric substrate: fixed unit constants and the small helpers built on
// top of them (see utils.go for the overflow-checked int64 arithmetic).
//
// Instant and Duration are stored in ticks (100ns units) rather than
// nanoseconds: a signed 64-bit nanosecond count only reaches about ±292
// years from the epoch, and this library needs to span roughly ±29,000
// years, which a 100ns unit provides. LocalTime, by contrast,
// only ever measures an offset within a single day, so it stores plain
// nanoseconds-since-midnight with no range concern.
const (
	NanosecondsPerTick int64 = 100

	TicksPerMillisecond int64 = 10_000
	TicksPerSecond      int64 = 1_000 * TicksPerMillisecond
	TicksPerMinute      int64 = 60 * TicksPerSecond
	TicksPerHour        int64 = 60 * TicksPerMinute
	TicksPerDay         int64 = 24 * TicksPerHour

	NanosecondsPerMicrosecond int64 = 1_000
	NanosecondsPerMillisecond int64 = 1_000_000
	NanosecondsPerSecond      int64 = 1_000_000_000
	NanosecondsPerMinute      int64 = 60 * NanosecondsPerSecond
	NanosecondsPerHour        int64 = 60 * NanosecondsPerMinute
	NanosecondsPerDay         int64 = 24 * NanosecondsPerHour
)
