package tz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempora-go/chrono/tzdb"
)

func sampleTzdbDatabase() *tzdb.Database {
	return &tzdb.Database{
		Version: "2024a",
		Zones: []tzdb.ZoneData{
			{
				ID:   "UTC",
				Kind: tzdb.KindFixed,
				Fixed: &tzdb.FixedZoneData{
					OffsetSeconds: 0,
					Name:          "UTC",
				},
			},
			{
				ID:   "America/Los_Angeles",
				Kind: tzdb.KindPrecalculated,
				Precalculated: &tzdb.PrecalculatedZoneData{
					Intervals: []tzdb.IntervalData{
						{Start: int64(MinInstant), WallOffsetSeconds: -8 * 3600, SavingsSeconds: 0, Name: "PST"},
					},
					Tail: &tzdb.DaylightRulesData{
						StandardOffsetSeconds: -8 * 3600,
						Standard: tzdb.RecurrenceData{
							Name: "PST", SavingsSeconds: 0, YearStart: 2007, YearEnd: 2037,
							MonthOfYear: 11, DayOfMonth: 1, DayOfWeek: 7, AdvanceDayOfWeek: true,
							TimeOfDayTicks: 1 * TicksPerSecond * 3600, Mode: byte(ModeStandard),
						},
						Daylight: tzdb.RecurrenceData{
							Name: "PDT", SavingsSeconds: 3600, YearStart: 2007, YearEnd: 2037,
							MonthOfYear: 3, DayOfMonth: 8, DayOfWeek: 7, AdvanceDayOfWeek: true,
							TimeOfDayTicks: 2 * TicksPerSecond * 3600, Mode: byte(ModeStandard),
						},
					},
				},
			},
		},
		IDMap: map[string]string{
			"US/Pacific": "America/Los_Angeles",
		},
	}
}

func TestTzdbProviderBuildsLiveZones(t *testing.T) {
	p, err := NewTzdbProvider(sampleTzdbDatabase())
	require.NoError(t, err)

	utc, ok := p.ForID("UTC")
	require.True(t, ok)
	assert.True(t, utc.IsFixed())
	assert.EqualValues(t, 0, utc.MinOffsetSeconds())

	la, ok := p.ForID("America/Los_Angeles")
	require.True(t, ok)
	assert.False(t, la.IsFixed())

	alias, ok := p.ForID("US/Pacific")
	require.True(t, ok)
	assert.Equal(t, la.ZoneIntervalAt(0), alias.ZoneIntervalAt(0))
}

func TestTzdbProviderResolvesKnownDSTTransition(t *testing.T) {
	p, err := NewTzdbProvider(sampleTzdbDatabase())
	require.NoError(t, err)

	la, ok := p.ForID("America/Los_Angeles")
	require.True(t, ok)

	before := Instant(1268560799 * TicksPerSecond)
	after := Instant(1268560801 * TicksPerSecond)

	ivBefore := la.ZoneIntervalAt(before)
	ivAfter := la.ZoneIntervalAt(after)
	assert.Equal(t, int32(-8*3600), ivBefore.WallOffset)
	assert.Equal(t, int32(-7*3600), ivAfter.WallOffset)
}

func TestTzdbProviderIDsIncludesAliases(t *testing.T) {
	p, err := NewTzdbProvider(sampleTzdbDatabase())
	require.NoError(t, err)

	ids := p.IDs()
	assert.Contains(t, ids, "UTC")
	assert.Contains(t, ids, "America/Los_Angeles")
	assert.Contains(t, ids, "US/Pacific")
}
