package tz

import (
	"sort"

	"github.com/tempora-go/chrono/tzdb"
)

// TzdbProvider is the production Provider: every zone it serves is built
// once, at construction time, from an in-memory tzdb.Database, never
// re-parsed per lookup.
type TzdbProvider struct {
	zones map[string]DateTimeZone
	ids   []string
}

// NewTzdbProvider decodes every zone in db into a DateTimeZone and
// resolves db.IDMap aliases to their canonical zone.
func NewTzdbProvider(db *tzdb.Database) (*TzdbProvider, error) {
	p := &TzdbProvider{zones: make(map[string]DateTimeZone, len(db.Zones))}

	for _, z := range db.Zones {
		zone, err := buildZone(z)
		if err != nil {
			return nil, err
		}
		p.zones[z.ID] = NewCachedZone(zone)
		p.ids = append(p.ids, z.ID)
	}

	for alias, canonical := range db.IDMap {
		if zone, ok := p.zones[canonical]; ok {
			p.zones[alias] = zone
			p.ids = append(p.ids, alias)
		}
	}

	sort.Strings(p.ids)
	return p, nil
}

func (p *TzdbProvider) IDs() []string { return p.ids }

func (p *TzdbProvider) ForID(id string) (DateTimeZone, bool) {
	z, ok := p.zones[id]
	return z, ok
}

func buildZone(z tzdb.ZoneData) (DateTimeZone, error) {
	switch z.Kind {
	case tzdb.KindFixed:
		return NewFixedZone(z.ID, z.Fixed.Name, z.Fixed.OffsetSeconds), nil

	case tzdb.KindDaylightRules:
		return NewDaylightSavingsZone(z.ID, z.Daylight.StandardOffsetSeconds,
			buildRecurrence(z.Daylight.Standard), buildRecurrence(z.Daylight.Daylight)), nil

	case tzdb.KindPrecalculated:
		intervals := make([]ZoneInterval, len(z.Precalculated.Intervals))
		for i, iv := range z.Precalculated.Intervals {
			start := Instant(iv.Start)
			if i == 0 {
				start = MinInstant
			}
			intervals[i] = ZoneInterval{Name: iv.Name, Start: start, WallOffset: iv.WallOffsetSeconds, Savings: iv.SavingsSeconds}
		}
		for i := 0; i < len(intervals)-1; i++ {
			intervals[i].End = intervals[i+1].Start
		}

		var tail DateTimeZone
		if z.Precalculated.Tail != nil {
			tail = NewDaylightSavingsZone(z.ID, z.Precalculated.Tail.StandardOffsetSeconds,
				buildRecurrence(z.Precalculated.Tail.Standard), buildRecurrence(z.Precalculated.Tail.Daylight))
			if len(intervals) > 0 {
				intervals[len(intervals)-1].End = tail.ZoneIntervalAt(intervals[len(intervals)-1].Start).Start
			}
		} else if len(intervals) > 0 {
			intervals[len(intervals)-1].End = MaxInstant
		}

		return NewPrecalculatedZone(z.ID, intervals, tail), nil

	default:
		return nil, &UnknownZoneIDError{ZoneID: z.ID}
	}
}

func buildRecurrence(r tzdb.RecurrenceData) ZoneRecurrence {
	return ZoneRecurrence{
		Name:             r.Name,
		SavingsSeconds:   r.SavingsSeconds,
		YearStart:        int(r.YearStart),
		YearEnd:          int(r.YearEnd),
		MonthOfYear:      int(r.MonthOfYear),
		DayOfMonth:       int(r.DayOfMonth),
		DayOfWeek:        int(r.DayOfWeek),
		AdvanceDayOfWeek: r.AdvanceDayOfWeek,
		TimeOfDayTicks:   r.TimeOfDayTicks,
		Mode:             TransitionMode(r.Mode),
	}
}
