package tzdb

import (
	"encoding/binary"
	"math"
)

// Write encodes db into the tagged binary container format: a magic u32,
// a StringPool record (always first, so Read can resolve pool indices
// in every later record), then one record per remaining populated field.
func Write(db *Database) []byte {
	freq := make(map[string]int)
	countString := func(s string) {
		if s != "" {
			freq[s]++
		}
	}
	for _, z := range db.Zones {
		countString(z.ID)
		countZoneStrings(z, countString)
	}
	for k, v := range db.IDMap {
		countString(k)
		countString(v)
	}
	for k, v := range db.WindowsZones {
		countString(k)
		countString(v)
	}
	for k, v := range db.WindowsStandardNames {
		countString(k)
		countString(v)
	}
	for _, g := range db.GeoLocations {
		countString(g.ZoneID)
		countString(g.CountryName)
		countString(g.CountryCode)
		countString(g.Comment)
	}

	pool := newStringPool(freq)

	var out []byte
	out = appendU32(out, Magic)
	out = appendRecord(out, TagStringPool, pool.encode())

	if db.Version != "" {
		out = appendRecord(out, TagTzdbVersion, putString(nil, db.Version))
	}
	for _, z := range db.Zones {
		out = appendRecord(out, TagTimeZone, encodeZone(z, pool))
	}
	if len(db.IDMap) > 0 {
		out = appendRecord(out, TagTzdbIdMap, encodeStringPairMap(db.IDMap, pool))
	}
	if len(db.WindowsZones) > 0 {
		out = appendRecord(out, TagCldrSupplementalWindowsZones, encodeStringPairMap(db.WindowsZones, pool))
	}
	if len(db.WindowsStandardNames) > 0 {
		out = appendRecord(out, TagWindowsAdditionalStandardNameToIdMapping, encodeStringPairMap(db.WindowsStandardNames, pool))
	}
	if len(db.GeoLocations) > 0 {
		out = appendRecord(out, TagGeoLocations, encodeGeoLocations(db.GeoLocations, pool))
	}
	return out
}

func countZoneStrings(z ZoneData, count func(string)) {
	switch z.Kind {
	case KindFixed:
		count(z.Fixed.Name)
	case KindPrecalculated:
		for _, iv := range z.Precalculated.Intervals {
			count(iv.Name)
		}
		if z.Precalculated.Tail != nil {
			count(z.Precalculated.Tail.Standard.Name)
			count(z.Precalculated.Tail.Daylight.Name)
		}
	case KindDaylightRules:
		count(z.Daylight.Standard.Name)
		count(z.Daylight.Daylight.Name)
	}
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendRecord(buf []byte, tag Tag, payload []byte) []byte {
	buf = append(buf, byte(tag))
	buf = putVarint7(buf, uint64(len(payload)))
	return append(buf, payload...)
}

func encodeStringPairMap(m map[string]string, pool *stringPool) []byte {
	var buf []byte
	buf = putVarint7(buf, uint64(len(m)))
	for k, v := range m {
		buf = putVarint7(buf, uint64(pool.indexOf(k)))
		buf = putVarint7(buf, uint64(pool.indexOf(v)))
	}
	return buf
}

func encodeGeoLocations(locs []GeoLocation, pool *stringPool) []byte {
	var buf []byte
	buf = putVarint7(buf, uint64(len(locs)))
	for _, g := range locs {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(g.Latitude))
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(g.Longitude))
		buf = append(buf, tmp[:]...)
		buf = putVarint7(buf, uint64(pool.indexOf(g.ZoneID)))
		buf = putVarint7(buf, uint64(pool.indexOf(g.CountryName)))
		buf = putVarint7(buf, uint64(pool.indexOf(g.CountryCode)))
		buf = putVarint7(buf, uint64(pool.indexOf(g.Comment)))
	}
	return buf
}

func encodeZone(z ZoneData, pool *stringPool) []byte {
	var buf []byte
	buf = putVarint7(buf, uint64(pool.indexOf(z.ID)))
	buf = append(buf, byte(z.Kind))
	switch z.Kind {
	case KindFixed:
		buf = putSignedVarint(buf, int64(z.Fixed.OffsetSeconds))
		buf = putVarint7(buf, uint64(pool.indexOf(z.Fixed.Name)))
	case KindPrecalculated:
		buf = encodePrecalculated(buf, z.Precalculated, pool)
	case KindDaylightRules:
		buf = encodeDaylightRules(buf, z.Daylight, pool)
	}
	return buf
}

func encodePrecalculated(buf []byte, p *PrecalculatedZoneData, pool *stringPool) []byte {
	buf = putVarint7(buf, uint64(len(p.Intervals)))
	prevStart := int64(0)
	for _, iv := range p.Intervals {
		buf = putSignedVarint(buf, iv.Start-prevStart)
		prevStart = iv.Start
		buf = putSignedVarint(buf, int64(iv.WallOffsetSeconds))
		buf = putSignedVarint(buf, int64(iv.SavingsSeconds))
		buf = putVarint7(buf, uint64(pool.indexOf(iv.Name)))
	}
	if p.Tail != nil {
		buf = append(buf, 1)
		buf = encodeDaylightRules(buf, p.Tail, pool)
	} else {
		buf = append(buf, 0)
	}
	return buf
}

func encodeDaylightRules(buf []byte, d *DaylightRulesData, pool *stringPool) []byte {
	buf = putSignedVarint(buf, int64(d.StandardOffsetSeconds))
	buf = encodeRecurrence(buf, d.Standard, pool)
	buf = encodeRecurrence(buf, d.Daylight, pool)
	return buf
}

func encodeRecurrence(buf []byte, r RecurrenceData, pool *stringPool) []byte {
	buf = putVarint7(buf, uint64(pool.indexOf(r.Name)))
	buf = putSignedVarint(buf, int64(r.SavingsSeconds))
	buf = putSignedVarint(buf, int64(r.YearStart))
	buf = putSignedVarint(buf, int64(r.YearEnd))
	buf = putSignedVarint(buf, int64(r.MonthOfYear))
	buf = putSignedVarint(buf, int64(r.DayOfMonth))
	buf = putSignedVarint(buf, int64(r.DayOfWeek))
	if r.AdvanceDayOfWeek {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = putSignedVarint(buf, r.TimeOfDayTicks)
	buf = append(buf, r.Mode)
	return buf
}
