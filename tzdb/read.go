package tzdb

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Read decodes a tzdb container. The StringPool record must appear before
// any record that references pool indices; Write always emits it first.
// Unknown tags are skipped by their declared length, per the format's
// forward-compatibility rule.
func Read(data []byte) (*Database, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: truncated magic", ErrMalformedStream)
	}
	if got := binary.LittleEndian.Uint32(data[:4]); got != Magic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrMalformedStream, got)
	}
	data = data[4:]

	db := &Database{
		IDMap:                make(map[string]string),
		WindowsZones:         make(map[string]string),
		WindowsStandardNames: make(map[string]string),
	}
	var pool *stringPool

	for len(data) > 0 {
		tag := Tag(data[0])
		data = data[1:]

		length, used, err := readVarint7(data)
		if err != nil {
			return nil, err
		}
		data = data[used:]
		if uint64(len(data)) < length {
			return nil, fmt.Errorf("%w: record length exceeds remaining data", ErrMalformedStream)
		}
		payload := data[:length]
		data = data[length:]

		switch tag {
		case TagStringPool:
			pool, err = decodeStringPool(payload)
			if err != nil {
				return nil, err
			}
		case TagTzdbVersion:
			s, _, err := readString(payload)
			if err != nil {
				return nil, err
			}
			db.Version = s
		case TagTimeZone:
			if pool == nil {
				return nil, fmt.Errorf("%w: TimeZone record before StringPool", ErrMalformedStream)
			}
			z, err := decodeZone(payload, pool)
			if err != nil {
				return nil, err
			}
			db.Zones = append(db.Zones, z)
		case TagTzdbIdMap:
			if err := decodeStringPairMap(payload, pool, db.IDMap); err != nil {
				return nil, err
			}
		case TagCldrSupplementalWindowsZones:
			if err := decodeStringPairMap(payload, pool, db.WindowsZones); err != nil {
				return nil, err
			}
		case TagWindowsAdditionalStandardNameToIdMapping:
			if err := decodeStringPairMap(payload, pool, db.WindowsStandardNames); err != nil {
				return nil, err
			}
		case TagGeoLocations:
			locs, err := decodeGeoLocations(payload, pool)
			if err != nil {
				return nil, err
			}
			db.GeoLocations = locs
		default:
			// Unknown tag: already skipped by slicing past its length above.
		}
	}

	return db, nil
}

func decodeStringPairMap(payload []byte, pool *stringPool, out map[string]string) error {
	if pool == nil {
		return fmt.Errorf("%w: string-pair record before StringPool", ErrMalformedStream)
	}
	count, used, err := readVarint7(payload)
	if err != nil {
		return err
	}
	payload = payload[used:]
	for i := uint64(0); i < count; i++ {
		k, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return err
		}
		payload = payload[n:]
		v, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return err
		}
		payload = payload[n:]
		out[k] = v
	}
	return nil
}

func decodeGeoLocations(payload []byte, pool *stringPool) ([]GeoLocation, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: GeoLocations record before StringPool", ErrMalformedStream)
	}
	count, used, err := readVarint7(payload)
	if err != nil {
		return nil, err
	}
	payload = payload[used:]

	out := make([]GeoLocation, 0, count)
	for i := uint64(0); i < count; i++ {
		if len(payload) < 16 {
			return nil, fmt.Errorf("%w: truncated geolocation", ErrMalformedStream)
		}
		lat := math.Float64frombits(binary.LittleEndian.Uint64(payload[:8]))
		lon := math.Float64frombits(binary.LittleEndian.Uint64(payload[8:16]))
		payload = payload[16:]

		zoneID, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return nil, err
		}
		payload = payload[n:]
		countryName, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return nil, err
		}
		payload = payload[n:]
		countryCode, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return nil, err
		}
		payload = payload[n:]
		comment, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return nil, err
		}
		payload = payload[n:]

		out = append(out, GeoLocation{Latitude: lat, Longitude: lon, ZoneID: zoneID, CountryName: countryName, CountryCode: countryCode, Comment: comment})
	}
	return out, nil
}

func decodeZone(payload []byte, pool *stringPool) (ZoneData, error) {
	id, n, err := pool.atIndexVarint(payload)
	if err != nil {
		return ZoneData{}, err
	}
	payload = payload[n:]

	if len(payload) < 1 {
		return ZoneData{}, fmt.Errorf("%w: truncated zone kind", ErrMalformedStream)
	}
	kind := ZoneKind(payload[0])
	payload = payload[1:]

	z := ZoneData{ID: id, Kind: kind}
	switch kind {
	case KindFixed:
		offset, n, err := readSignedVarint(payload)
		if err != nil {
			return ZoneData{}, err
		}
		payload = payload[n:]
		name, _, err := pool.atIndexVarint(payload)
		if err != nil {
			return ZoneData{}, err
		}
		z.Fixed = &FixedZoneData{OffsetSeconds: int32(offset), Name: name}

	case KindPrecalculated:
		p, _, err := decodePrecalculated(payload, pool)
		if err != nil {
			return ZoneData{}, err
		}
		z.Precalculated = p

	case KindDaylightRules:
		d, _, err := decodeDaylightRules(payload, pool)
		if err != nil {
			return ZoneData{}, err
		}
		z.Daylight = d

	default:
		return ZoneData{}, fmt.Errorf("%w: unknown zone kind %d", ErrMalformedStream, kind)
	}
	return z, nil
}

func decodePrecalculated(payload []byte, pool *stringPool) (*PrecalculatedZoneData, int, error) {
	orig := len(payload)
	count, n, err := readVarint7(payload)
	if err != nil {
		return nil, 0, err
	}
	payload = payload[n:]

	p := &PrecalculatedZoneData{Intervals: make([]IntervalData, 0, count)}
	start := int64(0)
	for i := uint64(0); i < count; i++ {
		delta, n, err := readSignedVarint(payload)
		if err != nil {
			return nil, 0, err
		}
		payload = payload[n:]
		start += delta

		wallOffset, n, err := readSignedVarint(payload)
		if err != nil {
			return nil, 0, err
		}
		payload = payload[n:]
		savings, n, err := readSignedVarint(payload)
		if err != nil {
			return nil, 0, err
		}
		payload = payload[n:]
		name, n, err := pool.atIndexVarint(payload)
		if err != nil {
			return nil, 0, err
		}
		payload = payload[n:]

		p.Intervals = append(p.Intervals, IntervalData{Start: start, WallOffsetSeconds: int32(wallOffset), SavingsSeconds: int32(savings), Name: name})
	}

	if len(payload) < 1 {
		return nil, 0, fmt.Errorf("%w: truncated tail marker", ErrMalformedStream)
	}
	hasTail := payload[0]
	payload = payload[1:]
	if hasTail == 1 {
		tail, n, err := decodeDaylightRules(payload, pool)
		if err != nil {
			return nil, 0, err
		}
		p.Tail = tail
		payload = payload[n:]
	}

	return p, orig - len(payload), nil
}

func decodeDaylightRules(payload []byte, pool *stringPool) (*DaylightRulesData, int, error) {
	orig := len(payload)
	offset, n, err := readSignedVarint(payload)
	if err != nil {
		return nil, 0, err
	}
	payload = payload[n:]

	standard, n, err := decodeRecurrence(payload, pool)
	if err != nil {
		return nil, 0, err
	}
	payload = payload[n:]

	daylight, n, err := decodeRecurrence(payload, pool)
	if err != nil {
		return nil, 0, err
	}
	payload = payload[n:]

	d := &DaylightRulesData{StandardOffsetSeconds: int32(offset), Standard: standard, Daylight: daylight}
	return d, orig - len(payload), nil
}

func decodeRecurrence(payload []byte, pool *stringPool) (RecurrenceData, int, error) {
	orig := len(payload)

	name, n, err := pool.atIndexVarint(payload)
	if err != nil {
		return RecurrenceData{}, 0, err
	}
	payload = payload[n:]

	var r RecurrenceData
	r.Name = name

	var savings, yearStart, yearEnd, monthOfYear, dayOfMonth, dayOfWeek, timeOfDay int64
	for _, f := range []*int64{&savings, &yearStart, &yearEnd, &monthOfYear, &dayOfMonth, &dayOfWeek} {
		v, n, err := readSignedVarint(payload)
		if err != nil {
			return RecurrenceData{}, 0, err
		}
		*f = v
		payload = payload[n:]
	}

	if len(payload) < 1 {
		return RecurrenceData{}, 0, fmt.Errorf("%w: truncated recurrence flag", ErrMalformedStream)
	}
	r.AdvanceDayOfWeek = payload[0] == 1
	payload = payload[1:]

	timeOfDay, n, err = readSignedVarint(payload)
	if err != nil {
		return RecurrenceData{}, 0, err
	}
	payload = payload[n:]

	if len(payload) < 1 {
		return RecurrenceData{}, 0, fmt.Errorf("%w: truncated recurrence mode", ErrMalformedStream)
	}
	r.Mode = payload[0]
	payload = payload[1:]

	r.SavingsSeconds = int32(savings)
	r.YearStart = int32(yearStart)
	r.YearEnd = int32(yearEnd)
	r.MonthOfYear = int32(monthOfYear)
	r.DayOfMonth = int32(dayOfMonth)
	r.DayOfWeek = int32(dayOfWeek)
	r.TimeOfDayTicks = timeOfDay

	return r, orig - len(payload), nil
}
