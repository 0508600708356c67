package calendar

// julianYearStartAnchor is chosen so that DaysSinceEpoch(1969-12-19, Julian)
// == 0, i.e. so the Julian and ISO calendars share the same continuous
// days-since-Unix-epoch axis (1970-01-01 Gregorian == 1969-12-19 Julian).
const julianYearStartAnchor = -719164

func isJulianLeapYear(year int) bool {
	return floorMod(int64(year), 4) == 0
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func julianYearStartDays(year int) int64 {
	y := int64(year) - 1
	return y*365 + floorDiv(y, 4) + julianYearStartAnchor
}

var julianSystem = &gjSystem{
	id:                 "Julian",
	ordinal:            OrdinalJulian,
	isLeap:             isJulianLeapYear,
	yearStartDays:      julianYearStartDays,
	minDaysInFirstWeek: 4,
}

// Julian returns the proleptic Julian calendar: 12 months of the same
// lengths as the Gregorian calendar, but a leap year every 4 years with no
// century exception.
func Julian() System { return julianSystem }
