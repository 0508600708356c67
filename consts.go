package chrono

import (
	"fmt"

	"github.com/tempora-go/chrono/calendar"
)

// Weekday specifies the day of the week using ISO 8601 numbering,
// Monday = 1 through Sunday = 7. It is a type alias for calendar.Weekday so
// every calendar's DayOfWeek can be used directly as a Weekday.
type Weekday = calendar.Weekday

// The days of the week, re-exported from the calendar package for
// convenience.
const (
	Monday    = calendar.Monday
	Tuesday   = calendar.Tuesday
	Wednesday = calendar.Wednesday
	Thursday  = calendar.Thursday
	Friday    = calendar.Friday
	Saturday  = calendar.Saturday
	Sunday    = calendar.Sunday
)

// Month specifies the month of the year in the ISO/Gregorian calendar,
// January = 1 through December = 12. Non-Gregorian calendars (see package
// calendar) address months by plain int since their month counts and
// names differ (Coptic has 13, for instance).
type Month int

// The months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return longMonthNames[m-1]
}

var longMonthNames = [12]string{
	January - 1:   "January",
	February - 1:  "February",
	March - 1:     "March",
	April - 1:     "April",
	May - 1:       "May",
	June - 1:      "June",
	July - 1:      "July",
	August - 1:    "August",
	September - 1: "September",
	October - 1:   "October",
	November - 1:  "November",
	December - 1:  "December",
}
