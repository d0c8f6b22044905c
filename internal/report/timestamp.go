package report

import (
	"time"
)

// TimestampLayout is day-month-year with a 12-hour clock.
const TimestampLayout = "02-01-2006   03:04:05 PM"

// Location resolves a zone name ("" and "Local" mean the host zone). When
// the zone cannot be loaded it returns UTC and false.
func Location(name string) (*time.Location, bool) {
	if name == "" || name == "Local" {
		// the runtime names time.Local "UTC" when it had no zone data
		if time.Local.String() == "UTC" {
			return time.UTC, false
		}
		return time.Local, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, false
	}
	return loc, true
}

// FormatTimestamp renders t in the named zone, falling back to UTC with an
// explicit suffix.
func FormatTimestamp(t time.Time, zone string) string {
	loc, ok := Location(zone)
	s := t.In(loc).Format(TimestampLayout)
	if !ok {
		s += " UTC"
	}
	return s
}
