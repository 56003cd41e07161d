// utils/dates.go
package utils

import "time"

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// BusinessTimezone is the fixed zone used to evaluate "today" for past-date
// validation, independent of where the server runs.
var BusinessTimezone = loadBusinessTimezone()

func loadBusinessTimezone() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	// containers without tzdata
	return time.FixedZone("IST", 5*3600+30*60)
}

// NormalizeDateUTC strips the time-of-day and pins the date to midnight UTC.
// The calendar day is taken from the instant's UTC reading, so the same instant
// normalizes identically no matter which zone it was constructed in.
func NormalizeDateUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateUTC parses a YYYY-MM-DD string straight into midnight UTC. Parsing in
// an explicit zone keeps the result independent of the process-local timezone.
func ParseDateUTC(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateKey returns the canonical map key for a calendar date
func DateKey(t time.Time) string {
	return NormalizeDateUTC(t).Format(DateLayout)
}

// SameDate compares two instants by calendar date only
func SameDate(a, b time.Time) bool {
	return NormalizeDateUTC(a).Equal(NormalizeDateUTC(b))
}

// BusinessToday returns "today" in the business timezone as a midnight-UTC date
// value, comparable with normalized schedule dates.
func BusinessToday(now time.Time) time.Time {
	local := now.In(BusinessTimezone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
