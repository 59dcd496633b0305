package calendar

import "time"

// DateFormat is the wire format used for dates throughout the project.
const DateFormat = "2006-01-02"

// Date returns midnight UTC for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to midnight UTC so that two values on the same calendar
// day compare equal regardless of clock time or location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWorkday reports whether t falls on Monday through Friday.
func IsWorkday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountWorkdays returns the number of Monday-Friday dates in [start, end],
// both bounds inclusive, or 0 when end precedes start. The range is
// decomposed into full weeks plus at most six remainder days, so the cost
// does not grow with the length of the range.
func CountWorkdays(start, end time.Time) int {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	weeks := days / 7
	n := weeks * 5
	for d := start.AddDate(0, 0, weeks*7); !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkday(d) {
			n++
		}
	}
	return n
}

// MaxDay returns the later of two dates, truncated to calendar days.
func MaxDay(a, b time.Time) time.Time {
	a, b = Day(a), Day(b)
	if a.After(b) {
		return a
	}
	return b
}
