// Package reminder implements the classification, ranking, aggregation and
// report shaping shared by the dashboard, reminders and report endpoints.
// Every function here is pure: "today" is always an explicit parameter and
// malformed dates filter records out instead of failing the request.
package reminder

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ToCalendarDate normalizes a date-like string to a calendar date at UTC
// midnight. It accepts "YYYY-MM-DD" as well as longer forms (RFC3339
// timestamps, "date time" pairs) whose first ten characters are the date
// and whose remainder starts with 'T' or a space. The second return value
// is false when the input is unparseable.
func ToCalendarDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if len(v) < len(dateLayout) {
		return time.Time{}, false
	}
	if len(v) > len(dateLayout) {
		switch v[len(dateLayout)] {
		case 'T', ' ':
		default:
			return time.Time{}, false
		}
	}
	d, err := time.ParseInLocation(dateLayout, v[:len(dateLayout)], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Truncate strips the time-of-day from t, keeping the calendar date at UTC
// midnight.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed whole-day difference (to minus from) between two
// date strings. The second return value is false when either side is
// unparseable.
func DaysBetween(from, to string) (int, bool) {
	f, ok := ToCalendarDate(from)
	if !ok {
		return 0, false
	}
	t, ok := ToCalendarDate(to)
	if !ok {
		return 0, false
	}
	return daysBetweenDates(f, t), true
}

func daysBetweenDates(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)).Hours() / 24)
}

// AddOneYear returns the same month/day one calendar year later. Feb 29
// inputs normalize to Mar 1 of the following year (Go's AddDate policy).
// The second return value is false for unparseable input.
func AddOneYear(value string) (string, bool) {
	d, ok := ToCalendarDate(value)
	if !ok {
		return "", false
	}
	return d.AddDate(1, 0, 0).Format(dateLayout), true
}

// FormatDate renders a calendar date back to "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return Truncate(t).Format(dateLayout)
}
