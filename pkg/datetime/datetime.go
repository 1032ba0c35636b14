// Pure date/time helpers shared by the agenda and enrollment services.
package datetime

import (
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey returns the calendar date of t as "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// StartOfDay parses a date key and returns 00:00:00 of that day.
func StartOfDay(dateKey string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, dateKey, time.Local)
}

// EndOfDay parses a date key and returns 23:59:59.999999999 of that day.
func EndOfDay(dateKey string) (time.Time, error) {
	start, err := StartOfDay(dateKey)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

// HourMinute formats the time of day as "HH:MM".
func HourMinute(t time.Time) string {
	return t.Format("15:04")
}

func Year(t time.Time) int {
	return t.Year()
}

func Day(t time.Time) int {
	return t.Day()
}

func Month(t time.Time) int {
	return int(t.Month())
}

// DurationMillis returns b-a in milliseconds, signed.
func DurationMillis(a, b time.Time) int64 {
	return b.Sub(a).Milliseconds()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
