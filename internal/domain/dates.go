package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

// FormatDateKey renders the calendar date of t (in t's location) as YYYY-MM-DD.
func FormatDateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses YYYY-MM-DD as local midnight. It rejects both bad
// digit grouping and impossible calendar dates.
func ParseDateKey(key string) (time.Time, error) {
	if !IsValidDateKey(key) {
		return time.Time{}, NewValidationError("date", fmt.Sprintf("invalid date %q", key))
	}
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, NewValidationError("date", fmt.Sprintf("invalid date %q", key))
	}
	return t, nil
}

// AddDays shifts t by whole calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// IsToday reports whether t falls on the same calendar date as now.
func IsToday(t, now time.Time) bool {
	return FormatDateKey(t) == FormatDateKey(now.In(t.Location()))
}

// DayLabel returns the upper-case weekday, e.g. "MONDAY".
func DayLabel(t time.Time) string {
	return strings.ToUpper(t.Weekday().String())
}

// DateLabel returns the upper-case short date, e.g. "JAN 15, 2025".
func DateLabel(t time.Time) string {
	return strings.ToUpper(t.Format("Jan 2, 2006"))
}

// CalendarWindow returns the date keys of days consecutive days starting at anchor.
func CalendarWindow(anchor time.Time, days int) []string {
	keys := make([]string, 0, days)
	for i := 0; i < days; i++ {
		keys = append(keys, FormatDateKey(AddDays(anchor, i)))
	}
	return keys
}
