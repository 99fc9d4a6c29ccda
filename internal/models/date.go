// ABOUTME: Calendar-date helpers shared by tasks, habits, goals, and weekly activity.
// ABOUTME: A day is the local calendar date of a timestamp, anchored at UTC midnight.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date format used for storage and display.
const DateLayout = "2006-01-02"

// Day returns the calendar date of t in t's own location, as midnight UTC.
// Anchoring at UTC keeps AddDate arithmetic free of DST shifts.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar date.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDay parses a YYYY-MM-DD string into a calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDay formats the calendar date of t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return Day(t).Format(DateLayout)
}
