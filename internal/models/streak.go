// ABOUTME: Habit streak calculation over logged calendar days.
// ABOUTME: A streak is the consecutive-day run ending today, or yesterday if today is open.
package models

import "time"

// Streak counts consecutive logged days ending on today's date. When today
// has no log yet, a run ending yesterday still counts, so a pending day
// does not reset the streak. Days after today are ignored and duplicate
// days count once.
func Streak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	logged := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		logged[Day(d)] = struct{}{}
	}

	cursor := Day(today)
	if _, ok := logged[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := logged[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
