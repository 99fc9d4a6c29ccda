// ABOUTME: Aggregate productivity statistics and the weekly activity histogram.
// ABOUTME: Both are pure computations over values read from the store.
package models

import (
	"math"
	"time"
)

// WeekDays is the length of the weekly activity window, today included.
const WeekDays = 7

// Stats summarizes all recorded data.
type Stats struct {
	TotalTasks            int     `json:"total_tasks"`
	CompletedTasks        int     `json:"completed_tasks"`
	CompletionRate        float64 `json:"completion_rate"`
	AverageMood           float64 `json:"average_mood"`
	TotalHabitCompletions int     `json:"total_habit_completions"`
	ActiveGoals           int     `json:"active_goals"`
}

// NewStats builds Stats from raw counts. meanMood is the unrounded mean
// mood score, 0 when there are no entries.
func NewStats(totalTasks, completedTasks int, meanMood float64, habitCompletions, activeGoals int) Stats {
	return Stats{
		TotalTasks:            totalTasks,
		CompletedTasks:        completedTasks,
		CompletionRate:        CompletionRate(completedTasks, totalTasks),
		AverageMood:           RoundTenth(meanMood),
		TotalHabitCompletions: habitCompletions,
		ActiveGoals:           activeGoals,
	}
}

// CompletionRate returns completed/total as a percentage, 0 when total is 0.
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// RoundTenth rounds to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// WeeklyActivity counts completed tasks and habit logs per calendar day
// over the trailing week. Days without activity are absent from the maps.
type WeeklyActivity struct {
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	TasksByDay  map[string]int `json:"tasks_by_day"`
	HabitsByDay map[string]int `json:"habits_by_day"`
}

// WeekWindow returns the first and last calendar days of the week ending today.
func WeekWindow(today time.Time) (start, end time.Time) {
	end = Day(today)
	return end.AddDate(0, 0, -(WeekDays - 1)), end
}

// BuildWeeklyActivity buckets task completion timestamps and habit log
// dates into the week ending today. Timestamps are bucketed by their own
// local calendar date; anything outside the window is dropped.
func BuildWeeklyActivity(taskCompletions, habitDates []time.Time, today time.Time) WeeklyActivity {
	start, end := WeekWindow(today)
	w := WeeklyActivity{
		Start:       start,
		End:         end,
		TasksByDay:  make(map[string]int),
		HabitsByDay: make(map[string]int),
	}

	inWindow := func(d time.Time) bool {
		return !d.Before(start) && !d.After(end)
	}

	for _, t := range taskCompletions {
		if d := Day(t); inWindow(d) {
			w.TasksByDay[d.Format(DateLayout)]++
		}
	}
	for _, t := range habitDates {
		if d := Day(t); inWindow(d) {
			w.HabitsByDay[d.Format(DateLayout)]++
		}
	}
	return w
}

// Days lists every ISO date in the window, oldest first.
func (w WeeklyActivity) Days() []string {
	var days []string
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// DayCount is one gap-filled row of the weekly histogram.
type DayCount struct {
	Date   string `json:"date"`
	Tasks  int    `json:"tasks"`
	Habits int    `json:"habits"`
}

// Filled returns one row per day in the window with zeros for idle days.
func (w WeeklyActivity) Filled() []DayCount {
	days := w.Days()
	rows := make([]DayCount, 0, len(days))
	for _, d := range days {
		rows = append(rows, DayCount{Date: d, Tasks: w.TasksByDay[d], Habits: w.HabitsByDay[d]})
	}
	return rows
}
