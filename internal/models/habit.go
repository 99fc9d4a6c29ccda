// ABOUTME: Habit and HabitLog models for daily/weekly habit tracking.
// ABOUTME: HabitSummary carries the read-time streak and today's completion flag.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is how often a habit is meant to be done.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// IsValidFrequency checks if a string is a valid habit frequency.
func IsValidFrequency(s string) bool {
	return s == string(FrequencyDaily) || s == string(FrequencyWeekly)
}

// Habit is a recurring activity.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHabit creates a daily habit with a generated UUID.
func NewHabit(name string) *Habit {
	return &Habit{
		ID:        uuid.New(),
		Name:      name,
		Frequency: FrequencyDaily,
		CreatedAt: time.Now(),
	}
}

// WithDescription sets the habit description.
func (h *Habit) WithDescription(desc string) *Habit {
	h.Description = desc
	return h
}

// WithFrequency sets the habit frequency.
func (h *Habit) WithFrequency(f Frequency) *Habit {
	h.Frequency = f
	return h
}

// HabitLog records that a habit was done on a calendar day.
// At most one log exists per (HabitID, LoggedDate).
type HabitLog struct {
	ID         uuid.UUID `json:"id"`
	HabitID    uuid.UUID `json:"habit_id"`
	LoggedDate time.Time `json:"logged_date"`
	Completed  bool      `json:"completed"`
}

// NewHabitLog creates a completed log for the given day.
func NewHabitLog(habitID uuid.UUID, day time.Time) *HabitLog {
	return &HabitLog{
		ID:         uuid.New(),
		HabitID:    habitID,
		LoggedDate: Day(day),
		Completed:  true,
	}
}

// HabitSummary is a habit plus values derived from its logs at read time.
type HabitSummary struct {
	Habit
	Streak         int  `json:"streak"`
	CompletedToday bool `json:"completed_today"`
}

// Summarize derives streak and today's completion from a habit's log dates.
func Summarize(h *Habit, logDates []time.Time, today time.Time) HabitSummary {
	todayDay := Day(today)
	done := false
	for _, d := range logDates {
		if Day(d).Equal(todayDay) {
			done = true
			break
		}
	}
	return HabitSummary{
		Habit:          *h,
		Streak:         Streak(logDates, today),
		CompletedToday: done,
	}
}
