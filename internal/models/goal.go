// ABOUTME: Goal model with target/current values and derived progress.
// ABOUTME: Progress is computed on read and capped at 100 percent.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalArchived  GoalStatus = "archived"
)

// AllGoalStatuses lists valid goal statuses.
var AllGoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalArchived}

// IsValidGoalStatus checks if a string is a valid goal status.
func IsValidGoalStatus(s string) bool {
	for _, st := range AllGoalStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Goal is a measurable target such as "read 12 books".
type Goal struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Status       GoalStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewGoal creates an active goal starting at zero progress.
func NewGoal(title string, target float64, unit string) *Goal {
	return &Goal{
		ID:          uuid.New(),
		Title:       title,
		TargetValue: target,
		Unit:        unit,
		Status:      GoalActive,
		CreatedAt:   time.Now(),
	}
}

// WithDescription sets the goal description.
func (g *Goal) WithDescription(desc string) *Goal {
	g.Description = desc
	return g
}

// WithDeadline sets the deadline, truncated to its calendar day.
func (g *Goal) WithDeadline(d time.Time) *Goal {
	day := Day(d)
	g.Deadline = &day
	return g
}

// Progress returns current/target as a percentage in [0, 100].
// A non-positive target yields 0.
func (g *Goal) Progress() float64 {
	return GoalProgress(g.CurrentValue, g.TargetValue)
}

// GoalProgress is Progress over raw values.
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, current/target*100))
}
