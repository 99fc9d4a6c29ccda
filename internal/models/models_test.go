// ABOUTME: Tests for task, habit, mood, and goal models.
// ABOUTME: Validates constructors, enum checks, and read-time derived values.
package models

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Write report")

	if task.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority = %s, want medium", task.Priority)
	}
	if task.Status != TaskPending {
		t.Errorf("Status = %s, want pending", task.Status)
	}
	if task.CompletedAt != nil {
		t.Error("expected CompletedAt to be nil for a new task")
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestTaskBuilders(t *testing.T) {
	due := time.Date(2026, time.May, 1, 18, 45, 0, 0, time.Local)
	task := NewTask("Ship it").
		WithDescription("release v2").
		WithPriority(PriorityHigh).
		WithDueDate(due)

	if task.Description != "release v2" {
		t.Errorf("Description = %q", task.Description)
	}
	if task.Priority != PriorityHigh {
		t.Errorf("Priority = %s, want high", task.Priority)
	}
	if task.DueDate == nil || FormatDay(*task.DueDate) != "2026-05-01" {
		t.Errorf("DueDate = %v, want 2026-05-01", task.DueDate)
	}
}

func TestTaskIsOverdue(t *testing.T) {
	today := time.Date(2026, time.May, 10, 9, 0, 0, 0, time.Local)

	task := NewTask("late").WithDueDate(today.AddDate(0, 0, -1))
	if !task.IsOverdue(today) {
		t.Error("expected task due yesterday to be overdue")
	}

	task.Status = TaskCompleted
	if task.IsOverdue(today) {
		t.Error("completed task should never be overdue")
	}

	dueToday := NewTask("today").WithDueDate(today)
	if dueToday.IsOverdue(today) {
		t.Error("task due today is not overdue")
	}

	if NewTask("no due").IsOverdue(today) {
		t.Error("task without due date is not overdue")
	}
}

func TestEnumValidation(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		valid []string
		bad   []string
	}{
		{"priority", IsValidPriority, []string{"low", "medium", "high"}, []string{"", "urgent", "HIGH"}},
		{"task status", IsValidTaskStatus, []string{"pending", "in_progress", "completed"}, []string{"done", ""}},
		{"frequency", IsValidFrequency, []string{"daily", "weekly"}, []string{"monthly", ""}},
		{"goal status", IsValidGoalStatus, []string{"active", "completed", "archived"}, []string{"paused"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				if !tt.check(v) {
					t.Errorf("%q should be valid", v)
				}
			}
			for _, v := range tt.bad {
				if tt.check(v) {
					t.Errorf("%q should be invalid", v)
				}
			}
		})
	}
}

func TestNewMoodEntry(t *testing.T) {
	for score := MinMoodScore; score <= MaxMoodScore; score++ {
		m := NewMoodEntry(score, "")
		if m.MoodEmoji == "" {
			t.Errorf("score %d has no emoji", score)
		}
		if !IsValidMoodScore(score) {
			t.Errorf("score %d should be valid", score)
		}
	}

	m := NewMoodEntry(7, "great day").WithSentiment(0.8)
	if m.MoodEmoji != "🤩" {
		t.Errorf("MoodEmoji = %s, want 🤩", m.MoodEmoji)
	}
	if m.SentimentScore != 0.8 {
		t.Errorf("SentimentScore = %f, want 0.8", m.SentimentScore)
	}

	for _, bad := range []int{0, 8, -1} {
		if IsValidMoodScore(bad) {
			t.Errorf("score %d should be invalid", bad)
		}
		if MoodEmoji(bad) != "" {
			t.Errorf("score %d should have no emoji", bad)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"zero progress", 0, 100, 0},
		{"halfway", 50, 100, 50},
		{"exactly done", 12, 12, 100},
		{"overshoot is capped", 150, 100, 100},
		{"zero target", 10, 0, 0},
		{"negative target", 10, -5, 0},
		{"negative progress floors at zero", -20, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGoal("g", tt.target, "units")
			g.CurrentValue = tt.current
			if got := g.Progress(); got != tt.want {
				t.Errorf("Progress() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	today := time.Date(2026, time.June, 3, 20, 0, 0, 0, time.Local)
	h := NewHabit("Read")

	s := Summarize(h, []time.Time{Day(today), Day(today).AddDate(0, 0, -1)}, today)
	if s.Streak != 2 {
		t.Errorf("Streak = %d, want 2", s.Streak)
	}
	if !s.CompletedToday {
		t.Error("expected CompletedToday")
	}
	if s.Name != "Read" {
		t.Errorf("Name = %s, want Read", s.Name)
	}

	s = Summarize(h, nil, today)
	if s.Streak != 0 || s.CompletedToday {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if FormatDay(d) != "2026-02-28" {
		t.Errorf("FormatDay = %s", FormatDay(d))
	}
	if _, err := ParseDay("28-02-2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
