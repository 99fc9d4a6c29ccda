// ABOUTME: JSON views of records returned by tools and resources.
// ABOUTME: Fields are plain strings and numbers so output schemas stay simple.
package mcp

import (
	"time"

	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/sentiment"
)

type taskView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	Overdue     bool   `json:"overdue,omitempty"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func newTaskView(t *models.Task, today time.Time) taskView {
	v := taskView{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Overdue:     t.IsOverdue(today),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		v.DueDate = models.FormatDay(*t.DueDate)
	}
	if t.CompletedAt != nil {
		v.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return v
}

type habitView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Frequency      string `json:"frequency"`
	Streak         int    `json:"streak"`
	CompletedToday bool   `json:"completed_today"`
}

func newHabitView(h models.HabitSummary) habitView {
	return habitView{
		ID:             h.ID.String(),
		Name:           h.Name,
		Description:    h.Description,
		Frequency:      string(h.Frequency),
		Streak:         h.Streak,
		CompletedToday: h.CompletedToday,
	}
}

type moodView struct {
	ID        string  `json:"id"`
	Score     int     `json:"score"`
	Emoji     string  `json:"emoji"`
	Notes     string  `json:"notes,omitempty"`
	Sentiment float64 `json:"sentiment"`
	Label     string  `json:"label"`
	LoggedAt  string  `json:"logged_at"`
}

func newMoodView(m *models.MoodEntry) moodView {
	return moodView{
		ID:        m.ID.String(),
		Score:     m.MoodScore,
		Emoji:     m.MoodEmoji,
		Notes:     m.Notes,
		Sentiment: m.SentimentScore,
		Label:     sentiment.Label(m.SentimentScore),
		LoggedAt:  m.LoggedAt.Format(time.RFC3339),
	}
}

type goalView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Current     float64 `json:"current"`
	Target      float64 `json:"target"`
	Unit        string  `json:"unit,omitempty"`
	Progress    float64 `json:"progress"`
	Deadline    string  `json:"deadline,omitempty"`
	Status      string  `json:"status"`
}

func newGoalView(g *models.Goal) goalView {
	v := goalView{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Current:     g.CurrentValue,
		Target:      g.TargetValue,
		Unit:        g.Unit,
		Progress:    models.RoundTenth(g.Progress()),
		Status:      string(g.Status),
	}
	if g.Deadline != nil {
		v.Deadline = models.FormatDay(*g.Deadline)
	}
	return v
}

type dayView struct {
	Date   string `json:"date"`
	Tasks  int    `json:"tasks"`
	Habits int    `json:"habits"`
}

type weekView struct {
	Start string    `json:"start"`
	End   string    `json:"end"`
	Days  []dayView `json:"days"`
}

func newWeekView(w models.WeeklyActivity) weekView {
	v := weekView{
		Start: models.FormatDay(w.Start),
		End:   models.FormatDay(w.End),
	}
	for _, d := range w.Filled() {
		v.Days = append(v.Days, dayView{Date: d.Date, Tasks: d.Tasks, Habits: d.Habits})
	}
	return v
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
