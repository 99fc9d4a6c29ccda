// ABOUTME: Export and import functionality for productivity data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats and JSON import.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"
)

const (
	exportVersion = "1.0"
	exportTool    = "productivity"
)

// ExportData represents the full export format for productivity data.
type ExportData struct {
	Version     string              `json:"version" yaml:"version"`
	ExportedAt  time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool        string              `json:"tool" yaml:"tool"`
	Tasks       []*models.Task      `json:"tasks" yaml:"tasks"`
	Habits      []*HabitExport      `json:"habits" yaml:"habits"`
	MoodEntries []*models.MoodEntry `json:"mood_entries" yaml:"mood_entries"`
	Goals       []*models.Goal      `json:"goals" yaml:"goals"`
}

// HabitExport is a habit together with its logs.
type HabitExport struct {
	models.Habit
	Logs []*models.HabitLog `json:"logs"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	tasks, err := d.ListTasks(ctx, nil)
	if err != nil {
		return nil, err
	}

	habits, err := d.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	habitExports := make([]*HabitExport, 0, len(habits))
	for _, h := range habits {
		logs, err := d.ListHabitLogs(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		habitExports = append(habitExports, &HabitExport{Habit: *h, Logs: logs})
	}

	moods, err := d.ListMoodEntries(ctx, 0)
	if err != nil {
		return nil, err
	}

	goals, err := d.ListGoals(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:     exportVersion,
		ExportedAt:  d.now(),
		Tool:        exportTool,
		Tasks:       tasks,
		Habits:      habitExports,
		MoodEntries: moods,
		Goals:       goals,
	}, nil
}

// ImportData imports data from an export, keeping ids and timestamps.
// The import runs in one transaction, so a failure leaves the store unchanged.
func (d *DB) ImportData(ctx context.Context, data *ExportData) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range data.Tasks {
		if _, err := d.insertTask(ctx, tx, t); err != nil {
			return fmt.Errorf("import task: %w", err)
		}
	}

	for _, h := range data.Habits {
		habit := h.Habit
		if _, err := d.insertHabit(ctx, tx, &habit); err != nil {
			return fmt.Errorf("import habit: %w", err)
		}
		for _, l := range h.Logs {
			if err := insertHabitLog(ctx, tx, habit.ID.String(), l); err != nil {
				return fmt.Errorf("import habit log: %w", err)
			}
		}
	}

	for _, m := range data.MoodEntries {
		if _, err := d.insertMoodEntry(ctx, tx, m); err != nil {
			return fmt.Errorf("import mood entry: %w", err)
		}
	}

	for _, g := range data.Goals {
		if _, err := d.insertGoal(ctx, tx, g); err != nil {
			return fmt.Errorf("import goal: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	d.log.Info().
		Int("tasks", len(data.Tasks)).
		Int("habits", len(data.Habits)).
		Int("moods", len(data.MoodEntries)).
		Int("goals", len(data.Goals)).
		Msg("data imported")
	return nil
}

func insertHabitLog(ctx context.Context, ex sqlx.ExecerContext, habitID string, l *models.HabitLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	_, err := ex.ExecContext(ctx, `
		INSERT OR IGNORE INTO habit_logs (id, habit_id, logged_date, completed)
		VALUES (?, ?, ?, ?)`,
		l.ID.String(), habitID, models.FormatDay(l.LoggedDate), boolInt(l.Completed),
	)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(ctx context.Context, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(ctx, &exportData)
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}

	// Convert to YAML-friendly format with tasks grouped by status
	yamlData := struct {
		Version     string                `yaml:"version"`
		ExportedAt  string                `yaml:"exported_at"`
		Tool        string                `yaml:"tool"`
		Tasks       map[string][]yamlTask `yaml:"tasks"`
		Habits      []yamlHabit           `yaml:"habits"`
		MoodEntries []yamlMood            `yaml:"mood_entries"`
		Goals       []yamlGoal            `yaml:"goals"`
	}{
		Version:     data.Version,
		ExportedAt:  data.ExportedAt.Format(time.RFC3339),
		Tool:        data.Tool,
		Tasks:       make(map[string][]yamlTask),
		Habits:      make([]yamlHabit, 0, len(data.Habits)),
		MoodEntries: make([]yamlMood, 0, len(data.MoodEntries)),
		Goals:       make([]yamlGoal, 0, len(data.Goals)),
	}

	for _, t := range data.Tasks {
		yt := yamlTask{
			ID:          t.ID.String()[:8],
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		}
		if t.DueDate != nil {
			yt.DueDate = models.FormatDay(*t.DueDate)
		}
		if t.CompletedAt != nil {
			yt.CompletedAt = t.CompletedAt.Format(time.RFC3339)
		}
		status := string(t.Status)
		yamlData.Tasks[status] = append(yamlData.Tasks[status], yt)
	}

	for _, h := range data.Habits {
		yh := yamlHabit{
			ID:          h.ID.String()[:8],
			Name:        h.Name,
			Description: h.Description,
			Frequency:   string(h.Frequency),
		}
		for _, l := range h.Logs {
			if l.Completed {
				yh.Logged = append(yh.Logged, models.FormatDay(l.LoggedDate))
			}
		}
		yamlData.Habits = append(yamlData.Habits, yh)
	}

	for _, m := range data.MoodEntries {
		yamlData.MoodEntries = append(yamlData.MoodEntries, yamlMood{
			Score:     m.MoodScore,
			Emoji:     m.MoodEmoji,
			Notes:     m.Notes,
			Sentiment: m.SentimentScore,
			LoggedAt:  m.LoggedAt.Format(time.RFC3339),
		})
	}

	for _, g := range data.Goals {
		yg := yamlGoal{
			ID:       g.ID.String()[:8],
			Title:    g.Title,
			Current:  g.CurrentValue,
			Target:   g.TargetValue,
			Unit:     g.Unit,
			Progress: models.RoundTenth(g.Progress()),
			Status:   string(g.Status),
		}
		if g.Deadline != nil {
			yg.Deadline = models.FormatDay(*g.Deadline)
		}
		yamlData.Goals = append(yamlData.Goals, yg)
	}

	return yaml.Marshal(yamlData)
}

type yamlTask struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority"`
	DueDate     string `yaml:"due_date,omitempty"`
	CreatedAt   string `yaml:"created_at"`
	CompletedAt string `yaml:"completed_at,omitempty"`
}

type yamlHabit struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Frequency   string   `yaml:"frequency"`
	Logged      []string `yaml:"logged,omitempty"`
}

type yamlMood struct {
	Score     int     `yaml:"score"`
	Emoji     string  `yaml:"emoji,omitempty"`
	Notes     string  `yaml:"notes,omitempty"`
	Sentiment float64 `yaml:"sentiment"`
	LoggedAt  string  `yaml:"logged_at"`
}

type yamlGoal struct {
	ID       string  `yaml:"id"`
	Title    string  `yaml:"title"`
	Current  float64 `yaml:"current"`
	Target   float64 `yaml:"target"`
	Unit     string  `yaml:"unit,omitempty"`
	Progress float64 `yaml:"progress"`
	Deadline string  `yaml:"deadline,omitempty"`
	Status   string  `yaml:"status"`
}

// ExportMarkdown exports data as Markdown. When since is set, only tasks
// created, moods logged, and habit logs dated on or after it are included.
//
//nolint:gocognit,gocyclo // This function has clear, linear logic despite complexity metrics.
func (d *DB) ExportMarkdown(ctx context.Context, since *time.Time) (string, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return "", err
	}
	stats, err := d.Stats(ctx)
	if err != nil {
		return "", err
	}

	onOrAfter := func(t time.Time) bool {
		return since == nil || !t.Before(*since)
	}

	var sb strings.Builder
	now := d.now()

	sb.WriteString(fmt.Sprintf("# Productivity Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Tasks: %d (%d completed, %.1f%%)\n",
		stats.TotalTasks, stats.CompletedTasks, stats.CompletionRate))
	sb.WriteString(fmt.Sprintf("- Habit completions: %d\n", stats.TotalHabitCompletions))
	sb.WriteString(fmt.Sprintf("- Average mood: %.1f\n", stats.AverageMood))
	sb.WriteString(fmt.Sprintf("- Active goals: %d\n\n", stats.ActiveGoals))

	sb.WriteString("## Tasks\n\n")
	sb.WriteString("| Created | Title | Priority | Status | Due |\n")
	sb.WriteString("|---------|-------|----------|--------|-----|\n")
	for _, t := range data.Tasks {
		if !onOrAfter(t.CreatedAt) {
			continue
		}
		due := ""
		if t.DueDate != nil {
			due = models.FormatDay(*t.DueDate)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			t.CreatedAt.Format("2006-01-02 15:04"), t.Title, t.Priority, t.Status, due))
	}
	sb.WriteString("\n")

	sb.WriteString("## Habits\n\n")
	sb.WriteString("| Habit | Frequency | Logged Days | Last Logged |\n")
	sb.WriteString("|-------|-----------|-------------|-------------|\n")
	for _, h := range data.Habits {
		count := 0
		last := ""
		for _, l := range h.Logs {
			if !l.Completed || !onOrAfter(l.LoggedDate) {
				continue
			}
			count++
			if day := models.FormatDay(l.LoggedDate); day > last {
				last = day
			}
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n", h.Name, h.Frequency, count, last))
	}
	sb.WriteString("\n")

	sb.WriteString("## Mood\n\n")
	sb.WriteString("| Date | Score | Notes |\n")
	sb.WriteString("|------|-------|-------|\n")
	for _, m := range data.MoodEntries {
		if !onOrAfter(m.LoggedAt) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %d %s | %s |\n",
			m.LoggedAt.Format("2006-01-02 15:04"), m.MoodScore, m.MoodEmoji, m.Notes))
	}
	sb.WriteString("\n")

	sb.WriteString("## Goals\n\n")
	sb.WriteString("| Goal | Progress | Status | Deadline |\n")
	sb.WriteString("|------|----------|--------|----------|\n")
	for _, g := range data.Goals {
		deadline := ""
		if g.Deadline != nil {
			deadline = models.FormatDay(*g.Deadline)
		}
		sb.WriteString(fmt.Sprintf("| %s | %.0f/%.0f %s (%.0f%%) | %s | %s |\n",
			g.Title, g.CurrentValue, g.TargetValue, g.Unit, g.Progress(), g.Status, deadline))
	}

	return sb.String(), nil
}
