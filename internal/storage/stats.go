// ABOUTME: Aggregate statistics and weekly activity queries.
// ABOUTME: SQL gathers the raw counts; bucketing and rates live in models.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/productivity/internal/models"
)

type statsRow struct {
	TotalTasks       int             `db:"total_tasks"`
	CompletedTasks   int             `db:"completed_tasks"`
	HabitCompletions int             `db:"habit_completions"`
	ActiveGoals      int             `db:"active_goals"`
	AverageMood      sql.NullFloat64 `db:"average_mood"`
}

// Stats returns aggregate counts across all records.
func (d *DB) Stats(ctx context.Context) (models.Stats, error) {
	var row statsRow
	err := d.db.GetContext(ctx, &row, `
		SELECT
			(SELECT COUNT(*) FROM tasks) AS total_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'completed') AS completed_tasks,
			(SELECT COUNT(*) FROM habit_logs WHERE completed = 1) AS habit_completions,
			(SELECT COUNT(*) FROM goals WHERE status = 'active') AS active_goals,
			(SELECT AVG(mood_score) FROM mood_entries) AS average_mood`)
	if err != nil {
		return models.Stats{}, fmt.Errorf("query stats: %w", err)
	}

	return models.NewStats(
		row.TotalTasks,
		row.CompletedTasks,
		row.AverageMood.Float64,
		row.HabitCompletions,
		row.ActiveGoals,
	), nil
}

// WeeklyActivity counts task completions and habit logs per day over the
// seven days ending today.
func (d *DB) WeeklyActivity(ctx context.Context, today time.Time) (models.WeeklyActivity, error) {
	start, end := models.WeekWindow(today)

	// Completion timestamps are stored in UTC; widen the lower bound by a
	// day so local dates near midnight are not cut off, then bucket in Go.
	var completed []string
	err := d.db.SelectContext(ctx, &completed, `
		SELECT completed_at FROM tasks
		WHERE status = 'completed' AND completed_at IS NOT NULL AND completed_at >= ?`,
		formatTimestamp(start.AddDate(0, 0, -1)))
	if err != nil {
		return models.WeeklyActivity{}, fmt.Errorf("query task completions: %w", err)
	}

	completions := make([]time.Time, 0, len(completed))
	for _, s := range completed {
		t, err := parseTimestamp(s)
		if err != nil {
			return models.WeeklyActivity{}, err
		}
		completions = append(completions, t)
	}

	var logged []string
	err = d.db.SelectContext(ctx, &logged, `
		SELECT logged_date FROM habit_logs
		WHERE completed = 1 AND logged_date >= ? AND logged_date <= ?`,
		models.FormatDay(start), models.FormatDay(end))
	if err != nil {
		return models.WeeklyActivity{}, fmt.Errorf("query habit logs: %w", err)
	}

	habitDates := make([]time.Time, 0, len(logged))
	for _, s := range logged {
		day, err := models.ParseDay(s)
		if err != nil {
			return models.WeeklyActivity{}, err
		}
		habitDates = append(habitDates, day)
	}

	return models.BuildWeeklyActivity(completions, habitDates, today), nil
}
