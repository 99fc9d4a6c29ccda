// ABOUTME: Habit and habit log operations for SQLite storage.
// ABOUTME: Logging is idempotent per habit and date; streaks are derived on read.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/jmoiron/sqlx"
)

type habitRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Frequency   string `db:"frequency"`
	CreatedAt   string `db:"created_at"`
}

func (r habitRow) toModel() (*models.Habit, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse habit id: %w", err)
	}
	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &models.Habit{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Frequency:   models.Frequency(r.Frequency),
		CreatedAt:   createdAt,
	}, nil
}

type habitLogRow struct {
	ID         string `db:"id"`
	HabitID    string `db:"habit_id"`
	LoggedDate string `db:"logged_date"`
	Completed  bool   `db:"completed"`
}

func (r habitLogRow) toModel() (*models.HabitLog, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse habit log id: %w", err)
	}
	habitID, err := uuid.Parse(r.HabitID)
	if err != nil {
		return nil, fmt.Errorf("parse habit id: %w", err)
	}
	day, err := models.ParseDay(r.LoggedDate)
	if err != nil {
		return nil, err
	}
	return &models.HabitLog{ID: id, HabitID: habitID, LoggedDate: day, Completed: r.Completed}, nil
}

const habitColumns = `id, name, description, frequency, created_at`

// CreateHabit inserts a new habit and returns its id.
func (d *DB) CreateHabit(ctx context.Context, h *models.Habit) (uuid.UUID, error) {
	return d.insertHabit(ctx, d.db, h)
}

func (d *DB) insertHabit(ctx context.Context, ex sqlx.ExecerContext, h *models.Habit) (uuid.UUID, error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = d.now()
	}
	if h.Frequency == "" {
		h.Frequency = models.FrequencyDaily
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO habits (`+habitColumns+`) VALUES (?, ?, ?, ?, ?)`,
		h.ID.String(), h.Name, h.Description, string(h.Frequency), formatTimestamp(h.CreatedAt),
	)
	if err != nil {
		d.log.Error().Err(err).Str("habit", h.ID.String()).Msg("insert habit failed")
		return uuid.Nil, fmt.Errorf("insert habit: %w", err)
	}
	d.log.Debug().Str("habit", h.ID.String()).Msg("habit created")
	return h.ID, nil
}

// GetHabit retrieves a habit by id.
func (d *DB) GetHabit(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	var row habitRow
	err := d.db.GetContext(ctx, &row, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}
	return row.toModel()
}

// ListHabits returns all habits newest first.
func (d *DB) ListHabits(ctx context.Context) ([]*models.Habit, error) {
	var rows []habitRow
	err := d.db.SelectContext(ctx, &rows, `SELECT `+habitColumns+` FROM habits ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	habits := make([]*models.Habit, 0, len(rows))
	for _, r := range rows {
		h, err := r.toModel()
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

// ListHabitSummaries returns every habit with its current streak and
// whether it was completed today.
func (d *DB) ListHabitSummaries(ctx context.Context, today time.Time) ([]models.HabitSummary, error) {
	habits, err := d.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	var logs []habitLogRow
	err = d.db.SelectContext(ctx, &logs, `
		SELECT id, habit_id, logged_date, completed FROM habit_logs WHERE completed = 1`)
	if err != nil {
		return nil, fmt.Errorf("list habit logs: %w", err)
	}

	byHabit := make(map[string][]time.Time)
	for _, r := range logs {
		day, err := models.ParseDay(r.LoggedDate)
		if err != nil {
			return nil, err
		}
		byHabit[r.HabitID] = append(byHabit[r.HabitID], day)
	}

	summaries := make([]models.HabitSummary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, models.Summarize(h, byHabit[h.ID.String()], today))
	}
	return summaries, nil
}

// LogHabit records a completion of the habit on day. Logging the same
// habit twice on one date keeps the first row; the result reports
// whether a new row was written.
func (d *DB) LogHabit(ctx context.Context, habitID uuid.UUID, day time.Time) (bool, error) {
	l := models.NewHabitLog(habitID, day)
	res, err := d.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO habit_logs (id, habit_id, logged_date, completed)
		VALUES (?, ?, ?, 1)`,
		l.ID.String(), habitID.String(), models.FormatDay(l.LoggedDate),
	)
	if err != nil {
		d.log.Error().Err(err).Str("habit", habitID.String()).Msg("log habit failed")
		return false, fmt.Errorf("log habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("log habit: %w", err)
	}
	d.log.Debug().Str("habit", habitID.String()).Str("date", models.FormatDay(day)).Int64("affected", n).Msg("habit logged")
	return n > 0, nil
}

// ListHabitLogs returns a habit's logs, most recent date first.
func (d *DB) ListHabitLogs(ctx context.Context, habitID uuid.UUID) ([]*models.HabitLog, error) {
	var rows []habitLogRow
	err := d.db.SelectContext(ctx, &rows, `
		SELECT id, habit_id, logged_date, completed FROM habit_logs
		WHERE habit_id = ? ORDER BY logged_date DESC`, habitID.String())
	if err != nil {
		return nil, fmt.Errorf("list habit logs: %w", err)
	}

	logs := make([]*models.HabitLog, 0, len(rows))
	for _, r := range rows {
		l, err := r.toModel()
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// IsHabitCompletedOn reports whether the habit has a completed log on day.
func (d *DB) IsHabitCompletedOn(ctx context.Context, habitID uuid.UUID, day time.Time) (bool, error) {
	var count int
	err := d.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM habit_logs
		WHERE habit_id = ? AND logged_date = ? AND completed = 1`,
		habitID.String(), models.FormatDay(day))
	if err != nil {
		return false, fmt.Errorf("check habit log: %w", err)
	}
	return count > 0, nil
}

// HabitStreak returns the habit's current streak as of today. Unknown
// habits have no logs and a streak of 0.
func (d *DB) HabitStreak(ctx context.Context, habitID uuid.UUID, today time.Time) (int, error) {
	var dates []string
	err := d.db.SelectContext(ctx, &dates, `
		SELECT logged_date FROM habit_logs
		WHERE habit_id = ? AND completed = 1 AND logged_date <= ?
		ORDER BY logged_date DESC`,
		habitID.String(), models.FormatDay(today))
	if err != nil {
		return 0, fmt.Errorf("habit streak: %w", err)
	}

	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		day, err := models.ParseDay(s)
		if err != nil {
			return 0, err
		}
		days = append(days, day)
	}
	return models.Streak(days, today), nil
}

// DeleteHabit removes a habit and all of its logs in one transaction.
func (d *DB) DeleteHabit(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM habit_logs WHERE habit_id = ?`, id.String()); err != nil {
		d.log.Error().Err(err).Str("habit", id.String()).Msg("delete habit logs failed")
		return 0, fmt.Errorf("delete habit logs: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id.String())
	if err != nil {
		d.log.Error().Err(err).Str("habit", id.String()).Msg("delete habit failed")
		return 0, fmt.Errorf("delete habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete habit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	d.log.Debug().Str("habit", id.String()).Int64("affected", n).Msg("habit deleted")
	return n, nil
}
