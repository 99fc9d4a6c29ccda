// ABOUTME: Goal operations for SQLite storage.
// ABOUTME: Progress is stored as a raw value; the percentage is derived on read.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/jmoiron/sqlx"
)

type goalRow struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	TargetValue  float64        `db:"target_value"`
	CurrentValue float64        `db:"current_value"`
	Unit         string         `db:"unit"`
	Deadline     sql.NullString `db:"deadline"`
	Status       string         `db:"status"`
	CreatedAt    string         `db:"created_at"`
}

func (r goalRow) toModel() (*models.Goal, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse goal id: %w", err)
	}
	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	deadline, err := parseNullDay(r.Deadline)
	if err != nil {
		return nil, err
	}
	return &models.Goal{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
		Deadline:     deadline,
		Status:       models.GoalStatus(r.Status),
		CreatedAt:    createdAt,
	}, nil
}

const goalColumns = `id, title, description, target_value, current_value, unit, deadline, status, created_at`

// CreateGoal inserts a new goal and returns its id.
func (d *DB) CreateGoal(ctx context.Context, g *models.Goal) (uuid.UUID, error) {
	return d.insertGoal(ctx, d.db, g)
}

func (d *DB) insertGoal(ctx context.Context, ex sqlx.ExecerContext, g *models.Goal) (uuid.UUID, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = d.now()
	}
	if g.Status == "" {
		g.Status = models.GoalActive
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO goals (`+goalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID.String(), g.Title, g.Description, g.TargetValue, g.CurrentValue, g.Unit,
		nullableDay(g.Deadline), string(g.Status), formatTimestamp(g.CreatedAt),
	)
	if err != nil {
		d.log.Error().Err(err).Str("goal", g.ID.String()).Msg("insert goal failed")
		return uuid.Nil, fmt.Errorf("insert goal: %w", err)
	}
	d.log.Debug().Str("goal", g.ID.String()).Msg("goal created")
	return g.ID, nil
}

// GetGoal retrieves a goal by id.
func (d *DB) GetGoal(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	var row goalRow
	err := d.db.GetContext(ctx, &row, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return row.toModel()
}

// ListGoals returns goals newest first, optionally filtered by status.
func (d *DB) ListGoals(ctx context.Context, status *models.GoalStatus) ([]*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals`
	var args []any
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	var rows []goalRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]*models.Goal, 0, len(rows))
	for _, r := range rows {
		g, err := r.toModel()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// UpdateGoalProgress sets a goal's current value. Values past the target
// are stored as given.
func (d *DB) UpdateGoalProgress(ctx context.Context, id uuid.UUID, value float64) (int64, error) {
	return d.updateGoal(ctx, id, "current_value", value)
}

// UpdateGoalStatus sets a goal's status.
func (d *DB) UpdateGoalStatus(ctx context.Context, id uuid.UUID, status models.GoalStatus) (int64, error) {
	return d.updateGoal(ctx, id, "status", string(status))
}

func (d *DB) updateGoal(ctx context.Context, id uuid.UUID, column string, value any) (int64, error) {
	res, err := d.db.ExecContext(ctx, `UPDATE goals SET `+column+` = ? WHERE id = ?`, value, id.String())
	if err != nil {
		d.log.Error().Err(err).Str("goal", id.String()).Str("column", column).Msg("update goal failed")
		return 0, fmt.Errorf("update goal %s: %w", column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update goal %s: %w", column, err)
	}
	d.log.Debug().Str("goal", id.String()).Str("column", column).Int64("affected", n).Msg("goal updated")
	return n, nil
}

// DeleteGoal removes a goal.
func (d *DB) DeleteGoal(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id.String())
	if err != nil {
		d.log.Error().Err(err).Str("goal", id.String()).Msg("delete goal failed")
		return 0, fmt.Errorf("delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete goal: %w", err)
	}
	d.log.Debug().Str("goal", id.String()).Int64("affected", n).Msg("goal deleted")
	return n, nil
}
