// ABOUTME: Task CRUD operations for SQLite storage.
// ABOUTME: Handles task creation, listing, status transitions, and deletion.
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

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	DueDate     sql.NullString `db:"due_date"`
	CreatedAt   string         `db:"created_at"`
	CompletedAt sql.NullString `db:"completed_at"`
}

func (r taskRow) toModel() (*models.Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse task id: %w", err)
	}
	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseNullDay(r.DueDate)
	if err != nil {
		return nil, err
	}
	completedAt, err := parseNullTimestamp(r.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &models.Task{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Priority:    models.Priority(r.Priority),
		Status:      models.TaskStatus(r.Status),
		DueDate:     dueDate,
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}, nil
}

const taskColumns = `id, title, description, priority, status, due_date, created_at, completed_at`

// CreateTask inserts a new task and returns its id.
func (d *DB) CreateTask(ctx context.Context, t *models.Task) (uuid.UUID, error) {
	return d.insertTask(ctx, d.db, t)
}

func (d *DB) insertTask(ctx context.Context, ex sqlx.ExecerContext, t *models.Task) (uuid.UUID, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = d.now()
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.Status == "" {
		t.Status = models.TaskPending
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.Title, t.Description, string(t.Priority), string(t.Status),
		nullableDay(t.DueDate), formatTimestamp(t.CreatedAt), nullableTimestamp(t.CompletedAt),
	)
	if err != nil {
		d.log.Error().Err(err).Str("task", t.ID.String()).Msg("insert task failed")
		return uuid.Nil, fmt.Errorf("insert task: %w", err)
	}
	d.log.Debug().Str("task", t.ID.String()).Msg("task created")
	return t.ID, nil
}

// GetTask retrieves a task by id.
func (d *DB) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var row taskRow
	err := d.db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return row.toModel()
}

// ListTasks returns tasks newest first, optionally filtered by status.
func (d *DB) ListTasks(ctx context.Context, status *models.TaskStatus) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	var rows []taskRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, r := range rows {
		t, err := r.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// UpdateTaskStatus sets a task's status. completed_at is stamped on the
// transition into completed, kept when the task was already completed,
// and cleared for any other status.
func (d *DB) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status models.TaskStatus) (int64, error) {
	res, err := d.db.ExecContext(ctx, `
		UPDATE tasks SET
			completed_at = CASE
				WHEN ?1 != 'completed' THEN NULL
				WHEN status = 'completed' AND completed_at IS NOT NULL THEN completed_at
				ELSE ?2
			END,
			status = ?1
		WHERE id = ?3`,
		string(status), formatTimestamp(d.now()), id.String(),
	)
	if err != nil {
		d.log.Error().Err(err).Str("task", id.String()).Msg("update task status failed")
		return 0, fmt.Errorf("update task status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update task status: %w", err)
	}
	d.log.Debug().Str("task", id.String()).Str("status", string(status)).Int64("affected", n).Msg("task status updated")
	return n, nil
}

// DeleteTask removes a task.
func (d *DB) DeleteTask(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		d.log.Error().Err(err).Str("task", id.String()).Msg("delete task failed")
		return 0, fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete task: %w", err)
	}
	d.log.Debug().Str("task", id.String()).Int64("affected", n).Msg("task deleted")
	return n, nil
}
