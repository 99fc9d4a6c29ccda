// ABOUTME: Tests for task storage operations.
// ABOUTME: Covers create, list ordering, status transitions, and deletion.
package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockStart = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func TestCreateAndGetTask(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	task := models.NewTask("Write report").
		WithDescription("quarterly numbers").
		WithPriority(models.PriorityHigh).
		WithDueDate(due)

	id, err := db.CreateTask(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, task.ID, id)

	got, err := db.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Description)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.TaskPending, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due), "due date %v", got.DueDate)
	assert.True(t, got.CreatedAt.Equal(task.CreatedAt))
	assert.Nil(t, got.CompletedAt)
}

func TestCreateTaskFillsDefaults(t *testing.T) {
	ctx := context.Background()
	db, _ := setupClockedDB(t, clockStart)

	id, err := db.CreateTask(ctx, &models.Task{Title: "bare"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := db.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, got.Priority)
	assert.Equal(t, models.TaskPending, got.Status)
	assert.True(t, got.CreatedAt.Equal(clockStart))
	assert.Nil(t, got.DueDate)
}

func TestGetTaskNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetTask(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTasksNewestFirst(t *testing.T) {
	ctx := context.Background()
	db, clock := setupClockedDB(t, clockStart)

	var ids []uuid.UUID
	for _, title := range []string{"first", "second", "third"} {
		id, err := db.CreateTask(ctx, &models.Task{Title: title})
		require.NoError(t, err)
		ids = append(ids, id)
		clock.Advance(time.Minute)
	}

	tasks, err := db.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)

	_, err = db.UpdateTaskStatus(ctx, ids[1], models.TaskCompleted)
	require.NoError(t, err)

	completed := models.TaskCompleted
	done, err := db.ListTasks(ctx, &completed)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, ids[1], done[0].ID)

	pending := models.TaskPending
	open, err := db.ListTasks(ctx, &pending)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestListTasksSameTimestampUsesInsertOrder(t *testing.T) {
	ctx := context.Background()
	db, _ := setupClockedDB(t, clockStart)

	for _, title := range []string{"a", "b"} {
		_, err := db.CreateTask(ctx, &models.Task{Title: title})
		require.NoError(t, err)
	}

	tasks, err := db.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestListTasksEmpty(t *testing.T) {
	db := setupTestDB(t)

	tasks, err := db.ListTasks(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTaskStatusCompletedAt(t *testing.T) {
	ctx := context.Background()
	db, clock := setupClockedDB(t, clockStart)

	id, err := db.CreateTask(ctx, models.NewTask("ship it"))
	require.NoError(t, err)

	// in_progress leaves completed_at empty
	n, err := db.UpdateTaskStatus(ctx, id, models.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	got, err := db.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, got.Status)
	assert.Nil(t, got.CompletedAt)

	// completing stamps the current time
	clock.Advance(time.Hour)
	firstDone := clock.Now()
	_, err = db.UpdateTaskStatus(ctx, id, models.TaskCompleted)
	require.NoError(t, err)
	got, err = db.GetTask(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(firstDone))

	// completing again keeps the original stamp
	clock.Advance(time.Hour)
	_, err = db.UpdateTaskStatus(ctx, id, models.TaskCompleted)
	require.NoError(t, err)
	got, err = db.GetTask(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(firstDone))

	// reopening clears it
	_, err = db.UpdateTaskStatus(ctx, id, models.TaskPending)
	require.NoError(t, err)
	got, err = db.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, got.Status)
	assert.Nil(t, got.CompletedAt)

	// and completing after a reopen stamps afresh
	clock.Advance(time.Hour)
	_, err = db.UpdateTaskStatus(ctx, id, models.TaskCompleted)
	require.NoError(t, err)
	got, err = db.GetTask(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(clock.Now()))
}

func TestTaskMutationsOnUnknownIDAreNoOps(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	_, err := db.CreateTask(ctx, models.NewTask("keep me"))
	require.NoError(t, err)

	n, err := db.UpdateTaskStatus(ctx, uuid.New(), models.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = db.DeleteTask(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	tasks, err := db.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskPending, tasks[0].Status)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	id, err := db.CreateTask(ctx, models.NewTask("temporary"))
	require.NoError(t, err)

	n, err := db.DeleteTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = db.GetTask(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err = db.DeleteTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
