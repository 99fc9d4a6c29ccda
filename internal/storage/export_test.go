// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats and JSON round trips.
package storage

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/productivity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedExportData(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	task, err := db.CreateTask(ctx, models.NewTask("Write tests").WithPriority(models.PriorityHigh))
	require.NoError(t, err)
	_, err = db.UpdateTaskStatus(ctx, task, models.TaskCompleted)
	require.NoError(t, err)
	_, err = db.CreateTask(ctx, models.NewTask("Refactor"))
	require.NoError(t, err)

	habit := createHabit(t, db, "Meditate")
	for _, n := range []int{0, 1, 2} {
		_, err := db.LogHabit(ctx, habit, daysBefore(n))
		require.NoError(t, err)
	}

	_, err = db.CreateMoodEntry(ctx, models.NewMoodEntry(5, "steady day").WithSentiment(0.2))
	require.NoError(t, err)

	goal, err := db.CreateGoal(ctx, models.NewGoal("Run distance", 100, "km"))
	require.NoError(t, err)
	_, err = db.UpdateGoalProgress(ctx, goal, 40)
	require.NoError(t, err)
}

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportJSON(context.Background())
	require.NoError(t, err)

	var export ExportData
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "1.0", export.Version)
	assert.Equal(t, "productivity", export.Tool)
	assert.Len(t, export.Tasks, 2)
	require.Len(t, export.Habits, 1)
	assert.Equal(t, "Meditate", export.Habits[0].Name)
	assert.Len(t, export.Habits[0].Logs, 3)
	assert.Len(t, export.MoodEntries, 1)
	assert.Len(t, export.Goals, 1)
}

func TestImportJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := setupTestDB(t)
	seedExportData(t, src)

	data, err := src.ExportJSON(ctx)
	require.NoError(t, err)

	dst := setupTestDB(t)
	require.NoError(t, dst.ImportJSON(ctx, data))

	srcTasks, err := src.ListTasks(ctx, nil)
	require.NoError(t, err)
	dstTasks, err := dst.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, dstTasks, len(srcTasks))
	imported := make(map[string]*models.Task)
	for _, task := range dstTasks {
		imported[task.ID.String()] = task
	}
	for _, want := range srcTasks {
		got, ok := imported[want.ID.String()]
		require.True(t, ok, "task %s not imported", want.ID)
		assert.Equal(t, want.Status, got.Status)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	}

	habits, err := dst.ListHabits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	streak, err := dst.HabitStreak(ctx, habits[0].ID, habitToday)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)

	srcStats, err := src.Stats(ctx)
	require.NoError(t, err)
	dstStats, err := dst.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcStats, dstStats)

	goals, err := dst.ListGoals(ctx, nil)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.InDelta(t, 40, goals[0].Progress(), 1e-9)
}

func TestImportJSONInvalid(t *testing.T) {
	db := setupTestDB(t)

	err := db.ImportJSON(context.Background(), []byte("not json"))
	assert.Error(t, err)
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportYAML(context.Background())
	require.NoError(t, err)

	var yamlData map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &yamlData))

	assert.Equal(t, "1.0", yamlData["version"])
	assert.Equal(t, "productivity", yamlData["tool"])

	tasks, ok := yamlData["tasks"].(map[string]interface{})
	require.True(t, ok, "tasks should be grouped by status")
	assert.Contains(t, tasks, "completed")
	assert.Contains(t, tasks, "pending")

	habits, ok := yamlData["habits"].([]interface{})
	require.True(t, ok)
	require.Len(t, habits, 1)
	habit := habits[0].(map[string]interface{})
	assert.Len(t, habit["logged"], 3)
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	md, err := db.ExportMarkdown(context.Background(), nil)
	require.NoError(t, err)

	for _, want := range []string{
		"# Productivity Export",
		"## Summary",
		"- Tasks: 2 (1 completed, 50.0%)",
		"## Tasks",
		"Write tests",
		"## Habits",
		"| Meditate | daily | 3 |",
		"## Mood",
		"steady day",
		"## Goals",
		"| Run distance | 40/100 km (40%) | active |",
	} {
		assert.True(t, strings.Contains(md, want), "markdown missing %q", want)
	}
}

func TestExportMarkdownSince(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	since := time.Now().Add(24 * time.Hour)
	md, err := db.ExportMarkdown(context.Background(), &since)
	require.NoError(t, err)

	assert.NotContains(t, md, "Write tests")
	assert.NotContains(t, md, "steady day")
	assert.Contains(t, md, "| Meditate | daily | 0 |")
}

func TestImportDataFailureLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	existing := models.NewTask("a")
	_, err := db.CreateTask(ctx, existing)
	require.NoError(t, err)

	fresh := models.NewTask("b")
	dup := *existing
	data := &ExportData{
		Tasks:  []*models.Task{fresh, &dup},
		Habits: []*HabitExport{{Habit: *models.NewHabit("Walk")}},
	}

	err = db.ImportData(ctx, data)
	require.Error(t, err)

	tasks, err := db.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, existing.ID, tasks[0].ID)

	_, err = db.GetTask(ctx, fresh.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	habits, err := db.ListHabits(ctx)
	require.NoError(t, err)
	assert.Empty(t, habits)

	// the store is still usable after the rollback
	_, err = db.CreateTask(ctx, models.NewTask("c"))
	require.NoError(t, err)
}
