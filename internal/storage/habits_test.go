// ABOUTME: Tests for habit storage operations.
// ABOUTME: Covers idempotent logging, streaks, summaries, and cascading delete.
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

var habitToday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func daysBefore(n int) time.Time {
	return habitToday.AddDate(0, 0, -n)
}

func createHabit(t *testing.T, db *DB, name string) uuid.UUID {
	t.Helper()
	id, err := db.CreateHabit(context.Background(), models.NewHabit(name))
	require.NoError(t, err)
	return id
}

func TestCreateAndGetHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	h := models.NewHabit("Read").WithDescription("20 pages").WithFrequency(models.FrequencyWeekly)
	id, err := db.CreateHabit(ctx, h)
	require.NoError(t, err)

	got, err := db.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Read", got.Name)
	assert.Equal(t, "20 pages", got.Description)
	assert.Equal(t, models.FrequencyWeekly, got.Frequency)

	_, err = db.GetHabit(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateHabitDefaultsToDaily(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	id, err := db.CreateHabit(ctx, &models.Habit{Name: "Walk"})
	require.NoError(t, err)

	got, err := db.GetHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.FrequencyDaily, got.Frequency)
}

func TestListHabitsNewestFirst(t *testing.T) {
	ctx := context.Background()
	db, clock := setupClockedDB(t, clockStart)

	createHabit(t, db, "older")
	clock.Advance(time.Minute)
	createHabit(t, db, "newer")

	habits, err := db.ListHabits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, "newer", habits[0].Name)
	assert.Equal(t, "older", habits[1].Name)
}

func TestLogHabitIsIdempotentPerDate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id := createHabit(t, db, "Meditate")

	inserted, err := db.LogHabit(ctx, id, habitToday)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = db.LogHabit(ctx, id, habitToday.Add(9*time.Hour))
	require.NoError(t, err)
	assert.False(t, inserted)

	logs, err := db.ListHabitLogs(ctx, id)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].LoggedDate.Equal(habitToday))
	assert.True(t, logs[0].Completed)
	assert.Equal(t, id, logs[0].HabitID)
}

func TestLogHabitUnknownHabitFails(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LogHabit(context.Background(), uuid.New(), habitToday)
	assert.Error(t, err)
}

func TestListHabitLogsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id := createHabit(t, db, "Stretch")

	for _, n := range []int{3, 0, 1} {
		_, err := db.LogHabit(ctx, id, daysBefore(n))
		require.NoError(t, err)
	}

	logs, err := db.ListHabitLogs(ctx, id)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.True(t, logs[0].LoggedDate.Equal(daysBefore(0)))
	assert.True(t, logs[1].LoggedDate.Equal(daysBefore(1)))
	assert.True(t, logs[2].LoggedDate.Equal(daysBefore(3)))
}

func TestIsHabitCompletedOn(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id := createHabit(t, db, "Journal")

	_, err := db.LogHabit(ctx, id, daysBefore(1))
	require.NoError(t, err)

	done, err := db.IsHabitCompletedOn(ctx, id, daysBefore(1))
	require.NoError(t, err)
	assert.True(t, done)

	done, err = db.IsHabitCompletedOn(ctx, id, habitToday)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestHabitStreak(t *testing.T) {
	tests := []struct {
		name   string
		logged []int
		want   int
	}{
		{"today and two prior days", []int{0, 1, 2}, 3},
		{"yesterday and day before", []int{1, 2}, 2},
		{"three days ago only", []int{3}, 0},
		{"no logs", nil, 0},
		{"gap breaks the run", []int{0, 1, 3, 4}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db := setupTestDB(t)
			id := createHabit(t, db, "Run")

			for _, n := range tt.logged {
				_, err := db.LogHabit(ctx, id, daysBefore(n))
				require.NoError(t, err)
			}

			streak, err := db.HabitStreak(ctx, id, habitToday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, streak)
		})
	}
}

func TestHabitStreakIgnoresFutureLogs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id := createHabit(t, db, "Run")

	for _, n := range []int{-1, 0, 1} {
		_, err := db.LogHabit(ctx, id, daysBefore(n))
		require.NoError(t, err)
	}

	streak, err := db.HabitStreak(ctx, id, habitToday)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestHabitStreakUnknownHabit(t *testing.T) {
	db := setupTestDB(t)

	streak, err := db.HabitStreak(context.Background(), uuid.New(), habitToday)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestListHabitSummaries(t *testing.T) {
	ctx := context.Background()
	db, clock := setupClockedDB(t, clockStart)

	active := createHabit(t, db, "active")
	clock.Advance(time.Minute)
	lapsed := createHabit(t, db, "lapsed")
	clock.Advance(time.Minute)
	createHabit(t, db, "never")

	for _, n := range []int{0, 1, 2} {
		_, err := db.LogHabit(ctx, active, daysBefore(n))
		require.NoError(t, err)
	}
	_, err := db.LogHabit(ctx, lapsed, daysBefore(5))
	require.NoError(t, err)

	summaries, err := db.ListHabitSummaries(ctx, habitToday)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	byName := make(map[string]models.HabitSummary)
	for _, s := range summaries {
		byName[s.Name] = s
	}

	assert.Equal(t, 3, byName["active"].Streak)
	assert.True(t, byName["active"].CompletedToday)
	assert.Equal(t, 0, byName["lapsed"].Streak)
	assert.False(t, byName["lapsed"].CompletedToday)
	assert.Equal(t, 0, byName["never"].Streak)
	assert.Equal(t, "never", summaries[0].Name)
}

func TestDeleteHabitRemovesLogs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id := createHabit(t, db, "Floss")
	other := createHabit(t, db, "Water")

	for _, n := range []int{0, 1, 2} {
		_, err := db.LogHabit(ctx, id, daysBefore(n))
		require.NoError(t, err)
	}
	_, err := db.LogHabit(ctx, other, habitToday)
	require.NoError(t, err)

	n, err := db.DeleteHabit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var remaining int
	require.NoError(t, db.db.Get(&remaining, `SELECT COUNT(*) FROM habit_logs WHERE habit_id = ?`, id.String()))
	assert.Equal(t, 0, remaining)

	streak, err := db.HabitStreak(ctx, id, habitToday)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	_, err = db.GetHabit(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// other habits keep their logs
	logs, err := db.ListHabitLogs(ctx, other)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestDeleteHabitUnknownID(t *testing.T) {
	db := setupTestDB(t)

	n, err := db.DeleteHabit(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
