// ABOUTME: Repository interface for productivity data storage.
// ABOUTME: Defines the contract for tasks, habits, moods, goals, and derived views.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
)

// Repository defines the storage interface for productivity data.
// Mutations on unknown ids return zero affected rows, not an error.
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, t *models.Task) (uuid.UUID, error)
	GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, status *models.TaskStatus) ([]*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status models.TaskStatus) (int64, error)
	DeleteTask(ctx context.Context, id uuid.UUID) (int64, error)

	// Habit operations
	CreateHabit(ctx context.Context, h *models.Habit) (uuid.UUID, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*models.Habit, error)
	ListHabits(ctx context.Context) ([]*models.Habit, error)
	ListHabitSummaries(ctx context.Context, today time.Time) ([]models.HabitSummary, error)
	LogHabit(ctx context.Context, habitID uuid.UUID, day time.Time) (bool, error)
	ListHabitLogs(ctx context.Context, habitID uuid.UUID) ([]*models.HabitLog, error)
	IsHabitCompletedOn(ctx context.Context, habitID uuid.UUID, day time.Time) (bool, error)
	HabitStreak(ctx context.Context, habitID uuid.UUID, today time.Time) (int, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) (int64, error)

	// Mood operations
	CreateMoodEntry(ctx context.Context, m *models.MoodEntry) (uuid.UUID, error)
	ListMoodEntries(ctx context.Context, limit int) ([]*models.MoodEntry, error)

	// Goal operations
	CreateGoal(ctx context.Context, g *models.Goal) (uuid.UUID, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*models.Goal, error)
	ListGoals(ctx context.Context, status *models.GoalStatus) ([]*models.Goal, error)
	UpdateGoalProgress(ctx context.Context, id uuid.UUID, value float64) (int64, error)
	UpdateGoalStatus(ctx context.Context, id uuid.UUID, status models.GoalStatus) (int64, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) (int64, error)

	// Derived views
	Stats(ctx context.Context) (models.Stats, error)
	WeeklyActivity(ctx context.Context, today time.Time) (models.WeeklyActivity, error)

	// ID resolution
	ResolveID(ctx context.Context, kind RecordKind, idOrPrefix string) (uuid.UUID, error)

	// Export/Import
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) error

	// Lifecycle
	Close() error
}

// Ensure DB implements Repository.
var _ Repository = (*DB)(nil)
