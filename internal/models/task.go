// ABOUTME: Task model with priority and status enums.
// ABOUTME: CompletedAt is set only while the task is completed.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities lists valid priorities from lowest to highest.
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValidPriority checks if a string is a valid priority.
func IsValidPriority(s string) bool {
	for _, p := range AllPriorities {
		if string(p) == s {
			return true
		}
	}
	return false
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// AllTaskStatuses lists valid task statuses in workflow order.
var AllTaskStatuses = []TaskStatus{TaskPending, TaskInProgress, TaskCompleted}

// IsValidTaskStatus checks if a string is a valid task status.
func IsValidTaskStatus(s string) bool {
	for _, st := range AllTaskStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Task is a single to-do item.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewTask creates a pending, medium-priority task with a generated UUID.
func NewTask(title string) *Task {
	return &Task{
		ID:        uuid.New(),
		Title:     title,
		Priority:  PriorityMedium,
		Status:    TaskPending,
		CreatedAt: time.Now(),
	}
}

// WithDescription sets the task description.
func (t *Task) WithDescription(desc string) *Task {
	t.Description = desc
	return t
}

// WithPriority sets the task priority.
func (t *Task) WithPriority(p Priority) *Task {
	t.Priority = p
	return t
}

// WithDueDate sets the due date, truncated to its calendar day.
func (t *Task) WithDueDate(d time.Time) *Task {
	day := Day(d)
	t.DueDate = &day
	return t
}

// IsOverdue reports whether an unfinished task is past its due date.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.Status == TaskCompleted {
		return false
	}
	return t.DueDate.Before(Day(today))
}
