// ABOUTME: MCP tool implementations for the productivity store.
// ABOUTME: Validates input, then delegates tasks, habits, moods, goals, and stats to storage.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/sentiment"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultMoodLimit = 10
	allGoals         = "all"
)

func (s *Server) registerTools() {
	// Tasks
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_task",
		Description: "Create a task with optional description, priority, and due date",
	}, s.handleAddTask)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks newest first, optionally filtered by status",
	}, s.handleListTasks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_task_status",
		Description: "Set a task's status (pending, in_progress, completed)",
	}, s.handleUpdateTaskStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by ID or ID prefix",
	}, s.handleDeleteTask)

	// Habits
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_habit",
		Description: "Create a habit to track",
	}, s.handleAddHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_habits",
		Description: "List habits with their current streak and whether they were done today",
	}, s.handleListHabits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_habit",
		Description: "Mark a habit as done for a date (defaults to today); logging twice is harmless",
	}, s.handleLogHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_habit",
		Description: "Delete a habit and all of its logs",
	}, s.handleDeleteHabit)

	// Mood
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_mood",
		Description: "Record a mood score from 1 (awful) to 7 (amazing) with optional notes",
	}, s.handleAddMood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_moods",
		Description: "List recent mood entries, newest first",
	}, s.handleListMoods)

	// Goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a measurable goal with a target value",
	}, s.handleAddGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals with progress; active goals by default",
	}, s.handleListGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal_progress",
		Description: "Set a goal's current value",
	}, s.handleUpdateGoalProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_goal",
		Description: "Delete a goal by ID or ID prefix",
	}, s.handleDeleteGoal)

	// Derived views
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get task completion rate, average mood, habit completions, and active goals",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weekly_activity",
		Description: "Get completed tasks and habit logs per day for the last seven days",
	}, s.handleGetWeeklyActivity)
}

// Tool input/output types

type addTaskInput struct {
	Title       string `json:"title" jsonschema:"Task title"`
	Description string `json:"description,omitempty" jsonschema:"Optional details"`
	Priority    string `json:"priority,omitempty" jsonschema:"low, medium, or high (default medium)"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"Due date as YYYY-MM-DD"`
}

type listTasksInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status: pending, in_progress, or completed"`
}

type listTasksOutput struct {
	Tasks []taskView `json:"tasks"`
	Count int        `json:"count"`
}

type updateTaskStatusInput struct {
	ID     string `json:"id" jsonschema:"Task ID or prefix"`
	Status string `json:"status" jsonschema:"New status: pending, in_progress, or completed"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Record ID or prefix"`
}

type mutationOutput struct {
	ID       string `json:"id"`
	Affected int64  `json:"affected"`
	Message  string `json:"message"`
}

type addHabitInput struct {
	Name        string `json:"name" jsonschema:"Habit name"`
	Description string `json:"description,omitempty" jsonschema:"Optional details"`
	Frequency   string `json:"frequency,omitempty" jsonschema:"daily or weekly (default daily)"`
}

type listHabitsOutput struct {
	Habits []habitView `json:"habits"`
	Count  int         `json:"count"`
}

type logHabitInput struct {
	ID   string `json:"id" jsonschema:"Habit ID or prefix"`
	Date string `json:"date,omitempty" jsonschema:"Date as YYYY-MM-DD (default today)"`
}

type logHabitOutput struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Inserted bool   `json:"inserted"`
	Streak   int    `json:"streak"`
	Message  string `json:"message"`
}

type addMoodInput struct {
	Score int    `json:"score" jsonschema:"Mood score from 1 to 7"`
	Notes string `json:"notes,omitempty" jsonschema:"How you feel, in your own words"`
}

type addMoodOutput struct {
	Mood    moodView `json:"mood"`
	Message string   `json:"message"`
}

type listMoodsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type listMoodsOutput struct {
	Moods []moodView `json:"moods"`
	Count int        `json:"count"`
}

type addGoalInput struct {
	Title       string  `json:"title" jsonschema:"Goal title"`
	Target      float64 `json:"target" jsonschema:"Target value, must be positive"`
	Unit        string  `json:"unit,omitempty" jsonschema:"Unit of measurement (books, km, hours)"`
	Description string  `json:"description,omitempty" jsonschema:"Optional details"`
	Deadline    string  `json:"deadline,omitempty" jsonschema:"Deadline as YYYY-MM-DD"`
}

type listGoalsInput struct {
	Status string `json:"status,omitempty" jsonschema:"active, completed, archived, or all (default active)"`
}

type listGoalsOutput struct {
	Goals []goalView `json:"goals"`
	Count int        `json:"count"`
}

type updateGoalProgressInput struct {
	ID    string  `json:"id" jsonschema:"Goal ID or prefix"`
	Value float64 `json:"value" jsonschema:"New current value"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleAddTask(ctx context.Context, req *mcp.CallToolRequest, input addTaskInput) (*mcp.CallToolResult, taskView, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, taskView{}, fmt.Errorf("title is required")
	}

	t := models.NewTask(title).WithDescription(input.Description)
	if input.Priority != "" {
		if !models.IsValidPriority(input.Priority) {
			return nil, taskView{}, fmt.Errorf("unknown priority: %s", input.Priority)
		}
		t.WithPriority(models.Priority(input.Priority))
	}
	if input.DueDate != "" {
		due, err := models.ParseDay(input.DueDate)
		if err != nil {
			return nil, taskView{}, err
		}
		t.WithDueDate(due)
	}

	if _, err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, taskView{}, fmt.Errorf("failed to create task: %w", err)
	}

	return nil, newTaskView(t, s.today()), nil
}

func (s *Server) handleListTasks(ctx context.Context, req *mcp.CallToolRequest, input listTasksInput) (*mcp.CallToolResult, listTasksOutput, error) {
	var status *models.TaskStatus
	if input.Status != "" {
		if !models.IsValidTaskStatus(input.Status) {
			return nil, listTasksOutput{}, fmt.Errorf("unknown status: %s", input.Status)
		}
		st := models.TaskStatus(input.Status)
		status = &st
	}

	tasks, err := s.repo.ListTasks(ctx, status)
	if err != nil {
		return nil, listTasksOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	today := s.today()
	out := listTasksOutput{Tasks: make([]taskView, 0, len(tasks)), Count: len(tasks)}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, newTaskView(t, today))
	}
	return nil, out, nil
}

func (s *Server) handleUpdateTaskStatus(ctx context.Context, req *mcp.CallToolRequest, input updateTaskStatusInput) (*mcp.CallToolResult, mutationOutput, error) {
	if !models.IsValidTaskStatus(input.Status) {
		return nil, mutationOutput{}, fmt.Errorf("unknown status: %s", input.Status)
	}
	id, err := s.repo.ResolveID(ctx, storage.KindTask, input.ID)
	if err != nil {
		return nil, mutationOutput{}, err
	}

	n, err := s.repo.UpdateTaskStatus(ctx, id, models.TaskStatus(input.Status))
	if err != nil {
		return nil, mutationOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	out := mutationOutput{ID: id.String(), Affected: n}
	if n == 0 {
		out.Message = fmt.Sprintf("No task matched %s", input.ID)
	} else {
		out.Message = fmt.Sprintf("Task %s is now %s", shortID(out.ID), input.Status)
	}
	return nil, out, nil
}

func (s *Server) handleDeleteTask(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, mutationOutput, error) {
	return s.deleteRecord(ctx, storage.KindTask, input.ID, s.repo.DeleteTask)
}

func (s *Server) handleAddHabit(ctx context.Context, req *mcp.CallToolRequest, input addHabitInput) (*mcp.CallToolResult, habitView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, habitView{}, fmt.Errorf("name is required")
	}

	h := models.NewHabit(name).WithDescription(input.Description)
	if input.Frequency != "" {
		if !models.IsValidFrequency(input.Frequency) {
			return nil, habitView{}, fmt.Errorf("unknown frequency: %s", input.Frequency)
		}
		h.WithFrequency(models.Frequency(input.Frequency))
	}

	if _, err := s.repo.CreateHabit(ctx, h); err != nil {
		return nil, habitView{}, fmt.Errorf("failed to create habit: %w", err)
	}

	return nil, newHabitView(models.HabitSummary{Habit: *h}), nil
}

func (s *Server) handleListHabits(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, listHabitsOutput, error) {
	summaries, err := s.repo.ListHabitSummaries(ctx, s.today())
	if err != nil {
		return nil, listHabitsOutput{}, fmt.Errorf("failed to list habits: %w", err)
	}

	out := listHabitsOutput{Habits: make([]habitView, 0, len(summaries)), Count: len(summaries)}
	for _, h := range summaries {
		out.Habits = append(out.Habits, newHabitView(h))
	}
	return nil, out, nil
}

func (s *Server) handleLogHabit(ctx context.Context, req *mcp.CallToolRequest, input logHabitInput) (*mcp.CallToolResult, logHabitOutput, error) {
	today := s.today()
	day := today
	if input.Date != "" {
		d, err := models.ParseDay(input.Date)
		if err != nil {
			return nil, logHabitOutput{}, err
		}
		day = d
	}

	id, err := s.repo.ResolveID(ctx, storage.KindHabit, input.ID)
	if err != nil {
		return nil, logHabitOutput{}, err
	}
	h, err := s.repo.GetHabit(ctx, id)
	if err != nil {
		return nil, logHabitOutput{}, fmt.Errorf("habit not found: %s", input.ID)
	}

	inserted, err := s.repo.LogHabit(ctx, id, day)
	if err != nil {
		return nil, logHabitOutput{}, fmt.Errorf("failed to log habit: %w", err)
	}
	streak, err := s.repo.HabitStreak(ctx, id, today)
	if err != nil {
		return nil, logHabitOutput{}, fmt.Errorf("failed to compute streak: %w", err)
	}

	out := logHabitOutput{
		ID:       id.String(),
		Date:     models.FormatDay(day),
		Inserted: inserted,
		Streak:   streak,
	}
	if inserted {
		out.Message = fmt.Sprintf("Logged %s for %s (streak: %d)", h.Name, out.Date, streak)
	} else {
		out.Message = fmt.Sprintf("%s was already logged for %s (streak: %d)", h.Name, out.Date, streak)
	}
	return nil, out, nil
}

func (s *Server) handleDeleteHabit(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, mutationOutput, error) {
	return s.deleteRecord(ctx, storage.KindHabit, input.ID, s.repo.DeleteHabit)
}

func (s *Server) handleAddMood(ctx context.Context, req *mcp.CallToolRequest, input addMoodInput) (*mcp.CallToolResult, addMoodOutput, error) {
	if !models.IsValidMoodScore(input.Score) {
		return nil, addMoodOutput{}, fmt.Errorf("score must be between %d and %d", models.MinMoodScore, models.MaxMoodScore)
	}

	notes := strings.TrimSpace(input.Notes)
	m := models.NewMoodEntry(input.Score, notes).WithSentiment(s.scorer.Score(notes))
	if _, err := s.repo.CreateMoodEntry(ctx, m); err != nil {
		return nil, addMoodOutput{}, fmt.Errorf("failed to record mood: %w", err)
	}

	return nil, addMoodOutput{
		Mood:    newMoodView(m),
		Message: fmt.Sprintf("Mood logged: %s %d (%s)", m.MoodEmoji, m.MoodScore, sentiment.Label(m.SentimentScore)),
	}, nil
}

func (s *Server) handleListMoods(ctx context.Context, req *mcp.CallToolRequest, input listMoodsInput) (*mcp.CallToolResult, listMoodsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultMoodLimit
	}

	entries, err := s.repo.ListMoodEntries(ctx, input.Limit)
	if err != nil {
		return nil, listMoodsOutput{}, fmt.Errorf("failed to list moods: %w", err)
	}

	out := listMoodsOutput{Moods: make([]moodView, 0, len(entries)), Count: len(entries)}
	for _, m := range entries {
		out.Moods = append(out.Moods, newMoodView(m))
	}
	return nil, out, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalView, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, goalView{}, fmt.Errorf("title is required")
	}
	if input.Target <= 0 {
		return nil, goalView{}, fmt.Errorf("target must be positive")
	}

	g := models.NewGoal(title, input.Target, input.Unit).WithDescription(input.Description)
	if input.Deadline != "" {
		d, err := models.ParseDay(input.Deadline)
		if err != nil {
			return nil, goalView{}, err
		}
		g.WithDeadline(d)
	}

	if _, err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, goalView{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return nil, newGoalView(g), nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, listGoalsOutput, error) {
	var status *models.GoalStatus
	switch input.Status {
	case allGoals:
	case "":
		st := models.GoalActive
		status = &st
	default:
		if !models.IsValidGoalStatus(input.Status) {
			return nil, listGoalsOutput{}, fmt.Errorf("unknown status: %s", input.Status)
		}
		st := models.GoalStatus(input.Status)
		status = &st
	}

	goals, err := s.repo.ListGoals(ctx, status)
	if err != nil {
		return nil, listGoalsOutput{}, fmt.Errorf("failed to list goals: %w", err)
	}

	out := listGoalsOutput{Goals: make([]goalView, 0, len(goals)), Count: len(goals)}
	for _, g := range goals {
		out.Goals = append(out.Goals, newGoalView(g))
	}
	return nil, out, nil
}

func (s *Server) handleUpdateGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input updateGoalProgressInput) (*mcp.CallToolResult, mutationOutput, error) {
	if input.Value < 0 {
		return nil, mutationOutput{}, fmt.Errorf("value must not be negative")
	}
	id, err := s.repo.ResolveID(ctx, storage.KindGoal, input.ID)
	if err != nil {
		return nil, mutationOutput{}, err
	}

	n, err := s.repo.UpdateGoalProgress(ctx, id, input.Value)
	if err != nil {
		return nil, mutationOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}

	out := mutationOutput{ID: id.String(), Affected: n}
	if n == 0 {
		out.Message = fmt.Sprintf("No goal matched %s", input.ID)
		return nil, out, nil
	}

	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, mutationOutput{}, fmt.Errorf("failed to read goal: %w", err)
	}
	out.Message = fmt.Sprintf("%s: %.0f%% (%g/%g %s)", g.Title, g.Progress(), g.CurrentValue, g.TargetValue, g.Unit)
	return nil, out, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, mutationOutput, error) {
	return s.deleteRecord(ctx, storage.KindGoal, input.ID, s.repo.DeleteGoal)
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, models.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return nil, stats, nil
}

func (s *Server) handleGetWeeklyActivity(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, weekView, error) {
	week, err := s.repo.WeeklyActivity(ctx, s.today())
	if err != nil {
		return nil, weekView{}, fmt.Errorf("failed to compute weekly activity: %w", err)
	}
	return nil, newWeekView(week), nil
}

type deleteFunc func(ctx context.Context, id uuid.UUID) (int64, error)

func (s *Server) deleteRecord(ctx context.Context, kind storage.RecordKind, idOrPrefix string, del deleteFunc) (*mcp.CallToolResult, mutationOutput, error) {
	id, err := s.repo.ResolveID(ctx, kind, idOrPrefix)
	if err != nil {
		return nil, mutationOutput{}, err
	}

	n, err := del(ctx, id)
	if err != nil {
		return nil, mutationOutput{}, fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	s.log.Debug().Str("kind", string(kind)).Str("id", id.String()).Int64("affected", n).Msg("delete via MCP")

	out := mutationOutput{ID: id.String(), Affected: n}
	if n == 0 {
		out.Message = fmt.Sprintf("No %s matched %s", kind, idOrPrefix)
	} else {
		out.Message = fmt.Sprintf("Deleted %s: %s", kind, shortID(out.ID))
	}
	return nil, out, nil
}
