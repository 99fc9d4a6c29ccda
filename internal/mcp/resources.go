// ABOUTME: MCP resource implementations for the productivity store.
// ABOUTME: Provides productivity://stats, productivity://today, and productivity://week resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/productivity/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	statsURI = "productivity://stats"
	todayURI = "productivity://today"
	weekURI  = "productivity://week"
)

func (s *Server) registerResources() {
	// productivity://stats - Aggregate counts and rates
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "Productivity Stats",
		Description: "Task completion rate, average mood, habit completions, and active goals",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// productivity://today - What is open and what is done today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today",
		Description: "Open tasks and each habit's status for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// productivity://week - Seven-day activity histogram
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         weekURI,
		Name:        "Weekly Activity",
		Description: "Completed tasks and habit logs per day for the last seven days",
		MIMEType:    "application/json",
	}, s.handleWeekResource)
}

// Resource handlers

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return jsonResource(statsURI, stats)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.today()

	var open []taskView
	for _, st := range []models.TaskStatus{models.TaskInProgress, models.TaskPending} {
		status := st
		tasks, err := s.repo.ListTasks(ctx, &status)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		for _, t := range tasks {
			open = append(open, newTaskView(t, today))
		}
	}

	summaries, err := s.repo.ListHabitSummaries(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	habits := make([]habitView, 0, len(summaries))
	done := 0
	for _, h := range summaries {
		habits = append(habits, newHabitView(h))
		if h.CompletedToday {
			done++
		}
	}

	result := map[string]interface{}{
		"date":   models.FormatDay(today),
		"tasks":  open,
		"habits": habits,
		"counts": map[string]int{
			"open_tasks":  len(open),
			"habits":      len(habits),
			"habits_done": done,
		},
	}
	return jsonResource(todayURI, result)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	week, err := s.repo.WeeklyActivity(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly activity: %w", err)
	}
	return jsonResource(weekURI, newWeekView(week))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
