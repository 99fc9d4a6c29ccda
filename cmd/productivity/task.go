// ABOUTME: CLI commands for managing tasks.
// ABOUTME: Supports add, list, status transitions, and delete.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/spf13/cobra"
)

var (
	taskDescription string
	taskPriority    string
	taskDue         string
	taskListStatus  string
	taskListLimit   int
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t", "tasks"},
	Short:   "Manage tasks",
	Long: `Manage tasks.

Tasks have a priority (low, medium, high) and a status (pending,
in_progress, completed). Completing a task records when it was done;
moving it back out of completed clears that time.

EXAMPLES:

  productivity task add "Write report" -p high --due 2026-03-14
  productivity task list --status pending
  productivity task start 3f2a9c1b
  productivity task done 3f2a9c1b
  productivity task reopen 3f2a9c1b
  productivity task delete 3f2a9c1b`,
}

var taskAddCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a", "new"},
	Short:   "Add a task",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("title is required")
		}

		t := models.NewTask(title).WithDescription(taskDescription)
		if taskPriority != "" {
			if !models.IsValidPriority(taskPriority) {
				return fmt.Errorf("unknown priority: %s (use low, medium, or high)", taskPriority)
			}
			t.WithPriority(models.Priority(taskPriority))
		}
		if taskDue != "" {
			due, err := parseDate(taskDue)
			if err != nil {
				return err
			}
			t.WithDueDate(due)
		}

		if _, err := db.CreateTask(cmd.Context(), t); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		out := cmd.OutOrStdout()
		green.Fprintln(out, "✓ Added task")
		fmt.Fprintf(out, "  %s %s [%s]\n", faint.Sprint(shortID(t.ID)), t.Title, t.Priority)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List tasks",
	Long: `List tasks, newest first.

Each line shows: ID  STATUS  PRIORITY  TITLE  (DUE)

Overdue due dates are shown in red.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var status *models.TaskStatus
		if taskListStatus != "" {
			if !models.IsValidTaskStatus(taskListStatus) {
				return fmt.Errorf("unknown status: %s (use pending, in_progress, or completed)", taskListStatus)
			}
			st := models.TaskStatus(taskListStatus)
			status = &st
		}

		tasks, err := db.ListTasks(cmd.Context(), status)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}

		today := models.Today()
		limit := limitFlag(taskListLimit)
		for i, t := range tasks {
			if i >= limit {
				fmt.Fprintln(out, faint.Sprintf("... %d more", len(tasks)-limit))
				break
			}
			due := ""
			if t.DueDate != nil {
				due = fmt.Sprintf(" (due %s)", models.FormatDay(*t.DueDate))
				if t.IsOverdue(today) {
					due = red.Sprint(due)
				} else {
					due = faint.Sprint(due)
				}
			}
			fmt.Fprintf(out, "%s %s %s %s%s\n",
				faint.Sprint(shortID(t.ID)),
				statusIcon(t.Status),
				padRight(string(t.Priority), 6),
				truncate(t.Title, 50),
				due)
		}
		return nil
	},
}

func statusIcon(s models.TaskStatus) string {
	switch s {
	case models.TaskCompleted:
		return green.Sprint("✓")
	case models.TaskInProgress:
		return "▶"
	default:
		return "○"
	}
}

// newTaskStatusCmd builds a command that moves a task to status.
func newTaskStatusCmd(use string, aliases []string, short string, status models.TaskStatus) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <id>",
		Aliases: aliases,
		Short:   short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTaskStatus(cmd, args[0], status)
		},
	}
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set a task's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidTaskStatus(args[1]) {
			return fmt.Errorf("unknown status: %s (use pending, in_progress, or completed)", args[1])
		}
		return setTaskStatus(cmd, args[0], models.TaskStatus(args[1]))
	},
}

func setTaskStatus(cmd *cobra.Command, idOrPrefix string, status models.TaskStatus) error {
	id, err := resolveID(cmd, storage.KindTask, idOrPrefix)
	if err != nil {
		return err
	}

	n, err := db.UpdateTaskStatus(cmd.Context(), id, status)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	reportAffected(cmd.OutOrStdout(), n, storage.KindTask, idOrPrefix,
		fmt.Sprintf("Task %s is now %s", shortID(id), status))
	return nil
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(cmd, storage.KindTask, args[0])
		if err != nil {
			return err
		}

		n, err := db.DeleteTask(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		reportAffected(cmd.OutOrStdout(), n, storage.KindTask, args[0],
			fmt.Sprintf("Deleted task %s", shortID(id)))
		return nil
	},
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "task details")
	taskAddCmd.Flags().StringVarP(&taskPriority, "priority", "p", "", "priority: low, medium, high (default medium)")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "due date (YYYY-MM-DD)")

	taskListCmd.Flags().StringVarP(&taskListStatus, "status", "s", "", "filter by status")
	taskListCmd.Flags().IntVarP(&taskListLimit, "limit", "n", 0, "max number of results (default from config)")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskStatusCmd, taskDeleteCmd,
		newTaskStatusCmd("start", []string{"begin"}, "Mark a task in progress", models.TaskInProgress),
		newTaskStatusCmd("done", []string{"complete", "finish"}, "Mark a task completed", models.TaskCompleted),
		newTaskStatusCmd("reopen", []string{"undo"}, "Move a task back to pending", models.TaskPending),
	)
	rootCmd.AddCommand(taskCmd)
}
