// ABOUTME: CLI commands for managing goals.
// ABOUTME: Supports add, list with progress bars, progress updates, status changes, and delete.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/spf13/cobra"
)

var (
	goalTarget      float64
	goalUnit        string
	goalDescription string
	goalDeadline    string
	goalListStatus  string
	goalListAll     bool
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g", "goals"},
	Short:   "Manage goals",
	Long: `Manage measurable goals.

A goal has a target and a current value. Progress is current/target,
shown as a percentage capped at 100. The current value itself is not
capped, so overshooting is recorded as-is.

EXAMPLES:

  productivity goal add "Read books" --target 24 --unit books
  productivity goal add "Run" --target 500 --unit km --deadline 2026-12-31
  productivity goal list
  productivity goal list --all
  productivity goal progress 5be0c2d1 7
  productivity goal complete 5be0c2d1
  productivity goal archive 5be0c2d1
  productivity goal delete 5be0c2d1`,
}

var goalAddCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a", "new"},
	Short:   "Add a goal",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("title is required")
		}
		if goalTarget <= 0 {
			return fmt.Errorf("--target must be greater than 0")
		}

		g := models.NewGoal(title, goalTarget, goalUnit).WithDescription(goalDescription)
		if goalDeadline != "" {
			deadline, err := parseDate(goalDeadline)
			if err != nil {
				return err
			}
			g.WithDeadline(deadline)
		}

		if _, err := db.CreateGoal(cmd.Context(), g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		out := cmd.OutOrStdout()
		green.Fprintln(out, "✓ Added goal")
		fmt.Fprintf(out, "  %s %s (target %s)\n", faint.Sprint(shortID(g.ID)), g.Title, formatAmount(g.TargetValue, g.Unit))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List goals with progress",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var status *models.GoalStatus
		if !goalListAll {
			s := models.GoalActive
			if goalListStatus != "" {
				if !models.IsValidGoalStatus(goalListStatus) {
					return fmt.Errorf("unknown status: %s (use active, completed, or archived)", goalListStatus)
				}
				s = models.GoalStatus(goalListStatus)
			}
			status = &s
		}

		goals, err := db.ListGoals(cmd.Context(), status)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(goals) == 0 {
			fmt.Fprintln(out, "No goals found.")
			return nil
		}

		for _, g := range goals {
			fmt.Fprintf(out, "%s %s %s %3.0f%% %s",
				faint.Sprint(shortID(g.ID)),
				padRight(truncate(g.Title, 30), 30),
				bar(g.CurrentValue, g.TargetValue, 20),
				g.Progress(),
				faint.Sprintf("%s / %s", formatNumber(g.CurrentValue), formatAmount(g.TargetValue, g.Unit)))
			if g.Status != models.GoalActive {
				fmt.Fprintf(out, " [%s]", g.Status)
			}
			if g.Deadline != nil {
				fmt.Fprintf(out, " due %s", models.FormatDay(*g.Deadline))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var goalProgressCmd = &cobra.Command{
	Use:     "progress <id> <value>",
	Aliases: []string{"set"},
	Short:   "Set a goal's current value",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		id, err := resolveID(cmd, storage.KindGoal, args[0])
		if err != nil {
			return err
		}

		n, err := db.UpdateGoalProgress(cmd.Context(), id, value)
		if err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		out := cmd.OutOrStdout()
		if n == 0 {
			fmt.Fprintf(out, "No %s matched %s\n", storage.KindGoal, args[0])
			return nil
		}

		g, err := db.GetGoal(cmd.Context(), id)
		if err != nil {
			return err
		}
		green.Fprintf(out, "✓ %s: %s / %s (%.0f%%)\n",
			g.Title, formatNumber(g.CurrentValue), formatAmount(g.TargetValue, g.Unit), g.Progress())
		fmt.Fprintf(out, "  %s\n", bar(g.CurrentValue, g.TargetValue, 20))
		return nil
	},
}

func newGoalStatusCmd(use string, status models.GoalStatus, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(cmd, storage.KindGoal, args[0])
			if err != nil {
				return err
			}

			n, err := db.UpdateGoalStatus(cmd.Context(), id, status)
			if err != nil {
				return fmt.Errorf("failed to update goal: %w", err)
			}
			reportAffected(cmd.OutOrStdout(), n, storage.KindGoal, args[0],
				fmt.Sprintf("Goal %s marked %s", shortID(id), status))
			return nil
		},
	}
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(cmd, storage.KindGoal, args[0])
		if err != nil {
			return err
		}

		n, err := db.DeleteGoal(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		reportAffected(cmd.OutOrStdout(), n, storage.KindGoal, args[0],
			fmt.Sprintf("Deleted goal %s", shortID(id)))
		return nil
	},
}

// formatNumber drops the decimal part of whole numbers.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAmount(v float64, unit string) string {
	if unit == "" {
		return formatNumber(v)
	}
	return formatNumber(v) + " " + unit
}

func init() {
	goalAddCmd.Flags().Float64VarP(&goalTarget, "target", "t", 0, "target value (required)")
	goalAddCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "unit of measure")
	goalAddCmd.Flags().StringVarP(&goalDescription, "description", "d", "", "goal details")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "deadline (YYYY-MM-DD)")
	_ = goalAddCmd.MarkFlagRequired("target")

	goalListCmd.Flags().StringVarP(&goalListStatus, "status", "s", "", "filter by status (default active)")
	goalListCmd.Flags().BoolVarP(&goalListAll, "all", "a", false, "show goals in every status")

	goalCmd.AddCommand(
		goalAddCmd,
		goalListCmd,
		goalProgressCmd,
		newGoalStatusCmd("complete", models.GoalCompleted, "Mark a goal completed"),
		newGoalStatusCmd("archive", models.GoalArchived, "Archive a goal"),
		newGoalStatusCmd("activate", models.GoalActive, "Mark a goal active again"),
		goalDeleteCmd,
	)
	rootCmd.AddCommand(goalCmd)
}
