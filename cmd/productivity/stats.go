// ABOUTME: CLI commands for aggregate statistics and weekly activity.
// ABOUTME: Renders completion rate, mood average, and a seven-day histogram.
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/productivity/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall statistics",
	Long: `Show totals across everything you have recorded.

  Tasks          total and completed, with completion rate
  Mood           average score across all entries
  Habits         total number of habit check-ins
  Goals          number of active goals`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := db.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tasks:   %d total, %d completed\n", s.TotalTasks, s.CompletedTasks)
		fmt.Fprintf(out, "         %s %.1f%%\n", bar(s.CompletionRate, 100, 20), s.CompletionRate)
		if s.AverageMood > 0 {
			emoji := models.MoodEmoji(int(math.Round(s.AverageMood)))
			fmt.Fprintf(out, "Mood:    %.1f/%d %s\n", s.AverageMood, models.MaxMoodScore, emoji)
		} else {
			fmt.Fprintf(out, "Mood:    %s\n", faint.Sprint("no entries"))
		}
		fmt.Fprintf(out, "Habits:  %d check-ins\n", s.TotalHabitCompletions)
		fmt.Fprintf(out, "Goals:   %d active\n", s.ActiveGoals)
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show activity for the last seven days",
	Long: `Show completed tasks and habit check-ins for each of the last
seven days, today included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := db.WeeklyActivity(cmd.Context(), models.Today())
		if err != nil {
			return fmt.Errorf("failed to compute weekly activity: %w", err)
		}

		rows := w.Filled()
		peak := 0
		for _, r := range rows {
			peak = max(peak, r.Tasks, r.Habits)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, faint.Sprintf("%-10s  %-15s  %s", "", "tasks", "habits"))
		for _, r := range rows {
			label := r.Date
			if d, err := time.Parse(models.DateLayout, r.Date); err == nil {
				label = d.Format("Mon 01-02")
			}
			fmt.Fprintf(out, "%-10s  %s %2d  %s %2d\n",
				label,
				bar(float64(r.Tasks), float64(peak), 12), r.Tasks,
				bar(float64(r.Habits), float64(peak), 12), r.Habits)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, weekCmd)
}
