// ABOUTME: CLI commands for managing habits.
// ABOUTME: Supports add, list with streaks, daily logging, streak lookup, and delete.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/spf13/cobra"
)

var (
	habitDescription string
	habitFrequency   string
	habitLogDate     string
)

var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"h", "habits"},
	Short:   "Manage habits",
	Long: `Manage habits and log when you do them.

A habit's streak counts consecutive days ending today. If today is not
logged yet, the streak still counts up to yesterday, so it only breaks
once a full day is missed. Logging the same day twice is harmless.

EXAMPLES:

  productivity habit add Meditate --description "10 minutes"
  productivity habit list
  productivity habit log 7d41e0aa
  productivity habit log 7d41e0aa --date yesterday
  productivity habit streak 7d41e0aa
  productivity habit delete 7d41e0aa`,
}

var habitAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a", "new"},
	Short:   "Add a habit",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("name is required")
		}

		h := models.NewHabit(name).WithDescription(habitDescription)
		if habitFrequency != "" {
			if !models.IsValidFrequency(habitFrequency) {
				return fmt.Errorf("unknown frequency: %s (use daily or weekly)", habitFrequency)
			}
			h.WithFrequency(models.Frequency(habitFrequency))
		}

		if _, err := db.CreateHabit(cmd.Context(), h); err != nil {
			return fmt.Errorf("failed to create habit: %w", err)
		}

		out := cmd.OutOrStdout()
		green.Fprintln(out, "✓ Added habit")
		fmt.Fprintf(out, "  %s %s (%s)\n", faint.Sprint(shortID(h.ID)), h.Name, h.Frequency)
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List habits with streaks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := db.ListHabitSummaries(cmd.Context(), models.Today())
		if err != nil {
			return fmt.Errorf("failed to list habits: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No habits found.")
			return nil
		}

		for _, h := range summaries {
			mark := "○"
			if h.CompletedToday {
				mark = green.Sprint("✓")
			}
			fmt.Fprintf(out, "%s %s %s %s\n",
				faint.Sprint(shortID(h.ID)),
				mark,
				padRight(truncate(h.Name, 30), 30),
				streakLabel(h.Streak))
		}
		return nil
	},
}

func streakLabel(streak int) string {
	if streak == 0 {
		return faint.Sprint("no streak")
	}
	if streak == 1 {
		return "🔥 1 day"
	}
	return fmt.Sprintf("🔥 %d days", streak)
}

var habitLogCmd = &cobra.Command{
	Use:     "log <id>",
	Aliases: []string{"done", "check"},
	Short:   "Log a habit as done",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		day, err := parseDate(habitLogDate)
		if err != nil {
			return err
		}

		id, err := resolveID(cmd, storage.KindHabit, args[0])
		if err != nil {
			return err
		}
		h, err := db.GetHabit(ctx, id)
		if err != nil {
			return err
		}

		inserted, err := db.LogHabit(ctx, id, day)
		if err != nil {
			return fmt.Errorf("failed to log habit: %w", err)
		}
		streak, err := db.HabitStreak(ctx, id, models.Today())
		if err != nil {
			return fmt.Errorf("failed to compute streak: %w", err)
		}

		out := cmd.OutOrStdout()
		if inserted {
			green.Fprintf(out, "✓ Logged %s for %s\n", h.Name, models.FormatDay(day))
		} else {
			fmt.Fprintf(out, "%s was already logged for %s\n", h.Name, models.FormatDay(day))
		}
		fmt.Fprintf(out, "  %s\n", streakLabel(streak))
		return nil
	},
}

var habitStreakCmd = &cobra.Command{
	Use:   "streak <id>",
	Short: "Show a habit's current streak",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(cmd, storage.KindHabit, args[0])
		if err != nil {
			return err
		}

		streak, err := db.HabitStreak(cmd.Context(), id, models.Today())
		if err != nil {
			return fmt.Errorf("failed to compute streak: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", faint.Sprint(shortID(id)), streakLabel(streak))
		return nil
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a habit and its logs",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(cmd, storage.KindHabit, args[0])
		if err != nil {
			return err
		}

		n, err := db.DeleteHabit(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		reportAffected(cmd.OutOrStdout(), n, storage.KindHabit, args[0],
			fmt.Sprintf("Deleted habit %s", shortID(id)))
		return nil
	},
}

func init() {
	habitAddCmd.Flags().StringVarP(&habitDescription, "description", "d", "", "habit details")
	habitAddCmd.Flags().StringVarP(&habitFrequency, "frequency", "f", "", "daily or weekly (default daily)")

	habitLogCmd.Flags().StringVar(&habitLogDate, "date", "", "date to log (YYYY-MM-DD, today, yesterday)")

	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitLogCmd, habitStreakCmd, habitDeleteCmd)
	rootCmd.AddCommand(habitCmd)
}
