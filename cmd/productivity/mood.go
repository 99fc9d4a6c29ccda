// ABOUTME: CLI commands for recording mood check-ins.
// ABOUTME: Scores the notes for sentiment when the entry is added.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/sentiment"
	"github.com/spf13/cobra"
)

var (
	moodNotes     string
	moodListLimit int
)

var moodCmd = &cobra.Command{
	Use:     "mood",
	Aliases: []string{"m"},
	Short:   "Record and review mood",
	Long: `Record how you feel on a 1-7 scale.

  1 😢  2 😔  3 😐  4 🙂  5 😊  6 😄  7 🤩

Notes are scored for sentiment once, when the entry is added.

EXAMPLES:

  productivity mood add 6 --notes "Great run this morning"
  productivity mood list
  productivity mood list -n 5`,
}

var moodAddCmd = &cobra.Command{
	Use:     "add <score>",
	Aliases: []string{"a", "log"},
	Short:   "Record a mood score (1-7)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil || !models.IsValidMoodScore(score) {
			return fmt.Errorf("invalid mood score: %s (use %d-%d)", args[0], models.MinMoodScore, models.MaxMoodScore)
		}

		polarity := sentiment.NewVader().Score(moodNotes)
		m := models.NewMoodEntry(score, moodNotes).WithSentiment(polarity)
		if _, err := db.CreateMoodEntry(cmd.Context(), m); err != nil {
			return fmt.Errorf("failed to record mood: %w", err)
		}

		out := cmd.OutOrStdout()
		green.Fprintf(out, "✓ Recorded mood %s %d/%d\n", m.MoodEmoji, m.MoodScore, models.MaxMoodScore)
		if m.Notes != "" {
			fmt.Fprintf(out, "  sentiment: %s (%.2f)\n", sentiment.Label(m.SentimentScore), m.SentimentScore)
		}
		return nil
	},
}

var moodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent mood entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := moodListLimit
		if limit <= 0 && cfg != nil {
			limit = cfg.MoodHistory
		}

		entries, err := db.ListMoodEntries(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list mood entries: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No mood entries found.")
			return nil
		}

		for _, m := range entries {
			fmt.Fprintf(out, "%s %s %s %d/%d",
				faint.Sprint(shortID(m.ID)),
				m.LoggedAt.Format("2006-01-02 15:04"),
				m.MoodEmoji,
				m.MoodScore, models.MaxMoodScore)
			if m.Notes != "" {
				fmt.Fprintf(out, "  %s %s", truncate(m.Notes, 50), faint.Sprintf("(%s)", sentiment.Label(m.SentimentScore)))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	moodAddCmd.Flags().StringVarP(&moodNotes, "notes", "n", "", "what's on your mind")
	moodListCmd.Flags().IntVarP(&moodListLimit, "limit", "n", 0, "number of entries (default from config)")

	moodCmd.AddCommand(moodAddCmd, moodListCmd)
	rootCmd.AddCommand(moodCmd)
}
