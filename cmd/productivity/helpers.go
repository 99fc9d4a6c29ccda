// ABOUTME: Shared helpers for CLI commands.
// ABOUTME: ID resolution, date parsing, and column formatting.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/spf13/cobra"
)

var (
	faint = color.New(color.Faint)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

func resolveID(cmd *cobra.Command, kind storage.RecordKind, idOrPrefix string) (uuid.UUID, error) {
	id, err := db.ResolveID(cmd.Context(), kind, idOrPrefix)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// reportAffected prints a success line, or a notice when nothing matched.
func reportAffected(out io.Writer, n int64, kind storage.RecordKind, idOrPrefix, success string) {
	if n == 0 {
		fmt.Fprintf(out, "No %s matched %s\n", kind, idOrPrefix)
		return
	}
	green.Fprintf(out, "✓ %s\n", success)
}

// parseDate parses an optional YYYY-MM-DD flag value. The words "today"
// and "yesterday" are accepted as well.
func parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return models.Today(), nil
	case "yesterday":
		return models.Today().AddDate(0, 0, -1), nil
	}
	return models.ParseDay(s)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// truncate shortens s to maxLen characters, counting runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// bar renders value/total as a fixed-width text bar.
func bar(value, total float64, width int) string {
	if total <= 0 || width <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / total * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func limitFlag(n int) int {
	if n > 0 {
		return n
	}
	if cfg != nil && cfg.ListLimit > 0 {
		return cfg.ListLimit
	}
	return 20
}
