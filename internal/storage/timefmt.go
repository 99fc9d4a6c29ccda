// ABOUTME: Conversions between Go time values and their stored text forms.
// ABOUTME: Timestamps are fixed-width UTC, calendar dates are YYYY-MM-DD.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/productivity/internal/models"
)

// timestampLayout is RFC3339 with a fixed nine-digit fraction so that
// stored values order correctly as plain strings.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.Local(), nil
}

func parseNullTimestamp(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := parseTimestamp(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// nullableDay returns the stored form of an optional calendar date.
func nullableDay(t *time.Time) any {
	if t == nil {
		return nil
	}
	return models.FormatDay(*t)
}

func nullableTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTimestamp(*t)
}

func parseNullDay(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	d, err := models.ParseDay(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
