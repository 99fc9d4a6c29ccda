// ABOUTME: Resolves full UUIDs or short prefixes typed by users to record ids.
// ABOUTME: A prefix must match exactly one row of the requested kind.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record matches an id or prefix.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousID is returned when a prefix matches more than one record.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)

// RecordKind names a table addressable by id.
type RecordKind string

const (
	KindTask  RecordKind = "task"
	KindHabit RecordKind = "habit"
	KindMood  RecordKind = "mood"
	KindGoal  RecordKind = "goal"
)

func (k RecordKind) table() (string, error) {
	switch k {
	case KindTask:
		return "tasks", nil
	case KindHabit:
		return "habits", nil
	case KindMood:
		return "mood_entries", nil
	case KindGoal:
		return "goals", nil
	}
	return "", fmt.Errorf("unknown record kind %q", k)
}

// ResolveID turns a full UUID or a unique prefix into an id. Full UUIDs
// pass through without a lookup so mutations on unknown ids stay no-ops.
func (d *DB) ResolveID(ctx context.Context, kind RecordKind, idOrPrefix string) (uuid.UUID, error) {
	idOrPrefix = strings.ToLower(strings.TrimSpace(idOrPrefix))
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return id, nil
	}

	if len(idOrPrefix) < 6 {
		return uuid.Nil, fmt.Errorf("id prefix %q must be at least 6 characters", idOrPrefix)
	}

	if !isIDPrefix(idOrPrefix) {
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, idOrPrefix, ErrNotFound)
	}

	table, err := kind.table()
	if err != nil {
		return uuid.Nil, err
	}

	var ids []string
	query := fmt.Sprintf("SELECT id FROM %s WHERE substr(id, 1, ?) = ? LIMIT 2", table)
	if err := d.db.SelectContext(ctx, &ids, query, len(idOrPrefix), idOrPrefix); err != nil {
		return uuid.Nil, fmt.Errorf("resolve %s id: %w", kind, err)
	}

	switch len(ids) {
	case 0:
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, idOrPrefix, ErrNotFound)
	case 1:
		return uuid.Parse(ids[0])
	default:
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, idOrPrefix, ErrAmbiguousID)
	}
}

// isIDPrefix reports whether s only holds characters that appear in a
// canonical lowercase UUID.
func isIDPrefix(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') && r != '-' {
			return false
		}
	}
	return true
}
