// ABOUTME: Mood entry operations for SQLite storage.
// ABOUTME: Entries keep the emoji and sentiment computed when they were recorded.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/productivity/internal/models"
	"github.com/jmoiron/sqlx"
)

type moodRow struct {
	ID             string  `db:"id"`
	MoodScore      int     `db:"mood_score"`
	MoodEmoji      string  `db:"mood_emoji"`
	Notes          string  `db:"notes"`
	SentimentScore float64 `db:"sentiment_score"`
	LoggedAt       string  `db:"logged_at"`
}

func (r moodRow) toModel() (*models.MoodEntry, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse mood id: %w", err)
	}
	loggedAt, err := parseTimestamp(r.LoggedAt)
	if err != nil {
		return nil, err
	}
	return &models.MoodEntry{
		ID:             id,
		MoodScore:      r.MoodScore,
		MoodEmoji:      r.MoodEmoji,
		Notes:          r.Notes,
		SentimentScore: r.SentimentScore,
		LoggedAt:       loggedAt,
	}, nil
}

// CreateMoodEntry inserts a mood entry as given and returns its id.
func (d *DB) CreateMoodEntry(ctx context.Context, m *models.MoodEntry) (uuid.UUID, error) {
	return d.insertMoodEntry(ctx, d.db, m)
}

func (d *DB) insertMoodEntry(ctx context.Context, ex sqlx.ExecerContext, m *models.MoodEntry) (uuid.UUID, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.LoggedAt.IsZero() {
		m.LoggedAt = d.now()
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO mood_entries (id, mood_score, mood_emoji, notes, sentiment_score, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID.String(), m.MoodScore, m.MoodEmoji, m.Notes, m.SentimentScore, formatTimestamp(m.LoggedAt),
	)
	if err != nil {
		d.log.Error().Err(err).Str("mood", m.ID.String()).Msg("insert mood entry failed")
		return uuid.Nil, fmt.Errorf("insert mood entry: %w", err)
	}
	d.log.Debug().Str("mood", m.ID.String()).Int("score", m.MoodScore).Msg("mood entry created")
	return m.ID, nil
}

// ListMoodEntries returns mood entries newest first. A limit of 0 or
// less returns every entry.
func (d *DB) ListMoodEntries(ctx context.Context, limit int) ([]*models.MoodEntry, error) {
	query := `
		SELECT id, mood_score, mood_emoji, notes, sentiment_score, logged_at
		FROM mood_entries ORDER BY logged_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []moodRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}

	entries := make([]*models.MoodEntry, 0, len(rows))
	for _, r := range rows {
		m, err := r.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	return entries, nil
}
