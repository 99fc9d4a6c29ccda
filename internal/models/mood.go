// ABOUTME: MoodEntry model with the 1-7 mood scale and its emoji mapping.
// ABOUTME: Emoji and sentiment are fixed when the entry is created.
package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinMoodScore = 1
	MaxMoodScore = 7
)

// MoodEmojis maps each mood score to its display emoji.
var MoodEmojis = map[int]string{
	1: "😢",
	2: "😔",
	3: "😐",
	4: "🙂",
	5: "😊",
	6: "😄",
	7: "🤩",
}

// MoodEmoji returns the emoji for a score, or "" when out of range.
func MoodEmoji(score int) string {
	return MoodEmojis[score]
}

// IsValidMoodScore checks the score is within the 1-7 scale.
func IsValidMoodScore(score int) bool {
	return score >= MinMoodScore && score <= MaxMoodScore
}

// MoodEntry is a single mood check-in.
type MoodEntry struct {
	ID             uuid.UUID `json:"id"`
	MoodScore      int       `json:"mood_score"`
	MoodEmoji      string    `json:"mood_emoji"`
	Notes          string    `json:"notes,omitempty"`
	SentimentScore float64   `json:"sentiment_score"`
	LoggedAt       time.Time `json:"logged_at"`
}

// NewMoodEntry creates an entry whose emoji is derived from score.
func NewMoodEntry(score int, notes string) *MoodEntry {
	return &MoodEntry{
		ID:        uuid.New(),
		MoodScore: score,
		MoodEmoji: MoodEmoji(score),
		Notes:     notes,
		LoggedAt:  time.Now(),
	}
}

// WithSentiment records the polarity of the notes.
func (m *MoodEntry) WithSentiment(score float64) *MoodEntry {
	m.SentimentScore = score
	return m
}

// WithLoggedAt sets a custom logged_at timestamp.
func (m *MoodEntry) WithLoggedAt(t time.Time) *MoodEntry {
	m.LoggedAt = t
	return m
}
