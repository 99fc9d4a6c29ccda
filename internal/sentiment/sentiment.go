// ABOUTME: Text polarity scoring for mood notes.
// ABOUTME: Wraps the VADER lexicon analyzer and exposes its compound score in [-1, 1].
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer rates the polarity of free text in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// Vader scores text with the VADER valence lexicon, including its negation,
// intensifier, capitalization and punctuation rules.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader builds a scorer. Loading the lexicon is the expensive part, so
// callers keep one Vader per process.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text. Blank text scores 0.
func (v *Vader) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

// Label names the polarity of a score for display.
func Label(score float64) string {
	switch {
	case score > 0:
		return "positive"
	case score < 0:
		return "reflective"
	default:
		return "neutral"
	}
}
