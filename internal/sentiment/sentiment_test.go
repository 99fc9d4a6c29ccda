// ABOUTME: Tests for VADER sentiment scoring.
// ABOUTME: Covers polarity, negation, intensifiers, bounds, and labels.
package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyAndNeutral(t *testing.T) {
	v := NewVader()

	assert.Equal(t, 0.0, v.Score(""))
	assert.Equal(t, 0.0, v.Score("   "))
	assert.Equal(t, 0.0, v.Score("The meeting is at noon on Tuesday."))
}

func TestScorePolarity(t *testing.T) {
	v := NewVader()

	tests := []struct {
		text     string
		positive bool
	}{
		{"Had a great day", true},
		{"Feeling happy and productive!", true},
		{"Terrible night, awful sleep", false},
		{"This is not good", false},
		{"I don't hate it", true},
	}

	for _, tt := range tests {
		got := v.Score(tt.text)
		if tt.positive {
			assert.Greater(t, got, 0.0, "Score(%q)", tt.text)
		} else {
			assert.Less(t, got, 0.0, "Score(%q)", tt.text)
		}
	}
}

func TestScoreIntensifiers(t *testing.T) {
	v := NewVader()

	assert.Greater(t, v.Score("very good"), v.Score("good"))
	assert.Less(t, v.Score("slightly good"), v.Score("good"))
	assert.Less(t, v.Score("really bad"), v.Score("bad"))
}

func TestScoreBounded(t *testing.T) {
	v := NewVader()

	pos := v.Score(strings.Repeat("amazing wonderful best ", 50))
	neg := v.Score(strings.Repeat("worst awful hated ", 50))

	assert.LessOrEqual(t, pos, 1.0)
	assert.Greater(t, pos, 0.99)
	assert.GreaterOrEqual(t, neg, -1.0)
	assert.Less(t, neg, -0.99)
}

func TestScorerInterface(t *testing.T) {
	var s Scorer = NewVader()
	assert.Greater(t, s.Score("love it"), 0.0)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "positive", Label(0.4))
	assert.Equal(t, "neutral", Label(0))
	assert.Equal(t, "reflective", Label(-0.1))
}
