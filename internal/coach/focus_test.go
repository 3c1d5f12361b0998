package coach

import (
	"strings"
	"testing"

	"github.com/Hortyhort/QuietCoach-sub000/internal/scenario"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

func TestGenerateTryAgainFocusTargetsClearWeakness(t *testing.T) {
	// Confidence trails the mean of the other three by 20 points.
	scores := scoring.FeedbackScores{Clarity: 80, Pacing: 80, Tone: 80, Confidence: 60}
	focus := GenerateTryAgainFocus(scores, testScenario())

	if !strings.Contains(focus.Reason, "Confidence scored 60") {
		t.Errorf("focus should target confidence, got %+v", focus)
	}
}

func TestGenerateTryAgainFocusEachDimension(t *testing.T) {
	tests := []struct {
		name   string
		scores scoring.FeedbackScores
		want   string
	}{
		{"clarity", scoring.FeedbackScores{Clarity: 50, Pacing: 80, Tone: 80, Confidence: 80}, "Clarity scored 50"},
		{"pacing", scoring.FeedbackScores{Clarity: 80, Pacing: 50, Tone: 80, Confidence: 80}, "Pacing scored 50"},
		{"tone", scoring.FeedbackScores{Clarity: 80, Pacing: 80, Tone: 50, Confidence: 80}, "Tone scored 50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			focus := GenerateTryAgainFocus(tt.scores, testScenario())
			if !strings.Contains(focus.Reason, tt.want) {
				t.Errorf("Reason = %q, want mention of %q", focus.Reason, tt.want)
			}
		})
	}
}

func TestGenerateTryAgainFocusBalancedFallsBackToCategory(t *testing.T) {
	// Weakest trails the mean of the others by less than the gap.
	scores := scoring.FeedbackScores{Clarity: 78, Pacing: 75, Tone: 80, Confidence: 74}

	for _, category := range scenario.Categories() {
		sc := scenario.Scenario{ID: "x", Title: "X", Category: category}
		focus := GenerateTryAgainFocus(scores, sc)
		if focus.Goal == "" || focus.Reason == "" {
			t.Errorf("category %s produced an empty focus: %+v", category, focus)
		}
		if strings.Contains(focus.Reason, "scored") {
			t.Errorf("balanced scores should not target a dimension: %+v", focus)
		}
	}
}

func TestGenerateTryAgainFocusGapBoundary(t *testing.T) {
	// Others mean 80, weakest 72: gap exactly 8 targets the weakness.
	atGap := scoring.FeedbackScores{Clarity: 80, Pacing: 80, Tone: 80, Confidence: 72}
	if focus := GenerateTryAgainFocus(atGap, testScenario()); !strings.Contains(focus.Reason, "Confidence scored 72") {
		t.Errorf("gap of exactly %d should target the weakness: %+v", weaknessGap, focus)
	}

	// Gap of 7 falls back to the category focus.
	underGap := scoring.FeedbackScores{Clarity: 80, Pacing: 80, Tone: 80, Confidence: 73}
	if focus := GenerateTryAgainFocus(underGap, testScenario()); strings.Contains(focus.Reason, "scored") {
		t.Errorf("gap under %d should not target a dimension: %+v", weaknessGap, focus)
	}
}

func TestGenerateTryAgainFocusAlwaysPopulated(t *testing.T) {
	tests := []scoring.FeedbackScores{
		{},
		{Clarity: 100, Pacing: 100, Tone: 100, Confidence: 100},
		{Clarity: 10, Pacing: 90, Tone: 50, Confidence: 70},
	}
	for _, scores := range tests {
		focus := GenerateTryAgainFocus(scores, testScenario())
		if focus.Goal == "" || focus.Reason == "" {
			t.Errorf("focus must always be populated, got %+v for %+v", focus, scores)
		}
	}
}
