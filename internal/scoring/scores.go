// Package scoring combines analyzed audio metrics and optional transcript
// heuristics into the four rehearsal feedback scores, and tracks score
// progression across attempts at the same scenario.
package scoring

import "fmt"

// Dimension names one scored axis. The declaration order is the fixed
// tie-break order for strength/weakness selection.
type Dimension string

const (
	DimensionClarity    Dimension = "clarity"
	DimensionPacing     Dimension = "pacing"
	DimensionTone       Dimension = "tone"
	DimensionConfidence Dimension = "confidence"
)

// dimensionOrder is the fixed tie-break order.
var dimensionOrder = []Dimension{
	DimensionClarity, DimensionPacing, DimensionTone, DimensionConfidence,
}

// Tier classifies an overall score.
type Tier string

const (
	TierExcellent  Tier = "excellent"  // overall >= 85
	TierGood       Tier = "good"       // 70-84
	TierDeveloping Tier = "developing" // 55-69
	TierNeedsWork  Tier = "needsWork"  // < 55
)

// FeedbackScores holds the four dimension scores for one rehearsal attempt.
// The zero value is the all-zero sentinel used before any recording exists.
type FeedbackScores struct {
	Clarity    int `json:"clarity"`
	Pacing     int `json:"pacing"`
	Tone       int `json:"tone"`
	Confidence int `json:"confidence"`
}

// Empty returns the all-zero sentinel.
func Empty() FeedbackScores {
	return FeedbackScores{}
}

// IsEmpty reports whether s is the all-zero sentinel.
func (s FeedbackScores) IsEmpty() bool {
	return s == FeedbackScores{}
}

// Value returns the score for one dimension.
func (s FeedbackScores) Value(d Dimension) int {
	switch d {
	case DimensionClarity:
		return s.Clarity
	case DimensionPacing:
		return s.Pacing
	case DimensionTone:
		return s.Tone
	default:
		return s.Confidence
	}
}

// Overall is the floored mean of the four dimensions.
func (s FeedbackScores) Overall() int {
	return (s.Clarity + s.Pacing + s.Tone + s.Confidence) / 4
}

// TierFor classifies an overall score.
func TierFor(overall int) Tier {
	switch {
	case overall >= 85:
		return TierExcellent
	case overall >= 70:
		return TierGood
	case overall >= 55:
		return TierDeveloping
	default:
		return TierNeedsWork
	}
}

// Tier classifies the attempt by its overall score.
func (s FeedbackScores) Tier() Tier {
	return TierFor(s.Overall())
}

// PrimaryStrength is the dimension with the highest value, ties resolved by
// the fixed dimension order.
func (s FeedbackScores) PrimaryStrength() Dimension {
	best := dimensionOrder[0]
	for _, d := range dimensionOrder[1:] {
		if s.Value(d) > s.Value(best) {
			best = d
		}
	}
	return best
}

// PrimaryWeakness is the dimension with the lowest value, ties resolved by
// the fixed dimension order.
func (s FeedbackScores) PrimaryWeakness() Dimension {
	worst := dimensionOrder[0]
	for _, d := range dimensionOrder[1:] {
		if s.Value(d) < s.Value(worst) {
			worst = d
		}
	}
	return worst
}

// ScoreDelta is the per-dimension signed difference between two attempts at
// the same scenario. Computed on demand; never stored.
type ScoreDelta struct {
	Clarity    int `json:"clarity"`
	Pacing     int `json:"pacing"`
	Tone       int `json:"tone"`
	Confidence int `json:"confidence"`
}

// Delta diffs s against a previous attempt. Returns nil when previous is nil
// (first attempt at a scenario).
func (s FeedbackScores) Delta(previous *FeedbackScores) *ScoreDelta {
	if previous == nil {
		return nil
	}
	return &ScoreDelta{
		Clarity:    s.Clarity - previous.Clarity,
		Pacing:     s.Pacing - previous.Pacing,
		Tone:       s.Tone - previous.Tone,
		Confidence: s.Confidence - previous.Confidence,
	}
}

// Value returns the delta for one dimension.
func (d ScoreDelta) Value(dim Dimension) int {
	switch dim {
	case DimensionClarity:
		return d.Clarity
	case DimensionPacing:
		return d.Pacing
	case DimensionTone:
		return d.Tone
	default:
		return d.Confidence
	}
}

// HasImprovement reports whether any dimension moved up. Both HasImprovement
// and HasDecline can be true for a mixed-direction delta.
func (d ScoreDelta) HasImprovement() bool {
	return d.Clarity > 0 || d.Pacing > 0 || d.Tone > 0 || d.Confidence > 0
}

// HasDecline reports whether any dimension moved down.
func (d ScoreDelta) HasDecline() bool {
	return d.Clarity < 0 || d.Pacing < 0 || d.Tone < 0 || d.Confidence < 0
}

// FormatDelta renders a single delta as "+N", "-N", or "0".
func FormatDelta(n int) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%+d", n)
}
