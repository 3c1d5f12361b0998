package coach

import (
	"fmt"

	"github.com/Hortyhort/QuietCoach-sub000/internal/scenario"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// weaknessGap is how far the lowest dimension must trail the mean of the
// other three before the focus targets it specifically.
const weaknessGap = 8

// TryAgainFocus is the single suggestion shown when the user is offered a
// retry of the same scenario.
type TryAgainFocus struct {
	Goal   string `json:"goal"`
	Reason string `json:"reason"`
}

// GenerateTryAgainFocus picks one thing to work on next attempt. When the
// weakest dimension trails the mean of the other three by at least
// weaknessGap points it becomes the focus; otherwise a category-flavored
// general goal is returned. The result is always populated.
func GenerateTryAgainFocus(scores scoring.FeedbackScores, sc scenario.Scenario) TryAgainFocus {
	weakest := scores.PrimaryWeakness()
	weakestValue := scores.Value(weakest)
	othersMean := (scores.Clarity + scores.Pacing + scores.Tone + scores.Confidence - weakestValue) / 3

	if othersMean-weakestValue >= weaknessGap {
		return dimensionFocus(weakest, weakestValue)
	}
	return categoryFocus(sc.Category)
}

// dimensionFocus targets the dimension that is clearly dragging the attempt
// down.
func dimensionFocus(d scoring.Dimension, value int) TryAgainFocus {
	switch d {
	case scoring.DimensionClarity:
		return TryAgainFocus{
			Goal:   "Tighten up your wording",
			Reason: fmt.Sprintf("Clarity scored %d, well below your other dimensions. Cut the filler words and finish each sentence before starting the next.", value),
		}
	case scoring.DimensionPacing:
		return TryAgainFocus{
			Goal:   "Find a steadier rhythm",
			Reason: fmt.Sprintf("Pacing scored %d, well below your other dimensions. Aim for a conversational tempo with a deliberate pause after each main point.", value),
		}
	case scoring.DimensionTone:
		return TryAgainFocus{
			Goal:   "Warm up your tone",
			Reason: fmt.Sprintf("Tone scored %d, well below your other dimensions. Swap neutral phrasing for words that show how you actually feel about the topic.", value),
		}
	default:
		return TryAgainFocus{
			Goal:   "Commit to your statements",
			Reason: fmt.Sprintf("Confidence scored %d, well below your other dimensions. Drop the hedges and apologies and say your main point as a plain declarative sentence.", value),
		}
	}
}

// categoryFocus is the balanced-scores fallback, flavored by scenario type.
func categoryFocus(c scenario.Category) TryAgainFocus {
	switch c {
	case scenario.CategoryInterview:
		return TryAgainFocus{
			Goal:   "Lead with the result",
			Reason: "Your dimensions are balanced, so polish the shape of your answers: state the outcome first, then back it up with the story.",
		}
	case scenario.CategoryPresentation:
		return TryAgainFocus{
			Goal:   "Land the opening",
			Reason: "Your dimensions are balanced, so work on your first thirty seconds: open with your core message instead of building up to it.",
		}
	case scenario.CategorySmallTalk:
		return TryAgainFocus{
			Goal:   "Ask one more question",
			Reason: "Your dimensions are balanced, so focus on keeping the exchange going: follow each answer with a genuine follow-up question.",
		}
	case scenario.CategoryNegotiation:
		return TryAgainFocus{
			Goal:   "Hold after the ask",
			Reason: "Your dimensions are balanced, so practise the silence: make your ask, then stop talking and let the other side respond first.",
		}
	case scenario.CategoryConflict:
		return TryAgainFocus{
			Goal:   "Acknowledge before answering",
			Reason: "Your dimensions are balanced, so work on de-escalation: restate the other person's concern in your own words before giving your side.",
		}
	default:
		return TryAgainFocus{
			Goal:   "Sharpen one key moment",
			Reason: "Your dimensions are balanced, so pick the single most important sentence of this scenario and rehearse delivering it three different ways.",
		}
	}
}
