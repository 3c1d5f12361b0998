// Package session persists scored rehearsal attempts and answers history
// queries: past attempts, the previous attempt at a scenario, and the score
// movement between attempts.
package session

import (
	"time"

	"github.com/Hortyhort/QuietCoach-sub000/internal/coach"
	"github.com/Hortyhort/QuietCoach-sub000/internal/metrics"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scenario"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// Record is one completed, scored rehearsal attempt. Deltas are never stored;
// they are recomputed from history on demand. Source and TranscriptPath point
// back at the inputs so an attempt can be re-scored after a profile change.
type Record struct {
	ID             string                  `json:"id"`
	ScenarioID     string                  `json:"scenarioId"`
	Category       scenario.Category       `json:"category"`
	RecordedAt     time.Time               `json:"recordedAt"`
	Source         string                  `json:"source,omitempty"`
	TranscriptPath string                  `json:"transcriptPath,omitempty"`
	Metrics        metrics.AnalyzedMetrics `json:"metrics"`
	Scores         scoring.FeedbackScores  `json:"scores"`
	Notes          []coach.CoachNote       `json:"notes"`
	Focus          coach.TryAgainFocus     `json:"focus"`
}
