package ui

import (
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// FileStartMsg indicates scoring has started for a file
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished scoring
type FileCompleteMsg struct {
	FileIndex  int
	Scores     scoring.FeedbackScores
	Delta      *scoring.ScoreDelta // nil on the first attempt at a scenario
	ReportPath string
	Error      error
}

// AllCompleteMsg indicates all files have been scored
type AllCompleteMsg struct{}
