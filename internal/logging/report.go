// Package logging handles generation of feedback reports for scored rehearsal attempts

package logging

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Hortyhort/QuietCoach-sub000/internal/coach"
	"github.com/Hortyhort/QuietCoach-sub000/internal/metrics"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// ============================================================================
// Score and Delivery Interpretation Functions
// ============================================================================
// These functions interpret scores and acoustic measurements and return
// human-readable descriptions for the feedback report.

// interpretTier describes an overall score band.
func interpretTier(tier scoring.Tier) string {
	switch tier {
	case scoring.TierExcellent:
		return "excellent, ready for the real thing"
	case scoring.TierGood:
		return "good, a few rough edges"
	case scoring.TierDeveloping:
		return "developing, keep practising"
	default:
		return "needs work, focus on one thing at a time"
	}
}

// interpretStability describes volume consistency (1 - coefficient of
// variation, 0-1 scale).
func interpretStability(stability float64) string {
	switch {
	case stability >= 0.9:
		return "rock steady"
	case stability >= 0.8:
		return "consistent delivery"
	case stability >= 0.5:
		return "some wandering"
	default:
		return "erratic, hard to follow"
	}
}

// interpretSilence describes the silent fraction of the recording.
func interpretSilence(ratio float64) string {
	switch {
	case ratio < 0.1:
		return "dense, little breathing room"
	case ratio < 0.3:
		return "natural balance of speech and pauses"
	case ratio <= 0.5:
		return "spacious, deliberate pacing"
	default:
		return "mostly silence"
	}
}

// interpretPace describes the speech-segment rate in segments per minute.
func interpretPace(segmentsPerMinute float64) string {
	switch {
	case segmentsPerMinute > 40:
		return "rushed, breathless bursts"
	case segmentsPerMinute >= 25:
		return "brisk but controlled"
	case segmentsPerMinute >= 10:
		return "measured, conversational"
	default:
		return "halting, long gaps"
	}
}

// interpretSpikes describes the volume spike rate.
func interpretSpikes(spikesPerMinute float64) string {
	switch {
	case spikesPerMinute == 0:
		return "level throughout"
	case spikesPerMinute <= 5:
		return "occasional emphasis"
	default:
		return "frequent sudden jumps"
	}
}

// writeSection writes a section header with title and dashed underline.
// The underline length matches the title length.
func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

// ReportData contains all the information needed to generate a feedback report
type ReportData struct {
	InputPath      string
	ScenarioTitle  string
	Category       string
	RecordedAt     time.Time
	Analyzed       metrics.AnalyzedMetrics
	Scores         scoring.FeedbackScores
	Previous       *scoring.FeedbackScores // nil on first attempt at a scenario
	Notes          []coach.CoachNote
	Focus          coach.TryAgainFocus
	UsedTranscript bool
	ShortRecording bool
}

// WriteReport creates a feedback report and saves it alongside the input
// file. The report filename will be <input>-feedback.txt
//
// Report structure:
// 1. Header - scenario, file info and timestamp
// 2. Scores - comparison table against the previous attempt
// 3. Delivery Measurements - acoustic metrics with interpretations
// 4. Coach Notes - prioritised advice
// 5. Next Attempt - the one thing to work on
func WriteReport(data ReportData) (string, error) {
	reportPath := strings.TrimSuffix(data.InputPath, filepath.Ext(data.InputPath)) + "-feedback.txt"

	f, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeScoresTable(f, data)
	writeDeliveryTable(f, data.Analyzed)
	writeCoachNotes(f, data.Notes)
	writeFocus(f, data.Focus)

	return reportPath, nil
}

// writeReportHeader outputs the report header with scenario and file info.
func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, "QuietCoach Feedback Report")
	fmt.Fprintln(f, "==========================")
	fmt.Fprintf(f, "Scenario: %s (%s)\n", data.ScenarioTitle, data.Category)
	fmt.Fprintf(f, "File: %s\n", filepath.Base(data.InputPath))
	fmt.Fprintf(f, "Recorded: %s\n", data.RecordedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(f, "Duration: %s\n", formatDuration(time.Duration(data.Analyzed.Duration*float64(time.Second))))
	if data.UsedTranscript {
		fmt.Fprintln(f, "Analysis: audio + transcript")
	} else {
		fmt.Fprintln(f, "Analysis: audio only")
	}
	if data.ShortRecording {
		fmt.Fprintln(f, "Note: recording is shorter than the recommended minimum, so scores may be less reliable")
	}
	fmt.Fprintln(f, "")
}

// writeScoresTable outputs the four dimension scores plus overall, compared
// against the previous attempt at the same scenario when one exists.
func writeScoresTable(f *os.File, data ReportData) {
	writeSection(f, "Scores")

	table := NewComparisonTable()

	prev := func(get func(scoring.FeedbackScores) int) float64 {
		if data.Previous == nil {
			return math.NaN()
		}
		return float64(get(*data.Previous))
	}

	table.AddScoreRow("Clarity", float64(data.Scores.Clarity),
		prev(func(s scoring.FeedbackScores) int { return s.Clarity }), "")
	table.AddScoreRow("Pacing", float64(data.Scores.Pacing),
		prev(func(s scoring.FeedbackScores) int { return s.Pacing }), "")
	table.AddScoreRow("Tone", float64(data.Scores.Tone),
		prev(func(s scoring.FeedbackScores) int { return s.Tone }), "")
	table.AddScoreRow("Confidence", float64(data.Scores.Confidence),
		prev(func(s scoring.FeedbackScores) int { return s.Confidence }), "")
	table.AddScoreRow("Overall", float64(data.Scores.Overall()),
		prev(func(s scoring.FeedbackScores) int { return s.Overall() }),
		interpretTier(data.Scores.Tier()))

	fmt.Fprint(f, table.String())
	fmt.Fprintln(f, "")
}

// writeDeliveryTable outputs the acoustic measurements with interpretations.
func writeDeliveryTable(f *os.File, a metrics.AnalyzedMetrics) {
	writeSection(f, "Delivery Measurements")

	table := &MetricTable{
		Headers: []string{"Value"},
	}

	table.AddRow("Speech rate",
		[]string{formatMetric(a.SegmentsPerMinute, 1)},
		"segments/min", interpretPace(a.SegmentsPerMinute))
	table.AddRow("Volume stability",
		[]string{formatMetric(a.VolumeStability, 2)},
		"", interpretStability(a.VolumeStability))
	table.AddRow("Volume spikes",
		[]string{formatMetric(a.SpikesPerMinute(), 1)},
		"per minute", interpretSpikes(a.SpikesPerMinute()))
	table.AddRow("Silence",
		[]string{formatMetric(a.SilenceRatio*100, 0)},
		"%", interpretSilence(a.SilenceRatio))
	table.AddRow("Pauses",
		[]string{fmt.Sprintf("%d", a.PauseCount)},
		"", fmt.Sprintf("about %d would suit this length", a.IdealPauseCount()))
	table.AddRow("Average level",
		[]string{formatMetric(a.AverageLevel, 3)},
		"", "")
	table.AddRow("Peak level",
		[]string{formatMetric(a.PeakLevel, 3)},
		"", "")

	fmt.Fprint(f, table.String())
	fmt.Fprintln(f, "")
}

// writeCoachNotes outputs the prioritised coach notes, wrapped for the
// report column width.
func writeCoachNotes(f *os.File, notes []coach.CoachNote) {
	writeSection(f, "Coach Notes")

	if len(notes) == 0 {
		fmt.Fprintln(f, "No notes for this attempt")
		fmt.Fprintln(f, "")
		return
	}

	for i, note := range notes {
		fmt.Fprintf(f, "%d. [%s] %s\n", i+1, note.Priority, note.Title)
		fmt.Fprintf(f, "   %s\n", wrapText(note.Body, 72, "   "))
	}
	fmt.Fprintln(f, "")
}

// writeFocus outputs the single try-again focus.
func writeFocus(f *os.File, focus coach.TryAgainFocus) {
	writeSection(f, "Next Attempt")

	fmt.Fprintf(f, "Focus: %s\n", focus.Goal)
	fmt.Fprintf(f, "   %s\n", wrapText(focus.Reason, 72, "   "))
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
