package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// renderScoringView renders the main scoring view
func renderScoringView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// File queue
	b.WriteString(renderFileQueue(m))
	b.WriteString("\n")

	// Overall progress
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2E5EAA")).
		Render("QuietCoach 🎤 - Rehearsal Feedback")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Scoring %d recording(s)", m.TotalFiles))

	return title + "\n" + subtitle
}

// renderFileQueue renders the list of files with their status
func renderFileQueue(m Model) string {
	var b strings.Builder

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFileEntry renders a single file entry in the queue
func renderFileEntry(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		// ✓ scored file with summary
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		return fmt.Sprintf(" %s %s\n   %s", icon, fileName, renderScoreLine(file.Scores, file.Delta))

	case StatusScoring:
		// ⚙ active file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n   Scoring...", icon, fileName)

	case StatusError:
		// ✗ failed file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %v", icon, fileName, file.Error)

	default:
		// ○ queued file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

// renderScoreLine renders one attempt's scores, with per-dimension movement
// when a previous attempt exists.
func renderScoreLine(s scoring.FeedbackScores, d *scoring.ScoreDelta) string {
	if d == nil {
		return fmt.Sprintf("Clarity %d | Pacing %d | Tone %d | Confidence %d | Overall %d (%s)",
			s.Clarity, s.Pacing, s.Tone, s.Confidence, s.Overall(), s.Tier())
	}
	return fmt.Sprintf("Clarity %d (%s) | Pacing %d (%s) | Tone %d (%s) | Confidence %d (%s) | Overall %d (%s)",
		s.Clarity, scoring.FormatDelta(d.Clarity),
		s.Pacing, scoring.FormatDelta(d.Pacing),
		s.Tone, scoring.FormatDelta(d.Tone),
		s.Confidence, scoring.FormatDelta(d.Confidence),
		s.Overall(), s.Tier())
}

// renderOverallProgress renders the overall progress footer
func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
		currentFile := m.CurrentIndex + 1 // 1-indexed for display
		content = fmt.Sprintf("Scoring file %d of %d (%d complete)",
			currentFile, m.TotalFiles, m.CompletedFiles)
	} else {
		content = fmt.Sprintf("Overall Progress: %d/%d complete", m.CompletedFiles, m.TotalFiles)
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final completion summary
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Scoring Complete!")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, file := range m.Files {
		switch file.Status {
		case StatusComplete:
			b.WriteString(renderCompletedFile(file))
			b.WriteString("\n")
		case StatusError:
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
			b.WriteString(fmt.Sprintf(" %s %s: %v\n", icon, filepath.Base(file.InputPath), file.Error))
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	if m.FailedFiles > 0 {
		b.WriteString(fmt.Sprintf("%d scored, %d failed\n", m.CompletedFiles, m.FailedFiles))
	} else {
		b.WriteString("All recordings scored and saved to your session history ✓\n")
	}

	return b.String()
}

// renderCompletedFile renders a summary for a scored file
func renderCompletedFile(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)
	icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")

	line := fmt.Sprintf(" %s %s\n   %s", icon, fileName, renderScoreLine(file.Scores, file.Delta))
	if file.ReportPath != "" {
		line += fmt.Sprintf("\n   Report: %s", filepath.Base(file.ReportPath))
	}
	return line
}
