// Package transcript scores a speech transcript along four independent axes:
// clarity, pacing, confidence, and tone. Each analyzer is a pure function of a
// TranscriptionResult (pacing also takes the recording duration) and exposes a
// 0-100 score. Empty transcripts never fail; they produce neutral-low scores.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Segment is one recognized word with timing and recognizer confidence, as
// emitted by the external speech-to-text collaborator.
type Segment struct {
	Word       string  `json:"word"`
	StartTime  float64 `json:"start_time"` // seconds from recording start
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"` // 0..1
}

// TranscriptionResult is the output shape of the speech-to-text collaborator.
type TranscriptionResult struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// WordCount counts whitespace-separated words in the transcript text.
func (r TranscriptionResult) WordCount() int {
	return len(strings.Fields(r.Text))
}

// IsEmpty reports whether the transcript has no non-whitespace content.
func (r TranscriptionResult) IsEmpty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// LoadResult reads a TranscriptionResult from a JSON file written by the
// speech-to-text service.
func LoadResult(path string) (TranscriptionResult, error) {
	var result TranscriptionResult
	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read transcript: %w", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to parse transcript: %w", err)
	}
	return result, nil
}

// words returns the lowercase words of the transcript with surrounding
// punctuation stripped. Shared by the analyzers.
func words(r TranscriptionResult) []string {
	fields := strings.Fields(strings.ToLower(r.Text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, ".,!?;:\"()[]")
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// sentences splits the transcript text on terminal punctuation, keeping the
// terminator attached so callers can distinguish questions. A trailing clause
// without a terminator is returned as its own sentence.
func sentences(text string) []string {
	var out []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				out = append(out, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// countPhrases counts non-overlapping occurrences of each phrase in the
// lowercased text, matching on word boundaries.
func countPhrases(text string, phrases []string) int {
	lower := " " + strings.ToLower(text) + " "
	// Normalize word boundaries so phrase matching is punctuation-insensitive.
	replacer := strings.NewReplacer(".", " ", ",", " ", "!", " ", "?", " ", ";", " ", ":", " ")
	lower = replacer.Replace(lower)
	count := 0
	for _, phrase := range phrases {
		count += strings.Count(lower, " "+phrase+" ")
	}
	return count
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score + 0.5)
}
