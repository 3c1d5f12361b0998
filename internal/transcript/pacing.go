package transcript

import "github.com/Hortyhort/QuietCoach-sub000/internal/profile"

// Pacing tuning constants.
const (
	pacingBaseScore  = 90.0
	pacingEmptyScore = 40

	// Points lost per wpm outside the optimal band, symmetric on both sides.
	pacingFalloffPerWPM = 0.8
	pacingFloorScore    = 5.0

	// Pause buckets by gap duration between consecutive words (seconds).
	shortPauseMin  = 0.3
	mediumPauseMin = 0.6
	longPauseMin   = 1.5

	// A moderate pause mix (some deliberate pauses, not too many dead stops)
	// earns a small bonus inside the optimal band.
	pauseMixBonus   = 5.0
	pauseMixMaxLong = 2
)

// PacingAnalysis holds the rate and pause-mix statistics for one transcript.
type PacingAnalysis struct {
	TotalWords     int
	WordsPerMinute float64
	ShortPauses    int // 0.3-0.6s
	MediumPauses   int // 0.6-1.5s
	LongPauses     int // >= 1.5s
	IsOptimalPace  bool
	Score          int // 0..100
}

// AnalyzePacing scores speaking rate against the profile's optimal band and
// buckets inter-word pauses by duration. The score falls off symmetrically
// outside the band; both very slow (<100 wpm) and very fast (>180 wpm)
// delivery fail IsOptimalPace under the default profile.
func AnalyzePacing(r TranscriptionResult, duration float64, p profile.Profile) PacingAnalysis {
	a := PacingAnalysis{TotalWords: r.WordCount()}
	if a.TotalWords == 0 || duration <= 0 {
		a.Score = pacingEmptyScore
		return a
	}

	a.WordsPerMinute = float64(a.TotalWords) / (duration / 60.0)

	for i := 1; i < len(r.Segments); i++ {
		gap := r.Segments[i].StartTime - r.Segments[i-1].EndTime
		switch {
		case gap >= longPauseMin:
			a.LongPauses++
		case gap >= mediumPauseMin:
			a.MediumPauses++
		case gap >= shortPauseMin:
			a.ShortPauses++
		}
	}

	minWPM := p.Pace.OptimalMinWPM
	maxWPM := p.Pace.OptimalMaxWPM
	a.IsOptimalPace = a.WordsPerMinute >= minWPM && a.WordsPerMinute <= maxWPM

	score := pacingBaseScore
	if a.IsOptimalPace {
		if a.MediumPauses >= 1 && a.LongPauses <= pauseMixMaxLong {
			score += pauseMixBonus
		}
	} else {
		var distance float64
		if a.WordsPerMinute < minWPM {
			distance = minWPM - a.WordsPerMinute
		} else {
			distance = a.WordsPerMinute - maxWPM
		}
		score -= distance * pacingFalloffPerWPM
		if score < pacingFloorScore {
			score = pacingFloorScore
		}
	}

	a.Score = clampScore(score)
	return a
}
