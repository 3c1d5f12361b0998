package scoring

import (
	"math"

	"github.com/Hortyhort/QuietCoach-sub000/internal/metrics"
	"github.com/Hortyhort/QuietCoach-sub000/internal/profile"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scenario"
	"github.com/Hortyhort/QuietCoach-sub000/internal/transcript"
)

// Audio-only scoring baselines and penalties. These derive the four dimensions
// purely from the acoustic snapshot when no transcript is available.
const (
	audioClarityBase    = 70.0
	audioPacingBase     = 75.0
	audioConfidenceBase = 70.0
	audioToneBase       = 70.0

	silencePenalty            = 20.0
	offPacePenalty            = 25.0
	goodPauseBonus            = 10.0
	quietPenalty              = 20.0
	inconsistentVolumePenalty = 15.0
	spikePenalty              = 20.0
	steadyToneBonus           = 10.0

	stabilityCreditScale = 15.0
	presenceCreditScale  = 20.0
	presenceCreditMax    = 10.0

	// steadyStability marks delivery consistent enough to corroborate a
	// transcript-derived score.
	steadyStability = 0.8

	// lowSilenceRatio marks a take with little enough dead air to corroborate
	// the clarity score.
	lowSilenceRatio = 0.25
)

// TranscriptAnalyses bundles the four transcript-heuristic results for the
// blended scoring path.
type TranscriptAnalyses struct {
	Clarity    transcript.ClarityAnalysis
	Pacing     transcript.PacingAnalysis
	Confidence transcript.ConfidenceAnalysis
	Tone       transcript.ToneAnalysis
}

// Engine turns raw audio telemetry (and optionally transcript analyses) into
// FeedbackScores. It is stateless and safe for concurrent use; every call is
// a pure function of its inputs and the injected profile.
type Engine struct {
	Profile profile.Profile
}

// NewEngine returns an engine bound to a scoring profile.
func NewEngine(p profile.Profile) Engine {
	return Engine{Profile: p}
}

// GenerateScores analyzes the telemetry and produces the four dimension
// scores, plus the AnalyzedMetrics snapshot for downstream coaching. When
// analyses is nil the audio-only fallback path is used; otherwise each
// dimension starts from its transcript score and is adjusted by at most
// Profile.Tuning.AudioBlendBonus points of acoustic agreement or disagreement.
// Every dimension is clamped to [0,100] on both paths. Recordings shorter
// than the profile minimum still score; flagging them is the caller's policy.
func (e Engine) GenerateScores(m metrics.AudioMetrics, sc scenario.Scenario, analyses *TranscriptAnalyses) (FeedbackScores, metrics.AnalyzedMetrics) {
	analyzed := metrics.Analyze(m, e.Profile)

	if analyses == nil {
		return e.scoreFromAudioOnly(analyzed), analyzed
	}
	return e.scoreBlended(analyzed, analyses), analyzed
}

// scoreFromAudioOnly derives all four dimensions from the acoustic snapshot.
// Used when transcription is unavailable, denied, or failed.
func (e Engine) scoreFromAudioOnly(a metrics.AnalyzedMetrics) FeedbackScores {
	clarity := audioClarityBase
	if a.HasTooMuchSilence() {
		clarity -= silencePenalty
	}
	clarity += a.VolumeStability * stabilityCreditScale

	pacing := audioPacingBase
	if a.IsPacingTooFast() || a.IsPacingTooSlow() {
		pacing -= offPacePenalty
	} else if a.HasGoodPausePattern() {
		pacing += goodPauseBonus
	}

	confidence := audioConfidenceBase
	if a.IsTooQuiet() {
		confidence -= quietPenalty
	} else {
		credit := a.AverageLevel * presenceCreditScale
		if credit > presenceCreditMax {
			credit = presenceCreditMax
		}
		confidence += credit
	}
	if a.HasInconsistentVolume() {
		confidence -= inconsistentVolumePenalty
	}

	tone := audioToneBase
	if a.HasTooManySpikes() {
		tone -= spikePenalty
	} else if a.VolumeStability >= steadyStability {
		tone += steadyToneBonus
	}

	return FeedbackScores{
		Clarity:    clampDimension(clarity),
		Pacing:     clampDimension(pacing),
		Tone:       clampDimension(tone),
		Confidence: clampDimension(confidence),
	}
}

// scoreBlended starts each dimension from its transcript-heuristic score and
// applies a bounded acoustic adjustment: the signal corroborates or tempers
// the text-derived score but never replaces it.
func (e Engine) scoreBlended(a metrics.AnalyzedMetrics, t *TranscriptAnalyses) FeedbackScores {
	bonus := float64(e.Profile.Tuning.AudioBlendBonus)

	return FeedbackScores{
		Clarity:    blend(t.Clarity.Score, claritySignal(a), bonus),
		Pacing:     blend(t.Pacing.Score, pacingSignal(a), bonus),
		Tone:       blend(t.Tone.Score, toneSignal(a), bonus),
		Confidence: blend(t.Confidence.Score, confidenceSignal(a), bonus),
	}
}

// blend applies signal*bonus to a transcript score and clamps. signal is in
// [-1,1], so the adjustment magnitude never exceeds the configured bonus.
func blend(textScore int, signal, bonus float64) int {
	return clampDimension(float64(textScore) + math.Round(signal*bonus))
}

// claritySignal: heavy dead air contradicts a clean-reading transcript; a
// tight take corroborates it.
func claritySignal(a metrics.AnalyzedMetrics) float64 {
	switch {
	case a.HasTooMuchSilence():
		return -1
	case a.SilenceRatio < lowSilenceRatio:
		return 0.5
	default:
		return 0
	}
}

// pacingSignal: segment rate out of band contradicts the wpm score; a good
// pause pattern corroborates it.
func pacingSignal(a metrics.AnalyzedMetrics) float64 {
	switch {
	case a.IsPacingTooFast() || a.IsPacingTooSlow():
		return -1
	case a.HasGoodPausePattern():
		return 1
	default:
		return 0
	}
}

// confidenceSignal: a quiet or wobbly delivery undercuts assertive text;
// steady projection backs it up.
func confidenceSignal(a metrics.AnalyzedMetrics) float64 {
	switch {
	case a.IsTooQuiet() || a.HasInconsistentVolume():
		return -1
	case a.VolumeStability >= steadyStability:
		return 0.5
	default:
		return 0
	}
}

// toneSignal: frequent spikes undercut a warm-reading transcript; steady
// delivery corroborates it.
func toneSignal(a metrics.AnalyzedMetrics) float64 {
	switch {
	case a.HasTooManySpikes():
		return -1
	case a.VolumeStability >= steadyStability:
		return 0.5
	default:
		return 0
	}
}

func clampDimension(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
