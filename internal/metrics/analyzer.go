package metrics

import (
	"math"

	"github.com/Hortyhort/QuietCoach-sub000/internal/profile"
)

// Derived-threshold constants. These interpret AnalyzedMetrics; the raw
// detection thresholds live in profile.Profile.
const (
	// pauseMinWindows is the minimum silent-run length that counts as a
	// rhetorical pause (3 windows = 0.3s). Shorter gaps are coarticulation.
	pauseMinWindows = 3

	// spikeMaxRunWindows bounds how long an elevated excursion may last and
	// still count as a spike. Longer runs are sustained loudness.
	spikeMaxRunWindows = 2

	tooFastSegmentsPerMinute = 40.0
	tooSlowSegmentsPerMinute = 10.0
	maxSpikesPerMinute       = 5.0
	minVolumeStability       = 0.5
	quietAverageLevel        = 0.1
	maxSilenceRatio          = 0.5

	// secondsPerIdealPause: one natural pause per 20 seconds of speaking.
	secondsPerIdealPause = 20.0
)

// AnalyzedMetrics is an immutable snapshot of the statistics derived from one
// AudioMetrics stream. Created once per analysis call; never mutated.
type AnalyzedMetrics struct {
	PauseCount        int     `json:"pause_count"`
	SpikeCount        int     `json:"spike_count"`
	SegmentsPerMinute float64 `json:"segments_per_minute"`
	VolumeStability   float64 `json:"volume_stability"`   // 0..1, 1 = perfectly steady
	AverageLevel      float64 `json:"average_level"`      // mean RMS across all windows
	PeakLevel         float64 `json:"peak_level"`         // max peak across all windows
	SilenceRatio      float64 `json:"silence_ratio"`      // 0..1
	Duration          float64 `json:"duration"`           // seconds
	EffectiveDuration float64 `json:"effective_duration"` // speaking time, <= Duration

	// Profile is the configuration the snapshot was computed with.
	Profile profile.Profile `json:"-"`
}

// Analyze derives pause, spike, stability, silence, and segment statistics
// from one telemetry stream. Pure and deterministic; degenerate inputs (no
// windows, a single window, all-silence) return valid defaults rather than
// failing.
func Analyze(m AudioMetrics, p profile.Profile) AnalyzedMetrics {
	a := AnalyzedMetrics{
		VolumeStability: 1.0,
		SilenceRatio:    1.0,
		Duration:        m.Duration,
		Profile:         p,
	}

	n := m.WindowCount()
	if n == 0 || !m.Valid() {
		return a
	}

	silent := classifySilence(m.RMSWindows, p.Audio.QuietThreshold)

	silentCount := 0
	for _, s := range silent {
		if s {
			silentCount++
		}
	}
	a.SilenceRatio = float64(silentCount) / float64(n)
	a.EffectiveDuration = m.Duration * (1.0 - a.SilenceRatio)

	a.PauseCount = countPauses(silent)
	a.SpikeCount = countSpikes(m.PeakWindows, silent, p)
	a.VolumeStability = volumeStability(m.RMSWindows)

	sum := 0.0
	for _, rms := range m.RMSWindows {
		sum += rms
	}
	a.AverageLevel = sum / float64(n)

	for _, peak := range m.PeakWindows {
		if peak > a.PeakLevel {
			a.PeakLevel = peak
		}
	}

	if m.Duration > 0 {
		a.SegmentsPerMinute = float64(countSegments(silent)) / m.Duration * 60.0
	}

	return a
}

// classifySilence marks windows whose RMS sits below the quiet threshold.
func classifySilence(rms []float64, quietThreshold float64) []bool {
	silent := make([]bool, len(rms))
	for i, level := range rms {
		silent[i] = level < quietThreshold
	}
	return silent
}

// countPauses counts maximal silent runs of at least pauseMinWindows that sit
// between two speech runs. Leading and trailing silence is dead air, not a
// rhetorical pause, so an all-silent stream yields zero.
func countPauses(silent []bool) int {
	pauses := 0
	runStart := -1
	seenSpeech := false

	for i, s := range silent {
		if s {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		// Speech window: close any open silent run.
		if runStart >= 0 && seenSpeech && i-runStart >= pauseMinWindows {
			pauses++
		}
		runStart = -1
		seenSpeech = true
	}
	// A run still open at the end trails off the recording and is not counted.
	return pauses
}

// countSegments counts maximal non-silent runs.
func countSegments(silent []bool) int {
	segments := 0
	inSegment := false
	for _, s := range silent {
		if !s && !inSegment {
			segments++
		}
		inSegment = !s
	}
	return segments
}

// countSpikes counts short, isolated level excursions. A window is a spike
// candidate when its peak exceeds the mean of non-silent neighbors within
// +/-SpikeNeighborhood windows by factor SpikeMargin. Maximal candidate runs
// longer than spikeMaxRunWindows are sustained loudness and count zero, so a
// constant-level stream (even at maximum level) produces no spikes while
// alternating extremes fire on every abrupt excursion.
func countSpikes(peaks []float64, silent []bool, p profile.Profile) int {
	n := len(peaks)
	candidates := make([]bool, n)

	for i := 0; i < n; i++ {
		if silent[i] {
			continue
		}
		baseline := localBaseline(peaks, silent, i, p.Audio.SpikeNeighborhood)
		if baseline > 0 && peaks[i] > baseline*p.Audio.SpikeMargin {
			candidates[i] = true
		}
	}

	// Collapse candidate runs; only short runs count.
	spikes := 0
	runLen := 0
	for i := 0; i <= n; i++ {
		if i < n && candidates[i] {
			runLen++
			continue
		}
		if runLen > 0 && runLen <= spikeMaxRunWindows {
			spikes += runLen
		}
		runLen = 0
	}
	return spikes
}

// localBaseline averages the non-silent neighbor peaks around index i,
// excluding i itself. Returns 0 when no usable neighbor exists.
func localBaseline(peaks []float64, silent []bool, i, neighborhood int) float64 {
	sum := 0.0
	count := 0
	lo := i - neighborhood
	hi := i + neighborhood
	if lo < 0 {
		lo = 0
	}
	if hi > len(peaks)-1 {
		hi = len(peaks) - 1
	}
	for j := lo; j <= hi; j++ {
		if j == i || silent[j] {
			continue
		}
		sum += peaks[j]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// volumeStability is 1 minus the coefficient of variation of the RMS stream,
// clamped to [0,1]. Constant volume gives exactly 1.0; fast oscillation
// between extremes pushes it toward 0.
func volumeStability(rms []float64) float64 {
	n := len(rms)
	if n < 2 {
		return 1.0
	}

	mean := 0.0
	for _, v := range rms {
		mean += v
	}
	mean /= float64(n)
	if mean == 0 {
		return 1.0 // constant zero signal is perfectly steady
	}

	variance := 0.0
	for _, v := range rms {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	cv := math.Sqrt(variance) / mean
	return clamp(1.0-cv, 0.0, 1.0)
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// IsPacingTooFast reports more than 40 speech segments per minute.
func (a AnalyzedMetrics) IsPacingTooFast() bool {
	return a.SegmentsPerMinute > tooFastSegmentsPerMinute
}

// IsPacingTooSlow reports fewer than 10 speech segments per minute.
func (a AnalyzedMetrics) IsPacingTooSlow() bool {
	return a.SegmentsPerMinute < tooSlowSegmentsPerMinute
}

// SpikesPerMinute normalizes the spike count to a per-minute rate.
func (a AnalyzedMetrics) SpikesPerMinute() float64 {
	if a.Duration <= 0 {
		return 0
	}
	return float64(a.SpikeCount) / a.Duration * 60.0
}

// HasTooManySpikes reports a spike rate above 5 per minute.
func (a AnalyzedMetrics) HasTooManySpikes() bool {
	return a.SpikesPerMinute() > maxSpikesPerMinute
}

// HasInconsistentVolume reports stability below 0.5.
func (a AnalyzedMetrics) HasInconsistentVolume() bool {
	return a.VolumeStability < minVolumeStability
}

// IsTooQuiet reports an average level below 0.1.
func (a AnalyzedMetrics) IsTooQuiet() bool {
	return a.AverageLevel < quietAverageLevel
}

// HasTooMuchSilence reports a silence ratio above 0.5.
func (a AnalyzedMetrics) HasTooMuchSilence() bool {
	return a.SilenceRatio > maxSilenceRatio
}

// IdealPauseCount is one natural pause per 20 seconds of recording.
func (a AnalyzedMetrics) IdealPauseCount() int {
	return int(a.Duration / secondsPerIdealPause)
}

// HasGoodPausePattern reports whether the actual pause count sits within
// tolerance of the ideal. The tolerance widens with recording length and
// always allows +/-1 on short takes.
func (a AnalyzedMetrics) HasGoodPausePattern() bool {
	ideal := a.IdealPauseCount()
	tolerance := ideal/2 + 1
	diff := a.PauseCount - ideal
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
