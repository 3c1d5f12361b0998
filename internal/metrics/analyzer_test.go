package metrics

import (
	"math"
	"testing"

	"github.com/Hortyhort/QuietCoach-sub000/internal/profile"
)

// windows builds an AudioMetrics stream where each window has the given RMS
// level (peak matches RMS unless overridden by the caller).
func windows(levels ...float64) AudioMetrics {
	m := AudioMetrics{
		RMSWindows:  make([]float64, len(levels)),
		PeakWindows: make([]float64, len(levels)),
		Duration:    float64(len(levels)) / float64(WindowsPerSecond),
	}
	copy(m.RMSWindows, levels)
	copy(m.PeakWindows, levels)
	return m
}

func constWindows(n int, level float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = level
	}
	return out
}

func TestAnalyzeConstantInput(t *testing.T) {
	// 60 seconds of perfectly steady speech.
	m := windows(constWindows(600, 0.5)...)
	a := Analyze(m, profile.Default())

	if a.SpikeCount != 0 {
		t.Errorf("constant input should produce no spikes, got %d", a.SpikeCount)
	}
	if math.Abs(a.VolumeStability-1.0) > 0.01 {
		t.Errorf("constant input stability = %v, want 1.0", a.VolumeStability)
	}
	if a.SilenceRatio != 0 {
		t.Errorf("SilenceRatio = %v, want 0", a.SilenceRatio)
	}
	if a.AverageLevel != 0.5 {
		t.Errorf("AverageLevel = %v, want 0.5", a.AverageLevel)
	}
	if a.PeakLevel != 0.5 {
		t.Errorf("PeakLevel = %v, want 0.5", a.PeakLevel)
	}
}

func TestAnalyzeDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		m    AudioMetrics
	}{
		{"empty", AudioMetrics{}},
		{"mismatched_lengths", AudioMetrics{RMSWindows: []float64{0.5, 0.5}, PeakWindows: []float64{0.5}, Duration: 0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.m, profile.Default())
			if a.VolumeStability != 1.0 {
				t.Errorf("VolumeStability = %v, want 1.0 default", a.VolumeStability)
			}
			if a.SilenceRatio != 1.0 {
				t.Errorf("SilenceRatio = %v, want 1.0 default", a.SilenceRatio)
			}
			if a.PauseCount != 0 || a.SpikeCount != 0 {
				t.Errorf("degenerate input should produce no events, got pauses=%d spikes=%d", a.PauseCount, a.SpikeCount)
			}
		})
	}
}

func TestAnalyzeSingleWindow(t *testing.T) {
	a := Analyze(windows(0.5), profile.Default())
	if a.VolumeStability != 1.0 {
		t.Errorf("VolumeStability = %v, want 1.0", a.VolumeStability)
	}
	if a.SilenceRatio != 0 {
		t.Errorf("SilenceRatio = %v, want 0", a.SilenceRatio)
	}
}

func TestAnalyzeAllSilent(t *testing.T) {
	a := Analyze(windows(constWindows(100, 0.0)...), profile.Default())
	if a.SilenceRatio != 1.0 {
		t.Errorf("SilenceRatio = %v, want 1.0", a.SilenceRatio)
	}
	if a.PauseCount != 0 {
		t.Errorf("all-silent stream has no interior pauses, got %d", a.PauseCount)
	}
	if a.VolumeStability != 1.0 {
		t.Errorf("constant zero signal stability = %v, want 1.0", a.VolumeStability)
	}
	if a.EffectiveDuration != 0 {
		t.Errorf("EffectiveDuration = %v, want 0", a.EffectiveDuration)
	}
}

func TestAnalyzeHalfSilent(t *testing.T) {
	levels := append(constWindows(300, 0.5), constWindows(300, 0.0)...)
	a := Analyze(windows(levels...), profile.Default())

	if math.Abs(a.SilenceRatio-0.5) > 0.01 {
		t.Errorf("SilenceRatio = %v, want 0.5", a.SilenceRatio)
	}
	if math.Abs(a.EffectiveDuration-30.0) > 0.5 {
		t.Errorf("EffectiveDuration = %v, want ~30s", a.EffectiveDuration)
	}
}

func TestCountPauses(t *testing.T) {
	tests := []struct {
		name   string
		silent []bool
		want   int
	}{
		{
			name:   "interior_run_of_three",
			silent: append(append(constBools(10, false), constBools(3, true)...), constBools(10, false)...),
			want:   1,
		},
		{
			name:   "interior_run_of_two_too_short",
			silent: append(append(constBools(10, false), constBools(2, true)...), constBools(10, false)...),
			want:   0,
		},
		{
			name:   "leading_and_trailing_silence_ignored",
			silent: append(append(constBools(5, true), constBools(10, false)...), constBools(5, true)...),
			want:   0,
		},
		{
			name: "two_pauses",
			silent: joinBools(
				constBools(10, false), constBools(4, true),
				constBools(10, false), constBools(3, true),
				constBools(10, false)),
			want: 2,
		},
		{
			name:   "all_silent",
			silent: constBools(20, true),
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countPauses(tt.silent); got != tt.want {
				t.Errorf("countPauses() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountSegments(t *testing.T) {
	silent := joinBools(
		constBools(5, false), constBools(3, true),
		constBools(5, false), constBools(3, true),
		constBools(5, false))
	if got := countSegments(silent); got != 3 {
		t.Errorf("countSegments() = %d, want 3", got)
	}
}

func TestSegmentsPerMinute(t *testing.T) {
	// 60s: 20 segments of 1.5s speech separated by 1.5s silence.
	var levels []float64
	for i := 0; i < 20; i++ {
		levels = append(levels, constWindows(15, 0.5)...)
		levels = append(levels, constWindows(15, 0.0)...)
	}
	a := Analyze(windows(levels...), profile.Default())
	if math.Abs(a.SegmentsPerMinute-20.0) > 0.5 {
		t.Errorf("SegmentsPerMinute = %v, want ~20", a.SegmentsPerMinute)
	}
}

func TestCountSpikesAlternatingExtremes(t *testing.T) {
	// Constant speech RMS so nothing reads as silent, with peaks whipping
	// between 0.9 and 0.1. Every high window is an isolated excursion.
	m := AudioMetrics{
		RMSWindows:  constWindows(60, 0.5),
		PeakWindows: make([]float64, 60),
		Duration:    6.0,
	}
	for i := range m.PeakWindows {
		if i%2 == 0 {
			m.PeakWindows[i] = 0.9
		} else {
			m.PeakWindows[i] = 0.1
		}
	}

	a := Analyze(m, profile.Default())
	if a.SpikeCount == 0 {
		t.Fatal("alternating extremes should register spikes")
	}
	if !a.HasTooManySpikes() {
		t.Errorf("spike rate %v/min should exceed the allowance", a.SpikesPerMinute())
	}
}

func TestCountSpikesSustainedLoudness(t *testing.T) {
	// A 1.5s loud stretch in otherwise moderate speech is emphasis, not a
	// spike run.
	m := AudioMetrics{
		RMSWindows:  constWindows(100, 0.5),
		PeakWindows: constWindows(100, 0.4),
		Duration:    10.0,
	}
	for i := 40; i < 55; i++ {
		m.PeakWindows[i] = 0.9
	}

	a := Analyze(m, profile.Default())
	if a.SpikeCount != 0 {
		t.Errorf("sustained loudness should count zero spikes, got %d", a.SpikeCount)
	}
}

func TestVolumeStabilityOscillation(t *testing.T) {
	levels := make([]float64, 100)
	for i := range levels {
		if i%2 == 0 {
			levels[i] = 0.9
		} else {
			levels[i] = 0.1
		}
	}
	a := Analyze(windows(levels...), profile.Default())
	if a.VolumeStability >= minVolumeStability {
		t.Errorf("oscillating volume stability = %v, want < %v", a.VolumeStability, minVolumeStability)
	}
	if !a.HasInconsistentVolume() {
		t.Error("oscillating volume should read as inconsistent")
	}
}

func TestDerivedThresholds(t *testing.T) {
	tests := []struct {
		name  string
		a     AnalyzedMetrics
		check func(AnalyzedMetrics) bool
		want  bool
	}{
		{"too_fast_above", AnalyzedMetrics{SegmentsPerMinute: 41}, AnalyzedMetrics.IsPacingTooFast, true},
		{"too_fast_boundary", AnalyzedMetrics{SegmentsPerMinute: 40}, AnalyzedMetrics.IsPacingTooFast, false},
		{"too_slow_below", AnalyzedMetrics{SegmentsPerMinute: 9}, AnalyzedMetrics.IsPacingTooSlow, true},
		{"too_slow_boundary", AnalyzedMetrics{SegmentsPerMinute: 10}, AnalyzedMetrics.IsPacingTooSlow, false},
		{"quiet_below", AnalyzedMetrics{AverageLevel: 0.09}, AnalyzedMetrics.IsTooQuiet, true},
		{"quiet_boundary", AnalyzedMetrics{AverageLevel: 0.1}, AnalyzedMetrics.IsTooQuiet, false},
		{"silence_above", AnalyzedMetrics{SilenceRatio: 0.51}, AnalyzedMetrics.HasTooMuchSilence, true},
		{"silence_boundary", AnalyzedMetrics{SilenceRatio: 0.5}, AnalyzedMetrics.HasTooMuchSilence, false},
		{"spikes_above", AnalyzedMetrics{SpikeCount: 6, Duration: 60}, AnalyzedMetrics.HasTooManySpikes, true},
		{"spikes_boundary", AnalyzedMetrics{SpikeCount: 5, Duration: 60}, AnalyzedMetrics.HasTooManySpikes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.a); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPausePattern(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		pauses   int
		want     bool
	}{
		{"sixty_seconds_ideal", 60, 3, true},         // ideal 3, tolerance 2
		{"sixty_seconds_low_edge", 60, 1, true},      // |1-3| = 2 <= 2
		{"sixty_seconds_none", 60, 0, false},         // |0-3| = 3 > 2
		{"sixty_seconds_too_many", 60, 6, false},     // |6-3| = 3 > 2
		{"short_take_zero_ideal", 10, 1, true},       // ideal 0, tolerance 1
		{"short_take_two_pauses", 10, 2, false},      // |2-0| = 2 > 1
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AnalyzedMetrics{Duration: tt.duration, PauseCount: tt.pauses}
			if got := a.HasGoodPausePattern(); got != tt.want {
				t.Errorf("HasGoodPausePattern() = %v, want %v", got, tt.want)
			}
		})
	}
}

func constBools(n int, v bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func joinBools(parts ...[]bool) []bool {
	var out []bool
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
