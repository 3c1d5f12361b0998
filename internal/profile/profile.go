// Package profile defines the tunable scoring configuration injected into the
// audio analyzer and the transcript heuristics. A Profile is read-only once
// constructed; per-scenario-category overrides are resolved at load time.
package profile

// Default tuning values. These are the process-wide baseline; a YAML override
// file may replace any of them globally or per scenario category.
const (
	// Audio analysis
	defaultQuietThreshold    = 0.02 // RMS below this is a silent window
	defaultMinimumDurationM  = 0.25 // minutes - recordings shorter than this score with low confidence
	defaultSpikeNeighborhood = 5    // windows each side used for the local spike baseline
	defaultSpikeMargin       = 1.75 // level must exceed local baseline by this factor

	// Pacing band (words per minute)
	defaultOptimalMinWPM = 115.0
	defaultOptimalMaxWPM = 165.0

	// Blending
	defaultAudioBlendBonus = 10 // points of acoustic adjustment on transcript scores

	// Hard contract bounds
	maxMinimumDurationM = 1.0
	maxAudioBlendBonus  = 20
)

// Audio holds thresholds for the windowed audio analyzer.
type Audio struct {
	// QuietThreshold is the RMS noise floor below which a window counts as silent.
	QuietThreshold float64 `yaml:"quiet_threshold"`

	// MinimumDurationMinutes is the caller-level policy threshold below which a
	// recording is flagged as too short to score meaningfully. The engine still
	// scores shorter recordings; surfacing the flag is the caller's decision.
	MinimumDurationMinutes float64 `yaml:"minimum_duration_minutes"`

	// SpikeNeighborhood is the number of windows on each side considered when
	// computing the local baseline for spike detection.
	SpikeNeighborhood int `yaml:"spike_neighborhood"`

	// SpikeMargin is the factor by which a window's level must exceed the local
	// baseline to count as a spike candidate.
	SpikeMargin float64 `yaml:"spike_margin"`
}

// Pace holds the optimal words-per-minute band for the pacing heuristic.
type Pace struct {
	OptimalMinWPM float64 `yaml:"optimal_min_wpm"`
	OptimalMaxWPM float64 `yaml:"optimal_max_wpm"`
}

// Tuning holds score-blending weights.
type Tuning struct {
	// AudioBlendBonus is the maximum number of points the acoustic signal may
	// add to or subtract from a transcript-derived dimension score. Contract:
	// (0, 20].
	AudioBlendBonus int `yaml:"audio_blend_bonus"`
}

// Profile is the complete scoring configuration.
type Profile struct {
	Audio  Audio  `yaml:"audio"`
	Pace   Pace   `yaml:"pace"`
	Tuning Tuning `yaml:"tuning"`
}

// Default returns the built-in scoring profile.
func Default() Profile {
	return Profile{
		Audio: Audio{
			QuietThreshold:         defaultQuietThreshold,
			MinimumDurationMinutes: defaultMinimumDurationM,
			SpikeNeighborhood:      defaultSpikeNeighborhood,
			SpikeMargin:            defaultSpikeMargin,
		},
		Pace: Pace{
			OptimalMinWPM: defaultOptimalMinWPM,
			OptimalMaxWPM: defaultOptimalMaxWPM,
		},
		Tuning: Tuning{
			AudioBlendBonus: defaultAudioBlendBonus,
		},
	}
}

// Sanitize replaces out-of-contract values with defaults and clamps the rest.
// Called after loading overrides so a bad file cannot produce an invalid profile.
func (p *Profile) Sanitize() {
	if p.Audio.QuietThreshold <= 0 || p.Audio.QuietThreshold >= 1 {
		p.Audio.QuietThreshold = defaultQuietThreshold
	}
	if p.Audio.MinimumDurationMinutes <= 0 || p.Audio.MinimumDurationMinutes > maxMinimumDurationM {
		p.Audio.MinimumDurationMinutes = defaultMinimumDurationM
	}
	if p.Audio.SpikeNeighborhood < 1 {
		p.Audio.SpikeNeighborhood = defaultSpikeNeighborhood
	}
	if p.Audio.SpikeMargin <= 1.0 {
		p.Audio.SpikeMargin = defaultSpikeMargin
	}
	if p.Pace.OptimalMinWPM <= 0 || p.Pace.OptimalMaxWPM <= p.Pace.OptimalMinWPM {
		p.Pace.OptimalMinWPM = defaultOptimalMinWPM
		p.Pace.OptimalMaxWPM = defaultOptimalMaxWPM
	}
	if p.Tuning.AudioBlendBonus <= 0 || p.Tuning.AudioBlendBonus > maxAudioBlendBonus {
		p.Tuning.AudioBlendBonus = defaultAudioBlendBonus
	}
}
