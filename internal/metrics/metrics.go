// Package metrics derives rehearsal statistics from windowed audio telemetry.
// The capture subsystem emits fixed-width 0.1s windows with one RMS and one
// peak sample each; everything here is a pure function over that stream.
package metrics

// Window geometry of the capture stream.
const (
	// WindowsPerSecond is the capture rate of the RMS/peak stream (10 Hz).
	WindowsPerSecond = 10

	// WindowDuration is the width of one window in seconds.
	WindowDuration = 1.0 / float64(WindowsPerSecond)
)

// AudioMetrics is the raw per-window telemetry for one recording. Produced
// once per recording by the capture subsystem and immutable afterwards.
// Invariant: len(RMSWindows) == len(PeakWindows); windows cover Duration at
// WindowsPerSecond.
type AudioMetrics struct {
	RMSWindows  []float64 `json:"rms_windows"`  // per-window RMS amplitude, 0..1
	PeakWindows []float64 `json:"peak_windows"` // per-window peak amplitude, 0..1
	Duration    float64   `json:"duration"`     // seconds
}

// WindowCount returns the number of captured windows.
func (m AudioMetrics) WindowCount() int {
	return len(m.RMSWindows)
}

// Valid reports whether the RMS and peak streams line up.
func (m AudioMetrics) Valid() bool {
	return len(m.RMSWindows) == len(m.PeakWindows)
}
