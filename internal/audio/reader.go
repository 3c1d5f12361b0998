// Package audio reads WAV recordings and reduces them to the windowed RMS and
// peak telemetry the scoring engine consumes.
package audio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"

	"github.com/Hortyhort/QuietCoach-sub000/internal/metrics"
)

// Clip holds decoded, mono, normalized PCM for one recording.
type Clip struct {
	Samples    []float64 // mono, in [-1,1]
	SampleRate int
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// LoadWAV decodes a WAV file into a mono normalized clip. Multi-channel
// audio is downmixed by averaging channels.
func LoadWAV(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return Clip{}, fmt.Errorf("not a valid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("decoding PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 || buf.Format.SampleRate == 0 {
		return Clip{}, fmt.Errorf("missing format information: %s", path)
	}

	channels := buf.Format.NumChannels
	scale := float64(int64(1) << (decoder.BitDepth - 1))
	frames := len(buf.Data) / channels

	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch]) / scale
		}
		samples[i] = sum / float64(channels)
	}

	return Clip{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// Windows reduces a clip to fixed 100 ms windows of RMS and peak levels, the
// telemetry shape the analyzer expects. A trailing partial window is measured
// over the samples it has.
func Windows(c Clip) metrics.AudioMetrics {
	if len(c.Samples) == 0 || c.SampleRate <= 0 {
		return metrics.AudioMetrics{}
	}

	windowSize := c.SampleRate / metrics.WindowsPerSecond
	if windowSize < 1 {
		windowSize = 1
	}

	windowCount := (len(c.Samples) + windowSize - 1) / windowSize
	m := metrics.AudioMetrics{
		RMSWindows:  make([]float64, 0, windowCount),
		PeakWindows: make([]float64, 0, windowCount),
		Duration:    c.Duration(),
	}

	for start := 0; start < len(c.Samples); start += windowSize {
		end := start + windowSize
		if end > len(c.Samples) {
			end = len(c.Samples)
		}

		sumSquares := 0.0
		peak := 0.0
		for _, s := range c.Samples[start:end] {
			sumSquares += s * s
			if abs := math.Abs(s); abs > peak {
				peak = abs
			}
		}

		m.RMSWindows = append(m.RMSWindows, math.Sqrt(sumSquares/float64(end-start)))
		m.PeakWindows = append(m.PeakWindows, peak)
	}

	return m
}
