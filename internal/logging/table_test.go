package logging

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"zero", 0.0, 2, "0.00"},
		{"positive", 3.14159, 2, "3.14"},
		{"negative", -16.5, 1, "-16.5"},
		{"large", 12345.6789, 2, "12345.68"},
		{"small_normal", 0.001, 3, "0.001"},
		{"very_small_scientific", 0.00001, 2, "1.00e-05"},
		{"very_small_negative", -0.00001, 2, "-1.00e-05"},
		{"nan", math.NaN(), 2, MissingValue},
		{"positive_inf", math.Inf(1), 2, MissingValue},
		{"negative_inf", math.Inf(-1), 2, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetric(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetric(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatMetricSigned(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"positive", 5, 0, "+5"},
		{"negative", -3, 0, "-3"},
		{"zero", 0.0, 0, "+0"},
		{"nan", math.NaN(), 0, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetricSigned(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetricSigned(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		indent   string
		want     string
	}{
		{
			name:     "short_text_no_wrap",
			text:     "Hello world",
			maxWidth: 20,
			indent:   "  ",
			want:     "Hello world",
		},
		{
			name:     "long_text_wraps",
			text:     "Take a breath at the end of each sentence and let it land",
			maxWidth: 30,
			indent:   "  ",
			want:     "Take a breath at the end of\n  each sentence and let it land",
		},
		{
			name:     "single_long_word",
			text:     "supercalifragilisticexpialidocious",
			maxWidth: 10,
			indent:   "  ",
			want:     "supercalifragilisticexpialidocious",
		},
		{
			name:     "empty_input",
			text:     "",
			maxWidth: 20,
			indent:   "  ",
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.maxWidth, tt.indent)
			if got != tt.want {
				t.Errorf("wrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComparisonTableFirstAttempt(t *testing.T) {
	table := NewComparisonTable()
	table.AddScoreRow("Clarity", 82, math.NaN(), "")

	out := table.String()
	if !strings.Contains(out, "82") {
		t.Errorf("table should contain current score, got:\n%s", out)
	}
	// No previous attempt renders placeholders in both trailing columns.
	row := strings.Split(out, "\n")[1]
	if strings.Count(row, MissingValue) != 2 {
		t.Errorf("expected two placeholder columns in %q", row)
	}
}

func TestComparisonTableWithPrevious(t *testing.T) {
	table := NewComparisonTable()
	table.AddScoreRow("Pacing", 75, 70, "")

	out := table.String()
	for _, want := range []string{"75", "70", "+5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestMetricTableAlignment(t *testing.T) {
	table := &MetricTable{Headers: []string{"Value"}}
	table.AddRow("Speech rate", []string{"23.5"}, "segments/min", "measured, conversational")
	table.AddRow("Silence", []string{"18"}, "%", "natural balance of speech and pauses")

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Interpretation") {
		t.Errorf("header should include interpretation column: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Speech rate") {
		t.Errorf("labels should be left-aligned: %q", lines[1])
	}
}

func TestInterpretations(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"stability_steady", interpretStability(0.95), "rock steady"},
		{"stability_erratic", interpretStability(0.3), "erratic, hard to follow"},
		{"silence_dense", interpretSilence(0.05), "dense, little breathing room"},
		{"silence_dominant", interpretSilence(0.7), "mostly silence"},
		{"pace_rushed", interpretPace(45), "rushed, breathless bursts"},
		{"pace_halting", interpretPace(5), "halting, long gaps"},
		{"spikes_level", interpretSpikes(0), "level throughout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
