// Package coach turns analyzed metrics and feedback scores into actionable
// guidance: a prioritised list of coach notes and a single try-again focus.
package coach

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/Hortyhort/QuietCoach-sub000/internal/metrics"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scenario"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
)

// NoteType groups notes by the aspect of the attempt they address.
type NoteType string

const (
	NoteTypeScenario  NoteType = "scenario"
	NoteTypePacing    NoteType = "pacing"
	NoteTypeIntensity NoteType = "intensity"
	NoteTypeGeneral   NoteType = "general"
)

// Priority orders notes for display. Higher sorts first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// CoachNote is one piece of actionable advice derived from an attempt.
type CoachNote struct {
	ID       uint64   `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Type     NoteType `json:"type"`
	Priority Priority `json:"priority"`

	// ruleID identifies the rule that fired, for exclusions and tests.
	ruleID string
}

// MaxCoachNotes caps how many notes a single attempt can produce.
const MaxCoachNotes = 5

// noteCounter hands out note identifiers unique within the process.
var noteCounter atomic.Uint64

func nextNoteID() uint64 {
	return noteCounter.Add(1)
}

// GenerateCoachNotes evaluates every note rule against the analyzed metrics
// and scores, removes notes made redundant by a more specific one, and
// returns at most MaxCoachNotes ordered by priority (descending, stable).
// An attempt that trips no rule still gets one encouragement note, so the
// result is never empty.
func GenerateCoachNotes(a metrics.AnalyzedMetrics, scores scoring.FeedbackScores, sc scenario.Scenario) []CoachNote {
	var notes []CoachNote
	fired := make(map[string]bool)

	rules := []func(metrics.AnalyzedMetrics, scoring.FeedbackScores, scenario.Scenario) *CoachNote{
		noteTooFast,
		noteTooSlow,
		noteTooQuiet,
		noteTooManySpikes,
		noteInconsistentVolume,
		noteTooMuchSilence,
		noteScenarioStruggling,
	}

	for _, rule := range rules {
		if n := rule(a, scores, sc); n != nil {
			notes = append(notes, *n)
			fired[n.ruleID] = true
		}
	}

	notes = applyExclusions(notes, fired)

	if len(notes) == 0 {
		notes = append(notes, encouragementNote(scores))
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Priority > notes[j].Priority
	})

	if len(notes) > MaxCoachNotes {
		notes = notes[:MaxCoachNotes]
	}

	return notes
}

// applyExclusions removes notes made redundant by a more specific one. A
// recording dominated by silence reads as slow-paced too, so the slow-pace
// note is suppressed when the silence note fires.
func applyExclusions(notes []CoachNote, fired map[string]bool) []CoachNote {
	var result []CoachNote
	for _, n := range notes {
		if n.ruleID == "pace_too_slow" && fired["too_much_silence"] {
			continue
		}
		result = append(result, n)
	}
	return result
}

// noteTooFast fires when the speech-segment rate is above the rushed
// threshold.
func noteTooFast(a metrics.AnalyzedMetrics, _ scoring.FeedbackScores, _ scenario.Scenario) *CoachNote {
	if !a.IsPacingTooFast() {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Slow down",
		Body:     "You're speaking in rapid bursts with little room between thoughts. Take a breath at the end of each sentence and let your points land.",
		Type:     NoteTypePacing,
		Priority: PriorityHigh,
		ruleID:   "pace_too_fast",
	}
}

// noteTooSlow fires when the speech-segment rate is below the halting
// threshold.
func noteTooSlow(a metrics.AnalyzedMetrics, _ scoring.FeedbackScores, _ scenario.Scenario) *CoachNote {
	if !a.IsPacingTooSlow() {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Keep the momentum",
		Body:     "Long gaps between phrases make the delivery feel halting. Try linking your ideas together and saving the big pauses for your key moments.",
		Type:     NoteTypePacing,
		Priority: PriorityMedium,
		ruleID:   "pace_too_slow",
	}
}

// noteTooQuiet fires when the average speaking level is low.
func noteTooQuiet(a metrics.AnalyzedMetrics, _ scoring.FeedbackScores, _ scenario.Scenario) *CoachNote {
	if !a.IsTooQuiet() {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Project your voice",
		Body:     "Your average level is quite low, which reads as uncertainty. Sit up, speak from the chest, and aim your voice at the far side of the room.",
		Type:     NoteTypeIntensity,
		Priority: PriorityHigh,
		ruleID:   "too_quiet",
	}
}

// noteTooManySpikes fires when volume spikes occur faster than the
// per-minute allowance.
func noteTooManySpikes(a metrics.AnalyzedMetrics, _ scoring.FeedbackScores, _ scenario.Scenario) *CoachNote {
	if !a.HasTooManySpikes() {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Smooth out the bursts",
		Body:     fmt.Sprintf("Your volume jumped sharply about %.0f times per minute. Emphasis works best when it's occasional; keep most of your delivery at one steady level.", a.SpikesPerMinute()),
		Type:     NoteTypeIntensity,
		Priority: PriorityMedium,
		ruleID:   "too_many_spikes",
	}
}

// noteInconsistentVolume fires when volume stability drops below the
// steady-delivery threshold.
func noteInconsistentVolume(a metrics.AnalyzedMetrics, _ scoring.FeedbackScores, _ scenario.Scenario) *CoachNote {
	if !a.HasInconsistentVolume() {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Steady your volume",
		Body:     "Your loudness wandered a lot through the take. Pick a comfortable level at the start and hold it; consistency makes you sound more in control.",
		Type:     NoteTypeIntensity,
		Priority: PriorityMedium,
		ruleID:   "inconsistent_volume",
	}
}

// noteTooMuchSilence fires when more than half the recording is silent.
func noteTooMuchSilence(a metrics.AnalyzedMetrics, _ scoring.FeedbackScores, _ scenario.Scenario) *CoachNote {
	if !a.HasTooMuchSilence() {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Fill the space",
		Body:     fmt.Sprintf("About %.0f%% of this take was silence. If you need thinking time, a short bridging phrase keeps the listener with you better than dead air.", a.SilenceRatio*100),
		Type:     NoteTypePacing,
		Priority: PriorityHigh,
		ruleID:   "too_much_silence",
	}
}

// noteScenarioStruggling fires when the overall tier is needsWork, offering
// scenario-specific framing advice.
func noteScenarioStruggling(_ metrics.AnalyzedMetrics, scores scoring.FeedbackScores, sc scenario.Scenario) *CoachNote {
	if scores.Tier() != scoring.TierNeedsWork {
		return nil
	}
	return &CoachNote{
		ID:       nextNoteID(),
		Title:    "Reset and simplify",
		Body:     scenarioAdvice(sc.Category),
		Type:     NoteTypeScenario,
		Priority: PriorityMedium,
		ruleID:   "scenario_struggling",
	}
}

// scenarioAdvice is the category-flavored fallback body for a rough attempt.
func scenarioAdvice(c scenario.Category) string {
	switch c {
	case scenario.CategoryInterview:
		return "This one got away from you. Pick one story you know well, structure it as situation, action, result, and run the scenario again with just that."
	case scenario.CategoryPresentation:
		return "This run was a struggle. Strip your talk back to the single point you most want remembered and rebuild the attempt around it."
	case scenario.CategorySmallTalk:
		return "That exchange felt forced. Lower the stakes: ask one genuine question and react to the answer instead of planning your next line."
	case scenario.CategoryNegotiation:
		return "You lost the thread here. Decide your walk-away point and your opening ask before you retry, and say the ask plainly in the first minute."
	case scenario.CategoryConflict:
		return "That conversation ran hot. Next attempt, name the issue in one neutral sentence before responding to anything else."
	default:
		return "This attempt didn't come together. Simplify what you're trying to say to one core message and run it again."
	}
}

// encouragementNote is the low-priority note returned when nothing else
// fired.
func encouragementNote(scores scoring.FeedbackScores) CoachNote {
	body := "Solid, controlled delivery with no major issues. Run the scenario again and experiment with varying your emphasis to add some colour."
	if scores.Tier() == scoring.TierExcellent {
		body = "Excellent delivery across the board. Try a harder scenario, or rerun this one focusing on making your strongest moments even sharper."
	}
	return CoachNote{
		ID:       nextNoteID(),
		Title:    "Keep it up",
		Body:     body,
		Type:     NoteTypeGeneral,
		Priority: PriorityLow,
		ruleID:   "encouragement",
	}
}
