package transcript

import "strings"

// Confidence tuning constants.
const (
	confidenceBaseScore  = 70.0
	confidenceEmptyScore = 40

	hedgingPenalty    = 4.0
	weakOpenerPenalty = 3.0
	apologeticPenalty = 5.0
	questionPenalty   = 3.0
	assertiveBonus    = 3.0
)

// hedgingPhrases soften a statement until it stops being one.
var hedgingPhrases = []string{
	"i think", "i guess", "i suppose", "i feel like",
	"maybe", "perhaps", "probably", "possibly",
	"kind of", "sort of", "a little bit", "or something",
}

// apologeticPhrases preemptively undercut the speaker.
var apologeticPhrases = []string{
	"sorry", "i apologize", "i apologise", "excuse me",
	"forgive me", "my bad", "if that makes sense",
}

// assertivePhrases signal conviction.
var assertivePhrases = []string{
	"i will", "i am confident", "i'm confident", "i know",
	"definitely", "absolutely", "certainly", "without a doubt",
	"i am sure", "i'm sure", "i believe",
}

// weakOpeners are sentence starts that bleed authority.
var weakOpeners = map[string]bool{
	"well": true, "so": true, "um": true, "uh": true,
	"just": true, "basically": true, "anyway": true,
}

// ConfidenceAnalysis holds the assertiveness counts and the derived score.
type ConfidenceAnalysis struct {
	HedgingPhrases     int
	WeakOpeners        int
	ApologeticPhrases  int
	QuestionStatements int
	AssertivePhrases   int
	Score              int // 0..100
}

// AnalyzeConfidence scores how assertively the transcript reads. Each hedge,
// weak opener, apology, and question-framed statement reduces the score; each
// assertive phrase raises it. A transcript free of the negative categories
// always scores strictly higher than the same transcript with several.
func AnalyzeConfidence(r TranscriptionResult) ConfidenceAnalysis {
	a := ConfidenceAnalysis{}
	if r.IsEmpty() {
		a.Score = confidenceEmptyScore
		return a
	}

	a.HedgingPhrases = countPhrases(r.Text, hedgingPhrases)
	a.ApologeticPhrases = countPhrases(r.Text, apologeticPhrases)
	a.AssertivePhrases = countPhrases(r.Text, assertivePhrases)

	for _, s := range sentences(r.Text) {
		if strings.HasSuffix(s, "?") {
			a.QuestionStatements++
		}
		fields := strings.Fields(strings.ToLower(s))
		if len(fields) > 0 {
			opener := strings.Trim(fields[0], ".,!?;:\"")
			if weakOpeners[opener] {
				a.WeakOpeners++
			}
		}
	}

	score := confidenceBaseScore
	score -= float64(a.HedgingPhrases) * hedgingPenalty
	score -= float64(a.WeakOpeners) * weakOpenerPenalty
	score -= float64(a.ApologeticPhrases) * apologeticPenalty
	score -= float64(a.QuestionStatements) * questionPenalty
	score += float64(a.AssertivePhrases) * assertiveBonus

	a.Score = clampScore(score)
	return a
}
