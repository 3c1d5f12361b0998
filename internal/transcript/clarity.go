package transcript

// Clarity tuning constants.
const (
	clarityBaseScore     = 95.0
	clarityEmptyScore    = 40 // neutral-low for zero-word transcripts
	fillerPenaltyScale   = 160.0
	fillerPenaltyMax     = 40.0
	repeatedRunPenalty   = 3.0
	incompletePenalty    = 4.0
	lowConfidencePenalty = 2.0

	// Words below this recognizer confidence count as low-confidence.
	lowConfidenceThreshold = 0.5

	// Average word length above this baseline nudges the score up, as a proxy
	// for deliberate phrasing over filler-heavy rambling.
	wordLengthBaseline = 4.0
	wordLengthBonus    = 3.0
	wordLengthBonusMax = 9.0

	// Sentence fragments with at most this many words count as incomplete.
	incompleteMaxWords = 2
)

// fillerWords are disfluencies that dilute a spoken message.
var fillerWords = map[string]bool{
	"um": true, "uh": true, "er": true, "ah": true, "hmm": true,
	"like": true, "basically": true, "actually": true, "literally": true,
	"anyway": true, "right": true, "okay": true, "so": true, "well": true,
}

// ClarityAnalysis holds the raw disfluency counts and the derived score.
type ClarityAnalysis struct {
	TotalWords            int
	FillerWordCount       int
	FillerRatio           float64
	RepeatedWordRuns      int
	IncompleteSentences   int
	LowConfidenceSegments int
	AverageWordLength     float64
	Score                 int // 0..100
}

// AnalyzeClarity scores how cleanly the transcript reads. The score starts
// near maximum and is reduced in proportion to the filler ratio and the other
// disfluency counts; longer average word length nudges it back up.
func AnalyzeClarity(r TranscriptionResult) ClarityAnalysis {
	a := ClarityAnalysis{}

	ws := words(r)
	a.TotalWords = len(ws)
	if a.TotalWords == 0 {
		a.Score = clarityEmptyScore
		return a
	}

	totalLen := 0
	prev := ""
	inRun := false
	for _, w := range ws {
		totalLen += len(w)
		if fillerWords[w] {
			a.FillerWordCount++
		}
		if w == prev {
			if !inRun {
				a.RepeatedWordRuns++
				inRun = true
			}
		} else {
			inRun = false
		}
		prev = w
	}
	a.AverageWordLength = float64(totalLen) / float64(a.TotalWords)
	a.FillerRatio = float64(a.FillerWordCount) / float64(a.TotalWords)

	for _, s := range sentences(r.Text) {
		if n := len(words(TranscriptionResult{Text: s})); n >= 1 && n <= incompleteMaxWords {
			a.IncompleteSentences++
		}
	}

	for _, seg := range r.Segments {
		if seg.Confidence < lowConfidenceThreshold {
			a.LowConfidenceSegments++
		}
	}

	score := clarityBaseScore

	fillerPenalty := a.FillerRatio * fillerPenaltyScale
	if fillerPenalty > fillerPenaltyMax {
		fillerPenalty = fillerPenaltyMax
	}
	score -= fillerPenalty
	score -= float64(a.RepeatedWordRuns) * repeatedRunPenalty
	score -= float64(a.IncompleteSentences) * incompletePenalty
	score -= float64(a.LowConfidenceSegments) * lowConfidencePenalty

	bonus := (a.AverageWordLength - wordLengthBaseline) * wordLengthBonus
	if bonus > wordLengthBonusMax {
		bonus = wordLengthBonusMax
	}
	if bonus > 0 {
		score += bonus
	}

	a.Score = clampScore(score)
	return a
}
