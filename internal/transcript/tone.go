package transcript

import "strings"

// Tone tuning constants.
const (
	toneNeutralScore = 50.0
	toneScoreSpan    = 45.0 // score = 50 + sentiment*45, clamped

	// Sentiment dead-band: inside (-0.15, 0.15) the tone is neither positive
	// nor negative.
	sentimentPositiveThreshold = 0.15
	sentimentNegativeThreshold = -0.15

	// Contractions read as warm and conversational; formal boilerplate reads
	// as stiff. Each shifts sentiment by at most this much.
	contractionShiftMax = 0.1
	formalShiftMax      = 0.1
	frequencyShiftScale = 0.5
)

// positiveWords signal warmth or enthusiasm.
var positiveWords = map[string]bool{
	"great": true, "good": true, "excellent": true, "happy": true,
	"glad": true, "excited": true, "wonderful": true, "love": true,
	"enjoy": true, "thanks": true, "thank": true, "appreciate": true,
	"fantastic": true, "perfect": true, "pleased": true, "best": true,
}

// negativeWords signal friction or distress.
var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "hate": true,
	"angry": true, "sad": true, "worried": true, "afraid": true,
	"problem": true, "wrong": true, "fail": true, "failed": true,
	"worst": true, "annoying": true, "frustrated": true, "unfortunately": true,
}

// formalPhrases read as stiff in spoken delivery.
var formalPhrases = []string{
	"pursuant to", "as per", "herein", "aforementioned",
	"in accordance with", "heretofore", "notwithstanding",
}

// ToneAnalysis holds the sentiment inputs and the derived score.
type ToneAnalysis struct {
	TotalWords    int
	PositiveWords int
	NegativeWords int
	Contractions  int
	FormalPhrases int
	Sentiment     float64 // -1..1
	Score         int     // 0..100
}

// IsPositive reports sentiment above the positive dead-band threshold.
func (a ToneAnalysis) IsPositive() bool {
	return a.Sentiment > sentimentPositiveThreshold
}

// IsNegative reports sentiment below the negative dead-band threshold.
func (a ToneAnalysis) IsNegative() bool {
	return a.Sentiment < sentimentNegativeThreshold
}

// AnalyzeTone derives a sentiment in [-1,1] from positive/negative word
// counts, shifted slightly by contraction frequency (warmer) and formal-phrase
// frequency (stiffer), then maps it onto a 0-100 score.
func AnalyzeTone(r TranscriptionResult) ToneAnalysis {
	a := ToneAnalysis{}
	if r.IsEmpty() {
		a.Score = int(toneNeutralScore)
		return a
	}

	ws := words(r)
	a.TotalWords = len(ws)
	for _, w := range ws {
		if positiveWords[w] {
			a.PositiveWords++
		}
		if negativeWords[w] {
			a.NegativeWords++
		}
		if strings.Contains(w, "'") {
			a.Contractions++
		}
	}
	a.FormalPhrases = countPhrases(r.Text, formalPhrases)

	sentiment := 0.0
	if total := a.PositiveWords + a.NegativeWords; total > 0 {
		sentiment = float64(a.PositiveWords-a.NegativeWords) / float64(total)
	}

	if a.TotalWords > 0 {
		contractionShift := float64(a.Contractions) / float64(a.TotalWords) * frequencyShiftScale
		if contractionShift > contractionShiftMax {
			contractionShift = contractionShiftMax
		}
		formalShift := float64(a.FormalPhrases) / float64(a.TotalWords) * frequencyShiftScale
		if formalShift > formalShiftMax {
			formalShift = formalShiftMax
		}
		sentiment += contractionShift - formalShift
	}

	if sentiment > 1 {
		sentiment = 1
	} else if sentiment < -1 {
		sentiment = -1
	}
	a.Sentiment = sentiment

	a.Score = clampScore(toneNeutralScore + sentiment*toneScoreSpan)
	return a
}
