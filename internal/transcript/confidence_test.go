package transcript

import "testing"

func TestAnalyzeConfidenceEmpty(t *testing.T) {
	a := AnalyzeConfidence(TranscriptionResult{})
	if a.Score != confidenceEmptyScore {
		t.Errorf("empty transcript Score = %d, want %d", a.Score, confidenceEmptyScore)
	}
}

func TestAnalyzeConfidenceAssertiveBeatsHedging(t *testing.T) {
	assertive := AnalyzeConfidence(TranscriptionResult{
		Text: "I will deliver this by Friday. I am confident the approach is right. Definitely the correct call.",
	})
	hedging := AnalyzeConfidence(TranscriptionResult{
		Text: "I think maybe we could sort of deliver this. I guess it's probably the right approach, or something.",
	})

	if assertive.Score <= hedging.Score {
		t.Errorf("assertive score %d should exceed hedging score %d", assertive.Score, hedging.Score)
	}
	if hedging.HedgingPhrases < 4 {
		t.Errorf("HedgingPhrases = %d, expected the hedges to register", hedging.HedgingPhrases)
	}
	if assertive.AssertivePhrases < 2 {
		t.Errorf("AssertivePhrases = %d, expected the assertions to register", assertive.AssertivePhrases)
	}
}

func TestAnalyzeConfidenceWeakOpeners(t *testing.T) {
	a := AnalyzeConfidence(TranscriptionResult{
		Text: "Well, here is the plan. So we start Monday. Basically it works.",
	})
	if a.WeakOpeners != 3 {
		t.Errorf("WeakOpeners = %d, want 3", a.WeakOpeners)
	}
}

func TestAnalyzeConfidenceApologetic(t *testing.T) {
	a := AnalyzeConfidence(TranscriptionResult{
		Text: "Sorry to bother you. I apologize for the delay, if that makes sense.",
	})
	if a.ApologeticPhrases != 3 {
		t.Errorf("ApologeticPhrases = %d, want 3", a.ApologeticPhrases)
	}
}

func TestAnalyzeConfidenceQuestionStatements(t *testing.T) {
	a := AnalyzeConfidence(TranscriptionResult{
		Text: "We should ship this week? The numbers look fine? Let's go.",
	})
	if a.QuestionStatements != 2 {
		t.Errorf("QuestionStatements = %d, want 2", a.QuestionStatements)
	}
}

func TestAnalyzeConfidenceScoreBounds(t *testing.T) {
	// Saturate every penalty category; the score must stay in range.
	text := ""
	for i := 0; i < 20; i++ {
		text += "Sorry, I think maybe sort of? "
	}
	a := AnalyzeConfidence(TranscriptionResult{Text: text})
	if a.Score < 0 || a.Score > 100 {
		t.Errorf("Score = %d, out of range", a.Score)
	}
}
