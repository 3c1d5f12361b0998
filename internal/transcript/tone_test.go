package transcript

import "testing"

func TestAnalyzeToneEmpty(t *testing.T) {
	a := AnalyzeTone(TranscriptionResult{})
	if a.Score != int(toneNeutralScore) {
		t.Errorf("empty transcript Score = %d, want %d", a.Score, int(toneNeutralScore))
	}
	if a.IsPositive() || a.IsNegative() {
		t.Error("empty transcript should read as neutral")
	}
}

func TestAnalyzeTonePositive(t *testing.T) {
	a := AnalyzeTone(TranscriptionResult{
		Text: "This is great news and I am excited. The results look excellent, thanks to a wonderful team.",
	})
	if !a.IsPositive() {
		t.Errorf("sentiment %v should read as positive", a.Sentiment)
	}
	if a.Score <= int(toneNeutralScore) {
		t.Errorf("Score = %d, want above neutral", a.Score)
	}
}

func TestAnalyzeToneNegative(t *testing.T) {
	a := AnalyzeTone(TranscriptionResult{
		Text: "This is a terrible problem and the worst outcome. Unfortunately the launch failed and everyone is frustrated.",
	})
	if !a.IsNegative() {
		t.Errorf("sentiment %v should read as negative", a.Sentiment)
	}
	if a.Score >= int(toneNeutralScore) {
		t.Errorf("Score = %d, want below neutral", a.Score)
	}
}

func TestAnalyzeToneDeadBand(t *testing.T) {
	// One positive and one negative word cancel out.
	a := AnalyzeTone(TranscriptionResult{
		Text: "The good parts and the bad parts balanced each other across the quarter review meeting.",
	})
	if a.IsPositive() || a.IsNegative() {
		t.Errorf("balanced sentiment %v should sit in the dead band", a.Sentiment)
	}
}

func TestAnalyzeToneContractionsWarm(t *testing.T) {
	stiff := AnalyzeTone(TranscriptionResult{
		Text: "We will proceed. It is acceptable. We are ready now.",
	})
	warm := AnalyzeTone(TranscriptionResult{
		Text: "We'll proceed. It's acceptable. We're ready now.",
	})
	if warm.Contractions != 3 {
		t.Errorf("Contractions = %d, want 3", warm.Contractions)
	}
	if warm.Score <= stiff.Score {
		t.Errorf("contractions should warm the tone: warm %d, stiff %d", warm.Score, stiff.Score)
	}
}

func TestAnalyzeToneFormalPhrases(t *testing.T) {
	a := AnalyzeTone(TranscriptionResult{
		Text: "Pursuant to our agreement, and in accordance with the aforementioned terms, payment is due.",
	})
	if a.FormalPhrases != 3 {
		t.Errorf("FormalPhrases = %d, want 3", a.FormalPhrases)
	}
	if a.Sentiment >= 0 {
		t.Errorf("formal boilerplate should shift sentiment down, got %v", a.Sentiment)
	}
}

func TestAnalyzeToneSentimentBounds(t *testing.T) {
	a := AnalyzeTone(TranscriptionResult{
		Text: "great great great great great great great great great great",
	})
	if a.Sentiment > 1 || a.Sentiment < -1 {
		t.Errorf("Sentiment = %v, out of range", a.Sentiment)
	}
	if a.Score < 0 || a.Score > 100 {
		t.Errorf("Score = %d, out of range", a.Score)
	}
}
