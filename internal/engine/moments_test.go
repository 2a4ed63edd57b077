package engine

import (
	"strings"
	"testing"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

func momentsOfType(moments []entities.SuspiciousMoment, typ entities.SuspiciousMomentType) []entities.SuspiciousMoment {
	var out []entities.SuspiciousMoment
	for _, m := range moments {
		if m.Type == typ {
			out = append(out, m)
		}
	}
	return out
}

func TestFillerClusterSeverity(t *testing.T) {
	e := testEngine()
	mkFillers := func(n int, step float64) []entities.FillerWord {
		fillers := make([]entities.FillerWord, n)
		for i := range fillers {
			fillers[i] = entities.FillerWord{CanonicalForm: "ну", Timestamp: float64(i) * step}
		}
		return fillers
	}

	cases := []struct {
		count int
		want  entities.Severity
	}{
		{2, entities.SeverityMedium},
		{4, entities.SeverityHigh},
		{5, entities.SeverityCritical},
	}

	for _, tc := range cases {
		moments := e.detectMoments(nil, nil, nil, mkFillers(tc.count, 1.5))
		clusters := momentsOfType(moments, entities.MomentFillerCluster)
		if len(clusters) != 1 {
			t.Fatalf("count %d: expected 1 cluster moment, got %d", tc.count, len(clusters))
		}
		if clusters[0].Severity != tc.want {
			t.Errorf("count %d: severity %q, want %q", tc.count, clusters[0].Severity, tc.want)
		}
		if clusters[0].Evidence["filler_count"] != float64(tc.count) {
			t.Errorf("count %d: evidence %v", tc.count, clusters[0].Evidence)
		}
	}
}

func TestFillerClusterGapBreaks(t *testing.T) {
	e := testEngine()
	fillers := []entities.FillerWord{
		{CanonicalForm: "ну", Timestamp: 0},
		{CanonicalForm: "вот", Timestamp: 10}, // far apart, no cluster
	}
	moments := e.detectMoments(nil, nil, nil, fillers)
	if len(momentsOfType(moments, entities.MomentFillerCluster)) != 0 {
		t.Error("isolated fillers must not form a cluster")
	}
}

func TestExcessivePauseMoment(t *testing.T) {
	e := testEngine()
	pauses := []entities.ValidatedPause{
		{Start: 3, End: 6.2, Duration: 3.2, IsExcessive: true},
		{Start: 10, End: 10.8, Duration: 0.8},
	}

	moments := e.detectMoments(nil, pauses, nil, nil)
	excessive := momentsOfType(moments, entities.MomentExcessivePause)
	if len(excessive) != 1 {
		t.Fatalf("expected 1 excessive pause moment, got %d", len(excessive))
	}
	if excessive[0].Timestamp != 3 {
		t.Errorf("timestamp: got %v", excessive[0].Timestamp)
	}
	if excessive[0].Severity != entities.SeverityMedium {
		t.Errorf("severity: got %q", excessive[0].Severity)
	}
}

func TestPaceOutlierMoments(t *testing.T) {
	e := testEngine()
	phrases := []entities.Phrase{
		{Start: 0, End: 5, Duration: 5, WordCount: 30},  // 360 wpm
		{Start: 6, End: 11, Duration: 5, WordCount: 4},  // 48 wpm
		{Start: 12, End: 17, Duration: 5, WordCount: 12}, // 144 wpm
	}

	moments := e.detectMoments(nil, nil, phrases, nil)
	if len(momentsOfType(moments, entities.MomentFastSpeech)) != 1 {
		t.Error("expected one fast_speech moment")
	}
	if len(momentsOfType(moments, entities.MomentSlowSpeech)) != 1 {
		t.Error("expected one slow_speech moment")
	}
}

func TestIncoherenceMoment(t *testing.T) {
	e := testEngine()
	longWords := make([]string, 22)
	for i := range longWords {
		longWords[i] = "благотворительность"
	}
	phrases := []entities.Phrase{
		{Start: 0, End: 20, Duration: 20, WordCount: 22, Text: strings.Join(longWords, " ")},
	}

	moments := e.detectMoments(nil, nil, phrases, nil)
	incoherent := momentsOfType(moments, entities.MomentIncoherence)
	if len(incoherent) != 1 {
		t.Fatalf("expected 1 incoherence moment, got %d", len(incoherent))
	}
	if incoherent[0].Evidence["complexity"] <= incoherenceMin {
		t.Errorf("complexity evidence: %v", incoherent[0].Evidence)
	}
}

func TestHesitationMoments(t *testing.T) {
	e := testEngine()
	words := []entities.WordTiming{
		{Text: "ммм", Start: 1.0, End: 1.3},
	}
	fillers := []entities.FillerWord{
		{CanonicalForm: "ну", Timestamp: 5.0, Duration: 0.3},
		{CanonicalForm: "вот", Timestamp: 5.8, Duration: 0.3}, // 0.5s after the first ends
	}

	moments := e.detectMoments(words, nil, nil, fillers)
	hes := momentsOfType(moments, entities.MomentHesitation)
	if len(hes) != 2 {
		t.Fatalf("expected 2 hesitation moments (sound + back-to-back), got %d", len(hes))
	}
}

func TestMomentIDsAreSequential(t *testing.T) {
	e := testEngine()
	pauses := []entities.ValidatedPause{
		{Start: 3, End: 6.2, Duration: 3.2, IsExcessive: true},
	}
	fillers := []entities.FillerWord{
		{CanonicalForm: "ну", Timestamp: 0},
		{CanonicalForm: "вот", Timestamp: 0.5},
	}

	moments := e.detectMoments(nil, pauses, nil, fillers)
	if len(moments) < 2 {
		t.Fatalf("expected several moments, got %d", len(moments))
	}
	for i, m := range moments {
		if m.ID != i+1 {
			t.Errorf("moment %d has id %d", i, m.ID)
		}
	}
	// Clusters are reported before pauses
	if moments[0].Type != entities.MomentFillerCluster {
		t.Errorf("first moment type: %q", moments[0].Type)
	}
}

func TestPhraseComplexityScore(t *testing.T) {
	simple := entities.Phrase{Start: 0, End: 2, Text: "всем привет"}
	if score := phraseComplexity(simple, nil); score > 0.3 {
		t.Errorf("simple phrase scored %v", score)
	}

	overloaded := entities.Phrase{
		Start: 0, End: 10,
		Text: strings.Repeat("благотворительность ", 21),
	}
	if score := phraseComplexity(overloaded, nil); score <= incoherenceMin {
		t.Errorf("overloaded phrase scored %v", score)
	}
}

func TestPhraseClarityBounds(t *testing.T) {
	ph := entities.Phrase{
		Text:             "да да да",
		PauseCount:       1,
		AvgPauseDuration: 0.5,
	}
	score := phraseClarity(ph)
	if score < 0 || score > 1 {
		t.Fatalf("clarity out of bounds: %v", score)
	}
	// moderate pausing and short words both raise clarity
	if score != 0.9 {
		t.Errorf("clarity = %v, want 0.9", score)
	}
}
