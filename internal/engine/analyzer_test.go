package engine

import (
	"testing"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

func sampleTranscript() *entities.Transcript {
	return &entities.Transcript{
		Text:     "всем привет ну начнём сегодня мы обсудим план",
		Language: "ru",
		Segments: []entities.TranscriptSegment{
			{Start: 0, End: 2.0, Text: "всем привет ну начнём"},
			{Start: 2.8, End: 5.0, Text: "сегодня мы обсудим план"},
		},
		WordTimings: []entities.WordTiming{
			{Text: "всем", Start: 0, End: 0.5},
			{Text: "привет", Start: 0.5, End: 1.0},
			{Text: "ну", Start: 1.0, End: 1.5},
			{Text: "начнём", Start: 1.5, End: 2.0},
			{Text: "сегодня", Start: 2.8, End: 3.3},
			{Text: "мы", Start: 3.3, End: 3.8},
			{Text: "обсудим", Start: 3.8, End: 4.3},
			{Text: "план", Start: 4.3, End: 5.0},
		},
	}
}

func TestAnalyzeFullPipeline(t *testing.T) {
	e := testEngine()
	result := e.Analyze(sampleTranscript(), nil, nil)

	if len(result.Pauses) != 1 {
		t.Fatalf("expected 1 pause, got %d", len(result.Pauses))
	}
	p := result.Pauses[0]
	if p.Type != entities.PauseTypeNatural {
		t.Errorf("pause type: got %s", p.Type)
	}
	if p.Start != 2.0 || p.End != 2.8 {
		t.Errorf("pause bounds: [%v, %v]", p.Start, p.End)
	}

	if len(result.Phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d", len(result.Phrases))
	}

	if len(result.Fillers) != 1 || result.Fillers[0].CanonicalForm != "ну" {
		t.Fatalf("expected the single filler ну, got %+v", result.Fillers)
	}
	if result.Fillers[0].IsContextFiller != nil {
		t.Error("engine must leave contextual judgment unset")
	}

	// 8 words over 4.2s of speaking time
	if result.Pace.Classification != "comfortable" {
		t.Errorf("pace: got %q (wpm=%v)", result.Pace.Classification, result.Pace.WordsPerMinute)
	}

	if len(result.SpeechRate) == 0 {
		t.Error("expected speech rate windows")
	}
	if len(result.Advice) != 4 {
		t.Errorf("expected 4 advice entries, got %d", len(result.Advice))
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	e := testEngine()
	a := e.Analyze(sampleTranscript(), nil, nil)
	b := e.Analyze(sampleTranscript(), nil, nil)

	if len(a.Pauses) != len(b.Pauses) || len(a.Fillers) != len(b.Fillers) ||
		len(a.Phrases) != len(b.Phrases) || len(a.SuspiciousMoments) != len(b.SuspiciousMoments) {
		t.Error("identical input must produce identical structure")
	}
	if a.Pace.WordsPerMinute != b.Pace.WordsPerMinute {
		t.Error("pace must be deterministic")
	}
}

func TestAnalyzeWithNoisyGapAudio(t *testing.T) {
	e := testEngine()
	// Speech-level tone through the whole file: the gap is loud, so it
	// is not a pause.
	pcm := buildPCM(8000, 5.0, 8000, [2]float64{0, 5.0})

	result := e.Analyze(sampleTranscript(), pcm, nil)
	if len(result.Pauses) != 0 {
		t.Errorf("noisy gap must not become a pause, got %d", len(result.Pauses))
	}
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	e := testEngine()
	result := e.Analyze(&entities.Transcript{}, nil, nil)

	if len(result.Pauses) != 0 || len(result.Fillers) != 0 || len(result.Phrases) != 0 {
		t.Error("empty transcript must yield an empty analysis")
	}
	if result.Pace.Classification != "insufficient_data" {
		t.Errorf("pace classification: got %q", result.Pace.Classification)
	}
	if len(result.Advice) != 4 {
		t.Errorf("advice is always present, got %d entries", len(result.Advice))
	}
}

func TestAnalyzeSegmentOnlyTranscript(t *testing.T) {
	e := testEngine()
	transcript := &entities.Transcript{
		Text: "всем привет сегодня мы обсудим план",
		Segments: []entities.TranscriptSegment{
			{Start: 0, End: 2.0, Text: "всем привет"},
			{Start: 2.8, End: 5.0, Text: "сегодня мы обсудим план"},
		},
	}

	result := e.Analyze(transcript, nil, nil)
	if len(result.Pauses) != 1 {
		t.Fatalf("segment gap must yield a pause, got %d", len(result.Pauses))
	}
	if result.Pauses[0].Type != entities.PauseTypeNatural {
		t.Errorf("pause type: got %s", result.Pauses[0].Type)
	}
	if len(result.Phrases) != 2 {
		t.Errorf("segments must degrade into phrases, got %d", len(result.Phrases))
	}
	if result.Pace.TotalWords != 6 {
		t.Errorf("word count from text: got %d", result.Pace.TotalWords)
	}
}
