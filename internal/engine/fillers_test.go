package engine

import (
	"testing"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

func TestDetectFillersSingleWord(t *testing.T) {
	e := testEngine()
	words := []entities.WordTiming{
		{Text: "всем", Start: 0, End: 0.4, Confidence: 0.95},
		{Text: "привет", Start: 0.4, End: 0.9, Confidence: 0.97},
		{Text: "э-э", Start: 0.9, End: 1.4, Confidence: 0.8},
		{Text: "начнём", Start: 1.4, End: 2.0, Confidence: 0.99},
	}

	fillers := e.detectFillers(words)
	if len(fillers) != 1 {
		t.Fatalf("expected 1 filler, got %d", len(fillers))
	}

	f := fillers[0]
	if f.CanonicalForm != "э-э" {
		t.Errorf("canonical form: got %q", f.CanonicalForm)
	}
	if f.Timestamp != 0.9 {
		t.Errorf("timestamp: got %v", f.Timestamp)
	}
	if !equalStrings(f.ContextBefore, []string{"всем", "привет"}) {
		t.Errorf("context before: got %q", f.ContextBefore)
	}
	if !equalStrings(f.ContextAfter, []string{"начнём"}) {
		t.Errorf("context after: got %q", f.ContextAfter)
	}
	if f.IsContextFiller != nil {
		t.Error("detection must not pre-judge contextual fillers")
	}
}

func TestDetectFillersMultiWordNotShadowed(t *testing.T) {
	e := testEngine()
	words := []entities.WordTiming{
		{Text: "это", Start: 0, End: 0.3},
		{Text: "как", Start: 0.3, End: 0.6},
		{Text: "бы", Start: 0.6, End: 0.9},
		{Text: "сложно", Start: 0.9, End: 1.5},
	}

	fillers := e.detectFillers(words)
	if len(fillers) != 1 {
		t.Fatalf("expected 1 filler, got %d", len(fillers))
	}
	if fillers[0].CanonicalForm != "как бы" {
		t.Errorf("expected multi-word match, got %q", fillers[0].CanonicalForm)
	}
	if fillers[0].ExactText != "как бы" {
		t.Errorf("exact text: got %q", fillers[0].ExactText)
	}
}

func TestDetectFillersContextWindowLimit(t *testing.T) {
	e := testEngine()
	words := []entities.WordTiming{
		{Text: "один", Start: 0, End: 0.2},
		{Text: "два", Start: 0.2, End: 0.4},
		{Text: "три", Start: 0.4, End: 0.6},
		{Text: "четыре", Start: 0.6, End: 0.8},
		{Text: "ну", Start: 0.8, End: 1.0},
	}

	fillers := e.detectFillers(words)
	if len(fillers) != 1 {
		t.Fatalf("expected 1 filler, got %d", len(fillers))
	}
	if !equalStrings(fillers[0].ContextBefore, []string{"два", "три", "четыре"}) {
		t.Errorf("context must hold at most 3 words, got %q", fillers[0].ContextBefore)
	}
	if len(fillers[0].ContextAfter) != 0 {
		t.Errorf("expected empty trailing context, got %q", fillers[0].ContextAfter)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
