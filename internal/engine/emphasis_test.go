package engine

import (
	"testing"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

func eventsOfType(events []entities.EmphasisEvent, typ entities.EmphasisType) []entities.EmphasisEvent {
	var out []entities.EmphasisEvent
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestDetectEmphasisStretchedWord(t *testing.T) {
	words := []entities.WordTiming{
		{Text: "мы", Start: 0, End: 0.2},
		{Text: "работаем", Start: 0.2, End: 0.4},
		{Text: "честно", Start: 0.4, End: 1.2}, // held much longer
		{Text: "всегда", Start: 1.2, End: 1.4},
	}

	events := detectEmphasis(words)
	stretched := eventsOfType(events, entities.EmphasisDuration)
	if len(stretched) == 0 {
		t.Fatal("expected a duration emphasis event")
	}
	if stretched[0].Word != "честно" {
		t.Errorf("emphasized word: got %q", stretched[0].Word)
	}
	if stretched[0].Intensity <= 0 || stretched[0].Intensity > 1 {
		t.Errorf("intensity out of range: %v", stretched[0].Intensity)
	}
}

func TestDetectEmphasisRepetition(t *testing.T) {
	words := []entities.WordTiming{
		{Text: "Привет", Start: 0, End: 0.4},
		{Text: "привет", Start: 0.4, End: 0.8},
	}

	events := detectEmphasis(words)
	reps := eventsOfType(events, entities.EmphasisRepetition)
	if len(reps) != 1 {
		t.Fatalf("expected 1 repetition event, got %d", len(reps))
	}
	if reps[0].Intensity != 0.8 {
		t.Errorf("repetition intensity: got %v", reps[0].Intensity)
	}
	if reps[0].Timestamp != 0.4 {
		t.Errorf("repetition timestamp: got %v", reps[0].Timestamp)
	}
}

func TestDetectEmphasisIntensifier(t *testing.T) {
	words := []entities.WordTiming{
		{Text: "это", Start: 0, End: 0.4},
		{Text: "очень", Start: 0.4, End: 0.8},
		{Text: "сложно", Start: 0.8, End: 1.2},
	}

	events := detectEmphasis(words)
	content := eventsOfType(events, entities.EmphasisContent)
	if len(content) != 1 {
		t.Fatalf("expected 1 content event, got %d", len(content))
	}
	if content[0].Word != "очень" {
		t.Errorf("content word: got %q", content[0].Word)
	}
	// equal durations: intensity = 0.5 + 1.0*0.3
	if content[0].Intensity != 0.8 {
		t.Errorf("content intensity: got %v", content[0].Intensity)
	}
}

func TestDetectEmphasisAfterGap(t *testing.T) {
	words := []entities.WordTiming{
		{Text: "итак", Start: 0, End: 0.5},
		{Text: "главное", Start: 1.5, End: 2.0},
	}

	events := detectEmphasis(words)
	pauseEvents := eventsOfType(events, entities.EmphasisPause)
	if len(pauseEvents) != 1 {
		t.Fatalf("expected 1 pause emphasis event, got %d", len(pauseEvents))
	}
	if pauseEvents[0].Word != "главное" {
		t.Errorf("emphasized word: got %q", pauseEvents[0].Word)
	}
	if pauseEvents[0].Intensity != 0.5 {
		t.Errorf("intensity = %v, want 0.5", pauseEvents[0].Intensity)
	}
}

func TestDetectEmphasisGapBelowThreshold(t *testing.T) {
	words := []entities.WordTiming{
		{Text: "ну", Start: 0, End: 0.5},
		{Text: "ладно", Start: 1.2, End: 1.7},
	}

	events := detectEmphasis(words)
	if pauseEvents := eventsOfType(events, entities.EmphasisPause); len(pauseEvents) != 0 {
		t.Errorf("expected no pause emphasis for a 0.7s gap, got %d", len(pauseEvents))
	}
}

func TestDetectEmphasisEmptyInput(t *testing.T) {
	if events := detectEmphasis(nil); events != nil {
		t.Errorf("expected no events, got %v", events)
	}
}
