package ai

import "testing"

func TestExtractJSONPlainArray(t *testing.T) {
	content := `[{"index": 0, "is_filler": true}]`
	if got := extractJSON(content); got != content {
		t.Errorf("extractJSON = %q, want %q", got, content)
	}
}

func TestExtractJSONStripsFences(t *testing.T) {
	content := "Вот ответ:\n```json\n[{\"index\": 0}]\n```\nНадеюсь, помог."
	want := `[{"index": 0}]`
	if got := extractJSON(content); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSONTrimsSurroundingProse(t *testing.T) {
	content := `Результат: {"index": 1, "is_filler": false} — готово.`
	want := `{"index": 1, "is_filler": false}`
	if got := extractJSON(content); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

func TestParseVerdictsArray(t *testing.T) {
	content := `[
		{"index": 0, "is_filler": true, "confidence": 0.9, "reason": "хезитация", "suggestion": "пауза"},
		{"index": 1, "is_filler": false, "confidence": 0.8, "reason": "указательное значение", "suggestion": ""}
	]`

	verdicts, err := ParseVerdicts(content)
	if err != nil {
		t.Fatalf("ParseVerdicts: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("got %d verdicts, want 2", len(verdicts))
	}
	if !verdicts[0].IsFiller || verdicts[0].Confidence != 0.9 {
		t.Errorf("verdict 0: %+v", verdicts[0])
	}
	if verdicts[1].IsFiller || verdicts[1].Index != 1 {
		t.Errorf("verdict 1: %+v", verdicts[1])
	}
}

func TestParseVerdictsSingleObject(t *testing.T) {
	verdicts, err := ParseVerdicts(`{"index": 0, "is_filler": true, "confidence": 0.7}`)
	if err != nil {
		t.Fatalf("ParseVerdicts: %v", err)
	}
	if len(verdicts) != 1 || !verdicts[0].IsFiller {
		t.Errorf("verdicts = %+v", verdicts)
	}
}

func TestParseVerdictsGarbage(t *testing.T) {
	if _, err := ParseVerdicts("извините, не могу ответить"); err == nil {
		t.Fatal("expected an error for non-JSON content")
	}
}
