package engine

import "testing"

func TestMatchFillerSingleWords(t *testing.T) {
	cases := []struct {
		word      string
		canonical string
		match     bool
	}{
		{"ну", "ну", true},
		{"Ну", "ну", true},
		{"э-э", "э-э", true},
		{"эээ", "э-э", true},
		{"вот", "вот", true},
		{"типа", "типа", true},
		{"короче", "короче", true},
		{"uh", "uh", true},
		{"uhh", "uh", true},
		{"Like,", "like", true},
		{"basically", "basically", true},
		{"привет", "", false},
		{"speech", "", false},
	}

	for _, tc := range cases {
		got, ok := matchFiller(tc.word)
		if ok != tc.match {
			t.Errorf("matchFiller(%q): match=%v, want %v", tc.word, ok, tc.match)
			continue
		}
		if ok && got != tc.canonical {
			t.Errorf("matchFiller(%q) = %q, want %q", tc.word, got, tc.canonical)
		}
	}
}

func TestMatchFillerPhrase(t *testing.T) {
	canonical, span, ok := matchFillerPhrase([]string{"как", "бы", "сказал"})
	if !ok || canonical != "как бы" || span != 2 {
		t.Fatalf("expected (как бы, 2), got (%q, %d, %v)", canonical, span, ok)
	}

	canonical, span, ok = matchFillerPhrase([]string{"вот", "этот", "вот"})
	if !ok || canonical != "вот этот вот" || span != 3 {
		t.Fatalf("expected (вот этот вот, 3), got (%q, %d, %v)", canonical, span, ok)
	}

	if _, _, ok := matchFillerPhrase([]string{"доброе", "утро"}); ok {
		t.Error("unexpected phrase match for ordinary words")
	}
}

func TestNormalizeWord(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Привет!", "привет"},
		{"ну,", "ну"},
		{"эээ", "ээ"},
		{"вообще-то", "вообще то"},
		{"'okay'", "okay"},
		{"soooo", "soo"},
	}
	for _, tc := range cases {
		if got := normalizeWord(tc.in); got != tc.want {
			t.Errorf("normalizeWord(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsAmbiguousFiller(t *testing.T) {
	if !IsAmbiguousFiller("ну") {
		t.Error("ну must require contextual judgment")
	}
	if !IsAmbiguousFiller("как бы") {
		t.Error("как бы must require contextual judgment")
	}
	if IsAmbiguousFiller("э-э") {
		t.Error("э-э is never a legitimate word")
	}
	if IsAmbiguousFiller("uh") {
		t.Error("uh is never a legitimate word")
	}
}

func TestIsHesitationWord(t *testing.T) {
	for _, w := range []string{"э", "ээ", "ааа", "мм", "ммм", "гм"} {
		if !isHesitationWord(w) {
			t.Errorf("%q should be a hesitation sound", w)
		}
	}
	for _, w := range []string{"анализ", "мама", "гром", "эхо"} {
		if isHesitationWord(w) {
			t.Errorf("%q should not be a hesitation sound", w)
		}
	}
}

func TestSplitWords(t *testing.T) {
	got := splitWords("Всем привет! Ну, начнём: раз-два.")
	want := []string{"всем", "привет", "ну", "начнём", "раз", "два"}
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
