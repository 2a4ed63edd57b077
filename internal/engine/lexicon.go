package engine

import (
	"regexp"
	"strings"
)

// fillerPattern binds a canonical filler form to the pattern that
// recognizes it. Span is the number of words the pattern covers;
// multi-word fillers are matched against normalized n-grams.
type fillerPattern struct {
	canonical string
	re        *regexp.Regexp
	span      int
}

func newFillerPattern(canonical, pattern string) fillerPattern {
	return fillerPattern{
		canonical: canonical,
		re:        regexp.MustCompile("(?i)^(?:" + pattern + ")$"),
		span:      strings.Count(canonical, " ") + 1,
	}
}

// fillerLexicon is the ordered filler vocabulary, Russian first, then
// English. Order matters: the first matching pattern wins, so sounds
// precede constructions within each language.
var fillerLexicon = []fillerPattern{
	// Russian: hesitation sounds and short particles
	newFillerPattern("э-э", `э+([- ]э+)*`),
	newFillerPattern("ну", `ну`),
	newFillerPattern("вот", `вот`),

	// Russian: constructions and parenthetical words
	newFillerPattern("как бы", `как бы`),
	newFillerPattern("типа", `типа`),
	newFillerPattern("то есть", `то есть`),
	newFillerPattern("значит", `значит`),
	newFillerPattern("получается", `получается`),
	newFillerPattern("собственно", `собственно`),
	newFillerPattern("вообще-то", `вообще[- ]то`),
	newFillerPattern("как сказать", `как сказать`),
	newFillerPattern("в общем", `в общем`),
	newFillerPattern("короче", `короче`),
	newFillerPattern("скажем так", `скажем так`),
	newFillerPattern("так сказать", `так сказать`),
	newFillerPattern("это самое", `это самое`),
	newFillerPattern("как его", `как его`),
	newFillerPattern("вот этот вот", `вот этот вот`),

	// English: hesitation sounds
	newFillerPattern("uh", `uh+`),
	newFillerPattern("um", `um+`),
	newFillerPattern("er", `er+`),
	newFillerPattern("ah", `ah+`),

	// English: parenthetical words and constructions
	newFillerPattern("like", `like`),
	newFillerPattern("so", `so`),
	newFillerPattern("well", `well`),
	newFillerPattern("right", `right`),
	newFillerPattern("you know", `you know`),
	newFillerPattern("i mean", `i mean`),
	newFillerPattern("kind of", `kind of`),
	newFillerPattern("sort of", `sort of`),
	newFillerPattern("you see", `you see`),
	newFillerPattern("basically", `basically`),
	newFillerPattern("actually", `actually`),
	newFillerPattern("literally", `literally`),
	newFillerPattern("okay", `okay`),
	newFillerPattern("ok", `ok`),
	newFillerPattern("alright", `alright`),
}

// ambiguousFillers is the closed set of canonical forms that coincide
// with legitimate words (demonstratives, confirmations) and therefore
// require contextual judgment before being counted as fillers.
var ambiguousFillers = map[string]bool{
	"там": true, "да": true, "вот": true, "ну": true,
	"как бы": true, "типа": true, "значит": true, "вроде": true,
	"в общем": true, "кстати": true, "собственно": true,
	"то есть": true, "наверное": true, "кажется": true,
	"по сути": true, "всё-таки": true, "прямо": true,
}

// IsAmbiguousFiller reports whether the canonical form needs contextual
// judgment; unambiguous forms are treated as certain fillers.
func IsAmbiguousFiller(canonical string) bool {
	return ambiguousFillers[canonical]
}

// hesitationRe recognizes pure hesitation sounds.
var hesitationRe = regexp.MustCompile(`^(э+|а+|мм+|гм+)$`)

func isHesitationWord(word string) bool {
	return hesitationRe.MatchString(strings.ToLower(word))
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// splitWords tokenizes text into case-folded words of Unicode letters
// and digits.
func splitWords(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

const strippedPunct = ",.!?;:()\"'"

// normalizeWord prepares a word for lexicon matching: case fold, strip
// surrounding punctuation, collapse runs of 3+ identical characters to
// 2 and replace hyphens with spaces.
func normalizeWord(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	w = strings.Trim(w, strippedPunct)
	w = collapseRepeats(w)
	return strings.ReplaceAll(w, "-", " ")
}

// collapseRepeats shortens any run of 3 or more identical runes to 2.
func collapseRepeats(s string) string {
	var b strings.Builder
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// matchFiller tests a single word (raw and normalized forms) against
// the single-word lexicon entries in priority order. The first match
// wins; a word yields at most one canonical form.
func matchFiller(word string) (string, bool) {
	raw := strings.ToLower(strings.TrimSpace(word))
	norm := normalizeWord(word)
	for _, p := range fillerLexicon {
		if p.span != 1 {
			continue
		}
		if p.re.MatchString(raw) || p.re.MatchString(norm) {
			return p.canonical, true
		}
	}
	return "", false
}

// matchFillerPhrase tests a normalized n-gram against the multi-word
// lexicon entries. Returns the canonical form and the span consumed.
func matchFillerPhrase(normWords []string) (string, int, bool) {
	for _, p := range fillerLexicon {
		if p.span < 2 || p.span > len(normWords) {
			continue
		}
		phrase := strings.Join(normWords[:p.span], " ")
		if p.re.MatchString(phrase) {
			return p.canonical, p.span, true
		}
	}
	return "", 0, false
}
