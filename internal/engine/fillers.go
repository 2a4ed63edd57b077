package engine

import (
	"strings"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

const contextWindowWords = 3

// detectFillers scans word timings for lexicon matches. Multi-word
// constructions are tried before single words so that "вот этот вот"
// is not shadowed by "вот". Every filler carries up to three words of
// context on each side for downstream contextual judgment.
func (e *Engine) detectFillers(words []entities.WordTiming) []entities.FillerWord {
	if len(words) == 0 {
		return nil
	}

	norm := make([]string, len(words))
	for i, w := range words {
		norm[i] = normalizeWord(w.Text)
	}

	var fillers []entities.FillerWord
	for i := 0; i < len(words); i++ {
		canonical, span, ok := matchFillerPhrase(norm[i:])
		if !ok {
			if canonical, ok = matchFiller(words[i].Text); !ok {
				continue
			}
			span = 1
		}

		last := i + span - 1
		exact := joinWordTexts(words[i : last+1])
		f := entities.FillerWord{
			CanonicalForm: canonical,
			ExactText:     exact,
			Timestamp:     words[i].Start,
			Duration:      words[last].End - words[i].Start,
			Confidence:    minWordConfidence(words[i : last+1]),
			ContextBefore: wordTextSlice(words[maxInt(0, i-contextWindowWords):i]),
			ContextAfter:  wordTextSlice(words[last+1 : minInt(len(words), last+1+contextWindowWords)]),
		}
		fillers = append(fillers, f)
		i = last
	}
	return fillers
}

func wordTextSlice(words []entities.WordTiming) []string {
	if len(words) == 0 {
		return nil
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return parts
}

func joinWordTexts(words []entities.WordTiming) string {
	return strings.Join(wordTextSlice(words), " ")
}

func minWordConfidence(words []entities.WordTiming) float64 {
	if len(words) == 0 {
		return 0
	}
	conf := words[0].Confidence
	for _, w := range words[1:] {
		if w.Confidence < conf {
			conf = w.Confidence
		}
	}
	return conf
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
