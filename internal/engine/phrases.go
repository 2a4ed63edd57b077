package engine

import (
	"sort"
	"strings"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

// phraseBoundary resolves where a pause actually cuts the speech. The
// recognizer's segment ends are more reliable than raw gap edges, so
// the nearest segment end within the tolerance wins over the gap start.
func (e *Engine) phraseBoundary(pauseStart float64, segments []entities.TranscriptSegment) float64 {
	boundary := pauseStart
	best := e.cfg.PauseTolerance
	for _, s := range segments {
		d := s.End - pauseStart
		if d < 0 {
			d = -d
		}
		if d <= best {
			best = d
			boundary = s.End
		}
	}
	return boundary
}

// buildPhrases partitions the speech timeline into phrases separated by
// validated pauses. Every spoken word falls into exactly one phrase;
// phrases that end up with no words or no duration are dropped.
func (e *Engine) buildPhrases(
	segments []entities.TranscriptSegment,
	words []entities.WordTiming,
	pauses []entities.ValidatedPause,
) []entities.Phrase {
	if len(words) == 0 {
		return e.phrasesFromSegments(segments, pauses)
	}

	cuts := make([][2]float64, 0, len(pauses))
	for _, p := range pauses {
		cuts = append(cuts, [2]float64{e.phraseBoundary(p.Start, segments), p.End})
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i][0] < cuts[j][0] })

	start := words[0].Start
	end := words[len(words)-1].End

	var phrases []entities.Phrase
	cur := start
	for _, c := range cuts {
		if c[0] <= cur {
			if c[1] > cur {
				cur = c[1]
			}
			continue
		}
		if ph, ok := e.makePhrase(cur, c[0], words, pauses); ok {
			phrases = append(phrases, ph)
		}
		cur = c[1]
	}
	if ph, ok := e.makePhrase(cur, end, words, pauses); ok {
		phrases = append(phrases, ph)
	}
	return phrases
}

func (e *Engine) makePhrase(start, end float64, words []entities.WordTiming, pauses []entities.ValidatedPause) (entities.Phrase, bool) {
	if end <= start {
		return entities.Phrase{}, false
	}

	var texts []string
	for _, w := range words {
		if w.Start >= start && w.Start < end {
			texts = append(texts, w.Text)
		}
	}
	if len(texts) == 0 {
		return entities.Phrase{}, false
	}

	var inCount int
	var inTotal float64
	for _, p := range pauses {
		if p.Start >= start && p.End <= end {
			inCount++
			inTotal += p.Duration
		}
	}
	avgPause := 0.0
	if inCount > 0 {
		avgPause = inTotal / float64(inCount)
	}

	return entities.Phrase{
		Start:            start,
		End:              end,
		Duration:         end - start,
		WordCount:        len(texts),
		Text:             strings.Join(texts, " "),
		PauseCount:       inCount,
		AvgPauseDuration: avgPause,
	}, true
}

// phrasesFromSegments degrades gracefully when the transcript carries
// no word-level timing: the segment sequence is partitioned at
// validated pause boundaries, so adjacent segments with no pause
// between them stay in one phrase.
func (e *Engine) phrasesFromSegments(segments []entities.TranscriptSegment, pauses []entities.ValidatedPause) []entities.Phrase {
	cutAfter := make(map[int]bool, len(pauses))
	for _, p := range pauses {
		idx := -1
		for i, s := range segments {
			if s.End <= p.Start+e.cfg.PauseTolerance {
				idx = i
			}
		}
		if idx >= 0 {
			cutAfter[idx] = true
		}
	}

	var phrases []entities.Phrase
	var group []entities.TranscriptSegment
	flush := func() {
		if len(group) == 0 {
			return
		}
		start, end := group[0].Start, group[len(group)-1].End
		var texts []string
		wordCount := 0
		for _, s := range group {
			wordCount += len(splitWords(s.Text))
			if s.Text != "" {
				texts = append(texts, s.Text)
			}
		}
		group = group[:0]
		if wordCount == 0 || end <= start {
			return
		}

		var inCount int
		var inTotal float64
		for _, p := range pauses {
			if p.Start >= start && p.End <= end {
				inCount++
				inTotal += p.Duration
			}
		}
		avgPause := 0.0
		if inCount > 0 {
			avgPause = inTotal / float64(inCount)
		}

		phrases = append(phrases, entities.Phrase{
			Start:            start,
			End:              end,
			Duration:         end - start,
			WordCount:        wordCount,
			Text:             strings.Join(texts, " "),
			PauseCount:       inCount,
			AvgPauseDuration: avgPause,
		})
	}

	for i, s := range segments {
		group = append(group, s)
		if cutAfter[i] {
			flush()
		}
	}
	flush()
	return phrases
}

// phraseWPM is the speaking rate inside one phrase, with pause time
// inside the phrase excluded from the denominator.
func phraseWPM(ph entities.Phrase) float64 {
	speaking := ph.Duration - float64(ph.PauseCount)*ph.AvgPauseDuration
	if speaking <= 0 {
		return 0
	}
	return float64(ph.WordCount) / (speaking / 60.0)
}
