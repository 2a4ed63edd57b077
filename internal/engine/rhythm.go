package engine

import (
	"math"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

const (
	rhythmShortPhraseMax = 8.0
	rhythmLongPhraseMin  = 25.0
	rhythmUniformCVMax   = 0.25
	rhythmModerateCVMax  = 0.6
)

// computePace measures the overall speaking rate over the time actually
// spent speaking, not over wall-clock duration.
func (e *Engine) computePace(t *entities.Transcript) entities.PaceStats {
	totalWords := len(t.WordTimings)
	if totalWords == 0 {
		totalWords = len(splitWords(t.Text))
	}
	speaking := t.SpeakingTime()

	wpm := 0.0
	if speaking > 0 {
		wpm = float64(totalWords) / (speaking / 60.0)
	}

	classification := "comfortable"
	switch {
	case wpm == 0:
		classification = "insufficient_data"
	case wpm < e.cfg.MinComfortWPM:
		classification = "slow"
	case wpm > e.cfg.MaxComfortWPM:
		classification = "fast"
	}

	return entities.PaceStats{
		WordsPerMinute: wpm,
		TotalWords:     totalWords,
		SpeakingTime:   speaking,
		Classification: classification,
	}
}

// computeRhythm characterizes phrase structure: average phrase length
// in words, and how uniform phrase durations are (coefficient of
// variation over phrase durations).
func computeRhythm(phrases []entities.Phrase) entities.RhythmStats {
	stats := entities.RhythmStats{PhraseCount: len(phrases)}
	if len(phrases) < 2 {
		stats.LengthClass = "insufficient_data"
		stats.RhythmVariation = "insufficient_data"
		return stats
	}

	var wordSum float64
	durations := make([]float64, len(phrases))
	for i, ph := range phrases {
		wordSum += float64(ph.WordCount)
		durations[i] = ph.Duration
	}
	stats.AvgWordsPerPhrase = wordSum / float64(len(phrases))

	mean, std := meanStd(durations)
	stats.AvgPhraseDuration = mean
	if mean == 0 {
		stats.LengthClass = "insufficient_data"
		stats.RhythmVariation = "insufficient_data"
		return stats
	}

	switch {
	case stats.AvgWordsPerPhrase < rhythmShortPhraseMax:
		stats.LengthClass = "short_phrases"
	case stats.AvgWordsPerPhrase > rhythmLongPhraseMin:
		stats.LengthClass = "long_phrases"
	default:
		stats.LengthClass = "balanced"
	}

	cv := std / mean
	stats.DurationCV = cv
	switch {
	case cv < rhythmUniformCVMax:
		stats.RhythmVariation = "uniform"
	case cv <= rhythmModerateCVMax:
		stats.RhythmVariation = "moderately_variable"
	default:
		stats.RhythmVariation = "highly_variable"
	}
	return stats
}

// computeSpeechRate samples the local speaking rate with a sliding
// window. Words overlapping a window edge contribute fractionally in
// proportion to the overlapped share of their duration.
func (e *Engine) computeSpeechRate(words []entities.WordTiming) []entities.SpeechRateWindow {
	if len(words) == 0 {
		return nil
	}
	end := words[len(words)-1].End
	size := e.cfg.RateWindowSize
	step := e.cfg.RateWindowStep
	if size <= 0 || step <= 0 {
		return nil
	}

	var windows []entities.SpeechRateWindow
	for start := 0.0; start < end; start += step {
		wEnd := start + size
		var count float64
		for _, w := range words {
			overlap := math.Min(w.End, wEnd) - math.Max(w.Start, start)
			if overlap <= 0 {
				continue
			}
			if d := w.Duration(); d > 0 {
				count += overlap / d
			} else {
				count++
			}
		}
		span := math.Min(wEnd, end) - start
		if span <= 0 {
			continue
		}
		windows = append(windows, entities.SpeechRateWindow{
			Start: start,
			End:   math.Min(wEnd, end),
			WPM:   count / (span / 60.0),
		})
	}
	return windows
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
