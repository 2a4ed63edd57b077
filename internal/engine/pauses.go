package engine

import (
	"math"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine/vad"
)

// rawGap is a candidate pause between two adjacent timed units.
// Ephemeral; discarded after classification.
type rawGap struct {
	start      float64
	end        float64
	duration   float64
	beforeWord string
	afterWord  string
}

// segmentGaps extracts candidate pauses between consecutive segments.
// Gaps below the minimum threshold are never considered pauses.
func (e *Engine) segmentGaps(segments []entities.TranscriptSegment) []rawGap {
	var gaps []rawGap
	for i := 1; i < len(segments); i++ {
		gap := segments[i].Start - segments[i-1].End
		if gap >= e.cfg.MinPauseGap {
			gaps = append(gaps, rawGap{
				start:    segments[i-1].End,
				end:      segments[i].Start,
				duration: gap,
			})
		}
	}
	return gaps
}

// wordGaps extracts candidate pauses between consecutive words,
// carrying the surrounding words for downstream hesitation analysis.
func (e *Engine) wordGaps(words []entities.WordTiming) []rawGap {
	var gaps []rawGap
	for i := 1; i < len(words); i++ {
		gap := words[i].Start - words[i-1].End
		if gap >= e.cfg.MinPauseGap {
			gaps = append(gaps, rawGap{
				start:      words[i-1].End,
				end:        words[i].Start,
				duration:   gap,
				beforeWord: words[i-1].Text,
				afterWord:  words[i].Text,
			})
		}
	}
	return gaps
}

// filterNoisyGaps keeps only gaps that represent genuine silence.
//
// With audio available, a gap survives when no VAD region overlaps it
// AND its own RMS is below silenceFactor times the typical speech RMS.
// Without audio (or without a usable loudness baseline), VAD regions
// alone veto gaps; without any evidence at all the gaps are returned
// unfiltered.
func (e *Engine) filterNoisyGaps(gaps []rawGap, pcm *audio.PCM, regions []vad.Region, segments []entities.TranscriptSegment) []rawGap {
	if len(gaps) == 0 {
		return gaps
	}

	if pcm != nil {
		if typical := typicalSpeechRMS(pcm, segments); typical > 0 {
			return e.filterWithThreshold(gaps, pcm, regions, typical*e.cfg.SilenceFactor)
		}
	}

	if len(regions) == 0 {
		return gaps
	}
	kept := make([]rawGap, 0, len(gaps))
	for _, g := range gaps {
		if !vad.AnyOverlap(regions, g.start, g.end) {
			kept = append(kept, g)
		}
	}
	return kept
}

func (e *Engine) filterWithThreshold(gaps []rawGap, pcm *audio.PCM, regions []vad.Region, threshold float64) []rawGap {
	kept := make([]rawGap, 0, len(gaps))
	for _, g := range gaps {
		if vad.AnyOverlap(regions, g.start, g.end) {
			continue
		}
		samples, ok := pcm.Slice(g.start, g.end)
		if !ok {
			// Gap window out of range; drop rather than guess.
			continue
		}
		if rms(samples) < threshold {
			kept = append(kept, g)
		}
	}
	return kept
}

// classifyPause turns an accepted gap into a typed pause.
func (e *Engine) classifyPause(g rawGap) entities.ValidatedPause {
	duration := g.duration
	if duration < 0 {
		duration = 0
	}

	var pauseType entities.PauseType
	switch {
	case duration < e.cfg.DramaticFrom:
		pauseType = entities.PauseTypeNatural
	case duration < e.cfg.LongFrom:
		pauseType = entities.PauseTypeDramatic
	case duration < e.cfg.AwkwardFrom:
		pauseType = entities.PauseTypeLong
	default:
		pauseType = entities.PauseTypeAwkward
	}

	return entities.ValidatedPause{
		Start:       g.start,
		End:         g.end,
		Duration:    duration,
		Type:        pauseType,
		Intensity:   math.Min(duration/3.0, 1.0),
		IsExcessive: duration > e.cfg.LongPauseSec,
		BeforeWord:  g.beforeWord,
		AfterWord:   g.afterWord,
	}
}
