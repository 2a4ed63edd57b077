package engine

import (
	"go.uber.org/zap"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine/vad"
)

// Engine turns a timed transcript and the decoded audio into a full
// speech analysis: validated pauses, phrase structure, filler words,
// emphasis events, suspicious moments and coaching advice.
//
// The engine is pure and stateless apart from its configuration, so a
// single instance is safe for concurrent use.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Engine {
	return &Engine{cfg: cfg.withDefaults(), logger: logger}
}

// Analyze runs the full pipeline. pcm and regions are optional: with
// no audio the engine keeps every gap as a pause (the transcriber
// already judged them silent), and with no voice-activity regions no
// gap is vetoed.
func (e *Engine) Analyze(t *entities.Transcript, pcm *audio.PCM, regions []vad.Region) *entities.AnalysisResult {
	if t == nil || t.IsEmpty() {
		if e.logger != nil {
			e.logger.Warn("analyze called with empty transcript")
		}
		return &entities.AnalysisResult{
			Pace:   entities.PaceStats{Classification: "insufficient_data"},
			Rhythm: computeRhythm(nil),
			Advice: e.buildAdvice(entities.PaceStats{}, nil, nil, entities.RhythmStats{}),
		}
	}

	words := t.WordTimings
	segments := t.Segments

	gaps := e.wordGaps(words)
	if len(words) == 0 {
		gaps = e.segmentGaps(segments)
	}
	gaps = e.filterNoisyGaps(gaps, pcm, regions, segments)

	pauses := make([]entities.ValidatedPause, 0, len(gaps))
	for _, g := range gaps {
		pauses = append(pauses, e.classifyPause(g))
	}

	fillers := e.detectFillers(words)
	phrases := e.buildPhrases(segments, words, pauses)
	pace := e.computePace(t)
	rhythm := computeRhythm(phrases)

	result := &entities.AnalysisResult{
		Pauses:            pauses,
		Phrases:           phrases,
		Fillers:           fillers,
		EmphasisEvents:    detectEmphasis(words),
		SuspiciousMoments: e.detectMoments(words, pauses, phrases, fillers),
		Pace:              pace,
		Rhythm:            rhythm,
		SpeechRate:        e.computeSpeechRate(words),
		Advice:            e.buildAdvice(pace, fillers, pauses, rhythm),
	}

	if e.logger != nil {
		e.logger.Info("analysis complete",
			zap.Int("pauses", len(result.Pauses)),
			zap.Int("phrases", len(result.Phrases)),
			zap.Int("fillers", len(result.Fillers)),
			zap.Int("suspicious_moments", len(result.SuspiciousMoments)),
			zap.Float64("wpm", pace.WordsPerMinute))
	}
	return result
}
