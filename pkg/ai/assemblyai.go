package ai

import (
	"context"
	"fmt"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

// Transcriber wraps the AssemblyAI SDK and maps its word-level output
// onto the domain transcript model.
type Transcriber struct {
	client   *aai.Client
	language string
	logger   *zap.Logger
}

func NewTranscriber(cfg config.TranscriptionConfig, logger *zap.Logger) *Transcriber {
	return &Transcriber{
		client:   aai.NewClient(cfg.AssemblyAIAPIKey),
		language: cfg.LanguageCode,
		logger:   logger,
	}
}

// Transcribe submits an audio URL and blocks until the transcript is
// ready. Word timestamps arrive in milliseconds and are converted to
// seconds.
func (t *Transcriber) Transcribe(ctx context.Context, audioURL string) (*entities.Transcript, error) {
	params := &aai.TranscriptOptionalParams{
		Punctuate: aai.Bool(true),
	}
	if t.language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(t.language)
	}

	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcription failed: %s", msg)
	}

	result := &entities.Transcript{Language: t.language}
	if transcript.Text != nil {
		result.Text = *transcript.Text
	}
	if transcript.LanguageCode != "" {
		result.Language = string(transcript.LanguageCode)
	}

	for _, w := range transcript.Words {
		wt := entities.WordTiming{}
		if w.Text != nil {
			wt.Text = *w.Text
		}
		if w.Start != nil {
			wt.Start = float64(*w.Start) / 1000.0
		}
		if w.End != nil {
			wt.End = float64(*w.End) / 1000.0
		}
		if w.Confidence != nil {
			wt.Confidence = *w.Confidence
		}
		result.WordTimings = append(result.WordTimings, wt)
	}

	for _, u := range transcript.Utterances {
		seg := entities.TranscriptSegment{}
		if u.Text != nil {
			seg.Text = *u.Text
		}
		if u.Start != nil {
			seg.Start = float64(*u.Start) / 1000.0
		}
		if u.End != nil {
			seg.End = float64(*u.End) / 1000.0
		}
		result.Segments = append(result.Segments, seg)
	}
	if len(result.Segments) == 0 && len(result.WordTimings) > 0 {
		first := result.WordTimings[0]
		last := result.WordTimings[len(result.WordTimings)-1]
		result.Segments = []entities.TranscriptSegment{{
			Start: first.Start,
			End:   last.End,
			Text:  result.Text,
		}}
	}

	if t.logger != nil {
		t.logger.Info("transcription complete",
			zap.Int("words", len(result.WordTimings)),
			zap.Int("segments", len(result.Segments)),
			zap.String("language", result.Language))
	}
	return result, nil
}
