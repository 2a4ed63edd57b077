package vad

import (
	"go.uber.org/zap"

	"github.com/streamer45/silero-vad-go/speech"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
)

// SileroDetector wraps the Silero ONNX model as the high-accuracy
// first element of the fallback chain. It is only constructed when a
// model path is configured; every failure is swallowed so the chain
// can fall through to the next detector.
type SileroDetector struct {
	modelPath string
	threshold float64
	logger    *zap.Logger
}

// NewSileroDetector returns nil when no model path is configured,
// which NewChain then skips.
func NewSileroDetector(modelPath string, threshold float64, logger *zap.Logger) *SileroDetector {
	if modelPath == "" {
		return nil
	}
	if threshold <= 0 || threshold >= 1 {
		threshold = 0.5
	}
	return &SileroDetector{modelPath: modelPath, threshold: threshold, logger: logger}
}

func (d *SileroDetector) Name() string { return "silero" }

// DetectRegions runs the model over the buffer. The model expects
// 16kHz mono; other rates yield no evidence.
func (d *SileroDetector) DetectRegions(pcm *audio.PCM) []Region {
	if d == nil || pcm == nil || len(pcm.Samples) == 0 || pcm.SampleRate != 16000 {
		return nil
	}

	sd, err := speech.NewDetector(speech.DetectorConfig{
		ModelPath:            d.modelPath,
		SampleRate:           pcm.SampleRate,
		Threshold:            float32(d.threshold),
		MinSilenceDurationMs: 100,
		SpeechPadMs:          30,
	})
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("silero detector unavailable", zap.Error(err))
		}
		return nil
	}
	defer sd.Destroy()

	samples := make([]float32, len(pcm.Samples))
	for i, s := range pcm.Samples {
		samples[i] = float32(s) / 32768.0
	}

	segments, err := sd.Detect(samples)
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("silero detection failed", zap.Error(err))
		}
		return nil
	}

	regions := make([]Region, 0, len(segments))
	for _, seg := range segments {
		regions = append(regions, Region{Start: seg.SpeechStartAt, End: seg.SpeechEndAt})
	}
	return mergeRegions(regions, mergeGapSec)
}
