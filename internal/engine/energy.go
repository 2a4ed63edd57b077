package engine

import (
	"math"
	"sort"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

// minSegmentForRMS is the shortest segment worth measuring: shorter
// slices produce unstable RMS values.
const minSegmentForRMS = 0.2

// fallbackWindowSec is the window used for the whole-file baseline when
// no segment yields a usable RMS.
const fallbackWindowSec = 0.1

func rms(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// typicalSpeechRMS estimates "typical speech loudness" as the median of
// per-segment RMS values. When segments are all too short, it falls
// back to fixed windows across the whole file. Returns 0 when no
// estimate is possible.
func typicalSpeechRMS(pcm *audio.PCM, segments []entities.TranscriptSegment) float64 {
	if pcm == nil {
		return 0
	}

	var values []float64
	for _, seg := range segments {
		if seg.Duration() < minSegmentForRMS {
			continue
		}
		if samples, ok := pcm.Slice(seg.Start, seg.End); ok {
			values = append(values, rms(samples))
		}
	}

	if len(values) == 0 {
		values = windowedRMS(pcm, fallbackWindowSec)
	}
	if len(values) == 0 {
		return 0
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// windowedRMS computes RMS over fixed windows across the whole buffer.
func windowedRMS(pcm *audio.PCM, windowSec float64) []float64 {
	if pcm == nil || pcm.SampleRate <= 0 {
		return nil
	}
	windowLen := int(windowSec * float64(pcm.SampleRate))
	if windowLen <= 0 {
		return nil
	}

	var values []float64
	for i := 0; i+windowLen <= len(pcm.Samples); i += windowLen {
		values = append(values, rms(pcm.Samples[i:i+windowLen]))
	}
	return values
}
