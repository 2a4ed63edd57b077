package vad

import (
	"math"
	"sort"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
)

// EnergyDetector is the lightweight fallback detector: a fixed-frame
// energy classifier with hysteresis. It only accepts the sample rates
// the frame classifier was tuned for and silently returns nothing on
// any mismatch.
type EnergyDetector struct {
	FrameMs float64 // frame length, default 30ms
	// Hysteresis factors relative to the median frame RMS: a frame
	// enters speech above EnterFactor and stays in speech until it
	// drops below ExitFactor.
	EnterFactor float64
	ExitFactor  float64
}

// NewEnergyDetector returns a detector with default tuning.
func NewEnergyDetector() *EnergyDetector {
	return &EnergyDetector{
		FrameMs:     30,
		EnterFactor: 1.5,
		ExitFactor:  0.8,
	}
}

func (d *EnergyDetector) Name() string { return "energy" }

var supportedRates = map[int]bool{8000: true, 16000: true, 32000: true, 48000: true}

// DetectRegions classifies fixed frames by RMS with hysteresis and
// merges adjacent speech frames into regions.
func (d *EnergyDetector) DetectRegions(pcm *audio.PCM) []Region {
	if pcm == nil || len(pcm.Samples) == 0 || !supportedRates[pcm.SampleRate] {
		return nil
	}

	frameLen := int(float64(pcm.SampleRate) * d.FrameMs / 1000.0)
	if frameLen <= 0 || len(pcm.Samples) < frameLen {
		return nil
	}

	frameCount := len(pcm.Samples) / frameLen
	energies := make([]float64, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		frame := pcm.Samples[i*frameLen : (i+1)*frameLen]
		energies = append(energies, frameRMS(frame))
	}

	baseline := median(energies)
	if baseline <= 0 {
		return nil
	}
	enter := baseline * d.EnterFactor
	exit := baseline * d.ExitFactor

	frameSec := float64(frameLen) / float64(pcm.SampleRate)
	var regions []Region
	inSpeech := false
	var regionStart float64

	for i, e := range energies {
		t := float64(i) * frameSec
		if !inSpeech && e >= enter {
			inSpeech = true
			regionStart = t
		} else if inSpeech && e < exit {
			inSpeech = false
			regions = append(regions, Region{Start: regionStart, End: t})
		}
	}
	if inSpeech {
		regions = append(regions, Region{Start: regionStart, End: float64(frameCount) * frameSec})
	}

	return mergeRegions(regions, mergeGapSec)
}

func frameRMS(samples []int) float64 {
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

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
