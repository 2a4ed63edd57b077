package vad

import (
	"testing"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
)

// noisyPCM builds a quiet-noise buffer with one loud burst.
func noisyPCM(rate int, durationSec float64, burst [2]float64) *audio.PCM {
	samples := make([]int, int(durationSec*float64(rate)))
	for i := range samples {
		samples[i] = 100
	}
	lo := int(burst[0] * float64(rate))
	hi := int(burst[1] * float64(rate))
	for i := lo; i < hi && i < len(samples); i++ {
		samples[i] = 8000
	}
	return &audio.PCM{Samples: samples, SampleRate: rate}
}

func TestEnergyDetectorFindsBurst(t *testing.T) {
	d := NewEnergyDetector()
	pcm := noisyPCM(8000, 3.0, [2]float64{2.0, 2.5})

	regions := d.DetectRegions(pcm)
	if len(regions) == 0 {
		t.Fatal("expected at least one speech region")
	}
	if !AnyOverlap(regions, 2.1, 2.4) {
		t.Errorf("burst not covered: %v", regions)
	}
	if AnyOverlap(regions, 0.5, 1.0) {
		t.Errorf("quiet section misdetected: %v", regions)
	}
}

func TestEnergyDetectorUnsupportedRate(t *testing.T) {
	d := NewEnergyDetector()
	pcm := noisyPCM(11025, 1.0, [2]float64{0.2, 0.4})
	if regions := d.DetectRegions(pcm); regions != nil {
		t.Errorf("unsupported rate must yield nil, got %v", regions)
	}
}

func TestEnergyDetectorEmptyInput(t *testing.T) {
	d := NewEnergyDetector()
	if regions := d.DetectRegions(nil); regions != nil {
		t.Errorf("nil buffer must yield nil, got %v", regions)
	}
	if regions := d.DetectRegions(&audio.PCM{SampleRate: 16000}); regions != nil {
		t.Errorf("empty buffer must yield nil, got %v", regions)
	}
}

func TestAnyOverlap(t *testing.T) {
	regions := []Region{{Start: 1.0, End: 2.0}}

	cases := []struct {
		start, end float64
		want       bool
	}{
		{0, 0.5, false},
		{0.5, 1.5, true}, // partial overlap counts
		{1.2, 1.8, true},
		{2.0, 3.0, false}, // touching is not overlapping
	}
	for _, tc := range cases {
		if got := AnyOverlap(regions, tc.start, tc.end); got != tc.want {
			t.Errorf("AnyOverlap([%v, %v]) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestMergeRegions(t *testing.T) {
	regions := []Region{
		{Start: 1.0, End: 2.0},
		{Start: 2.03, End: 3.0}, // gap below merge threshold
		{Start: 5.0, End: 6.0},
	}

	merged := mergeRegions(regions, mergeGapSec)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged regions, got %d: %v", len(merged), merged)
	}
	if merged[0].Start != 1.0 || merged[0].End != 3.0 {
		t.Errorf("merged region: %+v", merged[0])
	}
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	empty := stubDetector{}
	full := stubDetector{regions: []Region{{Start: 0, End: 1}}}

	chain := NewChain(empty, full)
	pcm := &audio.PCM{Samples: []int{1, 2, 3}, SampleRate: 16000}
	regions := chain.DetectRegions(pcm)
	if len(regions) != 1 {
		t.Fatalf("expected fallback detector result, got %v", regions)
	}
}

func TestChainSkipsNilDetectors(t *testing.T) {
	chain := NewChain(nil, stubDetector{})
	pcm := &audio.PCM{Samples: []int{1, 2, 3}, SampleRate: 16000}
	if regions := chain.DetectRegions(pcm); regions != nil {
		t.Errorf("empty cascade must yield nil, got %v", regions)
	}
}

type stubDetector struct {
	regions []Region
}

func (s stubDetector) Name() string { return "stub" }

func (s stubDetector) DetectRegions(*audio.PCM) []Region { return s.regions }
