package vad

import (
	"sort"

	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
)

// Region is a time range labeled as containing speech.
type Region struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Detector yields best-effort speech regions for a PCM buffer.
// Implementations swallow their own failures and return nil; nil means
// "no evidence", never an error.
type Detector interface {
	Name() string
	DetectRegions(pcm *audio.PCM) []Region
}

// mergeGapSec joins detected regions separated by tiny gaps.
const mergeGapSec = 0.05

// Chain tries detectors in order and returns the first non-empty
// result. Any subset of detectors may be absent; an empty chain means
// no VAD evidence at all.
type Chain struct {
	detectors []Detector
}

// NewChain builds a detection cascade. Nil detectors are skipped.
func NewChain(detectors ...Detector) *Chain {
	c := &Chain{}
	for _, d := range detectors {
		if d != nil {
			c.detectors = append(c.detectors, d)
		}
	}
	return c
}

// DetectRegions runs the cascade over the buffer.
func (c *Chain) DetectRegions(pcm *audio.PCM) []Region {
	if c == nil || pcm == nil {
		return nil
	}
	for _, d := range c.detectors {
		if regions := d.DetectRegions(pcm); len(regions) > 0 {
			return regions
		}
	}
	return nil
}

// AnyOverlap reports whether any region intersects [start, end].
// Partial overlap counts: a gap touched by speech is not a pause.
func AnyOverlap(regions []Region, start, end float64) bool {
	for _, r := range regions {
		if r.Start < end && r.End > start {
			return true
		}
	}
	return false
}

// mergeRegions sorts regions and joins those whose gap is below maxGap.
func mergeRegions(regions []Region, maxGap float64) []Region {
	if len(regions) == 0 {
		return nil
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })

	merged := []Region{regions[0]}
	for _, r := range regions[1:] {
		last := &merged[len(merged)-1]
		if r.Start-last.End <= maxGap {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
