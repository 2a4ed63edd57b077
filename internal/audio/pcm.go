package audio

// PCM is a mono 16-bit audio buffer addressable by time range.
// Samples hold signed 16-bit values widened to int.
type PCM struct {
	Samples    []int
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (p *PCM) Duration() float64 {
	if p == nil || p.SampleRate <= 0 {
		return 0
	}
	return float64(len(p.Samples)) / float64(p.SampleRate)
}

// index converts a timestamp to a clamped sample index.
func (p *PCM) index(t float64) int {
	i := int(t * float64(p.SampleRate))
	if i < 0 {
		i = 0
	}
	if i > len(p.Samples) {
		i = len(p.Samples)
	}
	return i
}

// Slice returns the samples covering [start, end). The second return
// value is false when the range collapses to nothing, which callers
// treat as "no evidence" rather than an error.
func (p *PCM) Slice(start, end float64) ([]int, bool) {
	if p == nil || p.SampleRate <= 0 || end <= start {
		return nil, false
	}
	lo, hi := p.index(start), p.index(end)
	if hi <= lo {
		return nil, false
	}
	return p.Samples[lo:hi], true
}
