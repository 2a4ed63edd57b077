package engine

// Config holds every threshold the engine uses. It is immutable once
// passed to New, so concurrent runs with different configurations never
// interfere.
type Config struct {
	// MinPauseGap is the smallest timing gap ever considered a pause.
	MinPauseGap float64
	// SilenceFactor scales the median speech RMS into the silence
	// threshold used for noise discrimination.
	SilenceFactor float64
	// LongPauseSec marks a pause as excessive.
	LongPauseSec float64
	// PauseTolerance aligns a pause start with the nearest segment end
	// during phrase segmentation.
	PauseTolerance float64

	// Pause duration bands.
	DramaticFrom float64
	LongFrom     float64
	AwkwardFrom  float64

	// FillerClusterGap is the maximum gap between fillers in a cluster.
	FillerClusterGap float64

	// Comfortable speaking pace band, words per minute.
	MinComfortWPM float64
	MaxComfortWPM float64

	// Sliding speech-rate window parameters, seconds.
	RateWindowSize float64
	RateWindowStep float64
}

// DefaultConfig returns the tuning used in production.
func DefaultConfig() Config {
	return Config{
		MinPauseGap:      0.5,
		SilenceFactor:    0.35,
		LongPauseSec:     2.5,
		PauseTolerance:   0.25,
		DramaticFrom:     1.0,
		LongFrom:         2.5,
		AwkwardFrom:      4.0,
		FillerClusterGap: 2.0,
		MinComfortWPM:    100,
		MaxComfortWPM:    180,
		RateWindowSize:   5.0,
		RateWindowStep:   1.0,
	}
}

// withDefaults fills zero fields so a partially populated Config
// behaves sanely.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MinPauseGap <= 0 {
		c.MinPauseGap = d.MinPauseGap
	}
	if c.SilenceFactor <= 0 {
		c.SilenceFactor = d.SilenceFactor
	}
	if c.LongPauseSec <= 0 {
		c.LongPauseSec = d.LongPauseSec
	}
	if c.PauseTolerance <= 0 {
		c.PauseTolerance = d.PauseTolerance
	}
	if c.DramaticFrom <= 0 {
		c.DramaticFrom = d.DramaticFrom
	}
	if c.LongFrom <= 0 {
		c.LongFrom = d.LongFrom
	}
	if c.AwkwardFrom <= 0 {
		c.AwkwardFrom = d.AwkwardFrom
	}
	if c.FillerClusterGap <= 0 {
		c.FillerClusterGap = d.FillerClusterGap
	}
	if c.MinComfortWPM <= 0 {
		c.MinComfortWPM = d.MinComfortWPM
	}
	if c.MaxComfortWPM <= 0 {
		c.MaxComfortWPM = d.MaxComfortWPM
	}
	if c.RateWindowSize <= 0 {
		c.RateWindowSize = d.RateWindowSize
	}
	if c.RateWindowStep <= 0 {
		c.RateWindowStep = d.RateWindowStep
	}
	return c
}
