package entities

// WordTiming represents a single recognized word with time alignment.
// Produced by the external transcriber; immutable once created.
type WordTiming struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Duration returns the word duration in seconds, clamped to zero
// when the transcriber emits end < start.
func (w WordTiming) Duration() float64 {
	if d := w.End - w.Start; d > 0 {
		return d
	}
	return 0
}

// TranscriptSegment is a contiguous unit of recognized speech.
// Segments are non-overlapping and ordered by start time.
type TranscriptSegment struct {
	Start float64      `json:"start"`
	End   float64      `json:"end"`
	Text  string       `json:"text"`
	Words []WordTiming `json:"words,omitempty"`
}

// Duration returns the segment duration in seconds, clamped to zero.
func (s TranscriptSegment) Duration() float64 {
	if d := s.End - s.Start; d > 0 {
		return d
	}
	return 0
}

// Transcript is the time-aligned transcription of a single recording.
// WordTimings may be empty when the transcriber provides only
// segment-level alignment; Segments may be empty for silent input.
type Transcript struct {
	Text        string              `json:"text"`
	Language    string              `json:"language,omitempty"`
	Segments    []TranscriptSegment `json:"segments"`
	WordTimings []WordTiming        `json:"word_timings"`
}

// IsEmpty reports whether the transcript carries no recognized speech.
func (t *Transcript) IsEmpty() bool {
	return t == nil || len(t.Segments) == 0
}

// SpeakingTime returns cumulative segment duration in seconds,
// excluding the silence between segments.
func (t *Transcript) SpeakingTime() float64 {
	if t == nil {
		return 0
	}
	var total float64
	for _, seg := range t.Segments {
		total += seg.Duration()
	}
	return total
}
