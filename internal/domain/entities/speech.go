package entities

// PauseType classifies a validated pause by duration band.
type PauseType string

const (
	PauseTypeNatural    PauseType = "natural"
	PauseTypeDramatic   PauseType = "dramatic"
	PauseTypeLong       PauseType = "long"
	PauseTypeAwkward    PauseType = "awkward"
	PauseTypeHesitation PauseType = "hesitation"
)

// ValidatedPause is a timing gap that survived noise discrimination.
// BeforeWord/AfterWord are set only for word-level pauses.
type ValidatedPause struct {
	Start       float64   `json:"start"`
	End         float64   `json:"end"`
	Duration    float64   `json:"duration"`
	Type        PauseType `json:"type"`
	Intensity   float64   `json:"intensity,omitempty"`
	IsExcessive bool      `json:"is_excessive"`
	BeforeWord  string    `json:"before_word,omitempty"`
	AfterWord   string    `json:"after_word,omitempty"`
}

// Phrase is a rhythm unit built by partitioning segments at validated
// pause boundaries. Retained phrases always have WordCount > 0 and
// Duration > 0.
type Phrase struct {
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Duration         float64 `json:"duration"`
	WordCount        int     `json:"word_count"`
	Text             string  `json:"text"`
	PauseCount       int     `json:"pause_count"`
	AvgPauseDuration float64 `json:"avg_pause_duration"`
}

// FillerWord is a lexical filler match, optionally refined by the
// contextual classifier. IsContextFiller being nil means the candidate
// was never submitted for contextual judgment, not that it is clean.
type FillerWord struct {
	CanonicalForm   string   `json:"canonical_form"`
	ExactText       string   `json:"exact_text"`
	Timestamp       float64  `json:"timestamp"`
	Duration        float64  `json:"duration"`
	Confidence      float64  `json:"confidence,omitempty"`
	ContextBefore   []string `json:"context_before,omitempty"`
	ContextAfter    []string `json:"context_after,omitempty"`
	IsContextFiller *bool    `json:"is_context_filler,omitempty"`
	ContextScore    float64  `json:"context_score,omitempty"`
	ContextReason   string   `json:"context_reason,omitempty"`
	Suggestion      string   `json:"suggestion,omitempty"`
}

// EmphasisType names the heuristic that flagged a word as emphasized.
type EmphasisType string

const (
	EmphasisDuration   EmphasisType = "duration"
	EmphasisRepetition EmphasisType = "repetition"
	EmphasisContent    EmphasisType = "content"
	EmphasisPause      EmphasisType = "pause"
	EmphasisSpeed      EmphasisType = "speed"
)

// EmphasisEvent marks a word the speaker stressed. Multiple independent
// heuristics may fire on the same word, one event per heuristic.
type EmphasisEvent struct {
	Timestamp   float64      `json:"timestamp"`
	Word        string       `json:"word"`
	Type        EmphasisType `json:"type"`
	Intensity   float64      `json:"intensity"`
	Description string       `json:"description,omitempty"`
}

// SuspiciousMomentType names the aggregate problem a moment flags.
type SuspiciousMomentType string

const (
	MomentFillerCluster  SuspiciousMomentType = "filler_cluster"
	MomentExcessivePause SuspiciousMomentType = "excessive_pause"
	MomentFastSpeech     SuspiciousMomentType = "fast_speech"
	MomentSlowSpeech     SuspiciousMomentType = "slow_speech"
	MomentIncoherence    SuspiciousMomentType = "incoherence"
	MomentHesitation     SuspiciousMomentType = "hesitation"
)

// Severity ranks how badly a suspicious moment hurts the delivery.
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SuspiciousMoment aggregates raw signals into a flagged problem.
// IDs are assigned in detection order and are stable for a given input.
type SuspiciousMoment struct {
	ID          int                  `json:"id"`
	Timestamp   float64              `json:"timestamp"`
	Type        SuspiciousMomentType `json:"type"`
	Severity    Severity             `json:"severity"`
	Description string               `json:"description"`
	Evidence    map[string]float64   `json:"evidence,omitempty"`
}
