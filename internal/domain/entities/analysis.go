package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisStatus represents lifecycle state of an analysis run.
type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusProcessing AnalysisStatus = "processing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusFailed     AnalysisStatus = "failed"
)

// PaceStats carries words-per-minute rollups.
type PaceStats struct {
	WordsPerMinute float64 `json:"words_per_minute"`
	TotalWords     int     `json:"total_words"`
	SpeakingTime   float64 `json:"speaking_time_sec"`
	Classification string  `json:"classification"` // slow, comfortable, fast
}

// RhythmStats carries phrase-structure rollups.
type RhythmStats struct {
	PhraseCount       int     `json:"phrase_count"`
	AvgWordsPerPhrase float64 `json:"avg_words_per_phrase"`
	AvgPhraseDuration float64 `json:"avg_phrase_duration"`
	LengthClass       string  `json:"length_class"`     // short_phrases, balanced, long_phrases
	RhythmVariation   string  `json:"rhythm_variation"` // uniform, moderately_variable, highly_variable, insufficient_data
	DurationCV        float64 `json:"duration_cv"`
}

// SpeechRateWindow is one point of the sliding-window WPM series.
type SpeechRateWindow struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	WPM   float64 `json:"wpm"`
}

// Advice is one generated coaching recommendation.
type Advice struct {
	Category       string `json:"category"` // speech_rate, filler_words, pauses, phrasing
	Severity       string `json:"severity"` // info, suggestion, warning
	Title          string `json:"title"`
	Observation    string `json:"observation"`
	Recommendation string `json:"recommendation"`
}

// AnalysisResult is the complete structured output of one engine run,
// enriched with contextual verdicts, advice and optional narrative.
// Plain serializable data; never mutated after assembly.
type AnalysisResult struct {
	Pauses            []ValidatedPause   `json:"pauses"`
	Phrases           []Phrase           `json:"phrases"`
	Fillers           []FillerWord       `json:"fillers"`
	EmphasisEvents    []EmphasisEvent    `json:"emphasis_events"`
	SuspiciousMoments []SuspiciousMoment `json:"suspicious_moments"`
	Pace              PaceStats          `json:"pace"`
	Rhythm            RhythmStats        `json:"rhythm"`
	SpeechRate        []SpeechRateWindow `json:"speech_rate,omitempty"`
	Advice            []Advice           `json:"advice,omitempty"`
	Narrative         string             `json:"narrative,omitempty"`
}

// Analysis is the stored analysis model.
type Analysis struct {
	ID          uuid.UUID                           `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Status      AnalysisStatus                      `json:"status" gorm:"type:varchar(20);not null;index;default:'pending'"`
	ContentHash string                              `json:"content_hash" gorm:"type:varchar(64);index"`
	ObjectKey   string                              `json:"object_key" gorm:"type:varchar(512)"`
	FileName    string                              `json:"file_name,omitempty" gorm:"type:varchar(255)"`
	Language    string                              `json:"language,omitempty" gorm:"type:varchar(20)"`
	DurationSec float64                             `json:"duration_sec,omitempty"`
	Result      datatypes.JSONType[*AnalysisResult] `json:"result,omitempty" gorm:"type:jsonb"`
	LastError   *string                             `json:"last_error,omitempty" gorm:"type:text"`
	StartedAt   *time.Time                          `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time                          `json:"completed_at,omitempty" gorm:"type:timestamp"`
	CreatedAt   time.Time                           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time                           `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Analysis) TableName() string {
	return "analyses"
}

// NewAnalysis creates a pending analysis for an uploaded recording.
func NewAnalysis(contentHash, objectKey, fileName string) *Analysis {
	return &Analysis{
		ID:          uuid.New(),
		Status:      AnalysisStatusPending,
		ContentHash: contentHash,
		ObjectKey:   objectKey,
		FileName:    fileName,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// MarkAsProcessing marks the analysis as started.
func (a *Analysis) MarkAsProcessing() {
	a.Status = AnalysisStatusProcessing
	now := time.Now()
	a.StartedAt = &now
	a.UpdatedAt = now
}

// MarkAsCompleted attaches the result and closes the run.
func (a *Analysis) MarkAsCompleted(result *AnalysisResult) {
	a.Status = AnalysisStatusCompleted
	a.Result = datatypes.NewJSONType(result)
	now := time.Now()
	a.CompletedAt = &now
	a.UpdatedAt = now
}

// MarkAsFailed records the failure reason.
func (a *Analysis) MarkAsFailed(errMsg string) {
	a.Status = AnalysisStatusFailed
	a.LastError = &errMsg
	now := time.Now()
	a.CompletedAt = &now
	a.UpdatedAt = now
}
