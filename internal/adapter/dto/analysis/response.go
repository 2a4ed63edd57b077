package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

// UploadResponse is returned right after an upload is accepted
type UploadResponse struct {
	ID        uuid.UUID               `json:"id"`
	Status    entities.AnalysisStatus `json:"status"`
	FileName  string                  `json:"file_name,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// AnalysisResponse is the full analysis view
type AnalysisResponse struct {
	ID          uuid.UUID                `json:"id"`
	Status      entities.AnalysisStatus  `json:"status"`
	FileName    string                   `json:"file_name,omitempty"`
	Language    string                   `json:"language,omitempty"`
	DurationSec float64                  `json:"duration_sec,omitempty"`
	Result      *entities.AnalysisResult `json:"result,omitempty"`
	LastError   *string                  `json:"last_error,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
}

// ToUploadResponse converts an entity to the accepted-upload view
func ToUploadResponse(a *entities.Analysis) *UploadResponse {
	return &UploadResponse{
		ID:        a.ID,
		Status:    a.Status,
		FileName:  a.FileName,
		CreatedAt: a.CreatedAt,
	}
}

// ToAnalysisResponse converts an entity to the full view
func ToAnalysisResponse(a *entities.Analysis) *AnalysisResponse {
	resp := &AnalysisResponse{
		ID:          a.ID,
		Status:      a.Status,
		FileName:    a.FileName,
		Language:    a.Language,
		DurationSec: a.DurationSec,
		LastError:   a.LastError,
		CreatedAt:   a.CreatedAt,
		CompletedAt: a.CompletedAt,
	}
	if a.Status == entities.AnalysisStatusCompleted {
		resp.Result = a.Result.Data()
	}
	return resp
}
