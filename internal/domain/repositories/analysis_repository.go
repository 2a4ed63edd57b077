package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

// AnalysisRepository persists analysis runs and their results.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *entities.Analysis) error
	Update(ctx context.Context, analysis *entities.Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error)
	GetCompletedByContentHash(ctx context.Context, hash string) (*entities.Analysis, error)
}
