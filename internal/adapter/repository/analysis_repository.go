package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/repositories"
)

// analysisRepository implements repositories.AnalysisRepository using GORM
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) repositories.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create persists a new analysis record
func (r *analysisRepository) Create(ctx context.Context, analysis *entities.Analysis) error {
	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// Update saves the current state of an analysis record
func (r *analysisRepository) Update(ctx context.Context, analysis *entities.Analysis) error {
	if err := r.db.WithContext(ctx).Save(analysis).Error; err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	return nil
}

// GetByID fetches one analysis by its id
func (r *analysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &analysis, nil
}

// GetCompletedByContentHash finds a finished analysis of identical
// audio content, used to short-circuit repeated uploads
func (r *analysisRepository) GetCompletedByContentHash(ctx context.Context, hash string) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).
		Where("content_hash = ? AND status = ?", hash, entities.AnalysisStatusCompleted).
		Order("completed_at DESC").
		First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by content hash: %w", err)
	}
	return &analysis, nil
}
