package analysis

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/xXxDanya2007xXx/speech-coach/errors"
	"github.com/xXxDanya2007xXx/speech-coach/internal/audio"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/repositories"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine/vad"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/cache"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/storage"
	aiusecase "github.com/xXxDanya2007xXx/speech-coach/internal/usecase/ai"
	"github.com/xXxDanya2007xXx/speech-coach/pkg/ai"
	"github.com/xXxDanya2007xXx/speech-coach/pkg/jobcontext"
)

const presignedURLExpiry = 2 * time.Hour

// Service drives the full analysis pipeline: store the upload, run
// transcription and the speech engine in a background job, persist the
// result. Identical audio content is answered from earlier runs.
type Service struct {
	repo        repositories.AnalysisRepository
	storage     *storage.MinIOClient
	store       cache.Store
	transcriber *ai.Transcriber
	aiService   *aiusecase.Service
	engine      *engine.Engine
	vadChain    *vad.Chain
	resultTTL   time.Duration
	logger      *zap.Logger
}

func NewService(
	repo repositories.AnalysisRepository,
	storageClient *storage.MinIOClient,
	store cache.Store,
	transcriber *ai.Transcriber,
	aiService *aiusecase.Service,
	eng *engine.Engine,
	vadChain *vad.Chain,
	resultTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:        repo,
		storage:     storageClient,
		store:       store,
		transcriber: transcriber,
		aiService:   aiService,
		engine:      eng,
		vadChain:    vadChain,
		resultTTL:   resultTTL,
		logger:      logger,
	}
}

// SubmitUpload stores the recording and schedules its analysis. When a
// completed analysis of byte-identical content exists, it is returned
// immediately and no new job starts.
func (s *Service) SubmitUpload(ctx context.Context, fileName, contentType string, reader io.Reader) (*entities.Analysis, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if len(data) == 0 {
		return nil, apperrors.ErrMissingAudioFile()
	}

	sum := sha256.Sum256(data)
	contentHash := hex.EncodeToString(sum[:])

	if existing, err := s.lookupByHash(ctx, contentHash); err == nil && existing != nil {
		if s.logger != nil {
			s.logger.Info("returning cached analysis for identical content",
				zap.String("analysis_id", existing.ID.String()),
				zap.String("content_hash", contentHash[:12]))
		}
		return existing, nil
	}

	objectKey := fmt.Sprintf("uploads/%s/%s", contentHash[:12], fileName)
	if err := s.storage.UploadFile(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, apperrors.ErrStorageFailed("upload", err)
	}

	analysis := entities.NewAnalysis(contentHash, objectKey, fileName)
	if err := s.repo.Create(ctx, analysis); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create analysis", err)
	}

	go s.process(analysis)

	return analysis, nil
}

// GetByID returns one analysis or a not-found error
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error) {
	analysis, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("get analysis", err)
	}
	if analysis == nil {
		return nil, apperrors.ErrAnalysisNotFound(id.String())
	}
	return analysis, nil
}

// lookupByHash consults the result cache first, then the database.
func (s *Service) lookupByHash(ctx context.Context, contentHash string) (*entities.Analysis, error) {
	if s.store != nil {
		if idStr, ok, err := s.store.Get(ctx, "result:"+contentHash); err == nil && ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if analysis, err := s.repo.GetByID(ctx, id); err == nil && analysis != nil &&
					analysis.Status == entities.AnalysisStatusCompleted {
					return analysis, nil
				}
			}
		}
	}
	return s.repo.GetCompletedByContentHash(ctx, contentHash)
}

// process runs the pipeline in a background job with retry on
// transient failures. Terminal failures are recorded on the row.
func (s *Service) process(analysis *entities.Analysis) {
	ctx, cancel := jobcontext.JobBegin(context.Background(), analysis.ID, "analysis")
	defer cancel()

	err := jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		return s.runPipeline(ctx, analysis)
	})
	if err == nil {
		return
	}

	if s.logger != nil {
		s.logger.Error("analysis pipeline failed",
			zap.String("analysis_id", analysis.ID.String()), zap.Error(err))
	}
	analysis.MarkAsFailed(err.Error())
	if updateErr := s.repo.Update(context.Background(), analysis); updateErr != nil && s.logger != nil {
		s.logger.Error("failed to record analysis failure",
			zap.String("analysis_id", analysis.ID.String()), zap.Error(updateErr))
	}
}

func (s *Service) runPipeline(ctx context.Context, analysis *entities.Analysis) error {
	analysis.MarkAsProcessing()
	if err := s.repo.Update(ctx, analysis); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	audioURL, err := s.storage.GetFileURL(ctx, analysis.ObjectKey, presignedURLExpiry)
	if err != nil {
		return fmt.Errorf("presign recording: %w", err)
	}

	transcript, err := s.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	if transcript.IsEmpty() {
		return apperrors.ErrEmptyTranscript()
	}

	// Decoding is best effort: without PCM the engine keeps every
	// transcriber gap as a pause instead of vetoing any.
	pcm := s.decodeRecording(ctx, analysis)
	var regions []vad.Region
	if pcm != nil && s.vadChain != nil {
		regions = s.vadChain.DetectRegions(pcm)
	}

	result := s.engine.Analyze(transcript, pcm, regions)

	if s.aiService != nil {
		result.Fillers = s.aiService.ClassifyFillers(ctx, result.Fillers, transcript.Language)
		if narrative, err := s.aiService.GenerateFeedback(ctx, result); err == nil {
			result.Narrative = narrative
		} else if s.logger != nil {
			s.logger.Warn("narrative feedback unavailable",
				zap.String("analysis_id", analysis.ID.String()), zap.Error(err))
		}
	}

	analysis.Language = transcript.Language
	if pcm != nil {
		analysis.DurationSec = pcm.Duration()
	} else if n := len(transcript.Segments); n > 0 {
		analysis.DurationSec = transcript.Segments[n-1].End
	}

	analysis.MarkAsCompleted(result)
	if err := s.repo.Update(ctx, analysis); err != nil {
		return fmt.Errorf("persist result: %w", err)
	}

	if s.store != nil {
		_ = s.store.Set(ctx, "result:"+analysis.ContentHash, analysis.ID.String(), s.resultTTL)
	}
	return nil
}

func (s *Service) decodeRecording(ctx context.Context, analysis *entities.Analysis) *audio.PCM {
	obj, err := s.storage.DownloadFile(ctx, analysis.ObjectKey)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("recording download failed, analyzing without audio evidence",
				zap.String("analysis_id", analysis.ID.String()), zap.Error(err))
		}
		return nil
	}
	defer obj.Close()

	pcm, err := audio.Decode(obj)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("recording decode failed, analyzing without audio evidence",
				zap.String("analysis_id", analysis.ID.String()), zap.Error(err))
		}
		return nil
	}
	return pcm
}
