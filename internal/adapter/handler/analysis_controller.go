package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xXxDanya2007xXx/speech-coach/errors"
	analysisdto "github.com/xXxDanya2007xXx/speech-coach/internal/adapter/dto/analysis"
	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	analysisusecase "github.com/xXxDanya2007xXx/speech-coach/internal/usecase/analysis"
)

// Analysis handles speech-analysis endpoints
type Analysis struct {
	service        *analysisusecase.Service
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *analysisusecase.Service, maxUploadMB int64, logger *zap.Logger) *Analysis {
	return &Analysis{
		service:        service,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
		logger:         logger,
	}
}

// Upload accepts a multipart recording and schedules its analysis.
// Answers 202 with the pending record, or 200 when an identical
// recording was already analyzed.
func (h *Analysis) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingAudioFile())
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return HandleError(h.logger, c, errors.ErrFileTooLarge(h.maxUploadBytes))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !isSupportedMediaType(contentType) {
		return HandleError(h.logger, c, errors.ErrUnsupportedMediaType(contentType))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	analysis, err := h.service.SubmitUpload(c.Request().Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if analysis.Status == entities.AnalysisStatusCompleted {
		return HandleSuccess(h.logger, c, http.StatusOK, analysisdto.ToAnalysisResponse(analysis))
	}
	return HandleSuccess(h.logger, c, http.StatusAccepted, analysisdto.ToUploadResponse(analysis))
}

// GetByID returns one analysis with its result when ready
func (h *Analysis) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid analysis id"))
	}

	analysis, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, analysisdto.ToAnalysisResponse(analysis))
}

func isSupportedMediaType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" || ct == "application/octet-stream" {
		return true
	}
	return strings.HasPrefix(ct, "audio/") || strings.HasPrefix(ct, "video/")
}
