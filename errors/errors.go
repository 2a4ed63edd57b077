package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error to errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Upload Errors
func ErrMissingAudioFile() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_AUDIO_FILE,
		Message:  "Missing audio file",
	}
}

func ErrUnsupportedMediaType(contentType string) AppError {
	return AppError{
		HTTPCode: http.StatusUnsupportedMediaType,
		Code:     ErrorCode_UNSUPPORTED_MEDIA_TYPE,
		Message:  "Unsupported media type",
	}.WithDetail("content_type", contentType)
}

func ErrFileTooLarge(maxBytes int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_FILE_TOO_LARGE,
		Message:  "Uploaded file exceeds size limit",
	}.WithDetail("max_bytes", fmt.Sprintf("%d", maxBytes))
}

// Analysis Errors
func ErrAnalysisNotFound(analysisID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ANALYSIS_NOT_FOUND,
		Message:  "Analysis not found",
	}.WithDetail("analysis_id", analysisID)
}

func ErrAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_ANALYSIS_FAILED,
		Message:  "Speech analysis failed",
	}
}

func ErrAudioDecodeFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_AUDIO_DECODE_FAILED,
		Message:  "Failed to decode audio",
	}
}

func ErrEmptyTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_EMPTY_TRANSCRIPT,
		Message:  "Transcript contains no recognized speech",
	}
}

// AI Errors
func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

func ErrAIClassificationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_CLASSIFICATION_FAILED,
		Message:  "Contextual filler classification failed",
	}
}

func ErrAIFeedbackFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_FEEDBACK_FAILED,
		Message:  "Failed to generate narrative feedback",
	}
}

func ErrAIServiceUnavailable(service string) AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_AI_SERVICE_UNAVAILABLE,
		Message:  "AI service temporarily unavailable",
	}.WithDetail("service", service)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_EXTERNAL_API_FAILED,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}

// Database Errors
func ErrDBConnectionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_CONNECTION_FAILED,
		Message:  "Database connection failed",
	}
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}
