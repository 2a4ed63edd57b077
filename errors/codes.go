package errors

// ErrorCode identifies a failure class across logs and API responses.
// Numeric values are stable; new codes are appended, never reused.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_MISSING_AUDIO_FILE     ErrorCode = 2000
	ErrorCode_UNSUPPORTED_MEDIA_TYPE ErrorCode = 2001
	ErrorCode_FILE_TOO_LARGE         ErrorCode = 2002

	ErrorCode_ANALYSIS_NOT_FOUND  ErrorCode = 3000
	ErrorCode_ANALYSIS_FAILED     ErrorCode = 3001
	ErrorCode_AUDIO_DECODE_FAILED ErrorCode = 3002
	ErrorCode_EMPTY_TRANSCRIPT    ErrorCode = 3003
	ErrorCode_PROCESSING_FAILED   ErrorCode = 3004

	ErrorCode_AI_TRANSCRIPTION_FAILED  ErrorCode = 4000
	ErrorCode_AI_CLASSIFICATION_FAILED ErrorCode = 4001
	ErrorCode_AI_FEEDBACK_FAILED       ErrorCode = 4002
	ErrorCode_AI_SERVICE_UNAVAILABLE   ErrorCode = 4003

	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 5001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5002

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 6000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 6001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_MISSING_AUDIO_FILE:              "MISSING_AUDIO_FILE",
	ErrorCode_UNSUPPORTED_MEDIA_TYPE:          "UNSUPPORTED_MEDIA_TYPE",
	ErrorCode_FILE_TOO_LARGE:                  "FILE_TOO_LARGE",
	ErrorCode_ANALYSIS_NOT_FOUND:              "ANALYSIS_NOT_FOUND",
	ErrorCode_ANALYSIS_FAILED:                 "ANALYSIS_FAILED",
	ErrorCode_AUDIO_DECODE_FAILED:             "AUDIO_DECODE_FAILED",
	ErrorCode_EMPTY_TRANSCRIPT:                "EMPTY_TRANSCRIPT",
	ErrorCode_PROCESSING_FAILED:               "PROCESSING_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:         "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_CLASSIFICATION_FAILED:        "AI_CLASSIFICATION_FAILED",
	ErrorCode_AI_FEEDBACK_FAILED:              "AI_FEEDBACK_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:          "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
