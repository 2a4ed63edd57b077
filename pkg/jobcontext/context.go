package jobcontext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyRetryAttempt KeyContext = "retry_attempt"
	keyJobStartTime KeyContext = "job_start_time"
	keyMaxRetries   KeyContext = "max_retries"
)

// Transcription plus analysis of a long recording can take a while,
// so background jobs get a generous deadline.
const jobTimeout = 15 * time.Minute

// JobBegin initializes a background job context with metadata and a
// timeout so a stuck pipeline cannot hang the worker forever.
func JobBegin(parentCtx context.Context, jobID uuid.UUID, jobType string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, jobTimeout)

	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyRetryAttempt, 0)
	ctx = context.WithValue(ctx, keyMaxRetries, 3)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// JobEnd executes the job function with panic recovery and retry logic.
// Returns error if the job fails after all retries.
func JobEnd(ctx context.Context, jobFunc func(context.Context) error) error {
	var (
		err        error
		maxRetries = GetMaxRetries(ctx)
		attempt    = GetRetryAttempt(ctx)
	)

	for attempt < maxRetries {
		ctx = SetRetryAttempt(ctx, attempt)

		func(ctx context.Context) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("panic recovered: %v", p)
				}
			}()

			if ctx.Err() != nil {
				err = fmt.Errorf("context cancelled before job execution: %w", ctx.Err())
				return
			}

			err = jobFunc(ctx)
		}(ctx)

		if err == nil {
			return nil
		}

		if !IsRetryableError(err) {
			return fmt.Errorf("non-retryable error: %w", err)
		}

		attempt++
		if attempt >= maxRetries {
			return fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, err)
		}

		if ctx.Err() != nil {
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}

		time.Sleep(CalculateBackoff(attempt, 5*time.Second))
	}

	return fmt.Errorf("job failed after %d attempts: %w", maxRetries, err)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetRetryAttempt extracts current retry attempt from context
func GetRetryAttempt(ctx context.Context) int {
	attempt, ok := ctx.Value(keyRetryAttempt).(int)
	if !ok {
		return 0
	}
	return attempt
}

// SetRetryAttempt updates retry attempt in context
func SetRetryAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, keyRetryAttempt, attempt)
}

// GetMaxRetries extracts max retries from context
func GetMaxRetries(ctx context.Context) int {
	maxRetries, ok := ctx.Value(keyMaxRetries).(int)
	if !ok {
		return 3 // default
	}
	return maxRetries
}

// SetMaxRetries updates max retries in context
func SetMaxRetries(ctx context.Context, maxRetries int) context.Context {
	return context.WithValue(ctx, keyMaxRetries, maxRetries)
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// IsRetryableError checks if an error should trigger a retry.
// Retryable errors include network errors, timeouts, deadlocks and
// rate limits.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") {
		return true
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	if strings.Contains(errStr, "deadlock") ||
		strings.Contains(errStr, "40001") || // serialization_failure
		strings.Contains(errStr, "40p01") { // deadlock_detected
		return true
	}

	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429") {
		return true
	}

	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	if strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "try again") {
		return true
	}

	return false
}

// CalculateBackoff calculates exponential backoff duration
func CalculateBackoff(attempt int, baseDelay time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	// 2^attempt * baseDelay, max 60 seconds
	backoff := time.Duration(1<<uint(attempt)) * baseDelay

	maxBackoff := 60 * time.Second
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}
