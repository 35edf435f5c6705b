package helpers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fitness-spc/src/logger"
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	ErrInvalidSpecLimits = errors.New("invalid specification limits")
	ErrUnknownMetric     = errors.New("unknown metric")
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type SPCError struct {
	Message string
	Cause   error
}

func (e *SPCError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SPCError) Unwrap() error {
	return e.Cause
}

// Distinct error types for errors.As checks at the API boundary
type ConfigurationError struct{ SPCError }
type DatabaseError struct{ SPCError }
type ValidationError struct{ SPCError }

// -----------------------------------------------------------------------------

func NewValidationError(cause error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{SPCError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

func NewDatabaseError(cause error, format string, args ...interface{}) *DatabaseError {
	return &DatabaseError{SPCError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

func NewConfigurationError(cause error, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{SPCError{Message: fmt.Sprintf(format, args...), Cause: cause}}
}

// -----------------------------------------------------------------------------

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts to execute the operation up to maxRetries times with exponential backoff.
func RetryWithBackoff(operation string, maxRetries int, baseDelay time.Duration, log *logger.Logger, fn func() error) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		if log != nil {
			log.Warning("Attempt %d/%d failed for %s: %v. Retrying in %v", attempt+1, maxRetries, operation, err, delay)
		}
		time.Sleep(delay)
	}

	return lastErr
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger     *logger.Logger
	ErrorCount int
	BaseDelay  time.Duration
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	if log == nil {
		log = logger.NewLogger("INFO", "ErrorHandler")
	}
	return &ErrorHandler{
		Logger:    log,
		BaseDelay: time.Second,
	}
}

// -----------------------------------------------------------------------------

// ExecuteWithRetry runs fn with retries and categorizes the final failure
// by the operation name.
func (e *ErrorHandler) ExecuteWithRetry(operation string, fn func() error, maxRetries int) error {
	err := RetryWithBackoff(operation, maxRetries, e.BaseDelay, e.Logger, fn)
	if err == nil {
		if e.ErrorCount > 0 {
			e.ErrorCount--
		}
		return nil
	}

	e.ErrorCount++
	e.Logger.Error("%s failed after %d attempt(s): %v", operation, maxRetries, err)

	lowerOp := strings.ToLower(operation)
	switch {
	case strings.Contains(lowerOp, "database") || strings.Contains(lowerOp, "save") || strings.Contains(lowerOp, "load"):
		return NewDatabaseError(err, "%s failed", operation)
	case strings.Contains(lowerOp, "config"):
		return NewConfigurationError(err, "%s failed", operation)
	default:
		return &SPCError{Message: fmt.Sprintf("%s failed", operation), Cause: err}
	}
}
