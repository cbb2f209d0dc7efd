package errors

import (
	"net/http"

	"civicradar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches any BaseError with the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	ErrRegionNotFound = NewBaseError(
		http.StatusNotFound,
		"REGION_NOT_FOUND",
		"Geofence region not found",
		"",
	)

	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Push subscription not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusInternalServerError,
		"PAYLOAD_TOO_LARGE",
		"Notification payload exceeds the push size limit",
		"",
	)

	ErrPublishFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"PUBLISH_FAILED",
		"Could not queue the dispatch request",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamQueryError reports a failed read or write against the backing store.
// It aborts the operation that hit it.
type UpstreamQueryError struct {
	err     error
	details string
}

// NewUpstreamQueryError wraps a storage failure
func NewUpstreamQueryError(err error, details string) AppError {
	return &UpstreamQueryError{
		err:     err,
		details: details,
	}
}

func (e *UpstreamQueryError) Error() string {
	if e.err == nil {
		return "upstream query failed: " + e.details
	}

	return errors.Wrap(e.err, e.details).Error()
}

func (e *UpstreamQueryError) Unwrap() error {
	return e.err
}

func (e *UpstreamQueryError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *UpstreamQueryError) ErrorCode() string {
	return "UPSTREAM_QUERY_FAILED"
}

func (e *UpstreamQueryError) Message() string {
	return "Failed to query data store"
}

func (e *UpstreamQueryError) Details() string {
	return e.details
}
