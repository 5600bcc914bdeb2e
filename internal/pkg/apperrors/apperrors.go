package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the closed taxonomy entries.
// Each kind maps to exactly one HTTP status.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindUnavailable
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

// HTTPStatus returns the HTTP status code for the kind
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a tagged domain error. Code is the specific machine-readable
// code surfaced to clients (e.g. DUPLICATE_RIDE), Kind drives the HTTP status.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	RideID  string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is comparisons against sentinel AppErrors by code
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

// Validation creates a VALIDATION error
func Validation(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

// Unauthorized creates an UNAUTHORIZED error
func Unauthorized(code, message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Code: code, Message: message}
}

// NotFound creates a NOT_FOUND error
func NotFound(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict creates a CONFLICT error
func Conflict(code, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

// Unavailable creates an UNAVAILABLE error
func Unavailable(code, message string) *AppError {
	return &AppError{Kind: KindUnavailable, Code: code, Message: message}
}

// Internal wraps an unexpected failure as an INTERNAL error
func Internal(code, message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Code: code, Message: message, Err: err}
}

// WithRide attaches the conflicting/affected ride id
func (e *AppError) WithRide(rideID string) *AppError {
	e.RideID = rideID
	return e
}

// FromError extracts an AppError, defaulting to INTERNAL for unknown errors
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("INTERNAL_ERROR", "unexpected error", err)
}
