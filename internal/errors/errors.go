package errors

import (
	"fmt"
	"net/http"
)

// AppError is a structured application error carrying the HTTP status and a
// stable code alongside the user-facing message.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
	}
	return e.UserMessage
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// NewBadRequest reports a malformed id, empty update body or invalid payload.
func NewBadRequest(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeBadRequest,
		HTTPStatus:       http.StatusBadRequest,
	}
}

// NewUnauthorized reports a failed login or missing credentials.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeUnauthorized,
		HTTPStatus:       http.StatusUnauthorized,
	}
}

// NewConflict reports a duplicate unique field.
func NewConflict(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeConflict,
		HTTPStatus:       http.StatusConflict,
	}
}

// NewNotFound reports a missing target or referenced entity.
func NewNotFound(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeNotFound,
		HTTPStatus:       http.StatusNotFound,
	}
}

// NewInternal wraps an unexpected store or infrastructure failure.
func NewInternal(err error) *AppError {
	return &AppError{
		TechnicalMessage: err.Error(),
		UserMessage:      MsgInternalError,
		Code:             ErrCodeInternal,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}
