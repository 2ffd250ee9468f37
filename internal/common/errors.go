package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures that are reported to API clients
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
	KindUnavailable
)

// AppError is the error type returned by services. Handlers translate it to
// an HTTP status and a client-facing message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to its HTTP status
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewConflictError reports a uniqueness violation such as an email already in use
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewUnavailableError(message string) *AppError {
	return &AppError{Kind: KindUnavailable, Message: message}
}

// NewInternalError wraps an unexpected failure; the cause is logged, never sent to clients
func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
