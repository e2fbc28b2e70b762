package models

import (
	"errors"
	"fmt"
)

// Error codes used across both API client implementations and the data
// layer.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeConflict         = "CONFLICT"
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeNotSupported     = "NOT_SUPPORTED"
	CodeAPI              = "API_ERROR"
)

// AppError represents a custom application error.
type AppError struct {
	Code    string
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

// Is matches AppErrors by code, so errors.Is(err, ErrNotSupported) holds for
// any error in the chain carrying CodeNotSupported.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Sentinel conditions.
var (
	// ErrNotAuthenticated means no token is present in storage. Reads treat
	// this as benign empty state; writes fail with it.
	ErrNotAuthenticated = &AppError{Code: CodeNotAuthenticated, Message: "not authenticated"}

	// ErrNotSupported is returned by optional contract operations an
	// implementation does not provide. Callers must treat it as a defined
	// no-op, not a failure.
	ErrNotSupported = &AppError{Code: CodeNotSupported, Message: "operation not supported"}
)

// Predefined error constructors
func NewNotFoundError(resource, id string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewAPIError wraps a transport failure or a non-success HTTP status.
func NewAPIError(message string, err error) *AppError {
	if message == "" {
		message = "API error"
	}
	return &AppError{
		Code:    CodeAPI,
		Message: message,
		Err:     err,
	}
}

// NotSupported marks the named operation as absent from an implementation.
func NotSupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotSupported)
}
