package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrPermission   = errors.New("permission denied")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
	ErrUnauthorized = errors.New("unauthorized")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(msg string, err error) *AppError {
	return NewAppError(ErrInvalidInput, msg, "", err)
}

// NewConflict deliberately carries a generic message: signup must not
// reveal whether the email or the username collided.
func NewConflict(msg string) *AppError {
	return NewAppError(ErrConflict, msg, "", nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "Internal server error", details, err)
}

func NewUnauthorized(msg, details string) *AppError {
	return NewAppError(ErrUnauthorized, msg, details, nil)
}

func NewPermissionDenied(details string) *AppError {
	return NewAppError(ErrPermission, "Permission denied", details, nil)
}

// ToHTTPStatus maps error kinds to response codes. Conflicts map to 400,
// the same status the validation path uses, so a signup collision is not
// distinguishable from any other rejected input by status alone.
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrPermission) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// PublicMessage is what goes into the response envelope. Internal errors
// keep their detail server-side.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if errors.Is(appErr.BaseError, ErrInternal) {
			return "Internal server error"
		}
		return appErr.Message
	}
	return "Internal server error"
}
