package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrForbidden indicates that the resource exists but belongs to someone else.
var ErrForbidden = errors.New("access forbidden")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDomainArithmetic indicates a calculation that has no defined result,
// e.g. a division by a zero installment.
var ErrDomainArithmetic = errors.New("domain arithmetic error")

// ErrStorage indicates a failure of the persistence layer.
var ErrStorage = errors.New("storage error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError is an error with an HTTP status code and a client-safe message.
// It matches the sentinel of its kind through errors.Is.
type AppError struct {
	Code    int
	Message string
	Err     error
	kind    error
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

// Is reports whether target is the sentinel this error was classified as.
func (e *AppError) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

// NewAppError creates an AppError. The kind is derived from the status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err, kind: kindForCode(code)}
}

func kindForCode(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnprocessableEntity:
		return ErrDomainArithmetic
	case http.StatusConflict:
		return ErrDuplicate
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusInternalServerError:
		return ErrStorage
	default:
		return nil
	}
}

// NewNotFoundError creates a not-found error for the given entity.
func NewNotFoundError(entity string) *AppError {
	return NewAppError(http.StatusNotFound, entity+" not found", nil)
}

// NewForbiddenError creates an ownership error for the given entity.
func NewForbiddenError(entity string) *AppError {
	return NewAppError(http.StatusForbidden, "access to "+entity+" is forbidden", nil)
}

// NewValidationFailedError creates a validation error with a client-facing message.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// NewDomainArithmeticError creates an error for undefined domain math.
func NewDomainArithmeticError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, nil)
}

// NewStorageError wraps a persistence failure.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// NewConflictError creates a duplicate-resource error.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, nil)
}

// NewUnauthorizedError creates a credentials error.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

// StatusCode returns the HTTP status best describing err.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDomainArithmetic):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
