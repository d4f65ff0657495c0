package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// For transactions this means the generated reference code collided with a stored one.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that an optimistic concurrency check lost against a concurrent writer.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates that the acting principal may not mutate the resource.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateNotFound indicates that no active, unexpired rate exists for the requested pair.
var ErrRateNotFound = errors.New("rate not found")

// ErrInvalidTransition indicates an edge that does not exist in the transaction state graph.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrCodeGenerationExhausted indicates that every reference code attempt collided.
// It points at a miscalibrated generator and must be surfaced to operators.
var ErrCodeGenerationExhausted = errors.New("reference code generation exhausted")

// ErrInternal is used for unexpected infrastructure failures.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a human message on top of a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError returns an AppError matching ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewDuplicateError returns an AppError matching ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewUnauthorizedError returns an AppError matching ErrUnauthorized.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewRateNotFoundError returns an AppError matching ErrRateNotFound.
func NewRateNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Err: ErrRateNotFound}
}

// NewInvalidTransitionError returns an AppError matching ErrInvalidTransition.
func NewInvalidTransitionError(from, to string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("cannot move transaction from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

// NewInternalServerError wraps an unexpected failure.
func NewInternalServerError(message string, err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err}
}

// ValidationError reports which request fields were rejected and why.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match field-level validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError reports a single field failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NewFieldValidationError reports several field failures at once.
func NewFieldValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldsOf extracts the field map from a validation error, if any.
func FieldsOf(err error) map[string]string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}
