package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// It is produced before any backend request is made.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Field returns the message for the named field, or "" if the field is valid.
func (e *ValidationError) Field(name string) string {
	for _, fe := range e.Errors {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ErrorKind classifies a failed backend call.
type ErrorKind string

const (
	ErrorKindTransport    ErrorKind = "transport"
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	ErrorKindForbidden    ErrorKind = "forbidden"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindConflict     ErrorKind = "conflict"
	ErrorKindServer       ErrorKind = "server"
	ErrorKindOther        ErrorKind = "other"
)

func (k ErrorKind) String() string { return string(k) }

// KindFromStatus maps an HTTP status code to an ErrorKind.
// Status 0 means the request never produced a response.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == 0:
		return ErrorKindTransport
	case status == 400 || status == 422:
		return ErrorKindValidation
	case status == 401:
		return ErrorKindUnauthorized
	case status == 403:
		return ErrorKindForbidden
	case status == 404:
		return ErrorKindNotFound
	case status == 409:
		return ErrorKindConflict
	case status >= 500:
		return ErrorKindServer
	default:
		return ErrorKindOther
	}
}

// APIError is returned by the backend client for every failed call.
// Message is the backend-provided message, or "HTTP <status>" when the
// response carried none.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Is lets callers test the kind with the package sentinels,
// e.g. errors.Is(err, domain.ErrNotFound).
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == ErrorKindNotFound
	case ErrUnauthorized:
		return e.Kind == ErrorKindUnauthorized
	case ErrForbidden:
		return e.Kind == ErrorKindForbidden
	case ErrConflict:
		return e.Kind == ErrorKindConflict
	case ErrValidation:
		return e.Kind == ErrorKindValidation
	}
	return false
}

// ErrorMessage returns the user-facing message of err: the backend message
// for an *APIError, the first field message for a *ValidationError, and
// fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	return fallback
}
