package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// ERROR TAXONOMY
// =====================================================
// Every service surfaces failures as one of these kinds.
// Handlers translate them to HTTP; services never recover them.

// NotFoundError - lookup by id/slug/email/name yielded nothing
type NotFoundError struct {
	Resource string // "Article", "Author", "Category", "Comment"
	Field    string // "id", "slug", ...
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: '%v'", e.Resource, e.Field, e.Value)
}

func NewNotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// DuplicateError - create/update would violate a uniqueness invariant
// (article slug, author email, category name)
type DuplicateError struct {
	Resource string
	Field    string
	Value    any
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists with %s: '%v'", e.Resource, e.Field, e.Value)
}

func NewDuplicate(resource, field string, value any) *DuplicateError {
	return &DuplicateError{Resource: resource, Field: field, Value: value}
}

// ConflictError - operation rejected by a referential business rule,
// e.g. deleting an author that still has articles
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

func NewConflict(resource, reason string) *ConflictError {
	return &ConflictError{Resource: resource, Reason: reason}
}

// BadRequestError - caller-supplied semantic error the services detect
// themselves (unknown sort field, invalid status token, ...)
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func NewBadRequest(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError - field -> message map produced by request validation
// before the service layer runs
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// WrapValidation converts an ozzo-validation result into a
// ValidationError so handlers have a single error mapping path. Nil and
// non-validation errors pass through unchanged.
func WrapValidation(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return &ValidationError{Fields: fields}
}

// =====================================================
// CLASSIFICATION HELPERS
// =====================================================

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsDuplicate(err error) bool {
	var e *DuplicateError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsBadRequest(err error) bool {
	var e *BadRequestError
	return errors.As(err, &e)
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case IsNotFound(err):
		return "RESOURCE_NOT_FOUND"
	case IsDuplicate(err):
		return "DUPLICATE_RESOURCE"
	case IsConflict(err):
		return "CONFLICT"
	case IsBadRequest(err):
		return "BAD_REQUEST"
	default:
		var ve *ValidationError
		if errors.As(err, &ve) {
			return "VALIDATION_FAILED"
		}
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsDuplicate(err), IsConflict(err):
		return http.StatusConflict
	case IsBadRequest(err):
		return http.StatusBadRequest
	default:
		var ve *ValidationError
		if errors.As(err, &ve) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
