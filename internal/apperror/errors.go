package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError rejects a malformed or incomplete payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ForbiddenError means the caller is authenticated but does not own the resource.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	if e.Message == "" {
		return "forbidden"
	}
	return e.Message
}

// NotFoundError names the missing resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// AuthenticationError covers missing, malformed and expired credentials.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication required"
	}
	return e.Message
}

// ConflictError covers uniqueness violations such as a duplicate email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InvalidAIOutputError carries the sanitized generator text that still failed
// to parse, so callers can diagnose what the model actually returned.
type InvalidAIOutputError struct {
	Message string
	Raw     string
}

func (e *InvalidAIOutputError) Error() string { return e.Message }

// Status maps an error to its HTTP status. Unrecognized errors are server faults.
func Status(err error) int {
	var (
		validation *ValidationError
		forbidden  *ForbiddenError
		notFound   *NotFoundError
		authn      *AuthenticationError
		conflict   *ConflictError
		aiOutput   *InvalidAIOutputError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &aiOutput):
		return http.StatusBadRequest
	case errors.As(err, &authn):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
