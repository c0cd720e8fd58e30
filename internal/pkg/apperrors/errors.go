// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP boundary.
type Kind string

const (
	// KindValidation covers malformed or contradictory input, such as
	// unmatched confirmation fields or a non-positive quantity.
	KindValidation Kind = "validation"
	// KindBadRequest covers rejected request content, such as an image
	// with a disallowed extension.
	KindBadRequest Kind = "bad_request"
	// KindNotFound means a referenced entity is absent.
	KindNotFound Kind = "not_found"
	// KindConflict means a unique key is already taken.
	KindConflict Kind = "conflict"
	// KindAuth means a credential mismatch or an invalid federated token.
	KindAuth Kind = "auth"
	// KindInternal means an unexpected persistence failure.
	KindInternal Kind = "internal"
)

// Error is a kind-classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an application error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an application error wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict creates a conflict error.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Auth creates an authentication error.
func Auth(message string) *Error {
	return New(KindAuth, message)
}

// Internal creates an internal error wrapping the underlying cause.
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to its HTTP status code. Conflict maps to 400
// and validation to 422, matching the upstream API contract.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
