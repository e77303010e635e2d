// Package apperr defines the error kinds the service layer produces and
// the boundary switches on to pick an HTTP status.
package apperr

import (
	"errors"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a tagged application error. Validation errors carry one
// human-readable message per violated field in Fields.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		return strings.Join(e.Fields, "; ")
	}
	return e.Message
}

// Validation returns a 422-class error carrying per-field messages.
func Validation(fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Unauthenticated returns a 401-class error with a generic message.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Forbidden returns a 403-class error. The message never names the true owner.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound returns a 404-class error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a 409-class error for uniqueness violations.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unexpected wraps an internal failure. The cause is for logging; callers
// only ever see the generic message.
func Unexpected(cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: "an unexpected error occurred"}
}

// KindOf extracts the kind from err, or KindUnexpected for anything that
// is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// FieldsOf returns the per-field messages of a validation error, or nil.
func FieldsOf(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
