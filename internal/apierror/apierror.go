// Package apierror provides the error taxonomy and the response envelope for
// the API. All errors returned to clients go through this package so internal
// details (stack traces, driver errors) never leak.
package apierror

import "net/http"

// APIError is the canonical envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// Error is a domain error carrying the HTTP status it maps to. Handlers
// unwrap it with errors.As; anything that is not an *Error becomes an
// opaque 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation: missing or malformed input.
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Constraint: a foreign-key or uniqueness violation, classified by the
// offending column at the repository boundary.
func Constraint(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}
