// Package apperr defines the typed failures raised by the request pipeline.
//
// Every failure carries an HTTP status code, a stable status tag ("fail" for
// expected request-level failures, "error" for server faults), and a
// human-readable message. Failures are constructed at the point of detection
// and propagate unchanged to the terminal error responder in the HTTP layer;
// no intermediate stage catches or reinterprets them.
package apperr

import "net/http"

// Status tags carried in the error response body.
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// Error is a typed pipeline failure.
type Error struct {
	// Status is the stable tag: "fail" for request-level failures,
	// "error" for server faults.
	Status string
	// Code is the HTTP status code to respond with.
	Code int
	// Message is safe to show to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Auth builds a 401 failure for invalid, missing, or expired credentials.
func Auth(msg string) *Error {
	return &Error{Status: StatusFail, Code: http.StatusUnauthorized, Message: msg}
}

// Forbidden builds a 403 failure for authenticated but unentitled callers.
func Forbidden(msg string) *Error {
	return &Error{Status: StatusFail, Code: http.StatusForbidden, Message: msg}
}

// NotFound builds a 404 failure for an absent target resource.
func NotFound(msg string) *Error {
	return &Error{Status: StatusFail, Code: http.StatusNotFound, Message: msg}
}

// Validation builds a schema-violation failure.
//
// The upstream API this service replaces mapped validation failures to 403
// rather than the conventional 400. Clients depend on that mapping, so it is
// kept; see DESIGN.md before changing it.
func Validation(msg string) *Error {
	return &Error{Status: StatusFail, Code: http.StatusForbidden, Message: msg}
}

// Conflict builds a 409 failure for uniqueness violations surfaced at write
// time (e.g. a lost race between an existence check and the insert).
func Conflict(msg string) *Error {
	return &Error{Status: StatusFail, Code: http.StatusConflict, Message: msg}
}

// Internal builds a 500 server fault.
func Internal(msg string) *Error {
	return &Error{Status: StatusError, Code: http.StatusInternalServerError, Message: msg}
}
