// Package apperr defines domain errors that carry the HTTP status the
// error-handling middleware should answer with.
package apperr

import "net/http"

type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// New returns a domain error answered with 400 Bad Request.
func New(message string) *Error {
	return &Error{Message: message, Status: http.StatusBadRequest}
}

// WithStatus returns a domain error answered with the given status.
func WithStatus(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}
