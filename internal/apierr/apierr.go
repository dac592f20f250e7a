// Package apierr defines the error taxonomy surfaced by the HTTP
// boundary: validation (400), auth (401), not-found (404) and internal
// (500). Handlers return these; the response writer renders them into
// the uniform failure envelope without leaking internal detail.
package apierr

import (
	"database/sql"
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Auth(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error"}
}

// From normalizes an arbitrary error into the taxonomy. sql.ErrNoRows
// becomes the given not-found message; anything unrecognized becomes an
// opaque internal error.
func From(err error, notFoundMessage string) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(notFoundMessage)
	}
	return Internal()
}
