// Package apierr turns domain errors into HTTP responses with an
// {"error": "..."} body.
package apierr

import (
	"errors"
	"net/http"

	"dataapi/internal/domain/collection"
)

type Error struct {
	status  int
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *Error) GetStatus() int {
	return e.status
}

func New(status int, msg string) *Error {
	return &Error{status: status, Message: msg}
}

// FromDomain maps a domain error to its HTTP status. Store failures are
// reported without their cause.
func FromDomain(err error) *Error {
	switch {
	case errors.Is(err, collection.ErrInvalidArgument):
		return New(http.StatusBadRequest, err.Error())
	case errors.Is(err, collection.ErrConflict):
		return New(http.StatusConflict, err.Error())
	case errors.Is(err, collection.ErrNotFound):
		return New(http.StatusNotFound, err.Error())
	case errors.Is(err, collection.ErrStoreUnavailable):
		return New(http.StatusInternalServerError, "storage unavailable")
	default:
		return New(http.StatusInternalServerError, "internal error")
	}
}
