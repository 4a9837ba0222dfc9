package handler

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Message: "Endpoint not found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"}

	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)
