package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform body of every /send-email style response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON encodes v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OK renders a successful Envelope.
func OK(message string, data any) Response {
	return JSON(Envelope{Success: true, Message: message, Data: data})
}

// JSONError renders a failed Envelope with the given status.
func JSONError(status int, message string) Response {
	return JSON(Envelope{Success: false, Message: message}, WithJSONStatus(status))
}
