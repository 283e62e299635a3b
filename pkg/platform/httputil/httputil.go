// Package httputil centralizes the JSON envelope written by every HTTP handler.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"approvaldash/pkg/platform/sentinel"
)

// Envelope is the response body shape shared by success and error responses.
// Data is omitted on errors; Error carries a stable machine-readable code.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Error codes written in the Envelope.Error field.
const (
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeUnavailable  = "unavailable"
	CodeTimeout      = "timeout"
	CodeInternal     = "internal_error"
)

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess wraps data in a 200 envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// WriteError translates err into an error envelope. Only client errors echo
// their message; server-side failures answer with the status text.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	WriteJSON(w, status, Envelope{
		Code:    status,
		Message: message,
		Error:   code,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sentinel.ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, sentinel.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, sentinel.ErrUnavailable):
		return http.StatusServiceUnavailable, CodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
