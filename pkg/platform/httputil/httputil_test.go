package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"approvaldash/pkg/platform/sentinel"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("internal error hides message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("pq: connection refused"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["error"] != CodeInternal {
			t.Fatalf("expected error code %s, got %v", CodeInternal, body["error"])
		}
		if body["message"] == "pq: connection refused" {
			t.Fatalf("expected internal message to be hidden")
		}
	})

	t.Run("unauthorized includes reason", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, fmt.Errorf("%w: missing token", sentinel.ErrUnauthorized))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["message"] != "unauthorized: missing token" {
			t.Fatalf("expected reason in message, got %v", body["message"])
		}
	})

	t.Run("unavailable hides dial details", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, fmt.Errorf("%w: ping: dial tcp 10.0.0.7:5432: connect: connection refused", sentinel.ErrUnavailable))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["message"] != http.StatusText(http.StatusServiceUnavailable) {
			t.Fatalf("expected status text, got %v", body["message"])
		}
		if strings.Contains(fmt.Sprint(body["message"]), "10.0.0.7") {
			t.Fatalf("dial address leaked: %v", body["message"])
		}
		if body["error"] != CodeUnavailable {
			t.Fatalf("expected error code %s, got %v", CodeUnavailable, body["error"])
		}
	})

	t.Run("timeout hides query details", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, fmt.Errorf("query records for user 7: %w", context.DeadlineExceeded))

		body := decodeEnvelope(t, w)
		if body["message"] != http.StatusText(http.StatusGatewayTimeout) {
			t.Fatalf("expected status text, got %v", body["message"])
		}
	})

	t.Run("wrapped sentinels keep their status", func(t *testing.T) {
		cases := map[error]int{
			fmt.Errorf("load: %w", sentinel.ErrNotFound):     http.StatusNotFound,
			fmt.Errorf("load: %w", sentinel.ErrUnavailable):  http.StatusServiceUnavailable,
			fmt.Errorf("auth: %w", sentinel.ErrUnauthorized):  http.StatusUnauthorized,
			fmt.Errorf("query: %w", context.DeadlineExceeded): http.StatusGatewayTimeout,
		}
		for err, status := range cases {
			w := httptest.NewRecorder()
			WriteError(w, err)
			if w.Code != status {
				t.Fatalf("%v: expected status %d, got %d", err, status, w.Code)
			}
		}
	})
}

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]int{"pending": 2})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "success" {
		t.Fatalf("expected success message, got %v", body["message"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["pending"] != float64(2) {
		t.Fatalf("unexpected data: %v", body["data"])
	}
}
