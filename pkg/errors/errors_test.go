package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	err := NotFound("Venue")
	if err.Error() != "NOT_FOUND: Venue not found" {
		t.Errorf("unexpected error string: %s", err.Error())
	}

	wrapped := Internal("Failed to create booking inquiry", fmt.Errorf("connection refused"))
	if !strings.Contains(wrapped.Error(), "caused by: connection refused") {
		t.Errorf("wrapped cause missing from: %s", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	appErr := Internal("storage failure", cause)

	if !errors.Is(appErr, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("Venue"), http.StatusNotFound},
		{"validation", Validation("Validation failed", nil), http.StatusBadRequest},
		{"capacity", CapacityExceeded(60, 50), http.StatusBadRequest},
		{"conflict", Conflict("The venue is not available for the selected dates"), http.StatusConflict},
		{"internal", Internal("boom", nil), http.StatusInternalServerError},
		{"invalid input", InvalidInput("bad limit"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCapacityExceededMessage(t *testing.T) {
	err := CapacityExceeded(60, 50)

	if !strings.Contains(err.Message, "(60)") || !strings.Contains(err.Message, "(50)") {
		t.Errorf("message must cite both counts, got: %s", err.Message)
	}

	msgs, ok := err.Details["attendeeCount"].([]string)
	if !ok || len(msgs) != 1 {
		t.Fatalf("expected one attendeeCount detail, got %v", err.Details)
	}
	if !strings.Contains(msgs[0], "50") {
		t.Errorf("detail must cite the maximum, got: %s", msgs[0])
	}
}

func TestWriteErrorGenericInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, Internal("mongo exploded at 10.0.0.3", fmt.Errorf("dial tcp")))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "10.0.0.3") || strings.Contains(body, "dial tcp") {
		t.Errorf("internal details leaked to the client: %s", body)
	}
}

func TestWriteErrorNonAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("plain error"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain error, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %s", ct)
	}
}
