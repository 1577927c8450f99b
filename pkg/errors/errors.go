package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
)

// AppError carries an error code, a caller-facing message and the HTTP
// status it maps to. Details holds field-keyed message lists for
// validation failures.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) ToJSON() []byte {
	data, _ := json.Marshal(ErrorResponse{
		Error:   e.Message,
		Details: e.Details,
	})
	return data
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NotFoundWithID(resource, id string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

// Validation reports structurally invalid input. Details is keyed by
// field name, each value a list of messages for that field.
func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// CapacityExceeded reports an attendee count above the venue capacity.
// The message cites both numbers; details carry the per-field text.
func CapacityExceeded(attendeeCount, capacity int) *AppError {
	return &AppError{
		Code:       CodeCapacityExceeded,
		Message:    fmt.Sprintf("Attendee count (%d) exceeds venue capacity (%d)", attendeeCount, capacity),
		HTTPStatus: http.StatusBadRequest,
		Details: map[string]any{
			"attendeeCount": []string{fmt.Sprintf("Maximum capacity for this venue is %d attendees", capacity)},
		},
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// Internal wraps an unexpected failure. The message is what the caller
// sees; keep it generic, the wrapped error is for server-side logs only.
func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
