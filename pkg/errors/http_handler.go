package errors

import (
	"encoding/json"
	"net/http"
)

// WriteError renders any error as a JSON error payload. Non-AppError
// values are surfaced as a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	appErr := AsAppError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())

	message := appErr.Message
	if appErr.Code == CodeInternal {
		message = "An unexpected error occurred. Please try again later."
	}

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Details: appErr.Details,
	}); err != nil {
		// Headers already sent, nothing left to do for the client.
		_ = err
	}
}
