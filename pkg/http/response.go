package http

import (
	"encoding/json"
	"net/http"
	apperrors "venuebook/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes the listing metadata. hasMore holds exactly
// when page*limit < total.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    int64(page)*int64(limit) < total,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	message := appErr.Message
	if appErr.Code == apperrors.CodeInternal {
		message = "An unexpected error occurred. Please try again later."
	}

	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{
		Error:   message,
		Details: appErr.Details,
	})
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any, message string) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data, Message: message})
}

func WritePaginated(w http.ResponseWriter, data any, page, limit int, total int64) error {
	return WriteJSON(w, http.StatusOK, PaginatedResponse{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	})
}
