package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"venuebook/internal/inquiries/service"
	"venuebook/internal/inquiries/validator"
	"venuebook/pkg/config"
	apperrors "venuebook/pkg/errors"
	httputil "venuebook/pkg/http"
	"venuebook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type InquiryHandler struct {
	service service.InquiryService
	log     *logger.Logger
}

func NewInquiryHandler(service service.InquiryService, log *logger.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log,
	}
}

func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req validator.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	inquiry, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, inquiry, "Booking inquiry submitted successfully"); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *InquiryHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := parsePagination(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	offset := int64(page-1) * int64(limit)
	inquiries, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, inquiries, page, limit, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "error", err)
	}
}

func parsePagination(r *http.Request) (page, limit int, err error) {
	query := r.URL.Query()

	page = config.DefaultPage
	if pageStr := query.Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, apperrors.InvalidInput(fmt.Sprintf("invalid page parameter: %s", pageStr))
		}
	}

	limit = config.DefaultPageLimit
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return 0, 0, apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", limitStr))
		}
		if limit > config.MaxPageLimit {
			limit = config.MaxPageLimit
		}
	}

	return page, limit, nil
}

func (h *InquiryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.GetAll)
}
