package handler

import (
	"net/http"

	"venuebook/internal/venues/service"
	"venuebook/internal/venues/validator"
	apperrors "venuebook/pkg/errors"
	httputil "venuebook/pkg/http"
	"venuebook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type VenueHandler struct {
	service service.VenueService
	log     *logger.Logger
}

func NewVenueHandler(service service.VenueService, log *logger.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log,
	}
}

func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, errs := validator.ParseVenueFilters(r.URL.Query())
	if errs != nil {
		err := apperrors.Validation("Invalid query parameters", errs.Fields())
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	venues, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, venues, filter.Page, filter.Limit, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "error", err)
	}
}

func (h *VenueHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venue, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, venue); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *VenueHandler) Cities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cities, err := h.service.Cities(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cities", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, cities); err != nil {
		h.log.Error("failed to write success response", "handler", "Cities", "error", err)
	}
}

func (h *VenueHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/venues", h.List)
	router.GET("/api/v1/venues/:id", h.GetByID)
	router.GET("/api/v1/cities", h.Cities)
}
