package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	apperrors "venuebook/pkg/errors"
	"venuebook/pkg/logger"
	"venuebook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockVenueService struct {
	listFunc     func(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int64, error)
	getByIDFunc  func(ctx context.Context, id string) (*model.Venue, error)
	citiesFunc   func(ctx context.Context) ([]string, error)
	lastFilter   *model.VenueFilter
}

func (m *mockVenueService) List(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int64, error) {
	m.lastFilter = &filter
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []*model.Venue{}, 0, nil
}

func (m *mockVenueService) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFound("Venue")
}

func (m *mockVenueService) Cities(ctx context.Context) ([]string, error) {
	if m.citiesFunc != nil {
		return m.citiesFunc(ctx)
	}
	return []string{}, nil
}

func newTestRouter(svc *mockVenueService) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	router := httprouter.New()
	NewVenueHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestListResponseShape(t *testing.T) {
	svc := &mockVenueService{
		listFunc: func(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int64, error) {
			return []*model.Venue{{ID: "1", Name: "Urban Innovation Hub", City: "Austin"}}, 21, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues?city=austin&page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data       []model.Venue `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			HasMore    bool  `json:"hasMore"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if resp.Pagination.Page != 2 || resp.Pagination.Total != 21 || resp.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
	if resp.Pagination.HasMore != true {
		t.Error("hasMore must be true for page 2 of 21/10")
	}
	if svc.lastFilter.City != "austin" {
		t.Errorf("filter city = %q", svc.lastFilter.City)
	}
}

func TestListInvalidFilterRejected(t *testing.T) {
	svc := &mockVenueService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues?minCapacity=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.lastFilter != nil {
		t.Error("service must not be called with an invalid filter")
	}

	var resp struct {
		Details map[string][]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if _, ok := resp.Details["minCapacity"]; !ok {
		t.Errorf("expected minCapacity detail, got %v", resp.Details)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	router := newTestRouter(&mockVenueService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/656e6f7065656e6f7065aaaa", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Error != "Venue not found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestCities(t *testing.T) {
	svc := &mockVenueService{
		citiesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Aspen", "Austin", "Napa"}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Data) != 3 || resp.Data[0] != "Aspen" {
		t.Errorf("data = %v", resp.Data)
	}
}
