package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"venuebook/internal/inquiries/validator"
	apperrors "venuebook/pkg/errors"
	"venuebook/pkg/logger"
	"venuebook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockInquiryService struct {
	createFunc func(ctx context.Context, req *validator.CreateInquiryRequest) (*model.BookingInquiry, error)
	getAllFunc func(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, int64, error)

	lastLimit  int
	lastOffset int64
}

func (m *mockInquiryService) Create(ctx context.Context, req *validator.CreateInquiryRequest) (*model.BookingInquiry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &model.BookingInquiry{ID: "665f1f77bcf86cd799439011", Status: model.StatusPending}, nil
}

func (m *mockInquiryService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, int64, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, limit, offset)
	}
	return []*model.BookingInquiry{}, 0, nil
}

func newTestRouter(svc *mockInquiryService) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	router := httprouter.New()
	NewInquiryHandler(svc, log).RegisterRoutes(router)
	return router
}

const validBody = `{
	"venueId": "665f1f77bcf86cd799439000",
	"companyName": "Acme Corp",
	"email": "events@acme.com",
	"startDate": "2099-03-15",
	"endDate": "2099-03-18",
	"attendeeCount": 25
}`

func TestCreateReturns201WithMessage(t *testing.T) {
	svc := &mockInquiryService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data    model.BookingInquiry `json:"data"`
		Message string               `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Message != "Booking inquiry submitted successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data.Status != model.StatusPending {
		t.Errorf("status = %q", resp.Data.Status)
	}
}

func TestCreateMalformedBody(t *testing.T) {
	router := newTestRouter(&mockInquiryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperrors.AppError
		wantStatus int
		wantError  string
	}{
		{
			"validation failure", apperrors.Validation("Validation failed", map[string]any{"email": []string{"Please provide a valid email address"}}),
			http.StatusBadRequest, "Validation failed",
		},
		{
			"venue missing", apperrors.NotFound("Venue"),
			http.StatusNotFound, "Venue not found",
		},
		{
			"capacity", apperrors.CapacityExceeded(60, 50),
			http.StatusBadRequest, "Attendee count (60) exceeds venue capacity (50)",
		},
		{
			"dates taken", apperrors.Conflict("The venue is not available for the selected dates"),
			http.StatusConflict, "The venue is not available for the selected dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockInquiryService{
				createFunc: func(ctx context.Context, req *validator.CreateInquiryRequest) (*model.BookingInquiry, error) {
					return nil, tt.err
				},
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestCreateInternalErrorIsOpaque(t *testing.T) {
	svc := &mockInquiryService{
		createFunc: func(ctx context.Context, req *validator.CreateInquiryRequest) (*model.BookingInquiry, error) {
			return nil, apperrors.Internal("Failed to create booking inquiry", context.DeadlineExceeded)
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "deadline") {
		t.Errorf("internal cause leaked: %s", rec.Body.String())
	}
}

func TestGetAllPaginationDefaults(t *testing.T) {
	svc := &mockInquiryService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastLimit != 10 || svc.lastOffset != 0 {
		t.Errorf("limit = %d, offset = %d", svc.lastLimit, svc.lastOffset)
	}
}

func TestGetAllPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantLimit  int
		wantOffset int64
	}{
		{"explicit page and limit", "?page=3&limit=5", http.StatusOK, 5, 10},
		{"limit clamped to maximum", "?limit=500", http.StatusOK, 50, 0},
		{"non-numeric page", "?page=abc", http.StatusBadRequest, 0, 0},
		{"zero limit", "?limit=0", http.StatusBadRequest, 0, 0},
		{"negative page", "?page=-1", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockInquiryService{}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if svc.lastLimit != tt.wantLimit || svc.lastOffset != tt.wantOffset {
					t.Errorf("limit = %d, offset = %d", svc.lastLimit, svc.lastOffset)
				}
			}
		})
	}
}

func TestGetAllResponseShape(t *testing.T) {
	svc := &mockInquiryService{
		getAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, int64, error) {
			return []*model.BookingInquiry{
				{ID: "665f1f77bcf86cd799439011", VenueID: "665f1f77bcf86cd799439000", Status: model.StatusPending},
			}, 21, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		Data       []model.BookingInquiry `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			HasMore    bool  `json:"hasMore"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("len(data) = %d", len(resp.Data))
	}
	p := resp.Pagination
	if p.Page != 2 || p.Limit != 10 || p.Total != 21 || p.TotalPages != 3 || !p.HasMore {
		t.Errorf("pagination = %+v", p)
	}
}
