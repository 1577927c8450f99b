package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"venuebook/internal/inquiries/repository"
	"venuebook/internal/inquiries/validator"
	venueserrors "venuebook/internal/venues/errors"
	venuesrepo "venuebook/internal/venues/repository"
	"venuebook/pkg/config"
	apperrors "venuebook/pkg/errors"
	"venuebook/pkg/kafka"
	"venuebook/pkg/middleware"
	"venuebook/pkg/model"
	"venuebook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	EventInquiryCreated = "inquiry.created"
	eventSource         = "venuebook"
)

// EventPublisher publishes domain events. The kafka producer satisfies
// it; a nil publisher disables eventing.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// InquiryCreatedEvent is the payload published after an inquiry is
// admitted.
type InquiryCreatedEvent struct {
	InquiryID     string    `json:"inquiryId"`
	VenueID       string    `json:"venueId"`
	VenueName     string    `json:"venueName"`
	CompanyName   string    `json:"companyName"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	AttendeeCount int       `json:"attendeeCount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type InquiryService interface {
	Create(ctx context.Context, req *validator.CreateInquiryRequest) (*model.BookingInquiry, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, int64, error)
}

type inquiryService struct {
	repo      repository.InquiryRepository
	lockRepo  repository.InquiryLockRepository
	venueRepo venuesrepo.VenueRepository
	validator *validator.InquiryValidator
	publisher EventPublisher
	cfg       *config.Config
}

func NewInquiryService(
	repo repository.InquiryRepository,
	lockRepo repository.InquiryLockRepository,
	venueRepo venuesrepo.VenueRepository,
	validator *validator.InquiryValidator,
	publisher EventPublisher,
	cfg *config.Config,
) InquiryService {
	return &inquiryService{
		repo:      repo,
		lockRepo:  lockRepo,
		venueRepo: venueRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create runs the admission pipeline: structural validation, venue
// lookup, capacity guard, then the availability check and insert inside
// one transaction guarded by an advisory slot lock.
func (s *inquiryService) Create(ctx context.Context, req *validator.CreateInquiryRequest) (*model.BookingInquiry, error) {
	s.sanitize(req)

	span, errs := s.validator.Validate(req)
	if errs != nil {
		s.cfg.Log.Warn("Booking inquiry validation failed", "errors", errs.Fields())
		return nil, apperrors.Validation("Validation failed", errs.Fields())
	}

	venue, err := s.venueRepo.FindByID(ctx, req.VenueID)
	if err != nil {
		// A malformed ID can never address a venue, so it reads the
		// same as an unknown one.
		if errors.Is(err, venueserrors.ErrNotFound) || errors.Is(err, venueserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Venue")
		}
		return nil, apperrors.Internal("Failed to retrieve venue", err)
	}

	// Capacity is checked before availability: an oversized party gets
	// the capacity error even when the dates are also taken.
	if req.AttendeeCount > venue.Capacity {
		return nil, apperrors.CapacityExceeded(req.AttendeeCount, venue.Capacity)
	}

	inquiry := &model.BookingInquiry{
		VenueID:       venue.ID,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		StartDate:     span.Start,
		EndDate:       span.End,
		AttendeeCount: req.AttendeeCount,
		Message:       req.Message,
		Status:        model.StatusPending,
	}

	lockID, err := s.acquireSlotLock(ctx, venue.ID, span.Start)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release inquiry lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.checkAvailability(sessCtx, inquiry); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, inquiry); err != nil {
			return apperrors.Internal("Failed to create booking inquiry", err)
		}
		return nil
	})
	if err != nil {
		if appErr := apperrors.AsAppError(err); appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to create booking inquiry", "venue_id", venue.ID, "error", err)
		}
		return nil, err
	}

	inquiry.Venue = venue
	s.publishCreated(ctx, inquiry, venue)

	s.cfg.Log.Info("Booking inquiry created",
		"id", inquiry.ID,
		"venue_id", venue.ID,
		"start_date", inquiry.StartDate,
		"end_date", inquiry.EndDate,
	)
	return inquiry, nil
}

func (s *inquiryService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, int64, error) {
	var count int64
	var inquiries []*model.BookingInquiry
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count booking inquiries", "error", errCount)
			errCount = apperrors.Internal("Failed to count booking inquiries", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		inquiries, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list booking inquiries", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve booking inquiries", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	s.attachVenueInfo(ctx, inquiries)

	if inquiries == nil {
		inquiries = []*model.BookingInquiry{}
	}
	return inquiries, count, nil
}

// --- Helpers ---

func (s *inquiryService) sanitize(req *validator.CreateInquiryRequest) {
	req.VenueID = sanitizer.TrimAndNormalize(req.VenueID)
	req.CompanyName = sanitizer.NormalizeCompanyName(req.CompanyName)
	req.Email = sanitizer.NormalizeEmail(req.Email)
	req.Message = sanitizer.NormalizeMessage(req.Message)
}

// attachVenueInfo decorates listings with venue summaries. Lookups are
// best effort; a missing venue leaves the field nil.
func (s *inquiryService) attachVenueInfo(ctx context.Context, inquiries []*model.BookingInquiry) {
	summaries := map[string]*model.VenueSummary{}
	for _, inquiry := range inquiries {
		if _, seen := summaries[inquiry.VenueID]; seen {
			continue
		}
		venue, err := s.venueRepo.FindByID(ctx, inquiry.VenueID)
		if err != nil {
			s.cfg.Log.Warn("Failed to resolve venue for inquiry listing",
				"venue_id", inquiry.VenueID, "error", err)
			summaries[inquiry.VenueID] = nil
			continue
		}
		summaries[inquiry.VenueID] = &model.VenueSummary{
			ID:   venue.ID,
			Name: venue.Name,
			City: venue.City,
		}
	}
	for _, inquiry := range inquiries {
		inquiry.VenueInfo = summaries[inquiry.VenueID]
	}
}

// acquireSlotLock takes an advisory lock on the (venue, start date)
// slot. It narrows the window for double admission between the
// availability check and the insert; the duplicate key error maps to
// the same conflict a losing racer would have seen anyway.
func (s *inquiryService) acquireSlotLock(ctx context.Context, venueID string, startDate time.Time) (string, error) {
	lockID := fmt.Sprintf("inquiry_lock_%s_%d", venueID, startDate.Unix())

	lock := &model.InquiryLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.LockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("The venue is not available for the selected dates")
		}
		return "", apperrors.Internal("Failed to acquire inquiry lock", err)
	}

	return lockID, nil
}

func (s *inquiryService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

// publishCreated emits the created event. Publishing is best effort:
// the inquiry is already persisted, so failures are logged and the
// request still succeeds.
func (s *inquiryService) publishCreated(ctx context.Context, inquiry *model.BookingInquiry, venue *model.Venue) {
	if s.publisher == nil {
		return
	}

	event := InquiryCreatedEvent{
		InquiryID:     inquiry.ID,
		VenueID:       venue.ID,
		VenueName:     venue.Name,
		CompanyName:   inquiry.CompanyName,
		StartDate:     inquiry.StartDate,
		EndDate:       inquiry.EndDate,
		AttendeeCount: inquiry.AttendeeCount,
		Status:        inquiry.Status,
		CreatedAt:     inquiry.CreatedAt,
	}

	msg := kafka.NewMessage().
		WithKey(venue.ID).
		WithValue(event).
		WithEventType(EventInquiryCreated).
		WithCorrelationID(middleware.RequestID(ctx)).
		WithSource(eventSource).
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish inquiry created event",
			"inquiry_id", inquiry.ID, "error", err)
	}
}
