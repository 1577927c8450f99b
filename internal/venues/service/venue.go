package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	venueserrors "venuebook/internal/venues/errors"
	"venuebook/internal/venues/repository"
	"venuebook/pkg/config"
	apperrors "venuebook/pkg/errors"
	"venuebook/pkg/model"
)

type VenueService interface {
	List(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int64, error)
	GetByID(ctx context.Context, id string) (*model.Venue, error)
	Cities(ctx context.Context) ([]string, error)
}

type venueService struct {
	repo repository.VenueRepository
	cfg  *config.Config
}

func NewVenueService(repo repository.VenueRepository, cfg *config.Config) VenueService {
	return &venueService{
		repo: repo,
		cfg:  cfg,
	}
}

// List returns one page of venues plus the total match count. The
// count and data queries are independent reads and run concurrently.
func (s *venueService) List(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int64, error) {
	var count int64
	var venues []*model.Venue
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, filter)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count venues", "error", errCount)
			errCount = apperrors.Internal("Failed to fetch venues", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		venues, errFind = s.repo.FindMany(ctx, filter)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list venues",
				"city", filter.City,
				"page", filter.Page,
				"limit", filter.Limit,
				"error", errFind,
			)
			errFind = apperrors.Internal("Failed to fetch venues", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if venues == nil {
		venues = []*model.Venue{}
	}
	return venues, count, nil
}

func (s *venueService) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Venue ID cannot be empty")
	}

	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueserrors.ErrNotFound) || errors.Is(err, venueserrors.ErrInvalidID) {
			// An unparseable id addresses no venue, which is the same 404.
			return nil, apperrors.NotFound("Venue")
		}
		return nil, apperrors.Internal("Failed to retrieve venue", err)
	}

	return venue, nil
}

// Cities returns the distinct venue cities, alphabetically sorted.
func (s *venueService) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.repo.DistinctCities(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list cities", "error", err)
		return nil, apperrors.Internal("Failed to fetch cities", err)
	}

	sort.Strings(cities)
	return cities, nil
}
