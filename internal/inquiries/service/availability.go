package service

import (
	"context"
	"time"
	apperrors "venuebook/pkg/errors"
	"venuebook/pkg/model"
)

// Overlaps reports whether the half-open spans [start1, end1) and
// [start2, end2) share any instant. Back-to-back spans, where one ends
// exactly when the other starts, do not overlap.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}

// checkAvailability returns a conflict error if any blocking inquiry
// for the venue overlaps the candidate span. The repository query
// already narrows to candidates; the in-process check re-verifies each
// one so a stale or over-broad result set cannot admit a conflict.
func (s *inquiryService) checkAvailability(ctx context.Context, candidate *model.BookingInquiry) error {
	existing, err := s.repo.FindOverlapping(ctx, candidate.VenueID, candidate.StartDate, candidate.EndDate)
	if err != nil {
		return apperrors.Internal("Failed to check venue availability", err)
	}

	for _, inquiry := range existing {
		if inquiry.ID == candidate.ID && candidate.ID != "" {
			continue
		}
		if inquiry.VenueID != candidate.VenueID {
			continue
		}
		if !inquiry.Blocking() {
			continue
		}
		if Overlaps(inquiry.StartDate, inquiry.EndDate, candidate.StartDate, candidate.EndDate) {
			return apperrors.Conflict("The venue is not available for the selected dates")
		}
	}
	return nil
}
