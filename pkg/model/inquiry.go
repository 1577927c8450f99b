package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// BookingInquiry is a request to book a venue for a date range. The
// booked span is the half-open interval [StartDate, EndDate): a span
// may start exactly when another ends without conflict. Inquiries are
// created only through the admission pipeline and start as pending.
type BookingInquiry struct {
	ID            string        `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	VenueID       string        `json:"venueId" bson:"venue_id" validate:"required,mongodb"`
	CompanyName   string        `json:"companyName" bson:"company_name" validate:"required,min=2,max=100"`
	Email         string        `json:"email" bson:"email" validate:"required,email"`
	StartDate     time.Time     `json:"startDate" bson:"start_date" validate:"required"`
	EndDate       time.Time     `json:"endDate" bson:"end_date" validate:"required,gtfield=StartDate"`
	AttendeeCount int           `json:"attendeeCount" bson:"attendee_count" validate:"required,gt=0"`
	Message       string        `json:"message,omitempty" bson:"message,omitempty" validate:"omitempty,max=1000"`
	Status        string        `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	Venue         *Venue        `json:"venue,omitempty" bson:"-"`
	VenueInfo     *VenueSummary `json:"venueInfo,omitempty" bson:"-"`
	CreatedAt     time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updated_at"`
}

// Blocking reports whether this inquiry occupies its span for
// availability purposes. Cancelled inquiries never block.
func (b *BookingInquiry) Blocking() bool {
	return b.Status != StatusCancelled
}
