package model

import "time"

// InquiryLock is an advisory lock that serializes admission for one
// (venue, start date) slot. A TTL index on expires_at reaps locks left
// behind by crashed requests.
type InquiryLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
