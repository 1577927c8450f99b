package model

import "time"

// Venue is a bookable retreat location. Read-only for the service
// except through seeding; amenities are stored as a proper string
// array, ordered as provided.
type Venue struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name          string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description   string    `json:"description" bson:"description" validate:"required"`
	City          string    `json:"city" bson:"city" validate:"required"`
	Address       string    `json:"address" bson:"address" validate:"required"`
	Capacity      int       `json:"capacity" bson:"capacity" validate:"required,gt=0"`
	PricePerNight float64   `json:"pricePerNight" bson:"price_per_night" validate:"required,gt=0"`
	Amenities     []string  `json:"amenities" bson:"amenities" validate:"omitempty,dive,required"`
	ImageURL      string    `json:"imageUrl,omitempty" bson:"image_url,omitempty" validate:"omitempty,url"`
	Rating        *float64  `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
}

// VenueSummary is the minimal venue projection embedded in
// administrative inquiry listings.
type VenueSummary struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
	City string `json:"city" bson:"city"`
}

// VenueFilter narrows a venue listing. Zero values mean "no constraint".
type VenueFilter struct {
	City        string
	MinCapacity int
	MaxPrice    float64
	Page        int
	Limit       int
}
