package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "venuebook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Venue listing pagination bounds.
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 50

	// Advisory lock lifetime for booking admission.
	DefaultLockTTL = 10 * time.Second

	DefaultInquiryEventsTopic = "venuebook.inquiry.events"
)
