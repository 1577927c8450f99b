package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	venueserrors "venuebook/internal/venues/errors"
	"venuebook/pkg/config"
	"venuebook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Venues"
)

type mongoVenueRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type VenueRepository interface {
	FindByID(ctx context.Context, id string) (*model.Venue, error)
	FindMany(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, error)
	Count(ctx context.Context, filter model.VenueFilter) (int64, error)
	DistinctCities(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, venue *model.Venue) error
}

func NewMongoVenueRepository(cfg *config.Config) VenueRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoVenueRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoVenueRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		// Cannot wrap a SessionContext without breaking transaction semantics.
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		if remaining := time.Until(deadline); remaining < timeout {
			return context.WithTimeout(ctx, remaining)
		}
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoVenueRepository) FindByID(ctx context.Context, id string) (*model.Venue, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", venueserrors.ErrInvalidID, id)
	}

	var venue model.Venue
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&venue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, venueserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find venue: %w", err)
	}

	return &venue, nil
}

func (r *mongoVenueRepository) FindMany(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, buildVenueFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []*model.Venue
	if err = cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}

	return venues, nil
}

func (r *mongoVenueRepository) Count(ctx context.Context, filter model.VenueFilter) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, buildVenueFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}

	return count, nil
}

func (r *mongoVenueRepository) DistinctCities(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	values, err := r.collection.Distinct(ctx, "city", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	cities := make([]string, 0, len(values))
	for _, v := range values {
		if city, ok := v.(string); ok {
			cities = append(cities, city)
		}
	}

	return cities, nil
}

func (r *mongoVenueRepository) Insert(ctx context.Context, venue *model.Venue) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	venue.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, venue)
	if err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		venue.ID = oid.Hex()
	}
	return nil
}

// buildVenueFilter maps listing filters to a Mongo query. City is a
// case-insensitive substring match; "austin" matches "Austin".
func buildVenueFilter(filter model.VenueFilter) bson.M {
	query := bson.M{}

	if filter.City != "" {
		query["city"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.City),
			Options: "i",
		}}
	}
	if filter.MinCapacity > 0 {
		query["capacity"] = bson.M{"$gte": filter.MinCapacity}
	}
	if filter.MaxPrice > 0 {
		query["price_per_night"] = bson.M{"$lte": filter.MaxPrice}
	}

	return query
}
