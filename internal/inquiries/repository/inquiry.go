package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
	inquirieserrors "venuebook/internal/inquiries/errors"
	"venuebook/pkg/config"
	mongotx "venuebook/pkg/db/mongo"
	"venuebook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Booking_inquiries"
)

type mongoInquiryRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.BookingInquiry) error
	FindByID(ctx context.Context, id string) (*model.BookingInquiry, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, error)
	FindOverlapping(ctx context.Context, venueID string, start, end time.Time) ([]*model.BookingInquiry, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoInquiryRepository(cfg *config.Config) InquiryRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoInquiryRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoInquiryRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

func (r *mongoInquiryRepository) Create(ctx context.Context, inquiry *model.BookingInquiry) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create booking inquiry: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		inquiry.ID = oid.Hex()
	}
	return nil
}

func (r *mongoInquiryRepository) FindByID(ctx context.Context, id string) (*model.BookingInquiry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inquirieserrors.ErrInvalidID, id)
	}

	var inquiry model.BookingInquiry
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inquirieserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking inquiry: %w", err)
	}

	return &inquiry, nil
}

func (r *mongoInquiryRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.BookingInquiry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find booking inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []*model.BookingInquiry
	if err = cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode booking inquiries: %w", err)
	}

	return inquiries, nil
}

// FindOverlapping returns the non-cancelled inquiries for a venue whose
// [start_date, end_date) span intersects [start, end). Back-to-back
// spans share a boundary instant and do not intersect.
func (r *mongoInquiryRepository) FindOverlapping(ctx context.Context, venueID string, start, end time.Time) ([]*model.BookingInquiry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"venue_id":   venueID,
		"status":     bson.M{"$ne": model.StatusCancelled},
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []*model.BookingInquiry
	if err = cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping inquiries: %w", err)
	}

	return inquiries, nil
}

func (r *mongoInquiryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count booking inquiries: %w", err)
	}

	return count, nil
}

func (r *mongoInquiryRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inquirieserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	if result.MatchedCount == 0 {
		return inquirieserrors.ErrNotFound
	}

	return nil
}

func (r *mongoInquiryRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
