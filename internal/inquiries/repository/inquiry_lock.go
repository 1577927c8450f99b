package repository

import (
	"context"
	"time"
	"venuebook/pkg/config"
	"venuebook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const LockCollectionName = "Inquiry_locks"

// InquiryLockRepository provides operations for advisory admission locks.
type InquiryLockRepository interface {
	Create(ctx context.Context, lock *model.InquiryLock) (*model.InquiryLock, error)
	Delete(ctx context.Context, lockID string) error
}

type mongoInquiryLockRepository struct {
	collection *mongo.Collection
}

func NewInquiryLockRepository(cfg *config.Config) InquiryLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoInquiryLockRepository{
		collection: db.Collection(LockCollectionName),
	}
}

// Create inserts the lock document. A duplicate key error means another
// request holds the lock for the same slot.
func (r *mongoInquiryLockRepository) Create(ctx context.Context, lock *model.InquiryLock) (*model.InquiryLock, error) {
	lock.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		return nil, err
	}

	return lock, nil
}

func (r *mongoInquiryLockRepository) Delete(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
