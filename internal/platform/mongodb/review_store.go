package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// MongoReviewStore implements the store.ReviewStore interface using a
// MongoDB collection as the storage backend.
type MongoReviewStore struct {
	coll *mongo.Collection
}

// NewMongoReviewStore creates a new MongoDB implementation of the
// ReviewStore interface.
func NewMongoReviewStore(db *mongo.Database) *MongoReviewStore {
	return &MongoReviewStore{coll: db.Collection(reviewsCollection)}
}

// Ensure MongoReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*MongoReviewStore)(nil)

// Create implements store.ReviewStore.Create
func (s *MongoReviewStore) Create(ctx context.Context, review *domain.Review) error {
	if _, err := s.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// List implements store.ReviewStore.List
func (s *MongoReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
