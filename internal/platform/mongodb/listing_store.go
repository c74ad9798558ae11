package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// MongoListingStore implements the store.ListingStore interface using a
// MongoDB collection as the storage backend.
type MongoListingStore struct {
	coll *mongo.Collection
}

// NewMongoListingStore creates a new MongoDB implementation of the
// ListingStore interface.
func NewMongoListingStore(db *mongo.Database) *MongoListingStore {
	return &MongoListingStore{coll: db.Collection(listingsCollection)}
}

// Ensure MongoListingStore implements store.ListingStore interface
var _ store.ListingStore = (*MongoListingStore)(nil)

// Create implements store.ListingStore.Create
func (s *MongoListingStore) Create(ctx context.Context, listing *domain.Listing) error {
	if _, err := s.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// List implements store.ListingStore.List
func (s *MongoListingStore) List(ctx context.Context) ([]domain.Listing, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}

	listings := []domain.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// SearchByTitle implements store.ListingStore.SearchByTitle
func (s *MongoListingStore) SearchByTitle(ctx context.Context, pattern string) ([]domain.Listing, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"title": bson.M{"$regex": pattern}})
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}

	listings := []domain.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// GetByID implements store.ListingStore.GetByID
func (s *MongoListingStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Listing, error) {
	var listing domain.Listing
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to find listing %s: %w", id.Hex(), err)
	}
	return &listing, nil
}

// Delete implements store.ListingStore.Delete
func (s *MongoListingStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete listing %s: %w", id.Hex(), err)
	}
	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
