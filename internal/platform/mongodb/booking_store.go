package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// MongoBookingStore implements the store.BookingStore interface using a
// MongoDB collection as the storage backend.
type MongoBookingStore struct {
	coll *mongo.Collection
}

// NewMongoBookingStore creates a new MongoDB implementation of the
// BookingStore interface.
func NewMongoBookingStore(db *mongo.Database) *MongoBookingStore {
	return &MongoBookingStore{coll: db.Collection(bookingsCollection)}
}

// Ensure MongoBookingStore implements store.BookingStore interface
var _ store.BookingStore = (*MongoBookingStore)(nil)

// Create implements store.BookingStore.Create
func (s *MongoBookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	if _, err := s.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// List implements store.BookingStore.List
func (s *MongoBookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	return s.find(ctx, bson.M{})
}

// ListByEmail implements store.BookingStore.ListByEmail
func (s *MongoBookingStore) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *MongoBookingStore) find(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}

	bookings := []domain.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Approve implements store.BookingStore.Approve
func (s *MongoBookingStore) Approve(ctx context.Context, id primitive.ObjectID) (*store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": domain.StatusApproved}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to approve booking %s: %w", id.Hex(), err)
	}
	return &store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete implements store.BookingStore.Delete
func (s *MongoBookingStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking %s: %w", id.Hex(), err)
	}
	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
