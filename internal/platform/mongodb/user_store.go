package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	coll *mongo.Collection
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection)}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

// Upsert implements store.UserStore.Upsert. It sets the submitted fields on
// the record matching the user's email, inserting one when none exists, so
// at most one record per email ever exists.
func (s *MongoUserStore) Upsert(ctx context.Context, user *domain.User) (*store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$set": user},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %q: %w", user.Email, err)
	}
	return &store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user %q: %w", email, err)
	}
	return &user, nil
}

// PromoteToAdmin implements store.UserStore.PromoteToAdmin
func (s *MongoUserStore) PromoteToAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": domain.RoleAdmin}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user %q: %w", email, err)
	}
	return &store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
