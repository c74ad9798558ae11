package store

import (
	"context"

	"github.com/fellowtravellers/apartments-api/internal/domain"
)

// UserStore defines the interface for user persistence. Email is the logical
// key: Upsert guarantees at most one record per email.
type UserStore interface {
	// Create inserts a new user document unconditionally.
	Create(ctx context.Context, user *domain.User) (*InsertResult, error)

	// Upsert replaces the stored fields of the user with the given email,
	// inserting a new record if none exists.
	Upsert(ctx context.Context, user *domain.User) (*UpdateResult, error)

	// GetByEmail retrieves a user by email.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// PromoteToAdmin sets the role of the user with the given email to
	// "admin". A missing target matches nothing; the result reports it.
	PromoteToAdmin(ctx context.Context, email string) (*UpdateResult, error)
}
