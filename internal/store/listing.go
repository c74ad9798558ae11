// Package store defines the persistence interfaces for the service's four
// document collections, along with the sentinel errors and result types the
// implementations share. Handlers depend only on these interfaces so tests
// can substitute in-memory fakes for the real MongoDB stores.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fellowtravellers/apartments-api/internal/domain"
)

// ListingStore defines the interface for apartment listing persistence.
// Listings are immutable once created: there is no update operation.
type ListingStore interface {
	// Create inserts a new listing document.
	Create(ctx context.Context, listing *domain.Listing) error

	// List returns all listings.
	List(ctx context.Context) ([]domain.Listing, error)

	// SearchByTitle returns the listings whose title contains the given
	// substring pattern.
	SearchByTitle(ctx context.Context, pattern string) ([]domain.Listing, error)

	// GetByID retrieves a listing by its id.
	// Returns ErrListingNotFound if no listing has that id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Listing, error)

	// Delete removes the listing with the given id. The returned result
	// reports a zero count when nothing matched; that is not an error.
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
