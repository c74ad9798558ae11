package store

import (
	"context"

	"github.com/fellowtravellers/apartments-api/internal/domain"
)

// ReviewStore defines the interface for review persistence. Reviews are
// write-once: they are never updated or deleted through this interface.
type ReviewStore interface {
	// Create inserts a new review document.
	Create(ctx context.Context, review *domain.Review) error

	// List returns all reviews.
	List(ctx context.Context) ([]domain.Review, error)
}
