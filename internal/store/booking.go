package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fellowtravellers/apartments-api/internal/domain"
)

// BookingStore defines the interface for booking persistence.
type BookingStore interface {
	// Create inserts a new booking document.
	Create(ctx context.Context, booking *domain.Booking) error

	// List returns all bookings.
	List(ctx context.Context) ([]domain.Booking, error)

	// ListByEmail returns the bookings owned by the given email.
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)

	// Approve sets the booking's status to "Approved". Idempotent: approving
	// an already approved booking matches but modifies nothing.
	Approve(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)

	// Delete removes the booking with the given id.
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
