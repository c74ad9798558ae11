package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("document not found")

	// ErrListingNotFound indicates that the requested listing does not exist.
	ErrListingNotFound = fmt.Errorf("%w: listing", ErrNotFound)

	// ErrBookingNotFound indicates that the requested booking does not exist.
	ErrBookingNotFound = fmt.Errorf("%w: booking", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
