package auth

import "errors"

var (
	// ErrInvalidToken is returned when a token fails signature or claim
	// validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrMissingEmail is returned when a token verifies but carries no email
	// claim, so no principal can be resolved from it.
	ErrMissingEmail = errors.New("token has no email claim")
)
