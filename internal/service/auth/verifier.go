// Package auth verifies bearer tokens against the identity provider and
// resolves them to a Principal. Verification is used as a best-effort
// annotation step: callers decide what a failed verification means, and for
// every route in this service the answer is "proceed without an identity".
package auth

import (
	"context"
)

// Principal is the verified identity associated with a request.
type Principal struct {
	// Email is the verified email address of the caller.
	Email string
}

// TokenVerifier defines the identity-provider verification operation.
type TokenVerifier interface {
	// VerifyToken validates the given bearer token and returns the principal
	// it identifies. Returns ErrInvalidToken or ErrExpiredToken when the
	// token does not verify, or another error when the provider itself
	// fails.
	VerifyToken(ctx context.Context, token string) (*Principal, error)
}
