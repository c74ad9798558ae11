package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fellowtravellers/apartments-api/internal/config"
)

// hmacTokenVerifier is an implementation of TokenVerifier using HMAC-SHA
// signed JWTs whose email claim identifies the caller.
type hmacTokenVerifier struct {
	signingKey []byte
	clockSkew  time.Duration
	timeFunc   func() time.Time // Injectable for testing
}

// emailClaims defines the structure of the JWT claims we read.
type emailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenVerifier implements TokenVerifier interface
var _ TokenVerifier = (*hmacTokenVerifier)(nil)

// NewJWTVerifier creates a TokenVerifier validating HMAC-SHA256 signed
// tokens issued by the identity provider.
func NewJWTVerifier(cfg config.AuthConfig) (TokenVerifier, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenVerifier{
		signingKey: []byte(cfg.JWTSecret),
		clockSkew:  2 * time.Minute, // tolerate minor clock drift between issuer and us
		timeFunc:   time.Now,
	}, nil
}

// VerifyToken validates the token and resolves it to a Principal.
func (v *hmacTokenVerifier) VerifyToken(ctx context.Context, tokenString string) (*Principal, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(v.timeFunc),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&emailClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*emailClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}

	return &Principal{Email: claims.Email}, nil
}
