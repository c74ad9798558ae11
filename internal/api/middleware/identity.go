// Package middleware holds the HTTP middleware applied by the router: trace
// ID propagation and the fail-open identity annotation.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/fellowtravellers/apartments-api/internal/api/shared"
	"github.com/fellowtravellers/apartments-api/internal/service/auth"
)

// IdentityMiddleware annotates requests with a verified caller identity.
//
// It is NOT an authorization gate. If the Authorization header carries a
// bearer token that verifies, the principal email lands in the request
// context; on any failure (missing header, malformed header, rejected
// token, provider error) the request proceeds without an identity and the
// failure is only logged. The middleware never writes a response and never
// terminates the chain.
type IdentityMiddleware struct {
	verifier auth.TokenVerifier
}

// NewIdentityMiddleware creates a new IdentityMiddleware with the given verifier.
func NewIdentityMiddleware(verifier auth.TokenVerifier) *IdentityMiddleware {
	return &IdentityMiddleware{verifier: verifier}
}

// Annotate is the middleware function. The single deliberate swallow point
// of the service lives here: every verification failure is logged at debug
// and then dropped.
func (m *IdentityMiddleware) Annotate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			// Anonymous request, nothing to verify.
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			slog.Debug("ignoring non-bearer authorization header",
				"trace_id", shared.GetTraceID(r.Context()))
			next.ServeHTTP(w, r)
			return
		}

		principal, err := m.verifier.VerifyToken(r.Context(), parts[1])
		if err != nil {
			// Fail open: the request continues without an identity.
			slog.Debug("token verification failed, continuing anonymously",
				"error", err,
				"trace_id", shared.GetTraceID(r.Context()))
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.SetPrincipalEmail(r.Context(), principal.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
