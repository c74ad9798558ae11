package shared

import (
	"context"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// PrincipalEmailContextKey is the context key under which the identity
	// middleware stores the verified caller email. Absence of the value
	// means the request is anonymous; handlers must treat that as a normal
	// state, not an error.
	PrincipalEmailContextKey ContextKey = "principalEmail"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetPrincipalEmail attaches the verified caller email to the context.
func SetPrincipalEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, PrincipalEmailContextKey, email)
}

// GetPrincipalEmail retrieves the verified caller email from the context.
// The boolean reports whether an identity was attached.
func GetPrincipalEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(PrincipalEmailContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
