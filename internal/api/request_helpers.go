package api

import (
	"fmt"

	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// getPathObjectID extracts a document id from the URL path parameters and
// converts it to the store's native identity type. Path ids are opaque
// strings to clients; a malformed one is a client error, never a crash.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, paramName)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid %s %q: %w", paramName, raw, err)
	}
	return id, nil
}
