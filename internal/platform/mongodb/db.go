// Package mongodb implements the store interfaces on top of MongoDB using
// the official mongo-go driver. One shared client is created at startup and
// injected into every store; the driver provides its own pooling and
// per-operation concurrency control.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/fellowtravellers/apartments-api/internal/config"
)

// Collection names, matching the documents laid down by earlier deployments.
const (
	listingsCollection = "apartments"
	bookingsCollection = "bookings"
	reviewsCollection  = "reviews"
	usersCollection    = "users"
)

// connectTimeout bounds the initial connect + ping at startup.
const connectTimeout = 10 * time.Second

// Connect establishes and verifies a MongoDB client connection.
// The caller owns the returned client and must disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Fail fast at startup rather than on the first request.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
