package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fellowtravellers/apartments-api/internal/config"
	"github.com/fellowtravellers/apartments-api/internal/platform/mongodb"
	"github.com/fellowtravellers/apartments-api/internal/service/auth"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	client *mongo.Client

	// Stores (using interfaces for proper abstraction)
	listingStore store.ListingStore
	bookingStore store.BookingStore
	reviewStore  store.ReviewStore
	userStore    store.UserStore

	// Identity provider
	tokenVerifier auth.TokenVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application initialization: configuration, logger and the database
// client.
func newApplication(cfg *config.Config, logger *slog.Logger, client *mongo.Client) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		client: client,
	}

	var err error
	app.tokenVerifier, err = auth.NewJWTVerifier(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	db := client.Database(cfg.Database.Name)
	app.listingStore = mongodb.NewMongoListingStore(db)
	app.bookingStore = mongodb.NewMongoBookingStore(db)
	app.reviewStore = mongodb.NewMongoReviewStore(db)
	app.userStore = mongodb.NewMongoUserStore(db)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.client != nil {
		if err := app.client.Disconnect(context.Background()); err != nil {
			app.logger.Error("error disconnecting database client", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
