// Package main implements the entry point for the apartments API server,
// the booking-marketplace backend serving listings, bookings, reviews and
// users.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/fellowtravellers/apartments-api/internal/config"
	"github.com/fellowtravellers/apartments-api/internal/platform/logger"
	"github.com/fellowtravellers/apartments-api/internal/platform/mongodb"
)

// main initializes configuration, logging and the database connection,
// injects the dependencies and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run is the core startup logic, split out of main so every failure path
// funnels through a single exit point.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logg := logger.Setup(cfg.Server)
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	client, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	slog.Info("database connected", "database", cfg.Database.Name)

	app, err := newApplication(cfg, logg, client)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
