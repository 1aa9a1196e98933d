// Package main implements the entry point for the Profel inventory API
// server: token-authenticated CRUD over clients, products, warehouses,
// stock and orders, plus a currency-rate proxy.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/profel/inventory-api/internal/config"
	"github.com/profel/inventory-api/internal/platform/logger"
)

// main initializes configuration, logging, the database and the
// application dependencies, then runs the HTTP server until shutdown.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := runMigrations(db, cfg.Database.MigrationsDir, appLogger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
