// Package main is the entry point for the arcana API server, which handles
// accounts, the once-per-day card draw of record and premium interpretation
// generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	apiMiddleware "github.com/arcanadaily/arcana-api/internal/api/middleware"
	"github.com/arcanadaily/arcana-api/internal/config"
	"github.com/arcanadaily/arcana-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if migrateCmd != "" {
		return runMigrations(db, migrateCmd)
	}

	// Pending migrations are applied at startup so a fresh deployment comes
	// up without a separate migration step.
	if err := runMigrations(db, "up"); err != nil {
		return err
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return err
	}

	authRateLimiter := apiMiddleware.NewRateLimiter(1, 10)
	defer authRateLimiter.Stop()

	return app.runServer(app.setupRouter(authRateLimiter))
}
