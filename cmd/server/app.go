package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arcanadaily/arcana-api/internal/api"
	"github.com/arcanadaily/arcana-api/internal/config"
	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/domain/selection"
	"github.com/arcanadaily/arcana-api/internal/events"
	"github.com/arcanadaily/arcana-api/internal/generation"
	"github.com/arcanadaily/arcana-api/internal/metrics"
	"github.com/arcanadaily/arcana-api/internal/platform/gemini"
	"github.com/arcanadaily/arcana-api/internal/platform/postgres"
	"github.com/arcanadaily/arcana-api/internal/service"
	"github.com/arcanadaily/arcana-api/internal/service/auth"
)

// application holds the wired dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	registry    *prometheus.Registry
	recorder    metrics.Recorder
	jwtService  auth.JWTService
	authHandler *api.AuthHandler
	drawHandler *api.DrawHandler
}

// newApplication wires stores, services and handlers from the configuration
// and an open database connection.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	registry := prometheus.NewRegistry()
	recorder := metrics.NewCollector(registry)

	userStore := postgres.NewUserStore(db)
	drawStore := postgres.NewDrawStore(db)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userService, err := service.NewUserService(userStore, jwtService, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	var interpreter generation.Interpreter = generation.Disabled{}
	if cfg.LLM.GeminiAPIKey != "" {
		interpreter, err = gemini.NewInterpreter(ctx, logger, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to create interpreter: %w", err)
		}
		logger.Info("enhanced interpretations enabled", "model", cfg.LLM.ModelName)
	} else {
		logger.Info("no LLM API key configured, enhanced interpretations disabled")
	}

	emitter := events.NewInMemoryEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))

	selector := selection.NewSelector(domain.Cards(), nil, nil)
	drawService, err := service.NewDailyDrawService(
		db, drawStore, selector, interpreter, recorder, emitter, cfg.Draw.DailyLimit, logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create draw service: %w", err)
	}

	authHandler, err := api.NewAuthHandler(userService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth handler: %w", err)
	}
	drawHandler, err := api.NewDrawHandler(drawService, userService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create draw handler: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		registry:    registry,
		recorder:    recorder,
		jwtService:  jwtService,
		authHandler: authHandler,
		drawHandler: drawHandler,
	}, nil
}
