package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/arcanadaily/arcana-api/internal/api/middleware"
	"github.com/arcanadaily/arcana-api/internal/metrics"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter(authRateLimiter *apiMiddleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics(app.recorder))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public, rate limited per client)
		r.Group(func(r chi.Router) {
			r.Use(authRateLimiter.Limit)
			r.Post("/auth/register", app.authHandler.Register)
			r.Post("/auth/login", app.authHandler.Login)
			r.Post("/auth/refresh", app.authHandler.Refresh)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/draws/today", app.drawHandler.GetTodayStatus)
			r.Post("/draws/daily", app.drawHandler.PerformDailyDraw)
			r.Get("/draws/history", app.drawHandler.GetHistory)

			r.Get("/cards/{cardID}/meaning", app.drawHandler.GetCardMeaning)

			r.Post("/interpretations/enhanced", app.drawHandler.EnhanceInterpretation)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", metrics.Handler(app.registry))

	return r
}
