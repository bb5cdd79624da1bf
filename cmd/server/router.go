package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/excusedraft/excuse-api/internal/api"
	apiMiddleware "github.com/excusedraft/excuse-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's dependencies
	excuseHandler := api.NewExcuseHandler(app.generator, app.logger)
	healthHandler := api.NewHealthHandler(app.config)

	r.Use(healthHandler.CountRequests)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-excuse", excuseHandler.GenerateExcuse)
	})

	// Health and diagnostics endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/ping", healthHandler.Ping)
	r.Get("/metrics", healthHandler.Metrics)
	r.Get("/debug", healthHandler.Debug)

	// Front-end page and static assets
	r.Get("/", app.serveIndex)
	app.mountStatic(r)

	return r
}
