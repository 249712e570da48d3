// Copyright (c) 2026 Podhaven. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/podhaven/podhaven/internal/analytics"
	"github.com/podhaven/podhaven/internal/auth"
	"github.com/podhaven/podhaven/internal/episode"
	"github.com/podhaven/podhaven/internal/feed"
	"github.com/podhaven/podhaven/internal/platform/config"
	"github.com/podhaven/podhaven/internal/platform/constants"
	"github.com/podhaven/podhaven/internal/platform/middleware"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/podcast"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (login, register, me).
	Auth *auth.Handler

	// Podcast handles show management for the dashboard.
	Podcast *podcast.Handler

	// Episode handles episode authoring.
	Episode *episode.Handler

	// Analytics serves the owner-facing access summary.
	Analytics *analytics.Handler

	// Feed serves the two public RSS routes. Mounted at the router root so
	// show feeds read as /{username}/{slug}/rss.
	Feed *feed.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/podcasts", h.Podcast.Routes())
		api.Mount("/podcasts/{podcastID}/episodes", h.Episode.Routes())
		api.Mount("/episodes", h.Episode.ItemRoutes())

		api.Group(func(authed chi.Router) {
			authed.Use(middleware.RequireAuth)
			authed.Use(middleware.RequireRole(sec.RoleHost))
			authed.Get("/podcasts/{podcastID}/analytics", h.Analytics.Summary)
		})
	})

	// # Public Feeds
	// Root-level XML routes consumed by podcast directories, not browsers.
	h.Feed.Register(r)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
