// Copyright (c) 2026 Podhaven. All rights reserved.

// Command api is the entry point for the Podhaven HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Connect to RabbitMQ (optional — analytics degrades to direct inserts).
//  6. Run database migrations (idempotent).
//  7. Wire HTTP handlers, the analytics recorder, and the queue consumer.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/podhaven/podhaven/internal/analytics"
	"github.com/podhaven/podhaven/internal/api"
	"github.com/podhaven/podhaven/internal/auth"
	"github.com/podhaven/podhaven/internal/episode"
	"github.com/podhaven/podhaven/internal/feed"
	"github.com/podhaven/podhaven/internal/platform/config"
	"github.com/podhaven/podhaven/internal/platform/constants"
	"github.com/podhaven/podhaven/internal/platform/migration"
	pgstore "github.com/podhaven/podhaven/internal/platform/postgres"
	"github.com/podhaven/podhaven/internal/platform/rabbit"
	redisstore "github.com/podhaven/podhaven/internal/platform/redis"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/podcast"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "podhaven"))
	slog.SetDefault(log)

	log.Info("[Podhaven] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "podhaven"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. RabbitMQ (optional) ────────────────────────────────────────────
	var broker *amqp.Connection
	if cfg.AMQPURL != "" {
		broker, err = rabbit.NewConnection(cfg.AMQPURL, log)
		must(log, err, "connect to rabbitmq")
		defer func() {
			log.Info("closing rabbitmq connection")
			if cerr := broker.Close(); cerr != nil {
				log.Error("rabbitmq close error", slog.Any("error", cerr))
			}
		}()
	} else {
		log.Info("amqp_url_unset_analytics_writes_direct")
	}

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}
	if broker != nil {
		healthDeps.CheckBroker = func() error {
			if broker.IsClosed() {
				return fmt.Errorf("rabbitmq connection closed")
			}
			return nil
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	podcastRepository := podcast.NewPodcastRepository(pool)
	podcastService := podcast.NewService(podcastRepository, log)
	podcastHandler := podcast.NewHandler(podcastService)

	episodeRepository := episode.NewEpisodeRepository(pool)
	episodeService := episode.NewService(episodeRepository, podcastRepository, log)
	episodeHandler := episode.NewHandler(episodeService)

	// ── 10. Analytics Pipeline ────────────────────────────────────────────
	// With a broker: recorder → queue → consumer → postgres.
	// Without: recorder → postgres directly.
	eventRepository := analytics.NewEventRepository(pool)

	var sink analytics.Sink
	if broker != nil {
		publisher, perr := analytics.NewQueuePublisher(broker, constants.QueueAnalyticsEvents)
		must(log, perr, "declare analytics queue")
		sink = publisher

		consumer := analytics.NewConsumer(broker, eventRepository, constants.QueueAnalyticsEvents, log)
		consumerCtx, consumerCancel := context.WithCancel(context.Background())
		defer consumerCancel()
		go func() {
			if cerr := consumer.Start(consumerCtx); cerr != nil && !errors.Is(cerr, context.Canceled) {
				log.Error("analytics consumer stopped", slog.Any("error", cerr))
			}
		}()
	} else {
		sink = analytics.NewStoreSink(eventRepository)
	}

	recorder := analytics.NewRecorder(sink, log)
	defer func() {
		log.Info("draining analytics recorder")
		recorder.Close()
	}()

	analyticsHandler := analytics.NewHandler(eventRepository, podcastRepository)

	// ── 11. Feed Delivery ─────────────────────────────────────────────────
	assembler := feed.NewAssembler(cfg.PublicBaseURL)
	feedHandler := feed.NewHandler(
		assembler,
		feed.NewBySlugAscending(userRepository, podcastRepository, episodeRepository),
		feed.NewByIdDescending(podcastRepository, episodeRepository),
		feed.NewRedisCache(rdb, log),
		recorder,
	)

	// ── 12. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Podcast:   podcastHandler,
		Episode:   episodeHandler,
		Analytics: analyticsHandler,
		Feed:      feedHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 13. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
