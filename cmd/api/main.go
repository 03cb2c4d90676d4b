// Package main is the entry point for the route planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/route-planner/backend/internal/auth"
	"github.com/pkordes/route-planner/backend/internal/config"
	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
	"github.com/pkordes/route-planner/backend/internal/middleware"
	"github.com/pkordes/route-planner/backend/internal/repo"
	"github.com/pkordes/route-planner/backend/internal/service"
	"github.com/pkordes/route-planner/backend/migrations"
	"github.com/pkordes/route-planner/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.AutoMigrate {
		// goose drives database/sql; borrow a handle backed by the same pool.
		db := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(context.Background(), db)
		db.Close()
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "count", applied)
	}

	// --- Services ---------------------------------------------------------
	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to create token verifier", "error", err)
		os.Exit(1)
	}

	policy := domain.TransitionsPermissive
	if cfg.StrictStatusTransitions {
		policy = domain.TransitionsStrict
	}
	slog.Info("status transition policy", "policy", policy.String())

	poiRepo := repo.NewPOIRepo(pool)
	userRepo := repo.NewUserRepo(pool)
	srv := handler.NewServer(
		service.NewItineraryService(repo.NewItineraryRepo(pool), policy),
		service.NewFeedbackService(repo.NewFeedbackRepo(pool)),
		service.NewPOIService(poiRepo),
		service.NewReportService(userRepo, poiRepo),
		service.NewUserService(userRepo),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → Metrics → CORS → rate limit → body limit → timeout.
	// Metrics sits outside CORS and the limiters so rejected requests are counted.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMetrics())
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	if cfg.RateLimitRPM > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRPM, time.Minute))
	}
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewRequestTimeout(cfg.RequestTimeout))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	// Bearer auth runs per operation so it can read the declared scopes.
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler(logger),
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(logger),
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{middleware.NewBearerAuth(verifier)},
		ErrorHandlerFunc: handler.RequestErrorHandler(logger),
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srvHTTP := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srvHTTP.Addr)
		if err := srvHTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srvHTTP.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
