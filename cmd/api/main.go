// Package main is the entry point for the hashtag API server.
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tagmantra/tagmantra/backend/internal/auth"
	"github.com/tagmantra/tagmantra/backend/internal/config"
	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/handler"
	"github.com/tagmantra/tagmantra/backend/internal/live"
	"github.com/tagmantra/tagmantra/backend/internal/middleware"
	"github.com/tagmantra/tagmantra/backend/internal/repo"
	"github.com/tagmantra/tagmantra/backend/internal/service"
	"github.com/tagmantra/tagmantra/backend/migrations"
)

const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
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

	if err := runMigrations(pool); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Repositories and services ---------------------------------------
	hashtags := repo.NewHashtagRepo(pool)
	festivals := repo.NewFestivalRepo(pool)
	users := repo.NewUserRepo(pool)
	analytics := repo.NewAnalyticsRepo(pool)

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Now)

	generateSvc := service.NewGenerateService(hashtags, festivals, analytics, time.Now)
	trendingSvc := service.NewTrendingService(hashtags, festivals, time.Now)
	savedSvc := service.NewSavedSetService(users, analytics, time.Now)
	authSvc := service.NewAuthService(users, tokens)
	seedSvc := service.NewSeedService(hashtags, festivals)

	// The live cache polls platform APIs and falls back to curated data when
	// credentials are missing or upstream calls fail.
	fetchers := []live.Fetcher{
		live.NewTwitterFetcher(cfg.TwitterBearerToken, logger),
		live.NewYouTubeFetcher(cfg.YouTubeAPIKey, logger),
		live.NewStaticFetcher(domain.PlatformInstagram),
		live.NewStaticFetcher(domain.PlatformFacebook),
	}
	liveCache := live.NewCache(live.DefaultTTL, fetchers, hashtags, time.Now, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))
	r.Use(auth.Identify(tokens))

	srvHandler := handler.NewServer(generateSvc, trendingSvc, savedSvc, authSvc, liveCache, seedSvc, cfg.Development())
	r.Route("/api", srvHandler.Routes)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending goose migrations using a database/sql
// connection borrowed from the pool. goose needs *sql.DB, not a pgx pool.
func runMigrations(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	if len(results) > 0 {
		slog.Info("migrations applied", "count", len(results))
	}
	return nil
}
