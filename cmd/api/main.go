// Package main is the entry point for the Travel Planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
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
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/pkanjana/travel-planner/internal/config"
	"github.com/pkanjana/travel-planner/internal/handler"
	"github.com/pkanjana/travel-planner/internal/localstore"
	"github.com/pkanjana/travel-planner/internal/middleware"
	"github.com/pkanjana/travel-planner/internal/repo"
	"github.com/pkanjana/travel-planner/internal/service"
	"github.com/pkanjana/travel-planner/internal/weather"
	"github.com/pkanjana/travel-planner/migrations"
)

// maxBodyBytes caps request bodies. Backup imports are the largest payloads
// and stay well under this for any realistic trip count.
const maxBodyBytes int64 = 10 << 20 // 10 MiB

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// Two backends share the same repository interfaces: Postgres for shared
	// deployments, a local SQLite file for zero-setup single-user use.
	var (
		tripRepo repo.TripRepo
		planRepo repo.DayPlanRepo
		expRepo  repo.ExpenseRepo
		docRepo  repo.DocumentRepo
		packRepo repo.PackingItemRepo
		snapRepo repo.SnapshotRepo
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
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

		if err := migrate(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database ready", "driver", cfg.StorageDriver)

		tripRepo = repo.NewTripRepo(pool, cfg.OwnerID)
		planRepo = repo.NewDayPlanRepo(pool, cfg.OwnerID)
		expRepo = repo.NewExpenseRepo(pool, cfg.OwnerID)
		docRepo = repo.NewDocumentRepo(pool, cfg.OwnerID)
		packRepo = repo.NewPackingItemRepo(pool, cfg.OwnerID)
		snapRepo = repo.NewSnapshotRepo(pool, cfg.OwnerID)

	case config.DriverSQLite:
		store, err := localstore.Open(cfg.SQLitePath)
		if err != nil {
			slog.Error("failed to open local store", "error", err, "path", cfg.SQLitePath)
			os.Exit(1)
		}
		defer store.Close()
		slog.Info("database ready", "driver", cfg.StorageDriver, "path", cfg.SQLitePath)

		tripRepo = store.Trips()
		planRepo = store.DayPlans()
		expRepo = store.Expenses()
		docRepo = store.Documents()
		packRepo = store.PackingItems()
		snapRepo = store.Snapshots()
	}

	// --- Services ---------------------------------------------------------
	weatherClient := weather.NewClient(nil, cfg.WeatherGeocodingURL, cfg.WeatherForecastURL)

	srv := handler.NewServer(
		service.NewTripService(tripRepo),
		service.NewItineraryService(tripRepo, planRepo),
		service.NewExpenseService(tripRepo, expRepo),
		service.NewDocumentService(tripRepo, docRepo),
		service.NewPackingService(tripRepo, packRepo),
		service.NewSnapshotService(tripRepo, snapRepo),
		weather.NewService(weatherClient),
	)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS → body cap.
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
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies any pending schema migrations. goose needs a database/sql
// connection, so a short-lived one is opened just for this step.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("applied migration", "migration", res.Source.Path)
	}
	return nil
}
