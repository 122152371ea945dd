// Package main is the entry point for the shop API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/shopapi/internal/config"
	"github.com/pkordes/shopapi/internal/handler"
	"github.com/pkordes/shopapi/internal/mapper"
	"github.com/pkordes/shopapi/internal/middleware"
	"github.com/pkordes/shopapi/internal/repo"
	"github.com/pkordes/shopapi/internal/service"
	"github.com/pkordes/shopapi/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadEnvFiles(); err != nil {
		slog.Error("env file error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
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

	// --- Storage ----------------------------------------------------------
	customers, vendors, closeStore, err := openRepos(context.Background(), cfg)
	if err != nil {
		slog.Error("storage setup failed", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- Services ---------------------------------------------------------
	srv := handler.NewServer(
		service.NewCustomerService(customers, mapper.Customer{}),
		service.NewVendorService(vendors, mapper.Vendor{}),
		logger,
	)

	// --- Router -----------------------------------------------------------
	// RequestID must run before the logger so each line carries the ID.
	// Recoverer turns panics into 500s instead of crashing the process.
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(metrics.Handler)
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", srv.Handler())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
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
		slog.Info("server starting", "addr", httpSrv.Addr, "storage", cfg.StorageBackend)
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

// openRepos builds the repositories for the configured storage backend.
// The returned close function releases the database pool, if any.
func openRepos(ctx context.Context, cfg config.Config) (repo.CustomerRepo, repo.VendorRepo, func(), error) {
	if cfg.StorageBackend == config.StorageMemory {
		slog.Warn("using in-memory storage; data is lost on restart")
		return repo.NewMemoryCustomerRepo(), repo.NewMemoryVendorRepo(), func() {}, nil
	}

	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create database pool: %w", err)
	}

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	slog.Info("database connection established")

	if cfg.AutoMigrate {
		db := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, db)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		slog.Info("migrations applied", "count", applied)
	}

	return repo.NewCustomerRepo(pool), repo.NewVendorRepo(pool), pool.Close, nil
}
