package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nilesh2630/floorplan/internal/config"
	"github.com/nilesh2630/floorplan/internal/merge"
	"github.com/nilesh2630/floorplan/internal/server/handlers"
	"github.com/nilesh2630/floorplan/internal/server/middleware"
	"github.com/nilesh2630/floorplan/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("Floor plan server starting",
		"version", Version,
		"listen_address", cfg.ListenAddress,
		"sqlite_path", cfg.SQLitePath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.SQLitePath, merge.ShallowMerge{})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	jwtCfg := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           newRouter(logger, store, jwtCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "address", cfg.ListenAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// newRouter wires the API routes with the middleware chain.
func newRouter(logger *slog.Logger, store *sqlite.Storage, jwtCfg handlers.JWTConfig) http.Handler {
	healthHandler := handlers.NewHealthHandler(logger)
	authHandler := handlers.NewAuthHandler(logger, store, jwtCfg)
	planHandler := handlers.NewFloorPlanHandler(logger, store)

	authed := middleware.AuthMiddleware(logger, jwtCfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	mux.Handle("POST /api/v1/floorplans", authed(http.HandlerFunc(planHandler.Create)))
	mux.Handle("GET /api/v1/floorplans", authed(http.HandlerFunc(planHandler.List)))
	mux.Handle("GET /api/v1/floorplans/{id}", authed(http.HandlerFunc(planHandler.Get)))
	mux.Handle("PUT /api/v1/floorplans/{id}", authed(http.HandlerFunc(planHandler.Update)))
	mux.Handle("DELETE /api/v1/floorplans/{id}", authed(http.HandlerFunc(planHandler.Delete)))
	mux.Handle("POST /api/v1/floorplans/{id}/sync", authed(http.HandlerFunc(planHandler.SyncBatch)))

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("Floor Plan Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
