/*
Package main is the entry point for the Community API.

It is responsible for loading configuration, initializing the global logging system,
opening the user store (PostgreSQL or in-memory, optionally behind a Redis cache),
setting up the HTTP server, and gracefully handling operating system interrupt
signals (SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soaresgus/community-backend/internal/app/bootstrap"
	"github.com/soaresgus/community-backend/internal/configs"
	"github.com/soaresgus/community-backend/internal/handler"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
	"github.com/soaresgus/community-backend/internal/pkg/metrics"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment(), cfg.LogLevel)
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("store_driver", cfg.StoreDriver).
		Bool("cache", cfg.RedisURL != "").
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.NewStore(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to open user store")
	}
	defer closeStore()

	deps := &handler.AppDeps{
		Config:  cfg,
		Users:   bootstrap.NewService(store, cfg),
		Metrics: metrics.NewHTTP(),
	}

	// Setup HTTP server and routes
	router := handler.Router(ctx, deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Community API starting on http://localhost%s (docs at /docs/index.html)", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
		return
	}

	logx.Info("Server gracefully stopped.")
}
