// Command api is the WER Standings API server.
//
// Usage:
//
//	wer-api
//	API_PORT=8080 SCHEDULE_FILE=data/schedule.json wer-api

// @title WER Standings API
// @version 1.0.0
// @description Women's Elite Rugby schedule and standings projector. Create a scenario, enter hypothetical scores, and read back the recomputed table.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name WER Standings
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/wer-standings/internal/api"
	"github.com/albapepper/wer-standings/internal/api/handler"
	"github.com/albapepper/wer-standings/internal/cache"
	"github.com/albapepper/wer-standings/internal/config"
	"github.com/albapepper/wer-standings/internal/dataset"
	"github.com/albapepper/wer-standings/internal/live"
	"github.com/albapepper/wer-standings/internal/maintenance"
	"github.com/albapepper/wer-standings/internal/scenario"

	_ "github.com/albapepper/wer-standings/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Load the season
	season, err := dataset.LoadFiles(cfg.ScheduleFile, cfg.StandingsFile, cfg.OverridesFile)
	if err != nil {
		logger.Error("Failed to load season", "error", err)
		os.Exit(1)
	}
	logger.Info("Season loaded",
		"games", len(season.Games),
		"teams", len(season.Baseline),
		"schedule", sourceName(cfg.ScheduleFile),
		"standings", sourceName(cfg.StandingsFile))

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Live push and scenarios
	hub := live.NewHub(cfg.CORSAllowOrigins, logger)
	store := scenario.NewStore(season, cfg.Rules(), cfg.ScenarioTTL, hub, logger)
	h := handler.New(season, store, appCache, hub, cfg, logger)

	// Start maintenance tickers (idle scenario eviction, usage report)
	go maintenance.Start(ctx, maintenance.Deps{
		Scenarios: store,
		Forget:    h.Forget,
		Cache:     appCache,
	}, maintenance.DefaultConfig(cfg.ScenarioTTL), logger)

	// Create router
	router := api.NewRouter(h, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting WER Standings API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

func sourceName(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}
