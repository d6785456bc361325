// Praxis orchestrator server: HTTP API, job dispatch, orphan recovery,
// and retention.
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

	"github.com/joho/godotenv"

	"github.com/praxis-works/praxis/pkg/api"
	"github.com/praxis-works/praxis/pkg/cleanup"
	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/database"
	"github.com/praxis-works/praxis/pkg/events"
	"github.com/praxis-works/praxis/pkg/orchestrator"
	"github.com/praxis-works/praxis/pkg/slack"
	"github.com/praxis-works/praxis/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.LoadOrchestratorFromEnv()
	if err != nil {
		slog.Error("Failed to load orchestrator config", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting praxis orchestrator",
		"version", version.Full(),
		"port", cfg.Port,
		"config_dir", cfg.ConfigDir,
		"workers", len(cfg.WorkerURLs))

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(2)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	publisher := events.NewPublisher(dbClient.DB())
	slackService := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv("SLACK_BOT_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL_ID"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	})
	if slackService != nil {
		slog.Info("Slack notifications enabled")
	}

	jobService := orchestrator.NewJobService(dbClient.Client, publisher, slackService)
	datasourceService := orchestrator.NewDatasourceService(dbClient.Client)
	if err := datasourceService.SeedDefaultsFromEnv(ctx); err != nil {
		slog.Error("Failed to seed default datasources", "error", err)
		os.Exit(1)
	}

	loader := config.NewLoader(cfg.ConfigDir)
	registry := orchestrator.NewWorkerRegistry(cfg.WorkerURLs)
	dispatcher := orchestrator.NewDispatcher(cfg, dbClient.Client, jobService, datasourceService, loader, registry)

	// Reconcile jobs left in flight by a previous orchestrator process
	// before dispatching anything new.
	if err := dispatcher.RecoverStartupJobs(ctx); err != nil {
		slog.Error("Startup job recovery failed", "error", err)
		// Non-fatal; the heartbeat scan picks up whatever this missed.
	}
	dispatcher.Start(ctx)

	retentionCfg, err := config.LoadRetentionFromEnv()
	if err != nil {
		slog.Error("Failed to load retention config", "error", err)
		os.Exit(1)
	}
	cleanupService := cleanup.NewService(retentionCfg, dbClient.Client, dbClient.DB())
	cleanupService.Start(ctx)

	server := api.NewServer(dbClient, jobService, datasourceService, dispatcher)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	dispatcher.Stop()
	cleanupService.Stop()

	// Give in-flight event publishes a moment to drain before the pool
	// closes underneath them.
	time.Sleep(100 * time.Millisecond)
	slog.Info("Shutdown complete")
}
