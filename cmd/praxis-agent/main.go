// Praxis agent worker: runs one job at a time against its file-backed
// workspace and reports status back to the orchestrator.
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

	"github.com/joho/godotenv"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/database"
	"github.com/praxis-works/praxis/pkg/version"
	"github.com/praxis-works/praxis/pkg/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.LoadWorkerFromEnv()
	if err != nil {
		slog.Error("Failed to load worker config", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting praxis agent worker",
		"version", version.Full(),
		"worker_id", cfg.WorkerID,
		"port", cfg.Port,
		"workspace_root", cfg.WorkspaceRoot,
		"orchestrator_url", cfg.OrchestratorURL)

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

	checkpoints := database.NewCheckpointStore(dbClient)
	notifier := worker.NewOrchestratorCallback(cfg.OrchestratorURL)
	runner := worker.NewRunner(cfg, checkpoints, notifier, nil)
	server := worker.NewServer(runner)

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

	// Let the current job finish its checkpoint write; an interrupted job
	// is recovered from its last checkpoint on resume.
	if !runner.Wait(cfg.ShutdownTimeout) {
		slog.Warn("Job still running at shutdown deadline; relying on checkpoint recovery")
		os.Exit(3)
	}
	slog.Info("Shutdown complete")
}
