package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// OrchestratorConfig holds the orchestrator process settings, loaded from
// the environment.
type OrchestratorConfig struct {
	Port             int
	ConfigDir        string
	WorkerURLs       []string
	DispatchInterval time.Duration
	DispatchJitter   time.Duration
	HeartbeatTimeout time.Duration
	JobWallClock     time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultOrchestratorConfig returns production defaults.
func DefaultOrchestratorConfig() OrchestratorConfig {
	return OrchestratorConfig{
		Port:             8080,
		ConfigDir:        "./config",
		DispatchInterval: 2 * time.Second,
		DispatchJitter:   500 * time.Millisecond,
		HeartbeatTimeout: 3 * time.Minute,
		JobWallClock:     7 * 24 * time.Hour,
		ShutdownTimeout:  30 * time.Second,
	}
}

// LoadOrchestratorFromEnv builds the orchestrator config from environment
// variables, falling back to defaults.
func LoadOrchestratorFromEnv() (OrchestratorConfig, error) {
	cfg := DefaultOrchestratorConfig()
	var err error
	if cfg.Port, err = envInt("ORCHESTRATOR_PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if v := os.Getenv("CONFIG_DIR"); v != "" {
		cfg.ConfigDir = v
	}
	if v := os.Getenv("WORKER_URLS"); v != "" {
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				cfg.WorkerURLs = append(cfg.WorkerURLs, u)
			}
		}
	}
	if cfg.DispatchInterval, err = envDuration("DISPATCH_INTERVAL", cfg.DispatchInterval); err != nil {
		return cfg, err
	}
	if cfg.HeartbeatTimeout, err = envDuration("HEARTBEAT_TIMEOUT", cfg.HeartbeatTimeout); err != nil {
		return cfg, err
	}
	if cfg.JobWallClock, err = envDuration("JOB_WALL_CLOCK_TIMEOUT", cfg.JobWallClock); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WorkerConfig holds the agent worker process settings.
type WorkerConfig struct {
	Port              int
	WorkerID          string
	OrchestratorURL   string
	WorkspaceRoot     string
	HeartbeatInterval time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultWorkerConfig returns production defaults. WorkerID falls back to
// the hostname so each pod gets a stable identity.
func DefaultWorkerConfig() WorkerConfig {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "agent-worker"
	}
	return WorkerConfig{
		Port:              8081,
		WorkerID:          hostname,
		WorkspaceRoot:     "./workspaces",
		HeartbeatInterval: 30 * time.Second,
		ShutdownTimeout:   30 * time.Second,
	}
}

// LoadWorkerFromEnv builds the worker config from environment variables.
func LoadWorkerFromEnv() (WorkerConfig, error) {
	cfg := DefaultWorkerConfig()
	var err error
	if cfg.Port, err = envInt("WORKER_PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if v := os.Getenv("WORKER_ID"); v != "" {
		cfg.WorkerID = v
	}
	if v := os.Getenv("ORCHESTRATOR_URL"); v != "" {
		cfg.OrchestratorURL = v
	}
	if v := os.Getenv("WORKSPACE_ROOT"); v != "" {
		cfg.WorkspaceRoot = v
	}
	if cfg.HeartbeatInterval, err = envDuration("HEARTBEAT_INTERVAL", cfg.HeartbeatInterval); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RetentionConfig controls the background retention sweeper: how long
// finished jobs stay queryable and how long event rows are kept.
type RetentionConfig struct {
	JobRetentionDays int
	EventTTL         time.Duration
	CleanupInterval  time.Duration
}

// DefaultRetentionConfig returns production defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		JobRetentionDays: 90,
		EventTTL:         24 * time.Hour,
		CleanupInterval:  6 * time.Hour,
	}
}

// LoadRetentionFromEnv builds the retention config from environment
// variables, falling back to defaults.
func LoadRetentionFromEnv() (RetentionConfig, error) {
	cfg := DefaultRetentionConfig()
	var err error
	if cfg.JobRetentionDays, err = envInt("JOB_RETENTION_DAYS", cfg.JobRetentionDays); err != nil {
		return cfg, err
	}
	if cfg.EventTTL, err = envDuration("EVENT_TTL", cfg.EventTTL); err != nil {
		return cfg, err
	}
	if cfg.CleanupInterval, err = envDuration("CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return d, nil
}
