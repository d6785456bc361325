package slack

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// JobStartedInput contains data for a job start notification.
type JobStartedInput struct {
	JobID       string
	Description string
}

// JobFinishedInput contains data for a terminal or review notification.
type JobFinishedInput struct {
	JobID        string
	Description  string
	Status       string // completed, failed, cancelled, pending_review
	Summary      string
	ErrorMessage string
}

// Service handles Slack notification delivery. It remembers the start
// message timestamp per job so later updates thread under it.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger

	mu      sync.Mutex
	threads map[string]string // job id -> thread ts
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return NewServiceWithClient(NewClient(cfg.Token, cfg.Channel), cfg.DashboardURL)
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
		threads:      make(map[string]string),
	}
}

// NotifyJobStarted sends a "job started" notification and caches its
// timestamp for threading. Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobStarted(ctx context.Context, input JobStartedInput) {
	if s == nil {
		return
	}
	blocks := BuildStartedMessage(input, s.dashboardURL)
	ts, err := s.client.PostMessage(ctx, blocks, "", 5*time.Second)
	if err != nil {
		s.logger.Error("Failed to send Slack start notification",
			"job_id", input.JobID, "error", err)
		return
	}
	s.mu.Lock()
	s.threads[input.JobID] = ts
	s.mu.Unlock()
}

// NotifyJobFinished sends a terminal or review notification, threaded
// under the job's start message when one was sent from this process.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobFinished(ctx context.Context, input JobFinishedInput) {
	if s == nil {
		return
	}
	s.mu.Lock()
	threadTS := s.threads[input.JobID]
	if input.Status != "pending_review" {
		// Terminal statuses end the thread's useful life.
		delete(s.threads, input.JobID)
	}
	s.mu.Unlock()

	blocks := BuildFinishedMessage(input, s.dashboardURL)
	if _, err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"job_id", input.JobID, "status", input.Status, "error", err)
	}
}
