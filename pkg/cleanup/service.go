// Package cleanup provides data retention for the jobs and events tables.
package cleanup

import (
	"context"
	stdsql "database/sql"
	"log/slog"
	"time"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/pkg/config"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal jobs past the retention window
//   - Removes event rows past their TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	cfg    config.RetentionConfig
	client *ent.Client
	db     *stdsql.DB

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, client *ent.Client, db *stdsql.DB) *Service {
	return &Service{cfg: cfg, client: client, db: db}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.cfg.JobRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention pass.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteOldJobs(ctx)
	s.cleanupOldEvents(ctx)
}

// softDeleteOldJobs hides terminal jobs older than the retention window.
// Soft delete keeps the rows for audits; the API stops returning them.
func (s *Service) softDeleteOldJobs(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.JobRetentionDays)
	count, err := s.client.Job.Update().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.CompletedAtNotNil(),
			job.CompletedAtLT(cutoff),
			job.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		slog.Error("Retention: soft-delete jobs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old jobs", "count", count)
	}
}

// cleanupOldEvents purges notification event rows past the TTL. Events are
// a live catch-up buffer, not a historical record.
func (s *Service) cleanupOldEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.EventTTL)
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count, err := res.RowsAffected(); err == nil && count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}
