package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/job"
)

// runOrphanDetection periodically scans for jobs whose worker went silent
// and for jobs past the wall-clock limit. All orchestrator replicas run
// this independently; the recovery writes are idempotent.
func (d *Dispatcher) runOrphanDetection(ctx context.Context) {
	defer d.wg.Done()

	// Scan at the heartbeat timeout granularity; finer adds nothing.
	interval := d.cfg.HeartbeatTimeout / 3
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans requeues running jobs with stale heartbeats and
// fails any non-terminal job that exceeded the wall-clock budget. A stale
// heartbeat means the worker died, not the job: the checkpoint trail is
// intact, so the job goes back to pending for re-assignment.
func (d *Dispatcher) detectAndRecoverOrphans(ctx context.Context) error {
	heartbeatThreshold := time.Now().Add(-d.cfg.HeartbeatTimeout)

	orphans, err := d.client.Job.Query().
		Where(
			job.StatusIn(job.StatusAssigned, job.StatusRunning),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(heartbeatThreshold),
			job.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}
	for _, j := range orphans {
		workerID := "unknown"
		if j.WorkerID != nil {
			workerID = *j.WorkerID
		}
		lastHeartbeat := "never"
		if j.LastHeartbeatAt != nil {
			lastHeartbeat = j.LastHeartbeatAt.Format(time.RFC3339)
		}
		reason := fmt.Sprintf("no heartbeat from worker %s since %s", workerID, lastHeartbeat)
		if err := d.jobs.Requeue(ctx, j.ID, reason); err != nil {
			slog.Error("Failed to requeue orphaned job", "job_id", j.ID, "error", err)
		}
	}

	wallClockThreshold := time.Now().Add(-d.cfg.JobWallClock)
	expired, err := d.client.Job.Query().
		Where(
			job.StatusNotIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.StartedAtNotNil(),
			job.StartedAtLT(wallClockThreshold),
			job.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired jobs: %w", err)
	}
	for _, j := range expired {
		reason := fmt.Sprintf("Wall-clock limit exceeded: job started %s, limit %s",
			j.StartedAt.Format(time.RFC3339), d.cfg.JobWallClock)
		if err := d.jobs.MarkFailed(ctx, j.ID, reason); err != nil {
			slog.Error("Failed to expire job", "job_id", j.ID, "error", err)
		}
	}

	if len(orphans) > 0 || len(expired) > 0 {
		slog.Warn("Orphan scan recovered jobs", "stale_heartbeats", len(orphans), "wall_clock", len(expired))
	}
	return nil
}

// RecoverStartupJobs reconciles assigned/running jobs against their
// recorded workers once at startup. A worker that restarted holds no lease
// anymore, so a job it no longer reports goes back to pending and the next
// assignment resumes it from its latest checkpoint.
func (d *Dispatcher) RecoverStartupJobs(ctx context.Context) error {
	inFlight, err := d.client.Job.Query().
		Where(
			job.StatusIn(job.StatusAssigned, job.StatusRunning),
			job.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query in-flight jobs: %w", err)
	}
	if len(inFlight) == 0 {
		return nil
	}
	slog.Info("Reconciling in-flight jobs at startup", "count", len(inFlight))

	for _, j := range inFlight {
		if d.workerStillRuns(ctx, j) {
			continue
		}
		workerID := "unknown"
		if j.WorkerID != nil {
			workerID = *j.WorkerID
		}
		reason := fmt.Sprintf("worker %s restarted while job was in progress", workerID)
		if err := d.jobs.Requeue(ctx, j.ID, reason); err != nil {
			slog.Error("Failed to requeue startup orphan", "job_id", j.ID, "error", err)
		}
	}
	return nil
}

func (d *Dispatcher) workerStillRuns(ctx context.Context, j *ent.Job) bool {
	if j.WorkerURL == nil || *j.WorkerURL == "" {
		return false
	}
	status, err := d.workers.ByURL(*j.WorkerURL).Status(ctx)
	if err != nil {
		// Unreachable worker is handled by the heartbeat scan, not here.
		return true
	}
	return status.Busy && status.JobID == j.ID
}
