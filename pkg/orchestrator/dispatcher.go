package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/models"
)

var errNoPendingJobs = errors.New("no pending jobs")

// Dispatcher assigns pending jobs to idle workers and recovers orphans.
// Multiple orchestrator replicas may run dispatchers concurrently; the
// claim query uses FOR UPDATE SKIP LOCKED so they never double-assign.
type Dispatcher struct {
	cfg         config.OrchestratorConfig
	client      *ent.Client
	jobs        *JobService
	datasources *DatasourceService
	loader      *config.Loader
	workers     *WorkerRegistry

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given services.
func NewDispatcher(cfg config.OrchestratorConfig, client *ent.Client, jobs *JobService, datasources *DatasourceService, loader *config.Loader, workers *WorkerRegistry) *Dispatcher {
	return &Dispatcher{
		cfg:         cfg,
		client:      client,
		jobs:        jobs,
		datasources: datasources,
		loader:      loader,
		workers:     workers,
		stopCh:      make(chan struct{}),
	}
}

// Start launches the dispatch and orphan-detection loops.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(2)
	go d.runDispatch(ctx)
	go d.runOrphanDetection(ctx)
}

// Stop signals the loops to exit and waits for them. Safe to call twice.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
}

func (d *Dispatcher) runDispatch(ctx context.Context) {
	defer d.wg.Done()
	slog.Info("Dispatcher started", "interval", d.cfg.DispatchInterval, "workers", len(d.workers.Clients()))

	for {
		select {
		case <-d.stopCh:
			slog.Info("Dispatcher shutting down")
			return
		case <-ctx.Done():
			return
		case <-time.After(d.pollInterval()):
			if err := d.dispatchOnce(ctx); err != nil {
				slog.Error("Dispatch pass failed", "error", err)
			}
		}
	}
}

// dispatchOnce pairs pending jobs with idle workers until either runs out.
func (d *Dispatcher) dispatchOnce(ctx context.Context) error {
	for {
		worker := d.workers.Idle(ctx)
		if worker == nil {
			return nil
		}

		j, err := d.claimNext(ctx, worker)
		if errors.Is(err, errNoPendingJobs) {
			return nil
		}
		if err != nil {
			return err
		}

		payload, err := d.buildJobStart(ctx, j)
		if err != nil {
			// Fatal config: fail fast with an explicit message rather than
			// bouncing the job between pending and assigned forever.
			if markErr := d.jobs.MarkFailed(ctx, j.ID, fmt.Sprintf("fatal config: %v", err)); markErr != nil {
				slog.Error("Failed to mark misconfigured job failed", "job_id", j.ID, "error", markErr)
			}
			continue
		}

		if err := worker.StartJob(ctx, payload); err != nil {
			slog.Warn("Worker rejected job start", "job_id", j.ID, "worker", worker.BaseURL(), "error", err)
			if requeueErr := d.requeue(ctx, j.ID); requeueErr != nil {
				slog.Error("Failed to requeue job", "job_id", j.ID, "error", requeueErr)
			}
			if errors.Is(err, ErrWorkerBusy) {
				// Lost a race for the worker's lease; another worker may be free.
				continue
			}
			return err
		}

		slog.Info("Job assigned", "job_id", j.ID, "worker", worker.BaseURL())
		d.jobs.NotifyAssigned(ctx, j)
	}
}

// claimNext atomically claims the oldest pending job using
// FOR UPDATE SKIP LOCKED, marking it assigned to the given worker.
func (d *Dispatcher) claimNext(ctx context.Context, worker *WorkerClient) (*ent.Job, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.DeletedAtIsNil(),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errNoPendingJobs
		}
		return nil, fmt.Errorf("failed to query pending jobs: %w", err)
	}

	now := time.Now()
	update := j.Update().
		SetStatus(job.StatusAssigned).
		SetWorkerURL(worker.BaseURL()).
		SetLastHeartbeatAt(now)
	// A requeued job keeps its original start time so the wall-clock
	// budget spans re-assignments.
	if j.StartedAt == nil {
		update.SetStartedAt(now)
	}
	j, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// requeue puts an assigned job back to pending after a failed handoff.
func (d *Dispatcher) requeue(ctx context.Context, jobID string) error {
	return d.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusPending).
		ClearWorkerID().
		ClearWorkerURL().
		ClearStartedAt().
		Exec(ctx)
}

// buildJobStart resolves the effective config and datasources for a job.
// The result is immutable for the job's lifetime on the worker.
func (d *Dispatcher) buildJobStart(ctx context.Context, j *ent.Job) (*models.JobStart, error) {
	resolved, err := d.loader.Resolve(j.ExpertID, j.ConfigOverride)
	if err != nil {
		return nil, err
	}

	bindings, err := d.datasources.ResolveForJob(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	ApplyToolOverride(resolved, bindings)
	resolved["autonomy"] = string(j.Autonomy)

	// Validate before handing off so a broken bundle fails here, with an
	// explicit message, instead of on the worker.
	if _, err := config.FromMap(resolved); err != nil {
		return nil, err
	}

	uploads, err := decodeUploads(j.Uploads)
	if err != nil {
		return nil, err
	}

	return &models.JobStart{
		JobID:          j.ID,
		Description:    j.Description,
		ExpertID:       j.ExpertID,
		ResolvedConfig: resolved,
		Datasources:    bindings,
		Uploads:        uploads,
		Autonomy:       models.AutonomyLevel(j.Autonomy),
	}, nil
}

// Resume continues a frozen job: approval completes it on the worker,
// feedback reopens it into a strategic process-feedback phase.
func (d *Dispatcher) Resume(ctx context.Context, jobID string, approved bool, feedback string) error {
	j, err := d.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if j.Status != job.StatusPendingReview && j.Status != job.StatusFrozen {
		return fmt.Errorf("%w: cannot resume job in status %s", ErrInvalidTransition, j.Status)
	}

	worker := d.workers.Idle(ctx)
	if worker == nil {
		return ErrNoIdleWorker
	}

	payload, err := d.buildJobStart(ctx, j)
	if err != nil {
		return fmt.Errorf("failed to rebuild job payload: %w", err)
	}
	resume := &models.JobResume{
		JobStart:     *payload,
		Approved:     approved,
		FeedbackText: feedback,
	}
	if err := worker.ResumeJob(ctx, resume); err != nil {
		return err
	}

	if err := d.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusAssigned).
		SetWorkerURL(worker.BaseURL()).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record resume assignment: %w", err)
	}
	slog.Info("Job resumed", "job_id", jobID, "approved", approved, "has_feedback", feedback != "", "worker", worker.BaseURL())
	return nil
}

// Cancel stops a job wherever it is: queued jobs are cancelled directly,
// jobs on a worker get a cooperative /cancel and report back through the
// status callback.
func (d *Dispatcher) Cancel(ctx context.Context, jobID string) error {
	j, err := d.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}

	switch j.Status {
	case job.StatusCompleted, job.StatusFailed, job.StatusCancelled:
		return fmt.Errorf("%w: job already %s", ErrInvalidTransition, j.Status)
	case job.StatusCreated, job.StatusPending, job.StatusPendingReview, job.StatusFrozen:
		return d.jobs.MarkCancelled(ctx, jobID)
	}

	if j.WorkerURL == nil || *j.WorkerURL == "" {
		return d.jobs.MarkCancelled(ctx, jobID)
	}
	worker := d.workers.ByURL(*j.WorkerURL)
	if err := worker.CancelJob(ctx, jobID); err != nil {
		slog.Warn("Worker cancel failed, cancelling directly", "job_id", jobID, "error", err)
		return d.jobs.MarkCancelled(ctx, jobID)
	}
	slog.Info("Cancellation requested", "job_id", jobID, "worker", *j.WorkerURL)
	return nil
}

// pollInterval returns the dispatch interval with jitter so replicas do
// not thunder at the jobs table together.
func (d *Dispatcher) pollInterval() time.Duration {
	base := d.cfg.DispatchInterval
	jitter := d.cfg.DispatchJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
