// Package orchestrator owns the jobs table and routes work to agent
// workers: submission, dispatch, status callbacks, review gates, orphan
// recovery.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/pkg/events"
	"github.com/praxis-works/praxis/pkg/masking"
	"github.com/praxis-works/praxis/pkg/models"
	praxisslack "github.com/praxis-works/praxis/pkg/slack"
)

// CreateJobRequest is the POST /jobs body.
type CreateJobRequest struct {
	Description    string          `json:"description"`
	ExpertID       string          `json:"expert_id,omitempty"`
	Autonomy       string          `json:"autonomy,omitempty"`
	ConfigOverride map[string]any  `json:"config_override,omitempty"`
	DatasourceIDs  []string        `json:"datasource_ids,omitempty"`
	Uploads        []models.Upload `json:"uploads,omitempty"`
}

// JobService manages job lifecycle. Status is mutated only here; workers
// propose transitions through status callbacks.
type JobService struct {
	client    *ent.Client
	publisher *events.Publisher
	slack     *praxisslack.Service
}

// NewJobService creates a new JobService. publisher and slack may be nil.
func NewJobService(client *ent.Client, publisher *events.Publisher, slack *praxisslack.Service) *JobService {
	return &JobService{client: client, publisher: publisher, slack: slack}
}

// Create validates and persists a new job in status pending, binding any
// requested datasources as job-scoped copies.
func (s *JobService) Create(ctx context.Context, req CreateJobRequest) (*ent.Job, error) {
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	autonomy := req.Autonomy
	if autonomy == "" {
		autonomy = string(models.AutonomyFull)
	}
	if !models.ValidAutonomy(autonomy) {
		return nil, NewValidationError("autonomy", fmt.Sprintf("unknown level %q", autonomy))
	}

	uploads, err := encodeUploads(req.Uploads)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	jobID := uuid.New().String()
	builder := tx.Job.Create().
		SetID(jobID).
		SetDescription(req.Description).
		SetStatus(job.StatusPending).
		SetAutonomy(job.Autonomy(autonomy))
	if req.ExpertID != "" {
		builder.SetExpertID(req.ExpertID)
	}
	if req.ConfigOverride != nil {
		builder.SetConfigOverride(req.ConfigOverride)
	}
	if uploads != nil {
		builder.SetUploads(uploads)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	// A bound datasource becomes a job-scoped copy so later edits to the
	// original cannot change a job already submitted.
	for _, dsID := range req.DatasourceIDs {
		ds, err := tx.Datasource.Query().Where(datasource.IDEQ(dsID)).Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: datasource %s", ErrNotFound, dsID)
			}
			return nil, fmt.Errorf("failed to load datasource %s: %w", dsID, err)
		}
		_, err = tx.Datasource.Create().
			SetID(uuid.New().String()).
			SetType(ds.Type).
			SetName(ds.Name).
			SetDescription(ds.Description).
			SetConnectionURL(ds.ConnectionURL).
			SetCredentials(ds.Credentials).
			SetReadOnly(ds.ReadOnly).
			SetScope(datasource.ScopeJob).
			SetJobID(jobID).
			SetScopeKey(jobID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("%w: job already has a %s datasource", ErrAlreadyExists, ds.Type)
			}
			return nil, fmt.Errorf("failed to bind datasource %s: %w", dsID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job creation: %w", err)
	}

	slog.Info("Job created", "job_id", created.ID, "autonomy", autonomy, "expert_id", req.ExpertID)
	s.publishStatus(ctx, created.ID, models.JobStatusPending, 0, 0)
	return created, nil
}

// Get returns a job by id.
func (s *JobService) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(job.IDEQ(jobID), job.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return j, nil
}

// List returns jobs, optionally filtered by status, newest first.
func (s *JobService) List(ctx context.Context, status string) ([]*ent.Job, error) {
	q := s.client.Job.Query().Where(job.DeletedAtIsNil())
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
		}
		q = q.Where(job.StatusEQ(job.Status(status)))
	}
	jobs, err := q.Order(ent.Desc(job.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ApplyCallback folds a worker status callback into the jobs table:
// heartbeat counters always, status transitions where the state machine
// allows them.
func (s *JobService) ApplyCallback(ctx context.Context, jobID string, cb models.StatusCallback) (*ent.Job, error) {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if isTerminal(j.Status) {
		// Late heartbeat from a worker that lost the race with cancel or
		// orphan recovery.
		slog.Debug("Ignoring callback for terminal job", "job_id", jobID, "status", j.Status)
		return j, nil
	}

	now := time.Now()
	update := s.client.Job.UpdateOneID(jobID).
		SetLastHeartbeatAt(now).
		SetIterationCount(cb.IterationCount).
		SetInputTokens(cb.Tokens.InputTokens).
		SetOutputTokens(cb.Tokens.OutputTokens).
		SetTotalTokens(cb.Tokens.TotalTokens)
	if cb.Phase != "" {
		update.SetPhaseType(string(cb.Phase))
	}
	if cb.PhaseNumber > 0 {
		update.SetPhaseNumber(cb.PhaseNumber)
	}

	switch cb.Status {
	case models.JobStatusRunning:
		if j.Status == job.StatusAssigned || j.Status == job.StatusRunning ||
			j.Status == job.StatusPendingReview {
			update.SetStatus(job.StatusRunning)
		}
	case models.JobStatusPendingReview:
		update.SetStatus(job.StatusPendingReview)
	case models.JobStatusCompleted, models.JobStatusFailed, models.JobStatusCancelled:
		update.SetStatus(job.Status(cb.Status)).
			SetCompletedAt(now).
			ClearWorkerID().
			ClearWorkerURL()
		if cb.ErrorMessage != "" {
			update.SetErrorMessage(masking.Mask(cb.ErrorMessage))
		}
	}
	if cb.Summary != "" {
		update.SetSummary(cb.Summary)
	}
	if len(cb.Deliverables) > 0 {
		update.SetDeliverables(cb.Deliverables)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply status callback: %w", err)
	}

	if updated.Status != j.Status {
		slog.Info("Job status changed", "job_id", jobID, "from", j.Status, "to", updated.Status)
		s.publishStatus(ctx, jobID, models.JobStatus(updated.Status), cb.PhaseNumber, cb.IterationCount)
		s.notifySlack(ctx, updated)
	}
	return updated, nil
}

// MarkFailed moves a non-terminal job to failed with the given reason.
func (s *JobService) MarkFailed(ctx context.Context, jobID, reason string) error {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if isTerminal(j.Status) {
		return nil
	}
	updated, err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusFailed).
		SetErrorMessage(masking.Mask(reason)).
		SetCompletedAt(time.Now()).
		ClearWorkerID().
		ClearWorkerURL().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	slog.Warn("Job failed", "job_id", jobID, "reason", reason)
	s.publishStatus(ctx, jobID, models.JobStatusFailed, updated.PhaseNumber, updated.IterationCount)
	s.notifySlack(ctx, updated)
	return nil
}

// Requeue returns a non-terminal job to pending so the dispatcher can
// hand it to another worker. The checkpoint trail stays authoritative;
// the next worker resumes from it instead of replaying finished work.
func (s *JobService) Requeue(ctx context.Context, jobID, reason string) error {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if isTerminal(j.Status) {
		return nil
	}
	updated, err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusPending).
		ClearWorkerID().
		ClearWorkerURL().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}
	slog.Warn("Job requeued", "job_id", jobID, "reason", reason)
	s.publishStatus(ctx, jobID, models.JobStatusPending, updated.PhaseNumber, updated.IterationCount)
	return nil
}

// MarkCancelled moves a job that is not on a worker straight to cancelled.
func (s *JobService) MarkCancelled(ctx context.Context, jobID string) error {
	updated, err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearWorkerID().
		ClearWorkerURL().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel job: %w", err)
	}
	slog.Info("Job cancelled", "job_id", jobID)
	s.publishStatus(ctx, jobID, models.JobStatusCancelled, updated.PhaseNumber, updated.IterationCount)
	s.notifySlack(ctx, updated)
	return nil
}

// NotifyAssigned announces a fresh assignment on the event and Slack
// surfaces. The status row itself is written by the dispatcher's claim.
func (s *JobService) NotifyAssigned(ctx context.Context, j *ent.Job) {
	s.publishStatus(ctx, j.ID, models.JobStatusAssigned, j.PhaseNumber, j.IterationCount)
	if s.slack != nil {
		s.slack.NotifyJobStarted(ctx, praxisslack.JobStartedInput{
			JobID:       j.ID,
			Description: j.Description,
		})
	}
}

func (s *JobService) publishStatus(ctx context.Context, jobID string, status models.JobStatus, phaseNumber, iteration int) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJobStatus(ctx, jobID, events.JobStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeJobStatus,
			JobID:     jobID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:         string(status),
		PhaseNumber:    phaseNumber,
		IterationCount: iteration,
	}); err != nil {
		slog.Warn("Failed to publish job status event", "job_id", jobID, "status", status, "error", err)
	}
}

func (s *JobService) notifySlack(ctx context.Context, j *ent.Job) {
	if s.slack == nil {
		return
	}
	switch j.Status {
	case job.StatusCompleted, job.StatusFailed, job.StatusCancelled, job.StatusPendingReview:
		var summary, errMsg string
		if j.Summary != nil {
			summary = *j.Summary
		}
		if j.ErrorMessage != nil {
			errMsg = *j.ErrorMessage
		}
		s.slack.NotifyJobFinished(ctx, praxisslack.JobFinishedInput{
			JobID:        j.ID,
			Description:  j.Description,
			Status:       string(j.Status),
			Summary:      summary,
			ErrorMessage: errMsg,
		})
	}
}

func isTerminal(status job.Status) bool {
	switch status {
	case job.StatusCompleted, job.StatusFailed, job.StatusCancelled:
		return true
	}
	return false
}

func encodeUploads(uploads []models.Upload) ([]map[string]interface{}, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(uploads)
	if err != nil {
		return nil, fmt.Errorf("failed to encode uploads: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to re-encode uploads: %w", err)
	}
	return out, nil
}

func decodeUploads(raw []map[string]interface{}) ([]models.Upload, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode uploads: %w", err)
	}
	var out []models.Upload
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode uploads: %w", err)
	}
	return out, nil
}
