package database

import (
	"context"
	"fmt"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/pkg/graph"
)

// CheckpointStore persists graph checkpoints to Postgres. The
// (job_id, step) unique index makes the trail append-only: a concurrent
// writer racing on the same step loses with a constraint violation.
type CheckpointStore struct {
	client *ent.Client
}

// NewCheckpointStore wraps the ent client.
func NewCheckpointStore(client *Client) *CheckpointStore {
	return &CheckpointStore{client: client.Client}
}

// Save writes one checkpoint.
func (s *CheckpointStore) Save(ctx context.Context, cp graph.Checkpoint) error {
	_, err := s.client.Checkpoint.Create().
		SetJobID(cp.JobID).
		SetStep(cp.Step).
		SetNode(cp.Node).
		SetPhaseNumber(cp.PhaseNumber).
		SetState(cp.State).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint %d for job %s: %w", cp.Step, cp.JobID, err)
	}
	return nil
}

// Latest returns the highest-step checkpoint for the job.
func (s *CheckpointStore) Latest(ctx context.Context, jobID string) (*graph.Checkpoint, error) {
	row, err := s.client.Checkpoint.Query().
		Where(checkpoint.JobIDEQ(jobID)).
		Order(ent.Desc(checkpoint.FieldStep)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w for job %s", graph.ErrNoCheckpoint, jobID)
		}
		return nil, fmt.Errorf("failed to load checkpoint for job %s: %w", jobID, err)
	}
	return &graph.Checkpoint{
		JobID:       row.JobID,
		Step:        row.Step,
		Node:        row.Node,
		PhaseNumber: row.PhaseNumber,
		State:       row.State,
	}, nil
}
