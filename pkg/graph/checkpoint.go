package graph

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNoCheckpoint is returned by Latest for a job with no checkpoints.
var ErrNoCheckpoint = errors.New("no checkpoint")

// Checkpoint is one persisted snapshot of the graph state.
type Checkpoint struct {
	JobID       string
	Step        int
	Node        string
	PhaseNumber int
	State       []byte
}

// CheckpointStore persists checkpoints. Steps are append-only per job; a
// duplicate (job, step) write is an error.
type CheckpointStore interface {
	Save(ctx context.Context, cp Checkpoint) error
	Latest(ctx context.Context, jobID string) (*Checkpoint, error)
}

// MemoryCheckpointStore keeps checkpoints in memory, for tests and dry
// runs.
type MemoryCheckpointStore struct {
	mu     sync.Mutex
	byJob  map[string][]Checkpoint
	failAt int // step at which Save fails, 0 disables
}

// NewMemoryCheckpointStore returns an empty in-memory store.
func NewMemoryCheckpointStore() *MemoryCheckpointStore {
	return &MemoryCheckpointStore{byJob: make(map[string][]Checkpoint)}
}

// FailAtStep makes Save fail once it is asked to write the given step.
func (m *MemoryCheckpointStore) FailAtStep(step int) { m.failAt = step }

// Save appends a checkpoint.
func (m *MemoryCheckpointStore) Save(_ context.Context, cp Checkpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAt != 0 && cp.Step >= m.failAt {
		return fmt.Errorf("checkpoint store unavailable")
	}
	for _, existing := range m.byJob[cp.JobID] {
		if existing.Step == cp.Step {
			return fmt.Errorf("checkpoint step %d already written for job %s", cp.Step, cp.JobID)
		}
	}
	stored := cp
	stored.State = append([]byte(nil), cp.State...)
	m.byJob[cp.JobID] = append(m.byJob[cp.JobID], stored)
	return nil
}

// Latest returns the highest-step checkpoint for the job.
func (m *MemoryCheckpointStore) Latest(_ context.Context, jobID string) (*Checkpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cps := m.byJob[jobID]
	if len(cps) == 0 {
		return nil, fmt.Errorf("%w for job %s", ErrNoCheckpoint, jobID)
	}
	best := cps[0]
	for _, cp := range cps[1:] {
		if cp.Step > best.Step {
			best = cp
		}
	}
	out := best
	out.State = append([]byte(nil), best.State...)
	return &out, nil
}

// Count returns how many checkpoints the job has.
func (m *MemoryCheckpointStore) Count(jobID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byJob[jobID])
}
