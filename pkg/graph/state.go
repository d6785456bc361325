// Package graph implements the phase graph: the deterministic state
// machine that drives one job through alternating strategic and tactical
// phases, with a checkpoint written after every node.
package graph

import (
	"encoding/json"
	"fmt"

	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/todo"
)

// Node names. Edges depend only on the serialized state.
const (
	NodeInit            = "init"
	NodeProcess         = "process"
	NodeUpdateTodos     = "update_todos"
	NodeCheckTodos      = "check_todos"
	NodeArchivePhase    = "archive_phase"
	NodeTransition      = "handle_transition"
	NodeCreateNextTodos = "create_next_todos"
	NodeEnd             = "end"
)

// State is the full serialized graph state. Every field round-trips
// through JSON unchanged; a checkpoint is exactly one marshaled State.
type State struct {
	JobID       string `json:"job_id"`
	Description string `json:"description"`

	Node string `json:"node"`
	Step int    `json:"step"`

	Messages []llm.Message `json:"messages"`

	PhaseType           models.PhaseType `json:"phase_type"`
	PhaseNumber         int              `json:"phase_number"`
	PhaseStartIteration int              `json:"phase_start_iteration"`
	IterationCount      int              `json:"iteration_count"`

	Todos []todo.Todo `json:"todos"`

	PhaseComplete      bool     `json:"phase_complete"`
	SprintLimitReached bool     `json:"sprint_limit_reached"`
	JobCompleteCalled  bool     `json:"job_complete_called"`
	GoalAchieved       bool     `json:"goal_achieved"`
	StagedTodos        []string `json:"staged_todos,omitempty"`

	Summary      string   `json:"summary,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
	Confidence   string   `json:"confidence,omitempty"`
	Notes        string   `json:"notes,omitempty"`

	PendingFeedback string `json:"pending_feedback,omitempty"`
	FreezeReason    string `json:"freeze_reason,omitempty"`
	ReviewGranted   bool   `json:"review_granted,omitempty"`

	Tokens models.TokenUsage `json:"tokens"`
}

// NewState returns the initial state for a fresh job.
func NewState(jobID, description string) *State {
	return &State{
		JobID:               jobID,
		Description:         description,
		Node:                NodeInit,
		PhaseType:           models.PhaseStrategic,
		PhaseNumber:         1,
		PhaseStartIteration: -1,
	}
}

// Marshal serializes the state for checkpointing.
func (s *State) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph state: %w", err)
	}
	return data, nil
}

// UnmarshalState restores a state from a checkpoint payload.
func UnmarshalState(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph state: %w", err)
	}
	return &s, nil
}
