package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/todo"
)

func TestStateRoundTrip(t *testing.T) {
	s := NewState("job-1", "write a report")
	s.Node = NodeCheckTodos
	s.Step = 12
	s.PhaseType = models.PhaseTactical
	s.PhaseNumber = 2
	s.PhaseStartIteration = 3
	s.IterationCount = 7
	s.SprintLimitReached = true
	s.StagedTodos = []string{"x", "y"}
	s.Todos = todo.NewList([]string{"a", "b"})
	s.Todos[0].Status = todo.StatusDone
	s.Tokens = models.TokenUsage{InputTokens: 100, OutputTokens: 40, TotalTokens: 140}
	s.Messages = []llm.Message{
		{Role: llm.RoleUser, Content: "go"},
		{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{{ID: "c1", Name: "read_file", Arguments: `{"path":"plan.md"}`}}},
		{Role: llm.RoleTool, ToolCallID: "c1", ToolName: "read_file", Content: "plan body"},
	}

	data, err := s.Marshal()
	require.NoError(t, err)

	restored, err := UnmarshalState(data)
	require.NoError(t, err)
	assert.Equal(t, s, restored)

	// A second round trip is byte-stable.
	again, err := restored.Marshal()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState("job-2", "desc")
	assert.Equal(t, NodeInit, s.Node)
	assert.Equal(t, models.PhaseStrategic, s.PhaseType)
	assert.Equal(t, 1, s.PhaseNumber)
	assert.Equal(t, -1, s.PhaseStartIteration)
	assert.Zero(t, s.IterationCount)
}

func TestMemoryCheckpointStoreAppendOnly(t *testing.T) {
	store := NewMemoryCheckpointStore()
	ctx := context.Background()

	for step := 1; step <= 3; step++ {
		err := store.Save(ctx, Checkpoint{JobID: "j", Step: step, Node: NodeProcess, State: []byte(`{}`)})
		require.NoError(t, err)
	}

	err := store.Save(ctx, Checkpoint{JobID: "j", Step: 2, Node: NodeProcess, State: []byte(`{}`)})
	assert.Error(t, err)

	latest, err := store.Latest(ctx, "j")
	require.NoError(t, err)
	assert.Equal(t, 3, latest.Step)

	_, err = store.Latest(ctx, "other")
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}
