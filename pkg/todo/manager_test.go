package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/workspace"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	ws := workspace.New(t.TempDir())
	require.NoError(t, ws.Init(workspace.Seeds{Instructions: "task"}, false))
	return NewManager(ws)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	m := newTestManager(t)
	todos, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := newTestManager(t)
	todos := NewList([]string{"first", "second"})
	require.NoError(t, m.Save(todos, 1, "strategic"))

	loaded, err := m.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].ID)
	assert.Equal(t, "first", loaded[0].Content)
	assert.Equal(t, StatusPending, loaded[0].Status)
}

func TestCompleteMarksFirstOpen(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Save(NewList([]string{"a", "b"}), 2, "tactical"))

	remaining, isLast, err := m.Complete(2, "tactical")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.False(t, isLast)

	remaining, isLast, err = m.Complete(2, "tactical")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.True(t, isLast)

	loaded, err := m.Load()
	require.NoError(t, err)
	for _, todo := range loaded {
		assert.Equal(t, StatusDone, todo.Status)
		assert.NotNil(t, todo.CompletedAt)
	}
}

func TestCompleteOnDoneListIsNoOp(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Save(NewList([]string{"a"}), 2, "tactical"))
	_, _, err := m.Complete(2, "tactical")
	require.NoError(t, err)

	remaining, isLast, err := m.Complete(2, "tactical")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.True(t, isLast)
}

func TestSetStatus(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Save(NewList([]string{"a", "b"}), 2, "tactical"))

	require.NoError(t, m.SetStatus(2, StatusSkipped, "blocked on upstream", 2, "tactical"))
	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, loaded[1].Status)
	assert.Equal(t, "blocked on upstream", loaded[1].Notes)

	// Terminal statuses are sticky.
	assert.Error(t, m.SetStatus(2, StatusPending, "", 2, "tactical"))
	assert.ErrorIs(t, m.SetStatus(99, StatusDone, "", 2, "tactical"), ErrUnknownTodo)
}

func TestArchiveSealsAndResets(t *testing.T) {
	ws := workspace.New(t.TempDir())
	require.NoError(t, ws.Init(workspace.Seeds{}, false))
	m := NewManager(ws)
	require.NoError(t, m.Save(NewList([]string{"a"}), 1, "strategic"))

	require.NoError(t, m.Archive(1, "strategic", ""))

	assert.True(t, ws.Exists("archive/phase-1-strategic/todos.yaml"))
	assert.True(t, ws.Exists("archive/phase-1-strategic/retrospective.md"))
	assert.False(t, ws.Exists("todos.yaml"))

	todos, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestRewindUsesRevSuffix(t *testing.T) {
	ws := workspace.New(t.TempDir())
	require.NoError(t, ws.Init(workspace.Seeds{}, false))
	m := NewManager(ws)

	require.NoError(t, m.Save(NewList([]string{"a"}), 3, "tactical"))
	require.NoError(t, m.Archive(3, "tactical", ""))

	require.NoError(t, m.Save(NewList([]string{"a retry"}), 3, "tactical"))
	require.NoError(t, m.Rewind(3, "tactical", "approach failed"))

	assert.True(t, ws.Exists("archive/phase-3-tactical-rev-1/todos.yaml"))
	retro, err := ws.Read("archive/phase-3-tactical-rev-1/retrospective.md")
	require.NoError(t, err)
	assert.Contains(t, retro, "approach failed")
}

func TestBootstrapSet(t *testing.T) {
	todos := Bootstrap()
	require.Len(t, todos, 4)
	assert.Contains(t, todos[0].Content, "Examine the workspace")
	assert.Contains(t, todos[1].Content, "workspace.md")
	assert.Contains(t, todos[2].Content, "plan.md")
	assert.Contains(t, todos[3].Content, "next_phase_todos")
	for i, todo := range todos {
		assert.Equal(t, i+1, todo.ID)
	}
}

func TestFormatForDisplay(t *testing.T) {
	m := newTestManager(t)
	todos := NewList([]string{"write tests", "ship it"})
	todos[0].Status = StatusDone

	display := m.FormatForDisplay(todos, "tactical", 2)
	assert.Contains(t, display, "Current Phase: 2 (tactical)")
	assert.Contains(t, display, "1. [x] write tests")
	assert.Contains(t, display, "2. [ ] ship it")
	assert.Contains(t, display, "Current task: ship it")
}
