package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/history"
	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/todo"
	"github.com/praxis-works/praxis/pkg/tools"
	"github.com/praxis-works/praxis/pkg/workspace"
)

type engineFixture struct {
	engine *Engine
	state  *State
	store  *MemoryCheckpointStore
	ws     *workspace.Manager
	todos  *todo.Manager
	client *llm.ScriptedClient
}

func newFixture(t *testing.T, autonomy models.AutonomyLevel, entries ...llm.ScriptEntry) *engineFixture {
	t.Helper()

	cfg := config.Default()
	cfg.Phases.MinTodos = 2
	cfg.Phases.MaxTodos = 10

	ws := workspace.New(t.TempDir())
	require.NoError(t, ws.Init(workspace.Seeds{Instructions: "test job"}, false))
	todos := todo.NewManager(ws)

	client := llm.NewScriptedClient(entries...)
	hist, err := history.NewManager(cfg.Context, cfg.LLM.Model, client)
	require.NoError(t, err)

	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(tools.WorkspaceTools(ws)...))

	store := NewMemoryCheckpointStore()
	engine, err := NewEngine(Deps{
		Config:      cfg,
		Workspace:   ws,
		Todos:       todos,
		Registry:    registry,
		Client:      client,
		History:     hist,
		Checkpoints: store,
		Autonomy:    autonomy,
	})
	require.NoError(t, err)

	return &engineFixture{
		engine: engine,
		state:  NewState("job-1", "write a short report"),
		store:  store,
		ws:     ws,
		todos:  todos,
		client: client,
	}
}

func call(id, name, args string) llm.ToolCall {
	return llm.ToolCall{ID: id, Name: name, Arguments: args}
}

// happyPathScript drives a full job: strategic planning, a two-todo
// tactical phase, then a reflection phase ending in job_complete.
func happyPathScript() []llm.ScriptEntry {
	return []llm.ScriptEntry{
		{Text: "Planning done.", ToolCalls: []llm.ToolCall{
			call("c1", "next_phase_todos", `{"todos": ["Write draft.md", "Polish draft.md"]}`),
		}},
		{Text: "Writing.", ToolCalls: []llm.ToolCall{
			call("c2", "write_file", `{"path": "draft.md", "content": "v1"}`),
			call("c3", "todo_complete", `{}`),
		}},
		{Text: "Polishing.", ToolCalls: []llm.ToolCall{
			call("c4", "edit_file", `{"path": "draft.md", "old_text": "v1", "new_text": "v2"}`),
			call("c5", "todo_complete", `{}`),
		}},
		{Text: "Reflecting.", ToolCalls: []llm.ToolCall{
			call("c6", "job_complete", `{"summary": "report written", "deliverables": ["draft.md"], "confidence": "high"}`),
		}},
	}
}

func TestRunHappyPathFullAutonomy(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusCompleted, result.Status)
	assert.Equal(t, "report written", result.Summary)
	assert.Equal(t, []string{"draft.md"}, result.Deliverables)
	assert.True(t, f.state.GoalAchieved)

	// Phases alternated strategic -> tactical -> strategic.
	assert.Equal(t, 3, f.state.PhaseNumber)
	assert.Equal(t, models.PhaseStrategic, f.state.PhaseType)

	// The tactical work landed in the workspace.
	content, err := f.ws.Read("draft.md")
	require.NoError(t, err)
	assert.Equal(t, "v2", content)

	// Both ended phases were archived.
	assert.True(t, f.ws.Exists("archive/phase-1-strategic/todos.yaml"))
	assert.True(t, f.ws.Exists("archive/phase-2-tactical/todos.yaml"))

	// A checkpoint exists for every executed node.
	assert.Greater(t, f.store.Count("job-1"), 10)
	latest, err := f.store.Latest(context.Background(), "job-1")
	require.NoError(t, err)
	restored, err := UnmarshalState(latest.State)
	require.NoError(t, err)
	assert.True(t, restored.GoalAchieved)
}

func TestRunEmitsTransitionMessages(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)

	_, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	var sawTactical, sawStrategic bool
	for _, msg := range f.state.Messages {
		if msg.Role != llm.RoleUser {
			continue
		}
		if strings.Contains(msg.Content, "Entering tactical phase 2") {
			sawTactical = true
		}
		if strings.Contains(msg.Content, "Entering strategic phase 3") {
			sawStrategic = true
		}
	}
	assert.True(t, sawTactical)
	assert.True(t, sawStrategic)
}

func TestRunSeedsBootstrapTodos(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)

	_, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	archived, err := f.ws.Read("archive/phase-1-strategic/todos.yaml")
	require.NoError(t, err)
	assert.Contains(t, archived, "Examine the workspace")
	assert.Contains(t, archived, "next_phase_todos")
}

func TestRunLayer2OverlayInjectedEveryTurn(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)

	_, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	calls := f.client.Calls()
	require.NotEmpty(t, calls)
	for _, in := range calls {
		require.GreaterOrEqual(t, len(in.Messages), 2)
		assert.Equal(t, llm.RoleSystem, in.Messages[0].Role)
		assert.Equal(t, llm.RoleSystem, in.Messages[1].Role)
		assert.Contains(t, in.Messages[1].Content, "Current Phase")
	}
}

func TestRunStrategicOverlayCarriesPlanFromDisk(t *testing.T) {
	script := happyPathScript()
	// Have the tactical phase write plan.md so the reflection turn sees it.
	script[1].ToolCalls = append([]llm.ToolCall{
		call("cp", "write_file", `{"path": "plan.md", "content": "PLAN-MARKER-77"}`),
	}, script[1].ToolCalls...)
	f := newFixture(t, models.AutonomyFull, script...)

	_, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	calls := f.client.Calls()
	last := calls[len(calls)-1]
	assert.Contains(t, last.Messages[1].Content, "PLAN-MARKER-77")
}

func TestRunTerminalToolsHiddenInTacticalPhase(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)

	_, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	for _, in := range f.client.Calls() {
		toolNames := make([]string, 0, len(in.Tools))
		for _, d := range in.Tools {
			toolNames = append(toolNames, d.Name)
		}
		// Tactical turns (2nd and 3rd) must not see terminal tools.
		if strings.Contains(in.Messages[1].Content, "(tactical)") {
			assert.NotContains(t, toolNames, "next_phase_todos")
			assert.NotContains(t, toolNames, "job_complete")
		} else {
			assert.Contains(t, toolNames, "next_phase_todos")
		}
	}
}

func TestRunToolErrorIsObservationNotFatal(t *testing.T) {
	script := []llm.ScriptEntry{
		{ToolCalls: []llm.ToolCall{call("c1", "read_file", `{"path": "missing.md"}`)}},
		{Text: "Recovered.", ToolCalls: []llm.ToolCall{
			call("c2", "next_phase_todos", `{"todos": ["a", "b"]}`),
		}},
		{ToolCalls: []llm.ToolCall{call("c3", "todo_complete", `{}`)}},
		{ToolCalls: []llm.ToolCall{call("c4", "todo_complete", `{}`)}},
		{ToolCalls: []llm.ToolCall{
			call("c5", "job_complete", `{"summary": "s", "deliverables": [], "confidence": "low"}`),
		}},
	}
	f := newFixture(t, models.AutonomyFull, script...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, result.Status)

	var sawError bool
	for _, msg := range f.state.Messages {
		if msg.Role == llm.RoleTool && strings.HasPrefix(msg.Content, "Error: ") {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

func TestRunNextPhaseTodosBoundsRejected(t *testing.T) {
	script := []llm.ScriptEntry{
		// Too few todos: the tool rejects with a remediation hint.
		{ToolCalls: []llm.ToolCall{call("c1", "next_phase_todos", `{"todos": ["only-one"]}`)}},
		{ToolCalls: []llm.ToolCall{call("c2", "next_phase_todos", `{"todos": ["a", "b"]}`)}},
		{ToolCalls: []llm.ToolCall{call("c3", "todo_complete", `{}`)}},
		{ToolCalls: []llm.ToolCall{call("c4", "todo_complete", `{}`)}},
		{ToolCalls: []llm.ToolCall{
			call("c5", "job_complete", `{"summary": "s", "deliverables": [], "confidence": "high"}`),
		}},
	}
	f := newFixture(t, models.AutonomyFull, script...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, result.Status)

	var sawRejection bool
	for _, msg := range f.state.Messages {
		if msg.Role == llm.RoleTool && strings.Contains(msg.Content, "between 2 and 10 todos") {
			sawRejection = true
		}
	}
	assert.True(t, sawRejection)
}

func TestRunSprintLimitForcesStrategicPhase(t *testing.T) {
	script := []llm.ScriptEntry{
		{ToolCalls: []llm.ToolCall{call("c1", "next_phase_todos", `{"todos": ["a", "b", "c"]}`)}},
		// Two tactical turns that never complete a todo.
		{Text: "still working"},
		{Text: "still working"},
		{ToolCalls: []llm.ToolCall{
			call("c2", "job_complete", `{"summary": "partial", "deliverables": [], "confidence": "low"}`),
		}},
	}
	f := newFixture(t, models.AutonomyFull, script...)
	f.engine.cfg.Phases.SprintLimit = 2

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, result.Status)

	var sawSprint bool
	for _, msg := range f.state.Messages {
		if msg.Role == llm.RoleUser && strings.Contains(msg.Content, "sprint limit") {
			sawSprint = true
		}
	}
	assert.True(t, sawSprint, "transition prompt must surface the sprint cutoff")
}

func TestRunIterationCeilingForcesStrategicReflection(t *testing.T) {
	script := []llm.ScriptEntry{
		{ToolCalls: []llm.ToolCall{call("c1", "next_phase_todos", `{"todos": ["a", "b"]}`)}},
		// Tactical turns that never complete a todo; the ceiling cuts the
		// phase off and hands control back to a strategic retrospective.
		{Text: "spin"},
		{Text: "spin"},
		{ToolCalls: []llm.ToolCall{
			call("c2", "job_complete", `{"summary": "wrapped up", "deliverables": [], "confidence": "low"}`),
		}},
	}
	f := newFixture(t, models.AutonomyFull, script...)
	f.engine.cfg.Phases.MaxIterations = 3

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, result.Status)
	assert.Equal(t, "wrapped up", result.Summary)

	var sawCutoff bool
	for _, msg := range f.state.Messages {
		if msg.Role == llm.RoleUser && strings.Contains(msg.Content, "sprint limit") {
			sawCutoff = true
		}
	}
	assert.True(t, sawCutoff, "ceiling must surface as a sprint cutoff, not a failure")
	// The strategic retrospective ran past the ceiling.
	assert.Equal(t, 4, f.state.IterationCount)
}

func TestRunFreezeAfterJobCompleteUnderReview(t *testing.T) {
	f := newFixture(t, models.AutonomyReview, happyPathScript()...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPendingReview, result.Status)
	assert.Equal(t, "job_complete", result.FreezeReason)
	assert.Equal(t, NodeTransition, f.state.Node)
}

func TestResumeApprovalCompletesJob(t *testing.T) {
	f := newFixture(t, models.AutonomyReview, happyPathScript()...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusPendingReview, result.Status)

	// Restore from the authoritative checkpoint as a resuming worker would.
	latest, err := f.store.Latest(context.Background(), "job-1")
	require.NoError(t, err)
	restored, err := UnmarshalState(latest.State)
	require.NoError(t, err)

	terminal, err := f.engine.ApplyResume(restored, true, "")
	require.NoError(t, err)
	assert.True(t, terminal)

	result, err = f.engine.Run(context.Background(), restored)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, result.Status)
	assert.Equal(t, "report written", result.Summary)
}

func TestResumeWithFeedbackEntersStrategicFeedbackPhase(t *testing.T) {
	script := append(happyPathScript(),
		// Feedback phase: plan a fix, run it, complete again.
		llm.ScriptEntry{ToolCalls: []llm.ToolCall{
			call("f1", "next_phase_todos", `{"todos": ["Fix tone", "Re-check draft"]}`),
		}},
		llm.ScriptEntry{ToolCalls: []llm.ToolCall{call("f2", "todo_complete", `{}`)}},
		llm.ScriptEntry{ToolCalls: []llm.ToolCall{call("f3", "todo_complete", `{}`)}},
		llm.ScriptEntry{ToolCalls: []llm.ToolCall{
			call("f4", "job_complete", `{"summary": "revised", "deliverables": ["draft.md"], "confidence": "high"}`),
		}},
	)
	f := newFixture(t, models.AutonomyReview, script...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusPendingReview, result.Status)

	terminal, err := f.engine.ApplyResume(f.state, false, "Soften the tone of the report.")
	require.NoError(t, err)
	require.False(t, terminal)

	result, err = f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)

	// The second completion freezes again under review autonomy.
	require.Equal(t, models.JobStatusPendingReview, result.Status)
	assert.Equal(t, "revised", f.state.Summary)

	// Feedback was persisted and surfaced as a human message.
	fb, err := f.ws.Read("feedback.md")
	require.NoError(t, err)
	assert.Contains(t, fb, "Soften the tone")

	var sawFeedbackPhase bool
	for _, msg := range f.state.Messages {
		if msg.Role == llm.RoleUser && strings.Contains(msg.Content, "Human feedback received") {
			sawFeedbackPhase = true
		}
	}
	assert.True(t, sawFeedbackPhase)
}

func TestRunPartialAutonomyFreezesAfterFirstStrategic(t *testing.T) {
	f := newFixture(t, models.AutonomyPartial, happyPathScript()...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPendingReview, result.Status)
	assert.Contains(t, result.FreezeReason, "strategic phase 1")

	// Approving without feedback continues into the tactical phase and on
	// to the completion freeze.
	terminal, err := f.engine.ApplyResume(f.state, true, "")
	require.NoError(t, err)
	require.False(t, terminal)

	result, err = f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPendingReview, result.Status)
	assert.Equal(t, "job_complete", result.FreezeReason)
}

func TestRunCancellationAtNodeBoundary(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)
	f.engine.Cancel()

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCancelled, result.Status)

	latest, err := f.store.Latest(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "cancel", latest.Node)
}

func TestRunCancellationMidJobPersistsCheckpoint(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)
	// Cancel once a few nodes have checkpointed, as the worker's cancel
	// endpoint would while the graph is running.
	f.engine.report = func(s *State) {
		if s.Step >= 3 {
			f.engine.Cancel()
		}
	}

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCancelled, result.Status)

	// The cancellation checkpoint landed on top of the node trail instead
	// of colliding with the last written step.
	latest, err := f.store.Latest(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "cancel", latest.Node)
	assert.Equal(t, 4, latest.Step)
	assert.Equal(t, 4, f.store.Count("job-1"))
}

func TestRunCheckpointFailurePreservesPrior(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, happyPathScript()...)
	f.store.FailAtStep(5)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "checkpoint write failed")

	latest, err := f.store.Latest(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, 4, latest.Step)
}

func TestRunLLMFailureAfterRetriesFailsJob(t *testing.T) {
	f := newFixture(t, models.AutonomyFull, llm.ScriptEntry{
		Err: &llm.ErrorChunk{Message: "bad request", Code: "400", Retryable: false},
	})

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "bad request")

	// The checkpoint trail survives for post-mortem resume.
	assert.Greater(t, f.store.Count("job-1"), 0)
}

func TestRunTodoRewindReturnsToStrategic(t *testing.T) {
	script := []llm.ScriptEntry{
		{ToolCalls: []llm.ToolCall{call("c1", "next_phase_todos", `{"todos": ["a", "b"]}`)}},
		{ToolCalls: []llm.ToolCall{call("c2", "todo_rewind", `{"issue": "plan assumed wrong data shape"}`)}},
		{ToolCalls: []llm.ToolCall{
			call("c3", "job_complete", `{"summary": "stopped", "deliverables": [], "confidence": "low"}`),
		}},
	}
	f := newFixture(t, models.AutonomyFull, script...)

	result, err := f.engine.Run(context.Background(), f.state)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, result.Status)

	// The rewound list was archived with the issue note.
	retro, err := f.ws.Read("archive/phase-2-tactical/retrospective.md")
	require.NoError(t, err)
	assert.Contains(t, retro, "wrong data shape")
}
