package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/graph"
	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingNotifier captures status callbacks in memory.
type recordingNotifier struct {
	mu        sync.Mutex
	callbacks []models.StatusCallback
}

func (n *recordingNotifier) Post(_ context.Context, cb models.StatusCallback) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.callbacks = append(n.callbacks, cb)
	return nil
}

func (n *recordingNotifier) last() (models.StatusCallback, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.callbacks) == 0 {
		return models.StatusCallback{}, false
	}
	return n.callbacks[len(n.callbacks)-1], true
}

func testWorkerConfig(t *testing.T) config.WorkerConfig {
	return config.WorkerConfig{
		WorkerID:          "worker-test",
		WorkspaceRoot:     t.TempDir(),
		HeartbeatInterval: 50 * time.Millisecond,
		ShutdownTimeout:   time.Second,
	}
}

func testResolvedConfig() map[string]any {
	return map[string]any{
		"phases": map[string]any{
			"min_todos": 2,
			"max_todos": 10,
		},
	}
}

func completionScript() []llm.ScriptEntry {
	call := func(id, name, args string) llm.ToolCall {
		return llm.ToolCall{ID: id, Name: name, Arguments: args}
	}
	return []llm.ScriptEntry{
		{ToolCalls: []llm.ToolCall{call("c1", "next_phase_todos", `{"todos": ["a", "b"]}`)}},
		{ToolCalls: []llm.ToolCall{call("c2", "todo_complete", `{}`)}},
		{ToolCalls: []llm.ToolCall{call("c3", "todo_complete", `{}`)}},
		{ToolCalls: []llm.ToolCall{
			call("c4", "job_complete", `{"summary": "all done", "deliverables": ["out.md"], "confidence": "high"}`),
		}},
	}
}

func newTestRunner(t *testing.T, entries []llm.ScriptEntry) (*Runner, *recordingNotifier, *graph.MemoryCheckpointStore) {
	t.Helper()
	notifier := &recordingNotifier{}
	store := graph.NewMemoryCheckpointStore()
	client := llm.NewScriptedClient(entries...)
	runner := NewRunner(testWorkerConfig(t), store, notifier,
		func() (llm.Client, error) { return client, nil })
	return runner, notifier, store
}

func startPayload(jobID string, autonomy models.AutonomyLevel) *models.JobStart {
	return &models.JobStart{
		JobID:          jobID,
		Description:    "produce out.md",
		ResolvedConfig: testResolvedConfig(),
		Autonomy:       autonomy,
	}
}

func TestRunnerRunsJobToCompletion(t *testing.T) {
	runner, notifier, store := newTestRunner(t, completionScript())

	require.NoError(t, runner.Start(startPayload("job-1", models.AutonomyFull)))
	require.True(t, runner.Wait(10*time.Second))

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, last.Status)
	assert.Equal(t, "all done", last.Summary)
	assert.Equal(t, []string{"out.md"}, last.Deliverables)
	assert.Equal(t, "worker-test", last.WorkerID)
	assert.Greater(t, last.Tokens.TotalTokens, 0)

	assert.Greater(t, store.Count("job-1"), 0)
	assert.False(t, runner.Status().Busy)
}

func TestRunnerRejectsSecondJobWhileBusy(t *testing.T) {
	// A script that never finishes quickly: a single pending entry keeps
	// the first process turn alive long enough to observe the conflict.
	runner, _, _ := newTestRunner(t, completionScript())

	require.NoError(t, runner.Start(startPayload("job-1", models.AutonomyFull)))
	err := runner.Start(startPayload("job-2", models.AutonomyFull))
	if err == nil {
		// The first job may already have finished on a fast machine; the
		// lease semantics only forbid overlap.
		runner.Wait(10 * time.Second)
		return
	}
	assert.ErrorIs(t, err, ErrBusy)
	runner.Wait(10 * time.Second)
}

func TestRunnerRejectsInvalidPayloads(t *testing.T) {
	runner, _, _ := newTestRunner(t, nil)

	err := runner.Start(&models.JobStart{Description: "no id"})
	assert.Error(t, err)

	err = runner.Start(&models.JobStart{JobID: "x", Description: "d", Autonomy: "sometimes"})
	assert.ErrorContains(t, err, "autonomy")

	bad := startPayload("job-9", models.AutonomyFull)
	bad.Datasources = []models.DatasourceBinding{{Type: "oracle", Name: "x"}}
	err = runner.Start(bad)
	assert.ErrorContains(t, err, "datasource")
}

func TestRunnerFreezeAndResume(t *testing.T) {
	runner, notifier, store := newTestRunner(t, completionScript())

	require.NoError(t, runner.Start(startPayload("job-1", models.AutonomyReview)))
	require.True(t, runner.Wait(10*time.Second))

	last, ok := notifier.last()
	require.True(t, ok)
	require.Equal(t, models.JobStatusPendingReview, last.Status)

	cp, err := store.Latest(context.Background(), "job-1")
	require.NoError(t, err)
	state, err := graph.UnmarshalState(cp.State)
	require.NoError(t, err)
	assert.True(t, state.JobCompleteCalled)

	resume := &models.JobResume{JobStart: *startPayload("job-1", models.AutonomyReview), Approved: true}
	require.NoError(t, runner.Resume(resume))
	require.True(t, runner.Wait(10*time.Second))

	last, ok = notifier.last()
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, last.Status)
	assert.Equal(t, "all done", last.Summary)
}

func TestRunnerStartContinuesFromCheckpoint(t *testing.T) {
	notifier := &recordingNotifier{}
	store := graph.NewMemoryCheckpointStore()
	client := llm.NewScriptedClient()
	runner := NewRunner(testWorkerConfig(t), store, notifier,
		func() (llm.Client, error) { return client, nil })

	// Trail left by a worker that died right before reporting completion.
	// Re-assignment must pick the job up here, not replay it from scratch.
	state := graph.NewState("job-1", "produce out.md")
	state.Node = graph.NodeEnd
	state.Step = 7
	state.GoalAchieved = true
	state.Summary = "carried over"
	state.Deliverables = []string{"out.md"}
	data, err := state.Marshal()
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), graph.Checkpoint{
		JobID: "job-1", Step: 7, Node: graph.NodeTransition, State: data,
	}))

	require.NoError(t, runner.Start(startPayload("job-1", models.AutonomyFull)))
	require.True(t, runner.Wait(10*time.Second))

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, models.JobStatusCompleted, last.Status)
	assert.Equal(t, "carried over", last.Summary)
	assert.Equal(t, []string{"out.md"}, last.Deliverables)
	// Finished work was not pushed through the LLM again.
	assert.Empty(t, client.Calls())
}

// closeTrackingClient records whether Close ran.
type closeTrackingClient struct {
	llm.Client
	closed bool
}

func (c *closeTrackingClient) Close() error {
	c.closed = true
	return c.Client.Close()
}

func TestRunnerPrepareFailureClosesClient(t *testing.T) {
	notifier := &recordingNotifier{}
	store := graph.NewMemoryCheckpointStore()
	client := &closeTrackingClient{Client: llm.NewScriptedClient()}
	runner := NewRunner(testWorkerConfig(t), store, notifier,
		func() (llm.Client, error) { return client, nil })

	resume := &models.JobResume{JobStart: *startPayload("job-404", models.AutonomyReview), Approved: true}
	err := runner.Resume(resume)
	require.ErrorIs(t, err, graph.ErrNoCheckpoint)
	assert.True(t, client.closed, "client opened during a failed prepare must be closed")
}

func TestRunnerResumeWithoutCheckpointFails(t *testing.T) {
	runner, _, _ := newTestRunner(t, nil)

	resume := &models.JobResume{JobStart: *startPayload("job-404", models.AutonomyReview), Approved: true}
	err := runner.Resume(resume)
	assert.ErrorIs(t, err, graph.ErrNoCheckpoint)
}

func TestServerEndpoints(t *testing.T) {
	runner, _, _ := newTestRunner(t, completionScript())
	router := NewServer(runner).Router()

	// Health and ready respond before any job.
	for _, path := range []string{"/health", "/ready"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	// Idle status.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var status models.WorkerStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Busy)
	assert.Equal(t, "worker-test", status.WorkerID)

	// Start accepts a valid payload.
	body, err := json.Marshal(startPayload("job-http", models.AutonomyFull))
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	runner.Wait(10 * time.Second)
}

func TestServerStartRejectsMalformedBody(t *testing.T) {
	runner, _, _ := newTestRunner(t, nil)
	router := NewServer(runner).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/start", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServerCancelWithoutJob(t *testing.T) {
	runner, _, _ := newTestRunner(t, nil)
	router := NewServer(runner).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cancel", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
