// Package worker implements the agent worker: a single-job lease around
// the phase graph, the orchestrator-facing HTTP server, and the status
// callback loop.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/graph"
	"github.com/praxis-works/praxis/pkg/history"
	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/todo"
	"github.com/praxis-works/praxis/pkg/tools"
	"github.com/praxis-works/praxis/pkg/workspace"
)

// Worker errors surfaced to the orchestrator as HTTP statuses.
var (
	ErrBusy      = errors.New("worker is busy")
	ErrNoSuchJob = errors.New("no such job on this worker")
)

// StatusNotifier posts status callbacks to the orchestrator. A nil
// notifier disables callbacks (standalone runs).
type StatusNotifier interface {
	Post(ctx context.Context, cb models.StatusCallback) error
}

// Runner executes one job at a time. Start and Resume reject while a job
// holds the lease.
type Runner struct {
	cfg         config.WorkerConfig
	checkpoints graph.CheckpointStore
	notifier    StatusNotifier
	newClient   func() (llm.Client, error)

	mu      sync.Mutex
	current *jobRun
}

type jobRun struct {
	jobID  string
	engine *graph.Engine
	state  *graph.State

	// counters is the snapshot the report hook maintains for heartbeats;
	// the engine goroutine owns state itself.
	countersMu sync.Mutex
	counters   models.StatusCallback

	stop    context.CancelFunc
	done    chan struct{}
	closers []func()
}

// NewRunner builds a runner. newClient defaults to the provider router
// built from the environment.
func NewRunner(cfg config.WorkerConfig, checkpoints graph.CheckpointStore, notifier StatusNotifier, newClient func() (llm.Client, error)) *Runner {
	if newClient == nil {
		newClient = func() (llm.Client, error) { return llm.NewRouter() }
	}
	return &Runner{
		cfg:         cfg,
		checkpoints: checkpoints,
		notifier:    notifier,
		newClient:   newClient,
	}
}

// Start takes the lease and launches a fresh job.
func (r *Runner) Start(payload *models.JobStart) error {
	return r.launch(payload, nil)
}

// Resume takes the lease and continues a frozen job from its last
// checkpoint.
func (r *Runner) Resume(payload *models.JobResume) error {
	return r.launch(&payload.JobStart, payload)
}

func (r *Runner) launch(payload *models.JobStart, resume *models.JobResume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		return fmt.Errorf("%w: running job %s", ErrBusy, r.current.jobID)
	}

	run, err := r.prepare(payload, resume)
	if err != nil {
		return err
	}
	r.current = run

	ctx, cancel := context.WithCancel(context.Background())
	run.stop = cancel
	go r.execute(ctx, run)
	return nil
}

// prepare validates the payload and assembles the whole per-job stack:
// workspace, tools, LLM client, history manager, engine, and state.
func (r *Runner) prepare(payload *models.JobStart, resume *models.JobResume) (*jobRun, error) {
	if payload.JobID == "" || payload.Description == "" {
		return nil, fmt.Errorf("job_id and description are required")
	}
	autonomy := payload.Autonomy
	if autonomy == "" {
		autonomy = models.AutonomyFull
	}
	if !models.ValidAutonomy(string(autonomy)) {
		return nil, fmt.Errorf("unknown autonomy level %q", autonomy)
	}

	cfg, err := config.FromMap(payload.ResolvedConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid resolved config: %w", err)
	}

	ws := workspace.New(filepath.Join(r.cfg.WorkspaceRoot, payload.JobID))
	todos := todo.NewManager(ws)

	registry := tools.NewRegistry()
	var closers []func()
	ok := false
	// Anything opened before a failed prepare gets closed on the way out.
	defer func() {
		if !ok {
			for _, closer := range closers {
				closer()
			}
		}
	}()
	if err := registry.Register(tools.WorkspaceTools(ws)...); err != nil {
		return nil, err
	}
	if cfg.Workspace.EnableGit {
		if err := registry.Register(tools.GitTools(ws)...); err != nil {
			return nil, err
		}
	}
	if tavily := tools.NewTavilyClientFromEnv(); tavily != nil {
		if err := registry.Register(tools.ResearchTools(tavily)...); err != nil {
			return nil, err
		}
	}
	for _, ds := range payload.Datasources {
		var ts []tools.Tool
		var closer func()
		switch ds.Type {
		case "postgresql":
			ts, closer = tools.SQLTools(ds)
		case "mongodb":
			ts, closer = tools.MongoTools(ds)
		case "neo4j":
			ts, closer = tools.GraphTools(ds)
		default:
			return nil, fmt.Errorf("unknown datasource type %q", ds.Type)
		}
		if err := registry.Register(ts...); err != nil {
			return nil, err
		}
		closers = append(closers, closer)
	}

	client, err := r.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to build LLM client: %w", err)
	}
	closers = append(closers, func() { _ = client.Close() })

	hist, err := history.NewManager(cfg.Context, cfg.LLM.Model, client)
	if err != nil {
		return nil, err
	}

	run := &jobRun{jobID: payload.JobID, closers: closers, done: make(chan struct{})}
	run.counters = models.StatusCallback{JobID: payload.JobID}
	engine, err := graph.NewEngine(graph.Deps{
		Config:      cfg,
		Workspace:   ws,
		Todos:       todos,
		Registry:    registry,
		Client:      client,
		History:     hist,
		Checkpoints: r.checkpoints,
		Autonomy:    autonomy,
		Report:      run.observe,
	})
	if err != nil {
		return nil, err
	}
	run.engine = engine

	// Seeding is idempotent; a crashed worker re-seeds nothing.
	uploads := make(map[string][]byte, len(payload.Uploads))
	for _, u := range payload.Uploads {
		uploads[u.Name] = u.Content
	}
	instructions := payload.Description
	if cfg.Instructions != "" {
		instructions += "\n\n---\n\n" + cfg.Instructions
	}
	if err := ws.Init(workspace.Seeds{
		Instructions: instructions,
		Uploads:      uploads,
		ToolDocs:     tools.Docs(registry.All()),
	}, cfg.Workspace.EnableGit); err != nil {
		return nil, err
	}

	if resume == nil {
		// A re-assigned job continues from its checkpoint trail so finished
		// work is never replayed; only a job with no trail starts fresh.
		cp, err := r.checkpoints.Latest(context.Background(), payload.JobID)
		switch {
		case errors.Is(err, graph.ErrNoCheckpoint):
			run.state = graph.NewState(payload.JobID, payload.Description)
		case err != nil:
			return nil, fmt.Errorf("failed to load checkpoint: %w", err)
		default:
			state, err := graph.UnmarshalState(cp.State)
			if err != nil {
				return nil, err
			}
			slog.Info("Continuing job from checkpoint",
				"job_id", payload.JobID, "step", cp.Step, "node", cp.Node)
			run.state = state
		}
		ok = true
		run.observe(run.state)
		return run, nil
	}

	cp, err := r.checkpoints.Latest(context.Background(), payload.JobID)
	if err != nil {
		return nil, fmt.Errorf("cannot resume: %w", err)
	}
	state, err := graph.UnmarshalState(cp.State)
	if err != nil {
		return nil, err
	}
	feedback := resume.FeedbackText
	if len(resume.FeedbackCommits) > 0 {
		feedback += "\n\nFeedback commits:\n"
		for _, c := range resume.FeedbackCommits {
			feedback += "- " + c + "\n"
		}
	}
	if _, err := engine.ApplyResume(state, resume.Approved, feedback); err != nil {
		return nil, err
	}
	run.state = state
	ok = true
	run.observe(run.state)
	return run, nil
}

func (r *Runner) execute(ctx context.Context, run *jobRun) {
	defer run.stop()

	heartbeatDone := make(chan struct{})
	go r.heartbeat(ctx, run, heartbeatDone)

	result, err := run.engine.Run(ctx, run.state)
	close(heartbeatDone)

	if err != nil {
		result = &graph.Result{Status: models.JobStatusFailed, ErrorMessage: err.Error()}
	}
	slog.Info("Job finished", "job_id", run.jobID, "status", result.Status, "error", result.ErrorMessage)
	r.postFinal(run, result)

	for _, closer := range run.closers {
		closer()
	}

	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()
	close(run.done)
}

func (r *Runner) heartbeat(ctx context.Context, run *jobRun, done <-chan struct{}) {
	if r.notifier == nil {
		return
	}
	ticker := time.NewTicker(r.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			cb := run.snapshotCallback(r.cfg.WorkerID, models.JobStatusRunning)
			if err := r.notifier.Post(ctx, cb); err != nil {
				slog.Warn("Heartbeat callback failed", "job_id", run.jobID, "error", err)
			}
		}
	}
}

func (r *Runner) postFinal(run *jobRun, result *graph.Result) {
	if r.notifier == nil {
		return
	}
	cb := run.snapshotCallback(r.cfg.WorkerID, result.Status)
	cb.ErrorMessage = result.ErrorMessage
	cb.Summary = result.Summary
	cb.Deliverables = result.Deliverables
	cb.Tokens = result.Tokens

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := r.notifier.Post(ctx, cb); err != nil {
		slog.Error("Final status callback failed", "job_id", run.jobID, "status", result.Status, "error", err)
	}
}

// observe is the engine's per-node report hook. It copies the counters
// the heartbeat needs; the engine goroutine keeps exclusive ownership of
// the state itself.
func (run *jobRun) observe(state *graph.State) {
	run.countersMu.Lock()
	defer run.countersMu.Unlock()
	run.counters.Phase = state.PhaseType
	run.counters.PhaseNumber = state.PhaseNumber
	run.counters.IterationCount = state.IterationCount
	run.counters.Tokens = state.Tokens
}

func (run *jobRun) snapshotCallback(workerID string, status models.JobStatus) models.StatusCallback {
	run.countersMu.Lock()
	defer run.countersMu.Unlock()
	cb := run.counters
	cb.JobID = run.jobID
	cb.WorkerID = workerID
	cb.Status = status
	return cb
}

// Cancel sets the cooperative flag on the current job.
func (r *Runner) Cancel(jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil || (jobID != "" && r.current.jobID != jobID) {
		return ErrNoSuchJob
	}
	r.current.engine.Cancel()
	return nil
}

// Status reports the current lease for GET /status.
func (r *Runner) Status() models.WorkerStatus {
	r.mu.Lock()
	run := r.current
	r.mu.Unlock()

	status := models.WorkerStatus{WorkerID: r.cfg.WorkerID}
	if run == nil {
		return status
	}
	run.countersMu.Lock()
	defer run.countersMu.Unlock()
	status.Busy = true
	status.JobID = run.jobID
	status.Phase = run.counters.Phase
	status.PhaseNumber = run.counters.PhaseNumber
	status.IterationCount = run.counters.IterationCount
	status.Tokens = run.counters.Tokens
	return status
}

// Wait blocks until the current job (if any) finishes. Used in tests and
// during graceful shutdown.
func (r *Runner) Wait(timeout time.Duration) bool {
	r.mu.Lock()
	run := r.current
	r.mu.Unlock()
	if run == nil {
		return true
	}
	select {
	case <-run.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
