package orchestrator

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/database"
	"github.com/praxis-works/praxis/pkg/models"
)

// newTestDB creates a test database client. In CI (CI_DATABASE_URL set) it
// connects to an external PostgreSQL service; locally it spins up a
// testcontainer.
func newTestDB(t *testing.T) *database.Client {
	t.Helper()
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	t.Cleanup(func() { _ = entClient.Close() })
	return database.NewClientFromEnt(entClient, db)
}

// fakeWorker is an httptest stand-in for an agent worker.
type fakeWorker struct {
	mu          sync.Mutex
	busy        bool
	jobID       string
	rejectStart bool
	starts      []models.JobStart
	resumes     []models.JobResume
	cancels     []string
	srv         *httptest.Server
}

func newFakeWorker(t *testing.T) *fakeWorker {
	t.Helper()
	fw := &fakeWorker{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, _ *http.Request) {
		fw.mu.Lock()
		status := models.WorkerStatus{WorkerID: "fake-worker", Busy: fw.busy, JobID: fw.jobID}
		fw.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	})
	mux.HandleFunc("POST /start", func(w http.ResponseWriter, r *http.Request) {
		fw.mu.Lock()
		defer fw.mu.Unlock()
		if fw.rejectStart {
			w.WriteHeader(http.StatusConflict)
			return
		}
		var payload models.JobStart
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fw.starts = append(fw.starts, payload)
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("POST /resume", func(w http.ResponseWriter, r *http.Request) {
		fw.mu.Lock()
		defer fw.mu.Unlock()
		var payload models.JobResume
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fw.resumes = append(fw.resumes, payload)
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("POST /cancel", func(w http.ResponseWriter, r *http.Request) {
		fw.mu.Lock()
		defer fw.mu.Unlock()
		var body struct {
			JobID string `json:"job_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		fw.cancels = append(fw.cancels, body.JobID)
		w.WriteHeader(http.StatusAccepted)
	})
	fw.srv = httptest.NewServer(mux)
	t.Cleanup(fw.srv.Close)
	return fw
}

func (fw *fakeWorker) lastStart() (models.JobStart, bool) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if len(fw.starts) == 0 {
		return models.JobStart{}, false
	}
	return fw.starts[len(fw.starts)-1], true
}

type testHarness struct {
	db          *database.Client
	jobs        *JobService
	datasources *DatasourceService
	dispatcher  *Dispatcher
	worker      *fakeWorker
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	db := newTestDB(t)
	worker := newFakeWorker(t)

	jobs := NewJobService(db.Client, nil, nil)
	datasources := NewDatasourceService(db.Client)
	cfg := config.OrchestratorConfig{
		DispatchInterval: 10 * time.Millisecond,
		HeartbeatTimeout: time.Minute,
		JobWallClock:     7 * 24 * time.Hour,
	}
	dispatcher := NewDispatcher(cfg, db.Client, jobs, datasources,
		config.NewLoader(t.TempDir()), NewWorkerRegistry([]string{worker.srv.URL}))
	return &testHarness{db: db, jobs: jobs, datasources: datasources, dispatcher: dispatcher, worker: worker}
}

func TestCreateJobBindsDatasources(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	global, err := h.datasources.Create(ctx, DatasourceRequest{
		Type:          "postgresql",
		Name:          "warehouse",
		ConnectionURL: "postgres://warehouse",
		ReadOnly:      true,
	})
	require.NoError(t, err)

	j, err := h.jobs.Create(ctx, CreateJobRequest{
		Description:   "analyze the warehouse",
		Autonomy:      "review",
		DatasourceIDs: []string{global.ID},
		Uploads:       []models.Upload{{Name: "notes.md", Content: []byte("hi")}},
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, j.Status)

	// The job-scoped copy wins over the global one of the same type.
	bindings, err := h.datasources.ResolveForJob(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "postgresql", bindings[0].Type)
	assert.True(t, bindings[0].ReadOnly)
	assert.NotEqual(t, global.ID, bindings[0].ID)

	// A second binding of the same type is rejected.
	_, err = h.jobs.Create(ctx, CreateJobRequest{
		Description:   "double binding",
		DatasourceIDs: []string{global.ID, global.ID},
	})
	assert.Error(t, err)
}

func TestDatasourceUniquePerScope(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.datasources.Create(ctx, DatasourceRequest{
		Type: "neo4j", Name: "kg", ConnectionURL: "neo4j://kg",
	})
	require.NoError(t, err)

	_, err = h.datasources.Create(ctx, DatasourceRequest{
		Type: "neo4j", Name: "kg2", ConnectionURL: "neo4j://kg2",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDispatcherAssignsPendingJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.datasources.Create(ctx, DatasourceRequest{
		Type: "mongodb", Name: "docs", ConnectionURL: "mongodb://docs",
	})
	require.NoError(t, err)

	j, err := h.jobs.Create(ctx, CreateJobRequest{Description: "count the documents"})
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.dispatchOnce(ctx))

	updated, err := h.jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAssigned, updated.Status)
	require.NotNil(t, updated.WorkerURL)
	assert.Equal(t, h.worker.srv.URL, *updated.WorkerURL)
	assert.NotNil(t, updated.StartedAt)

	payload, ok := h.worker.lastStart()
	require.True(t, ok)
	assert.Equal(t, j.ID, payload.JobID)
	assert.Equal(t, models.AutonomyFull, payload.Autonomy)
	require.Len(t, payload.Datasources, 1)
	assert.Equal(t, "mongodb", payload.Datasources[0].Type)

	// The global mongodb datasource injected its tool category.
	cfg, err := config.FromMap(payload.ResolvedConfig)
	require.NoError(t, err)
	assert.Contains(t, cfg.Tools.Categories, "mongodb")
	assert.NotContains(t, cfg.Tools.Categories, "sql")
}

func TestDispatcherFailsJobOnFatalConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	j, err := h.jobs.Create(ctx, CreateJobRequest{
		Description: "job with missing expert",
		ExpertID:    "no-such-expert",
	})
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.dispatchOnce(ctx))

	updated, err := h.jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "fatal config")
}

func TestDispatcherRequeuesWhenWorkerRejects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()
	h.worker.rejectStart = true

	j, err := h.jobs.Create(ctx, CreateJobRequest{Description: "rejected once"})
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.dispatchOnce(ctx))

	updated, err := h.jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, updated.Status)
	assert.Nil(t, updated.WorkerURL)
}

func TestApplyCallbackLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	j, err := h.jobs.Create(ctx, CreateJobRequest{Description: "callback target"})
	require.NoError(t, err)
	require.NoError(t, h.dispatcher.dispatchOnce(ctx))

	// Heartbeat moves assigned to running and persists counters.
	updated, err := h.jobs.ApplyCallback(ctx, j.ID, models.StatusCallback{
		JobID:          j.ID,
		WorkerID:       "fake-worker",
		Status:         models.JobStatusRunning,
		Phase:          models.PhaseTactical,
		PhaseNumber:    2,
		IterationCount: 7,
		Tokens:         models.TokenUsage{InputTokens: 100, OutputTokens: 40, TotalTokens: 140},
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, updated.Status)
	assert.Equal(t, 2, updated.PhaseNumber)
	assert.Equal(t, 7, updated.IterationCount)
	assert.Equal(t, 140, updated.TotalTokens)
	assert.NotNil(t, updated.LastHeartbeatAt)

	// Terminal callback records the outcome and releases the worker.
	updated, err = h.jobs.ApplyCallback(ctx, j.ID, models.StatusCallback{
		JobID:        j.ID,
		Status:       models.JobStatusCompleted,
		Summary:      "all finished",
		Deliverables: []string{"out.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, updated.Status)
	require.NotNil(t, updated.Summary)
	assert.Equal(t, "all finished", *updated.Summary)
	assert.Equal(t, []string{"out.md"}, updated.Deliverables)
	assert.Nil(t, updated.WorkerURL)
	assert.NotNil(t, updated.CompletedAt)

	// A late heartbeat cannot resurrect a terminal job.
	updated, err = h.jobs.ApplyCallback(ctx, j.ID, models.StatusCallback{
		JobID:  j.ID,
		Status: models.JobStatusRunning,
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, updated.Status)
}

func TestResumeDispatchesToWorker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	j, err := h.jobs.Create(ctx, CreateJobRequest{Description: "frozen job", Autonomy: "review"})
	require.NoError(t, err)

	// Resume is only valid from a review gate.
	err = h.dispatcher.Resume(ctx, j.ID, true, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = h.db.Job.UpdateOneID(j.ID).SetStatus(job.StatusPendingReview).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.Resume(ctx, j.ID, false, "Please soften the tone"))

	h.worker.mu.Lock()
	require.Len(t, h.worker.resumes, 1)
	resume := h.worker.resumes[0]
	h.worker.mu.Unlock()
	assert.Equal(t, j.ID, resume.JobID)
	assert.False(t, resume.Approved)
	assert.Equal(t, "Please soften the tone", resume.FeedbackText)

	updated, err := h.jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAssigned, updated.Status)
}

func TestCancelLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	// Queued job cancels directly.
	queued, err := h.jobs.Create(ctx, CreateJobRequest{Description: "queued"})
	require.NoError(t, err)
	require.NoError(t, h.dispatcher.Cancel(ctx, queued.ID))
	updated, err := h.jobs.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, updated.Status)

	// Cancelling twice is rejected.
	assert.ErrorIs(t, h.dispatcher.Cancel(ctx, queued.ID), ErrInvalidTransition)

	// Running job gets a cooperative worker cancel; status is unchanged
	// until the worker's final callback.
	running, err := h.jobs.Create(ctx, CreateJobRequest{Description: "running"})
	require.NoError(t, err)
	require.NoError(t, h.dispatcher.dispatchOnce(ctx))
	_, err = h.db.Job.UpdateOneID(running.ID).SetStatus(job.StatusRunning).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.Cancel(ctx, running.ID))
	h.worker.mu.Lock()
	assert.Contains(t, h.worker.cancels, running.ID)
	h.worker.mu.Unlock()

	updated, err = h.jobs.Get(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, updated.Status)
}

func TestOrphanDetection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	stale, err := h.jobs.Create(ctx, CreateJobRequest{Description: "stale heartbeat"})
	require.NoError(t, err)
	_, err = h.db.Job.UpdateOneID(stale.ID).
		SetStatus(job.StatusRunning).
		SetStartedAt(time.Now().Add(-time.Hour)).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	expired, err := h.jobs.Create(ctx, CreateJobRequest{Description: "wall clock"})
	require.NoError(t, err)
	_, err = h.db.Job.UpdateOneID(expired.ID).
		SetStatus(job.StatusPendingReview).
		SetStartedAt(time.Now().Add(-8 * 24 * time.Hour)).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	healthy, err := h.jobs.Create(ctx, CreateJobRequest{Description: "healthy"})
	require.NoError(t, err)
	_, err = h.db.Job.UpdateOneID(healthy.ID).
		SetStatus(job.StatusRunning).
		SetStartedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.detectAndRecoverOrphans(ctx))

	// A dead worker sends the job back to the queue with its checkpoint
	// trail intact; only the wall clock is terminal.
	staleJob, err := h.jobs.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, staleJob.Status)
	assert.Nil(t, staleJob.WorkerURL)
	assert.Nil(t, staleJob.LastHeartbeatAt)
	require.NotNil(t, staleJob.StartedAt)

	// Re-assignment keeps the original start time so the wall-clock budget
	// spans workers.
	require.NoError(t, h.dispatcher.dispatchOnce(ctx))
	reclaimed, err := h.jobs.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAssigned, reclaimed.Status)
	require.NotNil(t, reclaimed.StartedAt)
	assert.WithinDuration(t, *staleJob.StartedAt, *reclaimed.StartedAt, time.Second)

	expiredJob, err := h.jobs.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, expiredJob.Status)
	require.NotNil(t, expiredJob.ErrorMessage)
	assert.Contains(t, *expiredJob.ErrorMessage, "Wall-clock")

	healthyJob, err := h.jobs.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, healthyJob.Status)
}

func TestRecoverStartupJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	// Worker reports idle, so a job recorded as running on it is orphaned.
	j, err := h.jobs.Create(ctx, CreateJobRequest{Description: "pre-restart job"})
	require.NoError(t, err)
	_, err = h.db.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusRunning).
		SetWorkerID("fake-worker").
		SetWorkerURL(h.worker.srv.URL).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, h.dispatcher.RecoverStartupJobs(ctx))

	// The job goes back to the queue for a fresh assignment that resumes
	// from its latest checkpoint.
	updated, err := h.jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, updated.Status)
	assert.Nil(t, updated.WorkerURL)
}

func TestListJobsFiltersByStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.jobs.Create(ctx, CreateJobRequest{Description: "first"})
	require.NoError(t, err)
	second, err := h.jobs.Create(ctx, CreateJobRequest{Description: "second"})
	require.NoError(t, err)
	require.NoError(t, h.jobs.MarkCancelled(ctx, second.ID))

	pending, err := h.jobs.List(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "first", pending[0].Description)

	all, err := h.jobs.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = h.jobs.List(ctx, "bogus")
	assert.True(t, IsValidationError(err))
}
