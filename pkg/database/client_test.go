package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/ent/job"
)

// newTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
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

	// Auto-migration for tests; production uses the embedded SQL migrations.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))
	require.NoError(t, CreateGINIndexes(ctx, drv))

	t.Cleanup(func() {
		_ = entClient.Close()
	})
	return NewClientFromEnt(entClient, db)
}

func TestJobLifecycleRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := newTestClient(t)
	ctx := context.Background()

	id := uuid.NewString()
	created, err := client.Job.Create().
		SetID(id).
		SetDescription("write a haiku").
		SetStatus(job.StatusPending).
		SetAutonomy(job.AutonomyFull).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, created.Status)

	updated, err := client.Job.UpdateOneID(id).
		SetStatus(job.StatusRunning).
		SetWorkerID("worker-1").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, updated.Status)

	fetched, err := client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, fetched.ID)
}

func TestCheckpointAppendOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := newTestClient(t)
	ctx := context.Background()

	id := uuid.NewString()
	_, err := client.Job.Create().
		SetID(id).
		SetDescription("checkpointed job").
		Save(ctx)
	require.NoError(t, err)

	for step := 1; step <= 3; step++ {
		_, err := client.Checkpoint.Create().
			SetJobID(id).
			SetStep(step).
			SetNode("process").
			SetPhaseNumber(1).
			SetState(fmt.Appendf(nil, `{"iteration_count":%d}`, step)).
			Save(ctx)
		require.NoError(t, err)
	}

	// Duplicate (job_id, step) must be rejected.
	_, err = client.Checkpoint.Create().
		SetJobID(id).
		SetStep(3).
		SetNode("process").
		SetPhaseNumber(1).
		SetState([]byte(`{}`)).
		Save(ctx)
	assert.Error(t, err)

	latest, err := client.Checkpoint.Query().
		Where(checkpoint.JobIDEQ(id)).
		Order(ent.Desc(checkpoint.FieldStep)).
		First(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, latest.Step)
}

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := newTestClient(t)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.Open, 0)
	assert.GreaterOrEqual(t, status.MaxOpen, status.InUse)
}
