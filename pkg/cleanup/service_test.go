package cleanup

import (
	"context"
	stdsql "database/sql"
	"os"
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
)

func newTestDB(t *testing.T) (*ent.Client, *stdsql.DB) {
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

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(ctx))
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS events (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			job_id TEXT NOT NULL,
			channel TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })
	return client, db
}

func TestRetentionPass(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client, db := newTestDB(t)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -120)
	_, err := client.Job.Create().
		SetID("old-job").
		SetDescription("ancient").
		SetStatus(job.StatusCompleted).
		SetCompletedAt(old).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Job.Create().
		SetID("fresh-job").
		SetDescription("recent").
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Job.Create().
		SetID("live-job").
		SetDescription("still running").
		SetStatus(job.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO events (job_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
		"old-job", "job:old-job", `{"type":"job.status"}`, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO events (job_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
		"fresh-job", "job:fresh-job", `{"type":"job.status"}`, time.Now())
	require.NoError(t, err)

	svc := NewService(config.RetentionConfig{
		JobRetentionDays: 90,
		EventTTL:         24 * time.Hour,
		CleanupInterval:  time.Hour,
	}, client, db)
	svc.RunAll(ctx)

	oldJob, err := client.Job.Get(ctx, "old-job")
	require.NoError(t, err)
	assert.NotNil(t, oldJob.DeletedAt)

	freshJob, err := client.Job.Get(ctx, "fresh-job")
	require.NoError(t, err)
	assert.Nil(t, freshJob.DeletedAt)

	liveJob, err := client.Job.Get(ctx, "live-job")
	require.NoError(t, err)
	assert.Nil(t, liveJob.DeletedAt)

	var remaining int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM events`).Scan(&remaining))
	assert.Equal(t, 1, remaining)
}

func TestStartStopIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client, db := newTestDB(t)

	svc := NewService(config.DefaultRetentionConfig(), client, db)
	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
}
