package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. A job may have at most one datasource per type, and
// at most one global datasource per type exists; scope_key carries either
// the literal 'global' or the owning job id.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS datasources_type_scope_key_unique
		ON datasources (type, scope_key)`)
	if err != nil {
		return fmt.Errorf("failed to create datasource scope index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS checkpoints_job_id_step_unique
		ON checkpoints (job_id, step)`)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint step index: %w", err)
	}

	return nil
}

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// Job descriptions and summaries are searchable from the jobs list API.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_description_gin
		ON jobs USING gin(to_tsvector('english', description))`)
	if err != nil {
		return fmt.Errorf("failed to create description GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_summary_gin
		ON jobs USING gin(to_tsvector('english', COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create summary GIN index: %w", err)
	}

	return nil
}
