package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praxis-works/praxis/pkg/models"
)

const sqlMaxRows = 200

// sqlBackend lazily opens a pgx pool for the attached PostgreSQL
// datasource. The pool is opened on first use so a job that never touches
// the datasource never connects.
type sqlBackend struct {
	binding models.DatasourceBinding

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func (b *sqlBackend) acquire(ctx context.Context) (*pgxpool.Pool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pool != nil {
		return b.pool, nil
	}
	pool, err := pgxpool.New(ctx, b.binding.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to datasource %s: %w", b.binding.Name, err)
	}
	b.pool = pool
	return pool, nil
}

// Close releases the pool if it was opened.
func (b *sqlBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pool != nil {
		b.pool.Close()
		b.pool = nil
	}
}

func (b *sqlBackend) query(ctx context.Context, sql string, limit int) (string, error) {
	pool, err := b.acquire(ctx)
	if err != nil {
		return "", err
	}
	rows, err := pool.Query(ctx, sql)
	if err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}

	var b2 strings.Builder
	b2.WriteString(strings.Join(cols, " | "))
	b2.WriteString("\n")

	count := 0
	for rows.Next() {
		if count >= limit {
			fmt.Fprintf(&b2, "... (truncated at %d rows)\n", limit)
			break
		}
		values, err := rows.Values()
		if err != nil {
			return "", fmt.Errorf("failed to read row: %w", err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = fmt.Sprintf("%v", v)
		}
		b2.WriteString(strings.Join(cells, " | "))
		b2.WriteString("\n")
		count++
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}
	fmt.Fprintf(&b2, "(%d rows)\n", count)
	return b2.String(), nil
}

func (b *sqlBackend) execute(ctx context.Context, sql string) (string, error) {
	pool, err := b.acquire(ctx)
	if err != nil {
		return "", err
	}
	tag, err := pool.Exec(ctx, sql)
	if err != nil {
		return "", fmt.Errorf("statement failed: %w", err)
	}
	return fmt.Sprintf("OK, %d rows affected.", tag.RowsAffected()), nil
}

const sqlSchemaQuery = `
SELECT table_name, column_name, data_type, is_nullable
FROM information_schema.columns
WHERE table_schema = 'public'
ORDER BY table_name, ordinal_position`

// SQLTools exposes the attached PostgreSQL datasource. Write tools are
// omitted for read-only bindings. The returned closer releases the pool at
// job end.
func SQLTools(binding models.DatasourceBinding) ([]Tool, func()) {
	backend := &sqlBackend{binding: binding}

	desc := fmt.Sprintf("datasource %q", binding.Name)
	if binding.Description != "" {
		desc = fmt.Sprintf("datasource %q (%s)", binding.Name, binding.Description)
	}

	ts := []Tool{
		&funcTool{
			name:        "sql_query",
			description: fmt.Sprintf("Run a read-only SQL query against PostgreSQL %s.", desc),
			category:    CategorySQL,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "minLength": 1, "description": "SELECT statement to run."},
    "limit": {"type": "integer", "minimum": 1, "description": "Maximum rows to return (default 200)."}
  },
  "required": ["query"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Query string `json:"query"`
					Limit int    `json:"limit"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if in.Limit <= 0 || in.Limit > sqlMaxRows {
					in.Limit = sqlMaxRows
				}
				return backend.query(ctx, in.Query, in.Limit)
			},
		},
		&funcTool{
			name:        "sql_schema",
			description: fmt.Sprintf("List tables and columns of PostgreSQL %s.", desc),
			category:    CategorySQL,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return backend.query(ctx, sqlSchemaQuery, 1000)
			},
		},
	}

	if !binding.ReadOnly {
		ts = append(ts, &funcTool{
			name:        "sql_execute",
			description: fmt.Sprintf("Run a mutating SQL statement against PostgreSQL %s.", desc),
			category:    CategorySQL,
			phases:      PhaseBoth,
			writes:      true,
			schema: `{
  "type": "object",
  "properties": {
    "statement": {"type": "string", "minLength": 1, "description": "INSERT/UPDATE/DELETE/DDL statement."}
  },
  "required": ["statement"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Statement string `json:"statement"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return backend.execute(ctx, in.Statement)
			},
		})
	}

	return ts, backend.Close
}
