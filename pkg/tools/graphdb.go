package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/praxis-works/praxis/pkg/models"
)

const cypherMaxRecords = 200

// graphBackend lazily opens a Neo4j driver for the attached datasource.
type graphBackend struct {
	binding models.DatasourceBinding

	mu     sync.Mutex
	driver neo4j.DriverWithContext
}

func (b *graphBackend) acquire(ctx context.Context) (neo4j.DriverWithContext, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.driver != nil {
		return b.driver, nil
	}
	auth := neo4j.NoAuth()
	user, _ := b.binding.Credentials["username"].(string)
	pass, _ := b.binding.Credentials["password"].(string)
	if user != "" {
		auth = neo4j.BasicAuth(user, pass, "")
	}
	driver, err := neo4j.NewDriverWithContext(b.binding.ConnectionURL, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to datasource %s: %w", b.binding.Name, err)
	}
	b.driver = driver
	return driver, nil
}

// Close shuts the driver down if it was opened.
func (b *graphBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.driver != nil {
		_ = b.driver.Close(context.Background())
		b.driver = nil
	}
}

func (b *graphBackend) run(ctx context.Context, query string, params map[string]any) (string, error) {
	driver, err := b.acquire(ctx)
	if err != nil {
		return "", err
	}
	result, err := neo4j.ExecuteQuery(ctx, driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return "", fmt.Errorf("cypher query failed: %w", err)
	}

	var out strings.Builder
	if len(result.Records) > 0 {
		out.WriteString(strings.Join(result.Records[0].Keys, " | "))
		out.WriteString("\n")
	}
	for i, rec := range result.Records {
		if i >= cypherMaxRecords {
			fmt.Fprintf(&out, "... (truncated at %d records)\n", cypherMaxRecords)
			break
		}
		cells := make([]string, len(rec.Values))
		for j, v := range rec.Values {
			cells[j] = fmt.Sprintf("%v", v)
		}
		out.WriteString(strings.Join(cells, " | "))
		out.WriteString("\n")
	}
	fmt.Fprintf(&out, "(%d records)\n", len(result.Records))
	return out.String(), nil
}

// GraphTools exposes the attached Neo4j datasource. The write tool is
// omitted for read-only bindings.
func GraphTools(binding models.DatasourceBinding) ([]Tool, func()) {
	backend := &graphBackend{binding: binding}

	ts := []Tool{
		&funcTool{
			name:        "execute_cypher_query",
			description: fmt.Sprintf("Run a read-only Cypher query against Neo4j datasource %q.", binding.Name),
			category:    CategoryGraph,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "minLength": 1, "description": "Cypher query, e.g. MATCH (n) RETURN n LIMIT 10."},
    "params": {"type": "object", "description": "Optional query parameters."}
  },
  "required": ["query"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Query  string         `json:"query"`
					Params map[string]any `json:"params"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return backend.run(ctx, in.Query, in.Params)
			},
		},
		&funcTool{
			name:        "get_database_schema",
			description: fmt.Sprintf("Show node labels, relationship types, and property keys of Neo4j datasource %q.", binding.Name),
			category:    CategoryGraph,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, _ json.RawMessage) (string, error) {
				labels, err := backend.run(ctx, "CALL db.labels()", nil)
				if err != nil {
					return "", err
				}
				rels, err := backend.run(ctx, "CALL db.relationshipTypes()", nil)
				if err != nil {
					return "", err
				}
				props, err := backend.run(ctx, "CALL db.propertyKeys()", nil)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("## Labels\n%s\n## Relationship types\n%s\n## Property keys\n%s", labels, rels, props), nil
			},
		},
	}

	if !binding.ReadOnly {
		ts = append(ts, &funcTool{
			name:        "cypher_write",
			description: fmt.Sprintf("Run a mutating Cypher statement against Neo4j datasource %q.", binding.Name),
			category:    CategoryGraph,
			phases:      PhaseBoth,
			writes:      true,
			schema: `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "minLength": 1, "description": "Cypher statement (CREATE, MERGE, SET, DELETE)."},
    "params": {"type": "object", "description": "Optional query parameters."}
  },
  "required": ["query"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Query  string         `json:"query"`
					Params map[string]any `json:"params"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return backend.run(ctx, in.Query, in.Params)
			},
		})
	}

	return ts, backend.Close
}
