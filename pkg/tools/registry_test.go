package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/workspace"
)

func newTestRegistry(t *testing.T) (*Registry, *workspace.Manager) {
	t.Helper()
	ws := workspace.New(t.TempDir())
	require.NoError(t, ws.Init(workspace.Seeds{Instructions: "test"}, false))

	r := NewRegistry()
	require.NoError(t, r.Register(WorkspaceTools(ws)...))
	require.NoError(t, r.Register(CoreTools(testHooks())...))
	return r, ws
}

func testHooks() CoreHooks {
	return CoreHooks{
		ListTodos: func(context.Context) (string, error) { return "todos", nil },
		TodoComplete: func(context.Context, string) (string, error) {
			return "completed", nil
		},
		TodoRewind: func(_ context.Context, issue string) (string, error) {
			return "rewound: " + issue, nil
		},
		NextPhaseTodos: func(_ context.Context, todos []string) (string, error) {
			return "staged", nil
		},
		JobComplete: func(_ context.Context, req JobCompleteRequest) (string, error) {
			return "done: " + req.Summary, nil
		},
	}
}

func enabledCategories(cats ...string) config.ToolsConfig {
	m := make(map[string][]string, len(cats))
	for _, c := range cats {
		m[c] = []string{}
	}
	return config.ToolsConfig{Categories: m}
}

func names(ts []Tool) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name())
	}
	return out
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	r, _ := newTestRegistry(t)
	err := r.Register(&funcTool{name: "read_file", category: CategoryWorkspace})
	assert.Error(t, err)
}

func TestFilterTerminalToolsAreStrategicOnly(t *testing.T) {
	r, _ := newTestRegistry(t)
	cfg := enabledCategories(CategoryWorkspace, CategoryCore)

	strategic := names(r.Filter(cfg, models.PhaseStrategic))
	assert.Contains(t, strategic, "next_phase_todos")
	assert.Contains(t, strategic, "job_complete")

	tactical := names(r.Filter(cfg, models.PhaseTactical))
	assert.NotContains(t, tactical, "next_phase_todos")
	assert.NotContains(t, tactical, "job_complete")
	assert.Contains(t, tactical, "todo_complete")
	assert.Contains(t, tactical, "write_file")
}

func TestFilterDropsDisabledCategories(t *testing.T) {
	r, _ := newTestRegistry(t)
	cfg := enabledCategories(CategoryCore)

	got := names(r.Filter(cfg, models.PhaseTactical))
	assert.NotContains(t, got, "read_file")
	assert.Contains(t, got, "list_todos")
}

func TestFilterHonorsNameAllowlist(t *testing.T) {
	r, _ := newTestRegistry(t)
	cfg := config.ToolsConfig{Categories: map[string][]string{
		CategoryWorkspace: {"read_file", "list_files"},
	}}

	got := names(r.Filter(cfg, models.PhaseTactical))
	assert.ElementsMatch(t, []string{"list_files", "read_file"}, got)
}

func TestFilterIgnoresUnknownCategories(t *testing.T) {
	r, _ := newTestRegistry(t)
	cfg := enabledCategories(CategoryCore, CategorySQL)

	got := names(r.Filter(cfg, models.PhaseTactical))
	assert.Contains(t, got, "list_todos")
	assert.NotContains(t, got, "sql_query")
}

func TestSQLToolsReadOnlyOmitsExecute(t *testing.T) {
	binding := models.DatasourceBinding{
		ID:            "ds-1",
		Type:          "postgresql",
		Name:          "analytics",
		ConnectionURL: "postgres://localhost/analytics",
		ReadOnly:      true,
	}
	ts, closer := SQLTools(binding)
	defer closer()

	assert.NotContains(t, names(ts), "sql_execute")
	assert.Contains(t, names(ts), "sql_query")
	assert.Contains(t, names(ts), "sql_schema")
}

func TestMongoToolsReadOnlyOmitsWrites(t *testing.T) {
	binding := models.DatasourceBinding{
		ID:            "ds-2",
		Type:          "mongodb",
		Name:          "events",
		ConnectionURL: "mongodb://localhost/events",
		ReadOnly:      true,
	}
	ts, closer := MongoTools(binding)
	defer closer()

	got := names(ts)
	assert.NotContains(t, got, "mongo_insert")
	assert.NotContains(t, got, "mongo_update")
	assert.Contains(t, got, "mongo_query")
}

func TestGraphToolsReadOnlyOmitsWrite(t *testing.T) {
	binding := models.DatasourceBinding{
		ID:            "ds-3",
		Type:          "neo4j",
		Name:          "kg",
		ConnectionURL: "neo4j://localhost",
		ReadOnly:      true,
	}
	ts, closer := GraphTools(binding)
	defer closer()

	got := names(ts)
	assert.NotContains(t, got, "cypher_write")
	assert.Contains(t, got, "execute_cypher_query")
}

func TestDocsRenderEveryTool(t *testing.T) {
	r, _ := newTestRegistry(t)
	all := r.Filter(enabledCategories(CategoryWorkspace, CategoryCore), models.PhaseStrategic)

	docs := Docs(all)
	require.Contains(t, docs, "read_file")
	assert.Contains(t, docs["read_file"], "# read_file")
	assert.Contains(t, docs["read_file"], "## Arguments")
}

func TestDefinitionsCarrySchemas(t *testing.T) {
	r, _ := newTestRegistry(t)
	defs := Definitions(r.Filter(enabledCategories(CategoryWorkspace), models.PhaseTactical))

	require.NotEmpty(t, defs)
	for _, d := range defs {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(d.ParametersSchema), &doc), "schema for %s", d.Name)
		assert.Equal(t, "object", doc["type"])
	}
}
