package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/models"
)

func categoryNames(t *testing.T, resolved map[string]any, category string) []string {
	t.Helper()
	toolsMap, ok := resolved["tools"].(map[string]any)
	require.True(t, ok)
	categories, ok := toolsMap["categories"].(map[string]any)
	require.True(t, ok)
	raw, ok := categories[category]
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	require.True(t, ok)
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.(string))
	}
	return out
}

func TestApplyToolOverrideInjectsAttachedCategories(t *testing.T) {
	resolved := map[string]any{}
	ApplyToolOverride(resolved, []models.DatasourceBinding{
		{Type: "postgresql", Name: "warehouse"},
		{Type: "neo4j", Name: "kg", ReadOnly: true},
	})

	sql := categoryNames(t, resolved, "sql")
	assert.ElementsMatch(t, []string{"sql_query", "sql_schema", "sql_execute"}, sql)

	graph := categoryNames(t, resolved, "graph")
	assert.ElementsMatch(t, []string{"execute_cypher_query", "get_database_schema"}, graph)
	assert.NotContains(t, graph, "cypher_write")

	assert.Nil(t, categoryNames(t, resolved, "mongodb"))
}

func TestApplyToolOverrideRemovesUnattachedCategories(t *testing.T) {
	// The expert config enabled graph tools, but no Neo4j datasource is
	// attached; the override must strip the category regardless.
	resolved := map[string]any{
		"tools": map[string]any{
			"categories": map[string]any{
				"workspace": []any{},
				"graph":     []any{"execute_cypher_query"},
			},
		},
	}
	ApplyToolOverride(resolved, nil)

	assert.Nil(t, categoryNames(t, resolved, "graph"))
	// Non-datasource categories are left alone.
	toolsMap := resolved["tools"].(map[string]any)
	categories := toolsMap["categories"].(map[string]any)
	assert.Contains(t, categories, "workspace")
}

func TestApplyToolOverrideReplacesNotMerges(t *testing.T) {
	resolved := map[string]any{
		"tools": map[string]any{
			"categories": map[string]any{
				"sql": []any{"sql_query", "sql_schema", "sql_execute"},
			},
		},
	}
	ApplyToolOverride(resolved, []models.DatasourceBinding{
		{Type: "postgresql", Name: "warehouse", ReadOnly: true},
	})

	sql := categoryNames(t, resolved, "sql")
	assert.ElementsMatch(t, []string{"sql_query", "sql_schema"}, sql)
}

func TestApplyToolOverrideResultDecodesAsConfig(t *testing.T) {
	resolved := map[string]any{}
	ApplyToolOverride(resolved, []models.DatasourceBinding{
		{Type: "mongodb", Name: "docs"},
	})

	cfg, err := config.FromMap(resolved)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"mongo_query", "mongo_aggregate", "mongo_schema", "mongo_insert", "mongo_update"},
		cfg.Tools.Categories["mongodb"])
}

func TestValidateDatasourceRequest(t *testing.T) {
	err := validateDatasourceRequest(DatasourceRequest{Type: "oracle", Name: "x", ConnectionURL: "u"})
	assert.True(t, IsValidationError(err))

	err = validateDatasourceRequest(DatasourceRequest{Type: "postgresql", ConnectionURL: "u"})
	assert.True(t, IsValidationError(err))

	err = validateDatasourceRequest(DatasourceRequest{Type: "postgresql", Name: "x"})
	assert.True(t, IsValidationError(err))

	err = validateDatasourceRequest(DatasourceRequest{Type: "postgresql", Name: "x", ConnectionURL: "u"})
	assert.NoError(t, err)
}

func TestUploadRoundTrip(t *testing.T) {
	uploads := []models.Upload{
		{Name: "brief.md", Content: []byte("# Brief\nhello")},
		{Name: "data.csv", Content: []byte("a,b\n1,2")},
	}
	encoded, err := encodeUploads(uploads)
	require.NoError(t, err)
	decoded, err := decodeUploads(encoded)
	require.NoError(t, err)
	assert.Equal(t, uploads, decoded)

	empty, err := encodeUploads(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}
