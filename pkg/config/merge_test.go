package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepMergeObjectsMergeRecursively(t *testing.T) {
	base := map[string]any{
		"llm": map[string]any{"model": "gpt-4o", "max_tokens": 8192},
	}
	patch := map[string]any{
		"llm": map[string]any{"model": "claude-sonnet-4-5"},
	}

	out := DeepMerge(base, patch)
	llm := out["llm"].(map[string]any)
	assert.Equal(t, "claude-sonnet-4-5", llm["model"])
	assert.Equal(t, 8192, llm["max_tokens"])
}

func TestDeepMergeArraysReplaceEntirely(t *testing.T) {
	base := map[string]any{
		"tools": map[string]any{
			"categories": map[string]any{
				"graph": []any{"execute_cypher_query", "get_database_schema", "cypher_write"},
			},
		},
	}
	patch := map[string]any{
		"tools": map[string]any{
			"categories": map[string]any{
				"graph": []any{},
			},
		},
	}

	out := DeepMerge(base, patch)
	categories := out["tools"].(map[string]any)["categories"].(map[string]any)
	assert.Empty(t, categories["graph"])
}

func TestDeepMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1}}
	patch := map[string]any{"a": map[string]any{"y": 2}}

	_ = DeepMerge(base, patch)
	assert.NotContains(t, base["a"].(map[string]any), "y")
}

func TestDeepMergeScalarReplacesObject(t *testing.T) {
	base := map[string]any{"k": map[string]any{"nested": true}}
	patch := map[string]any{"k": "flat"}

	out := DeepMerge(base, patch)
	assert.Equal(t, "flat", out["k"])
}

func TestFromMapAppliesDefaultsAndValidates(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"llm": map[string]any{"model": "gpt-4o"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Phases.MinTodos)
	assert.Equal(t, 20, cfg.Phases.MaxTodos)
	assert.Equal(t, 500, cfg.Phases.MaxIterations)
	assert.Equal(t, 80000, cfg.Context.CompactionThresholdTokens)
	assert.Contains(t, cfg.Tools.Categories, "workspace")
	assert.Contains(t, cfg.Tools.Categories, "core")
}

func TestFromMapRejectsBadBounds(t *testing.T) {
	_, err := FromMap(map[string]any{
		"llm":    map[string]any{"model": "gpt-4o"},
		"phases": map[string]any{"min_todos": 10, "max_todos": 3},
	})
	require.Error(t, err)
}
