package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	defaults := `
llm:
  model: gpt-4o
phases:
  sprint_limit: 100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "defaults.yaml"), []byte(defaults), 0o644))

	expertDir := filepath.Join(dir, "experts", "analyst")
	require.NoError(t, os.MkdirAll(expertDir, 0o755))
	expertCfg := `
llm:
  model: claude-sonnet-4-5
tools:
  categories:
    research: []
`
	require.NoError(t, os.WriteFile(filepath.Join(expertDir, "config.yaml"), []byte(expertCfg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(expertDir, "instructions.md"), []byte("Analyze carefully."), 0o644))
	return dir
}

func TestResolveLayersExpertOverDefaults(t *testing.T) {
	loader := NewLoader(writeConfigDir(t))

	m, err := loader.Resolve("analyst", nil)
	require.NoError(t, err)

	cfg, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
	assert.Equal(t, 100, cfg.Phases.SprintLimit)
	assert.Equal(t, "Analyze carefully.", cfg.Instructions)
	assert.Contains(t, cfg.Tools.Categories, "research")
}

func TestResolveAppliesConfigOverride(t *testing.T) {
	loader := NewLoader(writeConfigDir(t))

	m, err := loader.Resolve("analyst", map[string]any{
		"phases": map[string]any{"sprint_limit": 3},
	})
	require.NoError(t, err)

	cfg, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Phases.SprintLimit)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
}

func TestResolveUnknownExpert(t *testing.T) {
	loader := NewLoader(writeConfigDir(t))
	_, err := loader.Resolve("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownExpert)
}

func TestResolveNoExpertUsesDefaultsOnly(t *testing.T) {
	loader := NewLoader(writeConfigDir(t))
	m, err := loader.Resolve("", nil)
	require.NoError(t, err)

	cfg, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
}

func TestExpandEnvTemplates(t *testing.T) {
	t.Setenv("PRAXIS_TEST_MODEL", "gpt-4o-mini")
	out := ExpandEnv([]byte("model: {{.PRAXIS_TEST_MODEL}}\npattern: ^secret.*$\n"))
	assert.Contains(t, string(out), "model: gpt-4o-mini")
	assert.Contains(t, string(out), "^secret.*$")
}
