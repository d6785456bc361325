// Package config implements the layered configuration model: built-in
// defaults, the per-expert bundle (config.yaml + instructions.md), the
// job's sparse config_override, and the orchestrator's datasource tool
// override. Objects merge recursively; arrays replace entirely.
package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Config is the resolved per-job configuration bundle. It is immutable for
// the lifetime of a job once produced at job start.
type Config struct {
	LLM          LLMConfig       `yaml:"llm" json:"llm"`
	Tools        ToolsConfig     `yaml:"tools" json:"tools"`
	Phases       PhaseConfig     `yaml:"phases" json:"phases"`
	Context      ContextConfig   `yaml:"context" json:"context"`
	Workspace    WorkspaceConfig `yaml:"workspace" json:"workspace"`
	Autonomy     string          `yaml:"autonomy" json:"autonomy"`
	Instructions string          `yaml:"instructions" json:"instructions"`
}

// LLMConfig selects the model and sampling parameters.
type LLMConfig struct {
	Model          string   `yaml:"model" json:"model"`
	Temperature    *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens      int      `yaml:"max_tokens" json:"max_tokens"`
	ReasoningLevel string   `yaml:"reasoning_level,omitempty" json:"reasoning_level,omitempty"`
}

// ToolsConfig maps enabled tool categories to tool names. An empty name
// list enables every tool in the category. The orchestrator's datasource
// override adds or removes whole categories; arrays replace entirely under
// the merge rule, so an override never partially merges a tool list.
type ToolsConfig struct {
	Categories map[string][]string `yaml:"categories" json:"categories"`
}

// PhaseConfig bounds the phase machinery.
type PhaseConfig struct {
	MinTodos      int `yaml:"min_todos" json:"min_todos"`
	MaxTodos      int `yaml:"max_todos" json:"max_todos"`
	SprintLimit   int `yaml:"sprint_limit" json:"sprint_limit"` // 0 = disabled
	MaxIterations int `yaml:"max_iterations" json:"max_iterations"`
}

// ContextConfig tunes the context-window manager.
type ContextConfig struct {
	KeepRecentToolResults        int      `yaml:"keep_recent_tool_results" json:"keep_recent_tool_results"`
	MaxToolResultLength          int      `yaml:"max_tool_result_length" json:"max_tool_result_length"`
	CompactionThresholdTokens    int      `yaml:"compaction_threshold_tokens" json:"compaction_threshold_tokens"`
	SummarizationThresholdTokens int      `yaml:"summarization_threshold_tokens" json:"summarization_threshold_tokens"`
	SummaryKeepLast              int      `yaml:"summary_keep_last" json:"summary_keep_last"`
	ProtectedTools               []string `yaml:"protected_tools" json:"protected_tools"`
}

// WorkspaceConfig controls the per-job directory.
type WorkspaceConfig struct {
	EnableGit bool `yaml:"enable_git" json:"enable_git"`
}

// Default returns the built-in configuration every job starts from.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:     "gpt-4o",
			MaxTokens: 8192,
		},
		Tools: ToolsConfig{
			Categories: map[string][]string{
				"workspace": {},
				"core":      {},
			},
		},
		Phases: PhaseConfig{
			MinTodos:      5,
			MaxTodos:      20,
			SprintLimit:   0,
			MaxIterations: 500,
		},
		Context: ContextConfig{
			KeepRecentToolResults:        5,
			MaxToolResultLength:          5000,
			CompactionThresholdTokens:    80000,
			SummarizationThresholdTokens: 100000,
			SummaryKeepLast:              20,
			ProtectedTools:               []string{"read_file", "list_files", "list_todos"},
		},
		Workspace: WorkspaceConfig{EnableGit: false},
		Autonomy:  "full",
	}
}

// ApplyDefaults fills zero-valued fields from the built-in defaults.
func (c *Config) ApplyDefaults() error {
	if err := mergo.Merge(c, Default()); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return nil
}

// Validate checks cross-field invariants and restores the mandatory tool
// categories.
func (c *Config) Validate() error {
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Phases.MinTodos < 1 || c.Phases.MaxTodos < c.Phases.MinTodos {
		return fmt.Errorf("invalid todo bounds: min=%d max=%d", c.Phases.MinTodos, c.Phases.MaxTodos)
	}
	if c.Phases.MaxIterations < 1 {
		return fmt.Errorf("phases.max_iterations must be positive")
	}
	if c.Context.SummaryKeepLast < 1 {
		return fmt.Errorf("context.summary_keep_last must be positive")
	}
	if c.Tools.Categories == nil {
		c.Tools.Categories = map[string][]string{}
	}
	// The graph cannot run without file access and the phase-control tools.
	for _, required := range []string{"workspace", "core"} {
		if _, ok := c.Tools.Categories[required]; !ok {
			c.Tools.Categories[required] = []string{}
		}
	}
	return nil
}
