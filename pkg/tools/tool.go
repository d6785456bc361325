// Package tools implements the tool registry and dispatcher: the
// phase-filtered, config-filtered, datasource-filtered surface the LLM
// sees, plus the built-in tool implementations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
)

// Category names. workspace and core are always enabled; the datasource
// categories are injected by the orchestrator's tool override; citation is
// a registered surface backed by the external citation engine.
const (
	CategoryWorkspace = "workspace"
	CategoryCore      = "core"
	CategoryGit       = "git"
	CategoryResearch  = "research"
	CategorySQL       = "sql"
	CategoryMongoDB   = "mongodb"
	CategoryGraph     = "graph"
	CategoryCitation  = "citation"
)

// Phases tags the phase types a tool is valid in.
type Phases int

const (
	PhaseBoth Phases = iota
	PhaseStrategic
	PhaseTactical
)

// Allows reports whether the tag admits the given phase type.
func (p Phases) Allows(phase models.PhaseType) bool {
	switch p {
	case PhaseStrategic:
		return phase == models.PhaseStrategic
	case PhaseTactical:
		return phase == models.PhaseTactical
	default:
		return true
	}
}

// Tool is one callable capability. Schema is the JSON Schema for the
// arguments object; Writes marks tools stripped for read-only datasources.
type Tool interface {
	Name() string
	Description() string
	Schema() string
	Category() string
	Phases() Phases
	Writes() bool
	Invoke(ctx context.Context, args json.RawMessage) (string, error)
}

// funcTool is the concrete Tool used by all built-ins.
type funcTool struct {
	name        string
	description string
	schema      string
	category    string
	phases      Phases
	writes      bool
	fn          func(ctx context.Context, args json.RawMessage) (string, error)
}

func (t *funcTool) Name() string        { return t.name }
func (t *funcTool) Description() string { return t.description }
func (t *funcTool) Schema() string      { return t.schema }
func (t *funcTool) Category() string    { return t.category }
func (t *funcTool) Phases() Phases      { return t.phases }
func (t *funcTool) Writes() bool        { return t.writes }

func (t *funcTool) Invoke(ctx context.Context, args json.RawMessage) (string, error) {
	return t.fn(ctx, args)
}

// Definition exports a tool in the provider-neutral shape the LLM clients
// consume.
func Definition(t Tool) llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:             t.Name(),
		Description:      t.Description(),
		ParametersSchema: t.Schema(),
	}
}

// Definitions exports a tool list.
func Definitions(ts []Tool) []llm.ToolDefinition {
	out := make([]llm.ToolDefinition, 0, len(ts))
	for _, t := range ts {
		out = append(out, Definition(t))
	}
	return out
}

// DocMarkdown renders the per-tool documentation written to
// tools/<name>.md at workspace init.
func DocMarkdown(t Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name())
	fmt.Fprintf(&b, "%s\n\n", t.Description())
	fmt.Fprintf(&b, "Category: %s\n\n", t.Category())
	fmt.Fprintf(&b, "## Arguments\n\n```json\n%s\n```\n", t.Schema())
	return b.String()
}

// Docs returns the tools/<name>.md seed map for a tool list.
func Docs(ts []Tool) map[string]string {
	out := make(map[string]string, len(ts))
	for _, t := range ts {
		out[t.Name()] = DocMarkdown(t)
	}
	return out
}

// decode unmarshals validated arguments into a typed struct.
func decode(args json.RawMessage, into any) error {
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(args, into); err != nil {
		return fmt.Errorf("failed to decode arguments: %w", err)
	}
	return nil
}
