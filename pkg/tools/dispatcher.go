package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/praxis-works/praxis/pkg/llm"
)

// Dispatcher validates and executes tool calls. Every failure path folds
// into an "Error: ..." observation string so tool problems are never fatal
// to the phase graph.
type Dispatcher struct {
	registry *Registry

	mu      sync.Mutex
	schemas map[string]*jsonschema.Schema
}

// NewDispatcher wraps a registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Dispatch runs one tool call and returns the observation text. The
// returned string either carries the tool's output or starts with
// "Error: "; it is always safe to feed back to the LLM.
func (d *Dispatcher) Dispatch(ctx context.Context, call llm.ToolCall) string {
	tool, ok := d.registry.Lookup(call.Name)
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q", call.Name)
	}

	if err := d.validate(tool, call.Arguments); err != nil {
		return fmt.Sprintf("Error: invalid arguments for %s: %v", call.Name, err)
	}

	output, err := tool.Invoke(ctx, json.RawMessage(call.Arguments))
	if err != nil {
		slog.Debug("Tool returned error", "tool", call.Name, "error", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return output
}

func (d *Dispatcher) validate(tool Tool, arguments string) error {
	schema, err := d.compiled(tool)
	if err != nil {
		return err
	}

	raw := arguments
	if raw == "" {
		raw = "{}"
	}
	var instance any
	if err := json.Unmarshal([]byte(raw), &instance); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	return schema.Validate(instance)
}

func (d *Dispatcher) compiled(tool Tool) (*jsonschema.Schema, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s, ok := d.schemas[tool.Name()]; ok {
		return s, nil
	}

	var doc any
	if err := json.Unmarshal([]byte(tool.Schema()), &doc); err != nil {
		return nil, fmt.Errorf("schema for %s is not valid JSON: %w", tool.Name(), err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource for %s: %w", tool.Name(), err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", tool.Name(), err)
	}
	d.schemas[tool.Name()] = schema
	return schema, nil
}
