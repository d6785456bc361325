package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/llm"
)

func TestDispatchUnknownTool(t *testing.T) {
	d := NewDispatcher(NewRegistry())

	out := d.Dispatch(context.Background(), llm.ToolCall{Name: "no_such_tool", Arguments: "{}"})
	assert.Equal(t, `Error: unknown tool "no_such_tool"`, out)
}

func TestDispatchValidatesArguments(t *testing.T) {
	r, _ := newTestRegistry(t)
	d := NewDispatcher(r)

	// Missing required "path".
	out := d.Dispatch(context.Background(), llm.ToolCall{Name: "read_file", Arguments: `{}`})
	assert.Contains(t, out, "Error: invalid arguments for read_file")

	// Unknown property rejected by additionalProperties: false.
	out = d.Dispatch(context.Background(), llm.ToolCall{
		Name:      "read_file",
		Arguments: `{"path": "a.md", "bogus": true}`,
	})
	assert.Contains(t, out, "Error: invalid arguments for read_file")
}

func TestDispatchMalformedJSONArguments(t *testing.T) {
	r, _ := newTestRegistry(t)
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{Name: "read_file", Arguments: `{"path":`})
	assert.Contains(t, out, "Error: invalid arguments for read_file")
	assert.Contains(t, out, "not valid JSON")
}

func TestDispatchToolErrorsBecomeObservations(t *testing.T) {
	r, _ := newTestRegistry(t)
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{
		Name:      "read_file",
		Arguments: `{"path": "does-not-exist.md"}`,
	})
	assert.Contains(t, out, "Error: ")
}

func TestDispatchWorkspaceRoundTrip(t *testing.T) {
	r, ws := newTestRegistry(t)
	d := NewDispatcher(r)
	ctx := context.Background()

	out := d.Dispatch(ctx, llm.ToolCall{
		Name:      "write_file",
		Arguments: `{"path": "notes.md", "content": "alpha beta"}`,
	})
	require.NotContains(t, out, "Error:")

	out = d.Dispatch(ctx, llm.ToolCall{Name: "read_file", Arguments: `{"path": "notes.md"}`})
	assert.Equal(t, "alpha beta", out)

	out = d.Dispatch(ctx, llm.ToolCall{
		Name:      "edit_file",
		Arguments: `{"path": "notes.md", "old_text": "beta", "new_text": "gamma"}`,
	})
	require.NotContains(t, out, "Error:")

	content, err := ws.Read("notes.md")
	require.NoError(t, err)
	assert.Equal(t, "alpha gamma", content)

	out = d.Dispatch(ctx, llm.ToolCall{
		Name:      "search_workspace",
		Arguments: `{"query": "gamma"}`,
	})
	assert.Contains(t, out, "notes.md:1")
}

func TestDispatchCoreHooks(t *testing.T) {
	r := NewRegistry()
	var gotIssue string
	var gotTodos []string
	hooks := testHooks()
	hooks.TodoRewind = func(_ context.Context, issue string) (string, error) {
		gotIssue = issue
		return "rewound", nil
	}
	hooks.NextPhaseTodos = func(_ context.Context, todos []string) (string, error) {
		gotTodos = todos
		return "staged 3 todos", nil
	}
	require.NoError(t, r.Register(CoreTools(hooks)...))
	d := NewDispatcher(r)
	ctx := context.Background()

	out := d.Dispatch(ctx, llm.ToolCall{
		Name:      "todo_rewind",
		Arguments: `{"issue": "plan assumed the wrong schema"}`,
	})
	assert.Equal(t, "rewound", out)
	assert.Equal(t, "plan assumed the wrong schema", gotIssue)

	out = d.Dispatch(ctx, llm.ToolCall{
		Name:      "next_phase_todos",
		Arguments: `{"todos": ["a", "b", "c"]}`,
	})
	assert.Equal(t, "staged 3 todos", out)
	assert.Equal(t, []string{"a", "b", "c"}, gotTodos)
}

func TestDispatchHookFailureIsNonFatal(t *testing.T) {
	r := NewRegistry()
	hooks := testHooks()
	hooks.NextPhaseTodos = func(_ context.Context, todos []string) (string, error) {
		return "", errors.New("need between 5 and 20 todos, got 2")
	}
	require.NoError(t, r.Register(CoreTools(hooks)...))
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{
		Name:      "next_phase_todos",
		Arguments: `{"todos": ["a", "b"]}`,
	})
	assert.Equal(t, "Error: need between 5 and 20 todos, got 2", out)
}

func TestDispatchEmptyArgumentsDefaultToObject(t *testing.T) {
	r, _ := newTestRegistry(t)
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{Name: "list_todos", Arguments: ""})
	assert.Equal(t, "todos", out)
}

func TestSchemaCompilationIsCached(t *testing.T) {
	r, _ := newTestRegistry(t)
	d := NewDispatcher(r)

	tool, ok := r.Lookup("read_file")
	require.True(t, ok)
	first, err := d.compiled(tool)
	require.NoError(t, err)
	second, err := d.compiled(tool)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestJobCompleteRequestDecoding(t *testing.T) {
	var req JobCompleteRequest
	raw := `{"summary": "done", "deliverables": ["output/report.md"], "confidence": "high", "notes": "n"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	assert.Equal(t, "done", req.Summary)
	assert.Equal(t, []string{"output/report.md"}, req.Deliverables)
}
