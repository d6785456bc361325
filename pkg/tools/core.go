package tools

import (
	"context"
	"encoding/json"
)

// CoreHooks wires the core tools into the phase graph. The graph owns the
// todo list and the terminal flags; the tools only call through so the
// engine package does not depend on this one.
type CoreHooks struct {
	ListTodos      func(ctx context.Context) (string, error)
	TodoComplete   func(ctx context.Context, notes string) (string, error)
	TodoRewind     func(ctx context.Context, issue string) (string, error)
	NextPhaseTodos func(ctx context.Context, todos []string) (string, error)
	JobComplete    func(ctx context.Context, req JobCompleteRequest) (string, error)
}

// JobCompleteRequest carries the job_complete tool arguments.
type JobCompleteRequest struct {
	Summary      string   `json:"summary"`
	Deliverables []string `json:"deliverables"`
	Confidence   string   `json:"confidence"`
	Notes        string   `json:"notes,omitempty"`
}

// CoreTools exposes todo management and the two terminal tools. Always
// enabled; next_phase_todos and job_complete are strategic-only.
func CoreTools(hooks CoreHooks) []Tool {
	return []Tool{
		&funcTool{
			name:        "list_todos",
			description: "Show the current phase's todo list with statuses.",
			category:    CategoryCore,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return hooks.ListTodos(ctx)
			},
		},
		&funcTool{
			name:        "todo_complete",
			description: "Mark the current (first open) todo as done and report how many remain.",
			category:    CategoryCore,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "notes": {"type": "string", "description": "Optional completion notes recorded on the todo."}
  },
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Notes string `json:"notes"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return hooks.TodoComplete(ctx, in.Notes)
			},
		},
		&funcTool{
			name:        "todo_rewind",
			description: "Abandon the current todo list because of a blocking issue. The list is archived with the issue note; follow up with a revised plan.",
			category:    CategoryCore,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "issue": {"type": "string", "description": "What went wrong with the current plan."}
  },
  "required": ["issue"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Issue string `json:"issue"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return hooks.TodoRewind(ctx, in.Issue)
			},
		},
		&funcTool{
			name:        "next_phase_todos",
			description: "End the strategic phase by providing the todo list for the next tactical phase. Each todo must be a concrete, verifiable task.",
			category:    CategoryCore,
			phases:      PhaseStrategic,
			schema: `{
  "type": "object",
  "properties": {
    "todos": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "description": "Ordered task list for the next tactical phase."
    }
  },
  "required": ["todos"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Todos []string `json:"todos"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return hooks.NextPhaseTodos(ctx, in.Todos)
			},
		},
		&funcTool{
			name:        "job_complete",
			description: "Declare the job finished. Provide a summary of what was accomplished, the deliverable paths, and a confidence assessment.",
			category:    CategoryCore,
			phases:      PhaseStrategic,
			schema: `{
  "type": "object",
  "properties": {
    "summary": {"type": "string", "minLength": 1, "description": "What was accomplished."},
    "deliverables": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Workspace paths of the deliverables."
    },
    "confidence": {"type": "string", "description": "Confidence that the goal is met, e.g. high/medium/low with rationale."},
    "notes": {"type": "string", "description": "Optional caveats or follow-up suggestions."}
  },
  "required": ["summary", "deliverables", "confidence"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in JobCompleteRequest
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return hooks.JobComplete(ctx, in)
			},
		},
	}
}
