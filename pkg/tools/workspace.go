package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praxis-works/praxis/pkg/workspace"
)

// WorkspaceTools exposes the workspace file operations. Always enabled.
func WorkspaceTools(ws *workspace.Manager) []Tool {
	return []Tool{
		&funcTool{
			name:        "read_file",
			description: "Read a file from the workspace. Paths are relative to the workspace root.",
			category:    CategoryWorkspace,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Relative path of the file to read."}
  },
  "required": ["path"],
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Path string `json:"path"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return ws.Read(in.Path)
			},
		},
		&funcTool{
			name:        "list_files",
			description: "List workspace files, optionally filtered by a glob pattern matched against the relative path or basename.",
			category:    CategoryWorkspace,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "pattern": {"type": "string", "description": "Optional glob, e.g. *.md or archive/*."}
  },
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Pattern string `json:"pattern"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				paths, err := ws.List(in.Pattern)
				if err != nil {
					return "", err
				}
				if len(paths) == 0 {
					return "No files found.", nil
				}
				return strings.Join(paths, "\n"), nil
			},
		},
		&funcTool{
			name:        "search_workspace",
			description: "Search all workspace files for a literal substring and return matching lines with file and line number.",
			category:    CategoryWorkspace,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "description": "Literal text to search for."},
    "limit": {"type": "integer", "minimum": 1, "description": "Maximum matches to return (default 50)."}
  },
  "required": ["query"],
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Query string `json:"query"`
					Limit int    `json:"limit"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if in.Limit <= 0 {
					in.Limit = 50
				}
				results, err := ws.Search(in.Query, in.Limit)
				if err != nil {
					return "", err
				}
				if len(results) == 0 {
					return fmt.Sprintf("No matches for %q.", in.Query), nil
				}
				var b strings.Builder
				for _, r := range results {
					fmt.Fprintf(&b, "%s:%d: %s\n", r.Path, r.Line, r.Text)
				}
				return b.String(), nil
			},
		},
		&funcTool{
			name:        "write_file",
			description: "Write a file in the workspace, replacing any existing content. Parent directories are created.",
			category:    CategoryWorkspace,
			phases:      PhaseBoth,
			writes:      true,
			schema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Relative path of the file to write."},
    "content": {"type": "string", "description": "Full new file content."}
  },
  "required": ["path", "content"],
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Path    string `json:"path"`
					Content string `json:"content"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if err := ws.Write(in.Path, in.Content); err != nil {
					return "", err
				}
				return fmt.Sprintf("Wrote %d bytes to %s.", len(in.Content), in.Path), nil
			},
		},
		&funcTool{
			name:        "append_to_file",
			description: "Append content to the end of a workspace file, creating it if missing.",
			category:    CategoryWorkspace,
			phases:      PhaseBoth,
			writes:      true,
			schema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Relative path of the file."},
    "content": {"type": "string", "description": "Content to append."}
  },
  "required": ["path", "content"],
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Path    string `json:"path"`
					Content string `json:"content"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if err := ws.Append(in.Path, in.Content); err != nil {
					return "", err
				}
				return fmt.Sprintf("Appended %d bytes to %s.", len(in.Content), in.Path), nil
			},
		},
		&funcTool{
			name:        "edit_file",
			description: "Replace an exact text match in a workspace file. Fails if old_text is absent, or ambiguous without replace_all.",
			category:    CategoryWorkspace,
			phases:      PhaseBoth,
			writes:      true,
			schema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Relative path of the file to edit."},
    "old_text": {"type": "string", "description": "Exact text to replace."},
    "new_text": {"type": "string", "description": "Replacement text."},
    "replace_all": {"type": "boolean", "description": "Replace every occurrence instead of requiring uniqueness."}
  },
  "required": ["path", "old_text", "new_text"],
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Path       string `json:"path"`
					OldText    string `json:"old_text"`
					NewText    string `json:"new_text"`
					ReplaceAll bool   `json:"replace_all"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if err := ws.Edit(in.Path, in.OldText, in.NewText, in.ReplaceAll); err != nil {
					return "", err
				}
				return fmt.Sprintf("Edited %s.", in.Path), nil
			},
		},
	}
}

// GitTools exposes the read-only workspace history tools. Registered only
// when git is enabled for the workspace.
func GitTools(ws *workspace.Manager) []Tool {
	return []Tool{
		&funcTool{
			name:        "git_log",
			description: "Show recent workspace commit history.",
			category:    CategoryGit,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "limit": {"type": "integer", "minimum": 1, "description": "Number of commits to show (default 20)."}
  },
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Limit int `json:"limit"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if in.Limit <= 0 {
					in.Limit = 20
				}
				return ws.GitLog(in.Limit)
			},
		},
		&funcTool{
			name:        "git_diff",
			description: "Show uncommitted workspace changes, optionally limited to one path.",
			category:    CategoryGit,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Optional relative path to diff."}
  },
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Path string `json:"path"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return ws.GitDiff(in.Path)
			},
		},
		&funcTool{
			name:        "git_show",
			description: "Show a commit or object by reference.",
			category:    CategoryGit,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "ref": {"type": "string", "description": "Commit hash, branch, or other git reference."}
  },
  "required": ["ref"],
  "additionalProperties": false
}`,
			fn: func(_ context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Ref string `json:"ref"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				return ws.GitShow(in.Ref)
			},
		},
		&funcTool{
			name:        "git_status",
			description: "Show the workspace git status.",
			category:    CategoryGit,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`,
			fn: func(_ context.Context, _ json.RawMessage) (string, error) {
				return ws.GitStatus()
			},
		},
	}
}
