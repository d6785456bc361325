// Package todo implements the phase-scoped task list persisted to
// todos.yaml in the workspace, with archiving and rewind support.
package todo

import (
	"time"
)

// Status of a single todo. done and skipped are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusSkipped    Status = "skipped"
)

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusSkipped
}

// Todo is one tactical or strategic step. IDs are dense and 1-based within
// a phase.
type Todo struct {
	ID          int        `yaml:"id" json:"id"`
	Content     string     `yaml:"content" json:"content"`
	Status      Status     `yaml:"status" json:"status"`
	Notes       string     `yaml:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time  `yaml:"created_at" json:"created_at"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// NewList builds a dense, 1-based pending list from content strings.
func NewList(contents []string) []Todo {
	now := time.Now().UTC()
	out := make([]Todo, 0, len(contents))
	for i, c := range contents {
		out = append(out, Todo{
			ID:        i + 1,
			Content:   c,
			Status:    StatusPending,
			CreatedAt: now,
		})
	}
	return out
}

// Bootstrap returns the literal phase-1 strategic todo set seeded at job
// start.
func Bootstrap() []Todo {
	return NewList([]string{
		"Examine the workspace (list files, read instructions.md).",
		"Populate workspace.md with current state, key entities, constraints.",
		"Draft plan.md with phased approach and success criteria.",
		"Call next_phase_todos(...) to produce the first tactical phase's todos.",
	})
}

// Reflection returns the strategic todo set seeded after each completed
// tactical phase.
func Reflection() []Todo {
	return NewList([]string{
		"Review the archived phase outcome and retrospective.",
		"Update plan.md and workspace.md with findings.",
		"Call next_phase_todos(...) or job_complete(...).",
	})
}

// AllDone reports whether every todo is terminal.
func AllDone(todos []Todo) bool {
	for _, t := range todos {
		if !t.Status.IsTerminal() {
			return false
		}
	}
	return true
}

// FirstOpen returns the index of the first non-terminal todo, or -1.
func FirstOpen(todos []Todo) int {
	for i, t := range todos {
		if !t.Status.IsTerminal() {
			return i
		}
	}
	return -1
}

// Remaining counts non-terminal todos.
func Remaining(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Status.IsTerminal() {
			n++
		}
	}
	return n
}
