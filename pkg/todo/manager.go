package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/praxis-works/praxis/pkg/workspace"
)

const todosFile = "todos.yaml"

// ErrUnknownTodo is returned by SetStatus for an id outside the list.
var ErrUnknownTodo = errors.New("unknown todo id")

// fileDoc is the on-disk shape of todos.yaml.
type fileDoc struct {
	PhaseNumber int    `yaml:"phase_number"`
	PhaseType   string `yaml:"phase_type"`
	Todos       []Todo `yaml:"todos"`
}

// Manager persists the current phase's todo list to the workspace. All
// read-modify-write operations go through the workspace manager, which
// serializes file mutations; the worker runs one graph node at a time so
// there is no intra-process contention.
type Manager struct {
	ws *workspace.Manager
}

// NewManager returns a Manager over the given workspace.
func NewManager(ws *workspace.Manager) *Manager {
	return &Manager{ws: ws}
}

// Load reads the current list. A missing todos.yaml yields an empty list.
func (m *Manager) Load() ([]Todo, error) {
	content, err := m.ws.Read(todosFile)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var doc fileDoc
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", todosFile, err)
	}
	return doc.Todos, nil
}

// Save writes the list with its phase metadata.
func (m *Manager) Save(todos []Todo, phaseNumber int, phaseType string) error {
	data, err := yaml.Marshal(fileDoc{PhaseNumber: phaseNumber, PhaseType: phaseType, Todos: todos})
	if err != nil {
		return fmt.Errorf("failed to marshal todos: %w", err)
	}
	return m.ws.Write(todosFile, string(data))
}

// Complete marks the first pending/in_progress todo done and returns the
// remaining open count and whether the completed todo was the last one.
// On a fully-done list it is a no-op returning (0, true, nil).
func (m *Manager) Complete(phaseNumber int, phaseType string) (remaining int, isLast bool, err error) {
	todos, err := m.Load()
	if err != nil {
		return 0, false, err
	}
	idx := FirstOpen(todos)
	if idx < 0 {
		return 0, true, nil
	}
	now := time.Now().UTC()
	todos[idx].Status = StatusDone
	todos[idx].CompletedAt = &now
	if err := m.Save(todos, phaseNumber, phaseType); err != nil {
		return 0, false, err
	}
	remaining = Remaining(todos)
	return remaining, remaining == 0, nil
}

// SetStatus updates one todo's status and optional notes. Terminal statuses
// are sticky: a done or skipped todo cannot be reopened.
func (m *Manager) SetStatus(id int, status Status, notes string, phaseNumber int, phaseType string) error {
	todos, err := m.Load()
	if err != nil {
		return err
	}
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		if todos[i].Status.IsTerminal() && !status.IsTerminal() {
			return fmt.Errorf("todo %d is already %s", id, todos[i].Status)
		}
		todos[i].Status = status
		if notes != "" {
			todos[i].Notes = notes
		}
		if status == StatusDone || status == StatusSkipped {
			now := time.Now().UTC()
			todos[i].CompletedAt = &now
		}
		return m.Save(todos, phaseNumber, phaseType)
	}
	return fmt.Errorf("%w: %d", ErrUnknownTodo, id)
}

// Archive seals the current list under archive/phase-N-<type>/ together
// with a retrospective, then removes the open todos.yaml. If the phase was
// already archived (a rewind), a -rev-M suffix keeps history append-only.
func (m *Manager) Archive(phaseNumber int, phaseType, retrospective string) error {
	todos, err := m.Load()
	if err != nil {
		return err
	}
	dir := m.archiveDir(phaseNumber, phaseType)
	data, err := yaml.Marshal(fileDoc{PhaseNumber: phaseNumber, PhaseType: phaseType, Todos: todos})
	if err != nil {
		return fmt.Errorf("failed to marshal todos for archive: %w", err)
	}
	if err := m.ws.Write(dir+"/todos.yaml", string(data)); err != nil {
		return err
	}
	if retrospective == "" {
		retrospective = fmt.Sprintf("# Phase %d (%s) retrospective\n\n_(pending)_\n", phaseNumber, phaseType)
	}
	if err := m.ws.Write(dir+"/retrospective.md", retrospective); err != nil {
		return err
	}
	if m.ws.Exists(todosFile) {
		return m.ws.Delete(todosFile)
	}
	return nil
}

// Rewind archives the current list as failed with the issue note. The
// caller then seeds a revised list.
func (m *Manager) Rewind(phaseNumber int, phaseType, issue string) error {
	retro := fmt.Sprintf("# Phase %d (%s) rewound\n\nIssue: %s\n", phaseNumber, phaseType, issue)
	return m.Archive(phaseNumber, phaseType, retro)
}

// archiveDir picks archive/phase-N-type, or the first free -rev-M variant
// when the base directory is already sealed.
func (m *Manager) archiveDir(phaseNumber int, phaseType string) string {
	base := fmt.Sprintf("archive/phase-%d-%s", phaseNumber, phaseType)
	if !m.ws.Exists(base) {
		return base
	}
	for rev := 1; ; rev++ {
		dir := fmt.Sprintf("%s-rev-%d", base, rev)
		if !m.ws.Exists(dir) {
			return dir
		}
	}
}

// FormatForDisplay renders the Layer-2 overlay body: the todo list with a
// phase indicator and the current-task instruction.
func (m *Manager) FormatForDisplay(todos []Todo, phaseType string, phaseNumber int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Current Phase: %d (%s)\n\n", phaseNumber, phaseType)
	if len(todos) == 0 {
		b.WriteString("No todos yet.\n")
		return b.String()
	}
	b.WriteString("### Todo List\n")
	for _, t := range todos {
		mark := " "
		switch t.Status {
		case StatusDone:
			mark = "x"
		case StatusSkipped:
			mark = "-"
		case StatusInProgress:
			mark = ">"
		}
		fmt.Fprintf(&b, "%d. [%s] %s", t.ID, mark, t.Content)
		if t.Notes != "" {
			fmt.Fprintf(&b, " (%s)", t.Notes)
		}
		b.WriteString("\n")
	}
	if idx := FirstOpen(todos); idx >= 0 {
		fmt.Fprintf(&b, "\nCurrent task: %s\nWork on the current task. Call todo_complete() when it is finished.\n", todos[idx].Content)
	} else {
		b.WriteString("\nAll todos are done.\n")
	}
	return b.String()
}
