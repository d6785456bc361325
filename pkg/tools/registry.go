package tools

import (
	"fmt"
	"sort"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/models"
)

// Registry holds the registered tools keyed by name, grouped by category.
// Registration happens once at worker start; lookups afterwards are
// read-only, so no locking.
type Registry struct {
	byName     map[string]Tool
	byCategory map[string][]Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:     make(map[string]Tool),
		byCategory: make(map[string][]Tool),
	}
}

// Register adds tools, rejecting duplicate names.
func (r *Registry) Register(ts ...Tool) error {
	for _, t := range ts {
		if _, exists := r.byName[t.Name()]; exists {
			return fmt.Errorf("tool %q registered twice", t.Name())
		}
		r.byName[t.Name()] = t
		r.byCategory[t.Category()] = append(r.byCategory[t.Category()], t)
	}
	return nil
}

// All returns every registered tool sorted by name.
func (r *Registry) All() []Tool {
	out := make([]Tool, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Lookup returns the tool by name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Categories returns the registered category names, sorted.
func (r *Registry) Categories() []string {
	out := make([]string, 0, len(r.byCategory))
	for cat := range r.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Filter computes the tool surface for one LLM turn: only categories the
// resolved config enables, only names the category's list allows (an empty
// list enables the whole category), and only tools valid for the phase.
// Categories the config names but the registry does not know are skipped;
// the orchestrator may inject categories this worker has no backend for.
func (r *Registry) Filter(cfg config.ToolsConfig, phase models.PhaseType) []Tool {
	var out []Tool
	for _, cat := range sortedKeys(cfg.Categories) {
		allowed := cfg.Categories[cat]
		for _, t := range r.byCategory[cat] {
			if !t.Phases().Allows(phase) {
				continue
			}
			if len(allowed) > 0 && !contains(allowed, t.Name()) {
				continue
			}
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
