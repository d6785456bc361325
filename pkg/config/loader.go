package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Layout of the config directory:
//
//	<configDir>/defaults.yaml
//	<configDir>/experts/<expert_id>/config.yaml
//	<configDir>/experts/<expert_id>/instructions.md
//
// All YAML files are environment-expanded before parsing.

// ErrUnknownExpert is returned when the expert directory does not exist.
var ErrUnknownExpert = errors.New("unknown expert")

// Loader resolves per-job config bundles from a config directory.
type Loader struct {
	configDir string
}

// NewLoader returns a Loader rooted at configDir.
func NewLoader(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// Resolve produces the merged config map for a job:
// defaults ⊕ expert config ⊕ config_override. The expert's instructions.md
// is injected under the "instructions" key. The datasource tool override is
// applied by the orchestrator on top of this result.
func (l *Loader) Resolve(expertID string, override map[string]any) (map[string]any, error) {
	merged, err := l.loadYAMLMap(filepath.Join(l.configDir, "defaults.yaml"), true)
	if err != nil {
		return nil, err
	}

	if expertID != "" {
		expertDir := filepath.Join(l.configDir, "experts", expertID)
		if _, err := os.Stat(expertDir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownExpert, expertID)
			}
			return nil, fmt.Errorf("failed to stat expert dir: %w", err)
		}
		expertCfg, err := l.loadYAMLMap(filepath.Join(expertDir, "config.yaml"), true)
		if err != nil {
			return nil, err
		}
		merged = DeepMerge(merged, expertCfg)

		instructions, err := os.ReadFile(filepath.Join(expertDir, "instructions.md"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read instructions.md for expert %s: %w", expertID, err)
		}
		if len(instructions) > 0 {
			merged = DeepMerge(merged, map[string]any{"instructions": string(instructions)})
		}
	}

	if len(override) > 0 {
		merged = DeepMerge(merged, override)
	}

	slog.Debug("Resolved job config", "expert_id", expertID, "override_keys", len(override))
	return merged, nil
}

// loadYAMLMap reads, env-expands, and parses a YAML file into a map.
// When optional is set a missing file yields an empty map.
func (l *Loader) loadYAMLMap(path string, optional bool) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var out map[string]any
	if err := yaml.Unmarshal(ExpandEnv(data), &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// FromMap decodes a merged config map into the typed Config, applies
// defaults, and validates. This is the worker-side entry point for the
// resolved_config carried in JobStart.
func FromMap(m map[string]any) (*Config, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode config map: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode resolved config: %w", err)
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("resolved config invalid: %w", err)
	}
	return &cfg, nil
}
