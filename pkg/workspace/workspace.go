// Package workspace implements the per-job, git-backed working directory:
// the durable memory of the agent. All mutations are transactional at file
// granularity (write-to-temp, fsync, rename) and read-modify-write
// operations hold a file-scoped lock.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
)

// Sentinel errors surfaced to the tool layer.
var (
	ErrNotFound    = errors.New("file not found")
	ErrPathEscapes = errors.New("path escapes workspace root")
	ErrNoMatch     = errors.New("old_text not found in file")
	ErrAmbiguous   = errors.New("old_text matches more than once")
	ErrGitDisabled = errors.New("git integration is not enabled for this workspace")
)

// Seeds carries the initial file contents written at job start.
type Seeds struct {
	Instructions string
	Uploads      map[string][]byte // name -> content, staged under uploads/
	ToolDocs     map[string]string // tool name -> markdown, staged under tools/
}

// Manager provides file operations rooted at a single job's directory.
type Manager struct {
	root  string
	gitOn bool
}

// New returns a Manager rooted at dir. The directory need not exist yet;
// Init creates it.
func New(dir string) *Manager {
	return &Manager{root: dir}
}

// Root returns the workspace root directory.
func (m *Manager) Root() string { return m.root }

// Init scaffolds the workspace layout and writes seed files. Existing files
// are left untouched so re-assignment after a crash does not clobber agent
// work.
func (m *Manager) Init(seeds Seeds, enableGit bool) error {
	for _, sub := range []string{"", "archive", "output", "tools", "uploads"} {
		if err := os.MkdirAll(filepath.Join(m.root, sub), 0o755); err != nil {
			return fmt.Errorf("failed to create workspace directory: %w", err)
		}
	}

	seedFiles := map[string]string{
		"instructions.md": seeds.Instructions,
		"workspace.md":    "",
		"plan.md":         "",
	}
	for name, content := range seedFiles {
		if m.Exists(name) {
			continue
		}
		if err := m.Write(name, content); err != nil {
			return err
		}
	}
	for name, doc := range seeds.ToolDocs {
		path := filepath.Join("tools", name+".md")
		if !m.Exists(path) {
			if err := m.Write(path, doc); err != nil {
				return err
			}
		}
	}
	for name, content := range seeds.Uploads {
		path := filepath.Join("uploads", filepath.Base(name))
		if !m.Exists(path) {
			if err := m.Write(path, string(content)); err != nil {
				return err
			}
		}
	}

	if enableGit {
		if err := m.gitInit(); err != nil {
			return err
		}
		m.gitOn = true
	}
	return nil
}

// resolve joins rel onto the root and rejects escapes.
func (m *Manager) resolve(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, rel)
	}
	cleaned := filepath.Clean(rel)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, rel)
	}
	return filepath.Join(m.root, cleaned), nil
}

// Read returns the content of a file.
func (m *Manager) Read(rel string) (string, error) {
	abs, err := m.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return "", fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return string(data), nil
}

// Exists reports whether a file or directory exists.
func (m *Manager) Exists(rel string) bool {
	abs, err := m.resolve(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

// List returns workspace-relative paths of all regular files matching the
// glob pattern. An empty pattern lists everything. Results are sorted.
func (m *Manager) List(pattern string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(m.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(m.root, path)
		if err != nil {
			return err
		}
		if pattern != "" {
			ok, err := filepath.Match(pattern, rel)
			if err != nil {
				return fmt.Errorf("bad glob pattern %q: %w", pattern, err)
			}
			if !ok {
				// Also try matching the basename so "*.md" finds nested files.
				if ok, _ = filepath.Match(pattern, filepath.Base(rel)); !ok {
					return nil
				}
			}
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

// Write replaces a file's content atomically, creating parent directories.
func (m *Manager) Write(rel, content string) error {
	abs, err := m.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", rel, err)
	}
	return atomicWrite(abs, []byte(content))
}

// Append appends content to a file under a file-scoped lock, creating it if
// absent. The lock covers the whole read-modify-write so concurrent tool
// invocations cannot interleave.
func (m *Manager) Append(rel, content string) error {
	abs, err := m.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", rel, err)
	}
	lock := flock.New(abs + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", rel, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(abs + ".lock")
	}()

	existing, err := os.ReadFile(abs)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return atomicWrite(abs, append(existing, []byte(content)...))
}

// Edit performs an exact-match string replacement. It fails when oldText is
// absent, and when oldText is not unique unless replaceAll is set. A
// replacement where oldText == newText is a no-op.
func (m *Manager) Edit(rel, oldText, newText string, replaceAll bool) error {
	if oldText == newText {
		return nil
	}
	abs, err := m.resolve(rel)
	if err != nil {
		return err
	}
	lock := flock.New(abs + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", rel, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(abs + ".lock")
	}()

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return fmt.Errorf("failed to read %s: %w", rel, err)
	}
	content := string(data)
	count := strings.Count(content, oldText)
	switch {
	case count == 0:
		return fmt.Errorf("%w: %s", ErrNoMatch, rel)
	case count > 1 && !replaceAll:
		return fmt.Errorf("%w: %d occurrences in %s", ErrAmbiguous, count, rel)
	}
	if replaceAll {
		content = strings.ReplaceAll(content, oldText, newText)
	} else {
		content = strings.Replace(content, oldText, newText, 1)
	}
	return atomicWrite(abs, []byte(content))
}

// Delete removes a file.
func (m *Manager) Delete(rel string) error {
	abs, err := m.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return fmt.Errorf("failed to delete %s: %w", rel, err)
	}
	return nil
}

// SearchResult is one matching line from Search.
type SearchResult struct {
	Path string
	Line int
	Text string
}

// Search scans all regular files for a literal substring and returns
// matching lines, capped at limit (0 = no cap).
func (m *Manager) Search(query string, limit int) ([]SearchResult, error) {
	files, err := m.List("")
	if err != nil {
		return nil, err
	}
	var out []SearchResult
	for _, rel := range files {
		content, err := m.Read(rel)
		if err != nil {
			continue
		}
		for i, line := range strings.Split(content, "\n") {
			if strings.Contains(line, query) {
				out = append(out, SearchResult{Path: rel, Line: i + 1, Text: line})
				if limit > 0 && len(out) >= limit {
					return out, nil
				}
			}
		}
	}
	return out, nil
}

// atomicWrite writes data to a temp file in the target directory, fsyncs,
// and renames over the destination.
func atomicWrite(abs string, data []byte) error {
	dir := filepath.Dir(abs)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(abs)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("failed to replace %s: %w", abs, err)
	}
	return nil
}
