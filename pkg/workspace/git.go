package workspace

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git integration is optional. When disabled, the git_* history tools are
// not registered and phase branching is skipped; freezes still work purely
// through the pending_review state and the feedback channel.

func (m *Manager) gitInit() error {
	if _, err := m.git("rev-parse", "--git-dir"); err == nil {
		return nil // already a repository
	}
	if _, err := m.git("init", "-b", "main"); err != nil {
		return fmt.Errorf("git init failed: %w", err)
	}
	if _, err := m.git("add", "-A"); err != nil {
		return err
	}
	_, err := m.git("commit", "--allow-empty", "-m", "workspace init")
	return err
}

// GitEnabled reports whether git operations are available.
func (m *Manager) GitEnabled() bool { return m.gitOn }

// GitLog returns the commit log (oneline, most recent first).
func (m *Manager) GitLog(limit int) (string, error) {
	if !m.gitOn {
		return "", ErrGitDisabled
	}
	args := []string{"log", "--oneline"}
	if limit > 0 {
		args = append(args, fmt.Sprintf("-n%d", limit))
	}
	return m.git(args...)
}

// GitDiff returns the working-tree diff, optionally limited to a path.
func (m *Manager) GitDiff(path string) (string, error) {
	if !m.gitOn {
		return "", ErrGitDisabled
	}
	args := []string{"diff"}
	if path != "" {
		args = append(args, "--", path)
	}
	return m.git(args...)
}

// GitShow returns a commit's metadata and patch.
func (m *Manager) GitShow(ref string) (string, error) {
	if !m.gitOn {
		return "", ErrGitDisabled
	}
	if ref == "" {
		ref = "HEAD"
	}
	return m.git("show", "--stat", ref)
}

// GitStatus returns the short working-tree status.
func (m *Manager) GitStatus() (string, error) {
	if !m.gitOn {
		return "", ErrGitDisabled
	}
	return m.git("status", "--short")
}

// StartPhaseBranch creates phase-{N}-{type} from the current HEAD.
func (m *Manager) StartPhaseBranch(phaseNumber int, phaseType string) error {
	if !m.gitOn {
		return nil
	}
	branch := fmt.Sprintf("phase-%d-%s", phaseNumber, phaseType)
	if _, err := m.git("checkout", "-B", branch); err != nil {
		return fmt.Errorf("failed to create phase branch %s: %w", branch, err)
	}
	return nil
}

// CommitPhase commits all pending changes with the given message and merges
// the phase branch back to main when autoMerge is set; otherwise the branch
// is left for review.
func (m *Manager) CommitPhase(message string, autoMerge bool) error {
	if !m.gitOn {
		return nil
	}
	if _, err := m.git("add", "-A"); err != nil {
		return err
	}
	if _, err := m.git("commit", "--allow-empty", "-m", message); err != nil {
		return err
	}
	if !autoMerge {
		return nil
	}
	branch, err := m.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return err
	}
	branch = strings.TrimSpace(branch)
	if branch == "main" {
		return nil
	}
	if _, err := m.git("checkout", "main"); err != nil {
		return err
	}
	if _, err := m.git("merge", "--squash", branch); err != nil {
		return err
	}
	_, err = m.git("commit", "--allow-empty", "-m", message)
	return err
}

func (m *Manager) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = m.root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}
