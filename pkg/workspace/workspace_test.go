package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := New(t.TempDir())
	require.NoError(t, m.Init(Seeds{Instructions: "do the thing"}, false))
	return m
}

func TestInitSeedsLayout(t *testing.T) {
	m := newTestManager(t)

	content, err := m.Read("instructions.md")
	require.NoError(t, err)
	assert.Equal(t, "do the thing", content)

	for _, f := range []string{"workspace.md", "plan.md"} {
		c, err := m.Read(f)
		require.NoError(t, err)
		assert.Empty(t, c)
	}
}

func TestInitDoesNotClobberExistingFiles(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("plan.md", "existing plan"))

	// Re-init simulates crash re-assignment.
	require.NoError(t, m.Init(Seeds{Instructions: "other"}, false))

	plan, err := m.Read("plan.md")
	require.NoError(t, err)
	assert.Equal(t, "existing plan", plan)

	instructions, err := m.Read("instructions.md")
	require.NoError(t, err)
	assert.Equal(t, "do the thing", instructions)
}

func TestReadMissingFile(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Read("nope.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteCreatesParents(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("output/deep/nested.txt", "hello"))
	content, err := m.Read("output/deep/nested.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestAppend(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Append("feedback.md", "first\n"))
	require.NoError(t, m.Append("feedback.md", "second\n"))
	content, err := m.Read("feedback.md")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", content)
}

func TestEditExactMatch(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("a.txt", "alpha beta gamma"))

	require.NoError(t, m.Edit("a.txt", "beta", "BETA", false))
	content, err := m.Read("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha BETA gamma", content)
}

func TestEditRoundTripRestoresFile(t *testing.T) {
	m := newTestManager(t)
	original := "x = 1\ny = 2\n"
	require.NoError(t, m.Write("a.txt", original))

	require.NoError(t, m.Edit("a.txt", "y = 2", "y = 3", false))
	require.NoError(t, m.Edit("a.txt", "y = 3", "y = 2", false))

	content, err := m.Read("a.txt")
	require.NoError(t, err)
	assert.Equal(t, original, content)
}

func TestEditIdenticalTextIsNoOp(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("a.txt", "same"))
	assert.NoError(t, m.Edit("a.txt", "same", "same", false))
}

func TestEditMissingText(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("a.txt", "content"))
	assert.ErrorIs(t, m.Edit("a.txt", "absent", "x", false), ErrNoMatch)
}

func TestEditAmbiguousText(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("a.txt", "dup dup"))

	assert.ErrorIs(t, m.Edit("a.txt", "dup", "x", false), ErrAmbiguous)

	require.NoError(t, m.Edit("a.txt", "dup", "x", true))
	content, err := m.Read("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "x x", content)
}

func TestListGlob(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("output/result.txt", "r"))
	require.NoError(t, m.Write("notes.md", "n"))

	all, err := m.List("")
	require.NoError(t, err)
	assert.Contains(t, all, "output/result.txt")
	assert.Contains(t, all, "instructions.md")

	mds, err := m.List("*.md")
	require.NoError(t, err)
	assert.Contains(t, mds, "notes.md")
	assert.NotContains(t, mds, "output/result.txt")
}

func TestSearch(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("plan.md", "step one\nKEEP-ME-42\nstep two"))

	results, err := m.Search("KEEP-ME-42", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "plan.md", results[0].Path)
	assert.Equal(t, 2, results[0].Line)
}

func TestPathEscapeRejected(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Read("../../etc/passwd")
	assert.ErrorIs(t, err, ErrPathEscapes)
	_, err = m.Read("/etc/passwd")
	assert.ErrorIs(t, err, ErrPathEscapes)
	// Internal dot-dot segments that stay inside the root are fine.
	assert.NoError(t, m.Write("sub/../ok.txt", "fine"))
}

func TestDelete(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Write("tmp.txt", "x"))
	require.NoError(t, m.Delete("tmp.txt"))
	assert.False(t, m.Exists("tmp.txt"))
	assert.ErrorIs(t, m.Delete("tmp.txt"), ErrNotFound)
}
