package history

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/llm"
)

func testContextConfig() config.ContextConfig {
	return config.ContextConfig{
		KeepRecentToolResults:        2,
		MaxToolResultLength:          50,
		CompactionThresholdTokens:    1_000_000,
		SummarizationThresholdTokens: 2_000_000,
		SummaryKeepLast:              4,
		ProtectedTools:               []string{"read_file", "list_files", "list_todos"},
	}
}

func newTestManager(t *testing.T, cfg config.ContextConfig, client llm.Client) *Manager {
	t.Helper()
	m, err := NewManager(cfg, "gpt-4o", client)
	require.NoError(t, err)
	return m
}

// toolTurn builds an assistant tool-call followed by its result.
func toolTurn(id, name, result string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{{ID: id, Name: name, Arguments: "{}"}}},
		{Role: llm.RoleTool, ToolCallID: id, ToolName: name, Content: result},
	}
}

func TestBuildPromptLayersOverlayAfterSystem(t *testing.T) {
	m := newTestManager(t, testContextConfig(), nil)

	history := []llm.Message{{Role: llm.RoleUser, Content: "go"}}
	prompt := m.BuildPrompt("you are an agent", "## Current Phase: 1 (strategic)", history)

	require.Len(t, prompt, 3)
	assert.Equal(t, llm.RoleSystem, prompt[0].Role)
	assert.Equal(t, "you are an agent", prompt[0].Content)
	assert.Equal(t, llm.RoleSystem, prompt[1].Role)
	assert.Contains(t, prompt[1].Content, "Current Phase")
	assert.Equal(t, llm.RoleUser, prompt[2].Role)
}

func TestBuildPromptSkipsEmptyOverlay(t *testing.T) {
	m := newTestManager(t, testContextConfig(), nil)

	prompt := m.BuildPrompt("sys", "", []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.Len(t, prompt, 2)
	assert.Equal(t, llm.RoleUser, prompt[1].Role)
}

func TestPrepareTruncatesOldToolResults(t *testing.T) {
	m := newTestManager(t, testContextConfig(), nil)

	long := strings.Repeat("x", 200)
	var history []llm.Message
	history = append(history, toolTurn("t1", "web_search", long)...)
	history = append(history, toolTurn("t2", "web_search", long)...)
	history = append(history, toolTurn("t3", "web_search", long)...)

	out := m.Prepare(context.Background(), history)

	// Oldest result is outside the keep window of 2 and gets truncated.
	assert.True(t, strings.HasSuffix(out[1].Content, "... [truncated]"))
	assert.Less(t, len(out[1].Content), 100)
	// Recent two stay verbatim.
	assert.Equal(t, long, out[3].Content)
	assert.Equal(t, long, out[5].Content)
}

func TestPrepareDoesNotMutateInput(t *testing.T) {
	m := newTestManager(t, testContextConfig(), nil)

	long := strings.Repeat("y", 200)
	var history []llm.Message
	for i := 0; i < 4; i++ {
		history = append(history, toolTurn("t", "web_search", long)...)
	}

	_ = m.Prepare(context.Background(), history)
	assert.Equal(t, long, history[1].Content)
}

func TestPreparePlaceholderSubstitution(t *testing.T) {
	cfg := testContextConfig()
	cfg.CompactionThresholdTokens = 1 // always compact
	m := newTestManager(t, cfg, nil)

	var history []llm.Message
	history = append(history, toolTurn("t1", "web_search", "old search output")...)
	history = append(history, toolTurn("t2", "read_file", "protected file body")...)
	history = append(history, toolTurn("t3", "web_search", "recent a")...)
	history = append(history, toolTurn("t4", "web_search", "recent b")...)

	out := m.Prepare(context.Background(), history)

	assert.Equal(t, Placeholder, out[1].Content)
	// Protected tool results survive compaction.
	assert.Equal(t, "protected file body", out[3].Content)
	// Recent window untouched.
	assert.Equal(t, "recent a", out[5].Content)
	assert.Equal(t, "recent b", out[7].Content)
}

func TestPreparePlaceholderKeepsPairing(t *testing.T) {
	cfg := testContextConfig()
	cfg.CompactionThresholdTokens = 1
	m := newTestManager(t, cfg, nil)

	var history []llm.Message
	for i := 0; i < 5; i++ {
		history = append(history, toolTurn("id", "sql_query", "rows")...)
	}

	out := m.Prepare(context.Background(), history)
	require.Len(t, out, len(history))
	for i := 0; i < len(out); i += 2 {
		assert.Equal(t, llm.RoleAssistant, out[i].Role)
		assert.Equal(t, llm.RoleTool, out[i+1].Role)
		assert.Equal(t, out[i].ToolCalls[0].ID, out[i+1].ToolCallID)
	}
}

func TestPrepareSummarizesOldMessages(t *testing.T) {
	cfg := testContextConfig()
	cfg.CompactionThresholdTokens = 1
	cfg.SummarizationThresholdTokens = 1
	client := llm.NewScriptedClient(llm.ScriptEntry{Text: "did research, wrote plan.md"})
	m := newTestManager(t, cfg, client)

	var history []llm.Message
	for i := 0; i < 4; i++ {
		history = append(history, llm.Message{Role: llm.RoleUser, Content: "old turn"})
		history = append(history, llm.Message{Role: llm.RoleAssistant, Content: "old reply"})
	}
	history = append(history, llm.Message{Role: llm.RoleUser, Content: "latest"})

	out := m.Prepare(context.Background(), history)

	// keep last 4: the summary replaces the first 5 messages.
	require.Len(t, out, 5)
	assert.Equal(t, llm.RoleAssistant, out[0].Role)
	assert.Contains(t, out[0].Content, "Summary of earlier conversation")
	assert.Contains(t, out[0].Content, "did research")
	assert.Equal(t, "latest", out[len(out)-1].Content)
}

func TestPrepareSummarizationNeverStartsWindowOnToolResult(t *testing.T) {
	cfg := testContextConfig()
	cfg.SummarizationThresholdTokens = 1
	cfg.SummaryKeepLast = 3
	client := llm.NewScriptedClient(llm.ScriptEntry{Text: "summary"})
	m := newTestManager(t, cfg, client)

	var history []llm.Message
	history = append(history, llm.Message{Role: llm.RoleUser, Content: "start"})
	history = append(history, llm.Message{Role: llm.RoleUser, Content: "more"})
	// Cut would land on the tool result; the window must slide past it.
	history = append(history, toolTurn("t1", "web_search", "result")...)
	history = append(history, llm.Message{Role: llm.RoleUser, Content: "after"})

	out := m.Prepare(context.Background(), history)

	require.NotEmpty(t, out)
	assert.NotEqual(t, llm.RoleTool, out[1].Role)
	for i, msg := range out {
		if msg.Role == llm.RoleTool {
			require.Greater(t, i, 0)
			assert.Equal(t, llm.RoleAssistant, out[i-1].Role)
		}
	}
}

func TestPrepareSummarizationFailureKeepsHistory(t *testing.T) {
	cfg := testContextConfig()
	cfg.SummarizationThresholdTokens = 1
	client := llm.NewScriptedClient(llm.ScriptEntry{
		Err: &llm.ErrorChunk{Message: "rate limited", Retryable: false},
	})
	m := newTestManager(t, cfg, client)

	var history []llm.Message
	for i := 0; i < 8; i++ {
		history = append(history, llm.Message{Role: llm.RoleUser, Content: "turn"})
	}

	out := m.Prepare(context.Background(), history)
	assert.Len(t, out, len(history))
}

func TestPrepareSummarizationDisabledWithoutClient(t *testing.T) {
	cfg := testContextConfig()
	cfg.SummarizationThresholdTokens = 1
	m := newTestManager(t, cfg, nil)

	var history []llm.Message
	for i := 0; i < 8; i++ {
		history = append(history, llm.Message{Role: llm.RoleUser, Content: "turn"})
	}

	out := m.Prepare(context.Background(), history)
	assert.Len(t, out, len(history))
}

func TestTokenCounterCountsContent(t *testing.T) {
	counter, err := NewTokenCounter("gpt-4o")
	require.NoError(t, err)

	assert.Greater(t, counter.Count("the quick brown fox"), 0)

	short := counter.CountMessages([]llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	long := counter.CountMessages([]llm.Message{
		{Role: llm.RoleUser, Content: strings.Repeat("hello world ", 50)},
	})
	assert.Greater(t, long, short)
}

func TestTokenCounterFallsBackForUnknownModel(t *testing.T) {
	counter, err := NewTokenCounter("claude-sonnet-4-5")
	require.NoError(t, err)
	assert.Greater(t, counter.Count("fallback encoding works"), 0)
}
