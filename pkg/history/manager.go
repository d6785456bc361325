package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/llm"
)

// Placeholder replaces aged-out tool results once the compaction threshold
// is hit. The workspace holds the durable copy of whatever the result said.
const Placeholder = "[Result processed - see workspace if needed]"

const truncationSuffix = "\n... [truncated]"

// summaryPrefix marks the assistant message produced by summarization so it
// is never re-summarized.
const summaryPrefix = "Summary of earlier conversation:\n"

// Manager keeps the chat history within the model's working budget.
// Summarization is best-effort and uses the same LLM; the workspace files
// are the durable memory, so a failed summarization only costs tokens.
type Manager struct {
	cfg     config.ContextConfig
	counter *TokenCounter
	client  llm.Client
	model   string
	retry   llm.RetryPolicy
}

// NewManager builds a Manager. client may be nil, which disables
// summarization (compaction still applies).
func NewManager(cfg config.ContextConfig, model string, client llm.Client) (*Manager, error) {
	counter, err := NewTokenCounter(model)
	if err != nil {
		return nil, err
	}
	return &Manager{
		cfg:     cfg,
		counter: counter,
		client:  client,
		model:   model,
		retry:   llm.DefaultRetryPolicy(),
	}, nil
}

// Tokens estimates the token footprint of a message list.
func (m *Manager) Tokens(messages []llm.Message) int {
	return m.counter.CountMessages(messages)
}

// BuildPrompt assembles the layered prompt: the persistent system prompt,
// the todo-overlay system message, then the conversation. The overlay is
// injected fresh on every turn and is never part of the history passed to
// Prepare.
func (m *Manager) BuildPrompt(systemPrompt, overlay string, history []llm.Message) []llm.Message {
	out := make([]llm.Message, 0, len(history)+2)
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	if overlay != "" {
		out = append(out, llm.Message{Role: llm.RoleSystem, Content: overlay})
	}
	return append(out, history...)
}

// Prepare applies the aging pipeline to the conversation history and
// returns the (possibly shortened) replacement:
//
//  1. Tool results older than the keep_recent window are truncated to
//     max_tool_result_length.
//  2. At or above compaction_threshold_tokens, those older results are
//     replaced with the placeholder (protected tools exempt).
//  3. At or above summarization_threshold_tokens, everything older than
//     the last summary_keep_last messages is folded into one assistant
//     summary message.
func (m *Manager) Prepare(ctx context.Context, history []llm.Message) []llm.Message {
	out := make([]llm.Message, len(history))
	copy(out, history)

	m.truncateOldToolResults(out)

	if m.counter.CountMessages(out) >= m.cfg.CompactionThresholdTokens {
		m.substitutePlaceholders(out)
	}

	if m.counter.CountMessages(out) >= m.cfg.SummarizationThresholdTokens {
		out = m.summarize(ctx, out)
	}

	return out
}

// recentToolResultIndexes returns the set of history indexes holding the
// last keep_recent_tool_results tool results.
func (m *Manager) recentToolResultIndexes(history []llm.Message) map[int]bool {
	recent := make(map[int]bool, m.cfg.KeepRecentToolResults)
	count := 0
	for i := len(history) - 1; i >= 0 && count < m.cfg.KeepRecentToolResults; i-- {
		if history[i].Role == llm.RoleTool {
			recent[i] = true
			count++
		}
	}
	return recent
}

func (m *Manager) truncateOldToolResults(history []llm.Message) {
	recent := m.recentToolResultIndexes(history)
	for i := range history {
		if history[i].Role != llm.RoleTool || recent[i] {
			continue
		}
		if len(history[i].Content) > m.cfg.MaxToolResultLength {
			history[i].Content = history[i].Content[:m.cfg.MaxToolResultLength] + truncationSuffix
		}
	}
}

func (m *Manager) substitutePlaceholders(history []llm.Message) {
	recent := m.recentToolResultIndexes(history)
	protected := make(map[string]bool, len(m.cfg.ProtectedTools))
	for _, name := range m.cfg.ProtectedTools {
		protected[name] = true
	}
	for i := range history {
		if history[i].Role != llm.RoleTool || recent[i] || protected[history[i].ToolName] {
			continue
		}
		history[i].Content = Placeholder
	}
}

// summarize folds everything older than the last summary_keep_last
// messages into a single assistant summary. The cut never splits an
// assistant tool-call from its tool results.
func (m *Manager) summarize(ctx context.Context, history []llm.Message) []llm.Message {
	keep := m.cfg.SummaryKeepLast
	if len(history) <= keep {
		return history
	}
	cut := len(history) - keep
	for cut < len(history) && history[cut].Role == llm.RoleTool {
		cut++
	}
	if cut == 0 || cut >= len(history) {
		return history
	}

	older := history[:cut]
	summary := m.summarizeMessages(ctx, older)
	if summary == "" {
		// Best-effort: without a summary the originals stay.
		return history
	}

	out := make([]llm.Message, 0, 1+len(history)-cut)
	out = append(out, llm.Message{Role: llm.RoleAssistant, Content: summaryPrefix + summary})
	out = append(out, history[cut:]...)
	slog.Info("Summarized conversation history",
		"dropped_messages", cut, "kept_messages", len(history)-cut)
	return out
}

func (m *Manager) summarizeMessages(ctx context.Context, messages []llm.Message) string {
	if m.client == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Summarize the following agent conversation. Preserve decisions, file paths touched, findings, and open problems. Be concise.\n\n")
	for _, msg := range messages {
		if strings.HasPrefix(msg.Content, summaryPrefix) {
			b.WriteString(msg.Content)
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "[%s] %s\n", msg.Role, msg.Content)
		for _, tc := range msg.ToolCalls {
			fmt.Fprintf(&b, "[tool_call] %s(%s)\n", tc.Name, tc.Arguments)
		}
	}

	completion := llm.Complete(ctx, m.client, &llm.GenerateInput{
		Model:    m.model,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
	}, m.retry)
	if completion.Err != nil {
		slog.Warn("History summarization failed", "error", completion.Err.Message)
		return ""
	}
	return completion.Text
}
