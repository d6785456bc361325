package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptEntry is one prerecorded LLM response. Exactly one of the content
// fields is normally set; Chunks takes precedence when non-nil.
type ScriptEntry struct {
	// Chunks is replayed verbatim when set.
	Chunks []Chunk

	// Text becomes a single TextChunk.
	Text string

	// ToolCalls become ToolCallChunks after the text.
	ToolCalls []ToolCall

	// Err terminates the stream with an ErrorChunk.
	Err *ErrorChunk

	// Usage overrides the default per-call usage sample.
	Usage *UsageChunk
}

// ScriptedClient replays a fixed sequence of responses. It records every
// GenerateInput it receives so tests can assert on prompt construction.
// The graph is deterministic given LLM output, so a scripted client yields
// reproducible workspace diffs.
type ScriptedClient struct {
	mu      sync.Mutex
	script  []ScriptEntry
	calls   []*GenerateInput
	nextIdx int
}

// NewScriptedClient builds a client replaying the given entries in order.
func NewScriptedClient(entries ...ScriptEntry) *ScriptedClient {
	return &ScriptedClient{script: entries}
}

// Append adds entries to the end of the script.
func (s *ScriptedClient) Append(entries ...ScriptEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, entries...)
}

// Calls returns a copy of the recorded inputs.
func (s *ScriptedClient) Calls() []*GenerateInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*GenerateInput, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many Generate calls have been made.
func (s *ScriptedClient) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Generate replays the next script entry as a chunk stream.
func (s *ScriptedClient) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	s.mu.Lock()
	s.calls = append(s.calls, input)
	if s.nextIdx >= len(s.script) {
		s.mu.Unlock()
		return nil, fmt.Errorf("scripted LLM exhausted after %d calls", len(s.script))
	}
	entry := s.script[s.nextIdx]
	s.nextIdx++
	s.mu.Unlock()

	out := make(chan Chunk, len(entry.Chunks)+len(entry.ToolCalls)+3)
	go func() {
		defer close(out)
		if entry.Chunks != nil {
			for _, c := range entry.Chunks {
				out <- c
			}
			return
		}
		if entry.Err != nil {
			out <- entry.Err
			return
		}
		if entry.Text != "" {
			out <- &TextChunk{Content: entry.Text}
		}
		for _, tc := range entry.ToolCalls {
			out <- &ToolCallChunk{CallID: tc.ID, Name: tc.Name, Arguments: tc.Arguments}
		}
		if entry.Usage != nil {
			out <- entry.Usage
		} else {
			out <- &UsageChunk{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}
		}
	}()
	return out, nil
}

// Close implements Client.
func (s *ScriptedClient) Close() error { return nil }
