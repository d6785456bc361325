// Package history implements the context-window manager: layered prompt
// assembly, tool-result aging with placeholder substitution, and
// best-effort summarization, all budgeted by tiktoken estimates.
package history

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/praxis-works/praxis/pkg/llm"
)

// TokenCounter estimates token usage per model. Encodings are cached
// process-wide because tiktoken initialization is expensive.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	model    string
}

var (
	encodingCache = make(map[string]*tiktoken.Tiktoken)
	cacheMu       sync.RWMutex
)

// NewTokenCounter creates a counter for the given model, falling back to
// the cl100k_base encoding for models tiktoken does not know (Anthropic
// models, local deployments). Estimates only need to be consistent, not
// provider-exact: they gate compaction thresholds.
func NewTokenCounter(model string) (*TokenCounter, error) {
	cacheMu.RLock()
	cached, exists := encodingCache[model]
	cacheMu.RUnlock()
	if exists {
		return &TokenCounter{encoding: cached, model: model}, nil
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("failed to get encoding: %w", err)
		}
	}

	cacheMu.Lock()
	encodingCache[model] = encoding
	cacheMu.Unlock()

	return &TokenCounter{encoding: encoding, model: model}, nil
}

// Count returns the token count for a text fragment.
func (tc *TokenCounter) Count(text string) int {
	return len(tc.encoding.Encode(text, nil, nil))
}

// CountMessages estimates tokens for a message list including per-message
// role overhead.
func (tc *TokenCounter) CountMessages(messages []llm.Message) int {
	const tokensPerMessage = 3

	total := 0
	for _, msg := range messages {
		total += tokensPerMessage
		total += len(tc.encoding.Encode(msg.Role, nil, nil))
		total += len(tc.encoding.Encode(msg.Content, nil, nil))
		for _, tc2 := range msg.ToolCalls {
			total += len(tc.encoding.Encode(tc2.Name, nil, nil))
			total += len(tc.encoding.Encode(tc2.Arguments, nil, nil))
		}
	}
	// Every reply is primed with <|start|>assistant<|message|>.
	total += 3
	return total
}
