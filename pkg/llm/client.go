// Package llm provides the provider-agnostic chat interface used by the
// phase graph: a channel-based streaming API with tool-call correlation,
// concrete OpenAI and Anthropic providers, and a model-prefix router with
// bounded retry.
package llm

import (
	"context"
	"strings"
)

// Client is the interface for calling a language model provider.
type Client interface {
	// Generate sends a conversation to the LLM and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases any underlying connections.
	Close() error
}

// GenerateInput is a single Generate request.
type GenerateInput struct {
	JobID          string
	Model          string
	Temperature    *float64
	MaxTokens      int
	ReasoningLevel string // provider-specific; empty = provider default
	Messages       []Message
	Tools          []ToolDefinition // nil = no tools
}

// Message roles. Multiple system messages are allowed: the persistent system
// prompt plus the todo-overlay system message injected on every turn.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one entry of the chat history. It is part of the serialized
// graph state, so the JSON shape must stay stable across versions.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // assistant messages
	ToolCallID string     `json:"tool_call_id,omitempty"` // tool result messages
	ToolName   string     `json:"tool_name,omitempty"`    // tool result messages
}

// ToolDefinition describes a tool available to the LLM.
type ToolDefinition struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParametersSchema string `json:"parameters_schema"` // JSON Schema
}

// ToolCall represents an LLM's request to call a tool.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the LLM's internal reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals the LLM wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }

// Completion is the fully drained result of one Generate stream.
type Completion struct {
	Text      string
	Thinking  string
	ToolCalls []ToolCall
	Usage     UsageChunk
	Err       *ErrorChunk
}

// Drain consumes a chunk stream to completion and assembles the result.
// Context cancellation abandons the stream; the provider goroutine observes
// the same context and terminates on its own.
func Drain(ctx context.Context, ch <-chan Chunk) Completion {
	var out Completion
	var text, thinking strings.Builder
	for {
		select {
		case <-ctx.Done():
			out.Err = &ErrorChunk{Message: ctx.Err().Error(), Code: "context", Retryable: false}
			out.Text = text.String()
			out.Thinking = thinking.String()
			return out
		case chunk, ok := <-ch:
			if !ok {
				out.Text = text.String()
				out.Thinking = thinking.String()
				return out
			}
			switch c := chunk.(type) {
			case *TextChunk:
				text.WriteString(c.Content)
			case *ThinkingChunk:
				thinking.WriteString(c.Content)
			case *ToolCallChunk:
				out.ToolCalls = append(out.ToolCalls, ToolCall{ID: c.CallID, Name: c.Name, Arguments: c.Arguments})
			case *UsageChunk:
				out.Usage = *c
			case *ErrorChunk:
				out.Err = c
			}
		}
	}
}
