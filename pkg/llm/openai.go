package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client against the OpenAI chat completions API
// (or any compatible endpoint via OPENAI_BASE_URL).
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient builds a client from OPENAI_API_KEY / OPENAI_BASE_URL.
func NewOpenAIClient() (*OpenAIClient, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	cfg := openai.DefaultConfig(key)
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}, nil
}

// NewOpenAIClientWithConfig wraps a pre-built SDK client (used by tests with
// a stub HTTP server).
func NewOpenAIClientWithConfig(cfg openai.ClientConfig) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

// Generate performs one chat completion and emits the result as a chunk
// stream. The completion itself is a single request; streaming granularity
// is per logical chunk (text, tool calls, usage), which is all the graph
// consumes.
func (c *OpenAIClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	req := openai.ChatCompletionRequest{
		Model:    input.Model,
		Messages: toOpenAIMessages(input.Messages),
	}
	if input.Temperature != nil {
		req.Temperature = float32(*input.Temperature)
	}
	if input.MaxTokens > 0 {
		req.MaxCompletionTokens = input.MaxTokens
	}
	if input.ReasoningLevel != "" {
		req.ReasoningEffort = input.ReasoningLevel
	}
	for _, t := range input.Tools {
		req.Tools = append(req.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  json.RawMessage(t.ParametersSchema),
			},
		})
	}

	out := make(chan Chunk, 8)
	go func() {
		defer close(out)
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			out <- openAIError(err)
			return
		}
		if len(resp.Choices) == 0 {
			out <- &ErrorChunk{Message: "empty response from OpenAI", Code: "empty_response"}
			return
		}
		msg := resp.Choices[0].Message
		if msg.Content != "" {
			out <- &TextChunk{Content: msg.Content}
		}
		for _, tc := range msg.ToolCalls {
			out <- &ToolCallChunk{CallID: tc.ID, Name: tc.Function.Name, Arguments: tc.Function.Arguments}
		}
		out <- &UsageChunk{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}()
	return out, nil
}

// Close is a no-op; the SDK client holds no persistent connections.
func (c *OpenAIClient) Close() error { return nil }

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		cm := openai.ChatCompletionMessage{Content: m.Content}
		switch m.Role {
		case RoleSystem:
			cm.Role = openai.ChatMessageRoleSystem
		case RoleAssistant:
			cm.Role = openai.ChatMessageRoleAssistant
			for _, tc := range m.ToolCalls {
				cm.ToolCalls = append(cm.ToolCalls, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
		case RoleTool:
			cm.Role = openai.ChatMessageRoleTool
			cm.ToolCallID = m.ToolCallID
			cm.Name = m.ToolName
		default:
			cm.Role = openai.ChatMessageRoleUser
		}
		out = append(out, cm)
	}
	return out
}

func openAIError(err error) *ErrorChunk {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		retryable := apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
		return &ErrorChunk{
			Message:   apiErr.Message,
			Code:      fmt.Sprintf("http_%d", apiErr.HTTPStatusCode),
			Retryable: retryable,
		}
	}
	// Transport-level failures (connection refused, timeouts) are retryable.
	return &ErrorChunk{Message: err.Error(), Code: "transport", Retryable: true}
}
