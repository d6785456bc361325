package llm

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicMaxTokens = 8192

// MessagesClient captures the subset of the Anthropic SDK used by the
// provider. It is satisfied by *sdk.MessageService so tests can substitute
// a mock.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	msg MessagesClient
}

// NewAnthropicClient builds a client from ANTHROPIC_API_KEY.
func NewAnthropicClient() (*AnthropicClient, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, errors.New("ANTHROPIC_API_KEY is not set")
	}
	ac := sdk.NewClient(option.WithAPIKey(key))
	return &AnthropicClient{msg: &ac.Messages}, nil
}

// NewAnthropicClientWithMessages wraps a pre-built messages client.
func NewAnthropicClientWithMessages(msg MessagesClient) *AnthropicClient {
	return &AnthropicClient{msg: msg}
}

// Generate performs one Messages.New call and emits the result as a chunk
// stream.
func (c *AnthropicClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	maxTokens := input.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}
	conversation, system, err := toAnthropicMessages(input.Messages)
	if err != nil {
		return nil, err
	}
	params := sdk.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages:  conversation,
		Model:     sdk.Model(input.Model),
	}
	if len(system) > 0 {
		params.System = system
	}
	if input.Temperature != nil {
		params.Temperature = sdk.Float(*input.Temperature)
	}
	for _, t := range input.Tools {
		schema, err := anthropicInputSchema(t.ParametersSchema)
		if err != nil {
			return nil, err
		}
		u := sdk.ToolUnionParamOfTool(schema, t.Name)
		if u.OfTool != nil {
			u.OfTool.Description = sdk.String(t.Description)
		}
		params.Tools = append(params.Tools, u)
	}

	out := make(chan Chunk, 8)
	go func() {
		defer close(out)
		msg, err := c.msg.New(ctx, params)
		if err != nil {
			out <- anthropicError(err)
			return
		}
		for _, block := range msg.Content {
			switch block.Type {
			case "text":
				if block.Text != "" {
					out <- &TextChunk{Content: block.Text}
				}
			case "thinking":
				if block.Thinking != "" {
					out <- &ThinkingChunk{Content: block.Thinking}
				}
			case "tool_use":
				out <- &ToolCallChunk{
					CallID:    block.ID,
					Name:      block.Name,
					Arguments: string(block.Input),
				}
			}
		}
		out <- &UsageChunk{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		}
	}()
	return out, nil
}

// Close is a no-op; the SDK client holds no persistent connections.
func (c *AnthropicClient) Close() error { return nil }

// toAnthropicMessages splits the flat role-based history into the Messages
// API shape: system text blocks plus a user/assistant conversation. Tool
// results are carried inside user messages per the API contract.
func toAnthropicMessages(messages []Message) ([]sdk.MessageParam, []sdk.TextBlockParam, error) {
	conversation := make([]sdk.MessageParam, 0, len(messages))
	system := make([]sdk.TextBlockParam, 0, 2)

	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			if m.Content != "" {
				system = append(system, sdk.TextBlockParam{Text: m.Content})
			}
		case RoleAssistant:
			blocks := make([]sdk.ContentBlockParamUnion, 0, 1+len(m.ToolCalls))
			if m.Content != "" {
				blocks = append(blocks, sdk.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, json.RawMessage(tc.Arguments), tc.Name))
			}
			if len(blocks) > 0 {
				conversation = append(conversation, sdk.NewAssistantMessage(blocks...))
			}
		case RoleTool:
			isError := strings.HasPrefix(m.Content, "Error:")
			conversation = append(conversation, sdk.NewUserMessage(
				sdk.NewToolResultBlock(m.ToolCallID, m.Content, isError)))
		default:
			conversation = append(conversation, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	if len(conversation) == 0 {
		return nil, nil, errors.New("anthropic: at least one user/assistant message is required")
	}
	return conversation, system, nil
}

func anthropicInputSchema(schema string) (sdk.ToolInputSchemaParam, error) {
	if schema == "" {
		return sdk.ToolInputSchemaParam{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(schema), &m); err != nil {
		return sdk.ToolInputSchemaParam{}, err
	}
	return sdk.ToolInputSchemaParam{ExtraFields: m}, nil
}

func anthropicError(err error) *ErrorChunk {
	msg := err.Error()
	// Rate limits and upstream overload are retryable; auth and request
	// shape errors are not.
	retryable := strings.Contains(msg, "429") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "529") ||
		strings.Contains(msg, "500")
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		retryable = false
	}
	return &ErrorChunk{Message: msg, Code: "anthropic", Retryable: retryable}
}
