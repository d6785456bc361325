package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Router selects a concrete provider per request based on the model name
// prefix. LLM_PROVIDER overrides the heuristic ("openai" or "anthropic").
type Router struct {
	openai    Client
	anthropic Client
	override  string
}

// NewRouter constructs providers lazily from the environment. At least one
// provider key must be configured.
func NewRouter() (*Router, error) {
	r := &Router{override: os.Getenv("LLM_PROVIDER")}
	if os.Getenv("OPENAI_API_KEY") != "" {
		c, err := NewOpenAIClient()
		if err != nil {
			return nil, err
		}
		r.openai = c
	}
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		c, err := NewAnthropicClient()
		if err != nil {
			return nil, err
		}
		r.anthropic = c
	}
	if r.openai == nil && r.anthropic == nil {
		return nil, fmt.Errorf("no LLM provider configured: set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	}
	return r, nil
}

// NewRouterWithClients wires explicit providers (used by tests).
func NewRouterWithClients(openaiClient, anthropicClient Client, override string) *Router {
	return &Router{openai: openaiClient, anthropic: anthropicClient, override: override}
}

// Generate routes the request to the provider owning the model.
func (r *Router) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	c, err := r.pick(input.Model)
	if err != nil {
		return nil, err
	}
	return c.Generate(ctx, input)
}

// Close closes all configured providers.
func (r *Router) Close() error {
	var firstErr error
	for _, c := range []Client{r.openai, r.anthropic} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Router) pick(model string) (Client, error) {
	provider := r.override
	if provider == "" {
		if strings.HasPrefix(model, "claude") {
			provider = "anthropic"
		} else {
			provider = "openai"
		}
	}
	switch provider {
	case "anthropic":
		if r.anthropic == nil {
			return nil, fmt.Errorf("model %q requires the anthropic provider but ANTHROPIC_API_KEY is not set", model)
		}
		return r.anthropic, nil
	case "openai":
		if r.openai == nil {
			return nil, fmt.Errorf("model %q requires the openai provider but OPENAI_API_KEY is not set", model)
		}
		return r.openai, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}

// RetryPolicy bounds retry behavior for transient provider failures.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	RequestTimeout time.Duration
}

// DefaultRetryPolicy matches the platform defaults: 120s per request,
// exponential backoff capped at 30s, 4 attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    4,
		InitialBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
		RequestTimeout: 120 * time.Second,
	}
}

// Complete runs Generate to completion with bounded exponential backoff on
// retryable errors. Non-retryable errors and context cancellation return
// immediately with the error carried in the Completion.
func Complete(ctx context.Context, client Client, input *GenerateInput, policy RetryPolicy) Completion {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	backoff := policy.InitialBackoff
	var last Completion
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		reqCtx := ctx
		var cancel context.CancelFunc
		if policy.RequestTimeout > 0 {
			reqCtx, cancel = context.WithTimeout(ctx, policy.RequestTimeout)
		}
		ch, err := client.Generate(reqCtx, input)
		if err != nil {
			last = Completion{Err: &ErrorChunk{Message: err.Error(), Code: "request"}}
			if cancel != nil {
				cancel()
			}
			return last
		}
		last = Drain(reqCtx, ch)
		if cancel != nil {
			cancel()
		}
		if last.Err == nil {
			return last
		}
		if !last.Err.Retryable || ctx.Err() != nil {
			return last
		}
		select {
		case <-ctx.Done():
			return last
		case <-time.After(backoff):
		}
		backoff *= 2
		if policy.MaxBackoff > 0 && backoff > policy.MaxBackoff {
			backoff = policy.MaxBackoff
		}
	}
	return last
}
