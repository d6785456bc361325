package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-works/praxis/pkg/llm"
)

func newTavilyStub(t *testing.T, handler http.HandlerFunc) *TavilyClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTavilyClient("test-key", srv.URL)
}

func TestWebSearchRendersResults(t *testing.T) {
	client := newTavilyStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "golang workers", body["query"])

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Worker pools", "url": "https://example.com/a", "content": "pattern overview"},
				{"title": "Pipelines", "url": "https://example.com/b", "content": "fan-in fan-out"},
			},
		})
	})

	r := NewRegistry()
	require.NoError(t, r.Register(ResearchTools(client)...))
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{
		Name:      "web_search",
		Arguments: `{"query": "golang workers"}`,
	})
	assert.Contains(t, out, "Worker pools")
	assert.Contains(t, out, "https://example.com/b")
}

func TestExtractWebpageRendersContent(t *testing.T) {
	client := newTavilyStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"url": "https://example.com/doc", "content": "the page body"},
			},
		})
	})

	r := NewRegistry()
	require.NoError(t, r.Register(ResearchTools(client)...))
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{
		Name:      "extract_webpage",
		Arguments: `{"url": "https://example.com/doc"}`,
	})
	assert.Contains(t, out, "the page body")
}

func TestResearchAPIErrorBecomesObservation(t *testing.T) {
	client := newTavilyStub(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "usage limit exceeded", http.StatusTooManyRequests)
	})

	r := NewRegistry()
	require.NoError(t, r.Register(ResearchTools(client)...))
	d := NewDispatcher(r)

	out := d.Dispatch(context.Background(), llm.ToolCall{
		Name:      "web_search",
		Arguments: `{"query": "anything"}`,
	})
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "429")
}

func TestNewTavilyClientFromEnvGatesOnKey(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "")
	assert.Nil(t, NewTavilyClientFromEnv())

	t.Setenv("TAVILY_API_KEY", "k")
	assert.NotNil(t, NewTavilyClientFromEnv())
}
