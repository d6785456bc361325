package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const tavilyBaseURL = "https://api.tavily.com"

// TavilyClient is a thin client for the Tavily research API. The research
// category is only registered when TAVILY_API_KEY is set.
type TavilyClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewTavilyClientFromEnv returns nil when TAVILY_API_KEY is unset.
func NewTavilyClientFromEnv() *TavilyClient {
	key := os.Getenv("TAVILY_API_KEY")
	if key == "" {
		return nil
	}
	return NewTavilyClient(key, tavilyBaseURL)
}

// NewTavilyClient builds a client against the given base URL.
func NewTavilyClient(apiKey, baseURL string) *TavilyClient {
	return &TavilyClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *TavilyClient) post(ctx context.Context, path string, payload map[string]any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("research API request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("research API returned %d: %s", resp.StatusCode, truncate(string(data), 500))
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// ResearchTools exposes web research via the Tavily API.
func ResearchTools(client *TavilyClient) []Tool {
	return []Tool{
		&funcTool{
			name:        "web_search",
			description: "Search the web and return ranked results with snippets.",
			category:    CategoryResearch,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "minLength": 1, "description": "Search query."},
    "max_results": {"type": "integer", "minimum": 1, "maximum": 20, "description": "Number of results (default 5)."}
  },
  "required": ["query"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Query      string `json:"query"`
					MaxResults int    `json:"max_results"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if in.MaxResults <= 0 {
					in.MaxResults = 5
				}
				resp, err := client.post(ctx, "/search", map[string]any{
					"query":       in.Query,
					"max_results": in.MaxResults,
				})
				if err != nil {
					return "", err
				}
				return renderSearchResults(resp), nil
			},
		},
		&funcTool{
			name:        "extract_webpage",
			description: "Extract the readable content of a single webpage.",
			category:    CategoryResearch,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "url": {"type": "string", "minLength": 1, "description": "Page URL."}
  },
  "required": ["url"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					URL string `json:"url"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				resp, err := client.post(ctx, "/extract", map[string]any{
					"urls": []string{in.URL},
				})
				if err != nil {
					return "", err
				}
				return renderExtracted(resp), nil
			},
		},
		&funcTool{
			name:        "crawl_website",
			description: "Crawl a website starting from a URL and return the content of discovered pages.",
			category:    CategoryResearch,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "url": {"type": "string", "minLength": 1, "description": "Starting URL."},
    "max_depth": {"type": "integer", "minimum": 1, "maximum": 3, "description": "Link depth to follow (default 1)."},
    "limit": {"type": "integer", "minimum": 1, "maximum": 50, "description": "Maximum pages (default 10)."}
  },
  "required": ["url"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					URL      string `json:"url"`
					MaxDepth int    `json:"max_depth"`
					Limit    int    `json:"limit"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				if in.MaxDepth <= 0 {
					in.MaxDepth = 1
				}
				if in.Limit <= 0 {
					in.Limit = 10
				}
				resp, err := client.post(ctx, "/crawl", map[string]any{
					"url":       in.URL,
					"max_depth": in.MaxDepth,
					"limit":     in.Limit,
				})
				if err != nil {
					return "", err
				}
				return renderCrawled(resp), nil
			},
		},
		&funcTool{
			name:        "map_website",
			description: "Map the URL structure of a website without fetching page content.",
			category:    CategoryResearch,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "url": {"type": "string", "minLength": 1, "description": "Root URL to map."}
  },
  "required": ["url"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					URL string `json:"url"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				resp, err := client.post(ctx, "/map", map[string]any{"url": in.URL})
				if err != nil {
					return "", err
				}
				return renderMapped(resp), nil
			},
		},
		&funcTool{
			name:        "browse_website",
			description: "Fetch a webpage including its raw content, for pages where plain extraction loses structure.",
			category:    CategoryResearch,
			phases:      PhaseBoth,
			schema: `{
  "type": "object",
  "properties": {
    "url": {"type": "string", "minLength": 1, "description": "Page URL."}
  },
  "required": ["url"],
  "additionalProperties": false
}`,
			fn: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					URL string `json:"url"`
				}
				if err := decode(args, &in); err != nil {
					return "", err
				}
				resp, err := client.post(ctx, "/extract", map[string]any{
					"urls":                []string{in.URL},
					"include_raw_content": true,
				})
				if err != nil {
					return "", err
				}
				return renderExtracted(resp), nil
			},
		},
	}
}

func renderSearchResults(resp map[string]any) string {
	results, _ := resp["results"].([]any)
	if len(results) == 0 {
		return "No results."
	}
	var b strings.Builder
	for i, r := range results {
		m, _ := r.(map[string]any)
		fmt.Fprintf(&b, "%d. %s\n   %s\n   %s\n",
			i+1, str(m["title"]), str(m["url"]), truncate(str(m["content"]), 500))
	}
	return b.String()
}

func renderExtracted(resp map[string]any) string {
	results, _ := resp["results"].([]any)
	if len(results) == 0 {
		return "No content extracted."
	}
	var b strings.Builder
	for _, r := range results {
		m, _ := r.(map[string]any)
		fmt.Fprintf(&b, "# %s\n\n", str(m["url"]))
		content := str(m["raw_content"])
		if content == "" {
			content = str(m["content"])
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}

func renderCrawled(resp map[string]any) string {
	results, _ := resp["results"].([]any)
	if len(results) == 0 {
		return "No pages crawled."
	}
	var b strings.Builder
	for _, r := range results {
		m, _ := r.(map[string]any)
		fmt.Fprintf(&b, "## %s\n%s\n\n", str(m["url"]), truncate(str(m["raw_content"]), 2000))
	}
	return b.String()
}

func renderMapped(resp map[string]any) string {
	results, _ := resp["results"].([]any)
	if len(results) == 0 {
		return "No URLs found."
	}
	var b strings.Builder
	for _, r := range results {
		b.WriteString(str(r))
		b.WriteString("\n")
	}
	return b.String()
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
