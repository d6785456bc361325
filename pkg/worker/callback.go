package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/praxis-works/praxis/pkg/models"
)

// OrchestratorCallback posts status callbacks to the orchestrator's
// internal endpoint.
type OrchestratorCallback struct {
	baseURL string
	http    *http.Client
}

// NewOrchestratorCallback builds a callback client. Returns nil for an
// empty URL, which disables callbacks.
func NewOrchestratorCallback(baseURL string) *OrchestratorCallback {
	if baseURL == "" {
		return nil
	}
	return &OrchestratorCallback{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Post sends one status callback.
func (c *OrchestratorCallback) Post(ctx context.Context, cb models.StatusCallback) error {
	body, err := json.Marshal(cb)
	if err != nil {
		return fmt.Errorf("failed to encode status callback: %w", err)
	}

	url := fmt.Sprintf("%s/internal/jobs/%s/status", c.baseURL, cb.JobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("status callback failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status callback returned %d: %s", resp.StatusCode, string(data))
	}
	return nil
}
