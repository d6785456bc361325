package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/praxis-works/praxis/pkg/models"
)

// ErrWorkerBusy is returned when a worker rejects a start or resume with
// 409 Conflict.
var ErrWorkerBusy = errors.New("worker is busy")

// WorkerClient talks to one agent worker's HTTP surface.
type WorkerClient struct {
	baseURL string
	http    *http.Client
}

// NewWorkerClient builds a client for the worker at baseURL.
func NewWorkerClient(baseURL string) *WorkerClient {
	return &WorkerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL returns the worker's base URL, recorded on assigned jobs.
func (c *WorkerClient) BaseURL() string { return c.baseURL }

// Status fetches GET /status.
func (c *WorkerClient) Status(ctx context.Context) (*models.WorkerStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("worker status check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("worker status returned %d", resp.StatusCode)
	}
	var status models.WorkerStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode worker status: %w", err)
	}
	return &status, nil
}

// StartJob POSTs a JobStart payload to /start.
func (c *WorkerClient) StartJob(ctx context.Context, payload *models.JobStart) error {
	return c.post(ctx, "/start", payload)
}

// ResumeJob POSTs a JobResume payload to /resume.
func (c *WorkerClient) ResumeJob(ctx context.Context, payload *models.JobResume) error {
	return c.post(ctx, "/resume", payload)
}

// CancelJob POSTs /cancel for the given job.
func (c *WorkerClient) CancelJob(ctx context.Context, jobID string) error {
	return c.post(ctx, "/cancel", map[string]string{"job_id": jobID})
}

func (c *WorkerClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("worker %s failed: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusConflict {
		return fmt.Errorf("%w: %s", ErrWorkerBusy, c.baseURL)
	}
	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("worker %s returned %d: %s", path, resp.StatusCode, string(data))
	}
	return nil
}

// WorkerRegistry is the configured pool of workers the dispatcher assigns
// jobs to.
type WorkerRegistry struct {
	clients []*WorkerClient
}

// NewWorkerRegistry builds clients for the given base URLs.
func NewWorkerRegistry(urls []string) *WorkerRegistry {
	clients := make([]*WorkerClient, 0, len(urls))
	for _, u := range urls {
		clients = append(clients, NewWorkerClient(u))
	}
	return &WorkerRegistry{clients: clients}
}

// Clients returns all registered workers.
func (r *WorkerRegistry) Clients() []*WorkerClient { return r.clients }

// Idle returns the first worker reporting itself not busy, or nil.
// Unreachable workers are skipped.
func (r *WorkerRegistry) Idle(ctx context.Context) *WorkerClient {
	for _, c := range r.clients {
		status, err := c.Status(ctx)
		if err != nil {
			continue
		}
		if !status.Busy {
			return c
		}
	}
	return nil
}

// ByURL returns the registered client for the URL, or a fresh one for a
// worker recorded on a job but no longer in the registry.
func (r *WorkerRegistry) ByURL(url string) *WorkerClient {
	trimmed := strings.TrimRight(url, "/")
	for _, c := range r.clients {
		if c.baseURL == trimmed {
			return c
		}
	}
	return NewWorkerClient(url)
}
