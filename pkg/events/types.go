// Package events publishes job lifecycle events through PostgreSQL:
// persisted to the events table for catchup, broadcast via NOTIFY for
// live listeners (dashboards, webhooks, CLI watchers).
package events

import "fmt"

// Event type constants.
const (
	EventTypeJobStatus = "job.status"
)

// GlobalJobsChannel carries transient copies of every job status event,
// for listeners that watch the whole queue rather than one job.
const GlobalJobsChannel = "jobs"

// JobChannel returns the NOTIFY channel for a single job.
func JobChannel(jobID string) string {
	return fmt.Sprintf("job:%s", jobID)
}

// BasePayload carries the fields every event payload shares.
type BasePayload struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Timestamp string `json:"timestamp"`
}

// JobStatusPayload announces a job status transition.
type JobStatusPayload struct {
	BasePayload

	Status         string `json:"status"`
	PhaseNumber    int    `json:"phase_number,omitempty"`
	IterationCount int    `json:"iteration_count,omitempty"`
}
