// Package models contains the wire-level types shared by the orchestrator
// and the agent worker: job lifecycle enums, start/resume payloads, status
// callbacks, and the conversation message structures.
package models

// JobStatus represents the lifecycle state of a job. The orchestrator is the
// sole writer of the jobs table; workers propose transitions via status
// callbacks.
type JobStatus string

const (
	JobStatusCreated       JobStatus = "created"
	JobStatusPending       JobStatus = "pending"
	JobStatusAssigned      JobStatus = "assigned"
	JobStatusRunning       JobStatus = "running"
	JobStatusPendingReview JobStatus = "pending_review"
	JobStatusFrozen        JobStatus = "frozen"
	JobStatusCompleted     JobStatus = "completed"
	JobStatusFailed        JobStatus = "failed"
	JobStatusCancelled     JobStatus = "cancelled"
)

// ValidStatus reports whether the given string names a known job status.
func ValidStatus(s string) bool {
	switch JobStatus(s) {
	case JobStatusCreated, JobStatusPending, JobStatusAssigned, JobStatusRunning,
		JobStatusPendingReview, JobStatusFrozen, JobStatusCompleted,
		JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status is a final state.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// AutonomyLevel governs where the phase graph freezes for human review.
type AutonomyLevel string

const (
	AutonomyFull      AutonomyLevel = "full"
	AutonomyReview    AutonomyLevel = "review"
	AutonomyPartial   AutonomyLevel = "partial"
	AutonomyGuided    AutonomyLevel = "guided"
	AutonomyDependent AutonomyLevel = "dependent"
)

// ValidAutonomy reports whether the given string names a known autonomy level.
func ValidAutonomy(s string) bool {
	switch AutonomyLevel(s) {
	case AutonomyFull, AutonomyReview, AutonomyPartial, AutonomyGuided, AutonomyDependent:
		return true
	}
	return false
}

// PhaseType distinguishes planning phases from execution phases.
type PhaseType string

const (
	PhaseStrategic PhaseType = "strategic"
	PhaseTactical  PhaseType = "tactical"
)

// Other returns the opposite phase type.
func (p PhaseType) Other() PhaseType {
	if p == PhaseStrategic {
		return PhaseTactical
	}
	return PhaseStrategic
}

// TokenUsage accumulates LLM token counters for a job.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add accumulates another usage sample.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}
