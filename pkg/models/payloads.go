package models

// DatasourceBinding is the resolved datasource description sent to a worker
// as part of JobStart. Credentials travel inline; the worker never reads the
// datasources table itself.
type DatasourceBinding struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"` // postgresql | neo4j | mongodb
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	ConnectionURL string         `json:"connection_url"`
	Credentials   map[string]any `json:"credentials,omitempty"`
	ReadOnly      bool           `json:"read_only"`
}

// Upload describes a user-supplied document staged into the workspace at init.
type Upload struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// JobStart is the payload the orchestrator POSTs to a worker's /start
// endpoint. ResolvedConfig is the fully merged config bundle (defaults +
// expert + override + datasource tool override); the worker treats it as
// immutable for the lifetime of the job.
type JobStart struct {
	JobID          string              `json:"job_id"`
	Description    string              `json:"description"`
	ExpertID       string              `json:"expert_id"`
	ResolvedConfig map[string]any      `json:"resolved_config"`
	Datasources    []DatasourceBinding `json:"datasources,omitempty"`
	Uploads        []Upload            `json:"uploads,omitempty"`
	Autonomy       AutonomyLevel       `json:"autonomy"`
	GitRemote      string              `json:"workspace_git_remote,omitempty"`
}

// JobResume is the payload for /resume. It carries everything JobStart does
// (the worker may have restarted since the freeze) plus the review outcome.
type JobResume struct {
	JobStart

	Approved        bool     `json:"approved"`
	FeedbackText    string   `json:"feedback_text,omitempty"`
	FeedbackCommits []string `json:"feedback_commits,omitempty"`
}

// StatusCallback is what a worker POSTs back to the orchestrator at heartbeat
// intervals and at every phase transition.
type StatusCallback struct {
	JobID          string     `json:"job_id"`
	WorkerID       string     `json:"worker_id"`
	Status         JobStatus  `json:"status"`
	Phase          PhaseType  `json:"phase,omitempty"`
	PhaseNumber    int        `json:"phase_number,omitempty"`
	IterationCount int        `json:"iteration_count,omitempty"`
	Tokens         TokenUsage `json:"tokens"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	Deliverables   []string   `json:"deliverables,omitempty"`
}

// WorkerStatus is the response body of a worker's GET /status endpoint. The
// orchestrator uses it to find idle workers during assignment.
type WorkerStatus struct {
	WorkerID       string     `json:"worker_id"`
	Busy           bool       `json:"busy"`
	JobID          string     `json:"job_id,omitempty"`
	Phase          PhaseType  `json:"phase,omitempty"`
	PhaseNumber    int        `json:"phase_number,omitempty"`
	IterationCount int        `json:"iteration_count,omitempty"`
	Tokens         TokenUsage `json:"tokens"`
}
