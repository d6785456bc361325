package api

import (
	"time"

	"github.com/praxis-works/praxis/ent"
	"github.com/praxis-works/praxis/pkg/models"
)

// JobResponse is the wire shape of a job record. Worker URL and soft-delete
// bookkeeping stay internal.
type JobResponse struct {
	JobID           string            `json:"job_id"`
	Description     string            `json:"description"`
	ExpertID        string            `json:"expert_id,omitempty"`
	Status          string            `json:"status"`
	Autonomy        string            `json:"autonomy"`
	WorkerID        string            `json:"worker_id,omitempty"`
	ErrorMessage    string            `json:"error_message,omitempty"`
	PhaseNumber     int               `json:"phase_number"`
	PhaseType       string            `json:"phase_type,omitempty"`
	IterationCount  int               `json:"iteration_count"`
	Tokens          models.TokenUsage `json:"tokens"`
	Summary         string            `json:"summary,omitempty"`
	Deliverables    []string          `json:"deliverables,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	StartedAt       *time.Time        `json:"started_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	LastHeartbeatAt *time.Time        `json:"last_heartbeat_at,omitempty"`
}

func toJobResponse(j *ent.Job) JobResponse {
	resp := JobResponse{
		JobID:          j.ID,
		Description:    j.Description,
		ExpertID:       j.ExpertID,
		Status:         string(j.Status),
		Autonomy:       string(j.Autonomy),
		PhaseNumber:    j.PhaseNumber,
		IterationCount: j.IterationCount,
		Tokens: models.TokenUsage{
			InputTokens:  j.InputTokens,
			OutputTokens: j.OutputTokens,
			TotalTokens:  j.TotalTokens,
		},
		Deliverables:    j.Deliverables,
		CreatedAt:       j.CreatedAt,
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
		LastHeartbeatAt: j.LastHeartbeatAt,
	}
	if j.WorkerID != nil {
		resp.WorkerID = *j.WorkerID
	}
	if j.ErrorMessage != nil {
		resp.ErrorMessage = *j.ErrorMessage
	}
	if j.PhaseType != nil {
		resp.PhaseType = *j.PhaseType
	}
	if j.Summary != nil {
		resp.Summary = *j.Summary
	}
	return resp
}

// DatasourceResponse is the wire shape of a datasource. Connection URL and
// credentials are write-only.
type DatasourceResponse struct {
	DatasourceID string    `json:"datasource_id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ReadOnly     bool      `json:"read_only"`
	Scope        string    `json:"scope"`
	JobID        string    `json:"job_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDatasourceResponse(ds *ent.Datasource) DatasourceResponse {
	resp := DatasourceResponse{
		DatasourceID: ds.ID,
		Type:         string(ds.Type),
		Name:         ds.Name,
		Description:  ds.Description,
		ReadOnly:     ds.ReadOnly,
		Scope:        string(ds.Scope),
		CreatedAt:    ds.CreatedAt,
	}
	if ds.JobID != nil {
		resp.JobID = *ds.JobID
	}
	return resp
}
