package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: one long-running
// agent work item owned by the orchestrator.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Text("description").
			Comment("User-supplied task description"),
		field.String("expert_id").
			Optional().
			Comment("Names the expert config bundle; empty = defaults only"),
		field.JSON("config_override", map[string]interface{}{}).
			Optional().
			Comment("Sparse deep-merge patch over defaults + expert config"),
		field.JSON("uploads", []map[string]interface{}{}).
			Optional().
			Comment("Seed documents forwarded to the worker at start and resume"),
		field.Enum("status").
			Values("created", "pending", "assigned", "running", "pending_review",
				"frozen", "completed", "failed", "cancelled").
			Default("created"),
		field.Enum("autonomy").
			Values("full", "review", "partial", "guided", "dependent").
			Default("full"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Worker currently holding the job lease"),
		field.String("worker_url").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("phase_number").
			Default(0),
		field.String("phase_type").
			Optional().
			Nillable(),
		field.Int("iteration_count").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Agent-reported summary from job_complete"),
		field.JSON("deliverables", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("datasources", Datasource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("expert_id"),

		// Dispatcher claim order and orphan scans.
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
