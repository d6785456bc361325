package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds one serialized graph state snapshot. Rows are
// append-only per (job_id, step); only the worker holding the job lease
// writes them.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id"),
		field.Int("step").
			Comment("Monotonic per job, incremented at every node boundary"),
		field.String("node").
			Comment("Graph node that produced this snapshot"),
		field.Int("phase_number"),
		field.Bytes("state").
			Comment("JSON-serialized graph state"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("checkpoints").
			Field("job_id").
			Unique().
			Required(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "step").
			Unique(),
	}
}
