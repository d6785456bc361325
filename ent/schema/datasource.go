package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Datasource holds the schema definition for an external database binding.
// Global datasources apply to every job; job-scoped ones override the
// global of the same type for a single job.
type Datasource struct {
	ent.Schema
}

// Fields of the Datasource.
func (Datasource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("datasource_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("postgresql", "neo4j", "mongodb"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.String("connection_url").
			Sensitive(),
		field.JSON("credentials", map[string]interface{}{}).
			Optional().
			Sensitive(),
		field.Bool("read_only").
			Default(false),
		field.Enum("scope").
			Values("global", "job").
			Default("global"),
		field.String("job_id").
			Optional().
			Nillable(),
		field.String("scope_key").
			Default("global").
			Comment("'global' or the owning job id; partial unique index on (type, scope_key) is created in migrations"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Datasource.
func (Datasource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("datasources").
			Field("job_id").
			Unique(),
	}
}

// Indexes of the Datasource.
func (Datasource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type", "scope_key"),
		index.Fields("scope"),
	}
}
