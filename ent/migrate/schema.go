// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step", Type: field.TypeInt},
		{Name: "node", Type: field.TypeString},
		{Name: "phase_number", Type: field.TypeInt},
		{Name: "state", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_jobs_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[6]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_job_id_step",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[6], CheckpointsColumns[1]},
			},
		},
	}
	// DatasourcesColumns holds the columns for the "datasources" table.
	DatasourcesColumns = []*schema.Column{
		{Name: "datasource_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"postgresql", "neo4j", "mongodb"}},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "connection_url", Type: field.TypeString},
		{Name: "credentials", Type: field.TypeJSON, Nullable: true},
		{Name: "read_only", Type: field.TypeBool, Default: false},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"global", "job"}, Default: "global"},
		{Name: "scope_key", Type: field.TypeString, Default: "global"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
	}
	// DatasourcesTable holds the schema information for the "datasources" table.
	DatasourcesTable = &schema.Table{
		Name:       "datasources",
		Columns:    DatasourcesColumns,
		PrimaryKey: []*schema.Column{DatasourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "datasources_jobs_datasources",
				Columns:    []*schema.Column{DatasourcesColumns[10]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datasource_type_scope_key",
				Unique:  false,
				Columns: []*schema.Column{DatasourcesColumns[1], DatasourcesColumns[8]},
			},
			{
				Name:    "datasource_scope",
				Unique:  false,
				Columns: []*schema.Column{DatasourcesColumns[7]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "expert_id", Type: field.TypeString, Nullable: true},
		{Name: "config_override", Type: field.TypeJSON, Nullable: true},
		{Name: "uploads", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "pending", "assigned", "running", "pending_review", "frozen", "completed", "failed", "cancelled"}, Default: "created"},
		{Name: "autonomy", Type: field.TypeEnum, Enums: []string{"full", "review", "partial", "guided", "dependent"}, Default: "full"},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "worker_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "phase_number", Type: field.TypeInt, Default: 0},
		{Name: "phase_type", Type: field.TypeString, Nullable: true},
		{Name: "iteration_count", Type: field.TypeInt, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "deliverables", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
			{
				Name:    "job_expert_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[18]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[21]},
			},
			{
				Name:    "job_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		DatasourcesTable,
		JobsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = JobsTable
	DatasourcesTable.ForeignKeys[0].RefTable = JobsTable
}
