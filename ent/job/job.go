// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldExpertID holds the string denoting the expert_id field in the database.
	FieldExpertID = "expert_id"
	// FieldConfigOverride holds the string denoting the config_override field in the database.
	FieldConfigOverride = "config_override"
	// FieldUploads holds the string denoting the uploads field in the database.
	FieldUploads = "uploads"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAutonomy holds the string denoting the autonomy field in the database.
	FieldAutonomy = "autonomy"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldWorkerURL holds the string denoting the worker_url field in the database.
	FieldWorkerURL = "worker_url"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPhaseNumber holds the string denoting the phase_number field in the database.
	FieldPhaseNumber = "phase_number"
	// FieldPhaseType holds the string denoting the phase_type field in the database.
	FieldPhaseType = "phase_type"
	// FieldIterationCount holds the string denoting the iteration_count field in the database.
	FieldIterationCount = "iteration_count"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldDeliverables holds the string denoting the deliverables field in the database.
	FieldDeliverables = "deliverables"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeDatasources holds the string denoting the datasources edge name in mutations.
	EdgeDatasources = "datasources"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "id"
	// DatasourceFieldID holds the string denoting the ID field of the Datasource.
	DatasourceFieldID = "datasource_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "job_id"
	// DatasourcesTable is the table that holds the datasources relation/edge.
	DatasourcesTable = "datasources"
	// DatasourcesInverseTable is the table name for the Datasource entity.
	// It exists in this package in order to avoid circular dependency with the "datasource" package.
	DatasourcesInverseTable = "datasources"
	// DatasourcesColumn is the table column denoting the datasources relation/edge.
	DatasourcesColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldDescription,
	FieldExpertID,
	FieldConfigOverride,
	FieldUploads,
	FieldStatus,
	FieldAutonomy,
	FieldWorkerID,
	FieldWorkerURL,
	FieldErrorMessage,
	FieldPhaseNumber,
	FieldPhaseType,
	FieldIterationCount,
	FieldInputTokens,
	FieldOutputTokens,
	FieldTotalTokens,
	FieldSummary,
	FieldDeliverables,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastHeartbeatAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPhaseNumber holds the default value on creation for the "phase_number" field.
	DefaultPhaseNumber int
	// DefaultIterationCount holds the default value on creation for the "iteration_count" field.
	DefaultIterationCount int
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated       Status = "created"
	StatusPending       Status = "pending"
	StatusAssigned      Status = "assigned"
	StatusRunning       Status = "running"
	StatusPendingReview Status = "pending_review"
	StatusFrozen        Status = "frozen"
	StatusCompleted     Status = "completed"
	StatusFailed        Status = "failed"
	StatusCancelled     Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusPending, StatusAssigned, StatusRunning, StatusPendingReview, StatusFrozen, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// Autonomy defines the type for the "autonomy" enum field.
type Autonomy string

// AutonomyFull is the default value of the Autonomy enum.
const DefaultAutonomy = AutonomyFull

// Autonomy values.
const (
	AutonomyFull      Autonomy = "full"
	AutonomyReview    Autonomy = "review"
	AutonomyPartial   Autonomy = "partial"
	AutonomyGuided    Autonomy = "guided"
	AutonomyDependent Autonomy = "dependent"
)

func (a Autonomy) String() string {
	return string(a)
}

// AutonomyValidator is a validator for the "autonomy" field enum values. It is called by the builders before save.
func AutonomyValidator(a Autonomy) error {
	switch a {
	case AutonomyFull, AutonomyReview, AutonomyPartial, AutonomyGuided, AutonomyDependent:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for autonomy field: %q", a)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByExpertID orders the results by the expert_id field.
func ByExpertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpertID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAutonomy orders the results by the autonomy field.
func ByAutonomy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutonomy, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByWorkerURL orders the results by the worker_url field.
func ByWorkerURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerURL, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPhaseNumber orders the results by the phase_number field.
func ByPhaseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseNumber, opts...).ToFunc()
}

// ByPhaseType orders the results by the phase_type field.
func ByPhaseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseType, opts...).ToFunc()
}

// ByIterationCount orders the results by the iteration_count field.
func ByIterationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationCount, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDatasourcesCount orders the results by datasources count.
func ByDatasourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDatasourcesStep(), opts...)
	}
}

// ByDatasources orders the results by datasources terms.
func ByDatasources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDatasourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newDatasourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DatasourcesInverseTable, DatasourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DatasourcesTable, DatasourcesColumn),
	)
}
