// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *JobUpdate) SetDescription(v string) *JobUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDescription(v *string) *JobUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetExpertID sets the "expert_id" field.
func (_u *JobUpdate) SetExpertID(v string) *JobUpdate {
	_u.mutation.SetExpertID(v)
	return _u
}

// SetNillableExpertID sets the "expert_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableExpertID(v *string) *JobUpdate {
	if v != nil {
		_u.SetExpertID(*v)
	}
	return _u
}

// ClearExpertID clears the value of the "expert_id" field.
func (_u *JobUpdate) ClearExpertID() *JobUpdate {
	_u.mutation.ClearExpertID()
	return _u
}

// SetConfigOverride sets the "config_override" field.
func (_u *JobUpdate) SetConfigOverride(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetConfigOverride(v)
	return _u
}

// ClearConfigOverride clears the value of the "config_override" field.
func (_u *JobUpdate) ClearConfigOverride() *JobUpdate {
	_u.mutation.ClearConfigOverride()
	return _u
}

// SetUploads sets the "uploads" field.
func (_u *JobUpdate) SetUploads(v []map[string]interface{}) *JobUpdate {
	_u.mutation.SetUploads(v)
	return _u
}

// AppendUploads appends value to the "uploads" field.
func (_u *JobUpdate) AppendUploads(v []map[string]interface{}) *JobUpdate {
	_u.mutation.AppendUploads(v)
	return _u
}

// ClearUploads clears the value of the "uploads" field.
func (_u *JobUpdate) ClearUploads() *JobUpdate {
	_u.mutation.ClearUploads()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAutonomy sets the "autonomy" field.
func (_u *JobUpdate) SetAutonomy(v job.Autonomy) *JobUpdate {
	_u.mutation.SetAutonomy(v)
	return _u
}

// SetNillableAutonomy sets the "autonomy" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAutonomy(v *job.Autonomy) *JobUpdate {
	if v != nil {
		_u.SetAutonomy(*v)
	}
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdate) SetWorkerID(v string) *JobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdate) ClearWorkerID() *JobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetWorkerURL sets the "worker_url" field.
func (_u *JobUpdate) SetWorkerURL(v string) *JobUpdate {
	_u.mutation.SetWorkerURL(v)
	return _u
}

// SetNillableWorkerURL sets the "worker_url" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerURL(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerURL(*v)
	}
	return _u
}

// ClearWorkerURL clears the value of the "worker_url" field.
func (_u *JobUpdate) ClearWorkerURL() *JobUpdate {
	_u.mutation.ClearWorkerURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPhaseNumber sets the "phase_number" field.
func (_u *JobUpdate) SetPhaseNumber(v int) *JobUpdate {
	_u.mutation.ResetPhaseNumber()
	_u.mutation.SetPhaseNumber(v)
	return _u
}

// SetNillablePhaseNumber sets the "phase_number" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePhaseNumber(v *int) *JobUpdate {
	if v != nil {
		_u.SetPhaseNumber(*v)
	}
	return _u
}

// AddPhaseNumber adds value to the "phase_number" field.
func (_u *JobUpdate) AddPhaseNumber(v int) *JobUpdate {
	_u.mutation.AddPhaseNumber(v)
	return _u
}

// SetPhaseType sets the "phase_type" field.
func (_u *JobUpdate) SetPhaseType(v string) *JobUpdate {
	_u.mutation.SetPhaseType(v)
	return _u
}

// SetNillablePhaseType sets the "phase_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePhaseType(v *string) *JobUpdate {
	if v != nil {
		_u.SetPhaseType(*v)
	}
	return _u
}

// ClearPhaseType clears the value of the "phase_type" field.
func (_u *JobUpdate) ClearPhaseType() *JobUpdate {
	_u.mutation.ClearPhaseType()
	return _u
}

// SetIterationCount sets the "iteration_count" field.
func (_u *JobUpdate) SetIterationCount(v int) *JobUpdate {
	_u.mutation.ResetIterationCount()
	_u.mutation.SetIterationCount(v)
	return _u
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIterationCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetIterationCount(*v)
	}
	return _u
}

// AddIterationCount adds value to the "iteration_count" field.
func (_u *JobUpdate) AddIterationCount(v int) *JobUpdate {
	_u.mutation.AddIterationCount(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *JobUpdate) SetInputTokens(v int) *JobUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableInputTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *JobUpdate) AddInputTokens(v int) *JobUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *JobUpdate) SetOutputTokens(v int) *JobUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOutputTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *JobUpdate) AddOutputTokens(v int) *JobUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *JobUpdate) SetTotalTokens(v int) *JobUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *JobUpdate) AddTotalTokens(v int) *JobUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *JobUpdate) SetSummary(v string) *JobUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSummary(v *string) *JobUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *JobUpdate) ClearSummary() *JobUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetDeliverables sets the "deliverables" field.
func (_u *JobUpdate) SetDeliverables(v []string) *JobUpdate {
	_u.mutation.SetDeliverables(v)
	return _u
}

// AppendDeliverables appends value to the "deliverables" field.
func (_u *JobUpdate) AppendDeliverables(v []string) *JobUpdate {
	_u.mutation.AppendDeliverables(v)
	return _u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (_u *JobUpdate) ClearDeliverables() *JobUpdate {
	_u.mutation.ClearDeliverables()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdate) SetLastHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdate) ClearLastHeartbeatAt() *JobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *JobUpdate) SetDeletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDeletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *JobUpdate) ClearDeletedAt() *JobUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *JobUpdate) AddCheckpointIDs(ids ...int) *JobUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdate) AddCheckpoints(v ...*Checkpoint) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddDatasourceIDs adds the "datasources" edge to the Datasource entity by IDs.
func (_u *JobUpdate) AddDatasourceIDs(ids ...string) *JobUpdate {
	_u.mutation.AddDatasourceIDs(ids...)
	return _u
}

// AddDatasources adds the "datasources" edges to the Datasource entity.
func (_u *JobUpdate) AddDatasources(v ...*Datasource) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDatasourceIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdate) ClearCheckpoints() *JobUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *JobUpdate) RemoveCheckpointIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *JobUpdate) RemoveCheckpoints(v ...*Checkpoint) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearDatasources clears all "datasources" edges to the Datasource entity.
func (_u *JobUpdate) ClearDatasources() *JobUpdate {
	_u.mutation.ClearDatasources()
	return _u
}

// RemoveDatasourceIDs removes the "datasources" edge to Datasource entities by IDs.
func (_u *JobUpdate) RemoveDatasourceIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveDatasourceIDs(ids...)
	return _u
}

// RemoveDatasources removes "datasources" edges to Datasource entities.
func (_u *JobUpdate) RemoveDatasources(v ...*Datasource) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDatasourceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Autonomy(); ok {
		if err := job.AutonomyValidator(v); err != nil {
			return &ValidationError{Name: "autonomy", err: fmt.Errorf(`ent: validator failed for field "Job.autonomy": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpertID(); ok {
		_spec.SetField(job.FieldExpertID, field.TypeString, value)
	}
	if _u.mutation.ExpertIDCleared() {
		_spec.ClearField(job.FieldExpertID, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigOverride(); ok {
		_spec.SetField(job.FieldConfigOverride, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverrideCleared() {
		_spec.ClearField(job.FieldConfigOverride, field.TypeJSON)
	}
	if value, ok := _u.mutation.Uploads(); ok {
		_spec.SetField(job.FieldUploads, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUploads(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldUploads, value)
		})
	}
	if _u.mutation.UploadsCleared() {
		_spec.ClearField(job.FieldUploads, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Autonomy(); ok {
		_spec.SetField(job.FieldAutonomy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerURL(); ok {
		_spec.SetField(job.FieldWorkerURL, field.TypeString, value)
	}
	if _u.mutation.WorkerURLCleared() {
		_spec.ClearField(job.FieldWorkerURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseNumber(); ok {
		_spec.SetField(job.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseNumber(); ok {
		_spec.AddField(job.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhaseType(); ok {
		_spec.SetField(job.FieldPhaseType, field.TypeString, value)
	}
	if _u.mutation.PhaseTypeCleared() {
		_spec.ClearField(job.FieldPhaseType, field.TypeString)
	}
	if value, ok := _u.mutation.IterationCount(); ok {
		_spec.SetField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationCount(); ok {
		_spec.AddField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(job.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(job.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(job.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(job.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(job.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(job.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Deliverables(); ok {
		_spec.SetField(job.FieldDeliverables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeliverables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldDeliverables, value)
		})
	}
	if _u.mutation.DeliverablesCleared() {
		_spec.ClearField(job.FieldDeliverables, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(job.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(job.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DatasourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.DatasourcesTable,
			Columns: []string{job.DatasourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDatasourcesIDs(); len(nodes) > 0 && !_u.mutation.DatasourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.DatasourcesTable,
			Columns: []string{job.DatasourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.DatasourcesTable,
			Columns: []string{job.DatasourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetDescription sets the "description" field.
func (_u *JobUpdateOne) SetDescription(v string) *JobUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDescription(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetExpertID sets the "expert_id" field.
func (_u *JobUpdateOne) SetExpertID(v string) *JobUpdateOne {
	_u.mutation.SetExpertID(v)
	return _u
}

// SetNillableExpertID sets the "expert_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableExpertID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetExpertID(*v)
	}
	return _u
}

// ClearExpertID clears the value of the "expert_id" field.
func (_u *JobUpdateOne) ClearExpertID() *JobUpdateOne {
	_u.mutation.ClearExpertID()
	return _u
}

// SetConfigOverride sets the "config_override" field.
func (_u *JobUpdateOne) SetConfigOverride(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetConfigOverride(v)
	return _u
}

// ClearConfigOverride clears the value of the "config_override" field.
func (_u *JobUpdateOne) ClearConfigOverride() *JobUpdateOne {
	_u.mutation.ClearConfigOverride()
	return _u
}

// SetUploads sets the "uploads" field.
func (_u *JobUpdateOne) SetUploads(v []map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetUploads(v)
	return _u
}

// AppendUploads appends value to the "uploads" field.
func (_u *JobUpdateOne) AppendUploads(v []map[string]interface{}) *JobUpdateOne {
	_u.mutation.AppendUploads(v)
	return _u
}

// ClearUploads clears the value of the "uploads" field.
func (_u *JobUpdateOne) ClearUploads() *JobUpdateOne {
	_u.mutation.ClearUploads()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAutonomy sets the "autonomy" field.
func (_u *JobUpdateOne) SetAutonomy(v job.Autonomy) *JobUpdateOne {
	_u.mutation.SetAutonomy(v)
	return _u
}

// SetNillableAutonomy sets the "autonomy" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAutonomy(v *job.Autonomy) *JobUpdateOne {
	if v != nil {
		_u.SetAutonomy(*v)
	}
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdateOne) SetWorkerID(v string) *JobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdateOne) ClearWorkerID() *JobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetWorkerURL sets the "worker_url" field.
func (_u *JobUpdateOne) SetWorkerURL(v string) *JobUpdateOne {
	_u.mutation.SetWorkerURL(v)
	return _u
}

// SetNillableWorkerURL sets the "worker_url" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerURL(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerURL(*v)
	}
	return _u
}

// ClearWorkerURL clears the value of the "worker_url" field.
func (_u *JobUpdateOne) ClearWorkerURL() *JobUpdateOne {
	_u.mutation.ClearWorkerURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPhaseNumber sets the "phase_number" field.
func (_u *JobUpdateOne) SetPhaseNumber(v int) *JobUpdateOne {
	_u.mutation.ResetPhaseNumber()
	_u.mutation.SetPhaseNumber(v)
	return _u
}

// SetNillablePhaseNumber sets the "phase_number" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePhaseNumber(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPhaseNumber(*v)
	}
	return _u
}

// AddPhaseNumber adds value to the "phase_number" field.
func (_u *JobUpdateOne) AddPhaseNumber(v int) *JobUpdateOne {
	_u.mutation.AddPhaseNumber(v)
	return _u
}

// SetPhaseType sets the "phase_type" field.
func (_u *JobUpdateOne) SetPhaseType(v string) *JobUpdateOne {
	_u.mutation.SetPhaseType(v)
	return _u
}

// SetNillablePhaseType sets the "phase_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePhaseType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPhaseType(*v)
	}
	return _u
}

// ClearPhaseType clears the value of the "phase_type" field.
func (_u *JobUpdateOne) ClearPhaseType() *JobUpdateOne {
	_u.mutation.ClearPhaseType()
	return _u
}

// SetIterationCount sets the "iteration_count" field.
func (_u *JobUpdateOne) SetIterationCount(v int) *JobUpdateOne {
	_u.mutation.ResetIterationCount()
	_u.mutation.SetIterationCount(v)
	return _u
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIterationCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetIterationCount(*v)
	}
	return _u
}

// AddIterationCount adds value to the "iteration_count" field.
func (_u *JobUpdateOne) AddIterationCount(v int) *JobUpdateOne {
	_u.mutation.AddIterationCount(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *JobUpdateOne) SetInputTokens(v int) *JobUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableInputTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *JobUpdateOne) AddInputTokens(v int) *JobUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *JobUpdateOne) SetOutputTokens(v int) *JobUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOutputTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *JobUpdateOne) AddOutputTokens(v int) *JobUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *JobUpdateOne) SetTotalTokens(v int) *JobUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *JobUpdateOne) AddTotalTokens(v int) *JobUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *JobUpdateOne) SetSummary(v string) *JobUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSummary(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *JobUpdateOne) ClearSummary() *JobUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetDeliverables sets the "deliverables" field.
func (_u *JobUpdateOne) SetDeliverables(v []string) *JobUpdateOne {
	_u.mutation.SetDeliverables(v)
	return _u
}

// AppendDeliverables appends value to the "deliverables" field.
func (_u *JobUpdateOne) AppendDeliverables(v []string) *JobUpdateOne {
	_u.mutation.AppendDeliverables(v)
	return _u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (_u *JobUpdateOne) ClearDeliverables() *JobUpdateOne {
	_u.mutation.ClearDeliverables()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdateOne) SetLastHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdateOne) ClearLastHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *JobUpdateOne) SetDeletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDeletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *JobUpdateOne) ClearDeletedAt() *JobUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *JobUpdateOne) AddCheckpointIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdateOne) AddCheckpoints(v ...*Checkpoint) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddDatasourceIDs adds the "datasources" edge to the Datasource entity by IDs.
func (_u *JobUpdateOne) AddDatasourceIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddDatasourceIDs(ids...)
	return _u
}

// AddDatasources adds the "datasources" edges to the Datasource entity.
func (_u *JobUpdateOne) AddDatasources(v ...*Datasource) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDatasourceIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdateOne) ClearCheckpoints() *JobUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *JobUpdateOne) RemoveCheckpointIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *JobUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearDatasources clears all "datasources" edges to the Datasource entity.
func (_u *JobUpdateOne) ClearDatasources() *JobUpdateOne {
	_u.mutation.ClearDatasources()
	return _u
}

// RemoveDatasourceIDs removes the "datasources" edge to Datasource entities by IDs.
func (_u *JobUpdateOne) RemoveDatasourceIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveDatasourceIDs(ids...)
	return _u
}

// RemoveDatasources removes "datasources" edges to Datasource entities.
func (_u *JobUpdateOne) RemoveDatasources(v ...*Datasource) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDatasourceIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Autonomy(); ok {
		if err := job.AutonomyValidator(v); err != nil {
			return &ValidationError{Name: "autonomy", err: fmt.Errorf(`ent: validator failed for field "Job.autonomy": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpertID(); ok {
		_spec.SetField(job.FieldExpertID, field.TypeString, value)
	}
	if _u.mutation.ExpertIDCleared() {
		_spec.ClearField(job.FieldExpertID, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigOverride(); ok {
		_spec.SetField(job.FieldConfigOverride, field.TypeJSON, value)
	}
	if _u.mutation.ConfigOverrideCleared() {
		_spec.ClearField(job.FieldConfigOverride, field.TypeJSON)
	}
	if value, ok := _u.mutation.Uploads(); ok {
		_spec.SetField(job.FieldUploads, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUploads(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldUploads, value)
		})
	}
	if _u.mutation.UploadsCleared() {
		_spec.ClearField(job.FieldUploads, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Autonomy(); ok {
		_spec.SetField(job.FieldAutonomy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerURL(); ok {
		_spec.SetField(job.FieldWorkerURL, field.TypeString, value)
	}
	if _u.mutation.WorkerURLCleared() {
		_spec.ClearField(job.FieldWorkerURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseNumber(); ok {
		_spec.SetField(job.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseNumber(); ok {
		_spec.AddField(job.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhaseType(); ok {
		_spec.SetField(job.FieldPhaseType, field.TypeString, value)
	}
	if _u.mutation.PhaseTypeCleared() {
		_spec.ClearField(job.FieldPhaseType, field.TypeString)
	}
	if value, ok := _u.mutation.IterationCount(); ok {
		_spec.SetField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationCount(); ok {
		_spec.AddField(job.FieldIterationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(job.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(job.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(job.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(job.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(job.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(job.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Deliverables(); ok {
		_spec.SetField(job.FieldDeliverables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeliverables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldDeliverables, value)
		})
	}
	if _u.mutation.DeliverablesCleared() {
		_spec.ClearField(job.FieldDeliverables, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(job.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(job.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DatasourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.DatasourcesTable,
			Columns: []string{job.DatasourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDatasourcesIDs(); len(nodes) > 0 && !_u.mutation.DatasourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.DatasourcesTable,
			Columns: []string{job.DatasourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.DatasourcesTable,
			Columns: []string{job.DatasourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
