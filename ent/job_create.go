// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetDescription sets the "description" field.
func (_c *JobCreate) SetDescription(v string) *JobCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetExpertID sets the "expert_id" field.
func (_c *JobCreate) SetExpertID(v string) *JobCreate {
	_c.mutation.SetExpertID(v)
	return _c
}

// SetNillableExpertID sets the "expert_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableExpertID(v *string) *JobCreate {
	if v != nil {
		_c.SetExpertID(*v)
	}
	return _c
}

// SetConfigOverride sets the "config_override" field.
func (_c *JobCreate) SetConfigOverride(v map[string]interface{}) *JobCreate {
	_c.mutation.SetConfigOverride(v)
	return _c
}

// SetUploads sets the "uploads" field.
func (_c *JobCreate) SetUploads(v []map[string]interface{}) *JobCreate {
	_c.mutation.SetUploads(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAutonomy sets the "autonomy" field.
func (_c *JobCreate) SetAutonomy(v job.Autonomy) *JobCreate {
	_c.mutation.SetAutonomy(v)
	return _c
}

// SetNillableAutonomy sets the "autonomy" field if the given value is not nil.
func (_c *JobCreate) SetNillableAutonomy(v *job.Autonomy) *JobCreate {
	if v != nil {
		_c.SetAutonomy(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *JobCreate) SetWorkerID(v string) *JobCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableWorkerID(v *string) *JobCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetWorkerURL sets the "worker_url" field.
func (_c *JobCreate) SetWorkerURL(v string) *JobCreate {
	_c.mutation.SetWorkerURL(v)
	return _c
}

// SetNillableWorkerURL sets the "worker_url" field if the given value is not nil.
func (_c *JobCreate) SetNillableWorkerURL(v *string) *JobCreate {
	if v != nil {
		_c.SetWorkerURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPhaseNumber sets the "phase_number" field.
func (_c *JobCreate) SetPhaseNumber(v int) *JobCreate {
	_c.mutation.SetPhaseNumber(v)
	return _c
}

// SetNillablePhaseNumber sets the "phase_number" field if the given value is not nil.
func (_c *JobCreate) SetNillablePhaseNumber(v *int) *JobCreate {
	if v != nil {
		_c.SetPhaseNumber(*v)
	}
	return _c
}

// SetPhaseType sets the "phase_type" field.
func (_c *JobCreate) SetPhaseType(v string) *JobCreate {
	_c.mutation.SetPhaseType(v)
	return _c
}

// SetNillablePhaseType sets the "phase_type" field if the given value is not nil.
func (_c *JobCreate) SetNillablePhaseType(v *string) *JobCreate {
	if v != nil {
		_c.SetPhaseType(*v)
	}
	return _c
}

// SetIterationCount sets the "iteration_count" field.
func (_c *JobCreate) SetIterationCount(v int) *JobCreate {
	_c.mutation.SetIterationCount(v)
	return _c
}

// SetNillableIterationCount sets the "iteration_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableIterationCount(v *int) *JobCreate {
	if v != nil {
		_c.SetIterationCount(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *JobCreate) SetInputTokens(v int) *JobCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableInputTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *JobCreate) SetOutputTokens(v int) *JobCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableOutputTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *JobCreate) SetTotalTokens(v int) *JobCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableTotalTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *JobCreate) SetSummary(v string) *JobCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *JobCreate) SetNillableSummary(v *string) *JobCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetDeliverables sets the "deliverables" field.
func (_c *JobCreate) SetDeliverables(v []string) *JobCreate {
	_c.mutation.SetDeliverables(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *JobCreate) SetDeletedAt(v time.Time) *JobCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableDeletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *JobCreate) AddCheckpointIDs(ids ...int) *JobCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *JobCreate) AddCheckpoints(v ...*Checkpoint) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddDatasourceIDs adds the "datasources" edge to the Datasource entity by IDs.
func (_c *JobCreate) AddDatasourceIDs(ids ...string) *JobCreate {
	_c.mutation.AddDatasourceIDs(ids...)
	return _c
}

// AddDatasources adds the "datasources" edges to the Datasource entity.
func (_c *JobCreate) AddDatasources(v ...*Datasource) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDatasourceIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Autonomy(); !ok {
		v := job.DefaultAutonomy
		_c.mutation.SetAutonomy(v)
	}
	if _, ok := _c.mutation.PhaseNumber(); !ok {
		v := job.DefaultPhaseNumber
		_c.mutation.SetPhaseNumber(v)
	}
	if _, ok := _c.mutation.IterationCount(); !ok {
		v := job.DefaultIterationCount
		_c.mutation.SetIterationCount(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := job.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := job.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := job.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Job.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Autonomy(); !ok {
		return &ValidationError{Name: "autonomy", err: errors.New(`ent: missing required field "Job.autonomy"`)}
	}
	if v, ok := _c.mutation.Autonomy(); ok {
		if err := job.AutonomyValidator(v); err != nil {
			return &ValidationError{Name: "autonomy", err: fmt.Errorf(`ent: validator failed for field "Job.autonomy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhaseNumber(); !ok {
		return &ValidationError{Name: "phase_number", err: errors.New(`ent: missing required field "Job.phase_number"`)}
	}
	if _, ok := _c.mutation.IterationCount(); !ok {
		return &ValidationError{Name: "iteration_count", err: errors.New(`ent: missing required field "Job.iteration_count"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Job.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Job.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Job.total_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ExpertID(); ok {
		_spec.SetField(job.FieldExpertID, field.TypeString, value)
		_node.ExpertID = value
	}
	if value, ok := _c.mutation.ConfigOverride(); ok {
		_spec.SetField(job.FieldConfigOverride, field.TypeJSON, value)
		_node.ConfigOverride = value
	}
	if value, ok := _c.mutation.Uploads(); ok {
		_spec.SetField(job.FieldUploads, field.TypeJSON, value)
		_node.Uploads = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Autonomy(); ok {
		_spec.SetField(job.FieldAutonomy, field.TypeEnum, value)
		_node.Autonomy = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.WorkerURL(); ok {
		_spec.SetField(job.FieldWorkerURL, field.TypeString, value)
		_node.WorkerURL = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PhaseNumber(); ok {
		_spec.SetField(job.FieldPhaseNumber, field.TypeInt, value)
		_node.PhaseNumber = value
	}
	if value, ok := _c.mutation.PhaseType(); ok {
		_spec.SetField(job.FieldPhaseType, field.TypeString, value)
		_node.PhaseType = &value
	}
	if value, ok := _c.mutation.IterationCount(); ok {
		_spec.SetField(job.FieldIterationCount, field.TypeInt, value)
		_node.IterationCount = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(job.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(job.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(job.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Deliverables(); ok {
		_spec.SetField(job.FieldDeliverables, field.TypeJSON, value)
		_node.Deliverables = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(job.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DatasourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
