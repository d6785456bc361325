// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *CheckpointUpdate) SetJobID(v string) *CheckpointUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableJobID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *CheckpointUpdate) SetStep(v int) *CheckpointUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableStep(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *CheckpointUpdate) AddStep(v int) *CheckpointUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetNode sets the "node" field.
func (_u *CheckpointUpdate) SetNode(v string) *CheckpointUpdate {
	_u.mutation.SetNode(v)
	return _u
}

// SetNillableNode sets the "node" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableNode(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetNode(*v)
	}
	return _u
}

// SetPhaseNumber sets the "phase_number" field.
func (_u *CheckpointUpdate) SetPhaseNumber(v int) *CheckpointUpdate {
	_u.mutation.ResetPhaseNumber()
	_u.mutation.SetPhaseNumber(v)
	return _u
}

// SetNillablePhaseNumber sets the "phase_number" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillablePhaseNumber(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetPhaseNumber(*v)
	}
	return _u
}

// AddPhaseNumber adds value to the "phase_number" field.
func (_u *CheckpointUpdate) AddPhaseNumber(v int) *CheckpointUpdate {
	_u.mutation.AddPhaseNumber(v)
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdate) SetState(v []byte) *CheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *CheckpointUpdate) SetJob(v *Job) *CheckpointUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *CheckpointUpdate) ClearJob() *CheckpointUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.job"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Node(); ok {
		_spec.SetField(checkpoint.FieldNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseNumber(); ok {
		_spec.SetField(checkpoint.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseNumber(); ok {
		_spec.AddField(checkpoint.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeBytes, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.JobTable,
			Columns: []string{checkpoint.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.JobTable,
			Columns: []string{checkpoint.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetJobID sets the "job_id" field.
func (_u *CheckpointUpdateOne) SetJobID(v string) *CheckpointUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableJobID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *CheckpointUpdateOne) SetStep(v int) *CheckpointUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableStep(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *CheckpointUpdateOne) AddStep(v int) *CheckpointUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetNode sets the "node" field.
func (_u *CheckpointUpdateOne) SetNode(v string) *CheckpointUpdateOne {
	_u.mutation.SetNode(v)
	return _u
}

// SetNillableNode sets the "node" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableNode(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetNode(*v)
	}
	return _u
}

// SetPhaseNumber sets the "phase_number" field.
func (_u *CheckpointUpdateOne) SetPhaseNumber(v int) *CheckpointUpdateOne {
	_u.mutation.ResetPhaseNumber()
	_u.mutation.SetPhaseNumber(v)
	return _u
}

// SetNillablePhaseNumber sets the "phase_number" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillablePhaseNumber(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetPhaseNumber(*v)
	}
	return _u
}

// AddPhaseNumber adds value to the "phase_number" field.
func (_u *CheckpointUpdateOne) AddPhaseNumber(v int) *CheckpointUpdateOne {
	_u.mutation.AddPhaseNumber(v)
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdateOne) SetState(v []byte) *CheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *CheckpointUpdateOne) SetJob(v *Job) *CheckpointUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *CheckpointUpdateOne) ClearJob() *CheckpointUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.job"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(checkpoint.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Node(); ok {
		_spec.SetField(checkpoint.FieldNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseNumber(); ok {
		_spec.SetField(checkpoint.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseNumber(); ok {
		_spec.AddField(checkpoint.FieldPhaseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeBytes, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.JobTable,
			Columns: []string{checkpoint.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.JobTable,
			Columns: []string{checkpoint.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
