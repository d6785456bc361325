// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/ent/predicate"
)

// DatasourceUpdate is the builder for updating Datasource entities.
type DatasourceUpdate struct {
	config
	hooks    []Hook
	mutation *DatasourceMutation
}

// Where appends a list predicates to the DatasourceUpdate builder.
func (_u *DatasourceUpdate) Where(ps ...predicate.Datasource) *DatasourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *DatasourceUpdate) SetType(v datasource.Type) *DatasourceUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableType(v *datasource.Type) *DatasourceUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DatasourceUpdate) SetName(v string) *DatasourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableName(v *string) *DatasourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DatasourceUpdate) SetDescription(v string) *DatasourceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableDescription(v *string) *DatasourceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DatasourceUpdate) ClearDescription() *DatasourceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetConnectionURL sets the "connection_url" field.
func (_u *DatasourceUpdate) SetConnectionURL(v string) *DatasourceUpdate {
	_u.mutation.SetConnectionURL(v)
	return _u
}

// SetNillableConnectionURL sets the "connection_url" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableConnectionURL(v *string) *DatasourceUpdate {
	if v != nil {
		_u.SetConnectionURL(*v)
	}
	return _u
}

// SetCredentials sets the "credentials" field.
func (_u *DatasourceUpdate) SetCredentials(v map[string]interface{}) *DatasourceUpdate {
	_u.mutation.SetCredentials(v)
	return _u
}

// ClearCredentials clears the value of the "credentials" field.
func (_u *DatasourceUpdate) ClearCredentials() *DatasourceUpdate {
	_u.mutation.ClearCredentials()
	return _u
}

// SetReadOnly sets the "read_only" field.
func (_u *DatasourceUpdate) SetReadOnly(v bool) *DatasourceUpdate {
	_u.mutation.SetReadOnly(v)
	return _u
}

// SetNillableReadOnly sets the "read_only" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableReadOnly(v *bool) *DatasourceUpdate {
	if v != nil {
		_u.SetReadOnly(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *DatasourceUpdate) SetScope(v datasource.Scope) *DatasourceUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableScope(v *datasource.Scope) *DatasourceUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *DatasourceUpdate) SetJobID(v string) *DatasourceUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableJobID(v *string) *DatasourceUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *DatasourceUpdate) ClearJobID() *DatasourceUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *DatasourceUpdate) SetScopeKey(v string) *DatasourceUpdate {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *DatasourceUpdate) SetNillableScopeKey(v *string) *DatasourceUpdate {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *DatasourceUpdate) SetJob(v *Job) *DatasourceUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the DatasourceMutation object of the builder.
func (_u *DatasourceUpdate) Mutation() *DatasourceMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *DatasourceUpdate) ClearJob() *DatasourceUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasourceUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := datasource.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Datasource.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := datasource.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Datasource.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasource.Table, datasource.Columns, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(datasource.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(datasource.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(datasource.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ConnectionURL(); ok {
		_spec.SetField(datasource.FieldConnectionURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credentials(); ok {
		_spec.SetField(datasource.FieldCredentials, field.TypeJSON, value)
	}
	if _u.mutation.CredentialsCleared() {
		_spec.ClearField(datasource.FieldCredentials, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadOnly(); ok {
		_spec.SetField(datasource.FieldReadOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(datasource.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(datasource.FieldScopeKey, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datasource.JobTable,
			Columns: []string{datasource.JobColumn},
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
			Table:   datasource.JobTable,
			Columns: []string{datasource.JobColumn},
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
			err = &NotFoundError{datasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasourceUpdateOne is the builder for updating a single Datasource entity.
type DatasourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasourceMutation
}

// SetType sets the "type" field.
func (_u *DatasourceUpdateOne) SetType(v datasource.Type) *DatasourceUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableType(v *datasource.Type) *DatasourceUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DatasourceUpdateOne) SetName(v string) *DatasourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableName(v *string) *DatasourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DatasourceUpdateOne) SetDescription(v string) *DatasourceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableDescription(v *string) *DatasourceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DatasourceUpdateOne) ClearDescription() *DatasourceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetConnectionURL sets the "connection_url" field.
func (_u *DatasourceUpdateOne) SetConnectionURL(v string) *DatasourceUpdateOne {
	_u.mutation.SetConnectionURL(v)
	return _u
}

// SetNillableConnectionURL sets the "connection_url" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableConnectionURL(v *string) *DatasourceUpdateOne {
	if v != nil {
		_u.SetConnectionURL(*v)
	}
	return _u
}

// SetCredentials sets the "credentials" field.
func (_u *DatasourceUpdateOne) SetCredentials(v map[string]interface{}) *DatasourceUpdateOne {
	_u.mutation.SetCredentials(v)
	return _u
}

// ClearCredentials clears the value of the "credentials" field.
func (_u *DatasourceUpdateOne) ClearCredentials() *DatasourceUpdateOne {
	_u.mutation.ClearCredentials()
	return _u
}

// SetReadOnly sets the "read_only" field.
func (_u *DatasourceUpdateOne) SetReadOnly(v bool) *DatasourceUpdateOne {
	_u.mutation.SetReadOnly(v)
	return _u
}

// SetNillableReadOnly sets the "read_only" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableReadOnly(v *bool) *DatasourceUpdateOne {
	if v != nil {
		_u.SetReadOnly(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *DatasourceUpdateOne) SetScope(v datasource.Scope) *DatasourceUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableScope(v *datasource.Scope) *DatasourceUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *DatasourceUpdateOne) SetJobID(v string) *DatasourceUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableJobID(v *string) *DatasourceUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *DatasourceUpdateOne) ClearJobID() *DatasourceUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *DatasourceUpdateOne) SetScopeKey(v string) *DatasourceUpdateOne {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *DatasourceUpdateOne) SetNillableScopeKey(v *string) *DatasourceUpdateOne {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *DatasourceUpdateOne) SetJob(v *Job) *DatasourceUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the DatasourceMutation object of the builder.
func (_u *DatasourceUpdateOne) Mutation() *DatasourceMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *DatasourceUpdateOne) ClearJob() *DatasourceUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the DatasourceUpdate builder.
func (_u *DatasourceUpdateOne) Where(ps ...predicate.Datasource) *DatasourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasourceUpdateOne) Select(field string, fields ...string) *DatasourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Datasource entity.
func (_u *DatasourceUpdateOne) Save(ctx context.Context) (*Datasource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasourceUpdateOne) SaveX(ctx context.Context) *Datasource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasourceUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := datasource.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Datasource.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := datasource.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Datasource.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasourceUpdateOne) sqlSave(ctx context.Context) (_node *Datasource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasource.Table, datasource.Columns, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Datasource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasource.FieldID)
		for _, f := range fields {
			if !datasource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datasource.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(datasource.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(datasource.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(datasource.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ConnectionURL(); ok {
		_spec.SetField(datasource.FieldConnectionURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credentials(); ok {
		_spec.SetField(datasource.FieldCredentials, field.TypeJSON, value)
	}
	if _u.mutation.CredentialsCleared() {
		_spec.ClearField(datasource.FieldCredentials, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadOnly(); ok {
		_spec.SetField(datasource.FieldReadOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(datasource.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(datasource.FieldScopeKey, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datasource.JobTable,
			Columns: []string{datasource.JobColumn},
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
			Table:   datasource.JobTable,
			Columns: []string{datasource.JobColumn},
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
	_node = &Datasource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
