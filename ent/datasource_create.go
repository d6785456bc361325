// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
)

// DatasourceCreate is the builder for creating a Datasource entity.
type DatasourceCreate struct {
	config
	mutation *DatasourceMutation
	hooks    []Hook
}

// SetType sets the "type" field.
func (_c *DatasourceCreate) SetType(v datasource.Type) *DatasourceCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DatasourceCreate) SetName(v string) *DatasourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DatasourceCreate) SetDescription(v string) *DatasourceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DatasourceCreate) SetNillableDescription(v *string) *DatasourceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetConnectionURL sets the "connection_url" field.
func (_c *DatasourceCreate) SetConnectionURL(v string) *DatasourceCreate {
	_c.mutation.SetConnectionURL(v)
	return _c
}

// SetCredentials sets the "credentials" field.
func (_c *DatasourceCreate) SetCredentials(v map[string]interface{}) *DatasourceCreate {
	_c.mutation.SetCredentials(v)
	return _c
}

// SetReadOnly sets the "read_only" field.
func (_c *DatasourceCreate) SetReadOnly(v bool) *DatasourceCreate {
	_c.mutation.SetReadOnly(v)
	return _c
}

// SetNillableReadOnly sets the "read_only" field if the given value is not nil.
func (_c *DatasourceCreate) SetNillableReadOnly(v *bool) *DatasourceCreate {
	if v != nil {
		_c.SetReadOnly(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *DatasourceCreate) SetScope(v datasource.Scope) *DatasourceCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *DatasourceCreate) SetNillableScope(v *datasource.Scope) *DatasourceCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *DatasourceCreate) SetJobID(v string) *DatasourceCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *DatasourceCreate) SetNillableJobID(v *string) *DatasourceCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetScopeKey sets the "scope_key" field.
func (_c *DatasourceCreate) SetScopeKey(v string) *DatasourceCreate {
	_c.mutation.SetScopeKey(v)
	return _c
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_c *DatasourceCreate) SetNillableScopeKey(v *string) *DatasourceCreate {
	if v != nil {
		_c.SetScopeKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DatasourceCreate) SetCreatedAt(v time.Time) *DatasourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DatasourceCreate) SetNillableCreatedAt(v *time.Time) *DatasourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DatasourceCreate) SetID(v string) *DatasourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *DatasourceCreate) SetJob(v *Job) *DatasourceCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the DatasourceMutation object of the builder.
func (_c *DatasourceCreate) Mutation() *DatasourceMutation {
	return _c.mutation
}

// Save creates the Datasource in the database.
func (_c *DatasourceCreate) Save(ctx context.Context) (*Datasource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasourceCreate) SaveX(ctx context.Context) *Datasource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasourceCreate) defaults() {
	if _, ok := _c.mutation.ReadOnly(); !ok {
		v := datasource.DefaultReadOnly
		_c.mutation.SetReadOnly(v)
	}
	if _, ok := _c.mutation.Scope(); !ok {
		v := datasource.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.ScopeKey(); !ok {
		v := datasource.DefaultScopeKey
		_c.mutation.SetScopeKey(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := datasource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasourceCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Datasource.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := datasource.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Datasource.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Datasource.name"`)}
	}
	if _, ok := _c.mutation.ConnectionURL(); !ok {
		return &ValidationError{Name: "connection_url", err: errors.New(`ent: missing required field "Datasource.connection_url"`)}
	}
	if _, ok := _c.mutation.ReadOnly(); !ok {
		return &ValidationError{Name: "read_only", err: errors.New(`ent: missing required field "Datasource.read_only"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Datasource.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := datasource.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Datasource.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeKey(); !ok {
		return &ValidationError{Name: "scope_key", err: errors.New(`ent: missing required field "Datasource.scope_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Datasource.created_at"`)}
	}
	return nil
}

func (_c *DatasourceCreate) sqlSave(ctx context.Context) (*Datasource, error) {
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
			return nil, fmt.Errorf("unexpected Datasource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DatasourceCreate) createSpec() (*Datasource, *sqlgraph.CreateSpec) {
	var (
		_node = &Datasource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datasource.Table, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(datasource.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(datasource.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ConnectionURL(); ok {
		_spec.SetField(datasource.FieldConnectionURL, field.TypeString, value)
		_node.ConnectionURL = value
	}
	if value, ok := _c.mutation.Credentials(); ok {
		_spec.SetField(datasource.FieldCredentials, field.TypeJSON, value)
		_node.Credentials = value
	}
	if value, ok := _c.mutation.ReadOnly(); ok {
		_spec.SetField(datasource.FieldReadOnly, field.TypeBool, value)
		_node.ReadOnly = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(datasource.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.ScopeKey(); ok {
		_spec.SetField(datasource.FieldScopeKey, field.TypeString, value)
		_node.ScopeKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(datasource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DatasourceCreateBulk is the builder for creating many Datasource entities in bulk.
type DatasourceCreateBulk struct {
	config
	err      error
	builders []*DatasourceCreate
}

// Save creates the Datasource entities in the database.
func (_c *DatasourceCreateBulk) Save(ctx context.Context) ([]*Datasource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Datasource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasourceMutation)
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
func (_c *DatasourceCreateBulk) SaveX(ctx context.Context) []*Datasource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
