// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint = "Checkpoint"
	TypeDatasource = "Datasource"
	TypeJob        = "Job"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op              Op
	typ             string
	id              *int
	step            *int
	addstep         *int
	node            *string
	phase_number    *int
	addphase_number *int
	state           *[]byte
	created_at      *time.Time
	clearedFields   map[string]struct{}
	job             *string
	clearedjob      bool
	done            bool
	oldValue        func(context.Context) (*Checkpoint, error)
	predicates      []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id int) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *CheckpointMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *CheckpointMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *CheckpointMutation) ResetJobID() {
	m.job = nil
}

// SetStep sets the "step" field.
func (m *CheckpointMutation) SetStep(i int) {
	m.step = &i
	m.addstep = nil
}

// Step returns the value of the "step" field in the mutation.
func (m *CheckpointMutation) Step() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// AddStep adds i to the "step" field.
func (m *CheckpointMutation) AddStep(i int) {
	if m.addstep != nil {
		*m.addstep += i
	} else {
		m.addstep = &i
	}
}

// AddedStep returns the value that was added to the "step" field in this mutation.
func (m *CheckpointMutation) AddedStep() (r int, exists bool) {
	v := m.addstep
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep resets all changes to the "step" field.
func (m *CheckpointMutation) ResetStep() {
	m.step = nil
	m.addstep = nil
}

// SetNode sets the "node" field.
func (m *CheckpointMutation) SetNode(s string) {
	m.node = &s
}

// Node returns the value of the "node" field in the mutation.
func (m *CheckpointMutation) Node() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNode returns the old "node" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNode: %w", err)
	}
	return oldValue.Node, nil
}

// ResetNode resets all changes to the "node" field.
func (m *CheckpointMutation) ResetNode() {
	m.node = nil
}

// SetPhaseNumber sets the "phase_number" field.
func (m *CheckpointMutation) SetPhaseNumber(i int) {
	m.phase_number = &i
	m.addphase_number = nil
}

// PhaseNumber returns the value of the "phase_number" field in the mutation.
func (m *CheckpointMutation) PhaseNumber() (r int, exists bool) {
	v := m.phase_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseNumber returns the old "phase_number" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPhaseNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseNumber: %w", err)
	}
	return oldValue.PhaseNumber, nil
}

// AddPhaseNumber adds i to the "phase_number" field.
func (m *CheckpointMutation) AddPhaseNumber(i int) {
	if m.addphase_number != nil {
		*m.addphase_number += i
	} else {
		m.addphase_number = &i
	}
}

// AddedPhaseNumber returns the value that was added to the "phase_number" field in this mutation.
func (m *CheckpointMutation) AddedPhaseNumber() (r int, exists bool) {
	v := m.addphase_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseNumber resets all changes to the "phase_number" field.
func (m *CheckpointMutation) ResetPhaseNumber() {
	m.phase_number = nil
	m.addphase_number = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(b []byte) {
	m.state = &b
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r []byte, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *CheckpointMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[checkpoint.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *CheckpointMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *CheckpointMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, checkpoint.FieldJobID)
	}
	if m.step != nil {
		fields = append(fields, checkpoint.FieldStep)
	}
	if m.node != nil {
		fields = append(fields, checkpoint.FieldNode)
	}
	if m.phase_number != nil {
		fields = append(fields, checkpoint.FieldPhaseNumber)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldJobID:
		return m.JobID()
	case checkpoint.FieldStep:
		return m.Step()
	case checkpoint.FieldNode:
		return m.Node()
	case checkpoint.FieldPhaseNumber:
		return m.PhaseNumber()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldJobID:
		return m.OldJobID(ctx)
	case checkpoint.FieldStep:
		return m.OldStep(ctx)
	case checkpoint.FieldNode:
		return m.OldNode(ctx)
	case checkpoint.FieldPhaseNumber:
		return m.OldPhaseNumber(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case checkpoint.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case checkpoint.FieldNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNode(v)
		return nil
	case checkpoint.FieldPhaseNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseNumber(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addstep != nil {
		fields = append(fields, checkpoint.FieldStep)
	}
	if m.addphase_number != nil {
		fields = append(fields, checkpoint.FieldPhaseNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldStep:
		return m.AddedStep()
	case checkpoint.FieldPhaseNumber:
		return m.AddedPhaseNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep(v)
		return nil
	case checkpoint.FieldPhaseNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldJobID:
		m.ResetJobID()
		return nil
	case checkpoint.FieldStep:
		m.ResetStep()
		return nil
	case checkpoint.FieldNode:
		m.ResetNode()
		return nil
	case checkpoint.FieldPhaseNumber:
		m.ResetPhaseNumber()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, checkpoint.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, checkpoint.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// DatasourceMutation represents an operation that mutates the Datasource nodes in the graph.
type DatasourceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	_type          *datasource.Type
	name           *string
	description    *string
	connection_url *string
	credentials    *map[string]interface{}
	read_only      *bool
	scope          *datasource.Scope
	scope_key      *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	job            *string
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*Datasource, error)
	predicates     []predicate.Datasource
}

var _ ent.Mutation = (*DatasourceMutation)(nil)

// datasourceOption allows management of the mutation configuration using functional options.
type datasourceOption func(*DatasourceMutation)

// newDatasourceMutation creates new mutation for the Datasource entity.
func newDatasourceMutation(c config, op Op, opts ...datasourceOption) *DatasourceMutation {
	m := &DatasourceMutation{
		config:        c,
		op:            op,
		typ:           TypeDatasource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasourceID sets the ID field of the mutation.
func withDatasourceID(id string) datasourceOption {
	return func(m *DatasourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Datasource
		)
		m.oldValue = func(ctx context.Context) (*Datasource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Datasource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDatasource sets the old Datasource of the mutation.
func withDatasource(node *Datasource) datasourceOption {
	return func(m *DatasourceMutation) {
		m.oldValue = func(context.Context) (*Datasource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Datasource entities.
func (m *DatasourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Datasource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *DatasourceMutation) SetType(d datasource.Type) {
	m._type = &d
}

// GetType returns the value of the "type" field in the mutation.
func (m *DatasourceMutation) GetType() (r datasource.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldType(ctx context.Context) (v datasource.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *DatasourceMutation) ResetType() {
	m._type = nil
}

// SetName sets the "name" field.
func (m *DatasourceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DatasourceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DatasourceMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *DatasourceMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DatasourceMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DatasourceMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[datasource.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DatasourceMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[datasource.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DatasourceMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, datasource.FieldDescription)
}

// SetConnectionURL sets the "connection_url" field.
func (m *DatasourceMutation) SetConnectionURL(s string) {
	m.connection_url = &s
}

// ConnectionURL returns the value of the "connection_url" field in the mutation.
func (m *DatasourceMutation) ConnectionURL() (r string, exists bool) {
	v := m.connection_url
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionURL returns the old "connection_url" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldConnectionURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionURL: %w", err)
	}
	return oldValue.ConnectionURL, nil
}

// ResetConnectionURL resets all changes to the "connection_url" field.
func (m *DatasourceMutation) ResetConnectionURL() {
	m.connection_url = nil
}

// SetCredentials sets the "credentials" field.
func (m *DatasourceMutation) SetCredentials(value map[string]interface{}) {
	m.credentials = &value
}

// Credentials returns the value of the "credentials" field in the mutation.
func (m *DatasourceMutation) Credentials() (r map[string]interface{}, exists bool) {
	v := m.credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentials returns the old "credentials" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldCredentials(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentials: %w", err)
	}
	return oldValue.Credentials, nil
}

// ClearCredentials clears the value of the "credentials" field.
func (m *DatasourceMutation) ClearCredentials() {
	m.credentials = nil
	m.clearedFields[datasource.FieldCredentials] = struct{}{}
}

// CredentialsCleared returns if the "credentials" field was cleared in this mutation.
func (m *DatasourceMutation) CredentialsCleared() bool {
	_, ok := m.clearedFields[datasource.FieldCredentials]
	return ok
}

// ResetCredentials resets all changes to the "credentials" field.
func (m *DatasourceMutation) ResetCredentials() {
	m.credentials = nil
	delete(m.clearedFields, datasource.FieldCredentials)
}

// SetReadOnly sets the "read_only" field.
func (m *DatasourceMutation) SetReadOnly(b bool) {
	m.read_only = &b
}

// ReadOnly returns the value of the "read_only" field in the mutation.
func (m *DatasourceMutation) ReadOnly() (r bool, exists bool) {
	v := m.read_only
	if v == nil {
		return
	}
	return *v, true
}

// OldReadOnly returns the old "read_only" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldReadOnly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadOnly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadOnly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadOnly: %w", err)
	}
	return oldValue.ReadOnly, nil
}

// ResetReadOnly resets all changes to the "read_only" field.
func (m *DatasourceMutation) ResetReadOnly() {
	m.read_only = nil
}

// SetScope sets the "scope" field.
func (m *DatasourceMutation) SetScope(d datasource.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *DatasourceMutation) Scope() (r datasource.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldScope(ctx context.Context) (v datasource.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *DatasourceMutation) ResetScope() {
	m.scope = nil
}

// SetJobID sets the "job_id" field.
func (m *DatasourceMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *DatasourceMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *DatasourceMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[datasource.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *DatasourceMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[datasource.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *DatasourceMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, datasource.FieldJobID)
}

// SetScopeKey sets the "scope_key" field.
func (m *DatasourceMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *DatasourceMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *DatasourceMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DatasourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DatasourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Datasource entity.
// If the Datasource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DatasourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *DatasourceMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[datasource.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *DatasourceMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *DatasourceMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *DatasourceMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the DatasourceMutation builder.
func (m *DatasourceMutation) Where(ps ...predicate.Datasource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Datasource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Datasource).
func (m *DatasourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasourceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m._type != nil {
		fields = append(fields, datasource.FieldType)
	}
	if m.name != nil {
		fields = append(fields, datasource.FieldName)
	}
	if m.description != nil {
		fields = append(fields, datasource.FieldDescription)
	}
	if m.connection_url != nil {
		fields = append(fields, datasource.FieldConnectionURL)
	}
	if m.credentials != nil {
		fields = append(fields, datasource.FieldCredentials)
	}
	if m.read_only != nil {
		fields = append(fields, datasource.FieldReadOnly)
	}
	if m.scope != nil {
		fields = append(fields, datasource.FieldScope)
	}
	if m.job != nil {
		fields = append(fields, datasource.FieldJobID)
	}
	if m.scope_key != nil {
		fields = append(fields, datasource.FieldScopeKey)
	}
	if m.created_at != nil {
		fields = append(fields, datasource.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datasource.FieldType:
		return m.GetType()
	case datasource.FieldName:
		return m.Name()
	case datasource.FieldDescription:
		return m.Description()
	case datasource.FieldConnectionURL:
		return m.ConnectionURL()
	case datasource.FieldCredentials:
		return m.Credentials()
	case datasource.FieldReadOnly:
		return m.ReadOnly()
	case datasource.FieldScope:
		return m.Scope()
	case datasource.FieldJobID:
		return m.JobID()
	case datasource.FieldScopeKey:
		return m.ScopeKey()
	case datasource.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datasource.FieldType:
		return m.OldType(ctx)
	case datasource.FieldName:
		return m.OldName(ctx)
	case datasource.FieldDescription:
		return m.OldDescription(ctx)
	case datasource.FieldConnectionURL:
		return m.OldConnectionURL(ctx)
	case datasource.FieldCredentials:
		return m.OldCredentials(ctx)
	case datasource.FieldReadOnly:
		return m.OldReadOnly(ctx)
	case datasource.FieldScope:
		return m.OldScope(ctx)
	case datasource.FieldJobID:
		return m.OldJobID(ctx)
	case datasource.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case datasource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Datasource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datasource.FieldType:
		v, ok := value.(datasource.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case datasource.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case datasource.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case datasource.FieldConnectionURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionURL(v)
		return nil
	case datasource.FieldCredentials:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentials(v)
		return nil
	case datasource.FieldReadOnly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadOnly(v)
		return nil
	case datasource.FieldScope:
		v, ok := value.(datasource.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case datasource.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case datasource.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case datasource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Datasource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasourceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasourceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Datasource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(datasource.FieldDescription) {
		fields = append(fields, datasource.FieldDescription)
	}
	if m.FieldCleared(datasource.FieldCredentials) {
		fields = append(fields, datasource.FieldCredentials)
	}
	if m.FieldCleared(datasource.FieldJobID) {
		fields = append(fields, datasource.FieldJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasourceMutation) ClearField(name string) error {
	switch name {
	case datasource.FieldDescription:
		m.ClearDescription()
		return nil
	case datasource.FieldCredentials:
		m.ClearCredentials()
		return nil
	case datasource.FieldJobID:
		m.ClearJobID()
		return nil
	}
	return fmt.Errorf("unknown Datasource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasourceMutation) ResetField(name string) error {
	switch name {
	case datasource.FieldType:
		m.ResetType()
		return nil
	case datasource.FieldName:
		m.ResetName()
		return nil
	case datasource.FieldDescription:
		m.ResetDescription()
		return nil
	case datasource.FieldConnectionURL:
		m.ResetConnectionURL()
		return nil
	case datasource.FieldCredentials:
		m.ResetCredentials()
		return nil
	case datasource.FieldReadOnly:
		m.ResetReadOnly()
		return nil
	case datasource.FieldScope:
		m.ResetScope()
		return nil
	case datasource.FieldJobID:
		m.ResetJobID()
		return nil
	case datasource.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case datasource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Datasource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, datasource.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case datasource.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, datasource.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasourceMutation) EdgeCleared(name string) bool {
	switch name {
	case datasource.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasourceMutation) ClearEdge(name string) error {
	switch name {
	case datasource.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Datasource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasourceMutation) ResetEdge(name string) error {
	switch name {
	case datasource.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Datasource edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	description        *string
	expert_id          *string
	config_override    *map[string]interface{}
	uploads            *[]map[string]interface{}
	appenduploads      []map[string]interface{}
	status             *job.Status
	autonomy           *job.Autonomy
	worker_id          *string
	worker_url         *string
	error_message      *string
	phase_number       *int
	addphase_number    *int
	phase_type         *string
	iteration_count    *int
	additeration_count *int
	input_tokens       *int
	addinput_tokens    *int
	output_tokens      *int
	addoutput_tokens   *int
	total_tokens       *int
	addtotal_tokens    *int
	summary            *string
	deliverables       *[]string
	appenddeliverables []string
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	last_heartbeat_at  *time.Time
	deleted_at         *time.Time
	clearedFields      map[string]struct{}
	checkpoints        map[int]struct{}
	removedcheckpoints map[int]struct{}
	clearedcheckpoints bool
	datasources        map[string]struct{}
	removeddatasources map[string]struct{}
	cleareddatasources bool
	done               bool
	oldValue           func(context.Context) (*Job, error)
	predicates         []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDescription sets the "description" field.
func (m *JobMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *JobMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *JobMutation) ResetDescription() {
	m.description = nil
}

// SetExpertID sets the "expert_id" field.
func (m *JobMutation) SetExpertID(s string) {
	m.expert_id = &s
}

// ExpertID returns the value of the "expert_id" field in the mutation.
func (m *JobMutation) ExpertID() (r string, exists bool) {
	v := m.expert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertID returns the old "expert_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldExpertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertID: %w", err)
	}
	return oldValue.ExpertID, nil
}

// ClearExpertID clears the value of the "expert_id" field.
func (m *JobMutation) ClearExpertID() {
	m.expert_id = nil
	m.clearedFields[job.FieldExpertID] = struct{}{}
}

// ExpertIDCleared returns if the "expert_id" field was cleared in this mutation.
func (m *JobMutation) ExpertIDCleared() bool {
	_, ok := m.clearedFields[job.FieldExpertID]
	return ok
}

// ResetExpertID resets all changes to the "expert_id" field.
func (m *JobMutation) ResetExpertID() {
	m.expert_id = nil
	delete(m.clearedFields, job.FieldExpertID)
}

// SetConfigOverride sets the "config_override" field.
func (m *JobMutation) SetConfigOverride(value map[string]interface{}) {
	m.config_override = &value
}

// ConfigOverride returns the value of the "config_override" field in the mutation.
func (m *JobMutation) ConfigOverride() (r map[string]interface{}, exists bool) {
	v := m.config_override
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigOverride returns the old "config_override" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldConfigOverride(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigOverride: %w", err)
	}
	return oldValue.ConfigOverride, nil
}

// ClearConfigOverride clears the value of the "config_override" field.
func (m *JobMutation) ClearConfigOverride() {
	m.config_override = nil
	m.clearedFields[job.FieldConfigOverride] = struct{}{}
}

// ConfigOverrideCleared returns if the "config_override" field was cleared in this mutation.
func (m *JobMutation) ConfigOverrideCleared() bool {
	_, ok := m.clearedFields[job.FieldConfigOverride]
	return ok
}

// ResetConfigOverride resets all changes to the "config_override" field.
func (m *JobMutation) ResetConfigOverride() {
	m.config_override = nil
	delete(m.clearedFields, job.FieldConfigOverride)
}

// SetUploads sets the "uploads" field.
func (m *JobMutation) SetUploads(value []map[string]interface{}) {
	m.uploads = &value
	m.appenduploads = nil
}

// Uploads returns the value of the "uploads" field in the mutation.
func (m *JobMutation) Uploads() (r []map[string]interface{}, exists bool) {
	v := m.uploads
	if v == nil {
		return
	}
	return *v, true
}

// OldUploads returns the old "uploads" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUploads(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploads is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploads requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploads: %w", err)
	}
	return oldValue.Uploads, nil
}

// AppendUploads adds value to the "uploads" field.
func (m *JobMutation) AppendUploads(value []map[string]interface{}) {
	m.appenduploads = append(m.appenduploads, value...)
}

// AppendedUploads returns the list of values that were appended to the "uploads" field in this mutation.
func (m *JobMutation) AppendedUploads() ([]map[string]interface{}, bool) {
	if len(m.appenduploads) == 0 {
		return nil, false
	}
	return m.appenduploads, true
}

// ClearUploads clears the value of the "uploads" field.
func (m *JobMutation) ClearUploads() {
	m.uploads = nil
	m.appenduploads = nil
	m.clearedFields[job.FieldUploads] = struct{}{}
}

// UploadsCleared returns if the "uploads" field was cleared in this mutation.
func (m *JobMutation) UploadsCleared() bool {
	_, ok := m.clearedFields[job.FieldUploads]
	return ok
}

// ResetUploads resets all changes to the "uploads" field.
func (m *JobMutation) ResetUploads() {
	m.uploads = nil
	m.appenduploads = nil
	delete(m.clearedFields, job.FieldUploads)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAutonomy sets the "autonomy" field.
func (m *JobMutation) SetAutonomy(j job.Autonomy) {
	m.autonomy = &j
}

// Autonomy returns the value of the "autonomy" field in the mutation.
func (m *JobMutation) Autonomy() (r job.Autonomy, exists bool) {
	v := m.autonomy
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomy returns the old "autonomy" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAutonomy(ctx context.Context) (v job.Autonomy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomy: %w", err)
	}
	return oldValue.Autonomy, nil
}

// ResetAutonomy resets all changes to the "autonomy" field.
func (m *JobMutation) ResetAutonomy() {
	m.autonomy = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetWorkerURL sets the "worker_url" field.
func (m *JobMutation) SetWorkerURL(s string) {
	m.worker_url = &s
}

// WorkerURL returns the value of the "worker_url" field in the mutation.
func (m *JobMutation) WorkerURL() (r string, exists bool) {
	v := m.worker_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerURL returns the old "worker_url" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerURL: %w", err)
	}
	return oldValue.WorkerURL, nil
}

// ClearWorkerURL clears the value of the "worker_url" field.
func (m *JobMutation) ClearWorkerURL() {
	m.worker_url = nil
	m.clearedFields[job.FieldWorkerURL] = struct{}{}
}

// WorkerURLCleared returns if the "worker_url" field was cleared in this mutation.
func (m *JobMutation) WorkerURLCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerURL]
	return ok
}

// ResetWorkerURL resets all changes to the "worker_url" field.
func (m *JobMutation) ResetWorkerURL() {
	m.worker_url = nil
	delete(m.clearedFields, job.FieldWorkerURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetPhaseNumber sets the "phase_number" field.
func (m *JobMutation) SetPhaseNumber(i int) {
	m.phase_number = &i
	m.addphase_number = nil
}

// PhaseNumber returns the value of the "phase_number" field in the mutation.
func (m *JobMutation) PhaseNumber() (r int, exists bool) {
	v := m.phase_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseNumber returns the old "phase_number" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPhaseNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseNumber: %w", err)
	}
	return oldValue.PhaseNumber, nil
}

// AddPhaseNumber adds i to the "phase_number" field.
func (m *JobMutation) AddPhaseNumber(i int) {
	if m.addphase_number != nil {
		*m.addphase_number += i
	} else {
		m.addphase_number = &i
	}
}

// AddedPhaseNumber returns the value that was added to the "phase_number" field in this mutation.
func (m *JobMutation) AddedPhaseNumber() (r int, exists bool) {
	v := m.addphase_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseNumber resets all changes to the "phase_number" field.
func (m *JobMutation) ResetPhaseNumber() {
	m.phase_number = nil
	m.addphase_number = nil
}

// SetPhaseType sets the "phase_type" field.
func (m *JobMutation) SetPhaseType(s string) {
	m.phase_type = &s
}

// PhaseType returns the value of the "phase_type" field in the mutation.
func (m *JobMutation) PhaseType() (r string, exists bool) {
	v := m.phase_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseType returns the old "phase_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPhaseType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseType: %w", err)
	}
	return oldValue.PhaseType, nil
}

// ClearPhaseType clears the value of the "phase_type" field.
func (m *JobMutation) ClearPhaseType() {
	m.phase_type = nil
	m.clearedFields[job.FieldPhaseType] = struct{}{}
}

// PhaseTypeCleared returns if the "phase_type" field was cleared in this mutation.
func (m *JobMutation) PhaseTypeCleared() bool {
	_, ok := m.clearedFields[job.FieldPhaseType]
	return ok
}

// ResetPhaseType resets all changes to the "phase_type" field.
func (m *JobMutation) ResetPhaseType() {
	m.phase_type = nil
	delete(m.clearedFields, job.FieldPhaseType)
}

// SetIterationCount sets the "iteration_count" field.
func (m *JobMutation) SetIterationCount(i int) {
	m.iteration_count = &i
	m.additeration_count = nil
}

// IterationCount returns the value of the "iteration_count" field in the mutation.
func (m *JobMutation) IterationCount() (r int, exists bool) {
	v := m.iteration_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationCount returns the old "iteration_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIterationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationCount: %w", err)
	}
	return oldValue.IterationCount, nil
}

// AddIterationCount adds i to the "iteration_count" field.
func (m *JobMutation) AddIterationCount(i int) {
	if m.additeration_count != nil {
		*m.additeration_count += i
	} else {
		m.additeration_count = &i
	}
}

// AddedIterationCount returns the value that was added to the "iteration_count" field in this mutation.
func (m *JobMutation) AddedIterationCount() (r int, exists bool) {
	v := m.additeration_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterationCount resets all changes to the "iteration_count" field.
func (m *JobMutation) ResetIterationCount() {
	m.iteration_count = nil
	m.additeration_count = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *JobMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *JobMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *JobMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *JobMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *JobMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *JobMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *JobMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *JobMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *JobMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *JobMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *JobMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *JobMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *JobMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *JobMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *JobMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetSummary sets the "summary" field.
func (m *JobMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *JobMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *JobMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[job.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *JobMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[job.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *JobMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, job.FieldSummary)
}

// SetDeliverables sets the "deliverables" field.
func (m *JobMutation) SetDeliverables(s []string) {
	m.deliverables = &s
	m.appenddeliverables = nil
}

// Deliverables returns the value of the "deliverables" field in the mutation.
func (m *JobMutation) Deliverables() (r []string, exists bool) {
	v := m.deliverables
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliverables returns the old "deliverables" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDeliverables(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliverables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliverables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliverables: %w", err)
	}
	return oldValue.Deliverables, nil
}

// AppendDeliverables adds s to the "deliverables" field.
func (m *JobMutation) AppendDeliverables(s []string) {
	m.appenddeliverables = append(m.appenddeliverables, s...)
}

// AppendedDeliverables returns the list of values that were appended to the "deliverables" field in this mutation.
func (m *JobMutation) AppendedDeliverables() ([]string, bool) {
	if len(m.appenddeliverables) == 0 {
		return nil, false
	}
	return m.appenddeliverables, true
}

// ClearDeliverables clears the value of the "deliverables" field.
func (m *JobMutation) ClearDeliverables() {
	m.deliverables = nil
	m.appenddeliverables = nil
	m.clearedFields[job.FieldDeliverables] = struct{}{}
}

// DeliverablesCleared returns if the "deliverables" field was cleared in this mutation.
func (m *JobMutation) DeliverablesCleared() bool {
	_, ok := m.clearedFields[job.FieldDeliverables]
	return ok
}

// ResetDeliverables resets all changes to the "deliverables" field.
func (m *JobMutation) ResetDeliverables() {
	m.deliverables = nil
	m.appenddeliverables = nil
	delete(m.clearedFields, job.FieldDeliverables)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *JobMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *JobMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *JobMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[job.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *JobMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *JobMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, job.FieldDeletedAt)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *JobMutation) AddCheckpointIDs(ids ...int) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[int]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *JobMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *JobMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *JobMutation) RemoveCheckpointIDs(ids ...int) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *JobMutation) RemovedCheckpointsIDs() (ids []int) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *JobMutation) CheckpointsIDs() (ids []int) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *JobMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddDatasourceIDs adds the "datasources" edge to the Datasource entity by ids.
func (m *JobMutation) AddDatasourceIDs(ids ...string) {
	if m.datasources == nil {
		m.datasources = make(map[string]struct{})
	}
	for i := range ids {
		m.datasources[ids[i]] = struct{}{}
	}
}

// ClearDatasources clears the "datasources" edge to the Datasource entity.
func (m *JobMutation) ClearDatasources() {
	m.cleareddatasources = true
}

// DatasourcesCleared reports if the "datasources" edge to the Datasource entity was cleared.
func (m *JobMutation) DatasourcesCleared() bool {
	return m.cleareddatasources
}

// RemoveDatasourceIDs removes the "datasources" edge to the Datasource entity by IDs.
func (m *JobMutation) RemoveDatasourceIDs(ids ...string) {
	if m.removeddatasources == nil {
		m.removeddatasources = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.datasources, ids[i])
		m.removeddatasources[ids[i]] = struct{}{}
	}
}

// RemovedDatasources returns the removed IDs of the "datasources" edge to the Datasource entity.
func (m *JobMutation) RemovedDatasourcesIDs() (ids []string) {
	for id := range m.removeddatasources {
		ids = append(ids, id)
	}
	return
}

// DatasourcesIDs returns the "datasources" edge IDs in the mutation.
func (m *JobMutation) DatasourcesIDs() (ids []string) {
	for id := range m.datasources {
		ids = append(ids, id)
	}
	return
}

// ResetDatasources resets all changes to the "datasources" edge.
func (m *JobMutation) ResetDatasources() {
	m.datasources = nil
	m.cleareddatasources = false
	m.removeddatasources = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.description != nil {
		fields = append(fields, job.FieldDescription)
	}
	if m.expert_id != nil {
		fields = append(fields, job.FieldExpertID)
	}
	if m.config_override != nil {
		fields = append(fields, job.FieldConfigOverride)
	}
	if m.uploads != nil {
		fields = append(fields, job.FieldUploads)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.autonomy != nil {
		fields = append(fields, job.FieldAutonomy)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.worker_url != nil {
		fields = append(fields, job.FieldWorkerURL)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.phase_number != nil {
		fields = append(fields, job.FieldPhaseNumber)
	}
	if m.phase_type != nil {
		fields = append(fields, job.FieldPhaseType)
	}
	if m.iteration_count != nil {
		fields = append(fields, job.FieldIterationCount)
	}
	if m.input_tokens != nil {
		fields = append(fields, job.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, job.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, job.FieldTotalTokens)
	}
	if m.summary != nil {
		fields = append(fields, job.FieldSummary)
	}
	if m.deliverables != nil {
		fields = append(fields, job.FieldDeliverables)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, job.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldDescription:
		return m.Description()
	case job.FieldExpertID:
		return m.ExpertID()
	case job.FieldConfigOverride:
		return m.ConfigOverride()
	case job.FieldUploads:
		return m.Uploads()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAutonomy:
		return m.Autonomy()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldWorkerURL:
		return m.WorkerURL()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldPhaseNumber:
		return m.PhaseNumber()
	case job.FieldPhaseType:
		return m.PhaseType()
	case job.FieldIterationCount:
		return m.IterationCount()
	case job.FieldInputTokens:
		return m.InputTokens()
	case job.FieldOutputTokens:
		return m.OutputTokens()
	case job.FieldTotalTokens:
		return m.TotalTokens()
	case job.FieldSummary:
		return m.Summary()
	case job.FieldDeliverables:
		return m.Deliverables()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldDescription:
		return m.OldDescription(ctx)
	case job.FieldExpertID:
		return m.OldExpertID(ctx)
	case job.FieldConfigOverride:
		return m.OldConfigOverride(ctx)
	case job.FieldUploads:
		return m.OldUploads(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAutonomy:
		return m.OldAutonomy(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldWorkerURL:
		return m.OldWorkerURL(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldPhaseNumber:
		return m.OldPhaseNumber(ctx)
	case job.FieldPhaseType:
		return m.OldPhaseType(ctx)
	case job.FieldIterationCount:
		return m.OldIterationCount(ctx)
	case job.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case job.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case job.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case job.FieldSummary:
		return m.OldSummary(ctx)
	case job.FieldDeliverables:
		return m.OldDeliverables(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case job.FieldExpertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertID(v)
		return nil
	case job.FieldConfigOverride:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigOverride(v)
		return nil
	case job.FieldUploads:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploads(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAutonomy:
		v, ok := value.(job.Autonomy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomy(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldWorkerURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerURL(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldPhaseNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseNumber(v)
		return nil
	case job.FieldPhaseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseType(v)
		return nil
	case job.FieldIterationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationCount(v)
		return nil
	case job.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case job.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case job.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case job.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case job.FieldDeliverables:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliverables(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addphase_number != nil {
		fields = append(fields, job.FieldPhaseNumber)
	}
	if m.additeration_count != nil {
		fields = append(fields, job.FieldIterationCount)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, job.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, job.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, job.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPhaseNumber:
		return m.AddedPhaseNumber()
	case job.FieldIterationCount:
		return m.AddedIterationCount()
	case job.FieldInputTokens:
		return m.AddedInputTokens()
	case job.FieldOutputTokens:
		return m.AddedOutputTokens()
	case job.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPhaseNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseNumber(v)
		return nil
	case job.FieldIterationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterationCount(v)
		return nil
	case job.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case job.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case job.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldExpertID) {
		fields = append(fields, job.FieldExpertID)
	}
	if m.FieldCleared(job.FieldConfigOverride) {
		fields = append(fields, job.FieldConfigOverride)
	}
	if m.FieldCleared(job.FieldUploads) {
		fields = append(fields, job.FieldUploads)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldWorkerURL) {
		fields = append(fields, job.FieldWorkerURL)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldPhaseType) {
		fields = append(fields, job.FieldPhaseType)
	}
	if m.FieldCleared(job.FieldSummary) {
		fields = append(fields, job.FieldSummary)
	}
	if m.FieldCleared(job.FieldDeliverables) {
		fields = append(fields, job.FieldDeliverables)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldDeletedAt) {
		fields = append(fields, job.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldExpertID:
		m.ClearExpertID()
		return nil
	case job.FieldConfigOverride:
		m.ClearConfigOverride()
		return nil
	case job.FieldUploads:
		m.ClearUploads()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldWorkerURL:
		m.ClearWorkerURL()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldPhaseType:
		m.ClearPhaseType()
		return nil
	case job.FieldSummary:
		m.ClearSummary()
		return nil
	case job.FieldDeliverables:
		m.ClearDeliverables()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldDescription:
		m.ResetDescription()
		return nil
	case job.FieldExpertID:
		m.ResetExpertID()
		return nil
	case job.FieldConfigOverride:
		m.ResetConfigOverride()
		return nil
	case job.FieldUploads:
		m.ResetUploads()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAutonomy:
		m.ResetAutonomy()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldWorkerURL:
		m.ResetWorkerURL()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldPhaseNumber:
		m.ResetPhaseNumber()
		return nil
	case job.FieldPhaseType:
		m.ResetPhaseType()
		return nil
	case job.FieldIterationCount:
		m.ResetIterationCount()
		return nil
	case job.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case job.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case job.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case job.FieldSummary:
		m.ResetSummary()
		return nil
	case job.FieldDeliverables:
		m.ResetDeliverables()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.checkpoints != nil {
		edges = append(edges, job.EdgeCheckpoints)
	}
	if m.datasources != nil {
		edges = append(edges, job.EdgeDatasources)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeDatasources:
		ids := make([]ent.Value, 0, len(m.datasources))
		for id := range m.datasources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcheckpoints != nil {
		edges = append(edges, job.EdgeCheckpoints)
	}
	if m.removeddatasources != nil {
		edges = append(edges, job.EdgeDatasources)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeDatasources:
		ids := make([]ent.Value, 0, len(m.removeddatasources))
		for id := range m.removeddatasources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcheckpoints {
		edges = append(edges, job.EdgeCheckpoints)
	}
	if m.cleareddatasources {
		edges = append(edges, job.EdgeDatasources)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeCheckpoints:
		return m.clearedcheckpoints
	case job.EdgeDatasources:
		return m.cleareddatasources
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case job.EdgeDatasources:
		m.ResetDatasources()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}
