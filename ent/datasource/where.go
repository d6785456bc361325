// Code generated by ent, DO NOT EDIT.

package datasource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxis-works/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldDescription, v))
}

// ConnectionURL applies equality check predicate on the "connection_url" field. It's identical to ConnectionURLEQ.
func ConnectionURL(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldConnectionURL, v))
}

// ReadOnly applies equality check predicate on the "read_only" field. It's identical to ReadOnlyEQ.
func ReadOnly(v bool) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldReadOnly, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldJobID, v))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldScopeKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldCreatedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldType, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Datasource {
	return predicate.Datasource(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Datasource {
	return predicate.Datasource(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContainsFold(FieldDescription, v))
}

// ConnectionURLEQ applies the EQ predicate on the "connection_url" field.
func ConnectionURLEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldConnectionURL, v))
}

// ConnectionURLNEQ applies the NEQ predicate on the "connection_url" field.
func ConnectionURLNEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldConnectionURL, v))
}

// ConnectionURLIn applies the In predicate on the "connection_url" field.
func ConnectionURLIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldConnectionURL, vs...))
}

// ConnectionURLNotIn applies the NotIn predicate on the "connection_url" field.
func ConnectionURLNotIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldConnectionURL, vs...))
}

// ConnectionURLGT applies the GT predicate on the "connection_url" field.
func ConnectionURLGT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldConnectionURL, v))
}

// ConnectionURLGTE applies the GTE predicate on the "connection_url" field.
func ConnectionURLGTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldConnectionURL, v))
}

// ConnectionURLLT applies the LT predicate on the "connection_url" field.
func ConnectionURLLT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldConnectionURL, v))
}

// ConnectionURLLTE applies the LTE predicate on the "connection_url" field.
func ConnectionURLLTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldConnectionURL, v))
}

// ConnectionURLContains applies the Contains predicate on the "connection_url" field.
func ConnectionURLContains(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContains(FieldConnectionURL, v))
}

// ConnectionURLHasPrefix applies the HasPrefix predicate on the "connection_url" field.
func ConnectionURLHasPrefix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasPrefix(FieldConnectionURL, v))
}

// ConnectionURLHasSuffix applies the HasSuffix predicate on the "connection_url" field.
func ConnectionURLHasSuffix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasSuffix(FieldConnectionURL, v))
}

// ConnectionURLEqualFold applies the EqualFold predicate on the "connection_url" field.
func ConnectionURLEqualFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEqualFold(FieldConnectionURL, v))
}

// ConnectionURLContainsFold applies the ContainsFold predicate on the "connection_url" field.
func ConnectionURLContainsFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContainsFold(FieldConnectionURL, v))
}

// CredentialsIsNil applies the IsNil predicate on the "credentials" field.
func CredentialsIsNil() predicate.Datasource {
	return predicate.Datasource(sql.FieldIsNull(FieldCredentials))
}

// CredentialsNotNil applies the NotNil predicate on the "credentials" field.
func CredentialsNotNil() predicate.Datasource {
	return predicate.Datasource(sql.FieldNotNull(FieldCredentials))
}

// ReadOnlyEQ applies the EQ predicate on the "read_only" field.
func ReadOnlyEQ(v bool) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldReadOnly, v))
}

// ReadOnlyNEQ applies the NEQ predicate on the "read_only" field.
func ReadOnlyNEQ(v bool) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldReadOnly, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldScope, vs...))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Datasource {
	return predicate.Datasource(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Datasource {
	return predicate.Datasource(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContainsFold(FieldJobID, v))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.Datasource {
	return predicate.Datasource(sql.FieldContainsFold(FieldScopeKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Datasource {
	return predicate.Datasource(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Datasource {
	return predicate.Datasource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Datasource {
	return predicate.Datasource(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Datasource) predicate.Datasource {
	return predicate.Datasource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Datasource) predicate.Datasource {
	return predicate.Datasource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Datasource) predicate.Datasource {
	return predicate.Datasource(sql.NotPredicates(p))
}
