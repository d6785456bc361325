// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxis-works/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// ExpertID applies equality check predicate on the "expert_id" field. It's identical to ExpertIDEQ.
func ExpertID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldExpertID, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerURL applies equality check predicate on the "worker_url" field. It's identical to WorkerURLEQ.
func WorkerURL(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// PhaseNumber applies equality check predicate on the "phase_number" field. It's identical to PhaseNumberEQ.
func PhaseNumber(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPhaseNumber, v))
}

// PhaseType applies equality check predicate on the "phase_type" field. It's identical to PhaseTypeEQ.
func PhaseType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPhaseType, v))
}

// IterationCount applies equality check predicate on the "iteration_count" field. It's identical to IterationCountEQ.
func IterationCount(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIterationCount, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalTokens, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDeletedAt, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDescription, v))
}

// ExpertIDEQ applies the EQ predicate on the "expert_id" field.
func ExpertIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldExpertID, v))
}

// ExpertIDNEQ applies the NEQ predicate on the "expert_id" field.
func ExpertIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldExpertID, v))
}

// ExpertIDIn applies the In predicate on the "expert_id" field.
func ExpertIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldExpertID, vs...))
}

// ExpertIDNotIn applies the NotIn predicate on the "expert_id" field.
func ExpertIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldExpertID, vs...))
}

// ExpertIDGT applies the GT predicate on the "expert_id" field.
func ExpertIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldExpertID, v))
}

// ExpertIDGTE applies the GTE predicate on the "expert_id" field.
func ExpertIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldExpertID, v))
}

// ExpertIDLT applies the LT predicate on the "expert_id" field.
func ExpertIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldExpertID, v))
}

// ExpertIDLTE applies the LTE predicate on the "expert_id" field.
func ExpertIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldExpertID, v))
}

// ExpertIDContains applies the Contains predicate on the "expert_id" field.
func ExpertIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldExpertID, v))
}

// ExpertIDHasPrefix applies the HasPrefix predicate on the "expert_id" field.
func ExpertIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldExpertID, v))
}

// ExpertIDHasSuffix applies the HasSuffix predicate on the "expert_id" field.
func ExpertIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldExpertID, v))
}

// ExpertIDIsNil applies the IsNil predicate on the "expert_id" field.
func ExpertIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldExpertID))
}

// ExpertIDNotNil applies the NotNil predicate on the "expert_id" field.
func ExpertIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldExpertID))
}

// ExpertIDEqualFold applies the EqualFold predicate on the "expert_id" field.
func ExpertIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldExpertID, v))
}

// ExpertIDContainsFold applies the ContainsFold predicate on the "expert_id" field.
func ExpertIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldExpertID, v))
}

// ConfigOverrideIsNil applies the IsNil predicate on the "config_override" field.
func ConfigOverrideIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldConfigOverride))
}

// ConfigOverrideNotNil applies the NotNil predicate on the "config_override" field.
func ConfigOverrideNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldConfigOverride))
}

// UploadsIsNil applies the IsNil predicate on the "uploads" field.
func UploadsIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldUploads))
}

// UploadsNotNil applies the NotNil predicate on the "uploads" field.
func UploadsNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldUploads))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// AutonomyEQ applies the EQ predicate on the "autonomy" field.
func AutonomyEQ(v Autonomy) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAutonomy, v))
}

// AutonomyNEQ applies the NEQ predicate on the "autonomy" field.
func AutonomyNEQ(v Autonomy) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAutonomy, v))
}

// AutonomyIn applies the In predicate on the "autonomy" field.
func AutonomyIn(vs ...Autonomy) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAutonomy, vs...))
}

// AutonomyNotIn applies the NotIn predicate on the "autonomy" field.
func AutonomyNotIn(vs ...Autonomy) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAutonomy, vs...))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkerID, v))
}

// WorkerURLEQ applies the EQ predicate on the "worker_url" field.
func WorkerURLEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerURL, v))
}

// WorkerURLNEQ applies the NEQ predicate on the "worker_url" field.
func WorkerURLNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkerURL, v))
}

// WorkerURLIn applies the In predicate on the "worker_url" field.
func WorkerURLIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkerURL, vs...))
}

// WorkerURLNotIn applies the NotIn predicate on the "worker_url" field.
func WorkerURLNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkerURL, vs...))
}

// WorkerURLGT applies the GT predicate on the "worker_url" field.
func WorkerURLGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkerURL, v))
}

// WorkerURLGTE applies the GTE predicate on the "worker_url" field.
func WorkerURLGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkerURL, v))
}

// WorkerURLLT applies the LT predicate on the "worker_url" field.
func WorkerURLLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkerURL, v))
}

// WorkerURLLTE applies the LTE predicate on the "worker_url" field.
func WorkerURLLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkerURL, v))
}

// WorkerURLContains applies the Contains predicate on the "worker_url" field.
func WorkerURLContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkerURL, v))
}

// WorkerURLHasPrefix applies the HasPrefix predicate on the "worker_url" field.
func WorkerURLHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkerURL, v))
}

// WorkerURLHasSuffix applies the HasSuffix predicate on the "worker_url" field.
func WorkerURLHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkerURL, v))
}

// WorkerURLIsNil applies the IsNil predicate on the "worker_url" field.
func WorkerURLIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkerURL))
}

// WorkerURLNotNil applies the NotNil predicate on the "worker_url" field.
func WorkerURLNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkerURL))
}

// WorkerURLEqualFold applies the EqualFold predicate on the "worker_url" field.
func WorkerURLEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkerURL, v))
}

// WorkerURLContainsFold applies the ContainsFold predicate on the "worker_url" field.
func WorkerURLContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkerURL, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PhaseNumberEQ applies the EQ predicate on the "phase_number" field.
func PhaseNumberEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPhaseNumber, v))
}

// PhaseNumberNEQ applies the NEQ predicate on the "phase_number" field.
func PhaseNumberNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPhaseNumber, v))
}

// PhaseNumberIn applies the In predicate on the "phase_number" field.
func PhaseNumberIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPhaseNumber, vs...))
}

// PhaseNumberNotIn applies the NotIn predicate on the "phase_number" field.
func PhaseNumberNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPhaseNumber, vs...))
}

// PhaseNumberGT applies the GT predicate on the "phase_number" field.
func PhaseNumberGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPhaseNumber, v))
}

// PhaseNumberGTE applies the GTE predicate on the "phase_number" field.
func PhaseNumberGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPhaseNumber, v))
}

// PhaseNumberLT applies the LT predicate on the "phase_number" field.
func PhaseNumberLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPhaseNumber, v))
}

// PhaseNumberLTE applies the LTE predicate on the "phase_number" field.
func PhaseNumberLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPhaseNumber, v))
}

// PhaseTypeEQ applies the EQ predicate on the "phase_type" field.
func PhaseTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPhaseType, v))
}

// PhaseTypeNEQ applies the NEQ predicate on the "phase_type" field.
func PhaseTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPhaseType, v))
}

// PhaseTypeIn applies the In predicate on the "phase_type" field.
func PhaseTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPhaseType, vs...))
}

// PhaseTypeNotIn applies the NotIn predicate on the "phase_type" field.
func PhaseTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPhaseType, vs...))
}

// PhaseTypeGT applies the GT predicate on the "phase_type" field.
func PhaseTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPhaseType, v))
}

// PhaseTypeGTE applies the GTE predicate on the "phase_type" field.
func PhaseTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPhaseType, v))
}

// PhaseTypeLT applies the LT predicate on the "phase_type" field.
func PhaseTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPhaseType, v))
}

// PhaseTypeLTE applies the LTE predicate on the "phase_type" field.
func PhaseTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPhaseType, v))
}

// PhaseTypeContains applies the Contains predicate on the "phase_type" field.
func PhaseTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldPhaseType, v))
}

// PhaseTypeHasPrefix applies the HasPrefix predicate on the "phase_type" field.
func PhaseTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldPhaseType, v))
}

// PhaseTypeHasSuffix applies the HasSuffix predicate on the "phase_type" field.
func PhaseTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldPhaseType, v))
}

// PhaseTypeIsNil applies the IsNil predicate on the "phase_type" field.
func PhaseTypeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPhaseType))
}

// PhaseTypeNotNil applies the NotNil predicate on the "phase_type" field.
func PhaseTypeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPhaseType))
}

// PhaseTypeEqualFold applies the EqualFold predicate on the "phase_type" field.
func PhaseTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldPhaseType, v))
}

// PhaseTypeContainsFold applies the ContainsFold predicate on the "phase_type" field.
func PhaseTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldPhaseType, v))
}

// IterationCountEQ applies the EQ predicate on the "iteration_count" field.
func IterationCountEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIterationCount, v))
}

// IterationCountNEQ applies the NEQ predicate on the "iteration_count" field.
func IterationCountNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldIterationCount, v))
}

// IterationCountIn applies the In predicate on the "iteration_count" field.
func IterationCountIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldIterationCount, vs...))
}

// IterationCountNotIn applies the NotIn predicate on the "iteration_count" field.
func IterationCountNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldIterationCount, vs...))
}

// IterationCountGT applies the GT predicate on the "iteration_count" field.
func IterationCountGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldIterationCount, v))
}

// IterationCountGTE applies the GTE predicate on the "iteration_count" field.
func IterationCountGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldIterationCount, v))
}

// IterationCountLT applies the LT predicate on the "iteration_count" field.
func IterationCountLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldIterationCount, v))
}

// IterationCountLTE applies the LTE predicate on the "iteration_count" field.
func IterationCountLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldIterationCount, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldOutputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTotalTokens, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSummary, v))
}

// DeliverablesIsNil applies the IsNil predicate on the "deliverables" field.
func DeliverablesIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDeliverables))
}

// DeliverablesNotNil applies the NotNil predicate on the "deliverables" field.
func DeliverablesNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDeliverables))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDeletedAt))
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDatasources applies the HasEdge predicate on the "datasources" edge.
func HasDatasources() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DatasourcesTable, DatasourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDatasourcesWith applies the HasEdge predicate on the "datasources" edge with a given conditions (other predicates).
func HasDatasourcesWith(preds ...predicate.Datasource) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newDatasourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
