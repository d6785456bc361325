// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxis-works/praxis/ent/checkpoint"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
	"github.com/praxis-works/praxis/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[5].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	datasourceFields := schema.Datasource{}.Fields()
	_ = datasourceFields
	// datasourceDescReadOnly is the schema descriptor for read_only field.
	datasourceDescReadOnly := datasourceFields[6].Descriptor()
	// datasource.DefaultReadOnly holds the default value on creation for the read_only field.
	datasource.DefaultReadOnly = datasourceDescReadOnly.Default.(bool)
	// datasourceDescScopeKey is the schema descriptor for scope_key field.
	datasourceDescScopeKey := datasourceFields[9].Descriptor()
	// datasource.DefaultScopeKey holds the default value on creation for the scope_key field.
	datasource.DefaultScopeKey = datasourceDescScopeKey.Default.(string)
	// datasourceDescCreatedAt is the schema descriptor for created_at field.
	datasourceDescCreatedAt := datasourceFields[10].Descriptor()
	// datasource.DefaultCreatedAt holds the default value on creation for the created_at field.
	datasource.DefaultCreatedAt = datasourceDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPhaseNumber is the schema descriptor for phase_number field.
	jobDescPhaseNumber := jobFields[10].Descriptor()
	// job.DefaultPhaseNumber holds the default value on creation for the phase_number field.
	job.DefaultPhaseNumber = jobDescPhaseNumber.Default.(int)
	// jobDescIterationCount is the schema descriptor for iteration_count field.
	jobDescIterationCount := jobFields[12].Descriptor()
	// job.DefaultIterationCount holds the default value on creation for the iteration_count field.
	job.DefaultIterationCount = jobDescIterationCount.Default.(int)
	// jobDescInputTokens is the schema descriptor for input_tokens field.
	jobDescInputTokens := jobFields[13].Descriptor()
	// job.DefaultInputTokens holds the default value on creation for the input_tokens field.
	job.DefaultInputTokens = jobDescInputTokens.Default.(int)
	// jobDescOutputTokens is the schema descriptor for output_tokens field.
	jobDescOutputTokens := jobFields[14].Descriptor()
	// job.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	job.DefaultOutputTokens = jobDescOutputTokens.Default.(int)
	// jobDescTotalTokens is the schema descriptor for total_tokens field.
	jobDescTotalTokens := jobFields[15].Descriptor()
	// job.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	job.DefaultTotalTokens = jobDescTotalTokens.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[18].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
}
