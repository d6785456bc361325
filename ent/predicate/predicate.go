// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Datasource is the predicate function for datasource builders.
type Datasource func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)
