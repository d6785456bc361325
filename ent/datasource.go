// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxis-works/praxis/ent/datasource"
	"github.com/praxis-works/praxis/ent/job"
)

// Datasource is the model entity for the Datasource schema.
type Datasource struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Type holds the value of the "type" field.
	Type datasource.Type `json:"type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ConnectionURL holds the value of the "connection_url" field.
	ConnectionURL string `json:"-"`
	// Credentials holds the value of the "credentials" field.
	Credentials map[string]interface{} `json:"-"`
	// ReadOnly holds the value of the "read_only" field.
	ReadOnly bool `json:"read_only,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope datasource.Scope `json:"scope,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *string `json:"job_id,omitempty"`
	// 'global' or the owning job id; partial unique index on (type, scope_key) is created in migrations
	ScopeKey string `json:"scope_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DatasourceQuery when eager-loading is set.
	Edges        DatasourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DatasourceEdges holds the relations/edges for other nodes in the graph.
type DatasourceEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DatasourceEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Datasource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datasource.FieldCredentials:
			values[i] = new([]byte)
		case datasource.FieldReadOnly:
			values[i] = new(sql.NullBool)
		case datasource.FieldID, datasource.FieldType, datasource.FieldName, datasource.FieldDescription, datasource.FieldConnectionURL, datasource.FieldScope, datasource.FieldJobID, datasource.FieldScopeKey:
			values[i] = new(sql.NullString)
		case datasource.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Datasource fields.
func (_m *Datasource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datasource.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case datasource.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = datasource.Type(value.String)
			}
		case datasource.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case datasource.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case datasource.FieldConnectionURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_url", values[i])
			} else if value.Valid {
				_m.ConnectionURL = value.String
			}
		case datasource.FieldCredentials:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field credentials", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Credentials); err != nil {
					return fmt.Errorf("unmarshal field credentials: %w", err)
				}
			}
		case datasource.FieldReadOnly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field read_only", values[i])
			} else if value.Valid {
				_m.ReadOnly = value.Bool
			}
		case datasource.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = datasource.Scope(value.String)
			}
		case datasource.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(string)
				*_m.JobID = value.String
			}
		case datasource.FieldScopeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_key", values[i])
			} else if value.Valid {
				_m.ScopeKey = value.String
			}
		case datasource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Datasource.
// This includes values selected through modifiers, order, etc.
func (_m *Datasource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Datasource entity.
func (_m *Datasource) QueryJob() *JobQuery {
	return NewDatasourceClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this Datasource.
// Note that you need to call Datasource.Unwrap() before calling this method if this Datasource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Datasource) Update() *DatasourceUpdateOne {
	return NewDatasourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Datasource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Datasource) Unwrap() *Datasource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Datasource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Datasource) String() string {
	var builder strings.Builder
	builder.WriteString("Datasource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("connection_url=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("credentials=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("read_only=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadOnly))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scope_key=")
	builder.WriteString(_m.ScopeKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Datasources is a parsable slice of Datasource.
type Datasources []*Datasource
