// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/google/uuid"
)

// ContractFile is the model entity for the ContractFile schema.
type ContractFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// TemplateFamily holds the value of the "template_family" field.
	TemplateFamily string `json:"template_family,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID *uuid.UUID `json:"contract_id,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractFileQuery when eager-loading is set.
	Edges        ContractFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractFileEdges holds the relations/edges for other nodes in the graph.
type ContractFileEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ContractFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractFileEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContractFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contractfile.FieldContractID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contractfile.FieldContentHash:
			values[i] = new([]byte)
		case contractfile.FieldSourcePath, contractfile.FieldFileExt, contractfile.FieldTemplateFamily:
			values[i] = new(sql.NullString)
		case contractfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case contractfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContractFile fields.
func (_m *ContractFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contractfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contractfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case contractfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case contractfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case contractfile.FieldTemplateFamily:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_family", values[i])
			} else if value.Valid {
				_m.TemplateFamily = value.String
			}
		case contractfile.FieldContractID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value.Valid {
				_m.ContractID = new(uuid.UUID)
				*_m.ContractID = *value.S.(*uuid.UUID)
			}
		case contractfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContractFile.
// This includes values selected through modifiers, order, etc.
func (_m *ContractFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the ContractFile entity.
func (_m *ContractFile) QueryJobs() *ExtractJobQuery {
	return NewContractFileClient(_m.config).QueryJobs(_m)
}

// QueryContract queries the "contract" edge of the ContractFile entity.
func (_m *ContractFile) QueryContract() *ContractQuery {
	return NewContractFileClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this ContractFile.
// Note that you need to call ContractFile.Unwrap() before calling this method if this ContractFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContractFile) Update() *ContractFileUpdateOne {
	return NewContractFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContractFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContractFile) Unwrap() *ContractFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContractFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContractFile) String() string {
	var builder strings.Builder
	builder.WriteString("ContractFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("template_family=")
	builder.WriteString(_m.TemplateFamily)
	builder.WriteString(", ")
	if v := _m.ContractID; v != nil {
		builder.WriteString("contract_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContractFiles is a parsable slice of ContractFile.
type ContractFiles []*ContractFile
