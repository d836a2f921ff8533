// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/google/uuid"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TemplateFamily holds the value of the "template_family" field.
	TemplateFamily string `json:"template_family,omitempty"`
	// PropertyAddress holds the value of the "property_address" field.
	PropertyAddress string `json:"property_address,omitempty"`
	// BuyerNames holds the value of the "buyer_names" field.
	BuyerNames string `json:"buyer_names,omitempty"`
	// SellerNames holds the value of the "seller_names" field.
	SellerNames string `json:"seller_names,omitempty"`
	// PurchasePrice holds the value of the "purchase_price" field.
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	// CloseOfEscrow holds the value of the "close_of_escrow" field.
	CloseOfEscrow *time.Time `json:"close_of_escrow,omitempty"`
	// Completeness holds the value of the "completeness" field.
	Completeness float32 `json:"completeness,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// FieldsJSON holds the value of the "fields_json" field.
	FieldsJSON json.RawMessage `json:"fields_json,omitempty"`
	// RecordText holds the value of the "record_text" field.
	RecordText string `json:"record_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Files holds the value of the files edge.
	Files []*ContractFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) FilesOrErr() ([]*ContractFile, error) {
	if e.loadedTypes[0] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldFieldsJSON:
			values[i] = new([]byte)
		case contract.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case contract.FieldPurchasePrice, contract.FieldCompleteness:
			values[i] = new(sql.NullFloat64)
		case contract.FieldTemplateFamily, contract.FieldPropertyAddress, contract.FieldBuyerNames, contract.FieldSellerNames, contract.FieldRecordText:
			values[i] = new(sql.NullString)
		case contract.FieldCloseOfEscrow, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldTemplateFamily:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_family", values[i])
			} else if value.Valid {
				_m.TemplateFamily = value.String
			}
		case contract.FieldPropertyAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_address", values[i])
			} else if value.Valid {
				_m.PropertyAddress = value.String
			}
		case contract.FieldBuyerNames:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_names", values[i])
			} else if value.Valid {
				_m.BuyerNames = value.String
			}
		case contract.FieldSellerNames:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_names", values[i])
			} else if value.Valid {
				_m.SellerNames = value.String
			}
		case contract.FieldPurchasePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_price", values[i])
			} else if value.Valid {
				_m.PurchasePrice = new(float64)
				*_m.PurchasePrice = value.Float64
			}
		case contract.FieldCloseOfEscrow:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field close_of_escrow", values[i])
			} else if value.Valid {
				_m.CloseOfEscrow = new(time.Time)
				*_m.CloseOfEscrow = value.Time
			}
		case contract.FieldCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completeness", values[i])
			} else if value.Valid {
				_m.Completeness = float32(value.Float64)
			}
		case contract.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case contract.FieldFieldsJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldsJSON); err != nil {
					return fmt.Errorf("unmarshal field fields_json: %w", err)
				}
			}
		case contract.FieldRecordText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_text", values[i])
			} else if value.Valid {
				_m.RecordText = value.String
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiles queries the "files" edge of the Contract entity.
func (_m *Contract) QueryFiles() *ContractFileQuery {
	return NewContractClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Contract entity.
func (_m *Contract) QueryJobs() *ExtractJobQuery {
	return NewContractClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("template_family=")
	builder.WriteString(_m.TemplateFamily)
	builder.WriteString(", ")
	builder.WriteString("property_address=")
	builder.WriteString(_m.PropertyAddress)
	builder.WriteString(", ")
	builder.WriteString("buyer_names=")
	builder.WriteString(_m.BuyerNames)
	builder.WriteString(", ")
	builder.WriteString("seller_names=")
	builder.WriteString(_m.SellerNames)
	builder.WriteString(", ")
	if v := _m.PurchasePrice; v != nil {
		builder.WriteString("purchase_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CloseOfEscrow; v != nil {
		builder.WriteString("close_of_escrow=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completeness))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("fields_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldsJSON))
	builder.WriteString(", ")
	builder.WriteString("record_text=")
	builder.WriteString(_m.RecordText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
