// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
	"github.com/closingdesk/contract-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ExtractJobUpdate) SetFileID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFileID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ExtractJobUpdate) SetContractID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableContractID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *ExtractJobUpdate) ClearContractID() *ExtractJobUpdate {
	_u.mutation.ClearContractID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdate) SetFormat(v string) *ExtractJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFormat(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdate) SetStartedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdate) SetFinishedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdate) SetStatus(v string) *ExtractJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStatus(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdate) ClearStatus() *ExtractJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdate) SetErrorMessage(v string) *ExtractJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableErrorMessage(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *ExtractJobUpdate) SetCompleteness(v float32) *ExtractJobUpdate {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableCompleteness(v *float32) *ExtractJobUpdate {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *ExtractJobUpdate) AddCompleteness(v float32) *ExtractJobUpdate {
	_u.mutation.AddCompleteness(v)
	return _u
}

// ClearCompleteness clears the value of the "completeness" field.
func (_u *ExtractJobUpdate) ClearCompleteness() *ExtractJobUpdate {
	_u.mutation.ClearCompleteness()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractJobUpdate) SetNeedsReview(v bool) *ExtractJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableNeedsReview(v *bool) *ExtractJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRecordJSON sets the "record_json" field.
func (_u *ExtractJobUpdate) SetRecordJSON(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetRecordJSON(v)
	return _u
}

// AppendRecordJSON appends value to the "record_json" field.
func (_u *ExtractJobUpdate) AppendRecordJSON(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendRecordJSON(v)
	return _u
}

// ClearRecordJSON clears the value of the "record_json" field.
func (_u *ExtractJobUpdate) ClearRecordJSON() *ExtractJobUpdate {
	_u.mutation.ClearRecordJSON()
	return _u
}

// SetMissingRequired sets the "missing_required" field.
func (_u *ExtractJobUpdate) SetMissingRequired(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetMissingRequired(v)
	return _u
}

// AppendMissingRequired appends value to the "missing_required" field.
func (_u *ExtractJobUpdate) AppendMissingRequired(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendMissingRequired(v)
	return _u
}

// ClearMissingRequired clears the value of the "missing_required" field.
func (_u *ExtractJobUpdate) ClearMissingRequired() *ExtractJobUpdate {
	_u.mutation.ClearMissingRequired()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractJobUpdate) SetModelName(v string) *ExtractJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableModelName(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractJobUpdate) ClearModelName() *ExtractJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *ExtractJobUpdate) SetModelParams(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *ExtractJobUpdate) AppendModelParams(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *ExtractJobUpdate) ClearModelParams() *ExtractJobUpdate {
	_u.mutation.ClearModelParams()
	return _u
}

// SetFile sets the "file" edge to the ContractFile entity.
func (_u *ExtractJobUpdate) SetFile(v *ContractFile) *ExtractJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ExtractJobUpdate) SetContract(v *Contract) *ExtractJobUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ContractFile entity.
func (_u *ExtractJobUpdate) ClearFile() *ExtractJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ExtractJobUpdate) ClearContract() *ExtractJobUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.file"`)
	}
	return nil
}

func (_u *ExtractJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(extractjob.FieldCompleteness, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(extractjob.FieldCompleteness, field.TypeFloat32, value)
	}
	if _u.mutation.CompletenessCleared() {
		_spec.ClearField(extractjob.FieldCompleteness, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecordJSON(); ok {
		_spec.SetField(extractjob.FieldRecordJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldRecordJSON, value)
		})
	}
	if _u.mutation.RecordJSONCleared() {
		_spec.ClearField(extractjob.FieldRecordJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissingRequired(); ok {
		_spec.SetField(extractjob.FieldMissingRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldMissingRequired, value)
		})
	}
	if _u.mutation.MissingRequiredCleared() {
		_spec.ClearField(extractjob.FieldMissingRequired, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(extractjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(extractjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ContractTable,
			Columns: []string{extractjob.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ContractTable,
			Columns: []string{extractjob.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ExtractJobUpdateOne) SetFileID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ExtractJobUpdateOne) SetContractID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableContractID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *ExtractJobUpdateOne) ClearContractID() *ExtractJobUpdateOne {
	_u.mutation.ClearContractID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdateOne) SetFormat(v string) *ExtractJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFormat(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdateOne) SetStartedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdateOne) SetFinishedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdateOne) SetStatus(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStatus(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdateOne) ClearStatus() *ExtractJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdateOne) SetErrorMessage(v string) *ExtractJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *ExtractJobUpdateOne) SetCompleteness(v float32) *ExtractJobUpdateOne {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableCompleteness(v *float32) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *ExtractJobUpdateOne) AddCompleteness(v float32) *ExtractJobUpdateOne {
	_u.mutation.AddCompleteness(v)
	return _u
}

// ClearCompleteness clears the value of the "completeness" field.
func (_u *ExtractJobUpdateOne) ClearCompleteness() *ExtractJobUpdateOne {
	_u.mutation.ClearCompleteness()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractJobUpdateOne) SetNeedsReview(v bool) *ExtractJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableNeedsReview(v *bool) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRecordJSON sets the "record_json" field.
func (_u *ExtractJobUpdateOne) SetRecordJSON(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetRecordJSON(v)
	return _u
}

// AppendRecordJSON appends value to the "record_json" field.
func (_u *ExtractJobUpdateOne) AppendRecordJSON(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendRecordJSON(v)
	return _u
}

// ClearRecordJSON clears the value of the "record_json" field.
func (_u *ExtractJobUpdateOne) ClearRecordJSON() *ExtractJobUpdateOne {
	_u.mutation.ClearRecordJSON()
	return _u
}

// SetMissingRequired sets the "missing_required" field.
func (_u *ExtractJobUpdateOne) SetMissingRequired(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetMissingRequired(v)
	return _u
}

// AppendMissingRequired appends value to the "missing_required" field.
func (_u *ExtractJobUpdateOne) AppendMissingRequired(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendMissingRequired(v)
	return _u
}

// ClearMissingRequired clears the value of the "missing_required" field.
func (_u *ExtractJobUpdateOne) ClearMissingRequired() *ExtractJobUpdateOne {
	_u.mutation.ClearMissingRequired()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractJobUpdateOne) SetModelName(v string) *ExtractJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableModelName(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractJobUpdateOne) ClearModelName() *ExtractJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *ExtractJobUpdateOne) SetModelParams(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *ExtractJobUpdateOne) AppendModelParams(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *ExtractJobUpdateOne) ClearModelParams() *ExtractJobUpdateOne {
	_u.mutation.ClearModelParams()
	return _u
}

// SetFile sets the "file" edge to the ContractFile entity.
func (_u *ExtractJobUpdateOne) SetFile(v *ContractFile) *ExtractJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ExtractJobUpdateOne) SetContract(v *Contract) *ExtractJobUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ContractFile entity.
func (_u *ExtractJobUpdateOne) ClearFile() *ExtractJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ExtractJobUpdateOne) ClearContract() *ExtractJobUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractJob entity.
func (_u *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.file"`)
	}
	return nil
}

func (_u *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
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
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(extractjob.FieldCompleteness, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(extractjob.FieldCompleteness, field.TypeFloat32, value)
	}
	if _u.mutation.CompletenessCleared() {
		_spec.ClearField(extractjob.FieldCompleteness, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecordJSON(); ok {
		_spec.SetField(extractjob.FieldRecordJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldRecordJSON, value)
		})
	}
	if _u.mutation.RecordJSONCleared() {
		_spec.ClearField(extractjob.FieldRecordJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissingRequired(); ok {
		_spec.SetField(extractjob.FieldMissingRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldMissingRequired, value)
		})
	}
	if _u.mutation.MissingRequiredCleared() {
		_spec.ClearField(extractjob.FieldMissingRequired, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(extractjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(extractjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ContractTable,
			Columns: []string{extractjob.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ContractTable,
			Columns: []string{extractjob.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
