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

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateFamily sets the "template_family" field.
func (_u *ContractUpdate) SetTemplateFamily(v string) *ContractUpdate {
	_u.mutation.SetTemplateFamily(v)
	return _u
}

// SetNillableTemplateFamily sets the "template_family" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTemplateFamily(v *string) *ContractUpdate {
	if v != nil {
		_u.SetTemplateFamily(*v)
	}
	return _u
}

// SetPropertyAddress sets the "property_address" field.
func (_u *ContractUpdate) SetPropertyAddress(v string) *ContractUpdate {
	_u.mutation.SetPropertyAddress(v)
	return _u
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePropertyAddress(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPropertyAddress(*v)
	}
	return _u
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (_u *ContractUpdate) ClearPropertyAddress() *ContractUpdate {
	_u.mutation.ClearPropertyAddress()
	return _u
}

// SetBuyerNames sets the "buyer_names" field.
func (_u *ContractUpdate) SetBuyerNames(v string) *ContractUpdate {
	_u.mutation.SetBuyerNames(v)
	return _u
}

// SetNillableBuyerNames sets the "buyer_names" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableBuyerNames(v *string) *ContractUpdate {
	if v != nil {
		_u.SetBuyerNames(*v)
	}
	return _u
}

// ClearBuyerNames clears the value of the "buyer_names" field.
func (_u *ContractUpdate) ClearBuyerNames() *ContractUpdate {
	_u.mutation.ClearBuyerNames()
	return _u
}

// SetSellerNames sets the "seller_names" field.
func (_u *ContractUpdate) SetSellerNames(v string) *ContractUpdate {
	_u.mutation.SetSellerNames(v)
	return _u
}

// SetNillableSellerNames sets the "seller_names" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSellerNames(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSellerNames(*v)
	}
	return _u
}

// ClearSellerNames clears the value of the "seller_names" field.
func (_u *ContractUpdate) ClearSellerNames() *ContractUpdate {
	_u.mutation.ClearSellerNames()
	return _u
}

// SetPurchasePrice sets the "purchase_price" field.
func (_u *ContractUpdate) SetPurchasePrice(v float64) *ContractUpdate {
	_u.mutation.ResetPurchasePrice()
	_u.mutation.SetPurchasePrice(v)
	return _u
}

// SetNillablePurchasePrice sets the "purchase_price" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePurchasePrice(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetPurchasePrice(*v)
	}
	return _u
}

// AddPurchasePrice adds value to the "purchase_price" field.
func (_u *ContractUpdate) AddPurchasePrice(v float64) *ContractUpdate {
	_u.mutation.AddPurchasePrice(v)
	return _u
}

// ClearPurchasePrice clears the value of the "purchase_price" field.
func (_u *ContractUpdate) ClearPurchasePrice() *ContractUpdate {
	_u.mutation.ClearPurchasePrice()
	return _u
}

// SetCloseOfEscrow sets the "close_of_escrow" field.
func (_u *ContractUpdate) SetCloseOfEscrow(v time.Time) *ContractUpdate {
	_u.mutation.SetCloseOfEscrow(v)
	return _u
}

// SetNillableCloseOfEscrow sets the "close_of_escrow" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCloseOfEscrow(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCloseOfEscrow(*v)
	}
	return _u
}

// ClearCloseOfEscrow clears the value of the "close_of_escrow" field.
func (_u *ContractUpdate) ClearCloseOfEscrow() *ContractUpdate {
	_u.mutation.ClearCloseOfEscrow()
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *ContractUpdate) SetCompleteness(v float32) *ContractUpdate {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCompleteness(v *float32) *ContractUpdate {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *ContractUpdate) AddCompleteness(v float32) *ContractUpdate {
	_u.mutation.AddCompleteness(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ContractUpdate) SetNeedsReview(v bool) *ContractUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableNeedsReview(v *bool) *ContractUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetFieldsJSON sets the "fields_json" field.
func (_u *ContractUpdate) SetFieldsJSON(v json.RawMessage) *ContractUpdate {
	_u.mutation.SetFieldsJSON(v)
	return _u
}

// AppendFieldsJSON appends value to the "fields_json" field.
func (_u *ContractUpdate) AppendFieldsJSON(v json.RawMessage) *ContractUpdate {
	_u.mutation.AppendFieldsJSON(v)
	return _u
}

// ClearFieldsJSON clears the value of the "fields_json" field.
func (_u *ContractUpdate) ClearFieldsJSON() *ContractUpdate {
	_u.mutation.ClearFieldsJSON()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *ContractUpdate) SetRecordText(v string) *ContractUpdate {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableRecordText(v *string) *ContractUpdate {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *ContractUpdate) ClearRecordText() *ContractUpdate {
	_u.mutation.ClearRecordText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the ContractFile entity by IDs.
func (_u *ContractUpdate) AddFileIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the ContractFile entity.
func (_u *ContractUpdate) AddFiles(v ...*ContractFile) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdate) AddJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) AddJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the ContractFile entity.
func (_u *ContractUpdate) ClearFiles() *ContractUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to ContractFile entities by IDs.
func (_u *ContractUpdate) RemoveFileIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to ContractFile entities.
func (_u *ContractUpdate) RemoveFiles(v ...*ContractFile) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) ClearJobs() *ContractUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdate) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdate) RemoveJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.TemplateFamily(); ok {
		if err := contract.TemplateFamilyValidator(v); err != nil {
			return &ValidationError{Name: "template_family", err: fmt.Errorf(`ent: validator failed for field "Contract.template_family": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateFamily(); ok {
		_spec.SetField(contract.FieldTemplateFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyAddress(); ok {
		_spec.SetField(contract.FieldPropertyAddress, field.TypeString, value)
	}
	if _u.mutation.PropertyAddressCleared() {
		_spec.ClearField(contract.FieldPropertyAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerNames(); ok {
		_spec.SetField(contract.FieldBuyerNames, field.TypeString, value)
	}
	if _u.mutation.BuyerNamesCleared() {
		_spec.ClearField(contract.FieldBuyerNames, field.TypeString)
	}
	if value, ok := _u.mutation.SellerNames(); ok {
		_spec.SetField(contract.FieldSellerNames, field.TypeString, value)
	}
	if _u.mutation.SellerNamesCleared() {
		_spec.ClearField(contract.FieldSellerNames, field.TypeString)
	}
	if value, ok := _u.mutation.PurchasePrice(); ok {
		_spec.SetField(contract.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPurchasePrice(); ok {
		_spec.AddField(contract.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if _u.mutation.PurchasePriceCleared() {
		_spec.ClearField(contract.FieldPurchasePrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CloseOfEscrow(); ok {
		_spec.SetField(contract.FieldCloseOfEscrow, field.TypeTime, value)
	}
	if _u.mutation.CloseOfEscrowCleared() {
		_spec.ClearField(contract.FieldCloseOfEscrow, field.TypeTime)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(contract.FieldCompleteness, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(contract.FieldCompleteness, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(contract.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldsJSON(); ok {
		_spec.SetField(contract.FieldFieldsJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldsJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldFieldsJSON, value)
		})
	}
	if _u.mutation.FieldsJSONCleared() {
		_spec.ClearField(contract.FieldFieldsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(contract.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(contract.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetTemplateFamily sets the "template_family" field.
func (_u *ContractUpdateOne) SetTemplateFamily(v string) *ContractUpdateOne {
	_u.mutation.SetTemplateFamily(v)
	return _u
}

// SetNillableTemplateFamily sets the "template_family" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTemplateFamily(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetTemplateFamily(*v)
	}
	return _u
}

// SetPropertyAddress sets the "property_address" field.
func (_u *ContractUpdateOne) SetPropertyAddress(v string) *ContractUpdateOne {
	_u.mutation.SetPropertyAddress(v)
	return _u
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePropertyAddress(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPropertyAddress(*v)
	}
	return _u
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (_u *ContractUpdateOne) ClearPropertyAddress() *ContractUpdateOne {
	_u.mutation.ClearPropertyAddress()
	return _u
}

// SetBuyerNames sets the "buyer_names" field.
func (_u *ContractUpdateOne) SetBuyerNames(v string) *ContractUpdateOne {
	_u.mutation.SetBuyerNames(v)
	return _u
}

// SetNillableBuyerNames sets the "buyer_names" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableBuyerNames(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetBuyerNames(*v)
	}
	return _u
}

// ClearBuyerNames clears the value of the "buyer_names" field.
func (_u *ContractUpdateOne) ClearBuyerNames() *ContractUpdateOne {
	_u.mutation.ClearBuyerNames()
	return _u
}

// SetSellerNames sets the "seller_names" field.
func (_u *ContractUpdateOne) SetSellerNames(v string) *ContractUpdateOne {
	_u.mutation.SetSellerNames(v)
	return _u
}

// SetNillableSellerNames sets the "seller_names" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSellerNames(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSellerNames(*v)
	}
	return _u
}

// ClearSellerNames clears the value of the "seller_names" field.
func (_u *ContractUpdateOne) ClearSellerNames() *ContractUpdateOne {
	_u.mutation.ClearSellerNames()
	return _u
}

// SetPurchasePrice sets the "purchase_price" field.
func (_u *ContractUpdateOne) SetPurchasePrice(v float64) *ContractUpdateOne {
	_u.mutation.ResetPurchasePrice()
	_u.mutation.SetPurchasePrice(v)
	return _u
}

// SetNillablePurchasePrice sets the "purchase_price" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePurchasePrice(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetPurchasePrice(*v)
	}
	return _u
}

// AddPurchasePrice adds value to the "purchase_price" field.
func (_u *ContractUpdateOne) AddPurchasePrice(v float64) *ContractUpdateOne {
	_u.mutation.AddPurchasePrice(v)
	return _u
}

// ClearPurchasePrice clears the value of the "purchase_price" field.
func (_u *ContractUpdateOne) ClearPurchasePrice() *ContractUpdateOne {
	_u.mutation.ClearPurchasePrice()
	return _u
}

// SetCloseOfEscrow sets the "close_of_escrow" field.
func (_u *ContractUpdateOne) SetCloseOfEscrow(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCloseOfEscrow(v)
	return _u
}

// SetNillableCloseOfEscrow sets the "close_of_escrow" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCloseOfEscrow(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCloseOfEscrow(*v)
	}
	return _u
}

// ClearCloseOfEscrow clears the value of the "close_of_escrow" field.
func (_u *ContractUpdateOne) ClearCloseOfEscrow() *ContractUpdateOne {
	_u.mutation.ClearCloseOfEscrow()
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *ContractUpdateOne) SetCompleteness(v float32) *ContractUpdateOne {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCompleteness(v *float32) *ContractUpdateOne {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *ContractUpdateOne) AddCompleteness(v float32) *ContractUpdateOne {
	_u.mutation.AddCompleteness(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ContractUpdateOne) SetNeedsReview(v bool) *ContractUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableNeedsReview(v *bool) *ContractUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetFieldsJSON sets the "fields_json" field.
func (_u *ContractUpdateOne) SetFieldsJSON(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.SetFieldsJSON(v)
	return _u
}

// AppendFieldsJSON appends value to the "fields_json" field.
func (_u *ContractUpdateOne) AppendFieldsJSON(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.AppendFieldsJSON(v)
	return _u
}

// ClearFieldsJSON clears the value of the "fields_json" field.
func (_u *ContractUpdateOne) ClearFieldsJSON() *ContractUpdateOne {
	_u.mutation.ClearFieldsJSON()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *ContractUpdateOne) SetRecordText(v string) *ContractUpdateOne {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableRecordText(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *ContractUpdateOne) ClearRecordText() *ContractUpdateOne {
	_u.mutation.ClearRecordText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the ContractFile entity by IDs.
func (_u *ContractUpdateOne) AddFileIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the ContractFile entity.
func (_u *ContractUpdateOne) AddFiles(v ...*ContractFile) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdateOne) AddJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) AddJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the ContractFile entity.
func (_u *ContractUpdateOne) ClearFiles() *ContractUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to ContractFile entities by IDs.
func (_u *ContractUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to ContractFile entities.
func (_u *ContractUpdateOne) RemoveFiles(v ...*ContractFile) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) ClearJobs() *ContractUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdateOne) RemoveJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.TemplateFamily(); ok {
		if err := contract.TemplateFamilyValidator(v); err != nil {
			return &ValidationError{Name: "template_family", err: fmt.Errorf(`ent: validator failed for field "Contract.template_family": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.TemplateFamily(); ok {
		_spec.SetField(contract.FieldTemplateFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyAddress(); ok {
		_spec.SetField(contract.FieldPropertyAddress, field.TypeString, value)
	}
	if _u.mutation.PropertyAddressCleared() {
		_spec.ClearField(contract.FieldPropertyAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerNames(); ok {
		_spec.SetField(contract.FieldBuyerNames, field.TypeString, value)
	}
	if _u.mutation.BuyerNamesCleared() {
		_spec.ClearField(contract.FieldBuyerNames, field.TypeString)
	}
	if value, ok := _u.mutation.SellerNames(); ok {
		_spec.SetField(contract.FieldSellerNames, field.TypeString, value)
	}
	if _u.mutation.SellerNamesCleared() {
		_spec.ClearField(contract.FieldSellerNames, field.TypeString)
	}
	if value, ok := _u.mutation.PurchasePrice(); ok {
		_spec.SetField(contract.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPurchasePrice(); ok {
		_spec.AddField(contract.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if _u.mutation.PurchasePriceCleared() {
		_spec.ClearField(contract.FieldPurchasePrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CloseOfEscrow(); ok {
		_spec.SetField(contract.FieldCloseOfEscrow, field.TypeTime, value)
	}
	if _u.mutation.CloseOfEscrowCleared() {
		_spec.ClearField(contract.FieldCloseOfEscrow, field.TypeTime)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(contract.FieldCompleteness, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(contract.FieldCompleteness, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(contract.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldsJSON(); ok {
		_spec.SetField(contract.FieldFieldsJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldsJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldFieldsJSON, value)
		})
	}
	if _u.mutation.FieldsJSONCleared() {
		_spec.ClearField(contract.FieldFieldsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(contract.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(contract.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.FilesTable,
			Columns: []string{contract.FilesColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
