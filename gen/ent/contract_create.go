// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
	"github.com/google/uuid"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetTemplateFamily sets the "template_family" field.
func (_c *ContractCreate) SetTemplateFamily(v string) *ContractCreate {
	_c.mutation.SetTemplateFamily(v)
	return _c
}

// SetPropertyAddress sets the "property_address" field.
func (_c *ContractCreate) SetPropertyAddress(v string) *ContractCreate {
	_c.mutation.SetPropertyAddress(v)
	return _c
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_c *ContractCreate) SetNillablePropertyAddress(v *string) *ContractCreate {
	if v != nil {
		_c.SetPropertyAddress(*v)
	}
	return _c
}

// SetBuyerNames sets the "buyer_names" field.
func (_c *ContractCreate) SetBuyerNames(v string) *ContractCreate {
	_c.mutation.SetBuyerNames(v)
	return _c
}

// SetNillableBuyerNames sets the "buyer_names" field if the given value is not nil.
func (_c *ContractCreate) SetNillableBuyerNames(v *string) *ContractCreate {
	if v != nil {
		_c.SetBuyerNames(*v)
	}
	return _c
}

// SetSellerNames sets the "seller_names" field.
func (_c *ContractCreate) SetSellerNames(v string) *ContractCreate {
	_c.mutation.SetSellerNames(v)
	return _c
}

// SetNillableSellerNames sets the "seller_names" field if the given value is not nil.
func (_c *ContractCreate) SetNillableSellerNames(v *string) *ContractCreate {
	if v != nil {
		_c.SetSellerNames(*v)
	}
	return _c
}

// SetPurchasePrice sets the "purchase_price" field.
func (_c *ContractCreate) SetPurchasePrice(v float64) *ContractCreate {
	_c.mutation.SetPurchasePrice(v)
	return _c
}

// SetNillablePurchasePrice sets the "purchase_price" field if the given value is not nil.
func (_c *ContractCreate) SetNillablePurchasePrice(v *float64) *ContractCreate {
	if v != nil {
		_c.SetPurchasePrice(*v)
	}
	return _c
}

// SetCloseOfEscrow sets the "close_of_escrow" field.
func (_c *ContractCreate) SetCloseOfEscrow(v time.Time) *ContractCreate {
	_c.mutation.SetCloseOfEscrow(v)
	return _c
}

// SetNillableCloseOfEscrow sets the "close_of_escrow" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCloseOfEscrow(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCloseOfEscrow(*v)
	}
	return _c
}

// SetCompleteness sets the "completeness" field.
func (_c *ContractCreate) SetCompleteness(v float32) *ContractCreate {
	_c.mutation.SetCompleteness(v)
	return _c
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCompleteness(v *float32) *ContractCreate {
	if v != nil {
		_c.SetCompleteness(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ContractCreate) SetNeedsReview(v bool) *ContractCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ContractCreate) SetNillableNeedsReview(v *bool) *ContractCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetFieldsJSON sets the "fields_json" field.
func (_c *ContractCreate) SetFieldsJSON(v json.RawMessage) *ContractCreate {
	_c.mutation.SetFieldsJSON(v)
	return _c
}

// SetRecordText sets the "record_text" field.
func (_c *ContractCreate) SetRecordText(v string) *ContractCreate {
	_c.mutation.SetRecordText(v)
	return _c
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_c *ContractCreate) SetNillableRecordText(v *string) *ContractCreate {
	if v != nil {
		_c.SetRecordText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFileIDs adds the "files" edge to the ContractFile entity by IDs.
func (_c *ContractCreate) AddFileIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the ContractFile entity.
func (_c *ContractCreate) AddFiles(v ...*ContractFile) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *ContractCreate) AddJobIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *ContractCreate) AddJobs(v ...*ExtractJob) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.Completeness(); !ok {
		v := contract.DefaultCompleteness
		_c.mutation.SetCompleteness(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := contract.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.TemplateFamily(); !ok {
		return &ValidationError{Name: "template_family", err: errors.New(`ent: missing required field "Contract.template_family"`)}
	}
	if v, ok := _c.mutation.TemplateFamily(); ok {
		if err := contract.TemplateFamilyValidator(v); err != nil {
			return &ValidationError{Name: "template_family", err: fmt.Errorf(`ent: validator failed for field "Contract.template_family": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completeness(); !ok {
		return &ValidationError{Name: "completeness", err: errors.New(`ent: missing required field "Contract.completeness"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Contract.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TemplateFamily(); ok {
		_spec.SetField(contract.FieldTemplateFamily, field.TypeString, value)
		_node.TemplateFamily = value
	}
	if value, ok := _c.mutation.PropertyAddress(); ok {
		_spec.SetField(contract.FieldPropertyAddress, field.TypeString, value)
		_node.PropertyAddress = value
	}
	if value, ok := _c.mutation.BuyerNames(); ok {
		_spec.SetField(contract.FieldBuyerNames, field.TypeString, value)
		_node.BuyerNames = value
	}
	if value, ok := _c.mutation.SellerNames(); ok {
		_spec.SetField(contract.FieldSellerNames, field.TypeString, value)
		_node.SellerNames = value
	}
	if value, ok := _c.mutation.PurchasePrice(); ok {
		_spec.SetField(contract.FieldPurchasePrice, field.TypeFloat64, value)
		_node.PurchasePrice = &value
	}
	if value, ok := _c.mutation.CloseOfEscrow(); ok {
		_spec.SetField(contract.FieldCloseOfEscrow, field.TypeTime, value)
		_node.CloseOfEscrow = &value
	}
	if value, ok := _c.mutation.Completeness(); ok {
		_spec.SetField(contract.FieldCompleteness, field.TypeFloat32, value)
		_node.Completeness = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(contract.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.FieldsJSON(); ok {
		_spec.SetField(contract.FieldFieldsJSON, field.TypeJSON, value)
		_node.FieldsJSON = value
	}
	if value, ok := _c.mutation.RecordText(); ok {
		_spec.SetField(contract.FieldRecordText, field.TypeString, value)
		_node.RecordText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
