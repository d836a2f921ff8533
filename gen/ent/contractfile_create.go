// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// ContractFileCreate is the builder for creating a ContractFile entity.
type ContractFileCreate struct {
	config
	mutation *ContractFileMutation
	hooks    []Hook
}

// SetSourcePath sets the "source_path" field.
func (_c *ContractFileCreate) SetSourcePath(v string) *ContractFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *ContractFileCreate) SetFileExt(v string) *ContractFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ContractFileCreate) SetContentHash(v []byte) *ContractFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetTemplateFamily sets the "template_family" field.
func (_c *ContractFileCreate) SetTemplateFamily(v string) *ContractFileCreate {
	_c.mutation.SetTemplateFamily(v)
	return _c
}

// SetContractID sets the "contract_id" field.
func (_c *ContractFileCreate) SetContractID(v uuid.UUID) *ContractFileCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_c *ContractFileCreate) SetNillableContractID(v *uuid.UUID) *ContractFileCreate {
	if v != nil {
		_c.SetContractID(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ContractFileCreate) SetUploadedAt(v time.Time) *ContractFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ContractFileCreate) SetNillableUploadedAt(v *time.Time) *ContractFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractFileCreate) SetID(v uuid.UUID) *ContractFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractFileCreate) SetNillableID(v *uuid.UUID) *ContractFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *ContractFileCreate) AddJobIDs(ids ...uuid.UUID) *ContractFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *ContractFileCreate) AddJobs(v ...*ExtractJob) *ContractFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *ContractFileCreate) SetContract(v *Contract) *ContractFileCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the ContractFileMutation object of the builder.
func (_c *ContractFileCreate) Mutation() *ContractFileMutation {
	return _c.mutation
}

// Save creates the ContractFile in the database.
func (_c *ContractFileCreate) Save(ctx context.Context) (*ContractFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractFileCreate) SaveX(ctx context.Context) *ContractFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := contractfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contractfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractFileCreate) check() error {
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "ContractFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := contractfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ContractFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "ContractFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := contractfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ContractFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ContractFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := contractfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ContractFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TemplateFamily(); !ok {
		return &ValidationError{Name: "template_family", err: errors.New(`ent: missing required field "ContractFile.template_family"`)}
	}
	if v, ok := _c.mutation.TemplateFamily(); ok {
		if err := contractfile.TemplateFamilyValidator(v); err != nil {
			return &ValidationError{Name: "template_family", err: fmt.Errorf(`ent: validator failed for field "ContractFile.template_family": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "ContractFile.uploaded_at"`)}
	}
	return nil
}

func (_c *ContractFileCreate) sqlSave(ctx context.Context) (*ContractFile, error) {
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

func (_c *ContractFileCreate) createSpec() (*ContractFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ContractFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contractfile.Table, sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(contractfile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(contractfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(contractfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.TemplateFamily(); ok {
		_spec.SetField(contractfile.FieldTemplateFamily, field.TypeString, value)
		_node.TemplateFamily = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(contractfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contractfile.JobsTable,
			Columns: []string{contractfile.JobsColumn},
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
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractfile.ContractTable,
			Columns: []string{contractfile.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContractID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractFileCreateBulk is the builder for creating many ContractFile entities in bulk.
type ContractFileCreateBulk struct {
	config
	err      error
	builders []*ContractFileCreate
}

// Save creates the ContractFile entities in the database.
func (_c *ContractFileCreateBulk) Save(ctx context.Context) ([]*ContractFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContractFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractFileMutation)
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
func (_c *ContractFileCreateBulk) SaveX(ctx context.Context) []*ContractFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
