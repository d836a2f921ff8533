// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
	"github.com/closingdesk/contract-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractFileUpdate is the builder for updating ContractFile entities.
type ContractFileUpdate struct {
	config
	hooks    []Hook
	mutation *ContractFileMutation
}

// Where appends a list predicates to the ContractFileUpdate builder.
func (_u *ContractFileUpdate) Where(ps ...predicate.ContractFile) *ContractFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ContractFileUpdate) SetSourcePath(v string) *ContractFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ContractFileUpdate) SetNillableSourcePath(v *string) *ContractFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ContractFileUpdate) SetFileExt(v string) *ContractFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ContractFileUpdate) SetNillableFileExt(v *string) *ContractFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ContractFileUpdate) SetContentHash(v []byte) *ContractFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetTemplateFamily sets the "template_family" field.
func (_u *ContractFileUpdate) SetTemplateFamily(v string) *ContractFileUpdate {
	_u.mutation.SetTemplateFamily(v)
	return _u
}

// SetNillableTemplateFamily sets the "template_family" field if the given value is not nil.
func (_u *ContractFileUpdate) SetNillableTemplateFamily(v *string) *ContractFileUpdate {
	if v != nil {
		_u.SetTemplateFamily(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ContractFileUpdate) SetContractID(v uuid.UUID) *ContractFileUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ContractFileUpdate) SetNillableContractID(v *uuid.UUID) *ContractFileUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *ContractFileUpdate) ClearContractID() *ContractFileUpdate {
	_u.mutation.ClearContractID()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ContractFileUpdate) SetUploadedAt(v time.Time) *ContractFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ContractFileUpdate) SetNillableUploadedAt(v *time.Time) *ContractFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractFileUpdate) AddJobIDs(ids ...uuid.UUID) *ContractFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractFileUpdate) AddJobs(v ...*ExtractJob) *ContractFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ContractFileUpdate) SetContract(v *Contract) *ContractFileUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ContractFileMutation object of the builder.
func (_u *ContractFileUpdate) Mutation() *ContractFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractFileUpdate) ClearJobs() *ContractFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *ContractFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractFileUpdate) RemoveJobs(v ...*ExtractJob) *ContractFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ContractFileUpdate) ClearContract() *ContractFileUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractFileUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := contractfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ContractFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := contractfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ContractFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := contractfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ContractFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateFamily(); ok {
		if err := contractfile.TemplateFamilyValidator(v); err != nil {
			return &ValidationError{Name: "template_family", err: fmt.Errorf(`ent: validator failed for field "ContractFile.template_family": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractfile.Table, contractfile.Columns, sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(contractfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(contractfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(contractfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.TemplateFamily(); ok {
		_spec.SetField(contractfile.FieldTemplateFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(contractfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractFileUpdateOne is the builder for updating a single ContractFile entity.
type ContractFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractFileMutation
}

// SetSourcePath sets the "source_path" field.
func (_u *ContractFileUpdateOne) SetSourcePath(v string) *ContractFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ContractFileUpdateOne) SetNillableSourcePath(v *string) *ContractFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ContractFileUpdateOne) SetFileExt(v string) *ContractFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ContractFileUpdateOne) SetNillableFileExt(v *string) *ContractFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ContractFileUpdateOne) SetContentHash(v []byte) *ContractFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetTemplateFamily sets the "template_family" field.
func (_u *ContractFileUpdateOne) SetTemplateFamily(v string) *ContractFileUpdateOne {
	_u.mutation.SetTemplateFamily(v)
	return _u
}

// SetNillableTemplateFamily sets the "template_family" field if the given value is not nil.
func (_u *ContractFileUpdateOne) SetNillableTemplateFamily(v *string) *ContractFileUpdateOne {
	if v != nil {
		_u.SetTemplateFamily(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ContractFileUpdateOne) SetContractID(v uuid.UUID) *ContractFileUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ContractFileUpdateOne) SetNillableContractID(v *uuid.UUID) *ContractFileUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *ContractFileUpdateOne) ClearContractID() *ContractFileUpdateOne {
	_u.mutation.ClearContractID()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ContractFileUpdateOne) SetUploadedAt(v time.Time) *ContractFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ContractFileUpdateOne) SetNillableUploadedAt(v *time.Time) *ContractFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *ContractFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractFileUpdateOne) AddJobs(v ...*ExtractJob) *ContractFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ContractFileUpdateOne) SetContract(v *Contract) *ContractFileUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ContractFileMutation object of the builder.
func (_u *ContractFileUpdateOne) Mutation() *ContractFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractFileUpdateOne) ClearJobs() *ContractFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ContractFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractFileUpdateOne) RemoveJobs(v ...*ExtractJob) *ContractFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ContractFileUpdateOne) ClearContract() *ContractFileUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the ContractFileUpdate builder.
func (_u *ContractFileUpdateOne) Where(ps ...predicate.ContractFile) *ContractFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractFileUpdateOne) Select(field string, fields ...string) *ContractFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContractFile entity.
func (_u *ContractFileUpdateOne) Save(ctx context.Context) (*ContractFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractFileUpdateOne) SaveX(ctx context.Context) *ContractFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractFileUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := contractfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ContractFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := contractfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "ContractFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := contractfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ContractFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateFamily(); ok {
		if err := contractfile.TemplateFamilyValidator(v); err != nil {
			return &ValidationError{Name: "template_family", err: fmt.Errorf(`ent: validator failed for field "ContractFile.template_family": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractFileUpdateOne) sqlSave(ctx context.Context) (_node *ContractFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractfile.Table, contractfile.Columns, sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContractFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contractfile.FieldID)
		for _, f := range fields {
			if !contractfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contractfile.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(contractfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(contractfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(contractfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.TemplateFamily(); ok {
		_spec.SetField(contractfile.FieldTemplateFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(contractfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContractFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
