// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
	"github.com/closingdesk/contract-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractFileQuery is the builder for querying ContractFile entities.
type ContractFileQuery struct {
	config
	ctx          *QueryContext
	order        []contractfile.OrderOption
	inters       []Interceptor
	predicates   []predicate.ContractFile
	withJobs     *ExtractJobQuery
	withContract *ContractQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContractFileQuery builder.
func (_q *ContractFileQuery) Where(ps ...predicate.ContractFile) *ContractFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ContractFileQuery) Limit(limit int) *ContractFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ContractFileQuery) Offset(offset int) *ContractFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ContractFileQuery) Unique(unique bool) *ContractFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ContractFileQuery) Order(o ...contractfile.OrderOption) *ContractFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryJobs chains the current query on the "jobs" edge.
func (_q *ContractFileQuery) QueryJobs() *ExtractJobQuery {
	query := (&ExtractJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contractfile.Table, contractfile.FieldID, selector),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contractfile.JobsTable, contractfile.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContract chains the current query on the "contract" edge.
func (_q *ContractFileQuery) QueryContract() *ContractQuery {
	query := (&ContractClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contractfile.Table, contractfile.FieldID, selector),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contractfile.ContractTable, contractfile.ContractColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ContractFile entity from the query.
// Returns a *NotFoundError when no ContractFile was found.
func (_q *ContractFileQuery) First(ctx context.Context) (*ContractFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contractfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ContractFileQuery) FirstX(ctx context.Context) *ContractFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContractFile ID from the query.
// Returns a *NotFoundError when no ContractFile ID was found.
func (_q *ContractFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contractfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ContractFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContractFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContractFile entity is found.
// Returns a *NotFoundError when no ContractFile entities are found.
func (_q *ContractFileQuery) Only(ctx context.Context) (*ContractFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contractfile.Label}
	default:
		return nil, &NotSingularError{contractfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ContractFileQuery) OnlyX(ctx context.Context) *ContractFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContractFile ID in the query.
// Returns a *NotSingularError when more than one ContractFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ContractFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contractfile.Label}
	default:
		err = &NotSingularError{contractfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ContractFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContractFiles.
func (_q *ContractFileQuery) All(ctx context.Context) ([]*ContractFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContractFile, *ContractFileQuery]()
	return withInterceptors[[]*ContractFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ContractFileQuery) AllX(ctx context.Context) []*ContractFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContractFile IDs.
func (_q *ContractFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(contractfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ContractFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ContractFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ContractFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ContractFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ContractFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ContractFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContractFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ContractFileQuery) Clone() *ContractFileQuery {
	if _q == nil {
		return nil
	}
	return &ContractFileQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]contractfile.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ContractFile{}, _q.predicates...),
		withJobs:     _q.withJobs.Clone(),
		withContract: _q.withContract.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ContractFileQuery) WithJobs(opts ...func(*ExtractJobQuery)) *ContractFileQuery {
	query := (&ExtractJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJobs = query
	return _q
}

// WithContract tells the query-builder to eager-load the nodes that are connected to
// the "contract" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ContractFileQuery) WithContract(opts ...func(*ContractQuery)) *ContractFileQuery {
	query := (&ContractClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContract = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SourcePath string `json:"source_path,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ContractFile.Query().
//		GroupBy(contractfile.FieldSourcePath).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ContractFileQuery) GroupBy(field string, fields ...string) *ContractFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContractFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = contractfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SourcePath string `json:"source_path,omitempty"`
//	}
//
//	client.ContractFile.Query().
//		Select(contractfile.FieldSourcePath).
//		Scan(ctx, &v)
func (_q *ContractFileQuery) Select(fields ...string) *ContractFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ContractFileSelect{ContractFileQuery: _q}
	sbuild.label = contractfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContractFileSelect configured with the given aggregations.
func (_q *ContractFileQuery) Aggregate(fns ...AggregateFunc) *ContractFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ContractFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !contractfile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ContractFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContractFile, error) {
	var (
		nodes       = []*ContractFile{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withJobs != nil,
			_q.withContract != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContractFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContractFile{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withJobs; query != nil {
		if err := _q.loadJobs(ctx, query, nodes,
			func(n *ContractFile) { n.Edges.Jobs = []*ExtractJob{} },
			func(n *ContractFile, e *ExtractJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContract; query != nil {
		if err := _q.loadContract(ctx, query, nodes, nil,
			func(n *ContractFile, e *Contract) { n.Edges.Contract = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ContractFileQuery) loadJobs(ctx context.Context, query *ExtractJobQuery, nodes []*ContractFile, init func(*ContractFile), assign func(*ContractFile, *ExtractJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ContractFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractjob.FieldFileID)
	}
	query.Where(predicate.ExtractJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(contractfile.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ContractFileQuery) loadContract(ctx context.Context, query *ContractQuery, nodes []*ContractFile, init func(*ContractFile), assign func(*ContractFile, *Contract)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ContractFile)
	for i := range nodes {
		if nodes[i].ContractID == nil {
			continue
		}
		fk := *nodes[i].ContractID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(contract.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "contract_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ContractFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ContractFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contractfile.Table, contractfile.Columns, sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contractfile.FieldID)
		for i := range fields {
			if fields[i] != contractfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withContract != nil {
			_spec.Node.AddColumnOnce(contractfile.FieldContractID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ContractFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(contractfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = contractfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ContractFileGroupBy is the group-by builder for ContractFile entities.
type ContractFileGroupBy struct {
	selector
	build *ContractFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ContractFileGroupBy) Aggregate(fns ...AggregateFunc) *ContractFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ContractFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContractFileQuery, *ContractFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ContractFileGroupBy) sqlScan(ctx context.Context, root *ContractFileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ContractFileSelect is the builder for selecting fields of ContractFile entities.
type ContractFileSelect struct {
	*ContractFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ContractFileSelect) Aggregate(fns ...AggregateFunc) *ContractFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ContractFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContractFileQuery, *ContractFileSelect](ctx, _s.ContractFileQuery, _s, _s.inters, v)
}

func (_s *ContractFileSelect) sqlScan(ctx context.Context, root *ContractFileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
