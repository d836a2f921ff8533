// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/closingdesk/contract-extract/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Contract is the client for interacting with the Contract builders.
	Contract *ContractClient
	// ContractFile is the client for interacting with the ContractFile builders.
	ContractFile *ContractFileClient
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Contract = NewContractClient(c.config)
	c.ContractFile = NewContractFileClient(c.config)
	c.ExtractJob = NewExtractJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Contract:     NewContractClient(cfg),
		ContractFile: NewContractFileClient(cfg),
		ExtractJob:   NewExtractJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Contract:     NewContractClient(cfg),
		ContractFile: NewContractFileClient(cfg),
		ExtractJob:   NewExtractJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Contract.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Contract.Use(hooks...)
	c.ContractFile.Use(hooks...)
	c.ExtractJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Contract.Intercept(interceptors...)
	c.ContractFile.Intercept(interceptors...)
	c.ExtractJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContractMutation:
		return c.Contract.mutate(ctx, m)
	case *ContractFileMutation:
		return c.ContractFile.mutate(ctx, m)
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContractClient is a client for the Contract schema.
type ContractClient struct {
	config
}

// NewContractClient returns a client for the Contract from the given config.
func NewContractClient(c config) *ContractClient {
	return &ContractClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contract.Hooks(f(g(h())))`.
func (c *ContractClient) Use(hooks ...Hook) {
	c.hooks.Contract = append(c.hooks.Contract, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contract.Intercept(f(g(h())))`.
func (c *ContractClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contract = append(c.inters.Contract, interceptors...)
}

// Create returns a builder for creating a Contract entity.
func (c *ContractClient) Create() *ContractCreate {
	mutation := newContractMutation(c.config, OpCreate)
	return &ContractCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contract entities.
func (c *ContractClient) CreateBulk(builders ...*ContractCreate) *ContractCreateBulk {
	return &ContractCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContractClient) MapCreateBulk(slice any, setFunc func(*ContractCreate, int)) *ContractCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContractCreateBulk{err: fmt.Errorf("calling to ContractClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContractCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContractCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contract.
func (c *ContractClient) Update() *ContractUpdate {
	mutation := newContractMutation(c.config, OpUpdate)
	return &ContractUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContractClient) UpdateOne(_m *Contract) *ContractUpdateOne {
	mutation := newContractMutation(c.config, OpUpdateOne, withContract(_m))
	return &ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContractClient) UpdateOneID(id uuid.UUID) *ContractUpdateOne {
	mutation := newContractMutation(c.config, OpUpdateOne, withContractID(id))
	return &ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contract.
func (c *ContractClient) Delete() *ContractDelete {
	mutation := newContractMutation(c.config, OpDelete)
	return &ContractDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContractClient) DeleteOne(_m *Contract) *ContractDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContractClient) DeleteOneID(id uuid.UUID) *ContractDeleteOne {
	builder := c.Delete().Where(contract.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContractDeleteOne{builder}
}

// Query returns a query builder for Contract.
func (c *ContractClient) Query() *ContractQuery {
	return &ContractQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContract},
		inters: c.Interceptors(),
	}
}

// Get returns a Contract entity by its id.
func (c *ContractClient) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return c.Query().Where(contract.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContractClient) GetX(ctx context.Context, id uuid.UUID) *Contract {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiles queries the files edge of a Contract.
func (c *ContractClient) QueryFiles(_m *Contract) *ContractFileQuery {
	query := (&ContractFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(contractfile.Table, contractfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contract.FilesTable, contract.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Contract.
func (c *ContractClient) QueryJobs(_m *Contract) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contract.JobsTable, contract.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContractClient) Hooks() []Hook {
	return c.hooks.Contract
}

// Interceptors returns the client interceptors.
func (c *ContractClient) Interceptors() []Interceptor {
	return c.inters.Contract
}

func (c *ContractClient) mutate(ctx context.Context, m *ContractMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContractCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContractUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContractDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contract mutation op: %q", m.Op())
	}
}

// ContractFileClient is a client for the ContractFile schema.
type ContractFileClient struct {
	config
}

// NewContractFileClient returns a client for the ContractFile from the given config.
func NewContractFileClient(c config) *ContractFileClient {
	return &ContractFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contractfile.Hooks(f(g(h())))`.
func (c *ContractFileClient) Use(hooks ...Hook) {
	c.hooks.ContractFile = append(c.hooks.ContractFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contractfile.Intercept(f(g(h())))`.
func (c *ContractFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContractFile = append(c.inters.ContractFile, interceptors...)
}

// Create returns a builder for creating a ContractFile entity.
func (c *ContractFileClient) Create() *ContractFileCreate {
	mutation := newContractFileMutation(c.config, OpCreate)
	return &ContractFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContractFile entities.
func (c *ContractFileClient) CreateBulk(builders ...*ContractFileCreate) *ContractFileCreateBulk {
	return &ContractFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContractFileClient) MapCreateBulk(slice any, setFunc func(*ContractFileCreate, int)) *ContractFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContractFileCreateBulk{err: fmt.Errorf("calling to ContractFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContractFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContractFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContractFile.
func (c *ContractFileClient) Update() *ContractFileUpdate {
	mutation := newContractFileMutation(c.config, OpUpdate)
	return &ContractFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContractFileClient) UpdateOne(_m *ContractFile) *ContractFileUpdateOne {
	mutation := newContractFileMutation(c.config, OpUpdateOne, withContractFile(_m))
	return &ContractFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContractFileClient) UpdateOneID(id uuid.UUID) *ContractFileUpdateOne {
	mutation := newContractFileMutation(c.config, OpUpdateOne, withContractFileID(id))
	return &ContractFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContractFile.
func (c *ContractFileClient) Delete() *ContractFileDelete {
	mutation := newContractFileMutation(c.config, OpDelete)
	return &ContractFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContractFileClient) DeleteOne(_m *ContractFile) *ContractFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContractFileClient) DeleteOneID(id uuid.UUID) *ContractFileDeleteOne {
	builder := c.Delete().Where(contractfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContractFileDeleteOne{builder}
}

// Query returns a query builder for ContractFile.
func (c *ContractFileClient) Query() *ContractFileQuery {
	return &ContractFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContractFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ContractFile entity by its id.
func (c *ContractFileClient) Get(ctx context.Context, id uuid.UUID) (*ContractFile, error) {
	return c.Query().Where(contractfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContractFileClient) GetX(ctx context.Context, id uuid.UUID) *ContractFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a ContractFile.
func (c *ContractFileClient) QueryJobs(_m *ContractFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contractfile.Table, contractfile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contractfile.JobsTable, contractfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContract queries the contract edge of a ContractFile.
func (c *ContractFileClient) QueryContract(_m *ContractFile) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contractfile.Table, contractfile.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contractfile.ContractTable, contractfile.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContractFileClient) Hooks() []Hook {
	return c.hooks.ContractFile
}

// Interceptors returns the client interceptors.
func (c *ContractFileClient) Interceptors() []Interceptor {
	return c.inters.ContractFile
}

func (c *ContractFileClient) mutate(ctx context.Context, m *ContractFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContractFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContractFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContractFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContractFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContractFile mutation op: %q", m.Op())
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *ContractFileQuery {
	query := (&ContractFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(contractfile.Table, contractfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContract queries the contract edge of a ExtractJob.
func (c *ExtractJobClient) QueryContract(_m *ExtractJob) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.ContractTable, extractjob.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Contract, ContractFile, ExtractJob []ent.Hook
	}
	inters struct {
		Contract, ContractFile, ExtractJob []ent.Interceptor
	}
)
