// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/biomarker"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/extractjob"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/profile"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/reportfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Biomarker is the client for interacting with the Biomarker builders.
	Biomarker *BiomarkerClient
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// Panel is the client for interacting with the Panel builders.
	Panel *PanelClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// ReportFile is the client for interacting with the ReportFile builders.
	ReportFile *ReportFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Biomarker = NewBiomarkerClient(c.config)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.Panel = NewPanelClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.ReportFile = NewReportFileClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Biomarker:  NewBiomarkerClient(cfg),
		ExtractJob: NewExtractJobClient(cfg),
		Panel:      NewPanelClient(cfg),
		Profile:    NewProfileClient(cfg),
		ReportFile: NewReportFileClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Biomarker:  NewBiomarkerClient(cfg),
		ExtractJob: NewExtractJobClient(cfg),
		Panel:      NewPanelClient(cfg),
		Profile:    NewProfileClient(cfg),
		ReportFile: NewReportFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Biomarker.
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
	c.Biomarker.Use(hooks...)
	c.ExtractJob.Use(hooks...)
	c.Panel.Use(hooks...)
	c.Profile.Use(hooks...)
	c.ReportFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Biomarker.Intercept(interceptors...)
	c.ExtractJob.Intercept(interceptors...)
	c.Panel.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.ReportFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BiomarkerMutation:
		return c.Biomarker.mutate(ctx, m)
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *PanelMutation:
		return c.Panel.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *ReportFileMutation:
		return c.ReportFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BiomarkerClient is a client for the Biomarker schema.
type BiomarkerClient struct {
	config
}

// NewBiomarkerClient returns a client for the Biomarker from the given config.
func NewBiomarkerClient(c config) *BiomarkerClient {
	return &BiomarkerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `biomarker.Hooks(f(g(h())))`.
func (c *BiomarkerClient) Use(hooks ...Hook) {
	c.hooks.Biomarker = append(c.hooks.Biomarker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `biomarker.Intercept(f(g(h())))`.
func (c *BiomarkerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Biomarker = append(c.inters.Biomarker, interceptors...)
}

// Create returns a builder for creating a Biomarker entity.
func (c *BiomarkerClient) Create() *BiomarkerCreate {
	mutation := newBiomarkerMutation(c.config, OpCreate)
	return &BiomarkerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Biomarker entities.
func (c *BiomarkerClient) CreateBulk(builders ...*BiomarkerCreate) *BiomarkerCreateBulk {
	return &BiomarkerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BiomarkerClient) MapCreateBulk(slice any, setFunc func(*BiomarkerCreate, int)) *BiomarkerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BiomarkerCreateBulk{err: fmt.Errorf("calling to BiomarkerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BiomarkerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BiomarkerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Biomarker.
func (c *BiomarkerClient) Update() *BiomarkerUpdate {
	mutation := newBiomarkerMutation(c.config, OpUpdate)
	return &BiomarkerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BiomarkerClient) UpdateOne(_m *Biomarker) *BiomarkerUpdateOne {
	mutation := newBiomarkerMutation(c.config, OpUpdateOne, withBiomarker(_m))
	return &BiomarkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BiomarkerClient) UpdateOneID(id uuid.UUID) *BiomarkerUpdateOne {
	mutation := newBiomarkerMutation(c.config, OpUpdateOne, withBiomarkerID(id))
	return &BiomarkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Biomarker.
func (c *BiomarkerClient) Delete() *BiomarkerDelete {
	mutation := newBiomarkerMutation(c.config, OpDelete)
	return &BiomarkerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BiomarkerClient) DeleteOne(_m *Biomarker) *BiomarkerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BiomarkerClient) DeleteOneID(id uuid.UUID) *BiomarkerDeleteOne {
	builder := c.Delete().Where(biomarker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BiomarkerDeleteOne{builder}
}

// Query returns a query builder for Biomarker.
func (c *BiomarkerClient) Query() *BiomarkerQuery {
	return &BiomarkerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBiomarker},
		inters: c.Interceptors(),
	}
}

// Get returns a Biomarker entity by its id.
func (c *BiomarkerClient) Get(ctx context.Context, id uuid.UUID) (*Biomarker, error) {
	return c.Query().Where(biomarker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BiomarkerClient) GetX(ctx context.Context, id uuid.UUID) *Biomarker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPanel queries the panel edge of a Biomarker.
func (c *BiomarkerClient) QueryPanel(_m *Biomarker) *PanelQuery {
	query := (&PanelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(biomarker.Table, biomarker.FieldID, id),
			sqlgraph.To(panel.Table, panel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, biomarker.PanelTable, biomarker.PanelColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BiomarkerClient) Hooks() []Hook {
	return c.hooks.Biomarker
}

// Interceptors returns the client interceptors.
func (c *BiomarkerClient) Interceptors() []Interceptor {
	return c.inters.Biomarker
}

func (c *BiomarkerClient) mutate(ctx context.Context, m *BiomarkerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BiomarkerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BiomarkerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BiomarkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BiomarkerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Biomarker mutation op: %q", m.Op())
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
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProfile queries the profile edge of a ExtractJob.
func (c *ExtractJobClient) QueryProfile(_m *ExtractJob) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.ProfileTable, extractjob.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPanel queries the panel edge of a ExtractJob.
func (c *ExtractJobClient) QueryPanel(_m *ExtractJob) *PanelQuery {
	query := (&PanelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(panel.Table, panel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.PanelTable, extractjob.PanelColumn),
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

// PanelClient is a client for the Panel schema.
type PanelClient struct {
	config
}

// NewPanelClient returns a client for the Panel from the given config.
func NewPanelClient(c config) *PanelClient {
	return &PanelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `panel.Hooks(f(g(h())))`.
func (c *PanelClient) Use(hooks ...Hook) {
	c.hooks.Panel = append(c.hooks.Panel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `panel.Intercept(f(g(h())))`.
func (c *PanelClient) Intercept(interceptors ...Interceptor) {
	c.inters.Panel = append(c.inters.Panel, interceptors...)
}

// Create returns a builder for creating a Panel entity.
func (c *PanelClient) Create() *PanelCreate {
	mutation := newPanelMutation(c.config, OpCreate)
	return &PanelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Panel entities.
func (c *PanelClient) CreateBulk(builders ...*PanelCreate) *PanelCreateBulk {
	return &PanelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PanelClient) MapCreateBulk(slice any, setFunc func(*PanelCreate, int)) *PanelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PanelCreateBulk{err: fmt.Errorf("calling to PanelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PanelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PanelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Panel.
func (c *PanelClient) Update() *PanelUpdate {
	mutation := newPanelMutation(c.config, OpUpdate)
	return &PanelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PanelClient) UpdateOne(_m *Panel) *PanelUpdateOne {
	mutation := newPanelMutation(c.config, OpUpdateOne, withPanel(_m))
	return &PanelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PanelClient) UpdateOneID(id uuid.UUID) *PanelUpdateOne {
	mutation := newPanelMutation(c.config, OpUpdateOne, withPanelID(id))
	return &PanelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Panel.
func (c *PanelClient) Delete() *PanelDelete {
	mutation := newPanelMutation(c.config, OpDelete)
	return &PanelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PanelClient) DeleteOne(_m *Panel) *PanelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PanelClient) DeleteOneID(id uuid.UUID) *PanelDeleteOne {
	builder := c.Delete().Where(panel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PanelDeleteOne{builder}
}

// Query returns a query builder for Panel.
func (c *PanelClient) Query() *PanelQuery {
	return &PanelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePanel},
		inters: c.Interceptors(),
	}
}

// Get returns a Panel entity by its id.
func (c *PanelClient) Get(ctx context.Context, id uuid.UUID) (*Panel, error) {
	return c.Query().Where(panel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PanelClient) GetX(ctx context.Context, id uuid.UUID) *Panel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a Panel.
func (c *PanelClient) QueryProfile(_m *Panel) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(panel.Table, panel.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, panel.ProfileTable, panel.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBiomarkers queries the biomarkers edge of a Panel.
func (c *PanelClient) QueryBiomarkers(_m *Panel) *BiomarkerQuery {
	query := (&BiomarkerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(panel.Table, panel.FieldID, id),
			sqlgraph.To(biomarker.Table, biomarker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, panel.BiomarkersTable, panel.BiomarkersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Panel.
func (c *PanelClient) QueryJobs(_m *Panel) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(panel.Table, panel.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, panel.JobsTable, panel.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PanelClient) Hooks() []Hook {
	return c.hooks.Panel
}

// Interceptors returns the client interceptors.
func (c *PanelClient) Interceptors() []Interceptor {
	return c.inters.Panel
}

func (c *PanelClient) mutate(ctx context.Context, m *PanelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PanelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PanelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PanelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PanelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Panel mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPanels queries the panels edge of a Profile.
func (c *ProfileClient) QueryPanels(_m *Profile) *PanelQuery {
	query := (&PanelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(panel.Table, panel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.PanelsTable, profile.PanelsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Profile.
func (c *ProfileClient) QueryFiles(_m *Profile) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.FilesTable, profile.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Profile.
func (c *ProfileClient) QueryJobs(_m *Profile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.JobsTable, profile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// ReportFileClient is a client for the ReportFile schema.
type ReportFileClient struct {
	config
}

// NewReportFileClient returns a client for the ReportFile from the given config.
func NewReportFileClient(c config) *ReportFileClient {
	return &ReportFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportfile.Hooks(f(g(h())))`.
func (c *ReportFileClient) Use(hooks ...Hook) {
	c.hooks.ReportFile = append(c.hooks.ReportFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportfile.Intercept(f(g(h())))`.
func (c *ReportFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportFile = append(c.inters.ReportFile, interceptors...)
}

// Create returns a builder for creating a ReportFile entity.
func (c *ReportFileClient) Create() *ReportFileCreate {
	mutation := newReportFileMutation(c.config, OpCreate)
	return &ReportFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportFile entities.
func (c *ReportFileClient) CreateBulk(builders ...*ReportFileCreate) *ReportFileCreateBulk {
	return &ReportFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportFileClient) MapCreateBulk(slice any, setFunc func(*ReportFileCreate, int)) *ReportFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportFileCreateBulk{err: fmt.Errorf("calling to ReportFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportFile.
func (c *ReportFileClient) Update() *ReportFileUpdate {
	mutation := newReportFileMutation(c.config, OpUpdate)
	return &ReportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportFileClient) UpdateOne(_m *ReportFile) *ReportFileUpdateOne {
	mutation := newReportFileMutation(c.config, OpUpdateOne, withReportFile(_m))
	return &ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportFileClient) UpdateOneID(id uuid.UUID) *ReportFileUpdateOne {
	mutation := newReportFileMutation(c.config, OpUpdateOne, withReportFileID(id))
	return &ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportFile.
func (c *ReportFileClient) Delete() *ReportFileDelete {
	mutation := newReportFileMutation(c.config, OpDelete)
	return &ReportFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportFileClient) DeleteOne(_m *ReportFile) *ReportFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportFileClient) DeleteOneID(id uuid.UUID) *ReportFileDeleteOne {
	builder := c.Delete().Where(reportfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportFileDeleteOne{builder}
}

// Query returns a query builder for ReportFile.
func (c *ReportFileClient) Query() *ReportFileQuery {
	return &ReportFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportFile entity by its id.
func (c *ReportFileClient) Get(ctx context.Context, id uuid.UUID) (*ReportFile, error) {
	return c.Query().Where(reportfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportFileClient) GetX(ctx context.Context, id uuid.UUID) *ReportFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a ReportFile.
func (c *ReportFileClient) QueryProfile(_m *ReportFile) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportfile.ProfileTable, reportfile.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a ReportFile.
func (c *ReportFileClient) QueryJobs(_m *ReportFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reportfile.JobsTable, reportfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportFileClient) Hooks() []Hook {
	return c.hooks.ReportFile
}

// Interceptors returns the client interceptors.
func (c *ReportFileClient) Interceptors() []Interceptor {
	return c.inters.ReportFile
}

func (c *ReportFileClient) mutate(ctx context.Context, m *ReportFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Biomarker, ExtractJob, Panel, Profile, ReportFile []ent.Hook
	}
	inters struct {
		Biomarker, ExtractJob, Panel, Profile, ReportFile []ent.Interceptor
	}
)
