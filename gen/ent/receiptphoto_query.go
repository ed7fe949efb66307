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
	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/gen/ent/expense"
	"github.com/xpenseai/expense-tracker/gen/ent/predicate"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
)

// ReceiptPhotoQuery is the builder for querying ReceiptPhoto entities.
type ReceiptPhotoQuery struct {
	config
	ctx          *QueryContext
	order        []receiptphoto.OrderOption
	inters       []Interceptor
	predicates   []predicate.ReceiptPhoto
	withExpenses *ExpenseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReceiptPhotoQuery builder.
func (_q *ReceiptPhotoQuery) Where(ps ...predicate.ReceiptPhoto) *ReceiptPhotoQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ReceiptPhotoQuery) Limit(limit int) *ReceiptPhotoQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ReceiptPhotoQuery) Offset(offset int) *ReceiptPhotoQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ReceiptPhotoQuery) Unique(unique bool) *ReceiptPhotoQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ReceiptPhotoQuery) Order(o ...receiptphoto.OrderOption) *ReceiptPhotoQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExpenses chains the current query on the "expenses" edge.
func (_q *ReceiptPhotoQuery) QueryExpenses() *ExpenseQuery {
	query := (&ExpenseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptphoto.Table, receiptphoto.FieldID, selector),
			sqlgraph.To(expense.Table, expense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receiptphoto.ExpensesTable, receiptphoto.ExpensesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReceiptPhoto entity from the query.
// Returns a *NotFoundError when no ReceiptPhoto was found.
func (_q *ReceiptPhotoQuery) First(ctx context.Context) (*ReceiptPhoto, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{receiptphoto.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) FirstX(ctx context.Context) *ReceiptPhoto {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReceiptPhoto ID from the query.
// Returns a *NotFoundError when no ReceiptPhoto ID was found.
func (_q *ReceiptPhotoQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{receiptphoto.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReceiptPhoto entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReceiptPhoto entity is found.
// Returns a *NotFoundError when no ReceiptPhoto entities are found.
func (_q *ReceiptPhotoQuery) Only(ctx context.Context) (*ReceiptPhoto, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{receiptphoto.Label}
	default:
		return nil, &NotSingularError{receiptphoto.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) OnlyX(ctx context.Context) *ReceiptPhoto {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReceiptPhoto ID in the query.
// Returns a *NotSingularError when more than one ReceiptPhoto ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ReceiptPhotoQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{receiptphoto.Label}
	default:
		err = &NotSingularError{receiptphoto.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReceiptPhotos.
func (_q *ReceiptPhotoQuery) All(ctx context.Context) ([]*ReceiptPhoto, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReceiptPhoto, *ReceiptPhotoQuery]()
	return withInterceptors[[]*ReceiptPhoto](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) AllX(ctx context.Context) []*ReceiptPhoto {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReceiptPhoto IDs.
func (_q *ReceiptPhotoQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(receiptphoto.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ReceiptPhotoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ReceiptPhotoQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ReceiptPhotoQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ReceiptPhotoQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ReceiptPhotoQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReceiptPhotoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ReceiptPhotoQuery) Clone() *ReceiptPhotoQuery {
	if _q == nil {
		return nil
	}
	return &ReceiptPhotoQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]receiptphoto.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ReceiptPhoto{}, _q.predicates...),
		withExpenses: _q.withExpenses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExpenses tells the query-builder to eager-load the nodes that are connected to
// the "expenses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReceiptPhotoQuery) WithExpenses(opts ...func(*ExpenseQuery)) *ReceiptPhotoQuery {
	query := (&ExpenseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExpenses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Store string `json:"store,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReceiptPhoto.Query().
//		GroupBy(receiptphoto.FieldStore).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ReceiptPhotoQuery) GroupBy(field string, fields ...string) *ReceiptPhotoGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReceiptPhotoGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = receiptphoto.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Store string `json:"store,omitempty"`
//	}
//
//	client.ReceiptPhoto.Query().
//		Select(receiptphoto.FieldStore).
//		Scan(ctx, &v)
func (_q *ReceiptPhotoQuery) Select(fields ...string) *ReceiptPhotoSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ReceiptPhotoSelect{ReceiptPhotoQuery: _q}
	sbuild.label = receiptphoto.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReceiptPhotoSelect configured with the given aggregations.
func (_q *ReceiptPhotoQuery) Aggregate(fns ...AggregateFunc) *ReceiptPhotoSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ReceiptPhotoQuery) prepareQuery(ctx context.Context) error {
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
		if !receiptphoto.ValidColumn(f) {
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

func (_q *ReceiptPhotoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReceiptPhoto, error) {
	var (
		nodes       = []*ReceiptPhoto{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withExpenses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReceiptPhoto).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReceiptPhoto{config: _q.config}
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
	if query := _q.withExpenses; query != nil {
		if err := _q.loadExpenses(ctx, query, nodes,
			func(n *ReceiptPhoto) { n.Edges.Expenses = []*Expense{} },
			func(n *ReceiptPhoto, e *Expense) { n.Edges.Expenses = append(n.Edges.Expenses, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ReceiptPhotoQuery) loadExpenses(ctx context.Context, query *ExpenseQuery, nodes []*ReceiptPhoto, init func(*ReceiptPhoto), assign func(*ReceiptPhoto, *Expense)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ReceiptPhoto)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(expense.FieldReceiptID)
	}
	query.Where(predicate.Expense(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(receiptphoto.ExpensesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReceiptID
		if fk == nil {
			return fmt.Errorf(`foreign-key "receipt_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "receipt_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ReceiptPhotoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ReceiptPhotoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(receiptphoto.Table, receiptphoto.Columns, sqlgraph.NewFieldSpec(receiptphoto.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptphoto.FieldID)
		for i := range fields {
			if fields[i] != receiptphoto.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *ReceiptPhotoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(receiptphoto.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = receiptphoto.Columns
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

// ReceiptPhotoGroupBy is the group-by builder for ReceiptPhoto entities.
type ReceiptPhotoGroupBy struct {
	selector
	build *ReceiptPhotoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ReceiptPhotoGroupBy) Aggregate(fns ...AggregateFunc) *ReceiptPhotoGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ReceiptPhotoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReceiptPhotoQuery, *ReceiptPhotoGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ReceiptPhotoGroupBy) sqlScan(ctx context.Context, root *ReceiptPhotoQuery, v any) error {
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

// ReceiptPhotoSelect is the builder for selecting fields of ReceiptPhoto entities.
type ReceiptPhotoSelect struct {
	*ReceiptPhotoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ReceiptPhotoSelect) Aggregate(fns ...AggregateFunc) *ReceiptPhotoSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ReceiptPhotoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReceiptPhotoQuery, *ReceiptPhotoSelect](ctx, _s.ReceiptPhotoQuery, _s, _s.inters, v)
}

func (_s *ReceiptPhotoSelect) sqlScan(ctx context.Context, root *ReceiptPhotoQuery, v any) error {
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
