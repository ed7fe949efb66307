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
	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/gen/ent/expense"
	"github.com/xpenseai/expense-tracker/gen/ent/predicate"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
)

// ReceiptPhotoUpdate is the builder for updating ReceiptPhoto entities.
type ReceiptPhotoUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptPhotoMutation
}

// Where appends a list predicates to the ReceiptPhotoUpdate builder.
func (_u *ReceiptPhotoUpdate) Where(ps ...predicate.ReceiptPhoto) *ReceiptPhotoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStore sets the "store" field.
func (_u *ReceiptPhotoUpdate) SetStore(v string) *ReceiptPhotoUpdate {
	_u.mutation.SetStore(v)
	return _u
}

// SetNillableStore sets the "store" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillableStore(v *string) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetStore(*v)
	}
	return _u
}

// ClearStore clears the value of the "store" field.
func (_u *ReceiptPhotoUpdate) ClearStore() *ReceiptPhotoUpdate {
	_u.mutation.ClearStore()
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptPhotoUpdate) SetTotal(v float64) *ReceiptPhotoUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillableTotal(v *float64) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptPhotoUpdate) AddTotal(v float64) *ReceiptPhotoUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *ReceiptPhotoUpdate) ClearTotal() *ReceiptPhotoUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetDate sets the "date" field.
func (_u *ReceiptPhotoUpdate) SetDate(v time.Time) *ReceiptPhotoUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillableDate(v *time.Time) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ReceiptPhotoUpdate) SetItemCount(v int) *ReceiptPhotoUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillableItemCount(v *int) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ReceiptPhotoUpdate) AddItemCount(v int) *ReceiptPhotoUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetPath sets the "path" field.
func (_u *ReceiptPhotoUpdate) SetPath(v string) *ReceiptPhotoUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillablePath(v *string) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ReceiptPhotoUpdate) SetContentType(v string) *ReceiptPhotoUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillableContentType(v *string) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *ReceiptPhotoUpdate) ClearContentType() *ReceiptPhotoUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptPhotoUpdate) SetCreatedAt(v time.Time) *ReceiptPhotoUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptPhotoUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptPhotoUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddExpenseIDs adds the "expenses" edge to the Expense entity by IDs.
func (_u *ReceiptPhotoUpdate) AddExpenseIDs(ids ...uuid.UUID) *ReceiptPhotoUpdate {
	_u.mutation.AddExpenseIDs(ids...)
	return _u
}

// AddExpenses adds the "expenses" edges to the Expense entity.
func (_u *ReceiptPhotoUpdate) AddExpenses(v ...*Expense) *ReceiptPhotoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpenseIDs(ids...)
}

// Mutation returns the ReceiptPhotoMutation object of the builder.
func (_u *ReceiptPhotoUpdate) Mutation() *ReceiptPhotoMutation {
	return _u.mutation
}

// ClearExpenses clears all "expenses" edges to the Expense entity.
func (_u *ReceiptPhotoUpdate) ClearExpenses() *ReceiptPhotoUpdate {
	_u.mutation.ClearExpenses()
	return _u
}

// RemoveExpenseIDs removes the "expenses" edge to Expense entities by IDs.
func (_u *ReceiptPhotoUpdate) RemoveExpenseIDs(ids ...uuid.UUID) *ReceiptPhotoUpdate {
	_u.mutation.RemoveExpenseIDs(ids...)
	return _u
}

// RemoveExpenses removes "expenses" edges to Expense entities.
func (_u *ReceiptPhotoUpdate) RemoveExpenses(v ...*Expense) *ReceiptPhotoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpenseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptPhotoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptPhotoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptPhotoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptPhotoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptPhotoUpdate) check() error {
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := receiptphoto.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "ReceiptPhoto.item_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := receiptphoto.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "ReceiptPhoto.path": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptPhotoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptphoto.Table, receiptphoto.Columns, sqlgraph.NewFieldSpec(receiptphoto.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Store(); ok {
		_spec.SetField(receiptphoto.FieldStore, field.TypeString, value)
	}
	if _u.mutation.StoreCleared() {
		_spec.ClearField(receiptphoto.FieldStore, field.TypeString)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receiptphoto.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receiptphoto.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(receiptphoto.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(receiptphoto.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(receiptphoto.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(receiptphoto.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(receiptphoto.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(receiptphoto.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(receiptphoto.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receiptphoto.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptphoto.ExpensesTable,
			Columns: []string{receiptphoto.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpensesIDs(); len(nodes) > 0 && !_u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptphoto.ExpensesTable,
			Columns: []string{receiptphoto.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptphoto.ExpensesTable,
			Columns: []string{receiptphoto.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptphoto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptPhotoUpdateOne is the builder for updating a single ReceiptPhoto entity.
type ReceiptPhotoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptPhotoMutation
}

// SetStore sets the "store" field.
func (_u *ReceiptPhotoUpdateOne) SetStore(v string) *ReceiptPhotoUpdateOne {
	_u.mutation.SetStore(v)
	return _u
}

// SetNillableStore sets the "store" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillableStore(v *string) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetStore(*v)
	}
	return _u
}

// ClearStore clears the value of the "store" field.
func (_u *ReceiptPhotoUpdateOne) ClearStore() *ReceiptPhotoUpdateOne {
	_u.mutation.ClearStore()
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptPhotoUpdateOne) SetTotal(v float64) *ReceiptPhotoUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillableTotal(v *float64) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptPhotoUpdateOne) AddTotal(v float64) *ReceiptPhotoUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *ReceiptPhotoUpdateOne) ClearTotal() *ReceiptPhotoUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetDate sets the "date" field.
func (_u *ReceiptPhotoUpdateOne) SetDate(v time.Time) *ReceiptPhotoUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillableDate(v *time.Time) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ReceiptPhotoUpdateOne) SetItemCount(v int) *ReceiptPhotoUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillableItemCount(v *int) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ReceiptPhotoUpdateOne) AddItemCount(v int) *ReceiptPhotoUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetPath sets the "path" field.
func (_u *ReceiptPhotoUpdateOne) SetPath(v string) *ReceiptPhotoUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillablePath(v *string) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ReceiptPhotoUpdateOne) SetContentType(v string) *ReceiptPhotoUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillableContentType(v *string) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *ReceiptPhotoUpdateOne) ClearContentType() *ReceiptPhotoUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptPhotoUpdateOne) SetCreatedAt(v time.Time) *ReceiptPhotoUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptPhotoUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptPhotoUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddExpenseIDs adds the "expenses" edge to the Expense entity by IDs.
func (_u *ReceiptPhotoUpdateOne) AddExpenseIDs(ids ...uuid.UUID) *ReceiptPhotoUpdateOne {
	_u.mutation.AddExpenseIDs(ids...)
	return _u
}

// AddExpenses adds the "expenses" edges to the Expense entity.
func (_u *ReceiptPhotoUpdateOne) AddExpenses(v ...*Expense) *ReceiptPhotoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpenseIDs(ids...)
}

// Mutation returns the ReceiptPhotoMutation object of the builder.
func (_u *ReceiptPhotoUpdateOne) Mutation() *ReceiptPhotoMutation {
	return _u.mutation
}

// ClearExpenses clears all "expenses" edges to the Expense entity.
func (_u *ReceiptPhotoUpdateOne) ClearExpenses() *ReceiptPhotoUpdateOne {
	_u.mutation.ClearExpenses()
	return _u
}

// RemoveExpenseIDs removes the "expenses" edge to Expense entities by IDs.
func (_u *ReceiptPhotoUpdateOne) RemoveExpenseIDs(ids ...uuid.UUID) *ReceiptPhotoUpdateOne {
	_u.mutation.RemoveExpenseIDs(ids...)
	return _u
}

// RemoveExpenses removes "expenses" edges to Expense entities.
func (_u *ReceiptPhotoUpdateOne) RemoveExpenses(v ...*Expense) *ReceiptPhotoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpenseIDs(ids...)
}

// Where appends a list predicates to the ReceiptPhotoUpdate builder.
func (_u *ReceiptPhotoUpdateOne) Where(ps ...predicate.ReceiptPhoto) *ReceiptPhotoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptPhotoUpdateOne) Select(field string, fields ...string) *ReceiptPhotoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptPhoto entity.
func (_u *ReceiptPhotoUpdateOne) Save(ctx context.Context) (*ReceiptPhoto, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptPhotoUpdateOne) SaveX(ctx context.Context) *ReceiptPhoto {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptPhotoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptPhotoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptPhotoUpdateOne) check() error {
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := receiptphoto.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "ReceiptPhoto.item_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := receiptphoto.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "ReceiptPhoto.path": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptPhotoUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptPhoto, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptphoto.Table, receiptphoto.Columns, sqlgraph.NewFieldSpec(receiptphoto.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptPhoto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptphoto.FieldID)
		for _, f := range fields {
			if !receiptphoto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptphoto.FieldID {
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
	if value, ok := _u.mutation.Store(); ok {
		_spec.SetField(receiptphoto.FieldStore, field.TypeString, value)
	}
	if _u.mutation.StoreCleared() {
		_spec.ClearField(receiptphoto.FieldStore, field.TypeString)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receiptphoto.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receiptphoto.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(receiptphoto.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(receiptphoto.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(receiptphoto.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(receiptphoto.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(receiptphoto.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(receiptphoto.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(receiptphoto.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receiptphoto.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptphoto.ExpensesTable,
			Columns: []string{receiptphoto.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpensesIDs(); len(nodes) > 0 && !_u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptphoto.ExpensesTable,
			Columns: []string{receiptphoto.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptphoto.ExpensesTable,
			Columns: []string{receiptphoto.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReceiptPhoto{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptphoto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
