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
	"github.com/xpenseai/expense-tracker/gen/ent/budget"
	"github.com/xpenseai/expense-tracker/gen/ent/predicate"
)

// BudgetUpdate is the builder for updating Budget entities.
type BudgetUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetMutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdate) Where(ps ...predicate.Budget) *BudgetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *BudgetUpdate) SetCategory(v string) *BudgetUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableCategory(v *string) *BudgetUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BudgetUpdate) SetAmount(v float64) *BudgetUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableAmount(v *float64) *BudgetUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BudgetUpdate) AddAmount(v float64) *BudgetUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetPeriodType sets the "period_type" field.
func (_u *BudgetUpdate) SetPeriodType(v string) *BudgetUpdate {
	_u.mutation.SetPeriodType(v)
	return _u
}

// SetNillablePeriodType sets the "period_type" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillablePeriodType(v *string) *BudgetUpdate {
	if v != nil {
		_u.SetPeriodType(*v)
	}
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *BudgetUpdate) SetCurrentPeriodStart(v time.Time) *BudgetUpdate {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableCurrentPeriodStart(v *time.Time) *BudgetUpdate {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// SetNextResetDate sets the "next_reset_date" field.
func (_u *BudgetUpdate) SetNextResetDate(v time.Time) *BudgetUpdate {
	_u.mutation.SetNextResetDate(v)
	return _u
}

// SetNillableNextResetDate sets the "next_reset_date" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableNextResetDate(v *time.Time) *BudgetUpdate {
	if v != nil {
		_u.SetNextResetDate(*v)
	}
	return _u
}

// SetAutoReset sets the "auto_reset" field.
func (_u *BudgetUpdate) SetAutoReset(v bool) *BudgetUpdate {
	_u.mutation.SetAutoReset(v)
	return _u
}

// SetNillableAutoReset sets the "auto_reset" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableAutoReset(v *bool) *BudgetUpdate {
	if v != nil {
		_u.SetAutoReset(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BudgetUpdate) SetCreatedAt(v time.Time) *BudgetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableCreatedAt(v *time.Time) *BudgetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetUpdate) SetUpdatedAt(v time.Time) *BudgetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdate) Mutation() *BudgetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := budget.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Budget.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := budget.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Budget.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PeriodType(); ok {
		if err := budget.PeriodTypeValidator(v); err != nil {
			return &ValidationError{Name: "period_type", err: fmt.Errorf(`ent: validator failed for field "Budget.period_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(budget.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(budget.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(budget.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PeriodType(); ok {
		_spec.SetField(budget.FieldPeriodType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(budget.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextResetDate(); ok {
		_spec.SetField(budget.FieldNextResetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AutoReset(); ok {
		_spec.SetField(budget.FieldAutoReset, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(budget.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetUpdateOne is the builder for updating a single Budget entity.
type BudgetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetMutation
}

// SetCategory sets the "category" field.
func (_u *BudgetUpdateOne) SetCategory(v string) *BudgetUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableCategory(v *string) *BudgetUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BudgetUpdateOne) SetAmount(v float64) *BudgetUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableAmount(v *float64) *BudgetUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BudgetUpdateOne) AddAmount(v float64) *BudgetUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetPeriodType sets the "period_type" field.
func (_u *BudgetUpdateOne) SetPeriodType(v string) *BudgetUpdateOne {
	_u.mutation.SetPeriodType(v)
	return _u
}

// SetNillablePeriodType sets the "period_type" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillablePeriodType(v *string) *BudgetUpdateOne {
	if v != nil {
		_u.SetPeriodType(*v)
	}
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *BudgetUpdateOne) SetCurrentPeriodStart(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableCurrentPeriodStart(v *time.Time) *BudgetUpdateOne {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// SetNextResetDate sets the "next_reset_date" field.
func (_u *BudgetUpdateOne) SetNextResetDate(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetNextResetDate(v)
	return _u
}

// SetNillableNextResetDate sets the "next_reset_date" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableNextResetDate(v *time.Time) *BudgetUpdateOne {
	if v != nil {
		_u.SetNextResetDate(*v)
	}
	return _u
}

// SetAutoReset sets the "auto_reset" field.
func (_u *BudgetUpdateOne) SetAutoReset(v bool) *BudgetUpdateOne {
	_u.mutation.SetAutoReset(v)
	return _u
}

// SetNillableAutoReset sets the "auto_reset" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableAutoReset(v *bool) *BudgetUpdateOne {
	if v != nil {
		_u.SetAutoReset(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BudgetUpdateOne) SetCreatedAt(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableCreatedAt(v *time.Time) *BudgetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetUpdateOne) SetUpdatedAt(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdateOne) Mutation() *BudgetMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdateOne) Where(ps ...predicate.Budget) *BudgetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetUpdateOne) Select(field string, fields ...string) *BudgetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Budget entity.
func (_u *BudgetUpdateOne) Save(ctx context.Context) (*Budget, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdateOne) SaveX(ctx context.Context) *Budget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := budget.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Budget.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := budget.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Budget.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PeriodType(); ok {
		if err := budget.PeriodTypeValidator(v); err != nil {
			return &ValidationError{Name: "period_type", err: fmt.Errorf(`ent: validator failed for field "Budget.period_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetUpdateOne) sqlSave(ctx context.Context) (_node *Budget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Budget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budget.FieldID)
		for _, f := range fields {
			if !budget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budget.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(budget.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(budget.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(budget.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PeriodType(); ok {
		_spec.SetField(budget.FieldPeriodType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(budget.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextResetDate(); ok {
		_spec.SetField(budget.FieldNextResetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AutoReset(); ok {
		_spec.SetField(budget.FieldAutoReset, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(budget.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Budget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
