// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/gen/ent/budget"
)

// BudgetCreate is the builder for creating a Budget entity.
type BudgetCreate struct {
	config
	mutation *BudgetMutation
	hooks    []Hook
}

// SetCategory sets the "category" field.
func (_c *BudgetCreate) SetCategory(v string) *BudgetCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BudgetCreate) SetAmount(v float64) *BudgetCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetPeriodType sets the "period_type" field.
func (_c *BudgetCreate) SetPeriodType(v string) *BudgetCreate {
	_c.mutation.SetPeriodType(v)
	return _c
}

// SetNillablePeriodType sets the "period_type" field if the given value is not nil.
func (_c *BudgetCreate) SetNillablePeriodType(v *string) *BudgetCreate {
	if v != nil {
		_c.SetPeriodType(*v)
	}
	return _c
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_c *BudgetCreate) SetCurrentPeriodStart(v time.Time) *BudgetCreate {
	_c.mutation.SetCurrentPeriodStart(v)
	return _c
}

// SetNextResetDate sets the "next_reset_date" field.
func (_c *BudgetCreate) SetNextResetDate(v time.Time) *BudgetCreate {
	_c.mutation.SetNextResetDate(v)
	return _c
}

// SetAutoReset sets the "auto_reset" field.
func (_c *BudgetCreate) SetAutoReset(v bool) *BudgetCreate {
	_c.mutation.SetAutoReset(v)
	return _c
}

// SetNillableAutoReset sets the "auto_reset" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableAutoReset(v *bool) *BudgetCreate {
	if v != nil {
		_c.SetAutoReset(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetCreate) SetCreatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableCreatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetCreate) SetUpdatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableUpdatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetCreate) SetID(v uuid.UUID) *BudgetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableID(v *uuid.UUID) *BudgetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BudgetMutation object of the builder.
func (_c *BudgetCreate) Mutation() *BudgetMutation {
	return _c.mutation
}

// Save creates the Budget in the database.
func (_c *BudgetCreate) Save(ctx context.Context) (*Budget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetCreate) SaveX(ctx context.Context) *Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetCreate) defaults() {
	if _, ok := _c.mutation.PeriodType(); !ok {
		v := budget.DefaultPeriodType
		_c.mutation.SetPeriodType(v)
	}
	if _, ok := _c.mutation.AutoReset(); !ok {
		v := budget.DefaultAutoReset
		_c.mutation.SetAutoReset(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budget.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budget.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := budget.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Budget.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := budget.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Budget.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Budget.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := budget.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Budget.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PeriodType(); !ok {
		return &ValidationError{Name: "period_type", err: errors.New(`ent: missing required field "Budget.period_type"`)}
	}
	if v, ok := _c.mutation.PeriodType(); ok {
		if err := budget.PeriodTypeValidator(v); err != nil {
			return &ValidationError{Name: "period_type", err: fmt.Errorf(`ent: validator failed for field "Budget.period_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentPeriodStart(); !ok {
		return &ValidationError{Name: "current_period_start", err: errors.New(`ent: missing required field "Budget.current_period_start"`)}
	}
	if _, ok := _c.mutation.NextResetDate(); !ok {
		return &ValidationError{Name: "next_reset_date", err: errors.New(`ent: missing required field "Budget.next_reset_date"`)}
	}
	if _, ok := _c.mutation.AutoReset(); !ok {
		return &ValidationError{Name: "auto_reset", err: errors.New(`ent: missing required field "Budget.auto_reset"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Budget.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Budget.updated_at"`)}
	}
	return nil
}

func (_c *BudgetCreate) sqlSave(ctx context.Context) (*Budget, error) {
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

func (_c *BudgetCreate) createSpec() (*Budget, *sqlgraph.CreateSpec) {
	var (
		_node = &Budget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budget.Table, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(budget.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(budget.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.PeriodType(); ok {
		_spec.SetField(budget.FieldPeriodType, field.TypeString, value)
		_node.PeriodType = value
	}
	if value, ok := _c.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(budget.FieldCurrentPeriodStart, field.TypeTime, value)
		_node.CurrentPeriodStart = value
	}
	if value, ok := _c.mutation.NextResetDate(); ok {
		_spec.SetField(budget.FieldNextResetDate, field.TypeTime, value)
		_node.NextResetDate = value
	}
	if value, ok := _c.mutation.AutoReset(); ok {
		_spec.SetField(budget.FieldAutoReset, field.TypeBool, value)
		_node.AutoReset = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budget.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BudgetCreateBulk is the builder for creating many Budget entities in bulk.
type BudgetCreateBulk struct {
	config
	err      error
	builders []*BudgetCreate
}

// Save creates the Budget entities in the database.
func (_c *BudgetCreateBulk) Save(ctx context.Context) ([]*Budget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Budget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetMutation)
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
func (_c *BudgetCreateBulk) SaveX(ctx context.Context) []*Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
