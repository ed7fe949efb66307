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
	"github.com/xpenseai/expense-tracker/gen/ent/expense"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
)

// ReceiptPhotoCreate is the builder for creating a ReceiptPhoto entity.
type ReceiptPhotoCreate struct {
	config
	mutation *ReceiptPhotoMutation
	hooks    []Hook
}

// SetStore sets the "store" field.
func (_c *ReceiptPhotoCreate) SetStore(v string) *ReceiptPhotoCreate {
	_c.mutation.SetStore(v)
	return _c
}

// SetNillableStore sets the "store" field if the given value is not nil.
func (_c *ReceiptPhotoCreate) SetNillableStore(v *string) *ReceiptPhotoCreate {
	if v != nil {
		_c.SetStore(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ReceiptPhotoCreate) SetTotal(v float64) *ReceiptPhotoCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *ReceiptPhotoCreate) SetNillableTotal(v *float64) *ReceiptPhotoCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *ReceiptPhotoCreate) SetDate(v time.Time) *ReceiptPhotoCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *ReceiptPhotoCreate) SetItemCount(v int) *ReceiptPhotoCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *ReceiptPhotoCreate) SetNillableItemCount(v *int) *ReceiptPhotoCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetPath sets the "path" field.
func (_c *ReceiptPhotoCreate) SetPath(v string) *ReceiptPhotoCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *ReceiptPhotoCreate) SetContentType(v string) *ReceiptPhotoCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *ReceiptPhotoCreate) SetNillableContentType(v *string) *ReceiptPhotoCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptPhotoCreate) SetCreatedAt(v time.Time) *ReceiptPhotoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptPhotoCreate) SetNillableCreatedAt(v *time.Time) *ReceiptPhotoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptPhotoCreate) SetID(v uuid.UUID) *ReceiptPhotoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptPhotoCreate) SetNillableID(v *uuid.UUID) *ReceiptPhotoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddExpenseIDs adds the "expenses" edge to the Expense entity by IDs.
func (_c *ReceiptPhotoCreate) AddExpenseIDs(ids ...uuid.UUID) *ReceiptPhotoCreate {
	_c.mutation.AddExpenseIDs(ids...)
	return _c
}

// AddExpenses adds the "expenses" edges to the Expense entity.
func (_c *ReceiptPhotoCreate) AddExpenses(v ...*Expense) *ReceiptPhotoCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExpenseIDs(ids...)
}

// Mutation returns the ReceiptPhotoMutation object of the builder.
func (_c *ReceiptPhotoCreate) Mutation() *ReceiptPhotoMutation {
	return _c.mutation
}

// Save creates the ReceiptPhoto in the database.
func (_c *ReceiptPhotoCreate) Save(ctx context.Context) (*ReceiptPhoto, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptPhotoCreate) SaveX(ctx context.Context) *ReceiptPhoto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptPhotoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptPhotoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptPhotoCreate) defaults() {
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := receiptphoto.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receiptphoto.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptphoto.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptPhotoCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "ReceiptPhoto.date"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "ReceiptPhoto.item_count"`)}
	}
	if v, ok := _c.mutation.ItemCount(); ok {
		if err := receiptphoto.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "ReceiptPhoto.item_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "ReceiptPhoto.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := receiptphoto.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "ReceiptPhoto.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReceiptPhoto.created_at"`)}
	}
	return nil
}

func (_c *ReceiptPhotoCreate) sqlSave(ctx context.Context) (*ReceiptPhoto, error) {
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

func (_c *ReceiptPhotoCreate) createSpec() (*ReceiptPhoto, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptPhoto{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptphoto.Table, sqlgraph.NewFieldSpec(receiptphoto.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Store(); ok {
		_spec.SetField(receiptphoto.FieldStore, field.TypeString, value)
		_node.Store = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(receiptphoto.FieldTotal, field.TypeFloat64, value)
		_node.Total = &value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(receiptphoto.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(receiptphoto.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(receiptphoto.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(receiptphoto.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receiptphoto.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptPhotoCreateBulk is the builder for creating many ReceiptPhoto entities in bulk.
type ReceiptPhotoCreateBulk struct {
	config
	err      error
	builders []*ReceiptPhotoCreate
}

// Save creates the ReceiptPhoto entities in the database.
func (_c *ReceiptPhotoCreateBulk) Save(ctx context.Context) ([]*ReceiptPhoto, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptPhoto, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptPhotoMutation)
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
func (_c *ReceiptPhotoCreateBulk) SaveX(ctx context.Context) []*ReceiptPhoto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptPhotoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptPhotoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
