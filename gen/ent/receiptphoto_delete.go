// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/xpenseai/expense-tracker/gen/ent/predicate"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
)

// ReceiptPhotoDelete is the builder for deleting a ReceiptPhoto entity.
type ReceiptPhotoDelete struct {
	config
	hooks    []Hook
	mutation *ReceiptPhotoMutation
}

// Where appends a list predicates to the ReceiptPhotoDelete builder.
func (_d *ReceiptPhotoDelete) Where(ps ...predicate.ReceiptPhoto) *ReceiptPhotoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReceiptPhotoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReceiptPhotoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReceiptPhotoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(receiptphoto.Table, sqlgraph.NewFieldSpec(receiptphoto.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReceiptPhotoDeleteOne is the builder for deleting a single ReceiptPhoto entity.
type ReceiptPhotoDeleteOne struct {
	_d *ReceiptPhotoDelete
}

// Where appends a list predicates to the ReceiptPhotoDelete builder.
func (_d *ReceiptPhotoDeleteOne) Where(ps ...predicate.ReceiptPhoto) *ReceiptPhotoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReceiptPhotoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{receiptphoto.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReceiptPhotoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
