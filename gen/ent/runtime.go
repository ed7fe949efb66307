// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/db/ent/schema"
	"github.com/xpenseai/expense-tracker/gen/ent/budget"
	"github.com/xpenseai/expense-tracker/gen/ent/expense"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	budgetFields := schema.Budget{}.Fields()
	_ = budgetFields
	// budgetDescCategory is the schema descriptor for category field.
	budgetDescCategory := budgetFields[1].Descriptor()
	// budget.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	budget.CategoryValidator = budgetDescCategory.Validators[0].(func(string) error)
	// budgetDescAmount is the schema descriptor for amount field.
	budgetDescAmount := budgetFields[2].Descriptor()
	// budget.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	budget.AmountValidator = budgetDescAmount.Validators[0].(func(float64) error)
	// budgetDescPeriodType is the schema descriptor for period_type field.
	budgetDescPeriodType := budgetFields[3].Descriptor()
	// budget.DefaultPeriodType holds the default value on creation for the period_type field.
	budget.DefaultPeriodType = budgetDescPeriodType.Default.(string)
	// budget.PeriodTypeValidator is a validator for the "period_type" field. It is called by the builders before save.
	budget.PeriodTypeValidator = budgetDescPeriodType.Validators[0].(func(string) error)
	// budgetDescAutoReset is the schema descriptor for auto_reset field.
	budgetDescAutoReset := budgetFields[6].Descriptor()
	// budget.DefaultAutoReset holds the default value on creation for the auto_reset field.
	budget.DefaultAutoReset = budgetDescAutoReset.Default.(bool)
	// budgetDescCreatedAt is the schema descriptor for created_at field.
	budgetDescCreatedAt := budgetFields[7].Descriptor()
	// budget.DefaultCreatedAt holds the default value on creation for the created_at field.
	budget.DefaultCreatedAt = budgetDescCreatedAt.Default.(func() time.Time)
	// budgetDescUpdatedAt is the schema descriptor for updated_at field.
	budgetDescUpdatedAt := budgetFields[8].Descriptor()
	// budget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budget.DefaultUpdatedAt = budgetDescUpdatedAt.Default.(func() time.Time)
	// budget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budget.UpdateDefaultUpdatedAt = budgetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// budgetDescID is the schema descriptor for id field.
	budgetDescID := budgetFields[0].Descriptor()
	// budget.DefaultID holds the default value on creation for the id field.
	budget.DefaultID = budgetDescID.Default.(func() uuid.UUID)
	expenseFields := schema.Expense{}.Fields()
	_ = expenseFields
	// expenseDescDescription is the schema descriptor for description field.
	expenseDescDescription := expenseFields[1].Descriptor()
	// expense.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	expense.DescriptionValidator = expenseDescDescription.Validators[0].(func(string) error)
	// expenseDescAmount is the schema descriptor for amount field.
	expenseDescAmount := expenseFields[2].Descriptor()
	// expense.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	expense.AmountValidator = expenseDescAmount.Validators[0].(func(float64) error)
	// expenseDescCategory is the schema descriptor for category field.
	expenseDescCategory := expenseFields[4].Descriptor()
	// expense.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	expense.CategoryValidator = expenseDescCategory.Validators[0].(func(string) error)
	// expenseDescCreatedAt is the schema descriptor for created_at field.
	expenseDescCreatedAt := expenseFields[6].Descriptor()
	// expense.DefaultCreatedAt holds the default value on creation for the created_at field.
	expense.DefaultCreatedAt = expenseDescCreatedAt.Default.(func() time.Time)
	// expenseDescUpdatedAt is the schema descriptor for updated_at field.
	expenseDescUpdatedAt := expenseFields[7].Descriptor()
	// expense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expense.DefaultUpdatedAt = expenseDescUpdatedAt.Default.(func() time.Time)
	// expense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expense.UpdateDefaultUpdatedAt = expenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// expenseDescID is the schema descriptor for id field.
	expenseDescID := expenseFields[0].Descriptor()
	// expense.DefaultID holds the default value on creation for the id field.
	expense.DefaultID = expenseDescID.Default.(func() uuid.UUID)
	receiptphotoFields := schema.ReceiptPhoto{}.Fields()
	_ = receiptphotoFields
	// receiptphotoDescItemCount is the schema descriptor for item_count field.
	receiptphotoDescItemCount := receiptphotoFields[4].Descriptor()
	// receiptphoto.DefaultItemCount holds the default value on creation for the item_count field.
	receiptphoto.DefaultItemCount = receiptphotoDescItemCount.Default.(int)
	// receiptphoto.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	receiptphoto.ItemCountValidator = receiptphotoDescItemCount.Validators[0].(func(int) error)
	// receiptphotoDescPath is the schema descriptor for path field.
	receiptphotoDescPath := receiptphotoFields[5].Descriptor()
	// receiptphoto.PathValidator is a validator for the "path" field. It is called by the builders before save.
	receiptphoto.PathValidator = receiptphotoDescPath.Validators[0].(func(string) error)
	// receiptphotoDescCreatedAt is the schema descriptor for created_at field.
	receiptphotoDescCreatedAt := receiptphotoFields[7].Descriptor()
	// receiptphoto.DefaultCreatedAt holds the default value on creation for the created_at field.
	receiptphoto.DefaultCreatedAt = receiptphotoDescCreatedAt.Default.(func() time.Time)
	// receiptphotoDescID is the schema descriptor for id field.
	receiptphotoDescID := receiptphotoFields[0].Descriptor()
	// receiptphoto.DefaultID holds the default value on creation for the id field.
	receiptphoto.DefaultID = receiptphotoDescID.Default.(func() uuid.UUID)
}
