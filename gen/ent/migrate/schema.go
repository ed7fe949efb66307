// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BudgetsColumns holds the columns for the "budgets" table.
	BudgetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString, Unique: true},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "period_type", Type: field.TypeString, Default: "MONTHLY"},
		{Name: "current_period_start", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "next_reset_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "auto_reset", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BudgetsTable holds the schema information for the "budgets" table.
	BudgetsTable = &schema.Table{
		Name:       "budgets",
		Columns:    BudgetsColumns,
		PrimaryKey: []*schema.Column{BudgetsColumns[0]},
	}
	// ExpensesColumns holds the columns for the "expenses" table.
	ExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "category", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "receipt_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExpensesTable holds the schema information for the "expenses" table.
	ExpensesTable = &schema.Table{
		Name:       "expenses",
		Columns:    ExpensesColumns,
		PrimaryKey: []*schema.Column{ExpensesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "expenses_receipt_photos_expenses",
				Columns:    []*schema.Column{ExpensesColumns[7]},
				RefColumns: []*schema.Column{ReceiptPhotosColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ReceiptPhotosColumns holds the columns for the "receipt_photos" table.
	ReceiptPhotosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "store", Type: field.TypeString, Nullable: true},
		{Name: "total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "path", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReceiptPhotosTable holds the schema information for the "receipt_photos" table.
	ReceiptPhotosTable = &schema.Table{
		Name:       "receipt_photos",
		Columns:    ReceiptPhotosColumns,
		PrimaryKey: []*schema.Column{ReceiptPhotosColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BudgetsTable,
		ExpensesTable,
		ReceiptPhotosTable,
	}
)

func init() {
	BudgetsTable.Annotation = &entsql.Annotation{
		Table: "budgets",
	}
	ExpensesTable.ForeignKeys[0].RefTable = ReceiptPhotosTable
	ExpensesTable.Annotation = &entsql.Annotation{
		Table: "expenses",
	}
	ReceiptPhotosTable.Annotation = &entsql.Annotation{
		Table: "receipt_photos",
	}
}
