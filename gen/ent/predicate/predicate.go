// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Budget is the predicate function for budget builders.
type Budget func(*sql.Selector)

// Expense is the predicate function for expense builders.
type Expense func(*sql.Selector)

// ReceiptPhoto is the predicate function for receiptphoto builders.
type ReceiptPhoto func(*sql.Selector)
