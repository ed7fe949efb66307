// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
)

// ReceiptPhoto is the model entity for the ReceiptPhoto schema.
type ReceiptPhoto struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Store holds the value of the "store" field.
	Store string `json:"store,omitempty"`
	// Total holds the value of the "total" field.
	Total *float64 `json:"total,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount int `json:"item_count,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptPhotoQuery when eager-loading is set.
	Edges        ReceiptPhotoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptPhotoEdges holds the relations/edges for other nodes in the graph.
type ReceiptPhotoEdges struct {
	// Expenses holds the value of the expenses edge.
	Expenses []*Expense `json:"expenses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExpensesOrErr returns the Expenses value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptPhotoEdges) ExpensesOrErr() ([]*Expense, error) {
	if e.loadedTypes[0] {
		return e.Expenses, nil
	}
	return nil, &NotLoadedError{edge: "expenses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReceiptPhoto) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiptphoto.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case receiptphoto.FieldItemCount:
			values[i] = new(sql.NullInt64)
		case receiptphoto.FieldStore, receiptphoto.FieldPath, receiptphoto.FieldContentType:
			values[i] = new(sql.NullString)
		case receiptphoto.FieldDate, receiptphoto.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case receiptphoto.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReceiptPhoto fields.
func (_m *ReceiptPhoto) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiptphoto.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiptphoto.FieldStore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store", values[i])
			} else if value.Valid {
				_m.Store = value.String
			}
		case receiptphoto.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = new(float64)
				*_m.Total = value.Float64
			}
		case receiptphoto.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case receiptphoto.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case receiptphoto.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case receiptphoto.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case receiptphoto.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReceiptPhoto.
// This includes values selected through modifiers, order, etc.
func (_m *ReceiptPhoto) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExpenses queries the "expenses" edge of the ReceiptPhoto entity.
func (_m *ReceiptPhoto) QueryExpenses() *ExpenseQuery {
	return NewReceiptPhotoClient(_m.config).QueryExpenses(_m)
}

// Update returns a builder for updating this ReceiptPhoto.
// Note that you need to call ReceiptPhoto.Unwrap() before calling this method if this ReceiptPhoto
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReceiptPhoto) Update() *ReceiptPhotoUpdateOne {
	return NewReceiptPhotoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReceiptPhoto entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReceiptPhoto) Unwrap() *ReceiptPhoto {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReceiptPhoto is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReceiptPhoto) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptPhoto(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("store=")
	builder.WriteString(_m.Store)
	builder.WriteString(", ")
	if v := _m.Total; v != nil {
		builder.WriteString("total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptPhotos is a parsable slice of ReceiptPhoto.
type ReceiptPhotos []*ReceiptPhoto
