// Code generated by ent, DO NOT EDIT.

package receiptphoto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldID, id))
}

// Store applies equality check predicate on the "store" field. It's identical to StoreEQ.
func Store(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldStore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldTotal, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldDate, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldItemCount, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldPath, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldContentType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldCreatedAt, v))
}

// StoreEQ applies the EQ predicate on the "store" field.
func StoreEQ(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldStore, v))
}

// StoreNEQ applies the NEQ predicate on the "store" field.
func StoreNEQ(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldStore, v))
}

// StoreIn applies the In predicate on the "store" field.
func StoreIn(vs ...string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldStore, vs...))
}

// StoreNotIn applies the NotIn predicate on the "store" field.
func StoreNotIn(vs ...string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldStore, vs...))
}

// StoreGT applies the GT predicate on the "store" field.
func StoreGT(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldStore, v))
}

// StoreGTE applies the GTE predicate on the "store" field.
func StoreGTE(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldStore, v))
}

// StoreLT applies the LT predicate on the "store" field.
func StoreLT(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldStore, v))
}

// StoreLTE applies the LTE predicate on the "store" field.
func StoreLTE(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldStore, v))
}

// StoreContains applies the Contains predicate on the "store" field.
func StoreContains(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldContains(FieldStore, v))
}

// StoreHasPrefix applies the HasPrefix predicate on the "store" field.
func StoreHasPrefix(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldHasPrefix(FieldStore, v))
}

// StoreHasSuffix applies the HasSuffix predicate on the "store" field.
func StoreHasSuffix(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldHasSuffix(FieldStore, v))
}

// StoreIsNil applies the IsNil predicate on the "store" field.
func StoreIsNil() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIsNull(FieldStore))
}

// StoreNotNil applies the NotNil predicate on the "store" field.
func StoreNotNil() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotNull(FieldStore))
}

// StoreEqualFold applies the EqualFold predicate on the "store" field.
func StoreEqualFold(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEqualFold(FieldStore, v))
}

// StoreContainsFold applies the ContainsFold predicate on the "store" field.
func StoreContainsFold(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldContainsFold(FieldStore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldTotal, v))
}

// TotalIsNil applies the IsNil predicate on the "total" field.
func TotalIsNil() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIsNull(FieldTotal))
}

// TotalNotNil applies the NotNil predicate on the "total" field.
func TotalNotNil() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotNull(FieldTotal))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldDate, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldItemCount, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldContainsFold(FieldPath, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeIsNil applies the IsNil predicate on the "content_type" field.
func ContentTypeIsNil() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIsNull(FieldContentType))
}

// ContentTypeNotNil applies the NotNil predicate on the "content_type" field.
func ContentTypeNotNil() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotNull(FieldContentType))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldContainsFold(FieldContentType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExpenses applies the HasEdge predicate on the "expenses" edge.
func HasExpenses() predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExpensesTable, ExpensesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExpensesWith applies the HasEdge predicate on the "expenses" edge with a given conditions (other predicates).
func HasExpensesWith(preds ...predicate.Expense) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(func(s *sql.Selector) {
		step := newExpensesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReceiptPhoto) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReceiptPhoto) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReceiptPhoto) predicate.ReceiptPhoto {
	return predicate.ReceiptPhoto(sql.NotPredicates(p))
}
