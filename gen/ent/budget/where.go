// Code generated by ent, DO NOT EDIT.

package budget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/xpenseai/expense-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCategory, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAmount, v))
}

// PeriodType applies equality check predicate on the "period_type" field. It's identical to PeriodTypeEQ.
func PeriodType(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldPeriodType, v))
}

// CurrentPeriodStart applies equality check predicate on the "current_period_start" field. It's identical to CurrentPeriodStartEQ.
func CurrentPeriodStart(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCurrentPeriodStart, v))
}

// NextResetDate applies equality check predicate on the "next_reset_date" field. It's identical to NextResetDateEQ.
func NextResetDate(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldNextResetDate, v))
}

// AutoReset applies equality check predicate on the "auto_reset" field. It's identical to AutoResetEQ.
func AutoReset(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAutoReset, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUpdatedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldCategory, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldAmount, v))
}

// PeriodTypeEQ applies the EQ predicate on the "period_type" field.
func PeriodTypeEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldPeriodType, v))
}

// PeriodTypeNEQ applies the NEQ predicate on the "period_type" field.
func PeriodTypeNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldPeriodType, v))
}

// PeriodTypeIn applies the In predicate on the "period_type" field.
func PeriodTypeIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldPeriodType, vs...))
}

// PeriodTypeNotIn applies the NotIn predicate on the "period_type" field.
func PeriodTypeNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldPeriodType, vs...))
}

// PeriodTypeGT applies the GT predicate on the "period_type" field.
func PeriodTypeGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldPeriodType, v))
}

// PeriodTypeGTE applies the GTE predicate on the "period_type" field.
func PeriodTypeGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldPeriodType, v))
}

// PeriodTypeLT applies the LT predicate on the "period_type" field.
func PeriodTypeLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldPeriodType, v))
}

// PeriodTypeLTE applies the LTE predicate on the "period_type" field.
func PeriodTypeLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldPeriodType, v))
}

// PeriodTypeContains applies the Contains predicate on the "period_type" field.
func PeriodTypeContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldPeriodType, v))
}

// PeriodTypeHasPrefix applies the HasPrefix predicate on the "period_type" field.
func PeriodTypeHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldPeriodType, v))
}

// PeriodTypeHasSuffix applies the HasSuffix predicate on the "period_type" field.
func PeriodTypeHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldPeriodType, v))
}

// PeriodTypeEqualFold applies the EqualFold predicate on the "period_type" field.
func PeriodTypeEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldPeriodType, v))
}

// PeriodTypeContainsFold applies the ContainsFold predicate on the "period_type" field.
func PeriodTypeContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldPeriodType, v))
}

// CurrentPeriodStartEQ applies the EQ predicate on the "current_period_start" field.
func CurrentPeriodStartEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartNEQ applies the NEQ predicate on the "current_period_start" field.
func CurrentPeriodStartNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartIn applies the In predicate on the "current_period_start" field.
func CurrentPeriodStartIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCurrentPeriodStart, vs...))
}

// CurrentPeriodStartNotIn applies the NotIn predicate on the "current_period_start" field.
func CurrentPeriodStartNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCurrentPeriodStart, vs...))
}

// CurrentPeriodStartGT applies the GT predicate on the "current_period_start" field.
func CurrentPeriodStartGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartGTE applies the GTE predicate on the "current_period_start" field.
func CurrentPeriodStartGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartLT applies the LT predicate on the "current_period_start" field.
func CurrentPeriodStartLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCurrentPeriodStart, v))
}

// CurrentPeriodStartLTE applies the LTE predicate on the "current_period_start" field.
func CurrentPeriodStartLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCurrentPeriodStart, v))
}

// NextResetDateEQ applies the EQ predicate on the "next_reset_date" field.
func NextResetDateEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldNextResetDate, v))
}

// NextResetDateNEQ applies the NEQ predicate on the "next_reset_date" field.
func NextResetDateNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldNextResetDate, v))
}

// NextResetDateIn applies the In predicate on the "next_reset_date" field.
func NextResetDateIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldNextResetDate, vs...))
}

// NextResetDateNotIn applies the NotIn predicate on the "next_reset_date" field.
func NextResetDateNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldNextResetDate, vs...))
}

// NextResetDateGT applies the GT predicate on the "next_reset_date" field.
func NextResetDateGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldNextResetDate, v))
}

// NextResetDateGTE applies the GTE predicate on the "next_reset_date" field.
func NextResetDateGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldNextResetDate, v))
}

// NextResetDateLT applies the LT predicate on the "next_reset_date" field.
func NextResetDateLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldNextResetDate, v))
}

// NextResetDateLTE applies the LTE predicate on the "next_reset_date" field.
func NextResetDateLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldNextResetDate, v))
}

// AutoResetEQ applies the EQ predicate on the "auto_reset" field.
func AutoResetEQ(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAutoReset, v))
}

// AutoResetNEQ applies the NEQ predicate on the "auto_reset" field.
func AutoResetNEQ(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAutoReset, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.NotPredicates(p))
}
