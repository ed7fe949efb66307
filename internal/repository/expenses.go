package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/gen/ent"
	"github.com/xpenseai/expense-tracker/gen/ent/expense"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/utils"
)

// ListFilter narrows an expense listing. Nil bounds mean unbounded; an empty
// category means all categories.
type ListFilter struct {
	From     *time.Time
	To       *time.Time
	Category string
}

type ExpenseRepository interface {
	Create(ctx context.Context, exp entity.Expense) (*entity.Expense, error)
	CreateFromDrafts(ctx context.Context, items []entity.DraftItem) ([]entity.Expense, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExpenseRepository(client *ent.Client, logger *slog.Logger) ExpenseRepository {
	return &expenseRepository{client: client, logger: logger}
}

func (r *expenseRepository) Create(ctx context.Context, exp entity.Expense) (*entity.Expense, error) {
	builder := r.client.Expense.Create().
		SetDescription(exp.Description).
		SetAmount(exp.Amount).
		SetDate(exp.Date).
		SetCategory(exp.Category)
	if exp.ReceiptID != nil {
		rid, err := uuid.Parse(*exp.ReceiptID)
		if err != nil {
			return nil, fmt.Errorf("invalid receipt id: %w", err)
		}
		builder = builder.SetReceiptID(rid)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create expense", "description", exp.Description, "error", err)
		return nil, err
	}
	return utils.ToExpense(row), nil
}

// CreateFromDrafts persists reviewed drafts in one transaction; either every
// draft becomes an expense or none do.
func (r *expenseRepository) CreateFromDrafts(ctx context.Context, items []entity.DraftItem) ([]entity.Expense, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	bulk := make([]*ent.ExpenseCreate, 0, len(items))
	for _, it := range items {
		amount, err := strconv.ParseFloat(it.Amount, 64)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("draft %s has unparseable amount %q: %w", it.ID, it.Amount, err)
		}
		builder := tx.Expense.Create().
			SetDescription(it.Description).
			SetAmount(amount).
			SetDate(it.Date).
			SetCategory(it.Category)
		if rid, err := uuid.Parse(it.ReceiptID); err == nil {
			builder = builder.SetReceiptID(rid)
		}
		bulk = append(bulk, builder)
	}

	rows, err := tx.Expense.CreateBulk(bulk...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to commit drafts", "count", len(items), "error", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	out := make([]entity.Expense, len(rows))
	for i, row := range rows {
		out[i] = *utils.ToExpense(row)
	}
	r.logger.Info("committed drafts", "count", len(out))
	return out, nil
}

func (r *expenseRepository) List(ctx context.Context, filter ListFilter) ([]*entity.Expense, error) {
	q := r.client.Expense.Query()
	if filter.From != nil {
		q = q.Where(expense.DateGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(expense.DateLTE(*filter.To))
	}
	if filter.Category != "" {
		q = q.Where(expense.CategoryEQ(filter.Category))
	}
	rows, err := q.Order(ent.Desc(expense.FieldDate), ent.Desc(expense.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list expenses", "error", err)
		return nil, err
	}

	result := make([]*entity.Expense, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExpense(row)
	}
	return result, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Expense.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete expense", "id", id, "error", err)
		return err
	}
	return nil
}

// PeriodRange resolves a named period to inclusive [from, to] day bounds
// anchored at now. Expense dates are stored at local midnight, so both ends
// land on stored values exactly. Weeks start on Monday; "all" means unbounded.
func PeriodRange(period string, now time.Time) (*time.Time, *time.Time, error) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "all":
		return nil, nil, nil
	case "today":
		return &today, &today, nil
	case "week":
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		from := today.AddDate(0, 0, -(weekday - 1))
		return &from, &today, nil
	case "month":
		from := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return &from, &today, nil
	case "6months":
		from := today.AddDate(0, -6, 0)
		return &from, &today, nil
	case "year":
		from := time.Date(y, 1, 1, 0, 0, 0, 0, now.Location())
		return &from, &today, nil
	default:
		return nil, nil, fmt.Errorf("unknown period: %q", period)
	}
}
