package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/gen/ent"
	"github.com/xpenseai/expense-tracker/gen/ent/budget"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/utils"
)

type UpsertBudgetRequest struct {
	Category   string
	Amount     float64
	PeriodType string // MONTHLY | WEEKLY | YEARLY | CUSTOM
	AutoReset  bool
}

type BudgetRepository interface {
	Upsert(ctx context.Context, req UpsertBudgetRequest) (*entity.Budget, error)
	List(ctx context.Context) ([]*entity.Budget, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResetDue(ctx context.Context, now time.Time) (int, error)
}

type budgetRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBudgetRepository(client *ent.Client, logger *slog.Logger) BudgetRepository {
	return &budgetRepository{client: client, logger: logger}
}

// Upsert creates the category's budget or replaces its amount and period.
// One budget per category; changing the period restarts it at today.
func (r *budgetRepository) Upsert(ctx context.Context, req UpsertBudgetRequest) (*entity.Budget, error) {
	period := strings.ToUpper(strings.TrimSpace(req.PeriodType))
	if period == "" {
		period = "MONTHLY"
	}
	start := startOfDay(time.Now())
	next, err := NextReset(period, start)
	if err != nil {
		return nil, err
	}

	existing, err := r.client.Budget.Query().
		Where(budget.CategoryEQ(req.Category)).
		Only(ctx)
	switch {
	case err == nil:
		row, err := existing.Update().
			SetAmount(req.Amount).
			SetPeriodType(period).
			SetCurrentPeriodStart(start).
			SetNextResetDate(next).
			SetAutoReset(req.AutoReset).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		return utils.ToBudget(row), nil
	case ent.IsNotFound(err):
		row, err := r.client.Budget.Create().
			SetCategory(req.Category).
			SetAmount(req.Amount).
			SetPeriodType(period).
			SetCurrentPeriodStart(start).
			SetNextResetDate(next).
			SetAutoReset(req.AutoReset).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		return utils.ToBudget(row), nil
	default:
		r.logger.Error("failed to upsert budget", "category", req.Category, "error", err)
		return nil, err
	}
}

func (r *budgetRepository) List(ctx context.Context) ([]*entity.Budget, error) {
	rows, err := r.client.Budget.Query().
		Order(ent.Asc(budget.FieldCategory)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list budgets", "error", err)
		return nil, err
	}
	result := make([]*entity.Budget, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBudget(row)
	}
	return result, nil
}

func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Budget.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete budget", "id", id, "error", err)
		return err
	}
	return nil
}

// ResetDue rolls every auto-reset budget whose reset date has passed into its
// next period. Returns how many budgets rolled over.
func (r *budgetRepository) ResetDue(ctx context.Context, now time.Time) (int, error) {
	due, err := r.client.Budget.Query().
		Where(
			budget.AutoReset(true),
			budget.NextResetDateLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, err
	}

	rolled := 0
	for _, b := range due {
		start := startOfDay(b.NextResetDate)
		next, err := NextReset(b.PeriodType, start)
		if err != nil {
			r.logger.Warn("budget has unresettable period", "id", b.ID, "period", b.PeriodType)
			continue
		}
		// catch up budgets that slept through several periods
		for !next.After(now) {
			start = next
			next, _ = NextReset(b.PeriodType, start)
		}
		if _, err := b.Update().
			SetCurrentPeriodStart(start).
			SetNextResetDate(next).
			Save(ctx); err != nil {
			return rolled, err
		}
		rolled++
	}
	if rolled > 0 {
		r.logger.Info("budgets rolled over", "count", rolled)
	}
	return rolled, nil
}

// NextReset computes the reset date one period after start.
func NextReset(periodType string, start time.Time) (time.Time, error) {
	switch strings.ToUpper(strings.TrimSpace(periodType)) {
	case "WEEKLY":
		return start.AddDate(0, 0, 7), nil
	case "MONTHLY":
		return start.AddDate(0, 1, 0), nil
	case "YEARLY":
		return start.AddDate(1, 0, 0), nil
	case "CUSTOM":
		// custom periods never auto-advance
		return start.AddDate(100, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown period type: %q", periodType)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
