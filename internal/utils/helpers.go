package utils

import (
	"fmt"

	"github.com/xpenseai/expense-tracker/gen/ent"
	"github.com/xpenseai/expense-tracker/internal/entity"
)

// ToExpense converts an ent row to the domain entity.
func ToExpense(e *ent.Expense) *entity.Expense {
	if e == nil {
		return nil
	}
	out := &entity.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
	}
	if e.ReceiptID != nil {
		s := e.ReceiptID.String()
		out.ReceiptID = &s
	}
	return out
}

// ToReceiptPhoto converts an ent row to the domain entity.
func ToReceiptPhoto(p *ent.ReceiptPhoto) *entity.ReceiptPhoto {
	if p == nil {
		return nil
	}
	total := ""
	if p.Total != nil {
		total = fmt.Sprintf("%.2f", *p.Total)
	}
	return &entity.ReceiptPhoto{
		ID:        p.ID,
		Store:     p.Store,
		Total:     total,
		Date:      p.Date,
		ItemCount: p.ItemCount,
		Path:      p.Path,
		CreatedAt: p.CreatedAt,
	}
}

// ToBudget converts an ent row to the domain entity.
func ToBudget(b *ent.Budget) *entity.Budget {
	if b == nil {
		return nil
	}
	return &entity.Budget{
		ID:                 b.ID,
		Category:           b.Category,
		Amount:             b.Amount,
		PeriodType:         b.PeriodType,
		CurrentPeriodStart: b.CurrentPeriodStart,
		NextResetDate:      b.NextResetDate,
		AutoReset:          b.AutoReset,
		CreatedAt:          b.CreatedAt,
	}
}
