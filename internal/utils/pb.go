package utils

import (
	"fmt"
	"time"

	xpensepb "github.com/xpenseai/expense-tracker/gen/proto/xpense/v1"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/scan"
)

// ParseYMD parses a YYYY-MM-DD date.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func ToPBExpense(e *entity.Expense) *xpensepb.Expense {
	if e == nil {
		return nil
	}
	out := &xpensepb.Expense{
		Id:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		Category:    e.Category,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339Nano),
	}
	if e.ReceiptID != nil {
		out.ReceiptId = *e.ReceiptID
	}
	return out
}

func ToPBBudget(b *entity.Budget) *xpensepb.Budget {
	if b == nil {
		return nil
	}
	return &xpensepb.Budget{
		Id:                 b.ID.String(),
		Category:           b.Category,
		Amount:             b.Amount,
		PeriodType:         b.PeriodType,
		CurrentPeriodStart: b.CurrentPeriodStart.Format("2006-01-02"),
		NextResetDate:      b.NextResetDate.Format("2006-01-02"),
		AutoReset:          b.AutoReset,
	}
}

func ToPBDraftItem(it entity.DraftItem) *xpensepb.DraftItem {
	return &xpensepb.DraftItem{
		Id:               it.ID.String(),
		Description:      it.Description,
		Amount:           it.Amount,
		Category:         it.Category,
		OriginalCategory: it.OriginalCategory,
		IsTax:            it.IsTax,
		Date:             it.Date.Format("2006-01-02"),
		ReceiptId:        it.ReceiptID,
	}
}

func ToPBScanResult(res scan.Result) *xpensepb.ScanResult {
	items := make([]*xpensepb.DraftItem, len(res.Items))
	for i, it := range res.Items {
		items[i] = ToPBDraftItem(it)
	}
	return &xpensepb.ScanResult{
		SessionId: res.SessionID,
		Stage:     string(res.Stage),
		Items:     items,
		Summary: &xpensepb.ReceiptSummary{
			Subtotal: res.Summary.Subtotal,
			Tax:      res.Summary.Tax,
			Total:    res.Summary.Total,
			Store:    res.Summary.Store,
		},
		Reconciliation: &xpensepb.Reconciliation{
			ItemsTotal:   res.Recon.ItemsTotal,
			ReceiptTotal: res.Recon.ReceiptTotal,
			Matched:      res.Recon.Matched,
		},
		ReceiptId: res.ReceiptID,
	}
}
