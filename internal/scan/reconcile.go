package scan

import (
	"github.com/shopspring/decimal"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

// SumAmounts adds draft amounts exactly. Unparseable amounts count as zero;
// they cannot reach here through the normal decode path.
func SumAmounts(items []entity.DraftItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if d, err := decimal.NewFromString(it.Amount); err == nil {
			total = total.Add(d)
		}
	}
	return total
}

// Reconcile compares the drafts (tax line included) against the total printed
// on the receipt. Money stays in decimals end to end; the tolerance converts
// once, at the boundary.
func Reconcile(items []entity.DraftItem, summary entity.ReceiptSummary, tolerance float64) entity.Reconciliation {
	itemsTotal := SumAmounts(items)

	receiptTotal, err := decimal.NewFromString(summary.Total)
	if err != nil {
		receiptTotal = decimal.Zero
	}

	diff := receiptTotal.Sub(itemsTotal).Abs()
	return entity.Reconciliation{
		ItemsTotal:   itemsTotal.StringFixed(2),
		ReceiptTotal: receiptTotal.StringFixed(2),
		Matched:      diff.LessThanOrEqual(decimal.NewFromFloat(tolerance)),
	}
}
