package scan

import (
	"testing"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

func items(amounts ...string) []entity.DraftItem {
	out := make([]entity.DraftItem, len(amounts))
	for i, a := range amounts {
		out[i] = entity.DraftItem{Description: "ITEM", Amount: a}
	}
	return out
}

func TestReconcile(t *testing.T) {
	cases := []struct {
		name      string
		items     []entity.DraftItem
		total     string
		tolerance float64
		wantItems string
		wantMatch bool
	}{
		{
			name:      "exact match",
			items:     items("3.49", "2.99", "1.80"),
			total:     "8.28",
			tolerance: 0.25,
			wantItems: "8.28",
			wantMatch: true,
		},
		{
			name:      "within tolerance",
			items:     items("3.49", "2.99"),
			total:     "6.70",
			tolerance: 0.25,
			wantItems: "6.48",
			wantMatch: true,
		},
		{
			name:      "beyond tolerance",
			items:     items("3.49"),
			total:     "22.47",
			tolerance: 0.25,
			wantItems: "3.49",
			wantMatch: false,
		},
		{
			name:      "boundary is inclusive",
			items:     items("10.00"),
			total:     "10.25",
			tolerance: 0.25,
			wantItems: "10.00",
			wantMatch: true,
		},
		{
			name:      "unreadable receipt total",
			items:     items("3.49"),
			total:     "n/a",
			tolerance: 0.25,
			wantItems: "3.49",
			wantMatch: false,
		},
		{
			name:      "zero summary vs empty items",
			items:     nil,
			total:     "0.00",
			tolerance: 0.25,
			wantItems: "0.00",
			wantMatch: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconcile(tc.items, entity.ReceiptSummary{Total: tc.total}, tc.tolerance)
			if got.ItemsTotal != tc.wantItems {
				t.Errorf("ItemsTotal = %q, want %q", got.ItemsTotal, tc.wantItems)
			}
			if got.Matched != tc.wantMatch {
				t.Errorf("Matched = %v, want %v", got.Matched, tc.wantMatch)
			}
		})
	}
}

func TestSumAmountsSkipsUnparseable(t *testing.T) {
	got := SumAmounts(items("1.10", "junk", "2.20"))
	if got.StringFixed(2) != "3.30" {
		t.Fatalf("got %s, want 3.30", got.StringFixed(2))
	}
}

func TestSumAmountsAvoidsFloatDrift(t *testing.T) {
	// 0.1+0.2 style sums must stay exact
	got := SumAmounts(items("0.10", "0.20", "0.30"))
	if got.StringFixed(2) != "0.60" {
		t.Fatalf("got %s, want 0.60", got.StringFixed(2))
	}
}
