package entity

import (
	"time"

	"github.com/google/uuid"
)

// DraftItem is an extracted, not-yet-persisted candidate expense produced by
// the receipt structuring stage. Drafts live only inside a scan session until
// the caller commits them.
type DraftItem struct {
	ID               uuid.UUID `json:"id"`
	Description      string    `json:"description"`
	Amount           string    `json:"amount"` // decimal string, two places
	Category         string    `json:"category,omitempty"`
	OriginalCategory string    `json:"original_category,omitempty"`
	IsTax            bool      `json:"is_tax"`
	Date             time.Time `json:"date"`
	Source           string    `json:"source"` // extracted store name, or "receipt-scan" when unknown
	ReceiptID        string    `json:"receipt_id,omitempty"`
}

// ReceiptSummary is the store/subtotal/tax/total block printed at the bottom
// of a receipt. Extraction never fails outward: all money fields default to
// "0.00" and store to "".
type ReceiptSummary struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
	Store    string `json:"store"`
}

// ZeroSummary is the total fallback value for a failed summary extraction.
func ZeroSummary() ReceiptSummary {
	return ReceiptSummary{Subtotal: "0.00", Tax: "0.00", Total: "0.00", Store: ""}
}

// Reconciliation compares the sum of draft amounts against the receipt's
// printed total. Derived, never stored.
type Reconciliation struct {
	ItemsTotal   string `json:"items_total"`
	ReceiptTotal string `json:"receipt_total"`
	Matched      bool   `json:"matched"`
}
