package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a persisted expense record for data transfer between layers.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"` // user-specified expense date, not creation time
	Category    string    `json:"category"`
	ReceiptID   *string   `json:"receipt_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReceiptPhoto is the archived original image plus extraction metadata.
type ReceiptPhoto struct {
	ID        uuid.UUID `json:"id"`
	Store     string    `json:"store"`
	Total     string    `json:"total"`
	Date      time.Time `json:"date"`
	ItemCount int       `json:"item_count"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}
