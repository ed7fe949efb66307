package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a per-category spending cap with periodic reset bookkeeping.
type Budget struct {
	ID                 uuid.UUID `json:"id"`
	Category           string    `json:"category"`
	Amount             float64   `json:"amount"`
	PeriodType         string    `json:"period_type"` // MONTHLY | WEEKLY | YEARLY | CUSTOM
	CurrentPeriodStart time.Time `json:"current_period_start"`
	NextResetDate      time.Time `json:"next_reset_date"`
	AutoReset          bool      `json:"auto_reset"`
	CreatedAt          time.Time `json:"created_at"`
}
