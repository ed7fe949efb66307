package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

type rawSummary struct {
	Subtotal json.RawMessage `json:"subtotal"`
	Tax      json.RawMessage `json:"tax"`
	Total    json.RawMessage `json:"total"`
	Store    string          `json:"store"`
}

// DecodeSummary is total: whatever the model returned, the caller gets a
// usable summary. Reconciliation against the zero summary simply reports a
// mismatch, which is the honest outcome when the receipt's own arithmetic
// could not be read.
func DecodeSummary(raw []byte, logger *slog.Logger) entity.ReceiptSummary {
	if logger == nil {
		logger = slog.Default()
	}
	content := StripCodeFence(string(raw))

	var rs rawSummary
	if err := json.Unmarshal([]byte(content), &rs); err != nil {
		logger.Warn("llm.summary.decode_failed", "error", err, "raw_bytes", len(raw))
		return entity.ZeroSummary()
	}

	out := entity.ZeroSummary()
	out.Subtotal = moneyOrZero(rs.Subtotal)
	out.Tax = moneyOrZero(rs.Tax)
	out.Total = moneyOrZero(rs.Total)
	out.Store = strings.TrimSpace(rs.Store)
	return out
}

// moneyOrZero coerces a number or numeric string to a two-decimal amount,
// falling back to "0.00".
func moneyOrZero(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "0.00"
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return fmt.Sprintf("%.2f", f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fmt.Sprintf("%.2f", f)
		}
	}
	return "0.00"
}
