package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

// Line-item plausibility bounds. Receipts full of OCR noise produce "items"
// like bare SKU codes and $0.00 rows; these gates keep drafts reviewable.
const (
	MinItemAmount = 0.10
	MaxItemAmount = 100.00
	minDescLen    = 3
)

var (
	reAllDigits  = regexp.MustCompile(`^\d+$`)
	reShortCode  = regexp.MustCompile(`^[a-zA-Z0-9]{1,5}$`)
	excludeWords = []string{"total", "tax", "change"}
)

type rawItem struct {
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
}

// DecodeItems turns a model response into draft line items: extract the code
// fence, parse, then filter each row for plausibility and stamp
// identity/date/provenance. This boundary is total: a response that is not
// JSON, or not an items envelope, degrades to zero items with the raw payload
// logged for diagnosis. The caller decides what an empty draft set means.
func DecodeItems(raw []byte, req ItemsRequest, logger *slog.Logger) []entity.DraftItem {
	if logger == nil {
		logger = slog.Default()
	}
	content := []byte(StripCodeFence(string(raw)))

	// bare-array responses get wrapped into the expected envelope
	if len(content) > 0 && content[0] == '[' {
		content = append(append([]byte(`{"items":`), content...), '}')
	}

	if err := ValidateJSONAgainstSchema(ItemsEnvelopeSchema(), content); err != nil {
		logger.Warn("llm.items.degraded", "error", err, "content", string(raw))
		return nil
	}

	var payload struct {
		Items []rawItem `json:"items"`
	}
	if err := json.Unmarshal(content, &payload); err != nil {
		logger.Warn("llm.items.degraded", "error", err, "content", string(raw))
		return nil
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	source := req.Source
	if source == "" {
		source = "receipt-scan"
	}

	out := make([]entity.DraftItem, 0, len(payload.Items))
	skipped := 0
	for _, it := range payload.Items {
		desc := strings.TrimSpace(it.Description)
		amount, ok := parseAmount(it.Amount)
		if !ok || !plausibleItem(desc, amount) {
			skipped++
			continue
		}
		out = append(out, entity.DraftItem{
			ID:          uuid.New(),
			Description: desc,
			Amount:      fmt.Sprintf("%.2f", amount),
			Date:        date,
			Source:      source,
		})
	}
	if skipped > 0 {
		logger.Debug("llm.items.filtered", "kept", len(out), "skipped", skipped)
	}
	return out
}

func parseAmount(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, isFiniteAmount(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, isFiniteAmount(f)
		}
	}
	return 0, false
}

func isFiniteAmount(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// plausibleItem rejects rows that are OCR artifacts rather than purchases:
// implausible amounts, bare numbers or short codes standing in for a
// description, and summary lines the extractor was told to skip anyway.
func plausibleItem(desc string, amount float64) bool {
	// lower bound is exclusive, upper inclusive: a dime is noise, $100 is not
	if amount <= MinItemAmount || amount > MaxItemAmount {
		return false
	}
	if len(desc) < minDescLen {
		return false
	}
	if reAllDigits.MatchString(desc) || reShortCode.MatchString(desc) {
		return false
	}
	lower := strings.ToLower(desc)
	for _, w := range excludeWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return true
}
