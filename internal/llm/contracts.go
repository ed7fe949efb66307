package llm

import (
	"context"
	"errors"
	"time"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

// Sentinel errors the categorization retry loop treats as fatal. Backends map
// their provider-specific failures onto these; everything else is retryable.
var (
	ErrAuth  = errors.New("llm: invalid api key")
	ErrQuota = errors.New("llm: insufficient quota")
)

// ItemsRequest carries normalized receipt text into structured extraction.
type ItemsRequest struct {
	ReceiptText string
	Date        time.Time // stamped onto every extracted item
	Source      string    // provenance tag, e.g. "receipt-scan"
}

type SummaryRequest struct {
	ReceiptText string
}

type ClassifyRequest struct {
	Description string
	Categories  []string
}

// Structurer turns receipt text into draft line items. Errors are transport
// level only: a response that arrives but cannot be parsed degrades to zero
// items. The raw model output is returned for audit logging.
type Structurer interface {
	StructureItems(ctx context.Context, req ItemsRequest) ([]entity.DraftItem, []byte, error)
}

// Summarizer extracts the receipt's own arithmetic (subtotal/tax/total/store).
// Implementations never fail: any error degrades to entity.ZeroSummary.
type Summarizer interface {
	ExtractSummary(ctx context.Context, req SummaryRequest) (entity.ReceiptSummary, []byte)
}

// Classifier assigns one category name from the provided closed set.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (string, error)
}
