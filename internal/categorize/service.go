package categorize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/llm"
)

type Config struct {
	Every        time.Duration // minimum spacing between classify calls
	Retries      int           // attempts per item
	RetryBase    time.Duration // backoff unit, doubled each failed attempt
	TaxThreshold float64       // tax amounts at or below this get no synthesized line
}

func (c *Config) defaults() {
	if c.Every <= 0 {
		c.Every = 500 * time.Millisecond
	}
	if c.Retries <= 0 {
		c.Retries = 3
	}
	if c.RetryBase <= 0 {
		c.RetryBase = time.Second
	}
	if c.TaxThreshold <= 0 {
		c.TaxThreshold = 0.01
	}
}

// Service assigns a category to each draft item, one model call at a time.
// Calls are paced by a rate limiter so a 15-item receipt doesn't trip
// provider throttling.
type Service struct {
	classifier llm.Classifier
	cfg        Config
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func New(classifier llm.Classifier, cfg Config, logger *slog.Logger) *Service {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		classifier: classifier,
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Every(cfg.Every), 1),
		logger:     logger,
	}
}

// CategorizeBatch classifies items in order, mutating the slice in place and
// returning it. Per-item failures retry with exponential backoff and fall
// back to Other on exhaustion. Auth and quota errors are fatal: no further
// calls are made, the remaining items get Other, and the fatal error is
// returned alongside the completed batch so the scan can still reach review.
// Context cancellation aborts immediately.
func (s *Service) CategorizeBatch(ctx context.Context, items []entity.DraftItem, onProgress func(done, total int)) ([]entity.DraftItem, error) {
	if onProgress == nil {
		onProgress = func(int, int) {}
	}
	total := len(items)
	var fatal error

	for i := range items {
		if fatal != nil {
			items[i].Category = string(constants.Other)
			onProgress(i+1, total)
			continue
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return items, err
		}

		raw, err := s.classifyOne(ctx, items[i].Description)
		switch {
		case err == nil:
			cat, known := constants.Canonicalize(raw)
			if !known {
				s.logger.Warn("categorize.unknown_label", "label", raw, "description", items[i].Description)
			}
			items[i].OriginalCategory = raw
			items[i].Category = string(cat)
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return items, err
		case errors.Is(err, llm.ErrAuth) || errors.Is(err, llm.ErrQuota):
			s.logger.Error("categorize.fatal", "error", err, "remaining", total-i)
			items[i].Category = string(constants.Other)
			fatal = err
		default:
			s.logger.Warn("categorize.exhausted", "description", items[i].Description, "error", err)
			items[i].Category = string(constants.Other)
		}
		onProgress(i+1, total)
	}
	return items, fatal
}

// ClassifyDescription categorizes a single description through the same rate
// limit and retry policy as scanned batches. Manually entered expenses go
// through here when the caller leaves the category blank; any failure falls
// back to Other.
func (s *Service) ClassifyDescription(ctx context.Context, description string) constants.Category {
	if err := s.limiter.Wait(ctx); err != nil {
		return constants.Other
	}
	raw, err := s.classifyOne(ctx, description)
	if err != nil {
		s.logger.Warn("categorize.single.failed", "description", description, "error", err)
		return constants.Other
	}
	cat, known := constants.Canonicalize(raw)
	if !known {
		s.logger.Warn("categorize.unknown_label", "label", raw, "description", description)
	}
	return cat
}

func (s *Service) classifyOne(ctx context.Context, description string) (string, error) {
	req := llm.ClassifyRequest{
		Description: description,
		Categories:  constants.AsStringSlice(),
	}

	var lastErr error
	for attempt := 0; attempt < s.cfg.Retries; attempt++ {
		if attempt > 0 {
			backoff := s.cfg.RetryBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		raw, err := s.classifier.Classify(ctx, req)
		if err == nil {
			return raw, nil
		}
		if errors.Is(err, llm.ErrAuth) || errors.Is(err, llm.ErrQuota) || ctx.Err() != nil {
			return "", err
		}
		lastErr = err
		s.logger.Debug("categorize.retry", "attempt", attempt+1, "error", err)
	}
	return "", fmt.Errorf("classify after %d attempts: %w", s.cfg.Retries, lastErr)
}

// AppendTaxLine synthesizes a dedicated tax item when the receipt summary
// carries a material tax amount, so the committed expenses add up to what was
// actually paid. Runs after categorization; the line's category is fixed.
func (s *Service) AppendTaxLine(items []entity.DraftItem, summary entity.ReceiptSummary, date time.Time) []entity.DraftItem {
	tax, err := strconv.ParseFloat(summary.Tax, 64)
	if err != nil || tax <= s.cfg.TaxThreshold {
		return items
	}

	desc := "Tax"
	source := "receipt-scan"
	if summary.Store != "" {
		desc = "Tax - " + summary.Store
		source = summary.Store
	}
	s.logger.Info("categorize.tax_line", "amount", summary.Tax, "store", summary.Store)
	return append(items, entity.DraftItem{
		ID:          uuid.New(),
		Description: desc,
		Amount:      fmt.Sprintf("%.2f", tax),
		Category:    string(constants.Tax),
		IsTax:       true,
		Date:        date,
		Source:      source,
	})
}
