package categorize

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/llm"
)

func TestCategorize(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Categorize Suite")
}

// mockClassifier is a mock implementation of llm.Classifier
type mockClassifier struct {
	responses map[string]string // description -> label
	errs      map[string][]error
	calls     []string
}

func newMockClassifier() *mockClassifier {
	return &mockClassifier{
		responses: make(map[string]string),
		errs:      make(map[string][]error),
	}
}

func (m *mockClassifier) Classify(_ context.Context, req llm.ClassifyRequest) (string, error) {
	m.calls = append(m.calls, req.Description)
	if errs := m.errs[req.Description]; len(errs) > 0 {
		err := errs[0]
		m.errs[req.Description] = errs[1:]
		if err != nil {
			return "", err
		}
	}
	if label, ok := m.responses[req.Description]; ok {
		return label, nil
	}
	return "Other", nil
}

func drafts(descs ...string) []entity.DraftItem {
	items := make([]entity.DraftItem, len(descs))
	for i, d := range descs {
		items[i] = entity.DraftItem{Description: d, Amount: "1.00"}
	}
	return items
}

var fastCfg = Config{
	Every:     time.Millisecond,
	Retries:   3,
	RetryBase: time.Millisecond,
}

var _ = Describe("Service", func() {
	var (
		classifier *mockClassifier
		svc        *Service
		ctx        context.Context
	)

	BeforeEach(func() {
		classifier = newMockClassifier()
		svc = New(classifier, fastCfg, nil)
		ctx = context.Background()
	})

	Describe("CategorizeBatch", func() {
		It("assigns canonical categories in order", func() {
			classifier.responses["MILK 2 PCT"] = "Food"
			classifier.responses["BUS TICKET DOWNTOWN"] = "Transportation"

			items, err := svc.CategorizeBatch(ctx, drafts("MILK 2 PCT", "BUS TICKET DOWNTOWN"), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(items[0].Category).To(Equal("Food"))
			Expect(items[1].Category).To(Equal("Transportation"))
			Expect(classifier.calls).To(Equal([]string{"MILK 2 PCT", "BUS TICKET DOWNTOWN"}))
		})

		It("maps synonym labels onto the closed set and keeps the original", func() {
			classifier.responses["ORANGE JUICE"] = "groceries"

			items, err := svc.CategorizeBatch(ctx, drafts("ORANGE JUICE"), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(items[0].Category).To(Equal("Food"))
			Expect(items[0].OriginalCategory).To(Equal("groceries"))
		})

		It("retries transient failures before succeeding", func() {
			classifier.errs["FLAKY ITEM"] = []error{errors.New("boom"), errors.New("boom")}
			classifier.responses["FLAKY ITEM"] = "Shopping"

			items, err := svc.CategorizeBatch(ctx, drafts("FLAKY ITEM"), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(items[0].Category).To(Equal("Shopping"))
			Expect(classifier.calls).To(HaveLen(3))
		})

		It("falls back to Other when retries are exhausted", func() {
			classifier.errs["DOOMED ITEM"] = []error{
				errors.New("boom"), errors.New("boom"), errors.New("boom"),
			}

			items, err := svc.CategorizeBatch(ctx, drafts("DOOMED ITEM", "MILK 2 PCT"), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(items[0].Category).To(Equal("Other"))
			// the rest of the batch still runs
			Expect(items[1].Category).To(Equal("Other"))
			Expect(classifier.calls).To(HaveLen(4))
		})

		It("stops calling after a quota error and fills the rest with Other", func() {
			classifier.errs["FIRST ITEM"] = []error{llm.ErrQuota}

			items, err := svc.CategorizeBatch(ctx, drafts("FIRST ITEM", "SECOND ITEM", "THIRD ITEM"), nil)
			Expect(err).To(MatchError(llm.ErrQuota))
			Expect(items[0].Category).To(Equal("Other"))
			Expect(items[1].Category).To(Equal("Other"))
			Expect(items[2].Category).To(Equal("Other"))
			// no retries, no further calls
			Expect(classifier.calls).To(Equal([]string{"FIRST ITEM"}))
		})

		It("treats auth errors the same way", func() {
			classifier.errs["FIRST ITEM"] = []error{llm.ErrAuth}

			_, err := svc.CategorizeBatch(ctx, drafts("FIRST ITEM", "SECOND ITEM"), nil)
			Expect(err).To(MatchError(llm.ErrAuth))
			Expect(classifier.calls).To(Equal([]string{"FIRST ITEM"}))
		})

		It("aborts on context cancellation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := svc.CategorizeBatch(cancelled, drafts("MILK 2 PCT"), nil)
			Expect(err).To(HaveOccurred())
		})

		It("reports progress per item", func() {
			var seen [][2]int
			_, err := svc.CategorizeBatch(ctx, drafts("A B C", "D E F"), func(done, total int) {
				seen = append(seen, [2]int{done, total})
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([][2]int{{1, 2}, {2, 2}}))
		})
	})

	Describe("ClassifyDescription", func() {
		It("returns the canonical category for a single description", func() {
			classifier.responses["COFFEE BEANS DARK"] = "groceries"

			Expect(svc.ClassifyDescription(ctx, "COFFEE BEANS DARK")).To(Equal(constants.Food))
		})

		It("falls back to Other on persistent failure", func() {
			classifier.errs["MYSTERY ITEM"] = []error{
				errors.New("boom"), errors.New("boom"), errors.New("boom"),
			}

			Expect(svc.ClassifyDescription(ctx, "MYSTERY ITEM")).To(Equal(constants.Other))
			Expect(classifier.calls).To(HaveLen(3))
		})

		It("falls back to Other on quota exhaustion without retrying", func() {
			classifier.errs["FIRST ITEM"] = []error{llm.ErrQuota}

			Expect(svc.ClassifyDescription(ctx, "FIRST ITEM")).To(Equal(constants.Other))
			Expect(classifier.calls).To(HaveLen(1))
		})
	})

	Describe("AppendTaxLine", func() {
		It("appends a synthesized tax item after the purchases", func() {
			summary := entity.ReceiptSummary{Subtotal: "20.67", Tax: "1.80", Total: "22.47", Store: "ACME MARKET"}
			date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

			items := svc.AppendTaxLine(drafts("MILK 2 PCT"), summary, date)
			Expect(items).To(HaveLen(2))
			tax := items[1]
			Expect(tax.Description).To(Equal("Tax - ACME MARKET"))
			Expect(tax.Amount).To(Equal("1.80"))
			Expect(tax.Category).To(Equal("Tax"))
			Expect(tax.IsTax).To(BeTrue())
			Expect(tax.Date).To(Equal(date))
			Expect(tax.Source).To(Equal("ACME MARKET"))
		})

		It("skips negligible or unreadable tax amounts", func() {
			for _, tax := range []string{"0.00", "0.01", "", "n/a"} {
				summary := entity.ReceiptSummary{Tax: tax}
				items := svc.AppendTaxLine(drafts("MILK 2 PCT"), summary, time.Now())
				Expect(items).To(HaveLen(1), "tax=%q", tax)
			}
		})

		It("labels the line plainly when the store is unknown", func() {
			summary := entity.ReceiptSummary{Tax: "0.50"}
			items := svc.AppendTaxLine(nil, summary, time.Now())
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("Tax"))
			Expect(items[0].Source).To(Equal("receipt-scan"))
		})
	})
})
