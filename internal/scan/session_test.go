package scan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/llm"
	"github.com/xpenseai/expense-tracker/internal/ocr"
)

func TestScan(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Scan Suite")
}

// mockRecognizer is a mock implementation of TextRecognizer
type mockRecognizer struct {
	text string
	err  error
}

func (m *mockRecognizer) Recognize(_ context.Context, _ []byte, _ string, onProgress ocr.ProgressFunc) (ocr.Result, error) {
	if onProgress != nil {
		onProgress(0.5)
		onProgress(1.0)
	}
	if m.err != nil {
		return ocr.Result{}, m.err
	}
	return ocr.Result{Text: m.text}, nil
}

// mockStructurer is a mock implementation of llm.Structurer
type mockStructurer struct {
	items []entity.DraftItem
	err   error
}

func (m *mockStructurer) StructureItems(_ context.Context, req llm.ItemsRequest) ([]entity.DraftItem, []byte, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	out := make([]entity.DraftItem, len(m.items))
	copy(out, m.items)
	for i := range out {
		out[i].Date = req.Date
		out[i].Source = req.Source
	}
	return out, []byte("{}"), nil
}

// mockSummarizer is a mock implementation of llm.Summarizer
type mockSummarizer struct {
	summary entity.ReceiptSummary
}

func (m *mockSummarizer) ExtractSummary(_ context.Context, _ llm.SummaryRequest) (entity.ReceiptSummary, []byte) {
	return m.summary, []byte("{}")
}

// mockCategorizer is a mock implementation of Categorizer
type mockCategorizer struct {
	err     error
	taxLine *entity.DraftItem
}

func (m *mockCategorizer) CategorizeBatch(_ context.Context, batch []entity.DraftItem, onProgress func(done, total int)) ([]entity.DraftItem, error) {
	for i := range batch {
		batch[i].Category = "Food"
		if onProgress != nil {
			onProgress(i+1, len(batch))
		}
	}
	return batch, m.err
}

func (m *mockCategorizer) AppendTaxLine(batch []entity.DraftItem, _ entity.ReceiptSummary, _ time.Time) []entity.DraftItem {
	if m.taxLine != nil {
		return append(batch, *m.taxLine)
	}
	return batch
}

// mockPhotos is a mock implementation of PhotoArchiver
type mockPhotos struct {
	id    string
	err   error
	calls int
}

func (m *mockPhotos) ArchivePhoto(_ context.Context, _ []byte, _ string, _ entity.ReceiptSummary, _ int) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.id, nil
}

// mockExpenses is a mock implementation of ExpenseCreator
type mockExpenses struct {
	created []entity.DraftItem
	err     error
}

func (m *mockExpenses) CreateFromDrafts(_ context.Context, batch []entity.DraftItem) ([]entity.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, batch...)
	out := make([]entity.Expense, len(batch))
	for i := range batch {
		out[i] = entity.Expense{ID: uuid.New(), Description: batch[i].Description}
	}
	return out, nil
}

// mockStore is an in-memory SessionStore
type mockStore struct {
	snaps   map[string]Snapshot
	saveErr error
}

func newMockStore() *mockStore {
	return &mockStore{snaps: make(map[string]Snapshot)}
}

func (m *mockStore) Save(snap Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snaps[snap.ID] = snap
	return nil
}

func (m *mockStore) Load(id string) (Snapshot, bool, error) {
	snap, ok := m.snaps[id]
	return snap, ok, nil
}

func (m *mockStore) Delete(id string) error {
	delete(m.snaps, id)
	return nil
}

func (m *mockStore) Close() error { return nil }

var _ = Describe("Session", func() {
	var (
		recognizer  *mockRecognizer
		structurer  *mockStructurer
		summarizer  *mockSummarizer
		categorizer *mockCategorizer
		photos      *mockPhotos
		expenses    *mockExpenses
		store       *mockStore
		session     *Session
		ctx         context.Context

		upload Upload
		now    time.Time
	)

	BeforeEach(func() {
		recognizer = &mockRecognizer{text: "ACME MARKET\nMILK 3.49\nBREAD 2.99\nTOTAL 6.48"}
		structurer = &mockStructurer{items: []entity.DraftItem{
			{ID: uuid.New(), Description: "MILK 2 PCT", Amount: "3.49"},
			{ID: uuid.New(), Description: "WHOLE WHEAT BREAD", Amount: "2.99"},
		}}
		summarizer = &mockSummarizer{summary: entity.ReceiptSummary{
			Subtotal: "6.48", Tax: "0.00", Total: "6.48", Store: "ACME MARKET",
		}}
		categorizer = &mockCategorizer{}
		photos = &mockPhotos{id: "photo-9"}
		expenses = &mockExpenses{}
		store = newMockStore()
		ctx = context.Background()
		now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

		session = NewSession(
			Config{PreviewDir: GinkgoT().TempDir()},
			Deps{
				Recognizer:  recognizer,
				Structurer:  structurer,
				Summarizer:  summarizer,
				Categorizer: categorizer,
				Photos:      photos,
				Expenses:    expenses,
				Store:       store,
				NewID:       func() string { return "sess-1" },
				Now:         func() time.Time { return now },
			},
			nil,
		)

		upload = Upload{Data: []byte("fake-image"), Filename: "receipt.jpg", ContentType: "image/jpeg"}
	})

	Describe("Start", func() {
		It("runs the pipeline through to review", func() {
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.SessionID).To(Equal("sess-1"))
			Expect(res.Stage).To(Equal(constants.StageReviewReady))
			Expect(res.Items).To(HaveLen(2))
			Expect(res.Items[0].Category).To(Equal("Food"))
			Expect(res.Items[0].ReceiptID).To(Equal("photo-9"))
			Expect(res.ReceiptID).To(Equal("photo-9"))
			Expect(res.Recon.Matched).To(BeTrue())
			Expect(res.Recon.ItemsTotal).To(Equal("6.48"))

			snap, found, _ := store.Load("sess-1")
			Expect(found).To(BeTrue())
			Expect(snap.Items).To(HaveLen(2))
			Expect(snap.SavedAt).To(Equal(now))
		})

		It("reports monotonically increasing progress ending at 100", func() {
			var pcts []int
			_, err := session.Start(ctx, upload, func(_ constants.ScanStage, pct int) {
				pcts = append(pcts, pct)
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(pcts).NotTo(BeEmpty())
			for i := 1; i < len(pcts); i++ {
				Expect(pcts[i]).To(BeNumerically(">=", pcts[i-1]))
			}
			Expect(pcts[len(pcts)-1]).To(Equal(100))
		})

		It("rejects bad uploads before any work happens", func() {
			bad := []Upload{
				{},
				{Data: make([]byte, constants.MaxUploadBytes+1), Filename: "big.jpg"},
				{Data: []byte("x"), Filename: "notes.txt"},
				{Data: []byte("x"), Filename: "receipt.jpg", ContentType: "application/pdf"},
			}
			for _, up := range bad {
				res, err := session.Start(ctx, up, nil)
				Expect(err).To(HaveOccurred())
				Expect(res.Stage).To(Equal(constants.StageFailed))
			}
			Expect(photos.calls).To(BeZero())
		})

		It("fails the scan when OCR fails", func() {
			recognizer.err = errors.New("tesseract: exit status 1")
			res, err := session.Start(ctx, upload, nil)
			Expect(err).To(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageFailed))
		})

		It("ends at NoItems when OCR finds no text", func() {
			recognizer.text = "   \n \n"
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageNoItems))
			Expect(store.snaps).To(BeEmpty())
		})

		It("ends at NoItems when structuring yields nothing", func() {
			structurer.items = nil
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageNoItems))
			Expect(store.snaps).To(BeEmpty())
		})

		It("fails the scan when the structuring backend is unreachable", func() {
			structurer.err = errors.New("model unreachable")
			res, err := session.Start(ctx, upload, nil)
			Expect(err).To(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageFailed))
		})

		It("stamps every draft's source with the extracted store name", func() {
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			for _, it := range res.Items {
				Expect(it.Source).To(Equal("ACME MARKET"))
			}
		})

		It("keeps the fallback source when no store was extracted", func() {
			summarizer.summary = entity.ReceiptSummary{Subtotal: "0.00", Tax: "0.00", Total: "0.00", Store: ""}
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			for _, it := range res.Items {
				Expect(it.Source).To(Equal("receipt-scan"))
			}
		})

		It("continues without a receipt id when photo archival fails", func() {
			photos.err = errors.New("storage offline")
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageReviewReady))
			Expect(res.ReceiptID).To(BeEmpty())
			Expect(res.Items[0].ReceiptID).To(BeEmpty())
		})

		It("still reaches review when categorization degrades", func() {
			categorizer.err = llm.ErrQuota
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageReviewReady))
		})

		It("includes the synthesized tax line in reconciliation", func() {
			summarizer.summary = entity.ReceiptSummary{Subtotal: "6.48", Tax: "0.52", Total: "7.00", Store: "ACME MARKET"}
			categorizer.taxLine = &entity.DraftItem{
				ID: uuid.New(), Description: "Tax - ACME MARKET", Amount: "0.52", Category: "Tax", IsTax: true,
			}
			res, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Items).To(HaveLen(3))
			Expect(res.Recon.ItemsTotal).To(Equal("7.00"))
			Expect(res.Recon.Matched).To(BeTrue())
		})
	})

	Describe("Commit", func() {
		var started Result

		BeforeEach(func() {
			var err error
			started, err = session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("persists one draft and keeps the session open", func() {
			res, err := session.Commit(ctx, "sess-1", started.Items[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageReviewReady))
			Expect(res.Items).To(HaveLen(1))
			Expect(expenses.created).To(HaveLen(1))
			Expect(expenses.created[0].Description).To(Equal("MILK 2 PCT"))
		})

		It("ends the session after the last draft", func() {
			_, err := session.Commit(ctx, "sess-1", started.Items[0].ID)
			Expect(err).NotTo(HaveOccurred())
			res, err := session.Commit(ctx, "sess-1", started.Items[1].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageIdle))
			Expect(store.snaps).To(BeEmpty())
		})

		It("returns not found for unknown sessions and items", func() {
			_, err := session.Commit(ctx, "missing", started.Items[0].ID)
			Expect(err).To(HaveOccurred())

			_, err = session.Commit(ctx, "sess-1", uuid.New())
			Expect(err).To(HaveOccurred())
		})

		It("leaves the draft parked when persistence fails", func() {
			expenses.err = errors.New("db down")
			_, err := session.Commit(ctx, "sess-1", started.Items[0].ID)
			Expect(err).To(HaveOccurred())

			snap, found, _ := store.Load("sess-1")
			Expect(found).To(BeTrue())
			Expect(snap.Items).To(HaveLen(2))
		})
	})

	Describe("CommitAll", func() {
		BeforeEach(func() {
			_, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("persists every draft and ends the session", func() {
			res, err := session.CommitAll(ctx, "sess-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stage).To(Equal(constants.StageIdle))
			Expect(expenses.created).To(HaveLen(2))
			Expect(store.snaps).To(BeEmpty())
		})

		It("keeps the drafts parked when the batch fails", func() {
			expenses.err = errors.New("db down")
			_, err := session.CommitAll(ctx, "sess-1")
			Expect(err).To(HaveOccurred())

			snap, found, _ := store.Load("sess-1")
			Expect(found).To(BeTrue())
			Expect(snap.Items).To(HaveLen(2))
		})
	})

	Describe("Reset and Resume", func() {
		BeforeEach(func() {
			_, err := session.Start(ctx, upload, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("resumes a parked review", func() {
			res, found, err := session.Resume("sess-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(res.Stage).To(Equal(constants.StageReviewReady))
			Expect(res.Items).To(HaveLen(2))
			Expect(res.Summary.Store).To(Equal("ACME MARKET"))
		})

		It("discards the session and its preview on reset", func() {
			snap, _, _ := store.Load("sess-1")
			Expect(snap.PreviewPath).NotTo(BeEmpty())

			Expect(session.Reset("sess-1")).To(Succeed())
			Expect(store.snaps).To(BeEmpty())
			_, statErr := os.Stat(snap.PreviewPath)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("reports absence for unknown sessions", func() {
			_, found, err := session.Resume("missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})
})
