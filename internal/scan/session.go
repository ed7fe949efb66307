package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/internal/common"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/llm"
	"github.com/xpenseai/expense-tracker/internal/ocr"
)

type Config struct {
	MatchTolerance    float64 // review-screen mismatch threshold
	AdvisoryTolerance float64 // log-only drift threshold, pre tax line
	PreviewDir        string  // uploaded images kept here until reset
}

func (c *Config) defaults() {
	if c.MatchTolerance <= 0 {
		c.MatchTolerance = 0.25
	}
	if c.AdvisoryTolerance <= 0 {
		c.AdvisoryTolerance = 0.50
	}
	if c.PreviewDir == "" {
		c.PreviewDir = os.TempDir()
	}
}

// TextRecognizer is the slice of the OCR extractor the pipeline needs.
type TextRecognizer interface {
	Recognize(ctx context.Context, data []byte, ext string, onProgress ocr.ProgressFunc) (ocr.Result, error)
}

// Categorizer assigns categories and synthesizes the tax line.
type Categorizer interface {
	CategorizeBatch(ctx context.Context, items []entity.DraftItem, onProgress func(done, total int)) ([]entity.DraftItem, error)
	AppendTaxLine(items []entity.DraftItem, summary entity.ReceiptSummary, date time.Time) []entity.DraftItem
}

// PhotoArchiver stores the original image and returns an opaque receipt id.
type PhotoArchiver interface {
	ArchivePhoto(ctx context.Context, data []byte, ext string, summary entity.ReceiptSummary, itemCount int) (string, error)
}

// ExpenseCreator persists committed drafts as expenses, atomically per call.
type ExpenseCreator interface {
	CreateFromDrafts(ctx context.Context, items []entity.DraftItem) ([]entity.Expense, error)
}

type Deps struct {
	Recognizer  TextRecognizer
	Structurer  llm.Structurer
	Summarizer  llm.Summarizer
	Categorizer Categorizer
	Photos      PhotoArchiver
	Expenses    ExpenseCreator
	Store       SessionStore

	// seams for tests; default to uuid.NewString and time.Now
	NewID func() string
	Now   func() time.Time
}

// Upload is a receipt image as received from the client.
type Upload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Result is what the review screen renders after a pipeline run or a commit.
type Result struct {
	SessionID string
	Stage     constants.ScanStage
	Items     []entity.DraftItem
	Summary   entity.ReceiptSummary
	Recon     entity.Reconciliation
	ReceiptID string
}

// Session drives a receipt image through OCR, extraction, categorization and
// reconciliation, parks the drafts in the store for review, and commits them
// to expenses one by one or all at once.
type Session struct {
	cfg    Config
	deps   Deps
	logger *slog.Logger
}

func NewSession(cfg Config, deps Deps, logger *slog.Logger) *Session {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Session{cfg: cfg, deps: deps, logger: logger}
}

// Start runs the full pipeline. Photo archival failure is non-fatal; OCR
// failures and unreachable model backends are. A receipt whose model response
// parses to zero plausible items, or does not parse at all, ends at
// StageNoItems with nothing persisted.
func (s *Session) Start(ctx context.Context, up Upload, onProgress ProgressFunc) (Result, error) {
	id := s.deps.NewID()
	now := s.deps.Now()
	track := newTracker(onProgress)
	log := s.logger.With("session_id", id)

	if err := validateUpload(up); err != nil {
		return Result{SessionID: id, Stage: constants.StageFailed}, err
	}
	track.set(constants.StageUploading, pctUpload)

	ext := constants.NormalizeExt(filepath.Ext(up.Filename))
	previewPath := s.writePreview(id, ext, up.Data, log)

	// OCR owns the bottom progress window
	ocrRes, err := s.deps.Recognizer.Recognize(ctx, up.Data, ext,
		track.window(constants.StageOCRRunning, pctOCRStart, pctOCREnd))
	if err != nil {
		log.Error("scan.ocr.failed", "error", err)
		s.removePreview(previewPath, log)
		return Result{SessionID: id, Stage: constants.StageFailed}, common.WrapError(err, "ocr")
	}

	text := ocr.Normalize(ocrRes.Text)
	if strings.TrimSpace(text) == "" {
		log.Warn("scan.ocr.empty_text")
		s.removePreview(previewPath, log)
		return Result{SessionID: id, Stage: constants.StageNoItems}, nil
	}

	track.set(constants.StageStructuring, pctStructuring)
	// expenses are day-granular; stamp drafts with local midnight so they land
	// inside midnight-anchored period filters
	y, m, d := now.Date()
	scanDate := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	items, _, err := s.deps.Structurer.StructureItems(ctx, llm.ItemsRequest{
		ReceiptText: text,
		Date:        scanDate,
		Source:      "receipt-scan",
	})
	if err != nil {
		log.Error("scan.structure.failed", "error", err)
		s.removePreview(previewPath, log)
		return Result{SessionID: id, Stage: constants.StageFailed}, common.WrapError(err, "structure items")
	}
	if len(items) == 0 {
		log.Info("scan.no_items")
		s.removePreview(previewPath, log)
		return Result{SessionID: id, Stage: constants.StageNoItems}, nil
	}

	track.set(constants.StageSummaryExtracting, pctSummary)
	summary, _ := s.deps.Summarizer.ExtractSummary(ctx, llm.SummaryRequest{ReceiptText: text})

	// once the store name is known it becomes the provenance tag; the literal
	// stamped at structuring stays only when summary extraction found nothing
	if summary.Store != "" {
		for i := range items {
			items[i].Source = summary.Store
		}
	}

	s.advisoryCheck(items, summary, log)

	// photo archival is I/O against storage, categorization is the long pole
	// of model calls; neither depends on the other
	var (
		receiptID string
		catErr    error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		track.set(constants.StageSavingPhoto, pctSavingPhoto)
		rid, perr := s.deps.Photos.ArchivePhoto(gctx, up.Data, ext, summary, len(items))
		if perr != nil {
			// the drafts are still reviewable without an archived photo
			log.Warn("scan.photo.archive_failed", "error", perr)
			return nil
		}
		receiptID = rid
		return nil
	})
	g.Go(func() error {
		catProgress := func(done, total int) {
			track.window(constants.StageCategorizing, pctCategorizeStart, pctCategorizeEnd)(float64(done) / float64(total))
		}
		track.set(constants.StageCategorizing, pctCategorizeStart)
		items, catErr = s.deps.Categorizer.CategorizeBatch(gctx, items, catProgress)
		return nil
	})
	_ = g.Wait()

	if catErr != nil {
		if ctx.Err() != nil {
			s.removePreview(previewPath, log)
			return Result{SessionID: id, Stage: constants.StageFailed}, catErr
		}
		// quota/auth exhaustion: drafts fall back to Other, review continues
		log.Warn("scan.categorize.degraded", "error", catErr)
	}
	items = s.deps.Categorizer.AppendTaxLine(items, summary, scanDate)

	for i := range items {
		items[i].ReceiptID = receiptID
	}

	recon := Reconcile(items, summary, s.cfg.MatchTolerance)
	snap := Snapshot{
		ID:          id,
		Items:       items,
		Summary:     summary,
		PreviewPath: previewPath,
		ReceiptID:   receiptID,
		SavedAt:     now,
	}
	if err := s.deps.Store.Save(snap); err != nil {
		log.Error("scan.snapshot.save_failed", "error", err)
		return Result{SessionID: id, Stage: constants.StageFailed}, common.WrapError(err, "save session")
	}

	track.set(constants.StageReviewReady, pctDone)
	log.Info("scan.review_ready",
		"items", len(items),
		"store", summary.Store,
		"matched", recon.Matched,
		"receipt_id", receiptID,
	)
	return Result{
		SessionID: id,
		Stage:     constants.StageReviewReady,
		Items:     items,
		Summary:   summary,
		Recon:     recon,
		ReceiptID: receiptID,
	}, nil
}

// Commit persists one draft as an expense and removes it from the session.
// Committing the last draft ends the session.
func (s *Session) Commit(ctx context.Context, sessionID string, itemID uuid.UUID) (Result, error) {
	snap, found, err := s.deps.Store.Load(sessionID)
	if err != nil {
		return Result{}, common.WrapError(err, "load session")
	}
	if !found {
		return Result{}, common.NotFoundError("scan session not found: " + sessionID)
	}

	idx := -1
	for i := range snap.Items {
		if snap.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Result{}, common.NotFoundError("draft item not found: " + itemID.String())
	}

	if _, err := s.deps.Expenses.CreateFromDrafts(ctx, []entity.DraftItem{snap.Items[idx]}); err != nil {
		return Result{}, common.WrapError(err, "commit draft")
	}

	snap.Items = append(snap.Items[:idx], snap.Items[idx+1:]...)
	if len(snap.Items) == 0 {
		return s.finish(snap)
	}

	if err := s.deps.Store.Save(snap); err != nil {
		return Result{}, common.WrapError(err, "save session")
	}
	return Result{
		SessionID: snap.ID,
		Stage:     constants.StageReviewReady,
		Items:     snap.Items,
		Summary:   snap.Summary,
		Recon:     Reconcile(snap.Items, snap.Summary, s.cfg.MatchTolerance),
		ReceiptID: snap.ReceiptID,
	}, nil
}

// CommitAll persists every remaining draft in one batch. On failure the
// drafts stay parked, so the user can retry without rescanning.
func (s *Session) CommitAll(ctx context.Context, sessionID string) (Result, error) {
	snap, found, err := s.deps.Store.Load(sessionID)
	if err != nil {
		return Result{}, common.WrapError(err, "load session")
	}
	if !found {
		return Result{}, common.NotFoundError("scan session not found: " + sessionID)
	}
	if len(snap.Items) == 0 {
		return s.finish(snap)
	}

	created, err := s.deps.Expenses.CreateFromDrafts(ctx, snap.Items)
	if err != nil {
		s.logger.Error("scan.commit_all.failed", "session_id", sessionID, "error", err)
		return Result{}, common.WrapError(err, "commit drafts")
	}
	s.logger.Info("scan.commit_all.ok", "session_id", sessionID, "created", len(created))
	return s.finish(snap)
}

// Reset discards the session: snapshot gone, preview image released.
func (s *Session) Reset(sessionID string) error {
	snap, found, err := s.deps.Store.Load(sessionID)
	if err != nil {
		return common.WrapError(err, "load session")
	}
	if found {
		s.removePreview(snap.PreviewPath, s.logger)
	}
	return s.deps.Store.Delete(sessionID)
}

// Resume restores a parked review after a restart or page reload.
func (s *Session) Resume(sessionID string) (Result, bool, error) {
	snap, found, err := s.deps.Store.Load(sessionID)
	if err != nil || !found {
		return Result{}, false, err
	}
	return Result{
		SessionID: snap.ID,
		Stage:     constants.StageReviewReady,
		Items:     snap.Items,
		Summary:   snap.Summary,
		Recon:     Reconcile(snap.Items, snap.Summary, s.cfg.MatchTolerance),
		ReceiptID: snap.ReceiptID,
	}, true, nil
}

func (s *Session) finish(snap Snapshot) (Result, error) {
	s.removePreview(snap.PreviewPath, s.logger)
	if err := s.deps.Store.Delete(snap.ID); err != nil {
		return Result{}, common.WrapError(err, "delete session")
	}
	return Result{SessionID: snap.ID, Stage: constants.StageIdle}, nil
}

// advisoryCheck flags drift between the receipt's printed total and what the
// extractor found, before the tax line is synthesized. Log-only: small drift
// is normal when implausible rows get filtered.
func (s *Session) advisoryCheck(items []entity.DraftItem, summary entity.ReceiptSummary, log *slog.Logger) {
	receiptTotal, err := decimal.NewFromString(summary.Total)
	if err != nil || receiptTotal.IsZero() {
		return
	}
	tax, err := decimal.NewFromString(summary.Tax)
	if err != nil {
		tax = decimal.Zero
	}
	expected := SumAmounts(items).Add(tax)
	diff := receiptTotal.Sub(expected).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(s.cfg.AdvisoryTolerance)) {
		log.Warn("scan.reconcile.drift",
			"receipt_total", receiptTotal.StringFixed(2),
			"items_plus_tax", expected.StringFixed(2),
			"diff", diff.StringFixed(2),
		)
	}
}

func (s *Session) writePreview(id, ext string, data []byte, log *slog.Logger) string {
	if ext == "" {
		ext = "png"
	}
	path := filepath.Join(s.cfg.PreviewDir, fmt.Sprintf("preview-%s.%s", id, ext))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Warn("scan.preview.write_failed", "error", err)
		return ""
	}
	return path
}

func (s *Session) removePreview(path string, log *slog.Logger) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn("scan.preview.remove_failed", "path", path, "error", err)
	}
}

func validateUpload(up Upload) error {
	if len(up.Data) == 0 {
		return common.InvalidArgumentError("empty upload")
	}
	if len(up.Data) > constants.MaxUploadBytes {
		return common.InvalidArgumentErrorf("image exceeds %d bytes", constants.MaxUploadBytes)
	}
	if up.ContentType != "" && !constants.IsImageContentType(up.ContentType) {
		return common.InvalidArgumentError("content type must be an image: " + up.ContentType)
	}
	ext := constants.NormalizeExt(filepath.Ext(up.Filename))
	if ext != "" {
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return common.InvalidArgumentError("unsupported file extension: " + ext)
		}
	}
	return nil
}
