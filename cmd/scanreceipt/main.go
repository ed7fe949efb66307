package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/internal/categorize"
	"github.com/xpenseai/expense-tracker/internal/common"
	"github.com/xpenseai/expense-tracker/internal/llm"
	"github.com/xpenseai/expense-tracker/internal/llm/gemini"
	"github.com/xpenseai/expense-tracker/internal/llm/openai"
	"github.com/xpenseai/expense-tracker/internal/ocr"
	repo "github.com/xpenseai/expense-tracker/internal/repository"
	"github.com/xpenseai/expense-tracker/internal/scan"
)

// scanreceipt runs the full pipeline over one image file against the sqlite
// store and prints the review-ready drafts as JSON. Commit from the review UI
// afterwards, or rerun with -commit to book everything immediately.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	commit := false
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-commit" {
		commit = true
		args = args[1:]
	}
	if len(args) != 1 {
		logger.Error("usage", "cmd", "scanreceipt [-commit] <image-file>")
		os.Exit(2)
	}
	path := args[0]

	cfg := common.LoadConfig()
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "./xpense.db"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read image", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, db, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
		_ = db.Close()
	}()
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("migrate schema", "error", err)
		os.Exit(1)
	}

	var (
		structurer llm.Structurer
		summarizer llm.Summarizer
		classifier llm.Classifier
	)
	if cfg.LLM.Engine == "gemini" {
		gc, err := gemini.NewClient(ctx, cfg.LLM.GeminiAPIKey, "gemini-1.5-flash", logger)
		if err != nil {
			logger.Error("create gemini client", "error", err)
			os.Exit(1)
		}
		defer gc.Close()
		structurer, summarizer, classifier = gc, gc, gc
	} else {
		oc := openai.NewClient(openai.Config{
			APIKey:          cfg.LLM.APIKey,
			Model:           cfg.LLM.Model,
			ClassifierModel: cfg.LLM.ClassifierModel,
			Temperature:     cfg.LLM.Temperature,
			Timeout:         cfg.LLM.Timeout,
		}, logger)
		structurer, summarizer, classifier = oc, oc, oc
	}

	sessionStore, err := scan.NewBoltStore(cfg.Scan.SessionStorePath)
	if err != nil {
		logger.Error("open session store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = sessionStore.Close() }()

	expenseRepo := repo.NewExpenseRepository(entc, logger)
	session := scan.NewSession(scan.Config{
		MatchTolerance:    cfg.Scan.MatchTolerance,
		AdvisoryTolerance: cfg.Scan.AdvisoryTolerance,
	}, scan.Deps{
		Recognizer: ocr.NewExtractor(ocr.Config{
			Tesseract:     cfg.OCR.Tesseract,
			Language:      cfg.OCR.Language,
			CharWhitelist: cfg.OCR.CharWhitelist,
			TessdataDir:   cfg.OCR.TessdataDir,
			HeicConverter: cfg.OCR.HeicConverter,
		}, logger),
		Structurer: structurer,
		Summarizer: summarizer,
		Categorizer: categorize.New(classifier, categorize.Config{
			Every:        cfg.Scan.CategorizeEvery,
			Retries:      cfg.Scan.CategorizeRetries,
			TaxThreshold: cfg.Scan.TaxThreshold,
		}, logger),
		Photos:   repo.NewPhotoRepository(entc, cfg.Scan.PhotoDir, logger),
		Expenses: expenseRepo,
		Store:    sessionStore,
	}, logger)

	res, err := session.Start(ctx, scan.Upload{
		Data:        data,
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
	}, func(stage constants.ScanStage, pct int) {
		logger.Info("scan.progress", "stage", string(stage), "percent", pct)
	})
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	if commit && len(res.Items) > 0 {
		sessionID := res.SessionID
		res, err = session.CommitAll(ctx, sessionID)
		if err != nil {
			logger.Error("commit failed", "session_id", sessionID, "error", err)
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
