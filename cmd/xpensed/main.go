package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/xpenseai/expense-tracker/gen/ent"
	xpensepb "github.com/xpenseai/expense-tracker/gen/proto/xpense/v1"
	"github.com/xpenseai/expense-tracker/internal/categorize"
	"github.com/xpenseai/expense-tracker/internal/common"
	"github.com/xpenseai/expense-tracker/internal/export"
	"github.com/xpenseai/expense-tracker/internal/llm"
	"github.com/xpenseai/expense-tracker/internal/llm/gemini"
	"github.com/xpenseai/expense-tracker/internal/llm/openai"
	"github.com/xpenseai/expense-tracker/internal/ocr"
	repo "github.com/xpenseai/expense-tracker/internal/repository"
	"github.com/xpenseai/expense-tracker/internal/scan"
	svc "github.com/xpenseai/expense-tracker/internal/server"
)

func main() {
	_ = godotenv.Load()

	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, cleanup, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	expenseRepo := repo.NewExpenseRepository(entc, logger)
	photoRepo := repo.NewPhotoRepository(entc, cfg.Scan.PhotoDir, logger)
	budgetRepo := repo.NewBudgetRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Language:      cfg.OCR.Language,
		CharWhitelist: cfg.OCR.CharWhitelist,
		TessdataDir:   cfg.OCR.TessdataDir,
		HeicConverter: cfg.OCR.HeicConverter,
	}, logger)

	var (
		structurer llm.Structurer
		summarizer llm.Summarizer
		classifier llm.Classifier
	)
	switch cfg.LLM.Engine {
	case "gemini":
		gc, err := gemini.NewClient(ctx, cfg.LLM.GeminiAPIKey, getenv("GEMINI_MODEL", "gemini-1.5-flash"), logger)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gc.Close()
		structurer, summarizer, classifier = gc, gc, gc
	default:
		oc := openai.NewClient(openai.Config{
			APIKey:          cfg.LLM.APIKey,
			Model:           cfg.LLM.Model,
			ClassifierModel: cfg.LLM.ClassifierModel,
			Temperature:     cfg.LLM.Temperature,
			Timeout:         cfg.LLM.Timeout,
		}, logger)
		structurer, summarizer, classifier = oc, oc, oc
	}

	categorizer := categorize.New(classifier, categorize.Config{
		Every:        cfg.Scan.CategorizeEvery,
		Retries:      cfg.Scan.CategorizeRetries,
		TaxThreshold: cfg.Scan.TaxThreshold,
	}, logger)

	sessionStore, err := scan.NewBoltStore(cfg.Scan.SessionStorePath)
	if err != nil {
		logger.Error("failed to open session store", "path", cfg.Scan.SessionStorePath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			logger.Error("failed to close session store", "error", err)
		}
	}()

	session := scan.NewSession(scan.Config{
		MatchTolerance:    cfg.Scan.MatchTolerance,
		AdvisoryTolerance: cfg.Scan.AdvisoryTolerance,
		PreviewDir:        getenv("SCAN_PREVIEW_DIR", ""),
	}, scan.Deps{
		Recognizer:  extractor,
		Structurer:  structurer,
		Summarizer:  summarizer,
		Categorizer: categorizer,
		Photos:      photoRepo,
		Expenses:    expenseRepo,
		Store:       sessionStore,
	}, logger)

	exporter := export.NewService(expenseRepo, logger)

	xpensepb.RegisterExpensesServiceServer(grpcServer, svc.NewExpensesService(expenseRepo, exporter, categorizer, logger))
	xpensepb.RegisterBudgetsServiceServer(grpcServer, svc.NewBudgetsService(budgetRepo, logger))
	xpensepb.RegisterScanServiceServer(grpcServer, svc.NewScanService(session, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Budgets roll over on their own; clients never see a stale period.
	go resetBudgetsLoop(ctx, budgetRepo, logger)

	logger.Info("xpensed listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

// openDatabase picks sqlite single-binary mode when SQLITE_PATH is set,
// otherwise connects to Postgres. The returned cleanup closes whichever was
// opened.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, func(), error) {
	if cfg.Database.SQLitePath != "" {
		client, db, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		// sqlite mode manages its own schema
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			_ = db.Close()
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		}, nil
	}

	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		repo.Close(client, pool, logger)
		return nil, nil, err
	}
	return client, func() { repo.Close(client, pool, logger) }, nil
}

// resetBudgetsLoop advances overdue budget periods once at startup and then
// hourly until shutdown.
func resetBudgetsLoop(ctx context.Context, budgets repo.BudgetRepository, logger *slog.Logger) {
	tick := time.NewTicker(time.Hour)
	defer tick.Stop()
	for {
		n, err := budgets.ResetDue(ctx, time.Now())
		if err != nil && ctx.Err() == nil {
			logger.Error("budget reset sweep failed", "error", err)
		} else if n > 0 {
			logger.Info("budget.reset.ok", "count", n)
		}
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
