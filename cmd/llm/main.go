package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/xpenseai/expense-tracker/internal/llm"
	"github.com/xpenseai/expense-tracker/internal/llm/gemini"
	"github.com/xpenseai/expense-tracker/internal/llm/openai"
)

// runllm feeds already-recognized receipt text through item structuring and
// summary extraction, skipping OCR entirely. Run it a few times on the same
// text to eyeball how stable the model output is.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: runllm <text-file> [times]")
		os.Exit(2)
	}
	path := os.Args[1]
	times := 1
	if len(os.Args) >= 3 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			times = n
		}
	}

	text, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read text file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var (
		structurer llm.Structurer
		summarizer llm.Summarizer
	)
	if getenv("LLM_ENGINE", "openai") == "gemini" {
		if os.Getenv("GEMINI_API_KEY") == "" {
			logger.Error("GEMINI_API_KEY env var is required")
			os.Exit(2)
		}
		gc, err := gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), getenv("GEMINI_MODEL", "gemini-1.5-flash"), logger)
		if err != nil {
			logger.Error("create gemini client", "error", err)
			os.Exit(1)
		}
		defer gc.Close()
		structurer, summarizer = gc, gc
	} else {
		if os.Getenv("OPENAI_API_KEY") == "" {
			logger.Error("OPENAI_API_KEY env var is required")
			os.Exit(2)
		}
		oc := openai.NewClient(openai.Config{
			Model:   getenv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Timeout: 45 * time.Second,
		}, logger)
		structurer, summarizer = oc, oc
	}

	req := llm.ItemsRequest{
		ReceiptText: string(text),
		Date:        time.Now(),
		Source:      "runllm",
	}

	type runOutput struct {
		Items   any `json:"items"`
		Summary any `json:"summary"`
	}
	var last runOutput

	for i := 1; i <= times; i++ {
		start := time.Now()
		items, _, err := structurer.StructureItems(ctx, req)
		if err != nil {
			logger.Error("llm.items.error", "iter", i, "error", err)
			continue
		}
		summary, _ := summarizer.ExtractSummary(ctx, llm.SummaryRequest{ReceiptText: string(text)})
		logger.Info("llm.run.ok",
			"iter", i,
			"items", len(items),
			"total", summary.Total,
			"store", summary.Store,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		last = runOutput{Items: items, Summary: summary}

		if i < times {
			time.Sleep(750 * time.Millisecond)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(last); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
