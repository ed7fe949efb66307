package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xpenseai/expense-tracker/internal/ocr"
)

// runocr recognizes one receipt image and prints the normalized text, for
// checking tesseract setup and whitelist tuning without touching the DB or
// any AI service.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <image-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read image", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     getenv("TESSERACT_BIN", "tesseract"),
		Language:      getenv("OCR_LANG", "eng"),
		HeicConverter: getenv("HEIC_CONVERTER", "magick"),
		TessdataDir:   os.Getenv("TESSDATA_PREFIX"),
	}, logger)

	start := time.Now()
	res, err := extractor.Recognize(ctx, data, filepath.Ext(path), nil)
	if err != nil {
		logger.Error("recognition failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	text := ocr.Normalize(res.Text)
	logger.Info("recognition OK",
		"language", res.Language,
		"raw_bytes", len(res.Text),
		"normalized_bytes", len(text),
		"warnings", len(res.Warnings),
		"duration_ms", res.Duration.Milliseconds(),
	)
	for _, w := range res.Warnings {
		logger.Warn("ocr warning", "warning", w)
	}
	fmt.Println(text)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
