package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xpenseai/expense-tracker/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language      string // default "eng"
	CharWhitelist string // restricts recognition; improves numeric precision on receipts
	PSM           int    // e.g., 6 is good for uniform block of text
	OEM           int    // 1 = LSTM; leave 0 to use default

	TessdataDir   string
	HeicConverter string
}

// DefaultCharWhitelist keeps recognition to the characters that actually occur
// on retail receipts, which measurably reduces digit confusion.
const DefaultCharWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz .,:-$"

// ProgressFunc receives a fraction in [0,1] as recognition proceeds.
type ProgressFunc func(frac float64)

type Result struct {
	Text     string
	Language string
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.CharWhitelist == "" {
		cfg.CharWhitelist = DefaultCharWhitelist
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner injects a command runner for tests.
func NewExtractorWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = runner
	return e
}

// Recognize runs OCR over an in-memory image. The extension selects HEIC
// conversion when needed. Engine errors propagate: receipts are cheap to
// re-photograph, so there is no retry here.
//
// Progress is coarse (temp write, conversion, recognition, done); callers map
// the 0..1 fraction onto their own progress window.
func (e *Extractor) Recognize(ctx context.Context, data []byte, ext string, onProgress ProgressFunc) (Result, error) {
	start := time.Now()
	if onProgress == nil {
		onProgress = func(float64) {}
	}
	ext = constants.NormalizeExt(ext)
	e.logger.Debug("ocr.recognize.start", "bytes", len(data), "ext", ext, "lang", e.cfg.Language)

	tmpDir, err := os.MkdirTemp("", "xpense-ocr-*")
	if err != nil {
		return Result{}, fmt.Errorf("ocr temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("ocr.tempdir.cleanup_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	if ext == "" {
		ext = "png"
	}
	path := filepath.Join(tmpDir, "receipt."+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return Result{}, fmt.Errorf("ocr temp write: %w", err)
	}
	onProgress(0.1)

	var warns []string
	if constants.IsHEICExt(ext) {
		converted, w, convErr := e.convertHEIC(ctx, path, tmpDir)
		warns = append(warns, w...)
		if convErr != nil {
			e.logger.Error("ocr.heic.convert_failed", "error", convErr)
			return Result{Warnings: warns}, convErr
		}
		path = converted
	}
	onProgress(0.2)

	txt, w, err := e.tesseract(ctx, path)
	warns = append(warns, w...)
	if err != nil {
		return Result{Warnings: warns}, err
	}
	onProgress(1.0)

	res := Result{
		Text:     txt,
		Language: e.cfg.Language,
		Duration: time.Since(start),
		Warnings: warns,
	}
	e.logger.Info("ocr.recognize.ok",
		"text_bytes", len(txt),
		"warnings", len(warns),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) tesseract(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.Language}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args,
		"-c", "tessedit_char_whitelist="+e.cfg.CharWhitelist,
		"-c", "preserve_interword_spaces=1",
	)

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

// convertHEIC shells out to the configured converter, producing a PNG next to
// the input inside the session temp dir.
func (e *Extractor) convertHEIC(ctx context.Context, in, dir string) (string, []string, error) {
	out := filepath.Join(dir, "receipt.png")
	switch e.cfg.HeicConverter {
	case "heif-convert":
		if _, errb, err := e.runner.Run(ctx, "heif-convert", in, out); err != nil {
			return "", []string{string(errb)}, fmt.Errorf("heif-convert failed: %w", err)
		}
	case "magick", "":
		if _, errb, err := e.runner.Run(ctx, "magick", in, out); err != nil {
			return "", []string{string(errb)}, fmt.Errorf("magick convert failed: %w", err)
		}
	case "sips":
		if _, errb, err := e.runner.Run(ctx, "sips", "-s", "format", "png", in, "--out", out); err != nil {
			return "", []string{string(errb)}, fmt.Errorf("sips convert failed: %w", err)
		}
	default:
		return "", nil, fmt.Errorf("HEIC not supported: set ocr.Config.HeicConverter to one of: heif-convert | magick | sips")
	}
	if _, statErr := os.Stat(out); statErr != nil {
		return "", nil, fmt.Errorf("HEIC conversion produced no output: %v", statErr)
	}
	return out, nil, nil
}
