package ocr

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

type fakeRunner struct {
	calls  [][]string
	stdout string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, []byte("engine stderr"), f.err
	}
	if name != "tesseract" {
		// converter call: the output path is the final argument
		_ = os.WriteFile(args[len(args)-1], []byte("png"), 0o600)
		return nil, nil, nil
	}
	return []byte(f.stdout), nil, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecognizeRunsTesseractWithWhitelist(t *testing.T) {
	runner := &fakeRunner{stdout: "MILK 2 PCT 3.49\n"}
	e := NewExtractorWithRunner(Config{}, runner, quietLogger())

	res, err := e.Recognize(context.Background(), []byte("img"), ".png", nil)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Text != "MILK 2 PCT 3.49\n" {
		t.Fatalf("text = %q", res.Text)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one exec call, got %d", len(runner.calls))
	}
	joined := strings.Join(runner.calls[0], " ")
	if !strings.Contains(joined, "tessedit_char_whitelist="+DefaultCharWhitelist) {
		t.Errorf("whitelist missing from args: %s", joined)
	}
	if !strings.Contains(joined, "-l eng") {
		t.Errorf("language missing from args: %s", joined)
	}
}

func TestRecognizeReportsProgress(t *testing.T) {
	runner := &fakeRunner{stdout: "TEXT"}
	e := NewExtractorWithRunner(Config{}, runner, quietLogger())

	var fracs []float64
	_, err := e.Recognize(context.Background(), []byte("img"), "jpg", func(f float64) {
		fracs = append(fracs, f)
	})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(fracs) == 0 || fracs[len(fracs)-1] != 1.0 {
		t.Fatalf("progress should end at 1.0, got %v", fracs)
	}
	for i := 1; i < len(fracs); i++ {
		if fracs[i] < fracs[i-1] {
			t.Fatalf("progress regressed: %v", fracs)
		}
	}
}

func TestRecognizeConvertsHEICFirst(t *testing.T) {
	runner := &fakeRunner{stdout: "TEXT"}
	e := NewExtractorWithRunner(Config{HeicConverter: "magick"}, runner, quietLogger())

	if _, err := e.Recognize(context.Background(), []byte("img"), "heic", nil); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("expected convert + ocr calls, got %d", len(runner.calls))
	}
	if runner.calls[0][0] != "magick" {
		t.Errorf("first call should convert, got %v", runner.calls[0])
	}
	if runner.calls[1][0] != "tesseract" {
		t.Errorf("second call should recognize, got %v", runner.calls[1])
	}
	if !strings.HasSuffix(runner.calls[1][1], "receipt.png") {
		t.Errorf("ocr should read the converted png, got %v", runner.calls[1])
	}
}

func TestRecognizeRejectsUnknownConverter(t *testing.T) {
	runner := &fakeRunner{stdout: "TEXT"}
	e := NewExtractorWithRunner(Config{HeicConverter: "imaginary"}, runner, quietLogger())

	if _, err := e.Recognize(context.Background(), []byte("img"), "heic", nil); err == nil {
		t.Fatal("expected error for unknown converter")
	}
}

func TestRecognizePropagatesEngineError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	e := NewExtractorWithRunner(Config{}, runner, quietLogger())

	res, err := e.Recognize(context.Background(), []byte("img"), "png", nil)
	if err == nil {
		t.Fatal("expected engine error to propagate")
	}
	if len(res.Warnings) == 0 {
		t.Error("stderr should surface as a warning")
	}
}
