package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/ocr"
	"github.com/nguyentantai21042004/translate-flow/internal/translate"
)

const banner = "----------------------------------------"

type implConsole struct {
	out    io.Writer
	logger logger.Logger
}

// NewConsole creates a Reporter writing text blocks to stdout and status
// lines through the logger
func NewConsole(log logger.Logger) Reporter {
	return &implConsole{
		out:    os.Stdout,
		logger: log,
	}
}

func (r *implConsole) FileFound(ctx context.Context, name string) {
	r.logger.Info(ctx, ">>> Found new file: %s", name)
}

func (r *implConsole) SourceText(ctx context.Context, text string) {
	r.block("Extracted Text", text)
}

func (r *implConsole) Translated(ctx context.Context, res *translate.Result) {
	r.logger.Info(ctx, "Detected language: %s (%s)", res.SourceLanguageName, res.SourceLanguageCode)
	r.block("Translated Text", res.TranslatedText)
}

func (r *implConsole) TranslationFailed(ctx context.Context, err error) {
	r.logger.Error(ctx, "Translation failed, keeping extracted text only: %v", err)
}

func (r *implConsole) NoTextFound(ctx context.Context, name string) {
	r.logger.Info(ctx, "No text could be detected in %s", name)
}

func (r *implConsole) Unsupported(ctx context.Context, name string) {
	r.logger.Info(ctx, "Unsupported format: %s, archiving untouched", name)
}

func (r *implConsole) ExtractionFailed(ctx context.Context, name string, err error) {
	if errors.Is(err, ocr.ErrEngineNotFound) {
		r.logger.Error(ctx, "OCR engine unavailable while processing %s: %v", name, err)
		return
	}
	r.logger.Error(ctx, "Could not extract text from %s: %v", name, err)
}

func (r *implConsole) Notes(ctx context.Context, notes []string) {
	for _, note := range notes {
		r.logger.Warn(ctx, "Extraction note: %s", note)
	}
}

func (r *implConsole) Archived(ctx context.Context, name, destination string) {
	r.logger.Info(ctx, "Moved %s to %s", name, destination)
}

func (r *implConsole) ArchiveFailed(ctx context.Context, name string, err error) {
	r.logger.Error(ctx, "Could not move %s, it stays in the watch directory for the next cycle: %v", name, err)
}

func (r *implConsole) block(title, text string) {
	fmt.Fprintf(r.out, "\n--- %s ---\n%s\n%s\n", title, strings.TrimSpace(text), banner)
}
