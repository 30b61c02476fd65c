package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

type textExtractor struct {
	logger logger.Logger
}

// NewText creates an extractor for UTF-8 plain text files
func NewText(log logger.Logger) Extractor {
	return &textExtractor{logger: log}
}

func (e *textExtractor) Extract(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if !utf8.Valid(data) {
		return Result{}, fmt.Errorf("decode %s: content is not valid UTF-8", filepath.Base(path))
	}

	return Result{Text: strings.TrimSpace(string(data))}, nil
}
