package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Recognize runs full-image OCR and returns the recognized text, trimmed.
// A fresh client per call keeps the engine state out of the pipeline; the
// loop is single-file anyway.
func (e *implEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("%w: set languages %v: %v", ErrEngineNotFound, e.languages, err)
		}
	}

	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("load image %s: %w", filepath.Base(imagePath), err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize %s: %w", filepath.Base(imagePath), err)
	}

	e.logger.Debug(ctx, "OCR recognized %d bytes from %s", len(text), filepath.Base(imagePath))
	return strings.TrimSpace(text), nil
}
