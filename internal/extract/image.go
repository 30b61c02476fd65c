package extract

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/ocr"
)

type imageExtractor struct {
	engine ocr.Engine
	logger logger.Logger
}

// NewImage creates an extractor that runs full-page OCR over an image file
func NewImage(engine ocr.Engine, log logger.Logger) Extractor {
	return &imageExtractor{
		engine: engine,
		logger: log,
	}
}

func (e *imageExtractor) Extract(ctx context.Context, path string) (Result, error) {
	text, err := e.engine.Recognize(ctx, path)
	if err != nil {
		return Result{}, err
	}

	e.logger.Debug(ctx, "Image OCR yielded %d bytes for %s", len(text), filepath.Base(path))
	return Result{Text: text}, nil
}
