// Package extract turns files of the supported formats into plain text.
package extract

import (
	"context"

	"github.com/nguyentantai21042004/translate-flow/internal/classify"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/ocr"
	"github.com/nguyentantai21042004/translate-flow/internal/raster"
)

// Result holds the extracted text plus per-unit diagnostics for multi-unit
// formats (PDF pages, slides). Text may be empty.
type Result struct {
	Text  string
	Notes []string
}

// Extractor produces plain text from a file. Extraction is read-only; the
// source file is never modified.
type Extractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// Registry maps each capability to the extractor that handles it
type Registry map[classify.Capability]Extractor

// NewRegistry wires one extractor per supported capability
func NewRegistry(engine ocr.Engine, rasterizer raster.Rasterizer, log logger.Logger) Registry {
	image := NewImage(engine, log)
	return Registry{
		classify.Image: image,
		classify.Text:  NewText(log),
		classify.PDF:   NewPDF(image, rasterizer, log),
		classify.Docx:  NewDocx(log),
		classify.Pptx:  NewPptx(log),
	}
}

// For returns the extractor for a capability, if one is registered
func (r Registry) For(c classify.Capability) (Extractor, bool) {
	e, ok := r[c]
	return e, ok
}
