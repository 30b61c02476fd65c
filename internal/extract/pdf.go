package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/raster"
)

// sparseTextThreshold is the hybrid heuristic: a page whose text layer holds
// fewer runes than this is treated as image-only and re-OCR'd. Pages with
// sparse but genuine text get re-OCR'd too; that is accepted behavior.
const sparseTextThreshold = 20

type pdfExtractor struct {
	image      Extractor
	rasterizer raster.Rasterizer
	logger     logger.Logger
}

// NewPDF creates the hybrid PDF extractor. Pages with a usable text layer are
// read directly; sparse pages are rasterized and routed through the image
// extractor.
func NewPDF(image Extractor, rasterizer raster.Rasterizer, log logger.Logger) Extractor {
	return &pdfExtractor{
		image:      image,
		rasterizer: rasterizer,
		logger:     log,
	}
}

func (e *pdfExtractor) Extract(ctx context.Context, path string) (result Result, err error) {
	// The pdf library panics on some malformed files; keep that inside the
	// extractor boundary.
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("parse %s: %v", filepath.Base(path), r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	total := reader.NumPage()
	e.logger.Debug(ctx, "PDF %s has %d pages", filepath.Base(path), total)

	var pages []string
	var notes []string
	for num := 1; num <= total; num++ {
		text, pageNotes := e.extractPage(ctx, reader, path, num)
		pages = append(pages, text)
		notes = append(notes, pageNotes...)
	}

	return Result{
		Text:  strings.TrimSpace(strings.Join(pages, "\n")),
		Notes: notes,
	}, nil
}

// extractPage returns the text for one page plus any diagnostic notes
func (e *pdfExtractor) extractPage(ctx context.Context, reader *pdflib.Reader, path string, num int) (string, []string) {
	var direct string
	var readErr error
	var notes []string
	page := reader.Page(num)
	if !page.V.IsNull() {
		direct, readErr = page.GetPlainText(nil)
		if readErr != nil {
			direct = ""
			notes = append(notes, fmt.Sprintf("page %d: text layer unreadable: %v", num, readErr))
		}
	}

	if !pageNeedsOCR(direct, readErr) {
		return direct, notes
	}

	// Image-only page: rasterize and OCR it
	imagePath, err := e.rasterizer.PageToImage(ctx, path, num)
	if err != nil {
		return direct, append(notes, fmt.Sprintf("page %d: rasterize failed: %v", num, err))
	}
	defer os.Remove(imagePath)

	res, err := e.image.Extract(ctx, imagePath)
	if err != nil {
		return direct, append(notes, fmt.Sprintf("page %d: OCR failed: %v", num, err))
	}

	e.logger.Debug(ctx, "Page %d re-OCR'd (%d direct runes)", num, utf8.RuneCountInString(direct))
	return res.Text, notes
}

// pageNeedsOCR reports whether the direct extraction attempt warrants the
// raster+OCR fallback. An unreadable text layer reads as a scanned page.
func pageNeedsOCR(direct string, readErr error) bool {
	return readErr != nil || sparse(direct)
}

func sparse(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < sparseTextThreshold
}
