package raster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// PageToImage renders one PDF page to a PNG at the configured DPI.
// pdftoppm writes <prefix>.png when -singlefile is set.
func (r *implRasterizer) PageToImage(ctx context.Context, pdfPath string, page int) (string, error) {
	if r.tempDir == "" {
		dir, err := os.MkdirTemp("", "raster-*")
		if err != nil {
			return "", fmt.Errorf("create temp dir: %w", err)
		}
		r.tempDir = dir
	}

	outputPrefix := filepath.Join(r.tempDir, fmt.Sprintf("page_%d", page))

	args := []string{
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-png",
		"-r", strconv.Itoa(r.dpi),
		"-singlefile",
		pdfPath,
		outputPrefix,
	}

	if _, err := r.executor.Execute(ctx, popplerBinary, args...); err != nil {
		return "", fmt.Errorf("pdftoppm page %d: %w", page, err)
	}

	imagePath := outputPrefix + ".png"
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("pdftoppm produced no output for page %d: %w", page, err)
	}

	r.logger.Debug(ctx, "Rasterized page %d of %s at %d DPI", page, filepath.Base(pdfPath), r.dpi)
	return imagePath, nil
}

// Close removes the rasterizer's temp dir and everything in it
func (r *implRasterizer) Close() error {
	if r.tempDir == "" {
		return nil
	}
	dir := r.tempDir
	r.tempDir = ""
	return os.RemoveAll(dir)
}
