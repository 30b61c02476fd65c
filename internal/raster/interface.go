package raster

import "context"

// Rasterizer renders a single PDF page into an RGB raster image file
type Rasterizer interface {
	// PageToImage renders the given 1-indexed page and returns the path of
	// the generated image. The file lives in the rasterizer's temp dir and
	// is removed by Close.
	PageToImage(ctx context.Context, pdfPath string, page int) (string, error)
	Close() error
}
