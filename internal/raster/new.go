package raster

import (
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/pkg/executor"
)

const popplerBinary = "pdftoppm"

type implRasterizer struct {
	dpi      int
	executor executor.Executor
	logger   logger.Logger
	tempDir  string
}

// New creates a poppler-backed rasterizer rendering pages at the given DPI
func New(dpi int, exec executor.Executor, log logger.Logger) Rasterizer {
	return &implRasterizer{
		dpi:      dpi,
		executor: exec,
		logger:   log,
	}
}

// Available reports whether the poppler pdftoppm binary is installed
func Available(exec executor.Executor) bool {
	return exec.Available(popplerBinary)
}
