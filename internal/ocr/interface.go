package ocr

import (
	"context"
	"errors"
)

// ErrEngineNotFound indicates the Tesseract engine or its language data is
// missing. Recognition cannot succeed until the engine is installed, but the
// pipeline keeps running.
var ErrEngineNotFound = errors.New("ocr engine not found")

// Engine recognizes text in an image file
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}
