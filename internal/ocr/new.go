package ocr

import (
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

type implEngine struct {
	languages []string
	logger    logger.Logger
}

// New creates a Tesseract-backed OCR engine. languages are Tesseract language
// codes such as "eng" or "deu".
func New(languages []string, log logger.Logger) Engine {
	return &implEngine{
		languages: languages,
		logger:    log,
	}
}
