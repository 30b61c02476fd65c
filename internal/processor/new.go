package processor

import (
	"github.com/nguyentantai21042004/translate-flow/internal/extract"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/report"
	"github.com/nguyentantai21042004/translate-flow/internal/translate"
)

type implProcessor struct {
	processedDir string
	extractors   extract.Registry
	translator   translate.Translator
	reporter     report.Reporter
	logger       logger.Logger
}

// New creates a Processor instance
func New(processedDir string, extractors extract.Registry, translator translate.Translator, reporter report.Reporter, log logger.Logger) Processor {
	return &implProcessor{
		processedDir: processedDir,
		extractors:   extractors,
		translator:   translator,
		reporter:     reporter,
		logger:       log,
	}
}
