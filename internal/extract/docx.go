package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

type docxExtractor struct {
	logger logger.Logger
}

// NewDocx creates an extractor for Word documents, one paragraph per line
func NewDocx(log logger.Logger) Extractor {
	return &docxExtractor{logger: log}
}

func (e *docxExtractor) Extract(ctx context.Context, path string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("parse %s: %v", filepath.Base(path), r)
		}
	}()

	doc, err := godocx.OpenDocument(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}

	var lines []string
	for _, child := range doc.Document.Body.Children {
		if child.Para == nil {
			continue
		}
		lines = append(lines, paragraphText(child.Para))
	}

	e.logger.Debug(ctx, "Docx %s has %d paragraphs", filepath.Base(path), len(lines))
	return Result{Text: strings.TrimSpace(strings.Join(lines, "\n"))}, nil
}

// paragraphText concatenates the text runs of a paragraph in stored order
func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.GetCT().Children {
		if child.Run == nil {
			continue
		}
		for _, rc := range child.Run.Children {
			if rc.Text != nil {
				sb.WriteString(rc.Text.Text)
			}
		}
	}
	return sb.String()
}
