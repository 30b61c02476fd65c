package processor

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/translate-flow/internal/classify"
)

// Process runs classify → extract → translate → report → archive for one
// file. The archive move is attempted regardless of what the earlier stages
// produced; a failed move leaves the file in place for the next cycle.
func (p *implProcessor) Process(ctx context.Context, filePath string) Outcome {
	name := filepath.Base(filePath)
	p.reporter.FileFound(ctx, name)

	kind := p.dispatch(ctx, filePath, name)

	outcome := Outcome{Kind: kind}
	dest, err := p.archive(filePath)
	if err != nil {
		p.reporter.ArchiveFailed(ctx, name, err)
	} else {
		outcome.Destination = dest
		p.reporter.Archived(ctx, name, dest)
	}

	p.logger.Debug(ctx, "Finished %s: %s", name, outcome.Kind)
	return outcome
}

func (p *implProcessor) dispatch(ctx context.Context, filePath, name string) OutcomeKind {
	capability := classify.Classify(filepath.Ext(name))
	extractor, ok := p.extractors.For(capability)
	if !ok {
		p.reporter.Unsupported(ctx, name)
		return Unsupported
	}

	result, err := extractor.Extract(ctx, filePath)
	if err != nil {
		p.reporter.ExtractionFailed(ctx, name, err)
		return ExtractFailed
	}
	if len(result.Notes) > 0 {
		p.reporter.Notes(ctx, result.Notes)
	}
	if result.Text == "" {
		p.reporter.NoTextFound(ctx, name)
		return NoText
	}

	p.reporter.SourceText(ctx, result.Text)

	translation, err := p.translator.Translate(ctx, result.Text)
	if err != nil {
		p.reporter.TranslationFailed(ctx, err)
		return ExtractedOnly
	}
	if translation == nil {
		return ExtractedOnly
	}

	p.reporter.Translated(ctx, translation)
	return Translated
}
