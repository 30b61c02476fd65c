package report

import (
	"context"

	"github.com/nguyentantai21042004/translate-flow/internal/translate"
)

// Reporter renders per-file processing status to the console
type Reporter interface {
	FileFound(ctx context.Context, name string)
	SourceText(ctx context.Context, text string)
	Translated(ctx context.Context, res *translate.Result)
	TranslationFailed(ctx context.Context, err error)
	NoTextFound(ctx context.Context, name string)
	Unsupported(ctx context.Context, name string)
	ExtractionFailed(ctx context.Context, name string, err error)
	Notes(ctx context.Context, notes []string)
	Archived(ctx context.Context, name, destination string)
	ArchiveFailed(ctx context.Context, name string, err error)
}
