package processor

import "context"

// OutcomeKind classifies what happened to one file
type OutcomeKind int

const (
	// Translated means text was extracted and translated
	Translated OutcomeKind = iota
	// ExtractedOnly means text was extracted but translation was unavailable
	ExtractedOnly
	// NoText means extraction ran but found nothing
	NoText
	// Unsupported means no extractor handles the file's format
	Unsupported
	// ExtractFailed means the extractor reported an error
	ExtractFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Translated:
		return "translated"
	case ExtractedOnly:
		return "extracted-no-translation"
	case NoText:
		return "no-text-found"
	case Unsupported:
		return "unsupported"
	case ExtractFailed:
		return "extraction-error"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing one file. Destination is empty when the
// archive move failed and the file stays in the watch directory.
type Outcome struct {
	Kind        OutcomeKind
	Destination string
}

// Processor runs the full pipeline for a single file
type Processor interface {
	Process(ctx context.Context, filePath string) Outcome
}
