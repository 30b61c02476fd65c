package translate

import "context"

// Result is the outcome of one translation call
type Result struct {
	TranslatedText     string
	SourceLanguageCode string
	SourceLanguageName string
}

// Translator sends text to a translation service and returns the translated
// text plus the detected source language. Empty input returns (nil, nil)
// without a network call.
type Translator interface {
	Translate(ctx context.Context, text string) (*Result, error)
}
