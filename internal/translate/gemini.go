package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

const translatePrompt = `Translate the text below into the language with ISO code "%s".
Reply with the ISO 639-1 code of the source language on the first line, then the translation and nothing else.

Text:
---
%s
---`

// implGemini translates through the Gemini API, rotating through the supplied
// API keys on quota errors.
type implGemini struct {
	apiKeys        []string
	currentKey     int
	model          string
	targetLanguage string
	logger         logger.Logger
}

func (t *implGemini) Translate(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	raw, err := t.callGemini(ctx, fmt.Sprintf(translatePrompt, t.targetLanguage, text))
	if err != nil {
		return nil, err
	}

	code, translated := splitCodeAndBody(raw)
	return &Result{
		TranslatedText:     translated,
		SourceLanguageCode: code,
		SourceLanguageName: LanguageName(code),
	}, nil
}

// splitCodeAndBody separates the language-code first line from the
// translation body
func splitCodeAndBody(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	code, body, found := strings.Cut(raw, "\n")
	if !found {
		return "", raw
	}
	return strings.ToLower(strings.TrimSpace(code)), strings.TrimSpace(body)
}

func (t *implGemini) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(t.apiKeys)
	var lastErr error

	for range attempts {
		key := t.apiKeys[t.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			t.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				t.logger.Warn(ctx, "Key %d rate limited, rotating...", t.currentKey+1)
				t.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (t *implGemini) rotateKey() {
	t.currentKey = (t.currentKey + 1) % len(t.apiKeys)
}
