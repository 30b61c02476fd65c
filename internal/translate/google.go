package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// implGoogle talks to the public web translate endpoint. The response is an
// untyped nested array: element 0 holds [translated, original, ...] segment
// pairs, element 2 the detected source language code.
type implGoogle struct {
	targetLanguage string
	baseURL        string
	client         *http.Client
	logger         logger.Logger
}

func (t *implGoogle) Translate(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", t.targetLanguage)
	params.Set("dt", "t")
	params.Set("q", text)

	// The text goes in the form body; multi-page OCR output can exceed URL
	// length limits
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation service: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	translated, code, err := parseGoogleResponse(body)
	if err != nil {
		return nil, err
	}

	t.logger.Debug(ctx, "Translated %d bytes, detected source %q", len(text), code)
	return &Result{
		TranslatedText:     translated,
		SourceLanguageCode: code,
		SourceLanguageName: LanguageName(code),
	}, nil
}

func parseGoogleResponse(body []byte) (string, string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload) < 3 {
		return "", "", fmt.Errorf("decode response: unexpected shape")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", "", fmt.Errorf("decode response: missing segments")
	}

	var sb strings.Builder
	for _, seg := range segments {
		pair, ok := seg.([]interface{})
		if !ok || len(pair) == 0 {
			continue
		}
		if chunk, ok := pair[0].(string); ok {
			sb.WriteString(chunk)
		}
	}

	code, ok := payload[2].(string)
	if !ok {
		return "", "", fmt.Errorf("decode response: missing source language")
	}

	return sb.String(), code, nil
}
