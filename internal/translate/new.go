package translate

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/config"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

// New creates a Translator for the configured backend
func New(cfg config.TranslationConfig, log logger.Logger) (Translator, error) {
	switch cfg.Backend {
	case "google":
		return &implGoogle{
			targetLanguage: cfg.TargetLanguage,
			baseURL:        googleEndpoint,
			client:         &http.Client{Timeout: 30 * time.Second},
			logger:         log,
		}, nil
	case "gemini":
		return &implGemini{
			apiKeys:        cfg.GeminiAPIKeys,
			model:          cfg.GeminiModel,
			targetLanguage: cfg.TargetLanguage,
			logger:         log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown translation backend %q", cfg.Backend)
	}
}
