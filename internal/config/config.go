package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Poll        PollConfig        `yaml:"poll"`
	OCR         OCRConfig         `yaml:"ocr"`
	PDF         PDFConfig         `yaml:"pdf"`
	Translation TranslationConfig `yaml:"translation"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type PathsConfig struct {
	Watch     string `yaml:"watch"`
	Processed string `yaml:"processed"`
}

type PollConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

type OCRConfig struct {
	Languages []string `yaml:"languages"`
}

type PDFConfig struct {
	RasterDPI int `yaml:"raster_dpi"`
}

type TranslationConfig struct {
	TargetLanguage string   `yaml:"target_language"`
	Backend        string   `yaml:"backend"`
	GeminiAPIKeys  []string `yaml:"gemini_api_keys"`
	GeminiModel    string   `yaml:"gemini_model"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the configuration file, applies defaults and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Watch == "" {
		return fmt.Errorf("paths.watch is required")
	}
	if c.Poll.IntervalSeconds < 0 {
		return fmt.Errorf("poll.interval_seconds must not be negative")
	}
	if c.PDF.RasterDPI < 0 {
		return fmt.Errorf("pdf.raster_dpi must not be negative")
	}

	if c.Paths.Processed == "" {
		c.Paths.Processed = filepath.Join(c.Paths.Watch, "processed")
	}
	if c.Poll.IntervalSeconds == 0 {
		c.Poll.IntervalSeconds = 5
	}
	if len(c.OCR.Languages) == 0 {
		c.OCR.Languages = []string{"eng"}
	}
	if c.PDF.RasterDPI == 0 {
		c.PDF.RasterDPI = 300
	}
	if c.Translation.TargetLanguage == "" {
		c.Translation.TargetLanguage = "en"
	}
	if c.Translation.GeminiModel == "" {
		c.Translation.GeminiModel = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	switch c.Translation.Backend {
	case "":
		c.Translation.Backend = "google"
	case "google":
	case "gemini":
		if len(c.Translation.GeminiAPIKeys) == 0 {
			return fmt.Errorf("translation.gemini_api_keys is required for the gemini backend")
		}
	default:
		return fmt.Errorf("translation.backend must be google or gemini, got %q", c.Translation.Backend)
	}

	return nil
}
