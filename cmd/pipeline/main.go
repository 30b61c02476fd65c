package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/config"
	"github.com/nguyentantai21042004/translate-flow/internal/extract"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/ocr"
	"github.com/nguyentantai21042004/translate-flow/internal/poller"
	"github.com/nguyentantai21042004/translate-flow/internal/processor"
	"github.com/nguyentantai21042004/translate-flow/internal/raster"
	"github.com/nguyentantai21042004/translate-flow/internal/report"
	"github.com/nguyentantai21042004/translate-flow/internal/translate"
	"github.com/nguyentantai21042004/translate-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Translate Pipeline")
	log.Info(ctx, "========================================")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	if !raster.Available(exec) {
		log.Warn(ctx, "pdftoppm not found in PATH; scanned PDF pages cannot be OCR'd")
	}

	engine := ocr.New(cfg.OCR.Languages, log)
	rasterizer := raster.New(cfg.PDF.RasterDPI, exec, log)
	defer rasterizer.Close()

	translator, err := translate.New(cfg.Translation, log)
	if err != nil {
		log.Error(ctx, "Failed to create translator: %v", err)
		os.Exit(1)
	}

	extractors := extract.NewRegistry(engine, rasterizer, log)
	reporter := report.NewConsole(log)
	proc := processor.New(cfg.Paths.Processed, extractors, translator, reporter, log)

	interval := time.Duration(cfg.Poll.IntervalSeconds) * time.Second
	p := poller.New(cfg.Paths.Watch, interval, proc, log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start poller in goroutine
	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := p.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Watching: %s", cfg.Paths.Watch)
	log.Info(ctx, "Processed files go to: %s", cfg.Paths.Processed)
	log.Info(ctx, "Target language: %s (%s backend)", cfg.Translation.TargetLanguage, cfg.Translation.Backend)
	log.Info(ctx, "OCR languages: %v", cfg.OCR.Languages)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Poller error: %v", err)
	}

	// Graceful shutdown; wait for the in-flight cycle to finish before exiting
	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	<-done

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates the watch and processed directories if they
// don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Watch,
		cfg.Paths.Processed,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
