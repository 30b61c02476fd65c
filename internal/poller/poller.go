package poller

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Start runs the polling loop until the context is cancelled. One cycle
// handles at most one file and completes fully before the next tick; an
// in-flight cycle is never interrupted.
func (p *implPoller) Start(ctx context.Context) error {
	p.logger.Info(ctx, "Polling %s every %s", p.watchDir, p.interval)

	for {
		p.runCycle(ctx)

		// A cancellation that arrived mid-cycle takes effect here, after the
		// cycle completed; the blocking select below would race it against
		// the timer
		select {
		case <-ctx.Done():
			p.logger.Info(ctx, "Poller stopped")
			return ctx.Err()
		default:
		}

		// The sleep starts after the cycle completes, however long it took
		select {
		case <-ctx.Done():
			p.logger.Info(ctx, "Poller stopped")
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

// runCycle scans the watch directory and processes the first file, if any.
// A missing watch directory ends the cycle early; the loop keeps running so
// the condition heals itself when the directory reappears.
func (p *implPoller) runCycle(ctx context.Context) {
	files, err := p.scan()
	if err != nil {
		p.logger.Error(ctx, "Watch directory unavailable: %v", err)
		return
	}
	if len(files) == 0 {
		return
	}

	p.proc.Process(ctx, filepath.Join(p.watchDir, files[0]))
}

// scan lists the regular files in the watch directory, sorted
// lexicographically so selection is deterministic. Subdirectories (including
// the processed dir) are skipped; everything else is fair game, dotfiles
// included, so nothing sits in the watch directory forever.
func (p *implPoller) scan() ([]string, error) {
	entries, err := os.ReadDir(p.watchDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}

	sort.Strings(files)
	return files, nil
}
