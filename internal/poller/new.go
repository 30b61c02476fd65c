package poller

import (
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/processor"
)

type implPoller struct {
	watchDir string
	interval time.Duration
	proc     processor.Processor
	logger   logger.Logger
}

// New creates a Poller scanning watchDir every interval
func New(watchDir string, interval time.Duration, proc processor.Processor, log logger.Logger) Poller {
	return &implPoller{
		watchDir: watchDir,
		interval: interval,
		proc:     proc,
		logger:   log,
	}
}
