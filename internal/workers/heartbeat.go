package workers

import (
	"context"
	"time"

	"github.com/hostmon/collector/internal/logger"
)

// ScrapeConfig is the slice of the resolved configuration the heartbeat
// worker reads.
type ScrapeConfig interface {
	ScrapeInterval() int
	TurnOffScrape() bool
	Hostname() string
}

// Heartbeat logs agent liveness on every scrape tick. It exercises the
// scrape scheduling settings while the capture engine itself lives
// outside this process's scope.
type Heartbeat struct {
	cfg ScrapeConfig
	log *logger.Logger
}

func NewHeartbeat(cfg ScrapeConfig, log *logger.Logger) *Heartbeat {
	if log == nil {
		log = logger.Nop()
	}

	return &Heartbeat{cfg: cfg, log: log}
}

// Run ticks at the resolved scrape interval until ctx is cancelled.
// When scraping is turned off the worker exits immediately.
func (h *Heartbeat) Run(ctx context.Context) {
	if h.cfg.TurnOffScrape() {
		h.log.Info().Msg("scraping is turned off, heartbeat worker not starting")
		return
	}

	interval := time.Duration(h.cfg.ScrapeInterval()) * time.Second
	if interval <= 0 {
		h.log.Warn().Int("scrapeInterval", h.cfg.ScrapeInterval()).Msg("non-positive scrape interval, heartbeat worker not starting")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.log.Debug().Str("hostname", h.cfg.Hostname()).Msg("scrape tick")
		}
	}
}
