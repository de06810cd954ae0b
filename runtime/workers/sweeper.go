package workers

import (
	"context"
	"log/slog"
	"time"

	"bate-papo/services"
)

// SweeperWorker periodically evicts participants that stopped
// heartbeating. The threshold is deliberately shorter than the tick
// interval: a silent participant may linger up to interval+threshold,
// which is fine because clients heartbeat well inside the threshold.
type SweeperWorker struct {
	registry  services.IRegistryService
	interval  time.Duration
	threshold time.Duration
	log       *slog.Logger
}

func NewSweeperWorker(
	registry services.IRegistryService,
	interval, threshold time.Duration,
	log *slog.Logger,
) *SweeperWorker {
	return &SweeperWorker{
		registry:  registry,
		interval:  interval,
		threshold: threshold,
		log:       log,
	}
}

func (w *SweeperWorker) Run(ctx context.Context) error {
	w.log.Info("Starting sweeper", "interval", w.interval, "threshold", w.threshold)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			removed, err := w.registry.Sweep(time.Now().UTC(), w.threshold)
			if err != nil {
				w.log.Error("Sweep cycle failed", "err", err)
				continue
			}
			if len(removed) > 0 {
				w.log.Info("Swept inactive participants", "removed", removed)
			}
		}
	}
}
