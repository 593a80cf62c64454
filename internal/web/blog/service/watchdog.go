package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/robfig/cron/v3"
)

// SeedWatchdog periodically re-runs the seed repair while the server is
// running, protecting the seeded admin against manual deletion. It owns
// its scheduler so tests and shutdown can stop it cleanly.
type SeedWatchdog struct {
	logger   glog.Logger
	svc      *Blog
	interval time.Duration
	cron     *cron.Cron
}

// NewSeedWatchdog create a watchdog running EnsureSeedAdmin every interval.
func NewSeedWatchdog(logger glog.Logger, svc *Blog, interval time.Duration) *SeedWatchdog {
	if interval <= 0 {
		interval = defaultWatchdogInterval
	}

	return &SeedWatchdog{
		logger:   logger,
		svc:      svc,
		interval: interval,
		cron:     cron.New(),
	}
}

// Start schedule the repair job and begin running it.
func (w *SeedWatchdog) Start() error {
	if _, err := w.cron.AddFunc(
		fmt.Sprintf("@every %s", w.interval), w.run); err != nil {
		return errors.Wrap(err, "schedule seed watchdog")
	}

	w.cron.Start()
	w.logger.Info("seed watchdog started", zap.Duration("interval", w.interval))
	return nil
}

// Stop halt the scheduler and wait for a running job to finish.
func (w *SeedWatchdog) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info("seed watchdog stopped")
}

// run is one repair tick. Failures are logged and the loop continues; the
// watchdog never takes the process down.
func (w *SeedWatchdog) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := w.svc.EnsureSeedAdmin(ctx)
	if err != nil {
		w.logger.Error("seed watchdog", zap.Error(err))
		return
	}

	switch {
	case result.Created:
		w.logger.Info("watchdog recreated seed admin", zap.String("email", result.Email))
	case result.Promoted:
		w.logger.Info("watchdog repaired seed admin", zap.String("email", result.Email))
	}
}
