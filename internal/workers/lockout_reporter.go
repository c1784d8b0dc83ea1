package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/lockout"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// LockoutReporter periodically logs how many identifiers the lockout
// governor tracks and how many of them are in a cooldown.
type LockoutReporter struct {
	governor lockout.Governor
	interval time.Duration
	logger   *logger.Logger

	// last is the previously reported snapshot. Unchanged tables are logged
	// at debug level only.
	last lockout.Stats
}

func NewLockoutReporter(governor lockout.Governor, interval time.Duration, logger *logger.Logger) *LockoutReporter {
	return &LockoutReporter{
		governor: governor,
		interval: interval,
		logger:   logger,
	}
}

func (r *LockoutReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("lockout reporter started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("lockout reporter stopped")
			return
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *LockoutReporter) report() {
	stats := r.governor.Stats()

	event := r.logger.Debug()
	if stats != r.last {
		event = r.logger.Info()
	}
	event.Int("tracked", stats.Tracked).Int("locked", stats.Locked).Msg("lockout table")

	r.last = stats
}
