package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/lockout"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg.
func NewWorkers(governor lockout.Governor, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.LockoutReportInterval > 0 && governor != nil {
		w.workers = append(w.workers, NewLockoutReporter(governor, cfg.LockoutReportInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and waits for all of them
// to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
