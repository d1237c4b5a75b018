// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
)

const defaultSweepInterval = 5 * time.Minute

type sweepWorker struct {
	sweeper  Sweeper
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweepWorker creates a worker that calls sweeper.SweepExpired on a
// ticker. A non-positive interval falls back to five minutes. The worker is
// idle until Start is called.
func NewSweepWorker(sweeper Sweeper, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &sweepWorker{
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Start stops any previous run and launches the sweep loop. Sweeps never
// overlap: a tick that fires while a sweep is running is dropped by the
// ticker.
func (w *sweepWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("sweep worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.sweep(jobCtx)
			}
		}
	}()
}

func (w *sweepWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *sweepWorker) sweep(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)

	count, err := w.sweeper.SweepExpired(ctx, w.now())
	if err != nil {
		// the next tick retries; already deleted blobs are skipped
		w.logger.Err(err).Str("func", "sweepWorker.sweep").Msg("expiry sweep failed")
		return
	}
	if count > 0 {
		w.logger.Info().Int("expired", count).Msg("expiry sweep finished")
	}
}
