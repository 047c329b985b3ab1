package service

import (
	"context"
	"sync"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
)

// syncJob runs one sync operation on a fixed interval. Overlap protection
// lives in the operation itself (the dispatcher's in-progress guard), so the
// job never suppresses ticks.
type syncJob struct {
	run func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a job that calls run on a ticker. The job is idle until
// Start is called.
func NewSyncJob(run func(ctx context.Context) error) SyncJob {
	return &syncJob{run: run}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that fires the operation immediately and
// again every interval. If interval is zero or negative it defaults to
// 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// runOnce fires one cycle. A failed cycle is logged and the ticker keeps
// going; the next tick retries naturally.
func (j *syncJob) runOnce(ctx context.Context) {
	if err := j.run(ctx); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "syncJob.runOnce").
			Msg("sync cycle failed")
	}
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
