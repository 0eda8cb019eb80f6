package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-seal/internal/workers"
)

// warmWorker adapts a started warm job to the workers.Worker contract so it
// can run under a workers aggregate.
type warmWorker struct {
	job      SessionWarmJob
	ctx      context.Context
	interval time.Duration
}

// NewWarmWorker wraps job for the workers aggregate; Run starts the job with
// the given interval and returns immediately.
func NewWarmWorker(ctx context.Context, job SessionWarmJob, interval time.Duration) workers.Worker {
	return &warmWorker{job: job, ctx: ctx, interval: interval}
}

func (w *warmWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

type sessionWarmJob struct {
	encryption EncryptionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWarmJob creates a sessionWarmJob that calls WarmCache on a
// ticker. The job is idle until Start is called.
func NewSessionWarmJob(encryption EncryptionService) SessionWarmJob {
	return &sessionWarmJob{encryption: encryption}
}

// Start implements [SessionWarmJob]. It stops any previously running job,
// runs one immediate warm pass, then repeats every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *sessionWarmJob) Start(ctx context.Context, interval time.Duration) {
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
		_ = j.encryption.WarmCache(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.encryption.WarmCache(jobCtx)
			}
		}
	}()
}

// Stop implements [SessionWarmJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *sessionWarmJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
