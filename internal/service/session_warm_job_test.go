package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubEncryption — считает вызовы WarmCache, остальное не используется.
type stubEncryption struct {
	EncryptionService
	warmCalls atomic.Int64
}

func (s *stubEncryption) WarmCache(context.Context) error {
	s.warmCalls.Add(1)
	return nil
}

func TestSessionWarmJob_RunsImmediatePass(t *testing.T) {
	stub := &stubEncryption{}
	job := NewSessionWarmJob(stub)

	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return stub.warmCalls.Load() >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestSessionWarmJob_Ticks(t *testing.T) {
	stub := &stubEncryption{}
	job := NewSessionWarmJob(stub)

	job.Start(context.Background(), 20*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return stub.warmCalls.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestSessionWarmJob_StopIsIdempotent(t *testing.T) {
	job := NewSessionWarmJob(&stubEncryption{})

	// Stop без Start — no-op
	job.Stop()

	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}

func TestWarmWorker_RunStartsJob(t *testing.T) {
	stub := &stubEncryption{}
	job := NewSessionWarmJob(stub)
	defer job.Stop()

	worker := NewWarmWorker(context.Background(), job, time.Hour)
	worker.Run()

	assert.Eventually(t, func() bool {
		return stub.warmCalls.Load() >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestSessionWarmJob_RestartReplacesPrevious(t *testing.T) {
	stub := &stubEncryption{}
	job := NewSessionWarmJob(stub)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return stub.warmCalls.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}
