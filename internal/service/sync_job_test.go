// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRun считает вызовы операции синхронизации.
type spyRun struct {
	calls atomic.Int64
	err   error
}

func (s *spyRun) run(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)
	require.NotNil(t, job)

	var _ SyncJob = job
}

func TestSyncJob_Start_FiresImmediatelyThenOnTicker(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)
	ctx := context.Background()

	// интервал 10ms — за 55ms ожидаем первый немедленный запуск плюс ~5 тиков
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(4), "expected immediate run plus ticker runs, got: %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "после Stop новых вызовов быть не должно")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob((&spyRun{}).run)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 → дефолт 5 минут: только немедленный запуск
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
		// ok
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_RunError_DoesNotStopJob(t *testing.T) {
	spy := &spyRun{err: assert.AnError}
	job := NewSyncJob(spy.run)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "job keeps firing despite errors, got: %d", got)
}

func TestSyncJob_RunError_LoggedFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	ctx := l.WithContext(context.Background())

	spy := &spyRun{err: assert.AnError}
	job := NewSyncJob(spy.run)

	// interval <= 0 → дефолт 5 минут: ровно один немедленный запуск
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Contains(t, buf.String(), "sync cycle failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyRun{}
	job := NewSyncJob(spy.run)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// повторный Start останавливает предыдущую горутину и продолжает
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}
