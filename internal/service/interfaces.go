// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

// Package service implements the sync engine: the batched queue dispatcher
// that pushes local read/star changes to the remote feed-aggregation
// service, the pull sync that imports remote state with a remote-wins
// conflict policy, and the retention-driven cleanup engine.
package service

import (
	"context"
	"time"

	"github.com/dkotelnikov/feedsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncQueueService drives the local→remote half of the sync cycle.
type SyncQueueService interface {
	// Enqueue records one local mutation for later dispatch.
	Enqueue(ctx context.Context, action models.SyncActionType, inoreaderID string) (models.SyncQueueItem, error)

	// ProcessSyncQueue runs one dispatch cycle: gate, group, chunk, send.
	// Returns [ErrSyncInProgress] if a cycle is already running; all other
	// failures are handled internally and reflected in retry bookkeeping.
	ProcessSyncQueue(ctx context.Context) error

	// GetSyncQueueStats returns the monitoring snapshot of the queue.
	GetSyncQueueStats(ctx context.Context) (models.SyncQueueStats, error)

	// ClearFailedItems purges items that exhausted their retries and are
	// older than olderThan, returning the number removed.
	ClearFailedItems(ctx context.Context, olderThan time.Time) (int64, error)
}

// PullSyncService drives the remote→local half of the sync cycle.
type PullSyncService interface {
	// PullSync imports the remote subscription list and reading-list stream,
	// resolving local/remote divergence remote-wins, then runs cleanup.
	PullSync(ctx context.Context) error
}

// CleanupService enforces the retention policy on the local mirror.
type CleanupService interface {
	// RunCleanup deletes read articles beyond the retention limit and local
	// feeds that disappeared from the remote subscription list. A partially
	// failed article pass is reported as [ErrPartialCleanup].
	RunCleanup(ctx context.Context) error
}

// SyncJob is a periodically firing background worker around one sync
// operation.
type SyncJob interface {
	// Start launches the job: one immediate run, then one per interval until
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit. Safe
	// to call when the job is not running.
	Stop()
}
