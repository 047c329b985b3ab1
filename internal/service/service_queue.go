package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/store"
	"github.com/dkotelnikov/feedsync/models"
)

// remoteService is the service label of the api_usage counters.
const remoteService = "inoreader"

// syncQueueService is the concrete implementation of [SyncQueueService].
//
// One dispatch cycle reads every pending queue item, groups items by action
// type, splits each group into chunks of at most cfg.BatchSize ids and sends
// one edit-tag call per chunk. Confirmed chunks are deleted from the queue;
// failed chunks get their attempt counters bumped and are retried on a later
// cycle until cfg.MaxRetries is reached. The persisted sync_attempts column
// is the sole source of truth for retry state, so restarts lose nothing.
type syncQueueService struct {
	queue   store.QueueRepository
	usage   store.UsageRepository
	adapter adapter.InoreaderAdapter

	cfg config.Sync
	now func() time.Time

	// running guards against overlapping cycles (slow network vs. ticker).
	running atomic.Bool

	mu              sync.RWMutex
	lastProcessedAt time.Time

	logger *logger.Logger
}

// NewSyncQueueService constructs a [SyncQueueService] over the given
// repositories and remote adapter.
func NewSyncQueueService(queue store.QueueRepository, usage store.UsageRepository, remote adapter.InoreaderAdapter, cfg config.Sync, logger *logger.Logger) SyncQueueService {
	return &syncQueueService{
		queue:   queue,
		usage:   usage,
		adapter: remote,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
}

// Enqueue implements [SyncQueueService].
func (s *syncQueueService) Enqueue(ctx context.Context, action models.SyncActionType, inoreaderID string) (models.SyncQueueItem, error) {
	item, err := s.queue.Enqueue(ctx, action, inoreaderID)
	if err != nil {
		return models.SyncQueueItem{}, fmt.Errorf("enqueue sync item: %w", err)
	}
	return item, nil
}

// ProcessSyncQueue implements [SyncQueueService].
func (s *syncQueueService) ProcessSyncQueue(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer func() {
		s.mu.Lock()
		s.lastProcessedAt = s.now()
		s.mu.Unlock()
		s.running.Store(false)
	}()

	log := logger.FromContext(ctx)

	items, err := s.queue.GetPending(ctx, s.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("load pending sync items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	if s.shouldSkip(items) {
		log.Debug().
			Str("func", "syncQueueService.ProcessSyncQueue").
			Int("pending", len(items)).
			Int("min_changes", s.cfg.MinChanges).
			Msg("below batching threshold and nothing stale, skipping cycle")
		return nil
	}

	groups, unknown := groupByAction(items)

	if len(unknown) > 0 {
		s.abandonUnknown(ctx, unknown)
	}

	for _, action := range models.AllActionTypes {
		batch := groups[action]
		if len(batch) == 0 {
			continue
		}

		for _, chunk := range chunkItems(batch, s.cfg.BatchSize) {
			if rateLimited := s.dispatchChunk(ctx, action, chunk); rateLimited {
				log.Warn().
					Str("func", "syncQueueService.ProcessSyncQueue").
					Msg("remote rate limit reached, stopping cycle early")
				return nil
			}
		}
	}

	return nil
}

// shouldSkip applies the batching gate: fewer pending changes than the
// threshold and none older than the staleness window.
func (s *syncQueueService) shouldSkip(items []models.SyncQueueItem) bool {
	if len(items) >= s.cfg.MinChanges {
		return false
	}

	cutoff := s.now().Add(-s.cfg.StalenessWindow)
	for _, item := range items {
		if item.CreatedAt.Before(cutoff) {
			return false
		}
	}

	return true
}

// dispatchChunk sends one edit-tag call for a chunk and settles the queue
// rows accordingly. It reports whether the remote signalled a rate limit, in
// which case the caller stops the cycle.
func (s *syncQueueService) dispatchChunk(ctx context.Context, action models.SyncActionType, chunk []models.SyncQueueItem) (rateLimited bool) {
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(chunk))
	rowIDs := make([]int64, 0, len(chunk))
	for _, item := range chunk {
		ids = append(ids, item.InoreaderID)
		rowIDs = append(rowIDs, item.ID)
	}

	err := s.adapter.EditTag(ctx, action, ids)
	if err != nil {
		s.handleSyncError(ctx, chunk, err)
		return errors.Is(err, adapter.ErrRateLimited)
	}

	if _, delErr := s.queue.DeleteByIDs(ctx, rowIDs); delErr != nil {
		// the remote accepted the batch; a failed local delete means these
		// rows will be re-sent, which the edit-tag endpoint tolerates
		log.Err(delErr).
			Str("func", "syncQueueService.dispatchChunk").
			Str("action_type", string(action)).
			Int("items", len(chunk)).
			Msg("failed to delete confirmed queue rows")
	} else {
		log.Info().
			Str("func", "syncQueueService.dispatchChunk").
			Str("action_type", string(action)).
			Int("items", len(chunk)).
			Msg("batch confirmed by remote")
	}

	s.trackAPIUsage(ctx)

	return false
}

// handleSyncError bumps the attempt counters of a failed chunk with one
// targeted update and logs items that just exhausted their retries.
func (s *syncQueueService) handleSyncError(ctx context.Context, chunk []models.SyncQueueItem, cause error) {
	log := logger.FromContext(ctx)

	rowIDs := make([]int64, 0, len(chunk))
	for _, item := range chunk {
		rowIDs = append(rowIDs, item.ID)
	}

	log.Err(cause).
		Str("func", "syncQueueService.handleSyncError").
		Int("items", len(chunk)).
		Msg("batch dispatch failed")

	if err := s.queue.MarkAttempt(ctx, rowIDs, s.now()); err != nil {
		log.Err(err).
			Str("func", "syncQueueService.handleSyncError").
			Msg("failed to record sync attempt")
		return
	}

	for _, item := range chunk {
		if item.SyncAttempts+1 >= s.cfg.MaxRetries {
			log.Warn().
				Str("func", "syncQueueService.handleSyncError").
				Int64("item_id", item.ID).
				Str("inoreader_id", item.InoreaderID).
				Int("attempts", item.SyncAttempts+1).
				Msg("item exhausted retries, excluded from future dispatch")
		}
	}
}

// abandonUnknown parks items whose action type no code path can dispatch.
// Retrying cannot help, so they go straight past the retry cap.
func (s *syncQueueService) abandonUnknown(ctx context.Context, items []models.SyncQueueItem) {
	log := logger.FromContext(ctx)

	rowIDs := make([]int64, 0, len(items))
	for _, item := range items {
		log.Warn().
			Str("func", "syncQueueService.abandonUnknown").
			Int64("item_id", item.ID).
			Str("action_type", string(item.ActionType)).
			Msg("unknown action type, abandoning item")
		rowIDs = append(rowIDs, item.ID)
	}

	if err := s.queue.Abandon(ctx, rowIDs, s.cfg.MaxRetries, s.now()); err != nil {
		log.Err(err).
			Str("func", "syncQueueService.abandonUnknown").
			Msg("failed to abandon items with unknown action types")
	}
}

// trackAPIUsage bumps today's advisory call counter. Failures are logged and
// swallowed: bookkeeping must never fail a confirmed sync.
func (s *syncQueueService) trackAPIUsage(ctx context.Context) {
	log := logger.FromContext(ctx)

	date := s.now().UTC().Format(models.UsageDateLayout)
	if err := s.usage.Increment(ctx, remoteService, date); err != nil {
		log.Warn().
			Err(err).
			Str("func", "syncQueueService.trackAPIUsage").
			Str("date", date).
			Msg("failed to track api usage")
	}
}

// GetSyncQueueStats implements [SyncQueueService].
func (s *syncQueueService) GetSyncQueueStats(ctx context.Context) (models.SyncQueueStats, error) {
	stats, err := s.queue.Stats(ctx, s.cfg.MaxRetries)
	if err != nil {
		return models.SyncQueueStats{}, fmt.Errorf("load sync queue stats: %w", err)
	}
	return stats, nil
}

// ClearFailedItems implements [SyncQueueService].
func (s *syncQueueService) ClearFailedItems(ctx context.Context, olderThan time.Time) (int64, error) {
	removed, err := s.queue.ClearFailed(ctx, s.cfg.MaxRetries, olderThan)
	if err != nil {
		return 0, fmt.Errorf("clear failed sync items: %w", err)
	}
	return removed, nil
}

// groupByAction splits pending items into per-action groups, preserving the
// oldest-first order inside each group. Items with unrecognized action types
// are returned separately.
func groupByAction(items []models.SyncQueueItem) (map[models.SyncActionType][]models.SyncQueueItem, []models.SyncQueueItem) {
	groups := make(map[models.SyncActionType][]models.SyncQueueItem, len(models.AllActionTypes))
	var unknown []models.SyncQueueItem

	for _, item := range items {
		if !item.ActionType.Valid() {
			unknown = append(unknown, item)
			continue
		}
		groups[item.ActionType] = append(groups[item.ActionType], item)
	}

	return groups, unknown
}

// chunkItems splits items into slices of at most size elements.
func chunkItems(items []models.SyncQueueItem, size int) [][]models.SyncQueueItem {
	if size <= 0 {
		return [][]models.SyncQueueItem{items}
	}

	chunks := make([][]models.SyncQueueItem, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
