package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// queueRepository is the SQL-backed implementation of [QueueRepository].
// It executes all sync-queue operations directly against the "sync_queue"
// table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (item ids, counts, attempt numbers).
type queueRepository struct {
	*DB
	logger *logger.Logger
}

// NewQueueRepository constructs a [QueueRepository] backed by the provided
// database connection and logger.
func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

// Enqueue implements [QueueRepository]. The caller supplies the action and
// remote id; created_at is stamped here so queue ordering does not depend on
// database defaults.
func (q *queueRepository) Enqueue(ctx context.Context, action models.SyncActionType, inoreaderID string) (models.SyncQueueItem, error) {
	log := logger.FromContext(ctx)

	var item models.SyncQueueItem
	row := q.DB.QueryRowContext(ctx, enqueueSyncItem, string(action), inoreaderID, time.Now().UTC())

	scanErr := row.Scan(
		&item.ID,
		&item.ActionType,
		&item.InoreaderID,
		&item.SyncAttempts,
		&item.CreatedAt,
		&item.LastAttemptAt,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "queueRepository.Enqueue").
			Str("action_type", string(action)).
			Str("inoreader_id", inoreaderID).
			Msg("failed to insert sync queue item")
		return models.SyncQueueItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return item, nil
}

// GetPending implements [QueueRepository]. Rows at or beyond maxAttempts are
// excluded so exhausted items stay in the table for auditing but are never
// dispatched again.
func (q *queueRepository) GetPending(ctx context.Context, maxAttempts int) ([]models.SyncQueueItem, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, getPendingSyncItems, maxAttempts)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.GetPending").
			Int("max_attempts", maxAttempts).
			Msg("failed to execute query for pending sync items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SyncQueueItem, 0, 50)

	for rows.Next() {
		var item models.SyncQueueItem

		scanErr := rows.Scan(
			&item.ID,
			&item.ActionType,
			&item.InoreaderID,
			&item.SyncAttempts,
			&item.CreatedAt,
			&item.LastAttemptAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.GetPending").
				Msg("failed to scan sync queue row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "queueRepository.GetPending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// DeleteByIDs implements [QueueRepository]. Called only after the remote
// service confirmed the batch containing these rows.
func (q *queueRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, ErrNothingToDelete
	}

	query, args, err := buildDeleteQueueItemsQuery(ids)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.DeleteByIDs").
			Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.DB.ExecRetryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.DeleteByIDs").
			Int("ids_count", len(ids)).
			Msg("failed to delete confirmed sync queue rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := res.RowsAffected()
	return affected, nil
}

// MarkAttempt implements [QueueRepository].
func (q *queueRepository) MarkAttempt(ctx context.Context, ids []int64, at time.Time) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildMarkAttemptQuery(ids, at)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkAttempt").
			Msg("failed to build attempt update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.DB.ExecRetryContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkAttempt").
			Int("ids_count", len(ids)).
			Msg("failed to increment sync attempts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Abandon implements [QueueRepository]. Used for permanent errors (unknown
// action type) that must never be retried.
func (q *queueRepository) Abandon(ctx context.Context, ids []int64, attempts int, at time.Time) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildAbandonQuery(ids, attempts, at)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Abandon").
			Msg("failed to build abandon query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.DB.ExecRetryContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Abandon").
			Int("ids_count", len(ids)).
			Msg("failed to abandon sync queue rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Stats implements [QueueRepository]. Two queries: the aggregate counts, and
// a separate oldest-pending lookup so the timestamp keeps its column type
// across both database backends.
func (q *queueRepository) Stats(ctx context.Context, maxAttempts int) (models.SyncQueueStats, error) {
	log := logger.FromContext(ctx)

	var stats models.SyncQueueStats

	row := q.DB.QueryRowContext(ctx, countQueueItems, maxAttempts)
	if err := row.Scan(&stats.TotalPending, &stats.FailedItems); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Stats").
			Msg("failed to scan queue counters")
		return models.SyncQueueStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var oldest time.Time
	err := q.DB.QueryRowContext(ctx, getOldestPendingCreatedAt, maxAttempts).Scan(&oldest)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// empty pending set, no oldest item
	case err != nil:
		log.Err(err).
			Str("func", "queueRepository.Stats").
			Msg("failed to scan oldest pending item")
		return models.SyncQueueStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		stats.OldestItem = &oldest
	}

	return stats, nil
}

// ClearFailed implements [QueueRepository].
func (q *queueRepository) ClearFailed(ctx context.Context, maxAttempts int, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClearFailedQuery(maxAttempts, olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ClearFailed").
			Msg("failed to build clear-failed query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.DB.ExecRetryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ClearFailed").
			Time("older_than", olderThan).
			Msg("failed to clear failed sync queue rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := res.RowsAffected()
	log.Info().
		Str("func", "queueRepository.ClearFailed").
		Int64("removed", affected).
		Msg("cleared failed sync queue rows")

	return affected, nil
}
