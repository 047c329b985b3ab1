package store

import (
	"context"
	"time"

	"github.com/dkotelnikov/feedsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QueueRepository manages the persisted table of pending local mutations.
// The sync engine is the only writer of this table.
type QueueRepository interface {
	// Enqueue appends one pending mutation and returns the stored row.
	Enqueue(ctx context.Context, action models.SyncActionType, inoreaderID string) (models.SyncQueueItem, error)

	// GetPending returns rows with sync_attempts < maxAttempts, oldest first.
	GetPending(ctx context.Context, maxAttempts int) ([]models.SyncQueueItem, error)

	// DeleteByIDs removes confirmed rows and returns the number removed.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)

	// MarkAttempt increments sync_attempts and sets last_attempt_at for the
	// given rows with a single targeted update.
	MarkAttempt(ctx context.Context, ids []int64, at time.Time) error

	// Abandon force-sets sync_attempts for permanently failed rows so the
	// GetPending filter excludes them from future dispatch.
	Abandon(ctx context.Context, ids []int64, attempts int, at time.Time) error

	// Stats returns the monitoring snapshot for the operational surface.
	Stats(ctx context.Context, maxAttempts int) (models.SyncQueueStats, error)

	// ClearFailed purges rows that exhausted retries and are older than the
	// threshold, returning the count removed.
	ClearFailed(ctx context.Context, maxAttempts int, olderThan time.Time) (int64, error)
}

// UsageRepository maintains the advisory per-day API call counters.
type UsageRepository interface {
	// Increment lazily creates today's (service, date) row with count 1 or
	// bumps an existing one. The counter never decreases.
	Increment(ctx context.Context, service, date string) error

	// Get returns the counter for (service, date), or
	// [ErrUsageRecordNotFound].
	Get(ctx context.Context, service, date string) (models.APIUsageRecord, error)
}

// ArticleRepository stores the local mirror of remote articles.
type ArticleRepository interface {
	// InsertIgnoreExisting inserts freshly pulled articles, skipping ids
	// already present locally.
	InsertIgnoreExisting(ctx context.Context, articles ...models.Article) error

	// GetStates returns the read/starred projection for the given remote ids.
	GetStates(ctx context.Context, inoreaderIDs []string) ([]models.ArticleState, error)

	// ApplyRemoteState overwrites the local flags with remote values
	// (remote-wins policy).
	ApplyRemoteState(ctx context.Context, articleID int64, read, starred bool, at time.Time) error

	// GetCleanupCandidates returns read articles beyond the retention
	// limit, oldest first, capped at maxBatch.
	GetCleanupCandidates(ctx context.Context, retentionLimit, maxBatch int) ([]models.ArticleState, error)

	// DeleteByIDs removes articles and returns the number removed.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// FeedRepository stores the local mirror of remote subscriptions.
type FeedRepository interface {
	// Upsert inserts or refreshes feeds from the remote subscription list.
	Upsert(ctx context.Context, at time.Time, feeds ...models.Feed) error

	// GetAll returns every local feed.
	GetAll(ctx context.Context) ([]models.Feed, error)

	// DeleteByInoreaderIDs removes feeds and returns the number removed.
	DeleteByInoreaderIDs(ctx context.Context, inoreaderIDs []string) (int64, error)
}

// ConflictLogSink is the append-only structured-log sink the conflict
// resolution policy writes to. There is deliberately no read, update, or
// delete operation.
type ConflictLogSink interface {
	Append(ctx context.Context, entry models.SyncConflictLogEntry) error
}

// DeletionTrackingRepository records intentional local deletions so pull
// sync never silently re-imports a removed entity.
type DeletionTrackingRepository interface {
	// Record stores deletion markers; already-recorded ids are kept as-is.
	Record(ctx context.Context, records ...models.DeletionTrackingRecord) error

	// FilterKnown returns the subset of ids that have a deletion marker of
	// the given entity type.
	FilterKnown(ctx context.Context, entityType models.EntityType, ids []string) (map[string]struct{}, error)
}

// ConfigRepository reads and writes the system_config key/value table.
type ConfigRepository interface {
	// GetRetentionConfig assembles the retention thresholds, falling back
	// to defaults for missing or malformed keys.
	GetRetentionConfig(ctx context.Context) (models.RetentionConfig, error)

	// Set upserts one configuration key.
	Set(ctx context.Context, key, value string) error
}
