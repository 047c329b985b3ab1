// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql builds dynamic queries with $N placeholders. Both pgx and the sqlite3
// driver accept the dollar style, so one builder serves both backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	enqueueSyncItem = `
		INSERT INTO sync_queue (action_type, inoreader_id, sync_attempts, created_at)
		VALUES ($1, $2, 0, $3)
		RETURNING id, action_type, inoreader_id, sync_attempts, created_at, last_attempt_at;`

	getPendingSyncItems = `
		SELECT id, action_type, inoreader_id, sync_attempts, created_at, last_attempt_at
		FROM sync_queue
		WHERE sync_attempts < $1
		ORDER BY created_at ASC;`

	countQueueItems = `
		SELECT
			COUNT(*) FILTER (WHERE sync_attempts < $1),
			COUNT(*) FILTER (WHERE sync_attempts >= $1)
		FROM sync_queue;`

	getOldestPendingCreatedAt = `
		SELECT created_at
		FROM sync_queue
		WHERE sync_attempts < $1
		ORDER BY created_at ASC
		LIMIT 1;`

	incrementUsage = `
		INSERT INTO api_usage (service, date, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (service, date) DO UPDATE SET count = api_usage.count + 1;`

	getUsage = `
		SELECT service, date, count
		FROM api_usage
		WHERE service = $1 AND date = $2;`

	insertArticleIgnoreExisting = `
		INSERT INTO articles (feed_id, inoreader_id, title, url, author, read, starred, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (inoreader_id) DO NOTHING;`

	applyRemoteArticleState = `
		UPDATE articles
		SET read = $1, starred = $2, updated_at = $3
		WHERE id = $4;`

	getCleanupCandidates = `
		SELECT id, inoreader_id, read, starred
		FROM articles
		WHERE read = TRUE
		  AND id NOT IN (
			SELECT id
			FROM articles
			WHERE read = TRUE
			ORDER BY created_at DESC
			LIMIT $1
		  )
		ORDER BY created_at ASC
		LIMIT $2;`

	upsertFeed = `
		INSERT INTO feeds (inoreader_id, title, url, site_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (inoreader_id) DO UPDATE SET
			title      = excluded.title,
			url        = excluded.url,
			site_url   = excluded.site_url,
			updated_at = excluded.updated_at;`

	getAllFeeds = `
		SELECT id, inoreader_id, title, url, site_url, created_at, updated_at
		FROM feeds;`

	appendConflictLogEntry = `
		INSERT INTO sync_conflict_log (sync_session_id, article_id, conflict_type, local_value, remote_value, resolution, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	recordDeletion = `
		INSERT INTO deletion_tracking (entity_id, entity_type, deleted_at, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (entity_type, entity_id) DO NOTHING;`

	getConfigValues = `
		SELECT key, value
		FROM system_config;`

	setConfigValue = `
		INSERT INTO system_config (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)

// buildDeleteQueueItemsQuery deletes confirmed sync queue rows by id.
func buildDeleteQueueItemsQuery(ids []int64) (string, []any, error) {
	return psql.Delete("sync_queue").Where(sq.Eq{"id": ids}).ToSql()
}

// buildMarkAttemptQuery is the targeted retry bookkeeping update: one
// statement per failed batch, not one per item.
func buildMarkAttemptQuery(ids []int64, at time.Time) (string, []any, error) {
	return psql.Update("sync_queue").
		Set("sync_attempts", sq.Expr("sync_attempts + 1")).
		Set("last_attempt_at", at).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// buildAbandonQuery force-parks permanently failed rows at the retry cap.
func buildAbandonQuery(ids []int64, attempts int, at time.Time) (string, []any, error) {
	return psql.Update("sync_queue").
		Set("sync_attempts", attempts).
		Set("last_attempt_at", at).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// buildClearFailedQuery purges exhausted rows older than the threshold.
func buildClearFailedQuery(maxAttempts int, olderThan time.Time) (string, []any, error) {
	return psql.Delete("sync_queue").
		Where(sq.GtOrEq{"sync_attempts": maxAttempts}).
		Where(sq.Lt{"created_at": olderThan}).
		ToSql()
}

// buildGetArticleStatesQuery selects the reconciled flags for a set of
// remote ids.
func buildGetArticleStatesQuery(inoreaderIDs []string) (string, []any, error) {
	return psql.Select("id", "inoreader_id", "read", "starred").
		From("articles").
		Where(sq.Eq{"inoreader_id": inoreaderIDs}).
		ToSql()
}

// buildDeleteArticlesQuery deletes articles by primary key.
func buildDeleteArticlesQuery(ids []int64) (string, []any, error) {
	return psql.Delete("articles").Where(sq.Eq{"id": ids}).ToSql()
}

// buildDeleteFeedsQuery deletes feeds by remote id.
func buildDeleteFeedsQuery(inoreaderIDs []string) (string, []any, error) {
	return psql.Delete("feeds").Where(sq.Eq{"inoreader_id": inoreaderIDs}).ToSql()
}

// buildFilterKnownDeletionsQuery selects which of the given ids already have
// a deletion marker.
func buildFilterKnownDeletionsQuery(entityType string, ids []string) (string, []any, error) {
	return psql.Select("entity_id").
		From("deletion_tracking").
		Where(sq.Eq{"entity_type": entityType}).
		Where(sq.Eq{"entity_id": ids}).
		ToSql()
}
