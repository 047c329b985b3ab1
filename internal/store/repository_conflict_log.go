package store

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// conflictLogRepository is the SQL-backed implementation of
// [ConflictLogSink]. The table is append-only: this repository exposes no
// read, update, or delete operation.
type conflictLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewConflictLogRepository constructs a [ConflictLogSink] backed by the
// provided database connection and logger.
func NewConflictLogRepository(db *DB, logger *logger.Logger) ConflictLogSink {
	return &conflictLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Append implements [ConflictLogSink].
func (c *conflictLogRepository) Append(ctx context.Context, entry models.SyncConflictLogEntry) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, appendConflictLogEntry,
		entry.SyncSessionID,
		entry.ArticleID,
		string(entry.ConflictType),
		entry.LocalValue,
		entry.RemoteValue,
		entry.Resolution,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "conflictLogRepository.Append").
			Int64("article_id", entry.ArticleID).
			Str("conflict_type", string(entry.ConflictType)).
			Msg("failed to append conflict log entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
