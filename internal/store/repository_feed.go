package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// feedRepository is the SQL-backed implementation of [FeedRepository].
type feedRepository struct {
	*DB
	logger *logger.Logger
}

// NewFeedRepository constructs a [FeedRepository] backed by the provided
// database connection and logger.
func NewFeedRepository(db *DB, logger *logger.Logger) FeedRepository {
	return &feedRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert implements [FeedRepository].
func (f *feedRepository) Upsert(ctx context.Context, at time.Time, feeds ...models.Feed) error {
	log := logger.FromContext(ctx)

	if len(feeds) == 0 {
		return nil
	}

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.Upsert").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	for i := range feeds {
		feed := feeds[i]
		_, execErr := tx.ExecContext(ctx, upsertFeed,
			feed.InoreaderID,
			feed.Title,
			feed.URL,
			feed.SiteURL,
			at,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "feedRepository.Upsert").
				Str("inoreader_id", feed.InoreaderID).
				Int("iteration", i).
				Msg("failed to upsert feed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "feedRepository.Upsert").
			Msg("failed to commit feed upsert transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetAll implements [FeedRepository].
func (f *feedRepository) GetAll(ctx context.Context) ([]models.Feed, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, getAllFeeds)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.GetAll").
			Msg("failed to execute query for all feeds")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	feeds := make([]models.Feed, 0, 50)

	for rows.Next() {
		var feed models.Feed
		scanErr := rows.Scan(
			&feed.ID,
			&feed.InoreaderID,
			&feed.Title,
			&feed.URL,
			&feed.SiteURL,
			&feed.CreatedAt,
			&feed.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "feedRepository.GetAll").
				Msg("failed to scan feed row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		feeds = append(feeds, feed)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "feedRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return feeds, nil
}

// DeleteByInoreaderIDs implements [FeedRepository]. The cleanup engine
// verifies the safety threshold before calling.
func (f *feedRepository) DeleteByInoreaderIDs(ctx context.Context, inoreaderIDs []string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(inoreaderIDs) == 0 {
		return 0, ErrNothingToDelete
	}

	query, args, err := buildDeleteFeedsQuery(inoreaderIDs)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.DeleteByInoreaderIDs").
			Msg("failed to build feed delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := f.DB.ExecRetryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "feedRepository.DeleteByInoreaderIDs").
			Int("ids_count", len(inoreaderIDs)).
			Msg("failed to delete feeds")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := res.RowsAffected()
	return affected, nil
}
