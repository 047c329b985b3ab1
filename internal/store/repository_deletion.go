package store

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// deletionTrackingRepository is the SQL-backed implementation of
// [DeletionTrackingRepository].
type deletionTrackingRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeletionTrackingRepository constructs a [DeletionTrackingRepository]
// backed by the provided database connection and logger.
func NewDeletionTrackingRepository(db *DB, logger *logger.Logger) DeletionTrackingRepository {
	return &deletionTrackingRepository{
		DB:     db,
		logger: logger,
	}
}

// Record implements [DeletionTrackingRepository]. Markers must land before
// the corresponding delete, so the pull path can never observe a deleted row
// without its marker.
func (d *deletionTrackingRepository) Record(ctx context.Context, records ...models.DeletionTrackingRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "deletionTrackingRepository.Record").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	for i := range records {
		rec := records[i]
		_, execErr := tx.ExecContext(ctx, recordDeletion,
			rec.EntityID,
			string(rec.EntityType),
			rec.DeletedAt,
			rec.Reason,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "deletionTrackingRepository.Record").
				Str("entity_id", rec.EntityID).
				Str("entity_type", string(rec.EntityType)).
				Msg("failed to record deletion marker")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "deletionTrackingRepository.Record").
			Msg("failed to commit deletion markers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FilterKnown implements [DeletionTrackingRepository].
func (d *deletionTrackingRepository) FilterKnown(ctx context.Context, entityType models.EntityType, ids []string) (map[string]struct{}, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return map[string]struct{}{}, nil
	}

	query, args, err := buildFilterKnownDeletionsQuery(string(entityType), ids)
	if err != nil {
		log.Err(err).
			Str("func", "deletionTrackingRepository.FilterKnown").
			Msg("failed to build filter query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deletionTrackingRepository.FilterKnown").
			Int("ids_count", len(ids)).
			Msg("failed to execute filter query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	known := make(map[string]struct{}, len(ids))

	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).
				Str("func", "deletionTrackingRepository.FilterKnown").
				Msg("failed to scan deletion marker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		known[id] = struct{}{}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "deletionTrackingRepository.FilterKnown").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return known, nil
}
