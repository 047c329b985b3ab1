package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// usageRepository is the SQL-backed implementation of [UsageRepository].
// The upsert keeps the counter monotonic without a prior read, so concurrent
// increments cannot lose updates.
type usageRepository struct {
	*DB
	logger *logger.Logger
}

// NewUsageRepository constructs a [UsageRepository] backed by the provided
// database connection and logger.
func NewUsageRepository(db *DB, logger *logger.Logger) UsageRepository {
	return &usageRepository{
		DB:     db,
		logger: logger,
	}
}

// Increment implements [UsageRepository].
func (u *usageRepository) Increment(ctx context.Context, service, date string) error {
	log := logger.FromContext(ctx)

	if _, err := u.DB.ExecRetryContext(ctx, incrementUsage, service, date); err != nil {
		log.Err(err).
			Str("func", "usageRepository.Increment").
			Str("service", service).
			Str("date", date).
			Msg("failed to increment api usage counter")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [UsageRepository].
func (u *usageRepository) Get(ctx context.Context, service, date string) (models.APIUsageRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.APIUsageRecord
	err := u.DB.QueryRowContext(ctx, getUsage, service, date).Scan(&rec.Service, &rec.Date, &rec.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.APIUsageRecord{}, ErrUsageRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "usageRepository.Get").
			Str("service", service).
			Str("date", date).
			Msg("failed to read api usage counter")
		return models.APIUsageRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}
