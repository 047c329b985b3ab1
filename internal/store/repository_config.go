package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// configRepository is the SQL-backed implementation of [ConfigRepository].
type configRepository struct {
	*DB
	logger *logger.Logger
}

// NewConfigRepository constructs a [ConfigRepository] backed by the provided
// database connection and logger.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	return &configRepository{
		DB:     db,
		logger: logger,
	}
}

// GetRetentionConfig implements [ConfigRepository]. Malformed values are
// logged and replaced by defaults rather than failing the cleanup run.
func (c *configRepository) GetRetentionConfig(ctx context.Context) (models.RetentionConfig, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getConfigValues)
	if err != nil {
		log.Err(err).
			Str("func", "configRepository.GetRetentionConfig").
			Msg("failed to read system config")
		return models.RetentionConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)

	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "configRepository.GetRetentionConfig").
				Msg("failed to scan config row")
			return models.RetentionConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values[key] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "configRepository.GetRetentionConfig").
			Msg("error occurred during rows iteration")
		return models.RetentionConfig{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	cfg := models.DefaultRetentionConfig()

	if v, ok := intValue(log, values, models.ConfigKeyArticlesRetentionLimit); ok {
		cfg.ArticlesRetentionLimit = v
	}
	if v, ok := intValue(log, values, models.ConfigKeyMaxArticlesPerCleanupBatch); ok {
		cfg.MaxArticlesPerCleanupBatch = v
	}
	if v, ok := intValue(log, values, models.ConfigKeyMaxIDsPerDeleteOperation); ok {
		cfg.MaxIDsPerDeleteOperation = v
	}
	if v, ok := floatValue(log, values, models.ConfigKeyFeedDeletionSafetyThreshold); ok {
		cfg.FeedDeletionSafetyThreshold = v
	}

	return cfg, nil
}

// Set implements [ConfigRepository].
func (c *configRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, setConfigValue, key, value); err != nil {
		log.Err(err).
			Str("func", "configRepository.Set").
			Str("key", key).
			Msg("failed to set config value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func intValue(log *logger.Logger, values map[string]string, key string) (int, bool) {
	raw, ok := values[key]
	if !ok {
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().
			Str("func", "configRepository.GetRetentionConfig").
			Str("key", key).
			Str("value", raw).
			Msg("malformed integer config value, using default")
		return 0, false
	}

	return v, true
}

func floatValue(log *logger.Logger, values map[string]string, key string) (float64, bool) {
	raw, ok := values[key]
	if !ok {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn().
			Str("func", "configRepository.GetRetentionConfig").
			Str("key", key).
			Str("value", raw).
			Msg("malformed float config value, using default")
		return 0, false
	}

	return v, true
}
