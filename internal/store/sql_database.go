package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/migrations"
)

// DB wraps the raw sql connection with the driver name (needed to pick the
// migration dialect) and an error classificator for retryability decisions.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

const (
	execRetryAttempts = 3
	execRetryBackoff  = 100 * time.Millisecond
)

// ExecRetryContext executes a statement, retrying transient failures (lock
// contention, dropped connections, deadlock rollbacks) as decided by the
// driver's error classificator. Non-retryable errors are returned on the
// first attempt.
//
// The sqlite backend shares its file with the reading application, so busy
// errors on the write paths are expected under normal operation.
func (db *DB) ExecRetryContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	var err error

	for attempt := 1; ; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator.Classify(err) == NonRetryable || attempt == execRetryAttempts {
			return res, err
		}

		db.logger.Warn().
			Str("func", "DB.ExecRetryContext").
			Int("attempt", attempt).
			Err(err).
			Msg("retryable database error, backing off")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(execRetryBackoff):
		}
	}
}
