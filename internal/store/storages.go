// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
)

// Storages aggregates all repositories over a single database connection.
// The service layer receives this struct and never touches *DB directly.
type Storages struct {
	DB *DB

	Queue     QueueRepository
	Usage     UsageRepository
	Articles  ArticleRepository
	Feeds     FeedRepository
	Conflicts ConflictLogSink
	Deletions DeletionTrackingRepository
	Config    ConfigRepository
}

// NewStorages connects to the configured backend, applies pending migrations
// and wires every repository over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		DB:        db,
		Queue:     NewQueueRepository(db, log),
		Usage:     NewUsageRepository(db, log),
		Articles:  NewArticleRepository(db, log),
		Feeds:     NewFeedRepository(db, log),
		Conflicts: NewConflictLogRepository(db, log),
		Deletions: NewDeletionTrackingRepository(db, log),
		Config:    NewConfigRepository(db, log),
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
