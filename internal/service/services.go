package service

import (
	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/store"
)

type Services struct {
	SyncQueueService SyncQueueService
	PullSyncService  PullSyncService
	CleanupService   CleanupService
}

func NewServices(storages *store.Storages, remote adapter.InoreaderAdapter, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	cleanup := NewCleanupService(storages, remote, logger)

	return &Services{
		SyncQueueService: NewSyncQueueService(storages.Queue, storages.Usage, remote, cfg.Sync, logger),
		PullSyncService:  NewPullSyncService(storages, remote, cleanup, cfg.Sync, logger),
		CleanupService:   cleanup,
	}
}
