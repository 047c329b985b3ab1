// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.APIBaseURL == "" || cfg.Adapter.TokenURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.PullInterval <= 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.BatchSize <= 0 || cfg.Sync.MaxRetries <= 0 || cfg.Sync.StalenessWindow <= 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MinChanges < 0 || cfg.Sync.MaxPullPages <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
