package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Adapter.ClientID = "id"
	cfg.Adapter.ClientSecret = "secret"
	cfg.Adapter.RefreshToken = "refresh"
	return cfg
}

func TestBuild_MergePrecedence(t *testing.T) {
	b := newConfigBuilder()

	// Higher-precedence source appended first wins over later sources.
	high := &StructuredConfig{Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://high"}}}
	low := validConfig()
	low.Storage.DB.DSN = "postgres://low"

	b.configs = append(b.configs, high, low)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://high", cfg.Storage.DB.DSN)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
}

func TestBuild_DefaultsFillHoles(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "custom.db"}}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 50, cfg.Sync.BatchSize)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, 15*time.Minute, cfg.Sync.StalenessWindow)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = "mysql"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RejectsEmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RejectsZeroBatchSize(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.BatchSize = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
}

func TestValidate_RejectsMissingTokenURL(t *testing.T) {
	cfg := validConfig()
	cfg.Adapter.TokenURL = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}
