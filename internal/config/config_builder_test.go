package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{MasterKey: "key"},
		Storage: Storage{
			DB:      DB{DSN: "postgres://localhost/vault"},
			Objects: Objects{Dir: "/srv/objects"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "boom")
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withValues(validConfig()).build()
	require.NoError(t, err)

	assert.Equal(t, DefaultQuarantineTTL, cfg.App.QuarantineTTL)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, ObjectBackendFS, cfg.Storage.Objects.Backend)
	assert.Equal(t, DefaultBatchDeleteLimit, cfg.Storage.Objects.BatchDeleteLimit)
	assert.Equal(t, DefaultRequestTimeout, cfg.Storage.Objects.RequestTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Workers.SweepInterval)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	override := &StructuredConfig{
		App:    App{QuarantineTTL: time.Hour},
		Server: Server{HTTPAddress: "localhost:9999"},
	}

	cfg, err := newConfigBuilder().
		withValues(validConfig()).
		withValues(override).
		build()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.App.MasterKey, "zero fields must not override")
	assert.Equal(t, time.Hour, cfg.App.QuarantineTTL)
	assert.Equal(t, "http://localhost:9999", cfg.Server.PublicURL)
}

func TestBuild_MergesJSONFile(t *testing.T) {
	path := writeTempFile(t, `{"app": {"quarantine_ttl": "12h"}, "storage": {"objects": {"batch_delete_limit": 10}}}`)

	base := validConfig()
	base.JSONFilePath = path

	cfg, err := newConfigBuilder().withValues(base).withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.App.QuarantineTTL)
	assert.Equal(t, 10, cfg.Storage.Objects.BatchDeleteLimit)
}

func TestBuild_DotEnvIsOverriddenByLaterSources(t *testing.T) {
	path := writeDotEnv(t, "APP_QUARANTINE_TTL=6h\nAPP_VERSION=from-dotenv\n")

	cfg, err := newConfigBuilder().
		withDotEnv(path).
		withValues(validConfig()).
		withValues(&StructuredConfig{App: App{Version: "override"}}).
		build()
	require.NoError(t, err)

	assert.Equal(t, 6*time.Hour, cfg.App.QuarantineTTL)
	assert.Equal(t, "override", cfg.App.Version)
}

func TestBuild_MissingJSONFile(t *testing.T) {
	base := validConfig()
	base.JSONFilePath = "/definitely/missing.json"

	_, err := newConfigBuilder().withValues(base).withJSON().build()
	assert.ErrorContains(t, err, "error reading a json file")
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no master key", mutate: func(c *StructuredConfig) { c.App.MasterKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative ttl", mutate: func(c *StructuredConfig) { c.App.QuarantineTTL = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "fs without dir", mutate: func(c *StructuredConfig) { c.Storage.Objects.Dir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "http without url", mutate: func(c *StructuredConfig) { c.Storage.Objects.Backend = ObjectBackendHTTP }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Objects.Backend = "s3" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative sweep", mutate: func(c *StructuredConfig) { c.Workers.SweepInterval = -time.Minute }, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "loud" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
