// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnvVars sets every variable for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MASTER_KEY":     "bWFzdGVy",
		"APP_LINK_SIGN_KEY":  "link_secret",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_QUARANTINE_TTL": "24h",
		"APP_VERSION":        "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_PUBLIC_URL":      "https://vault.example.com",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":                  "sqlite",
		"STORAGE_DB_DATABASE_URI":            "/var/lib/vault.db",
		"STORAGE_OBJECTS_BACKEND":            "http",
		"STORAGE_OBJECTS_DIR":                "/var/objects",
		"STORAGE_OBJECTS_BASE_URL":           "http://blobs:9000",
		"STORAGE_OBJECTS_BATCH_DELETE_LIMIT": "500",
		"STORAGE_OBJECTS_REQUEST_TIMEOUT":    "10s",

		"WORKERS_SWEEP_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "bWFzdGVy", cfg.App.MasterKey)
	assert.Equal(t, "link_secret", cfg.App.LinkSignKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.QuarantineTTL)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://vault.example.com", cfg.Server.PublicURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http", cfg.Storage.Objects.Backend)
	assert.Equal(t, "/var/objects", cfg.Storage.Objects.Dir)
	assert.Equal(t, "http://blobs:9000", cfg.Storage.Objects.BaseURL)
	assert.Equal(t, 500, cfg.Storage.Objects.BatchDeleteLimit)
	assert.Equal(t, 10*time.Second, cfg.Storage.Objects.RequestTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SweepInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_QUARANTINE_TTL": "three days"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
