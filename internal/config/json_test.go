package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {
			"master_key": "key",
			"link_sign_key": "link",
			"token_sign_key": "token",
			"token_issuer": "issuer",
			"quarantine_ttl": "96h",
			"version": "2.0.0"
		},
		"storage": {
			"db": {"driver": "sqlite", "dsn": "vault.db"},
			"objects": {
				"backend": "fs",
				"dir": "/data",
				"base_url": "",
				"batch_delete_limit": 250,
				"request_timeout": "5s"
			}
		},
		"server": {"http_address": "0.0.0.0:8080", "public_url": "https://v", "request_timeout": "1m"},
		"workers": {"sweep_interval": "15m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.App.MasterKey)
	assert.Equal(t, "link", cfg.App.LinkSignKey)
	assert.Equal(t, "token", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 96*time.Hour, cfg.App.QuarantineTTL)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data", cfg.Storage.Objects.Dir)
	assert.Equal(t, 250, cfg.Storage.Objects.BatchDeleteLimit)
	assert.Equal(t, 5*time.Second, cfg.Storage.Objects.RequestTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Workers.SweepInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_RejectsUnknownFields(t *testing.T) {
	path := writeTempFile(t, `{"app": {"password_hash_key": "x"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "number of nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(2 * time.Hour))
	require.NoError(t, err)
	assert.JSONEq(t, `"2h0m0s"`, string(out))
}
