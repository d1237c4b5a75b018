package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:9000", want: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "empty host", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8081",
		"-public-url", "https://vault.example.com",
		"-d", "postgres://localhost/vault",
		"-db-driver", "postgres",
		"-objects-backend", "fs",
		"-objects-dir", "/srv/objects",
		"-objects-url", "http://blobs",
		"-config", "/etc/vault.json",
		"-quarantine-ttl", "48h",
		"-token-issuer", "moderation",
		"-request-timeout", "15s",
		"-sweep-interval", "10m",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://vault.example.com", cfg.Server.PublicURL)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "fs", cfg.Storage.Objects.Backend)
	assert.Equal(t, "/srv/objects", cfg.Storage.Objects.Dir)
	assert.Equal(t, "http://blobs", cfg.Storage.Objects.BaseURL)
	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, 48*time.Hour, cfg.App.QuarantineTTL)
	assert.Equal(t, "moderation", cfg.App.TokenIssuer)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SweepInterval)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-no-such-flag"})
	assert.Error(t, err)
}
