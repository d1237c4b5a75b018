// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// applyDefaults fills zero-valued fields that have a documented default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.QuarantineTTL == 0 {
		cfg.App.QuarantineTTL = DefaultQuarantineTTL
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = zerolog.LevelDebugValue
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.Objects.Backend == "" {
		cfg.Storage.Objects.Backend = ObjectBackendFS
	}
	if cfg.Storage.Objects.BatchDeleteLimit == 0 {
		cfg.Storage.Objects.BatchDeleteLimit = DefaultBatchDeleteLimit
	}
	if cfg.Storage.Objects.RequestTimeout == 0 {
		cfg.Storage.Objects.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.PublicURL == "" && cfg.Server.HTTPAddress != "" {
		cfg.Server.PublicURL = "http://" + cfg.Server.HTTPAddress
	}
	cfg.Server.PublicURL = strings.TrimRight(cfg.Server.PublicURL, "/")
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The master key is
// only checked for presence here; its length is enforced when the envelope
// engine is constructed.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MasterKey == "" {
		return fmt.Errorf("%w: master key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.QuarantineTTL < 0 {
		return fmt.Errorf("%w: quarantine ttl must be positive", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}

	objects := cfg.Storage.Objects
	switch objects.Backend {
	case ObjectBackendFS:
		if objects.Dir == "" {
			return fmt.Errorf("%w: objects dir is required for fs backend", ErrInvalidStorageConfigs)
		}
	case ObjectBackendHTTP:
		if objects.BaseURL == "" {
			return fmt.Errorf("%w: objects base url is required for http backend", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown objects backend %q", ErrInvalidStorageConfigs, objects.Backend)
	}
	if objects.BatchDeleteLimit < 0 {
		return fmt.Errorf("%w: batch delete limit must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.SweepInterval < 0 {
		return fmt.Errorf("%w: sweep interval must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}
