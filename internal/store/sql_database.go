package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/migrations"
)

// ErrorClassificator is the dialect-specific view of driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	IsMalformedValue(err error) bool
}

// DB is a *sql.DB bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Dialect returns the config driver name the connection was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}

// isNoMatch reports errors that mean the looked-up key matches no row.
func (db *DB) isNoMatch(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	return db.errorClassificator != nil && db.errorClassificator.IsMalformedValue(err)
}

// wrapErr wraps a driver error in the repository sentinel, adding
// [ErrDatabaseUnavailable] when the dialect considers it transient.
func (db *DB) wrapErr(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrDatabaseUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
