// Package migrations embeds the SQL schema of the metadata database and
// applies it with goose. Each supported dialect has its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialects understood by Migrate. They match the config driver names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnknownDialect is returned for a dialect without embedded migrations.
var ErrUnknownDialect = errors.New("unknown migration dialect")

// gooseDialects maps a dialect to the goose dialect name and the embedded
// directory holding its migrations.
var gooseDialects = map[string]struct{ goose, dir string }{
	DialectPostgres: {goose: "pgx", dir: "postgres"},
	DialectSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
