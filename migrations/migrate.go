// Package migrations holds the SQL schema of the message store, one
// directory per dialect, applied with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database handle.
var ErrNilDB = errors.New("db is nil")

// ErrUnknownDialect is returned for a dialect without migrations.
var ErrUnknownDialect = errors.New("no migrations for dialect")

var dialectDirs = map[string]string{
	"sqlite3":  "sqlite",
	"postgres": "postgres",
	"pgx":      "postgres",
}

// Migrate applies every pending migration for dialect ("sqlite3" or
// "postgres").
func Migrate(db *sql.DB, dialect string) error {
	return MigrateContext(context.Background(), db, dialect)
}

// MigrateContext is [Migrate] with a context.
func MigrateContext(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
