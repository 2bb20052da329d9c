package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-crypt/internal/config"
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/models"
)

// Storages bundles the database handle and the entity sets built on it.
type Storages struct {
	DB       *DB
	Messages *Set[*models.Message]
}

// NewStorages connects to the configured database, applies migrations and
// builds the entity sets. An empty driver selects SQLite.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:       db,
		Messages: NewSet(db, MessagesTable, log),
	}, nil
}

// Close closes the database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "", string(DialectSQLite):
		return NewConnectSQLite(ctx, cfg, log)
	case string(DialectPostgres), "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
