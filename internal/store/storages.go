package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// Storages bundles the repositories used by the service layer together
// with the database handle they share.
type Storages struct {
	UserRepository UserRepository
	DB             *DB
}

// NewStorages connects to the database selected by cfg, applies migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.DriverName() {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		DB:             db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}

	return s.DB.Close()
}
