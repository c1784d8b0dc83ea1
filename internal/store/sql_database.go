package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/migrations"
)

// DB is a database handle bound to one driver. The driver decides the SQL
// placeholder style and how driver errors are classified.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// unavailable wraps err with [ErrStoreUnavailable] when it is transient.
// Any other error is returned as is.
func (db *DB) unavailable(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return err
}

// isUniqueViolation reports whether err is a unique constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}
