package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

func TestDB_Unavailable(t *testing.T) {
	pg := newPostgresDB(nil, logger.Nop())
	lite := newSQLiteDB(nil, logger.Nop())

	tests := []struct {
		name string
		db   *DB
		err  error
		want bool
	}{
		{name: "nil", db: pg, err: nil, want: false},
		{name: "bad conn", db: pg, err: driver.ErrBadConn, want: true},
		{name: "conn done", db: lite, err: sql.ErrConnDone, want: true},
		{name: "pg cannot connect", db: pg, err: pgError(pgerrcode.CannotConnectNow), want: true},
		{name: "pg unique", db: pg, err: pgError(pgerrcode.UniqueViolation), want: false},
		{name: "sqlite busy", db: lite, err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: true},
		{name: "sqlite constraint", db: lite, err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: false},
		{name: "plain", db: pg, err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.db.unavailable(tt.err)
			if errors.Is(got, ErrStoreUnavailable) != tt.want {
				t.Errorf("unavailable(%v) = %v, want wrapped=%v", tt.err, got, tt.want)
			}
			if tt.err != nil && !errors.Is(got, tt.err) {
				t.Errorf("original error lost: %v", got)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(pgError(pgerrcode.UniqueViolation)) {
		t.Error("expected postgres unique violation")
	}
	if !isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}) {
		t.Error("expected sqlite unique violation")
	}
	if isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)) {
		t.Error("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("unique")) {
		t.Error("plain errors are never unique violations")
	}
}

func TestDB_Driver(t *testing.T) {
	if got := newPostgresDB(nil, logger.Nop()).Driver(); got != "pgx" {
		t.Errorf("expected pgx, got %s", got)
	}
	if got := newSQLiteDB(nil, logger.Nop()).Driver(); got != "sqlite3" {
		t.Errorf("expected sqlite3, got %s", got)
	}
}
