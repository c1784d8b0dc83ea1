// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself, every call fails

	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	if !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil || !strings.Contains(err.Error(), "setting dialect") {
		t.Fatalf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_EmbedsSchema(t *testing.T) {
	data, err := embedMigrations.ReadFile("00001_create_users.sql")
	if err != nil {
		t.Fatalf("schema not embedded: %v", err)
	}
	if !strings.Contains(string(data), "CREATE TABLE IF NOT EXISTS users") {
		t.Error("users table missing from schema")
	}
}

// TestMigrate_SQLite runs the schema against an in-memory SQLite database.
// Skipped when the sqlite3 driver was built without cgo.
func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}

	if err = Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// second run is a no-op
	if err = Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	if _, err = db.Exec(`INSERT INTO users (id, name, email, password_hash) VALUES ('1', 'a', 'a@x.io', 'h')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err = db.Exec(`INSERT INTO users (id, name, email, password_hash) VALUES ('2', 'b', 'a@x.io', 'h')`); err == nil {
		t.Fatal("expected unique violation on duplicate email")
	}
}
