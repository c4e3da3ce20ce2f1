// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrateServer_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query must fail

	err = MigrateServer(db)
	if err == nil {
		t.Fatal("expected error from MigrateServer, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for name, fn := range map[string]func(*sql.DB) error{"client": MigrateClient, "server": MigrateServer} {
		err := fn(db)
		if err == nil {
			t.Fatalf("%s: expected error when db is nil, got nil", name)
		}
		if !strings.Contains(err.Error(), "db is nil") {
			t.Errorf("%s: expected 'db is nil' error, got: %v", name, err)
		}
	}
}

func TestMigrateClient_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = MigrateClient(db); err != nil {
		t.Fatalf("MigrateClient: %v", err)
	}
	// applying twice is a no-op
	if err = MigrateClient(db); err != nil {
		t.Fatalf("second MigrateClient: %v", err)
	}

	var n int
	if err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('changelog', 'kv', 'vault_meta', 'attachments')`).Scan(&n); err != nil {
		t.Fatalf("query tables: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 core tables, got %d", n)
	}
}
