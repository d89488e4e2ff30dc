// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB on its own; every query fails

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrateSQLite_NilDB(t *testing.T) {
	if err := MigrateSQLite(nil); err == nil || !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	tests := []struct {
		name   string
		fsys   fs.FS
		dir    string
		tables []string
	}{
		{name: "postgres", fsys: postgresMigrations, dir: "postgres", tables: []string{"users", "sessions", "documents"}},
		{name: "sqlite", fsys: sqliteMigrations, dir: "sqlite", tables: []string{"sessions"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := fs.Glob(tt.fsys, tt.dir+"/*.sql")
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(files) != len(tt.tables) {
				t.Fatalf("expected %d migrations, got %d", len(tt.tables), len(files))
			}

			var all strings.Builder
			for _, f := range files {
				b, err := fs.ReadFile(tt.fsys, f)
				if err != nil {
					t.Fatalf("read %s: %v", f, err)
				}
				body := string(b)
				if !strings.Contains(body, "-- +goose Up") || !strings.Contains(body, "-- +goose Down") {
					t.Errorf("%s: missing goose annotations", f)
				}
				all.WriteString(body)
			}

			for _, table := range tt.tables {
				if !strings.Contains(all.String(), "CREATE TABLE IF NOT EXISTS "+table) {
					t.Errorf("table %s is not created", table)
				}
			}
		})
	}
}
