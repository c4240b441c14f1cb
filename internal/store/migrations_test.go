package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		filename    string
		wantVersion int
		wantName    string
		wantErr     bool
	}{
		{filename: "001_create_tasks.sql", wantVersion: 1, wantName: "create_tasks"},
		{filename: "12_add_index.sql", wantVersion: 12, wantName: "add_index"},
		{filename: "create_tasks.sql", wantErr: true},
		{filename: "abc_create.sql", wantErr: true},
		{filename: "000_zero.sql", wantErr: true},
		{filename: "003_.sql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			version, name, err := parseMigrationFilename(tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.filename)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if version != tt.wantVersion || name != tt.wantName {
				t.Errorf("expected %d/%s, got %d/%s", tt.wantVersion, tt.wantName, version, name)
			}
		})
	}
}

func TestLoadMigrations_SortedAndUnique(t *testing.T) {
	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("loadMigrations failed: %v", err)
	}
	if len(migrations) < 2 {
		t.Fatalf("expected at least 2 migrations, got %d", len(migrations))
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i-1].version >= migrations[i].version {
			t.Errorf("migrations out of order: %d before %d", migrations[i-1].version, migrations[i].version)
		}
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()
	ctx := context.Background()

	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	migrations, _ := loadMigrations()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("failed to count migrations: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("expected %d recorded migrations, got %d", len(migrations), count)
	}

	for _, table := range []string{"tasks", "preferences"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("expected table %s to exist: %v", table, err)
		}
	}
}
