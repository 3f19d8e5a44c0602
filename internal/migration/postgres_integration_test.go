package migration

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// Set POSTGRES_TEST_URL to run, e.g.
// POSTGRES_TEST_URL="postgres://user@localhost:5432/testdb?sslmode=disable"
func setupPostgresTestDB(t *testing.T) *sql.DB {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS schema_version")
		db.Exec("DROP TABLE IF EXISTS test_journal")
		db.Close()
	})
	return db
}

func TestPostgresApplyMigrations(t *testing.T) {
	db := setupPostgresTestDB(t)
	runner := NewPostgresRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE test_journal (entry_date TEXT PRIMARY KEY);",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied, got %d", applied)
	}

	if err := runner.SetVersion(1); err != nil {
		t.Fatalf("SetVersion with $1 placeholder failed: %v", err)
	}
	version, err := runner.GetCurrentVersion()
	if err != nil || version != 1 {
		t.Errorf("GetCurrentVersion() = %d, %v; want 1", version, err)
	}
}
