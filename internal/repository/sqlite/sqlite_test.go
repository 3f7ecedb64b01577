package sqlite

import "testing"

// newTestDB opens a fresh in-memory database with migrations applied.
// t.Cleanup closes it when the test (or subtest) finishes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew_AppliesMigrations(t *testing.T) {
	db := newTestDB(t)

	// Both tables must exist after New() — migrations run inside it.
	for _, table := range []string{"users", "notes"} {
		var name string
		err := db.conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing after New(): %v", table, err)
		}
	}
}

func TestNew_Idempotent(t *testing.T) {
	// Opening an already-migrated database must not fail (migrate reports
	// ErrNoChange, which New treats as success). Can't reopen ":memory:",
	// so use a file in the test's temp dir.
	path := t.TempDir() + "/notes.db"

	db, err := New(path)
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	db.Close()

	db, err = New(path)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	db.Close()
}
