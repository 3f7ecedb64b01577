// Package sqlite implements the repository interfaces on an embedded SQLite
// database.
//
// modernc.org/sqlite is a pure-Go translation of SQLite — no CGo, no C
// toolchain, cross-compiles anywhere Go does. It registers itself with
// database/sql as the "sqlite" driver via the blank import below.
//
// The schema is managed with golang-migrate running the SQL files embedded
// in the migrations subpackage, so a fresh database file is fully usable
// after New() returns and an old one is upgraded in place.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/sakif/notes-backend/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// DB owns the connection pool. It is created once at startup, injected into
// the repositories via Users()/Notes(), and closed on shutdown — there is no
// package-level handle.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at path, configures it and applies any
// pending migrations. Use ":memory:" for tests.
//
// Any failure here is fatal to the process by design: the server must not
// come up without its store. There is no retry or reconnect logic.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// SQLite allows a single writer; a pool of one connection sidesteps
	// SQLITE_BUSY under write contention and keeps ":memory:" databases
	// coherent (each new connection to ":memory:" would otherwise get its
	// own empty database).
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrateUp(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool, flushing the WAL. Always deferred by the
// owner of the DB.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserStore {
	return &UserStore{conn: db.conn}
}

// Notes returns the note repository backed by this database.
func (db *DB) Notes() *NoteStore {
	return &NoteStore{conn: db.conn}
}

// migrateUp applies all pending migrations from the embedded filesystem.
func (db *DB) migrateUp() error {
	driver, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return fmt.Errorf("reading embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "notes", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
