// Package sqlite implements the repository interfaces on SQLite.
//
// SQLite is embedded — the whole database is one file (or ":memory:" for
// tests), no separate server to run. We use modernc.org/sqlite, a pure Go
// translation of the SQLite sources, so no CGo and no C toolchain is
// needed to build or cross-compile.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and hands out the per-entity stores.
// The server owns it: opened at startup, closed on shutdown. The stores
// share the pool — they're views on the same database, not separate
// connections.
type DB struct {
	conn *sql.DB
}

// Users returns the user store backed by this database.
func (db *DB) Users() *UserStore {
	return &UserStore{conn: db.conn}
}

// Folders returns the folder store backed by this database.
func (db *DB) Folders() *FolderStore {
	return &FolderStore{conn: db.conn}
}

// Forms returns the form store backed by this database.
func (db *DB) Forms() *FormStore {
	return &FormStore{conn: db.conn}
}

// GlobalForms returns the global form store backed by this database.
func (db *DB) GlobalForms() *GlobalFormStore {
	return &GlobalFormStore{conn: db.conn}
}

// New opens the database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/formbot.db" → file-based database (persistent)
//   - ":memory:"        → in-memory database (tests, lost on close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// sql.Open doesn't actually connect — Ping forces it, so a bad path
	// surfaces here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in progress —
	// needed for a web server where requests hit the DB in parallel.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Callers should defer this right after
// New succeeds.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it
// idempotent — safe to run on every start.
//
// NOTE: forms.folder_id is a plain indexed column, NOT a foreign key.
// Deleting a folder must leave its forms in place (the frontend relies on
// orphaned forms remaining fetchable); a FK would either block the delete
// or cascade it.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS folders (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating folders table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS forms (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			folder_id  TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_forms_folder_id ON forms(folder_id);
	`)
	if err != nil {
		return fmt.Errorf("creating forms table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS global_forms (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating global_forms table: %w", err)
	}

	return nil
}
