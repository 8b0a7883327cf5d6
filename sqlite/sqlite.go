// Package sqlite provides SQLite-backed storage for the compliance audit
// trail.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait on lock contention instead of failing immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS audit_runs (
			id TEXT PRIMARY KEY,
			audited_at TEXT NOT NULL,
			min_severity TEXT NOT NULL,
			pass INTEGER NOT NULL,
			profile_url TEXT NOT NULL DEFAULT '',
			record_hash TEXT NOT NULL DEFAULT '',
			format TEXT NOT NULL DEFAULT '',
			redaction_level TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS audit_findings (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL REFERENCES audit_runs(id) ON DELETE CASCADE,
			rule TEXT NOT NULL,
			severity TEXT NOT NULL,
			message TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			auto_fixable INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS audit_fixes (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL REFERENCES audit_runs(id) ON DELETE CASCADE,
			description TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_audit_findings_run_id ON audit_findings(run_id);
		CREATE INDEX IF NOT EXISTS idx_audit_fixes_run_id ON audit_fixes(run_id);
		CREATE INDEX IF NOT EXISTS idx_audit_runs_audited_at ON audit_runs(audited_at);
	`

	_, err := db.db.Exec(schema)
	return err
}
