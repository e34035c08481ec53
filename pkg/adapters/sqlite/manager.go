// Package sqlite provides a transaction manager backed by a SQLite
// database through database/sql and the pure-Go modernc.org/sqlite
// driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/aretw0/cambium/pkg/ports"
)

// Manager implements ports.Manager over a *sql.DB.
type Manager struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database at path and wraps it
// in a Manager. WAL mode keeps readers unblocked while a transaction
// holds the write lock.
func Open(path string) (*Manager, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping db: %w", err)
	}
	return &Manager{db: db}, nil
}

// NewManager wraps an already-open database.
func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// DB exposes the underlying handle for schema setup and ad-hoc reads.
func (m *Manager) DB() *sql.DB { return m.db }

// Close closes the underlying database.
func (m *Manager) Close() error { return m.db.Close() }

// Begin opens a physical SQL transaction.
func (m *Manager) Begin(ctx context.Context) (ports.Tx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin tx: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx wraps *sql.Tx behind the ports.Tx contract. Handles assert this
// concrete type to issue statements inside the scope.
type Tx struct {
	tx *sql.Tx
}

// ExecContext runs a statement inside the transaction.
func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, query, args...)
}

// QueryContext runs a query inside the transaction.
func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext runs a single-row query inside the transaction.
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

// Commit commits the physical transaction.
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit()
}

// Rollback rolls the physical transaction back.
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback()
}
