// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/kiranakart/internal/storage"
)

// Ensure SQLiteStore implements storage.Store and storage.Batcher
var (
	_ storage.Store   = (*SQLiteStore)(nil)
	_ storage.Batcher = (*SQLiteStore)(nil)
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get retrieves the value stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &storage.Error{Op: "get", Key: key, Err: err}
	}
	return []byte(value), true, nil
}

// Set upserts value under key.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := upsert(ctx, s.db, key, value); err != nil {
		return &storage.Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Remove deletes key if present.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return &storage.Error{Op: "remove", Key: key, Err: err}
	}
	return nil
}

// RemoveMany deletes all keys in a single statement.
func (s *SQLiteStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := removeKeys(ctx, s.db, keys); err != nil {
		return &storage.Error{Op: "remove", Key: strings.Join(keys, ","), Err: err}
	}
	return nil
}

// Apply writes every set and remove of batch inside one transaction.
func (s *SQLiteStore) Apply(ctx context.Context, batch storage.Batch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &storage.Error{Op: "apply", Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}
	defer tx.Rollback()

	for key, value := range batch.Sets {
		if err := upsert(ctx, tx, key, value); err != nil {
			return &storage.Error{Op: "apply", Key: key, Err: err}
		}
	}
	if len(batch.Removes) > 0 {
		if err := removeKeys(ctx, tx, batch.Removes); err != nil {
			return &storage.Error{Op: "apply", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &storage.Error{Op: "apply", Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, ex execer, key string, value []byte) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().Unix())
	return err
}

func removeKeys(ctx context.Context, ex execer, keys []string) error {
	query := "DELETE FROM kv WHERE key IN (?" + repeatPlaceholder(len(keys)-1) + ")"

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// repeatPlaceholder returns a string of ", ?" repeated n times.
// Used for building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(", ?", n)
}
