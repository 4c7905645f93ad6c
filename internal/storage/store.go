// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is the key-value collaborator every component persists through.
// Values are opaque JSON documents. This abstraction allows swapping storage
// backends (SQLite, in-memory) without changing the catalog, ledger or
// settings code.
type Store interface {
	// Get returns the value stored under key.
	// The boolean is false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes every key in one coordinated operation.
	RemoveMany(ctx context.Context, keys []string) error

	// Close releases any resources held by the store.
	Close() error
}

// Batch is a set of writes applied together.
type Batch struct {
	Sets    map[string][]byte
	Removes []string
}

// Batcher is implemented by stores that can apply a Batch atomically.
// Callers that need several keys to change together type-assert for it and
// fall back to sequential writes when it is missing.
type Batcher interface {
	Apply(ctx context.Context, batch Batch) error
}

// GetJSON decodes the value under key into v.
// It reports false, leaving v untouched, when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, &Error{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &Error{Op: "encode", Key: key, Err: err}
	}
	return s.Set(ctx, key, raw)
}

// Put encodes v into the batch under key.
func (b *Batch) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &Error{Op: "encode", Key: key, Err: err}
	}
	if b.Sets == nil {
		b.Sets = make(map[string][]byte)
	}
	b.Sets[key] = raw
	return nil
}

// Error is a failed read or write against the store. The in-memory view of
// the caller may be stale after one of these.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
