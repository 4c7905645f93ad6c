// Package memory provides an in-process implementation of storage.Store used
// for tests and ephemeral runs.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/mmynk/kiranakart/internal/storage"
)

var (
	_ storage.Store   = (*Store)(nil)
	_ storage.Batcher = (*Store)(nil)
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("memory store closed")

// FailFunc decides whether an operation should fail. Returning a non-nil
// error makes the store report that error for (op, key) without applying it.
type FailFunc func(op, key string) error

// Store keeps values in a map. Values are copied on the way in and out so
// callers never share backing arrays with the store.
type Store struct {
	mu     sync.Mutex
	values map[string][]byte
	closed bool
	failOn FailFunc
}

// Option configures a Store.
type Option func(*Store)

// WithFailures injects write/read failures, for exercising error paths.
func WithFailures(fn FailFunc) Option {
	return func(s *Store) { s.failOn = fn }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{values: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithoutBatch returns s as a plain storage.Store that does not satisfy
// storage.Batcher, so callers take their sequential write path.
func (s *Store) WithoutBatch() storage.Store {
	return sequential{s}
}

type sequential struct{ storage.Store }

func (s *Store) check(op, key string) error {
	if s.closed {
		return &storage.Error{Op: op, Key: key, Err: ErrClosed}
	}
	if s.failOn != nil {
		if err := s.failOn(op, key); err != nil {
			return &storage.Error{Op: op, Key: key, Err: err}
		}
	}
	return nil
}

// Get returns a copy of the value under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check("get", key); err != nil {
		return nil, false, err
	}
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check("set", key); err != nil {
		return err
	}
	s.values[key] = clone(value)
	return nil
}

// Remove deletes key.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check("remove", key); err != nil {
		return err
	}
	delete(s.values, key)
	return nil
}

// RemoveMany deletes every key, or none of them if any would fail.
func (s *Store) RemoveMany(_ context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if err := s.check("remove", key); err != nil {
			return err
		}
	}
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

// Apply writes the whole batch or nothing.
func (s *Store) Apply(_ context.Context, batch storage.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range batch.Sets {
		if err := s.check("apply", key); err != nil {
			return err
		}
	}
	for _, key := range batch.Removes {
		if err := s.check("apply", key); err != nil {
			return err
		}
	}
	for key, value := range batch.Sets {
		s.values[key] = clone(value)
	}
	for _, key := range batch.Removes {
		delete(s.values, key)
	}
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Close marks the store closed. Later calls fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
