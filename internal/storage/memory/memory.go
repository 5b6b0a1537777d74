// Package memory provides an in-process implementation of storage.Store.
// Nothing survives a restart; it backs tests and throwaway terminals.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/billdesk/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps values in a map guarded by a mutex.
type Store struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool

	// writeErr, when set, fails every Put.
	writeErr error
}

// New creates an empty store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, storage.ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Put replaces the value stored under key.
func (s *Store) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data[key] = value
	return nil
}

// FailWrites makes every later Put return err, simulating a full or disabled
// backend. A nil err restores normal writes.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Close marks the store closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
