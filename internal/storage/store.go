// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store is closed")

// Store defines a minimal durable key-value store.
// Values are whole documents: callers read the full value, change it, and
// write the full value back. This abstraction allows swapping storage
// backends (SQLite, Redis, in-memory) without changing the ledger.
type Store interface {
	// Get returns the value stored under key.
	// found is false and err is nil when the key has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}
