// Package backend opens the storage.Store selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/billdesk/internal/storage"
	"github.com/mmynk/billdesk/internal/storage/memory"
	"github.com/mmynk/billdesk/internal/storage/redis"
	"github.com/mmynk/billdesk/internal/storage/sqlite"
	"github.com/mmynk/billdesk/pkg/config"
)

// Open connects to the configured backend. The caller owns the returned store.
func Open(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite, "":
		store, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		slog.Info("Storage initialized", "backend", config.BackendSQLite, "database", cfg.Storage.SQLitePath)
		return store, nil
	case config.BackendRedis:
		store, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		slog.Info("Storage initialized", "backend", config.BackendRedis, "namespace", cfg.Redis.Namespace)
		return store, nil
	case config.BackendMemory:
		slog.Warn("Storage initialized in memory; sales will not survive a restart", "backend", config.BackendMemory)
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
