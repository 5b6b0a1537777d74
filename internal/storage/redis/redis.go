// Package redis provides a Redis-backed implementation of the storage.Store interface.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/billdesk/internal/storage"
	"github.com/mmynk/billdesk/pkg/config"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
}

// Store keeps values as plain Redis strings under a namespace.
type Store struct {
	mu        sync.RWMutex
	client    cmdable
	raw       *redis.Client
	namespace string
}

// New connects to Redis with pooling/timeouts from cfg and verifies connectivity.
func New(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: raw, raw: raw, namespace: cfg.Namespace}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	client := s.cmd()
	if client == nil {
		return "", false, storage.ErrClosed
	}
	value, err := client.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Put replaces the value stored under key. Values never expire.
func (s *Store) Put(ctx context.Context, key, value string) error {
	client := s.cmd()
	if client == nil {
		return storage.ErrClosed
	}
	if err := client.Set(ctx, s.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Key returns the namespaced Redis key for a store key.
func (s *Store) Key(key string) string {
	if s.namespace == "" {
		return key
	}
	return strings.Join([]string{s.namespace, key}, ":")
}

// Close shuts down the underlying connection pool.
func (s *Store) Close() error {
	s.mu.Lock()
	raw := s.raw
	s.client = nil
	s.raw = nil
	s.mu.Unlock()
	if raw == nil {
		return nil
	}
	return raw.Close()
}

func (s *Store) cmd() cmdable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}
