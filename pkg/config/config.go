// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "BILLING"

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const (
	EnvPort           = "BILLING_PORT"
	EnvLogLevel       = "BILLING_LOG_LEVEL"
	EnvStaticPath     = "BILLING_STATIC_PATH"
	EnvStorageBackend = "BILLING_STORAGE_BACKEND"
	EnvDBPath         = "BILLING_DB_PATH"
	EnvRedisURL       = "BILLING_REDIS_URL"
	EnvRedisAddr      = "BILLING_REDIS_ADDR"
	EnvSalesKey       = "BILLING_SALES_KEY"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Ledger  LedgerConfig
}

// Load reads the configuration from BILLING_* environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and cross-field requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Storage.Backend == BackendRedis && c.Redis.URL == "" && c.Redis.Address == "" {
		return fmt.Errorf("invalid config: %s or %s is required for the redis backend", EnvRedisURL, EnvRedisAddr)
	}
	return nil
}

type AppConfig struct {
	Port       int    `envconfig:"BILLING_PORT" default:"8080" validate:"min=1,max=65535"`
	LogLevel   string `envconfig:"BILLING_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	StaticPath string `envconfig:"BILLING_STATIC_PATH" default:"../frontend/static"`
	// ShopName heads printed receipts; empty uses the built-in name.
	ShopName string `envconfig:"BILLING_SHOP_NAME"`
}

type StorageConfig struct {
	Backend    string `envconfig:"BILLING_STORAGE_BACKEND" default:"sqlite" validate:"oneof=sqlite redis memory"`
	SQLitePath string `envconfig:"BILLING_DB_PATH" default:"./data/billing.db"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BILLING_REDIS_URL"`
	Address      string        `envconfig:"BILLING_REDIS_ADDR"`
	Password     string        `envconfig:"BILLING_REDIS_PASSWORD"`
	DB           int           `envconfig:"BILLING_REDIS_DB" default:"0" validate:"min=0"`
	PoolSize     int           `envconfig:"BILLING_REDIS_POOL_SIZE" default:"4" validate:"min=0"`
	DialTimeout  time.Duration `envconfig:"BILLING_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BILLING_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"BILLING_REDIS_WRITE_TIMEOUT" default:"3s"`
	Namespace    string        `envconfig:"BILLING_REDIS_NAMESPACE" default:"billdesk"`
}

type LedgerConfig struct {
	// SalesKey is the single store key holding the whole sales history.
	SalesKey string `envconfig:"BILLING_SALES_KEY" default:"starFurnitureSales" validate:"required"`
}
