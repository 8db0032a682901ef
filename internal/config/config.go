package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	CatalogBuiltin  = "builtin"
	CatalogXML      = "xml"
	CatalogPostgres = "postgres"
)

// Selection strategies
const (
	SelectionAll    = "all"
	SelectionRandom = "random"
)

// Config holds application configuration
type Config struct {
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	CatalogSource string
	CatalogFile   string
	DBConn        string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	QuoteCacheTTL time.Duration

	SelectionStrategy string
	SelectionMin      int
	SelectionMax      int
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory, when present, is read first and never overrides
// variables that are already set.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var errs []error
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CatalogSource:     strings.ToLower(getEnv("CATALOG_SOURCE", CatalogBuiltin)),
		CatalogFile:       getEnv("CATALOG_FILE", ""),
		DBConn:            getEnv("DB_CONN", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		SelectionStrategy: strings.ToLower(getEnv("SELECTION_STRATEGY", SelectionAll)),
	}
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs)
	cfg.QuoteCacheTTL = getEnvDuration("QUOTE_CACHE_TTL", 10*time.Minute, &errs)
	cfg.RedisDB = getEnvInt("REDIS_DB", 0, &errs)
	cfg.SelectionMin = getEnvInt("SELECTION_MIN", 3, &errs)
	cfg.SelectionMax = getEnvInt("SELECTION_MAX", 5, &errs)

	switch cfg.CatalogSource {
	case CatalogBuiltin:
	case CatalogXML:
		if cfg.CatalogFile == "" {
			errs = append(errs, fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=xml"))
		}
	case CatalogPostgres:
		if cfg.DBConn == "" {
			errs = append(errs, fmt.Errorf("DB_CONN is required when CATALOG_SOURCE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource))
	}

	switch cfg.SelectionStrategy {
	case SelectionAll, SelectionRandom:
	default:
		errs = append(errs, fmt.Errorf("unknown SELECTION_STRATEGY %q", cfg.SelectionStrategy))
	}
	if cfg.SelectionMin < 0 || cfg.SelectionMin > cfg.SelectionMax {
		errs = append(errs, fmt.Errorf("SELECTION_MIN (%d) must be between 0 and SELECTION_MAX (%d)", cfg.SelectionMin, cfg.SelectionMax))
	}
	if cfg.Port == "" {
		errs = append(errs, fmt.Errorf("PORT is required"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// CacheEnabled reports whether a Redis quote cache is configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration, errs *[]error) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a duration, got %q", key, value))
		return defaultVal
	}
	return d
}
