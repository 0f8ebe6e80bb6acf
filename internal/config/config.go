/*
Package config loads service settings from the environment. A .env file in
the working directory is read first, so local development needs no exports.
*/
package config

import (
	"fmt"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config holds every tunable of the API process.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// DatabaseURL is the Postgres DSN. Empty disables assessment history.
	DatabaseURL string

	// RedisURL selects the shared cache. Empty falls back to the in-process LRU.
	RedisURL string

	CacheSize int
	CacheTTL  time.Duration

	// RateLimit is the sustained requests per second allowed per client IP.
	RateLimit float64

	// BatchLimit caps the number of items in one batch request and
	// BatchWorkers the number evaluated concurrently.
	BatchLimit   int
	BatchWorkers int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_SIZE", 1024)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("RATE_LIMIT", 20)
	v.SetDefault("BATCH_LIMIT", 100)
	v.SetDefault("BATCH_WORKERS", 8)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := Config{
		Port:         v.GetInt("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		RedisURL:     v.GetString("REDIS_URL"),
		CacheSize:    v.GetInt("CACHE_SIZE"),
		CacheTTL:     v.GetDuration("CACHE_TTL"),
		RateLimit:    v.GetFloat64("RATE_LIMIT"),
		BatchLimit:   v.GetInt("BATCH_LIMIT"),
		BatchWorkers: v.GetInt("BATCH_WORKERS"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	case c.CacheSize < 0:
		return fmt.Errorf("config: CACHE_SIZE must not be negative")
	case c.RateLimit < 0:
		return fmt.Errorf("config: RATE_LIMIT must not be negative")
	case c.BatchLimit <= 0:
		return fmt.Errorf("config: BATCH_LIMIT must be positive")
	case c.BatchWorkers <= 0:
		return fmt.Errorf("config: BATCH_WORKERS must be positive")
	}
	return nil
}
