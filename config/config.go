package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeShell = "shell"
	ModeHTTP  = "http"
)

// Config holds application configuration
type Config struct {
	Mode              string
	Port              string
	LogLevel          string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present; real variables win.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Mode:          getEnv("APP_MODE", ModeShell),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if cfg.RateLimitCapacity, err = strconv.Atoi(getEnv("RATE_LIMIT_CAPACITY", "60")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CAPACITY: %w", err)
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	if cfg.Mode != ModeShell && cfg.Mode != ModeHTTP {
		return nil, fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeShell, ModeHTTP, cfg.Mode)
	}
	if cfg.RateLimitCapacity <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
