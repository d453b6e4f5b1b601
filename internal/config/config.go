// Package config loads service configuration from the environment, plus the
// JWT and password-hashing settings used by the auth layer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service configuration. Every field is read from the
// environment with a sensible default; only DATABASE_URL is required.
type Config struct {
	Host string
	Port int

	DatabaseURL string
	RedisURL    string

	// SessionTTL bounds how long a login stays valid in the session store.
	SessionTTL time.Duration

	// ImportCron is a cron expression for scheduled feed imports. Empty
	// disables the scheduler.
	ImportCron string

	// FeedTimeout caps each outbound feed request.
	FeedTimeout time.Duration

	CORSOrigin string

	LogJSON bool
	Debug   bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	port, err := envInt("PORT", 8000)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := envDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	feedTimeout, err := envDuration("FEED_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:        envString("HOST", "0.0.0.0"),
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    envString("REDIS_URL", "redis://localhost:6379/0"),
		SessionTTL:  sessionTTL,
		ImportCron:  os.Getenv("IMPORT_CRON"),
		FeedTimeout: feedTimeout,
		CORSOrigin:  envString("CORS_ORIGIN", "*"),
		LogJSON:     envBool("LOG_JSON", false),
		Debug:       envBool("DEBUG", false),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1 minute, got: %s", c.SessionTTL)
	}
	if c.FeedTimeout < time.Second {
		return fmt.Errorf("FEED_TIMEOUT must be at least 1 second, got: %s", c.FeedTimeout)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return d, nil
}
