// Package config loads server settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the config file read when none is given
const DefaultPath = "config.toml"

// Config holds the server settings. Environment variables override the
// file; fields missing from both take their env-default.
type Config struct {
	IP           string `toml:"ip" env:"GRIDGAMES_IP" env-default:"0.0.0.0" env-description:"address to listen on"`
	HTTPPort     int    `toml:"http_port" env:"GRIDGAMES_HTTP_PORT" env-default:"8080" env-description:"port to listen on"`
	SubmissionID string `toml:"submission_id" env:"GRIDGAMES_SUBMISSION_ID" env-description:"value of the X-CSE356 response header"`
	LogLevel     string `toml:"log_level" env:"GRIDGAMES_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	RandomSeed   uint64 `toml:"random_seed" env:"GRIDGAMES_RANDOM_SEED" env-description:"seed for reproducible games, 0 for crypto randomness"`

	Storage StorageConfig `toml:"storage"`
	Session SessionConfig `toml:"session"`
}

// StorageConfig selects the session backend
type StorageConfig struct {
	Type         string `toml:"type" env:"GRIDGAMES_STORAGE_TYPE" env-default:"memory" env-description:"memory or redis"`
	RedisURL     string `toml:"redis_url" env:"GRIDGAMES_REDIS_URL" env-default:"redis://localhost:6379" env-description:"Redis connection URL"`
	PoolSize     int    `toml:"pool_size" env:"GRIDGAMES_REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `toml:"min_idle_conns" env:"GRIDGAMES_REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// SessionConfig controls browser sessions
type SessionConfig struct {
	TTL time.Duration `toml:"ttl" env:"GRIDGAMES_SESSION_TTL" env-default:"1h" env-description:"idle time before a session expires"`
}

// Load reads the config file at path, then the environment. A missing
// file is not an error.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("reading environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot
func (c Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port %d out of range", c.HTTPPort)
	}
	switch c.Storage.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("storage.type must be memory or redis, got %q", c.Storage.Type)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level
func (c Config) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
	}
}

// Usage describes the environment variables Config reads
func Usage() string {
	var b strings.Builder
	header := "Environment variables:"
	cleanenv.FUsage(&b, &Config{}, &header)()
	return b.String()
}
