package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings read from the environment.
type Config struct {
	DBPath     string
	LogLevel   string
	LogFormat  string
	InviteTTL  time.Duration
	FeedBuffer int
}

// Load reads UCHITOPI_* environment variables, falling back to defaults.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		DBPath:     getenv("UCHITOPI_DB_PATH"),
		LogLevel:   getenv("UCHITOPI_LOG_LEVEL"),
		LogFormat:  getenv("UCHITOPI_LOG_FORMAT"),
		InviteTTL:  InviteCodeTTL,
		FeedBuffer: 64,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "uchitopi.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	if v := getenv("UCHITOPI_INVITE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse UCHITOPI_INVITE_TTL: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("UCHITOPI_INVITE_TTL must be positive, got %s", v)
		}
		cfg.InviteTTL = ttl
	}

	if v := getenv("UCHITOPI_FEED_BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse UCHITOPI_FEED_BUFFER: %w", err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("UCHITOPI_FEED_BUFFER must be at least 1, got %d", n)
		}
		cfg.FeedBuffer = n
	}

	return cfg, nil
}
