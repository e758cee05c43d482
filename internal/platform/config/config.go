// Package config loads immutable application configuration from the
// environment, with optional .env file support for local development.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	MaxReviewLength int `env:"MAX_REVIEW_LENGTH" default:"1000"`

	// Comma-separated word stems used by the classifier. The defaults mirror
	// the service's original Russian vocabulary.
	PositivePatterns string `env:"POSITIVE_PATTERNS" default:"хорош,люблю"`
	NegativePatterns string `env:"NEGATIVE_PATTERNS" default:"плох,ненавиж"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" default:"10"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" default:"20"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.MaxReviewLength < 1 {
		return fmt.Errorf("MAX_REVIEW_LENGTH must be at least 1, got %d", cfg.MaxReviewLength)
	}
	if cfg.RateLimitPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %v", cfg.RateLimitPerSecond)
	}
	if cfg.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimitBurst)
	}
	return nil
}

// PositiveStems returns the positive patterns as a cleaned stem list.
func (c *Config) PositiveStems() []string {
	return splitPatterns(c.PositivePatterns)
}

// NegativeStems returns the negative patterns as a cleaned stem list.
func (c *Config) NegativeStems() []string {
	return splitPatterns(c.NegativePatterns)
}

func splitPatterns(raw string) []string {
	parts := strings.Split(raw, ",")
	stems := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stems = append(stems, p)
		}
	}
	return stems
}
