package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	DefaultHTTPPort       = "8080"
	DefaultLogLevel       = "info"
	DefaultRateLimitRPS   = "10"
	DefaultRateLimitBurst = "20"
)

type Config struct {
	HTTPPort       string
	LogLevel       string
	RateLimitRPS   string
	RateLimitBurst string
}

// WithDefaults fills unset values.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.RateLimitRPS == "" {
		c.RateLimitRPS = DefaultRateLimitRPS
	}
	if c.RateLimitBurst == "" {
		c.RateLimitBurst = DefaultRateLimitBurst
	}
	return c
}

// SlogLevel parses LogLevel. Accepted values are debug, info, warn and error.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// RateLimit parses the per-client request rate and burst. A rate of zero or
// less turns rate limiting off.
func (c Config) RateLimit() (float64, int, error) {
	rps, err := strconv.ParseFloat(c.RateLimitRPS, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", c.RateLimitRPS, err)
	}
	burst, err := strconv.Atoi(c.RateLimitBurst)
	if err != nil || burst < 1 {
		return 0, 0, fmt.Errorf("invalid RATE_LIMIT_BURST %q: must be a positive integer", c.RateLimitBurst)
	}
	return rps, burst, nil
}
