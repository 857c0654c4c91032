// Package config provides server configuration loaded from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the HTTP server configuration. LLM provider settings live in
// the llm package; database location resolution lives in the store package.
type Config struct {
	Port            string
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	HistoryLimit    int
}

// Load reads configuration from MATHQUEST_* environment variables, with
// PORT honored as a fallback for platform conventions.
func Load() (*Config, error) {
	port := getEnv("MATHQUEST_PORT", getEnv("PORT", "8080"))

	cfg := &Config{
		Port:            port,
		AllowedOrigins:  splitOrigins(getEnv("MATHQUEST_CORS_ORIGINS", "*")),
		ReadTimeout:     getEnvDuration("MATHQUEST_READ_TIMEOUT", 30*time.Second),
		IdleTimeout:     getEnvDuration("MATHQUEST_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: getEnvDuration("MATHQUEST_SHUTDOWN_TIMEOUT", 10*time.Second),
		HistoryLimit:    getEnvInt("MATHQUEST_HISTORY_LIMIT", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", c.Port)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history limit must be >= 1")
	}
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
