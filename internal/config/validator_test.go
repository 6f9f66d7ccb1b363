package config

import (
	"testing"
	"time"

	"linsearch/internal/benchmark"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Port:              8080,
		PortFallback:      true,
		MetricsPort:       2112,
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		Limits:            benchmark.DefaultLimits(),
		HistoryType:       "file",
		HistoryPath:       "history.json",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"metrics disabled", func(c *Config) { c.MetricsPort = 0 }, ""},
		{"sqlite history", func(c *Config) { c.HistoryType = "sqlite"; c.HistoryPath = "" }, ""},
		{"port too low", func(c *Config) { c.Port = 0 }, "port must be between 1 and 65535"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "port must be between"},
		{"fallback at top", func(c *Config) { c.Port = 65535 }, "port_fallback requires"},
		{"same ports", func(c *Config) { c.MetricsPort = 8080 }, "metrics_port must differ"},
		{"shutdown", func(c *Config) { c.ShutdownTimeout = 0 }, "shutdown_timeout must be positive"},
		{"search min", func(c *Config) { c.Limits.SearchMin = 0 }, "search.min must be positive"},
		{"search range", func(c *Config) { c.Limits.SearchMax = 5 }, "search.max (5)"},
		{"search default", func(c *Config) { c.Limits.SearchDefault = 1 }, "search.default (1)"},
		{"batch fallback", func(c *Config) { c.Limits.BatchFallback = 0 }, "batch.fallback (0)"},
		{"batch count", func(c *Config) { c.Limits.BatchMaxCount = 0 }, "batch.max_count must be positive"},
		{"history type", func(c *Config) { c.HistoryType = "redis" }, "history.type must be"},
		{"postgres dsn", func(c *Config) { c.HistoryType = "postgres" }, "history.dsn is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalid)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0
	cfg.ShutdownTimeout = -1

	err := Validate(cfg)
	assert.ErrorContains(t, err, "port must be between")
	assert.ErrorContains(t, err, "shutdown_timeout must be positive")
}
