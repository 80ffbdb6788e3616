// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Completion CompletionConfig `mapstructure:"completion"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Resolver   ResolverConfig   `mapstructure:"resolver"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// CompletionConfig holds settings for the external text-completion service.
type CompletionConfig struct {
	BaseURL     string   `mapstructure:"base_url"`
	Model       string   `mapstructure:"model"`
	Temperature float64  `mapstructure:"temperature"`
	MaxTokens   int      `mapstructure:"max_tokens"`
	Stop        []string `mapstructure:"stop"`
	Timeout     int      `mapstructure:"timeout"` // milliseconds
	RatePerSec  float64  `mapstructure:"rate_per_sec"`
	RateBurst   int      `mapstructure:"rate_burst"`
}

// GetTimeout returns the bounded completion-call timeout.
func (c CompletionConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}

type CatalogConfig struct {
	Path string `mapstructure:"path"` // empty = built-in catalog
}

// ResolverConfig holds tunables for the resolution pipeline itself.
type ResolverConfig struct {
	MinQueryLength int `mapstructure:"min_query_length"`
	DefaultYear    int `mapstructure:"default_year"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func validateConfig(cfg *Config) error {
	if cfg.Completion.BaseURL == "" {
		return fmt.Errorf("completion.base_url is required")
	}
	if cfg.Completion.Timeout <= 0 {
		return fmt.Errorf("completion.timeout must be positive, got %d", cfg.Completion.Timeout)
	}
	if cfg.Resolver.DefaultYear < 1900 || cfg.Resolver.DefaultYear > 2100 {
		return fmt.Errorf("resolver.default_year out of range: %d", cfg.Resolver.DefaultYear)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "intent-resolver"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Completion.Model == "" {
		cfg.Completion.Model = "llama2:7b"
	}
	if cfg.Completion.Temperature == 0 {
		cfg.Completion.Temperature = 0.1
	}
	if cfg.Completion.MaxTokens == 0 {
		cfg.Completion.MaxTokens = 300
	}
	if cfg.Completion.Timeout == 0 {
		cfg.Completion.Timeout = 45000
	}
	if cfg.Completion.RatePerSec == 0 {
		cfg.Completion.RatePerSec = 2
	}
	if cfg.Completion.RateBurst == 0 {
		cfg.Completion.RateBurst = 1
	}
	if cfg.Resolver.MinQueryLength == 0 {
		cfg.Resolver.MinQueryLength = 3
	}
	if cfg.Resolver.DefaultYear == 0 {
		cfg.Resolver.DefaultYear = 2024
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9091"
	}
}
