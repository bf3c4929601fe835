// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/academy-hub/academy-record-keeper/internal/domain/grading"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Logging
	Logging LoggingConfig

	// Grading defaults
	Grading GradingConfig

	// Event bus
	Messaging MessagingConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
}

// GradingConfig holds grading defaults.
type GradingConfig struct {
	// DefaultPolicy is the aggregation policy assigned to new courses
	// when none is requested (unweighted_mean or weighted_mean).
	DefaultPolicy grading.Policy
}

// MessagingConfig holds event bus settings.
type MessagingConfig struct {
	// AsyncEvents enables asynchronous handler execution.
	AsyncEvents bool

	// WorkerPoolSize bounds concurrent handlers in async mode.
	WorkerPoolSize int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "academy-record-keeper"),
			Environment: Environment(getEnv("APP_ENV", string(EnvDevelopment))),
			Debug:       getEnvBool("APP_DEBUG", false),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Grading: GradingConfig{
			DefaultPolicy: grading.Policy(getEnv("GRADING_DEFAULT_POLICY", string(grading.DefaultPolicy))),
		},
		Messaging: MessagingConfig{
			AsyncEvents:    getEnvBool("EVENTS_ASYNC", false),
			WorkerPoolSize: getEnvInt("EVENTS_WORKER_POOL_SIZE", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is consistent.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("config: unknown environment %q", c.App.Environment)
	}

	if !c.Grading.DefaultPolicy.IsValid() {
		return fmt.Errorf("config: unknown grading policy %q", c.Grading.DefaultPolicy)
	}

	if c.Messaging.WorkerPoolSize <= 0 {
		return fmt.Errorf("config: worker pool size must be positive, got %d", c.Messaging.WorkerPoolSize)
	}

	return nil
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// getEnv reads a string variable with a default.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// getEnvBool reads a boolean variable with a default.
func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

// getEnvInt reads an integer variable with a default.
func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
