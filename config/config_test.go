package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academy-hub/academy-record-keeper/internal/domain/grading"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "academy-record-keeper", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, grading.DefaultPolicy, cfg.Grading.DefaultPolicy)
	assert.False(t, cfg.Messaging.AsyncEvents)
	assert.Equal(t, 4, cfg.Messaging.WorkerPoolSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "record-keeper-test")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRADING_DEFAULT_POLICY", "weighted_mean")
	t.Setenv("EVENTS_ASYNC", "true")
	t.Setenv("EVENTS_WORKER_POOL_SIZE", "8")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "record-keeper-test", cfg.App.Name)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, grading.PolicyWeightedMean, cfg.Grading.DefaultPolicy)
	assert.True(t, cfg.Messaging.AsyncEvents)
	assert.Equal(t, 8, cfg.Messaging.WorkerPoolSize)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "sandbox")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("GRADING_DEFAULT_POLICY", "median")

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate_WorkerPoolSize(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Environment: EnvDevelopment},
		Grading: GradingConfig{DefaultPolicy: grading.DefaultPolicy},
		Messaging: MessagingConfig{
			WorkerPoolSize: 0,
		},
	}

	assert.Error(t, cfg.Validate())
}

func TestGetEnv_IgnoresBlankValues(t *testing.T) {
	t.Setenv("APP_NAME", "   ")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "academy-record-keeper", cfg.App.Name)
}
