package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prepdeck/prepdeck/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:prepdeck.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "gpt-4o-mini", cfg.InterviewModel)
	assert.Equal(t, 30*time.Second, cfg.InterviewTimeout)
	assert.Equal(t, 1, cfg.ImportWorkerCount)
	assert.Equal(t, 16, cfg.ImportQueueSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("IMPORT_WORKER_COUNT", "4")
	t.Setenv("INTERVIEW_TIMEOUT", "10s")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 4, cfg.ImportWorkerCount)
	assert.Equal(t, 10*time.Second, cfg.InterviewTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("IMPORT_WORKER_COUNT", "many")
	t.Setenv("INTERVIEW_TIMEOUT", "soon")

	cfg := config.Load()

	assert.Equal(t, 1, cfg.ImportWorkerCount)
	assert.Equal(t, 30*time.Second, cfg.InterviewTimeout)
}
