package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandanabr23/ZenBoard/internal/config"
)

func TestParseDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.App.Pretty)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.EqualValues(t, 1, cfg.API.ListAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Board.SaveDelay)
	assert.Equal(t, 1280.0, cfg.Board.ViewportWidth)
	assert.Equal(t, 720.0, cfg.Board.ViewportHeight)
	assert.Equal(t, 5*time.Second, cfg.Board.ShutdownTimeout)
}

func TestParseFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "http://notes.internal:9000")
	t.Setenv("BOARD_SAVE_DELAY", "2s")
	t.Setenv("APP_PRETTY", "true")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "http://notes.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Board.SaveDelay)
	assert.True(t, cfg.App.Pretty)
}
