package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, ".inkwell/cache.db", cfg.CachePath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Zero(t, cfg.AIModelID)
	assert.Zero(t, cfg.ProjectID)
	assert.False(t, cfg.PreviewBeforeSend)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("BACKEND_URL", "http://writing.internal:9000")
	t.Setenv("AI_MODEL_ID", "4")
	t.Setenv("PREVIEW_BEFORE_SEND", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://writing.internal:9000", cfg.BackendURL)
	assert.Equal(t, 4, cfg.AIModelID)
	assert.True(t, cfg.PreviewBeforeSend)
}
