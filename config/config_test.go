package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROJECT_ID", "")
	t.Setenv("PORT", "")
	t.Setenv("MAX_BATCH_SIZE", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, 10, cfg.MaxBatchSize)
	assert.Equal(t, 60, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PROJECT_ID", "my-project")
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("MAX_BATCH_SIZE", "25")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "90")

	cfg := Load()
	assert.Equal(t, "my-project", cfg.ProjectID)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 25, cfg.MaxBatchSize)
	assert.Equal(t, 90, cfg.HTTPTimeoutSeconds)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("DEBUG", "banana")
	t.Setenv("MAX_BATCH_SIZE", "lots")

	cfg := Load()
	assert.False(t, cfg.Debug)
	assert.Equal(t, 10, cfg.MaxBatchSize)
}

func TestValidate_RequiresProjectID(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "PROJECT_ID", cfgErr.Field)

	cfg.ProjectID = "my-project"
	assert.NoError(t, cfg.Validate())
}
