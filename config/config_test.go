package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "placeholder-api-key", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.HistoryTurns)
	assert.Equal(t, "", cfg.SessionDBPath)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ProfanityCheck)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "anthropic")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "5")
	t.Setenv("PROFANITY_CHECK", "true")
	t.Setenv("HISTORY_TURNS", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.ProfanityCheck)
	assert.Equal(t, 7, cfg.HistoryTurns)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "other")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadTimeout(t *testing.T) {
	t.Setenv("MODEL_TIMEOUT_SECONDS", "soon")

	_, err := Load()
	assert.Error(t, err)
}
