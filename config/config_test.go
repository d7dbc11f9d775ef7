package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvDecks, "")
	t.Setenv(EnvReshuffleThreshold, "")
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NumDecks)
	assert.Equal(t, 75, cfg.ReshuffleThreshold)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvDecks, "8")
	t.Setenv(EnvReshuffleThreshold, "100")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.NumDecks)
	assert.Equal(t, 100, cfg.ReshuffleThreshold)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv(EnvDecks, "zero")
	_, err := Load()
	require.Error(t, err)

	t.Setenv(EnvDecks, "0")
	_, err = Load()
	require.Error(t, err)

	t.Setenv(EnvDecks, "1")
	t.Setenv(EnvReshuffleThreshold, "52")
	_, err = Load()
	require.Error(t, err, "threshold must leave dealable cards")

	t.Setenv(EnvReshuffleThreshold, "10")
	t.Setenv(EnvVerbose, "maybe")
	_, err = Load()
	require.Error(t, err)
}
