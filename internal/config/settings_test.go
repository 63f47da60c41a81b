package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.Mute)
	assert.Zero(t, s.Seed)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("GARDEN_MUTE", "true")
	t.Setenv("GARDEN_SEED", "1234")
	t.Setenv("GARDEN_LOG_LEVEL", "debug")
	t.Setenv("GARDEN_DEFS_DIR", "/tmp/defs")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.True(t, s.Mute)
	assert.Equal(t, int64(1234), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "/tmp/defs", s.DefsDir)
	assert.False(t, s.Fullscreen)
}
