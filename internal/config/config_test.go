package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "beetrack.db", cfg.Database.DSN)
	assert.Equal(t, "03:00", cfg.Sweep.Time)
	assert.Equal(t, "UTC", cfg.Sweep.Timezone)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BEETRACK_DATABASE_DSN", "/var/lib/beetrack/data.db")
	t.Setenv("BEETRACK_SWEEP_TIME", "04:30")
	t.Setenv("BEETRACK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/beetrack/data.db", cfg.Database.DSN)
	assert.Equal(t, "04:30", cfg.Sweep.Time)
	assert.Equal(t, "debug", cfg.Log.Level)
}
