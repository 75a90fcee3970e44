package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, float64(48000), cfg.Engine.SampleRate)
	assert.Equal(t, 512, cfg.Engine.BufferSize)
	assert.Equal(t, "/usr/local", cfg.Paths.InstallPrefix)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, 1.0, cfg.Telemetry.SampleRate)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Zero(t, cfg.Autosave.Interval, "autosave is disabled by default")
}

func TestApplyDefaultsPreservesExplicit(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "debug"
	cfg.Engine.SampleRate = 96000
	cfg.UI.CableColors = []string{"#ffffff"}

	ApplyDefaults(cfg)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, float64(96000), cfg.Engine.SampleRate)
	assert.Equal(t, []string{"#ffffff"}, cfg.UI.CableColors)
}

func TestApplyMetricsDefaults(t *testing.T) {
	t.Run("disabled leaves port alone", func(t *testing.T) {
		cfg := &Config{}
		ApplyDefaults(cfg)
		assert.Zero(t, cfg.Metrics.Port)
	})

	t.Run("enabled gets default port", func(t *testing.T) {
		cfg := &Config{}
		cfg.Metrics.Enabled = true
		ApplyDefaults(cfg)
		assert.Equal(t, 9090, cfg.Metrics.Port)
	})
}

func TestDefaultCablePalette(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Len(t, cfg.UI.CableColors, 16)
	assert.Equal(t, "#ff5252", cfg.UI.CableColors[0])

	// The default slice must not alias the package variable.
	cfg.UI.CableColors[0] = "#000000"
	assert.Equal(t, "#ff5252", DefaultCableColors[0])
}
