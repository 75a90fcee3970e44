package config

import (
	"strings"

	"github.com/Wasted-Audio/Cardinal/pkg/asset"
)

// DefaultCableColors is the 16-color cable palette applied when the
// configuration does not specify one.
var DefaultCableColors = []string{
	"#ff5252", "#ff9352", "#ffd452", "#e8ff52",
	"#a8ff52", "#67ff52", "#52ff7d", "#52ffbe",
	"#52ffff", "#52beff", "#527dff", "#6752ff",
	"#a852ff", "#e952ff", "#ff52d4", "#ff5293",
}

// ApplyDefaults sets default values for any unspecified configuration
// fields. Zero values are replaced; explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyEngineDefaults(&cfg.Engine)
	applyPathsDefaults(&cfg.Paths)
	applyUIDefaults(&cfg.UI)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyEngineDefaults sets the run parameters the engine is built with.
func applyEngineDefaults(cfg *EngineConfig) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 48000
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = 512
	}
}

func applyPathsDefaults(cfg *PathsConfig) {
	if cfg.InstallPrefix == "" {
		cfg.InstallPrefix = asset.DefaultInstallPrefix
	}
	// SourceDir and ScratchRoot have no defaults; empty means unused.
}

// applyUIDefaults sets editor behavior defaults. Cursor lock, update
// checks and launch tips are all off for this host.
func applyUIDefaults(cfg *UIConfig) {
	if len(cfg.CableColors) == 0 {
		cfg.CableColors = append([]string{}, DefaultCableColors...)
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	// Enabled defaults to false (opt-in)

	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}

	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
}

// applyMetricsDefaults sets metrics defaults.
func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Enabled && cfg.Port == 0 {
		cfg.Port = 9090
	}
}

// GetDefaultConfig returns a Config struct with all default values
// applied. Useful for generating sample configuration files and tests.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
