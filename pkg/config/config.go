// Package config loads and validates the Cardinal host configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the Cardinal host configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (CARDINAL_*)
//  2. Configuration file (YAML)
//  3. Default values
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Engine contains the numeric run parameters bound to the audio
	// engine before it is constructed
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`

	// Paths controls how the system/user asset directories are resolved
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	// Autosave controls periodic patch autosaving into the scratch
	// directory
	Autosave AutosaveConfig `mapstructure:"autosave" yaml:"autosave"`

	// UI contains editor behavior settings applied before subsystem init
	UI UIConfig `mapstructure:"ui" yaml:"ui"`

	// Telemetry controls OpenTelemetry tracing of the run
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`

	// Metrics contains Prometheus metrics server configuration
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format: text or json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// EngineConfig contains the run parameters the engine reads at
// construction time.
type EngineConfig struct {
	// SampleRate in Hz. Default: 48000
	SampleRate float64 `mapstructure:"sample_rate" validate:"required,gt=0" yaml:"sample_rate"`

	// BufferSize in frames. Default: 512
	BufferSize int `mapstructure:"buffer_size" validate:"required,gt=0" yaml:"buffer_size"`
}

// PathsConfig controls runtime path resolution.
type PathsConfig struct {
	// SourceDir is a development override: when it contains a "res"
	// subfolder it is used as the system directory instead of the
	// platform install location
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir,omitempty"`

	// InstallPrefix is the Unix install prefix. Default: /usr/local
	InstallPrefix string `mapstructure:"install_prefix" yaml:"install_prefix"`

	// ScratchRoot overrides the platform temp directory as the parent
	// of the per-run scratch directory
	ScratchRoot string `mapstructure:"scratch_root" yaml:"scratch_root,omitempty"`
}

// AutosaveConfig controls periodic autosaving of the current patch.
type AutosaveConfig struct {
	// Interval between autosaves. Zero disables autosave.
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// UIConfig contains editor settings applied at startup.
type UIConfig struct {
	// AllowCursorLock permits the UI to grab the mouse cursor
	AllowCursorLock bool `mapstructure:"allow_cursor_lock" yaml:"allow_cursor_lock"`

	// CheckUpdates enables the automatic update check
	CheckUpdates bool `mapstructure:"check_updates" yaml:"check_updates"`

	// ShowTips shows the tips window on launch
	ShowTips bool `mapstructure:"show_tips" yaml:"show_tips"`

	// CableColors is the palette used for patch cables, as hex strings
	CableColors []string `mapstructure:"cable_colors" yaml:"cable_colors,omitempty"`
}

// TelemetryConfig controls OpenTelemetry distributed tracing.
type TelemetryConfig struct {
	// Enabled controls whether tracing is enabled. Default: false
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Endpoint is the OTLP collector endpoint (host:port)
	// Default: "localhost:4317"
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Insecure controls whether to use a non-TLS connection
	Insecure bool `mapstructure:"insecure" yaml:"insecure"`

	// SampleRate controls the trace sampling rate (0.0 to 1.0)
	SampleRate float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate"`
}

// MetricsConfig configures the Prometheus metrics HTTP server.
// When Enabled is false, no metrics server runs.
type MetricsConfig struct {
	// Enabled controls whether the metrics HTTP server is started
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port for the metrics endpoint. Default: 9090
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: Path to config file (empty string uses default location)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	configFileFound, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	// No config file at all means pure defaults.
	if !configFileFound {
		return GetDefaultConfig(), nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration with helpful error messages when an
// explicitly specified config file does not exist.
func MustLoad(configPath string) (*Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s\n\n"+
				"Please create the configuration file:\n"+
				"  cardinal init --config %s",
				configPath, configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path in YAML.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures viper with environment variables and config file
// settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the CARDINAL_ prefix and underscores.
	// Example: CARDINAL_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("CARDINAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/cardinal/config.yaml
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error).
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		// Explicit config paths surface as os.PathError instead.
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// configDecodeHooks returns the combined decode hook for custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
	)
}

// durationDecodeHook converts strings like "30s" or "5m" to
// time.Duration so config files stay human-readable.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			// YAML often deserializes numbers as float64
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to the
// current directory if the home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cardinal")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "cardinal")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks if a config file exists at the default
// location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}
