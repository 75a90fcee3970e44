package commands

import (
	"runtime"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/Wasted-Audio/Cardinal/pkg/config"
)

// loadConfig loads the effective configuration for the current
// invocation, honoring the global --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.MustLoad(configFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogger configures the process logger from the loaded config.
func initLogger(cfg *config.Config) error {
	return logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// configSource describes where the configuration came from, for the
// startup banner.
func configSource() string {
	if configFile != "" {
		return configFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return "defaults"
}

// logEnvironment writes the startup diagnostics block: version, build
// info and host platform.
func logEnvironment() {
	logger.Info("Cardinal host starting",
		logger.KeyVersion, Version,
		"commit", Commit,
		"built", Date)
	logger.Info("Environment",
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"go", runtime.Version(),
		"cpus", runtime.NumCPU())
}
