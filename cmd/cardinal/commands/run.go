package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/Wasted-Audio/Cardinal/internal/telemetry"
	"github.com/Wasted-Audio/Cardinal/pkg/asset"
	"github.com/Wasted-Audio/Cardinal/pkg/config"
	"github.com/Wasted-Audio/Cardinal/pkg/host"
	"github.com/Wasted-Audio/Cardinal/pkg/metrics"
	"github.com/Wasted-Audio/Cardinal/pkg/patch"
	"github.com/Wasted-Audio/Cardinal/pkg/plugin"
	"github.com/Wasted-Audio/Cardinal/pkg/scratch"
	"github.com/Wasted-Audio/Cardinal/pkg/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [patch-file]",
	Short: "Run the Cardinal host",
	Long: `Run the Cardinal host until interrupted.

Startup resolves the system and user asset directories, allocates a
per-run scratch directory for autosaves, registers the static plugins
and builds the engine/patch/scene graph. An optional patch file is
loaded over the template. On SIGINT or SIGTERM everything is torn down
in reverse order and the process exits cleanly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patchFile := ""
		if len(args) == 1 {
			patchFile = args[0]
		}
		return runHost(cmd.Context(), patchFile)
	},
}

// runHost is the whole process lifecycle: setup, main loop, teardown.
// Setup failures abort with an error; once the main loop starts, the
// only exits are signals and context cancellation, both clean.
func runHost(ctx context.Context, patchFile string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogger(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	runID := uuid.NewString()
	logEnvironment()
	logger.Info("Run starting", logger.KeyRunID, runID, "config", configSource())

	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	telemetryShutdown, err := telemetry.Init(runCtx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "cardinal",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(context.Background()); err != nil {
			logger.Error("Telemetry shutdown error", logger.Err(err))
		}
	}()
	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled",
			"endpoint", cfg.Telemetry.Endpoint,
			"sample_rate", cfg.Telemetry.SampleRate)
	}

	setupCtx, setupSpan := telemetry.StartPhaseSpan(runCtx, telemetry.SpanSetup,
		telemetry.RunID(runID),
		telemetry.SampleRate(cfg.Engine.SampleRate),
		telemetry.BufferSize(cfg.Engine.BufferSize))

	// Metrics come up before anything that records them.
	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metrics.Init()
		metricsServer = metrics.NewServer(cfg.Metrics.Port)
		go func() {
			if err := metricsServer.Start(runCtx); err != nil {
				logger.Error("Metrics server error", logger.Err(err))
			}
		}()
		logger.Info("Metrics enabled", "port", metricsServer.Port())
	}
	metrics.SetEngineParams(cfg.Engine.SampleRate, cfg.Engine.BufferSize)
	logger.Info("Engine parameters",
		logger.KeySampleRate, cfg.Engine.SampleRate,
		logger.KeyBufferSize, cfg.Engine.BufferSize)

	// Editor settings go in before any subsystem reads them.
	ui.Apply(ui.Settings{
		AllowCursorLock: cfg.UI.AllowCursorLock,
		CheckUpdates:    cfg.UI.CheckUpdates,
		ShowTips:        cfg.UI.ShowTips,
		CableColors:     cfg.UI.CableColors,
	})

	if err := plugin.InitStatic(); err != nil {
		setupSpan.End()
		return err
	}
	logger.Info("Plugins registered",
		"plugins", len(plugin.List()), "models", plugin.ModelCount())

	// Asset resolution never fails; a miss just degrades the session.
	paths := asset.Resolver{
		SourceDir:     cfg.Paths.SourceDir,
		InstallPrefix: cfg.Paths.InstallPrefix,
	}.Resolve()
	logResolvedPaths(paths)
	telemetry.SetAttributes(setupCtx, telemetry.SystemDir(paths.SystemDir))

	scratchRoot := cfg.Paths.ScratchRoot
	if scratchRoot == "" {
		scratchRoot = os.TempDir()
	}
	scratchDir := scratch.Allocate(scratchRoot, scratch.DefaultPrefix)
	if scratchDir == "" {
		logger.Warn("Scratch directory could not be allocated, autosave disabled")
	} else {
		logger.Info("Scratch directory allocated", logger.KeyScratch, scratchDir)
	}
	telemetry.SetAttributes(setupCtx, telemetry.Scratch(scratchDir))

	hostCtx, err := host.New(host.Options{
		Version:      Version,
		SampleRate:   cfg.Engine.SampleRate,
		BufferSize:   cfg.Engine.BufferSize,
		AutosavePath: scratchDir,
		TemplatePath: paths.TemplatePath,
	})
	if err != nil {
		setupSpan.End()
		return err
	}

	if patchFile != "" {
		if err := hostCtx.Patch.Load(patchFile); err != nil {
			telemetry.RecordError(setupCtx, err)
			setupSpan.End()
			teardown(hostCtx, &paths, scratchDir)
			return err
		}
	}

	hostCtx.Window.SetTitle(windowTitle(hostCtx.Patch))
	hostCtx.Window.SetResizable(true)
	hostCtx.Window.Show()

	hostCtx.Patch.StartAutosave(runCtx, cfg.Autosave.Interval)

	// Logging settings follow config file edits while running.
	watcher := config.NewWatcher(configPath(), func(updated *config.Config) {
		logger.SetLevel(updated.Logging.Level)
		logger.SetFormat(updated.Logging.Format)
	})
	watcher.Start(runCtx)

	setupSpan.End()

	err = hostCtx.Window.Run(runCtx)

	_, teardownSpan := telemetry.StartPhaseSpan(runCtx, telemetry.SpanTeardown,
		telemetry.RunID(runID))
	watcher.Stop()
	teardown(hostCtx, &paths, scratchDir)
	if metricsServer != nil {
		if stopErr := metricsServer.Stop(context.Background()); stopErr != nil {
			logger.Error("Metrics server shutdown error", logger.Err(stopErr))
		}
	}
	teardownSpan.End()

	logger.Info("Run finished", logger.KeyRunID, runID)
	return err
}

// teardown releases run state in the reverse of setup order: the patch
// and its engine resources first, then the scratch directory, the
// resolved paths, the plugin registry, the context graph and finally
// the current-context slot.
func teardown(hostCtx *host.Context, paths *asset.Paths, scratchDir string) {
	hostCtx.Patch.StopAutosave()
	hostCtx.Patch.Clear()

	if err := scratch.Remove(scratchDir); err != nil {
		logger.Warn("Failed to remove scratch directory",
			logger.KeyScratch, scratchDir, logger.Err(err))
	}

	paths.Clear()

	if err := plugin.DestroyStatic(); err != nil {
		logger.Warn("Plugin registry teardown failed", logger.Err(err))
	}

	hostCtx.Close()
	if err := host.ClearCurrent(); err != nil {
		logger.Warn("Context teardown failed", logger.Err(err))
	}
}

// logResolvedPaths reports the resolved runtime locations. The line is
// always emitted, the warnings follow when resolution fell short.
func logResolvedPaths(paths asset.Paths) {
	logger.Info("Asset directories resolved",
		logger.KeySystemDir, paths.SystemDir,
		logger.KeyUserDir, paths.UserDir,
		logger.KeyBundle, paths.BundlePath,
		logger.KeyTemplate, paths.TemplatePath)

	if paths.SystemDir == "" {
		logger.Warn("System asset directory could not be resolved")
	} else if !asset.Exists(paths.SystemDir) {
		logger.Warn("System asset directory does not exist",
			logger.KeySystemDir, paths.SystemDir)
	}
}

// windowTitle builds the window caption from the session state.
func windowTitle(mgr *patch.Manager) string {
	title := "Cardinal"
	if p := mgr.Path(); p != "" {
		title = fmt.Sprintf("Cardinal - %s", p)
	}
	return title
}

// configPath returns the config file path watched for live edits.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.GetDefaultConfigPath()
}
