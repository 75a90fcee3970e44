// Package commands implements the CLI commands for the cardinal host.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var configFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cardinal",
	Short: "Cardinal - Standalone modular synthesizer host",
	Long: `cardinal hosts a Cardinal modular-synthesizer instance as a standalone
process: it resolves the installation's asset directories, allocates a
per-run scratch directory, builds the engine/patch/scene graph, and runs
until interrupted.

Configuration is read from $XDG_CONFIG_HOME/cardinal/config.yaml by
default; every option can be overridden with CARDINAL_<SECTION>_<KEY>
environment variables (e.g. CARDINAL_LOGGING_LEVEL=DEBUG).

Use "cardinal [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to config file (default: $XDG_CONFIG_HOME/cardinal/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
