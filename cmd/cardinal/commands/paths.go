package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Wasted-Audio/Cardinal/internal/cli/output"
	"github.com/Wasted-Audio/Cardinal/pkg/asset"
)

var pathsOutput string

// resolvedPaths is the paths command result.
type resolvedPaths struct {
	SystemDir    string `json:"system_dir"    yaml:"system_dir"`
	UserDir      string `json:"user_dir"      yaml:"user_dir"`
	BundlePath   string `json:"bundle_path"   yaml:"bundle_path"`
	TemplatePath string `json:"template_path" yaml:"template_path"`
	ScratchRoot  string `json:"scratch_root"  yaml:"scratch_root"`
	ConfigPath   string `json:"config_path"   yaml:"config_path"`
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the directories the host would use",
	Long: `Resolve and display the asset directories, the scratch parent
directory, and the configuration file location for the current
settings, without starting a run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(pathsOutput)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		resolved := asset.Resolver{
			SourceDir:     cfg.Paths.SourceDir,
			InstallPrefix: cfg.Paths.InstallPrefix,
		}.Resolve()

		scratchRoot := cfg.Paths.ScratchRoot
		if scratchRoot == "" {
			scratchRoot = os.TempDir()
		}

		result := resolvedPaths{
			SystemDir:    resolved.SystemDir,
			UserDir:      resolved.UserDir,
			BundlePath:   resolved.BundlePath,
			TemplatePath: resolved.TemplatePath,
			ScratchRoot:  scratchRoot,
			ConfigPath:   configSource(),
		}

		if format != output.FormatTable {
			return output.Print(os.Stdout, format, result)
		}

		return output.KeyValueTable(os.Stdout, [][2]string{
			{"System dir", describePath(result.SystemDir)},
			{"User dir", describePath(result.UserDir)},
			{"Plugin manifests", describePath(result.BundlePath)},
			{"Template patch", describePath(result.TemplatePath)},
			{"Scratch root", describePath(result.ScratchRoot)},
			{"Config", result.ConfigPath},
		})
	},
}

// describePath marks unresolved and missing locations for display.
func describePath(path string) string {
	if path == "" {
		return "(unresolved)"
	}
	if !asset.Exists(path) {
		return path + " (missing)"
	}
	return path
}

func init() {
	pathsCmd.Flags().StringVarP(&pathsOutput, "output", "o", "table", "Output format (table|json|yaml)")
}
