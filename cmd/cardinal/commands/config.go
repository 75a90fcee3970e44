package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wasted-Audio/Cardinal/internal/cli/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the host configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration the host would run with: file values merged
with CARDINAL_* environment overrides and defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("# source: %s\n", configSource())
		return output.PrintYAML(os.Stdout, cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
