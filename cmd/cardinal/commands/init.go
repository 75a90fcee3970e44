package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wasted-Audio/Cardinal/internal/cli/prompt"
	"github.com/Wasted-Audio/Cardinal/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a configuration file",
	Long: `Write a configuration file populated with the default settings.

The file goes to $XDG_CONFIG_HOME/cardinal/config.yaml unless --config
points somewhere else. An existing file is only replaced after
confirmation or with --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		force := initForce
		if _, err := os.Stat(path); err == nil && !force {
			ok, err := prompt.ConfirmWithForce(
				fmt.Sprintf("Overwrite existing config at %s?", path), false)
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					return nil
				}
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
			force = true
		}

		if configFile != "" {
			err := config.InitConfigToPath(configFile, force)
			if err != nil {
				return err
			}
		} else {
			var err error
			path, err = config.InitConfig(force)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Configuration file created at: %s\n", path)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit the configuration file to customize your setup")
		fmt.Println("  2. Start the host with: cardinal run")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file without asking")
}
