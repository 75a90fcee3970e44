package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wasted-Audio/Cardinal/internal/cli/output"
	"github.com/Wasted-Audio/Cardinal/pkg/plugin"
)

var (
	modulesOutput string
	modulesSearch string
)

// moduleList renders browser entries for the modules command.
type moduleList []plugin.Entry

func (moduleList) Headers() []string {
	return []string{"PLUGIN", "MODEL", "NAME", "TAGS"}
}

func (l moduleList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		rows = append(rows, []string{
			e.PluginSlug, e.ModelSlug, e.ModelName, strings.Join(e.Tags, ", "),
		})
	}
	return rows
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the modules available in this build",
	Long: `List every module model provided by the statically linked plugins.

With --search, only models whose plugin, slug, name or tags match the
query are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(modulesOutput)
		if err != nil {
			return err
		}

		if err := plugin.InitStatic(); err != nil {
			return err
		}
		defer plugin.DestroyStatic()

		entries := plugin.Search(modulesSearch)
		if format != output.FormatTable {
			return output.Print(os.Stdout, format, entries)
		}

		if err := output.PrintTable(os.Stdout, moduleList(entries)); err != nil {
			return err
		}
		fmt.Printf("\n%d models in %d plugins\n", len(entries), len(plugin.List()))
		return nil
	},
}

func init() {
	modulesCmd.Flags().StringVarP(&modulesOutput, "output", "o", "table", "Output format (table|json|yaml)")
	modulesCmd.Flags().StringVarP(&modulesSearch, "search", "s", "", "Filter models by substring match")
}
