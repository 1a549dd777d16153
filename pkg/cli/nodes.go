package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/lumiwidgets/pkg/nodedef"
)

// NewNodesCommand creates the nodes command
func NewNodesCommand() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List known node types and their widgets",
		Long: `List the built-in Lumi node types together with any extra node
definitions found in <config-dir>/nodedefs.

Examples:
  lumiwidgets nodes
  lumiwidgets nodes --yaml > nodedefs.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := collectDefinitions(nil, nil)
			if err != nil {
				return err
			}

			if asYAML {
				data, err := nodedef.Marshal(defs)
				if err != nil {
					return fmt.Errorf("failed to marshal node definitions: %w", err)
				}
				_, _ = cmd.OutOrStdout().Write(data)
				return nil
			}

			for _, def := range defs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s", def.Name)
				if def.Category != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (%s)", def.Category)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				for _, wd := range def.Widgets {
					line := fmt.Sprintf("  - %s [%s]", wd.Name, wd.Kind)
					if wd.Default != "" {
						line += fmt.Sprintf(" default=%q", wd.Default)
					}
					if len(wd.Options) > 0 {
						line += fmt.Sprintf(" options=%s", strings.Join(wd.Options, "|"))
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print definitions as a node definition YAML document")

	return cmd
}
