package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/lumiwidgets/pkg/nodedef"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <nodedef-file>",
		Short: "Validate a node definition file",
		Long: `Validate a node definition YAML file.

This checks:
- The document against the node definition schema
- Node type names
- Unique widget names within each node type
- Combo widgets have options

Examples:
  lumiwidgets validate nodedefs.yaml
  lumiwidgets validate nodedefs.yaml --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read node definition file: %w", err)
			}

			if err := nodedef.ValidateAgainstSchema(data); err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Schema validation failed")
				if verbose {
					_, _ = fmt.Fprintf(cmd.OutOrStderr(), "  Error: %v\n", err)
				}
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Schema valid")

			defs, err := nodedef.Parse(data)
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Node definitions invalid")
				if verbose {
					_, _ = fmt.Fprintf(cmd.OutOrStderr(), "  Error: %v\n", err)
				}
				return err
			}

			for _, def := range defs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%d widgets)\n", def.Name, len(def.Widgets))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed error information")

	return cmd
}
