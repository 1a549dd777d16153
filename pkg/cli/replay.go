package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewReplayCommand creates the replay command
func NewReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <session-file>",
		Short: "Replay a recorded session and print the resulting widget state",
		Long: `Replay a recorded editor session against the Lumi widget behavior.

The session file lists the nodes to create and the steps that followed:
user interactions, backend feedback payloads, server messages and node
removals. After the last step the state of every live node is printed
as YAML.

Example session:

  version: "1.0"
  wildcards: ["__colors__"]
  nodes:
    - id: "12"
      type: LumiWildcardProcessor
  steps:
    - interact: {node: "12", widget: "Select to add Wildcard", value: "__colors__"}
    - feedback: '{"node_id": 12, "widget_name": "populated_text", "value": "red"}'

Examples:
  lumiwidgets replay session.yaml
  lumiwidgets replay session.yaml --debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := LoadSession(args[0])
			if err != nil {
				return err
			}

			ed, err := newSessionEditor(session.Wildcards, session.LoRAs)
			if err != nil {
				return err
			}

			if err := session.Run(ed); err != nil {
				return fmt.Errorf("replay failed: %w", err)
			}

			data, err := yaml.Marshal(map[string]interface{}{"nodes": Snapshot(ed)})
			if err != nil {
				return fmt.Errorf("failed to marshal state: %w", err)
			}
			_, _ = cmd.OutOrStdout().Write(data)
			return nil
		},
	}

	return cmd
}
