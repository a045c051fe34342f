package main

import (
	"fmt"

	"github.com/aretw0/stagger"
	"github.com/aretw0/stagger/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [scene.yaml]",
	Short: "Export the scene's dependency graph",
	Long:  `Outputs a Mermaid diagram (graph TD) with one edge per predecessor, labelled with its trigger threshold.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		engine, err := stagger.New(path)
		if err != nil {
			return err
		}

		specs, err := engine.Inspect(cmd.Context())
		if err != nil {
			return fmt.Errorf("error inspecting scene: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(specs, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
