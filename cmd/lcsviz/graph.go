package main

import (
	"fmt"

	"github.com/aretw0/lcsviz/internal/cli"
	"github.com/aretw0/lcsviz/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the backtrack trail as a Mermaid diagram",
	Long:  `Computes the LCS of the configured pair and outputs a Mermaid diagram (graph TD) of the cells visited while backtracking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		steps, _ := cmd.Flags().GetInt("steps")
		all, _ := cmd.Flags().GetBool("all")

		logger := cli.CreateLogger(cfg.Debug)
		cfg.Redis.Addr = ""
		session, err := cli.NewSession(cfg, logger, cli.DebugHooks(logger, cfg.Debug))
		if err != nil {
			return err
		}
		defer session.Close()

		var overlay *graph.Overlay
		if steps > 0 || all {
			overlay = graph.OverlayFor(advance(cmd.Context(), session, steps, all))
		}

		// Generate and print Mermaid graph
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(session.Viz.Result(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Int("steps", 0, "Highlight the current cell after this many steps")
	graphCmd.Flags().Bool("all", false, "Highlight the revealed LCS path")
}
