package main

import (
	"github.com/aretw0/lcsviz/internal/cli"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Step through the LCS table interactively",
	Long: `Opens the interactive visualizer in the terminal.

` + cli.KeyHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		explain, _ := cmd.Flags().GetBool("explain")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		if !noBanner {
			tui.PrintBanner(cmd.OutOrStdout(), termenv.ColorProfile())
		}
		return cli.RunPlay(cli.PlayOptions{Config: cfg, Explain: explain})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("explain", false, "Show the algorithm explanation under the table")
	playCmd.Flags().Bool("no-banner", false, "Skip the startup banner")
}
