package main

import (
	"context"
	"fmt"

	"github.com/aretw0/lcsviz/internal/cli"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a single frame of the visualization",
	Long:  `Advances the timeline a number of steps and prints the resulting table once. Use --all to print the finished table with the LCS path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		steps, _ := cmd.Flags().GetInt("steps")
		all, _ := cmd.Flags().GetBool("all")
		plain, _ := cmd.Flags().GetBool("plain")

		logger := cli.CreateLogger(cfg.Debug)
		cfg.Redis.Addr = ""
		session, err := cli.NewSession(cfg, logger, cli.DebugHooks(logger, cfg.Debug))
		if err != nil {
			return err
		}
		defer session.Close()

		f := advance(cmd.Context(), session, steps, all)

		profile := termenv.ColorProfile()
		if plain {
			profile = termenv.Ascii
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.NewRenderer(profile).Frame(f))
		return nil
	},
}

// advance steps forward n times, or to the revealed path when all is set.
func advance(ctx context.Context, s *cli.Session, n int, all bool) domain.Frame {
	if ctx == nil {
		ctx = context.Background()
	}
	if all {
		n = s.Viz.Result().Steps()
	}
	f := s.Viz.Frame()
	for range n {
		f = s.Viz.StepForward(ctx)
	}
	return f
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Int("steps", 0, "Number of forward steps to take")
	showCmd.Flags().Bool("all", false, "Step to the end and show the LCS path")
	showCmd.Flags().Bool("plain", false, "Disable colors and use text markers")
}
