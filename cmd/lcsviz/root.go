package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lcsviz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lcsviz",
	Short: "lcsviz animates the Longest Common Subsequence dynamic programming table",
	Long: `lcsviz fills the LCS table of two strings one cell at a time, then
backtracks the optimal path. Step through it in the terminal, serve it over
HTTP, or expose it to agents via MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().String("first", "", "First sequence (default from config)")
	rootCmd.PersistentFlags().String("second", "", "Second sequence (default from config)")
	rootCmd.PersistentFlags().Duration("delay", 0, "Auto-play delay, between 100ms and 1s")
	rootCmd.PersistentFlags().Int("max-length", 0, "Maximum sequence length after normalization")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for publishing or watching frames")
}

// loadConfig reads the config file and environment, then applies explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("first") {
		cfg.First, _ = flags.GetString("first")
	}
	if flags.Changed("second") {
		cfg.Second, _ = flags.GetString("second")
	}
	if flags.Changed("delay") {
		cfg.Delay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("max-length") {
		cfg.MaxLength, _ = flags.GetInt("max-length")
	}
	if flags.Changed("redis") {
		cfg.Redis.Addr, _ = flags.GetString("redis")
	}
	return cfg, cfg.Validate()
}
