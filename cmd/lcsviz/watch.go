package main

import (
	"errors"

	"github.com/aretw0/lcsviz/internal/cli"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow frames published to Redis by another lcsviz process",
	Long:  `Subscribes to the Redis channel a 'play' or 'serve' process publishes to (see --redis) and renders every frame as it arrives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Redis.Addr == "" {
			return errors.New("watch needs a Redis address: pass --redis or set LCSVIZ_REDIS_ADDR")
		}
		return cli.RunWatch(cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
