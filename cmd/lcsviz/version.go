package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/lcsviz"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lcsviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lcsviz version %s\n", strings.TrimSpace(lcsviz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
