package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/lcsviz/internal/cli"
	"github.com/aretw0/lcsviz/internal/logging"
	"github.com/aretw0/lcsviz/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the visualizer as MCP tools so agents can compute an LCS or
step through the shared table.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// Logs always go to stderr so they never corrupt JSON-RPC on stdout.
		logger := logging.New(logging.LevelFor(cfg.Debug))

		session, err := cli.NewSession(cfg, logger, cli.DebugHooks(logger, cfg.Debug))
		if err != nil {
			return err
		}
		defer session.Close()

		srv := mcp.NewServer(session.Viz, logger)

		switch transport {
		case "stdio":
			log.SetOutput(os.Stderr)
			logger.Info("Starting lcsviz MCP Server (Stdio)...")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting lcsviz MCP Server (SSE)", "port", port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				return err
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport to use: stdio or sse")
	mcpCmd.Flags().Int("port", 8081, "Port for the SSE transport")
}
