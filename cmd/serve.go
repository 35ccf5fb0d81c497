package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wheelx-mcp/config"
	"wheelx-mcp/internal/mcpserver"
	"wheelx-mcp/pkg/client"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WheelX MCP server over stdio",
	Long: `Run an MCP (Model Context Protocol) server that exposes WheelX quoting,
order status, chain info, and gas/amount helpers as tools and resources.

The server speaks the MCP stdio transport and is meant to be launched by an
MCP host, e.g. from a host configuration:

  {"command": "wheelx", "args": ["serve"]}`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	apiClient := client.New(cfg.BaseURL,
		client.WithTimeout(cfg.HTTPTimeout),
		client.WithProbeTimeout(cfg.StatusTimeout),
	)

	srv := mcpserver.New(apiClient, Version)
	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server stopped: %v\n", err)
		os.Exit(1)
	}
}
