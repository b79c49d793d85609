// ABOUTME: MCP server command for fetch-feed CLI
// ABOUTME: Starts stdio-based MCP server so host applications can call the pipeline

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdichev/forest/internal/logger"
	"github.com/jdichev/forest/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for host applications",
	Long: `Start the Model Context Protocol (MCP) server on stdio.

Exposes the fetch_feed and normalize_feed tools. Each call is independent
and returns the same JSON document the CLI prints.

The server communicates via JSON-RPC on stdin/stdout; logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(newFetcher(), Version)

		logger.Infof("mcp server starting on stdio (version %s)", Version)
		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
