// ABOUTME: MCP server exposing the feed normalization pipeline to host applications
// ABOUTME: Stateless; every tool call fetches or parses independently

package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/jdichev/forest/internal/fetchfeed"
)

// Server wraps the MCP server with the fetcher used by tool calls
type Server struct {
	mcpServer *server.MCPServer
	fetcher   fetchfeed.Fetcher
}

// NewServer creates a new MCP server instance
func NewServer(fetcher fetchfeed.Fetcher, version string) *Server {
	s := &Server{fetcher: fetcher}

	s.mcpServer = server.NewMCPServer(
		"fetch-feed",
		version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
