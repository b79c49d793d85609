// ABOUTME: MCP tool definitions and handlers for fetching and normalizing feeds
// ABOUTME: Results carry the canonical JSON document or a failure payload marked as a tool error

package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jdichev/forest/internal/fetchfeed"
	"github.com/jdichev/forest/internal/logger"
)

type FetchFeedInput struct {
	URL string `json:"url"`
}

type NormalizeFeedInput struct {
	Text string `json:"text"`
}

var errMissingURL = errors.New("url is required")

func (s *Server) registerTools() {
	s.registerFetchFeedTool()
	s.registerNormalizeFeedTool()
}

func (s *Server) registerFetchFeedTool() {
	tool := mcp.Tool{
		Name:        "fetch_feed",
		Description: "Fetch an RSS or Atom feed from a URL and return it as canonical JSON. The document has type, title, links and items; Atom documents also carry icon and logo. Every item has title, description and content (sanitized HTML), published (Unix seconds, 0 when unknown), publishedRaw and link. The request times out after 2 seconds.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The feed URL (RSS or Atom). Example: 'https://example.com/feed.xml'",
				},
			},
			Required: []string{"url"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleFetchFeed)
}

func (s *Server) registerNormalizeFeedTool() {
	tool := mcp.Tool{
		Name:        "normalize_feed",
		Description: "Normalize raw RSS or Atom XML that was already fetched and return the same canonical JSON as fetch_feed.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The complete feed document as text.",
				},
			},
			Required: []string{"text"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleNormalizeFeed)
}

func (s *Server) handleFetchFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input FetchFeedInput
	if err := req.BindArguments(&input); err != nil {
		return nil, err
	}
	input.URL = strings.TrimSpace(input.URL)
	if input.URL == "" {
		return nil, errMissingURL
	}

	out, err := fetchfeed.FromURLWith(ctx, s.fetcher, input.URL)
	return s.result("fetch_feed", out, err, "url", input.URL), nil
}

func (s *Server) handleNormalizeFeed(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input NormalizeFeedInput
	if err := req.BindArguments(&input); err != nil {
		return nil, err
	}

	out, err := fetchfeed.FromText([]byte(input.Text))
	return s.result("normalize_feed", out, err, "bytes", len(input.Text)), nil
}

// result converts a pipeline outcome into a tool result, logging one
// diagnostic line on failure.
func (s *Server) result(tool, out string, err error, keysAndValues ...interface{}) *mcp.CallToolResult {
	if err == nil {
		return mcp.NewToolResultText(out)
	}

	failure := fetchfeed.NewFailure(err)
	fields := append([]interface{}{"call_id", uuid.NewString(), "tool", tool, "kind", failure.Kind}, keysAndValues...)
	logger.With(fields...).Errorf("feed call failed: %v", err)

	return mcp.NewToolResultError(failure.JSON())
}
