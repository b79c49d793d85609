// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Calls fetch_feed and normalize_feed directly and inspects tool results

package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdichev/forest/internal/fetch"
	"github.com/jdichev/forest/internal/fetchfeed"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Tool Feed</title>
    <link>https://example.com/</link>
    <item>
      <title>Hello</title>
      <link>https://example.com/hello</link>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
      <description>&lt;p&gt;hi&lt;/p&gt;&lt;script&gt;x()&lt;/script&gt;</description>
    </item>
  </channel>
</rss>`

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(fetch.New("test-agent"), "test")
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func TestHandleFetchFeed(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(testRSS))
	}))
	defer httpServer.Close()

	s := testServer(t)
	result, err := s.handleFetchFeed(context.Background(), callRequest(map[string]interface{}{
		"url": httpServer.URL,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	expected, err := fetchfeed.FromText([]byte(testRSS))
	require.NoError(t, err)
	assert.Equal(t, expected, text)
	assert.NotContains(t, text, "<script>")
}

func TestHandleFetchFeed_MissingURL(t *testing.T) {
	s := testServer(t)

	result, err := s.handleFetchFeed(context.Background(), callRequest(map[string]interface{}{"url": "  "}))
	assert.ErrorIs(t, err, errMissingURL)
	assert.Nil(t, result)
}

func TestHandleFetchFeed_TransportFailure(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer httpServer.Close()

	s := testServer(t)
	result, err := s.handleFetchFeed(context.Background(), callRequest(map[string]interface{}{
		"url": httpServer.URL,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	var failure fetchfeed.Failure
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &failure))
	assert.Equal(t, fetchfeed.KindTransport, failure.Kind)
}

func TestHandleNormalizeFeed(t *testing.T) {
	s := testServer(t)

	result, err := s.handleNormalizeFeed(context.Background(), callRequest(map[string]interface{}{
		"text": testRSS,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &doc))
	assert.Equal(t, "rss", doc["type"])
	assert.Equal(t, "Tool Feed", doc["title"])
}

func TestHandleNormalizeFeed_NotAFeed(t *testing.T) {
	s := testServer(t)

	result, err := s.handleNormalizeFeed(context.Background(), callRequest(map[string]interface{}{
		"text": "plain words",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	var failure fetchfeed.Failure
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &failure))
	assert.Equal(t, fetchfeed.KindFeedParse, failure.Kind)
}
