// ABOUTME: HTTP fetcher for feed documents with a fixed short timeout
// ABOUTME: Classifies failures as transport or body-read errors and caps response size

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jdichev/forest/internal/config"
)

var (
	// ErrTransport covers invalid URLs, connection failures, timeouts and non-2xx responses.
	ErrTransport = errors.New("failed to get response")
	// ErrBodyRead is returned when the response body cannot be read or is too large.
	ErrBodyRead = errors.New("failed to get response text")
)

// Result contains the response from an HTTP fetch operation.
type Result struct {
	Body        []byte
	StatusCode  int
	ContentType string
}

// Fetcher performs single GET requests. The zero value is not usable; use New.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// New creates a Fetcher with the fixed fetch timeout and the given User-Agent.
func New(userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &Fetcher{
		client:    &http.Client{Timeout: config.DefaultHTTPTimeout},
		userAgent: userAgent,
		maxBytes:  config.MaxResponseSize,
	}
}

var defaultFetcher = New(config.DefaultUserAgent)

// Fetch retrieves urlStr with the default Fetcher.
func Fetch(ctx context.Context, urlStr string) (*Result, error) {
	return defaultFetcher.Fetch(ctx, urlStr)
}

// Fetch retrieves a URL. Redirects follow net/http defaults.
// Returns an ErrTransport-wrapped error for non-2xx status codes.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL: %v", ErrTransport, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL scheme %q", ErrTransport, parsedURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrTransport, resp.StatusCode)
	}

	// Read response body with DoS protection
	limitedReader := io.LimitReader(resp.Body, f.maxBytes+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBodyRead, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: response too large (exceeds %d bytes)", ErrBodyRead, f.maxBytes)
	}

	return &Result{
		Body:        body,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
