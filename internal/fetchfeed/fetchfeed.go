// ABOUTME: Pipeline entry points turning a feed URL or raw feed text into canonical JSON
// ABOUTME: Stateless: parse, normalize in document order, serialize; top-level errors abort

package fetchfeed

import (
	"context"

	"github.com/jdichev/forest/internal/fetch"
	"github.com/jdichev/forest/internal/models"
	"github.com/jdichev/forest/internal/normalize"
	"github.com/jdichev/forest/internal/parse"
	"github.com/jdichev/forest/internal/render"
)

// Fetcher retrieves a feed body for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// Document parses and normalizes raw feed text.
func Document(raw []byte) (*models.Document, error) {
	feed, err := parse.Parse(raw)
	if err != nil {
		return nil, err
	}
	return normalize.Document(feed), nil
}

// FromText normalizes pre-fetched feed text and returns the JSON document.
func FromText(raw []byte) (string, error) {
	doc, err := Document(raw)
	if err != nil {
		return "", err
	}
	return render.JSON(doc)
}

// FromURL fetches url with the default fetcher and returns the JSON document.
func FromURL(ctx context.Context, url string) (string, error) {
	return FromURLWith(ctx, fetch.New(""), url)
}

// FromURLWith is FromURL with an explicit Fetcher.
func FromURLWith(ctx context.Context, f Fetcher, url string) (string, error) {
	doc, err := FetchDocument(ctx, f, url)
	if err != nil {
		return "", err
	}
	return render.JSON(doc)
}

// FetchDocument fetches url and returns the normalized document.
func FetchDocument(ctx context.Context, f Fetcher, url string) (*models.Document, error) {
	result, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return Document(result.Body)
}
