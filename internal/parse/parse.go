// ABOUTME: Feed parser adapter for RSS and Atom using gofeed's format-specific parsers
// ABOUTME: Detects the grammar and returns a tagged variant that keeps the source fields

package parse

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"github.com/jdichev/forest/internal/models"
)

// ErrFeedParse is returned when the input matches neither the Atom nor the RSS grammar.
var ErrFeedParse = errors.New("failed to parse feed")

// Feed is a parsed feed in its source variant. Exactly one of Atom or RSS is set,
// matching Kind.
type Feed struct {
	Kind models.Kind
	Atom *atom.Feed
	RSS  *rss.Feed
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse detects whether data is an Atom or RSS document and parses it with
// the matching parser. JSON feeds and anything else fail with ErrFeedParse.
func Parse(data []byte) (*Feed, error) {
	// Leading whitespace before the XML declaration is common in the wild
	data = bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")

	switch gofeed.DetectFeedType(bytes.NewReader(data)) {
	case gofeed.FeedTypeAtom:
		ap := &atom.Parser{}
		feed, err := ap.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: atom: %v", ErrFeedParse, err)
		}
		return &Feed{Kind: models.KindAtom, Atom: feed}, nil

	case gofeed.FeedTypeRSS:
		rp := &rss.Parser{}
		feed, err := rp.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: rss: %v", ErrFeedParse, err)
		}
		return &Feed{Kind: models.KindRSS, RSS: feed}, nil

	default:
		return nil, fmt.Errorf("%w: unrecognized feed type", ErrFeedParse)
	}
}
