// ABOUTME: Canonical feed item with sanitized markup and normalized date
// ABOUTME: Every field is always set; absent source values resolve to documented defaults

package models

import "time"

// NoDate is the raw-date sentinel used when an Atom entry has neither
// a published nor an updated timestamp.
const NoDate = "NO_DATE"

// Item is a single normalized entry of a feed.
type Item struct {
	Title        string
	Description  string // sanitized HTML
	Content      string // sanitized HTML, empty if the source had none
	Published    int64  // Unix seconds, 0 if unparseable
	PublishedRaw string
	Link         string
}

// PublishedTime returns the published instant in UTC, or false when the
// date could not be parsed.
func (i Item) PublishedTime() (time.Time, bool) {
	if i.Published == 0 {
		return time.Time{}, false
	}
	return time.Unix(i.Published, 0).UTC(), true
}
