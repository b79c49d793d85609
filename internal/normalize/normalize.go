// ABOUTME: Field normalizer mapping Atom and RSS variants onto the canonical document
// ABOUTME: Resolves every optional field through an ordered fallback chain, then sanitizes and dates it

package normalize

import (
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"github.com/jdichev/forest/internal/models"
	"github.com/jdichev/forest/internal/parse"
	"github.com/jdichev/forest/internal/sanitize"
	"github.com/jdichev/forest/internal/timeutil"
)

// Document converts a parsed feed into its canonical form.
func Document(feed *parse.Feed) *models.Document {
	switch feed.Kind {
	case models.KindAtom:
		return Atom(feed.Atom)
	default:
		return RSS(feed.RSS)
	}
}

// Atom normalizes an Atom feed.
func Atom(feed *atom.Feed) *models.Document {
	doc := models.NewDocument(models.KindAtom, feed.Title)
	doc.Icon = optional(feed.Icon)
	doc.Logo = optional(feed.Logo)

	for _, link := range feed.Links {
		if link != nil {
			doc.Links = append(doc.Links, link.Href)
		}
	}

	for _, entry := range feed.Entries {
		if entry != nil {
			doc.AddItem(atomItem(entry))
		}
	}
	return doc
}

// RSS normalizes an RSS feed. The links list always holds exactly the
// channel link, even when it is empty.
func RSS(feed *rss.Feed) *models.Document {
	doc := models.NewDocument(models.KindRSS, feed.Title)
	doc.Links = append(doc.Links, firstOf(
		when(feed.Link != "", feed.Link),
		when(len(feed.Links) > 0, first(feed.Links)),
	))

	for _, item := range feed.Items {
		if item != nil {
			doc.AddItem(rssItem(item))
		}
	}
	return doc
}

func atomItem(entry *atom.Entry) models.Item {
	published := firstOf(
		when(entry.Published != "", entry.Published),
		when(entry.Updated != "", entry.Updated),
		always(models.NoDate),
	)

	link := firstOf(
		when(len(entry.Links) > 0 && entry.Links[0] != nil, firstHref(entry.Links)),
	)

	return newItem(entry.Title, entry.Summary, contentValue(entry.Content), published, link)
}

func rssItem(item *rss.Item) models.Item {
	published := firstOf(
		when(item.PubDate != "", item.PubDate),
		when(dublinCoreDate(item) != "", dublinCoreDate(item)),
	)

	link := firstOf(
		when(item.Link != "", item.Link),
		when(len(item.Links) > 0, first(item.Links)),
	)

	return newItem(item.Title, item.Description, item.Content, published, link)
}

// newItem applies the shared sanitize and date steps. Both markup fields
// are sanitized even when empty.
func newItem(title, description, content, published, link string) models.Item {
	return models.Item{
		Title:        title,
		Description:  sanitize.Markup(description),
		Content:      sanitize.Markup(content),
		Published:    timeutil.ParseEpoch(published),
		PublishedRaw: published,
		Link:         link,
	}
}

func contentValue(c *atom.Content) string {
	if c == nil {
		return ""
	}
	return c.Value
}

func firstHref(links []*atom.Link) string {
	if len(links) == 0 || links[0] == nil {
		return ""
	}
	return links[0].Href
}

// dublinCoreDate returns the first dc:date of an item, if any.
func dublinCoreDate(item *rss.Item) string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Date) > 0 {
		return item.DublinCoreExt.Date[0]
	}
	if dates := item.Extensions["dc"]["date"]; len(dates) > 0 {
		return dates[0].Value
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
