// ABOUTME: Tests for the field normalizer
// ABOUTME: Checks per-variant fallback chains against inline Atom and RSS fixtures

package normalize

import (
	"testing"

	"github.com/mmcdole/gofeed/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdichev/forest/internal/models"
	"github.com/jdichev/forest/internal/parse"
)

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <logo>https://example.com/logo.png</logo>
  <link href="https://example.com/"/>
  <link rel="self" href="https://example.com/atom.xml"/>
  <entry>
    <title>Published</title>
    <link href="https://example.com/1"/>
    <link rel="alternate" href="https://example.com/1/alt"/>
    <published>2006-01-02T15:04:05Z</published>
    <updated>2007-01-02T15:04:05Z</updated>
    <summary type="html">&lt;p onclick="x()"&gt;summary&lt;/p&gt;</summary>
    <content type="html">&lt;p&gt;body&lt;/p&gt;&lt;script&gt;bad()&lt;/script&gt;</content>
  </entry>
  <entry>
    <title>Updated only</title>
    <updated>2006-01-02T15:04:05Z</updated>
  </entry>
  <entry>
    <title>No date</title>
  </entry>
</feed>`

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>RSS Feed</title>
    <link>https://example.com/</link>
    <item>
      <title>Full</title>
      <link>https://example.com/full</link>
      <pubDate>Thu, 22 Sep 2022 01:58:26 +0200</pubDate>
      <description>&lt;p&gt;desc&lt;/p&gt;</description>
      <content:encoded><![CDATA[<div><noscript><p>kept</p></noscript></div>]]></content:encoded>
    </item>
    <item>
      <title>Dublin Core</title>
      <dc:date>2006-01-02T15:04:05Z</dc:date>
    </item>
    <item>
      <description>no title, link or date</description>
    </item>
  </channel>
</rss>`

func mustParse(t *testing.T, raw string) *parse.Feed {
	t.Helper()
	feed, err := parse.Parse([]byte(raw))
	require.NoError(t, err)
	return feed
}

func TestDocument_Atom(t *testing.T) {
	doc := Document(mustParse(t, atomFixture))

	assert.Equal(t, models.KindAtom, doc.Kind)
	assert.Equal(t, "Atom Feed", doc.Title)
	assert.Nil(t, doc.Icon)
	require.NotNil(t, doc.Logo)
	assert.Equal(t, "https://example.com/logo.png", *doc.Logo)
	assert.Equal(t, []string{"https://example.com/", "https://example.com/atom.xml"}, doc.Links)
	require.Len(t, doc.Items, 3)

	full := doc.Items[0]
	assert.Equal(t, "Published", full.Title)
	assert.Equal(t, "2006-01-02T15:04:05Z", full.PublishedRaw)
	assert.Equal(t, int64(1136214245), full.Published)
	assert.Equal(t, "https://example.com/1", full.Link)
	assert.Equal(t, "<p>summary</p>", full.Description)
	assert.Equal(t, "<p>body</p>", full.Content)

	updated := doc.Items[1]
	assert.Equal(t, "2006-01-02T15:04:05Z", updated.PublishedRaw)
	assert.Equal(t, int64(1136214245), updated.Published)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, "", updated.Content)
	assert.Equal(t, "", updated.Link)

	noDate := doc.Items[2]
	assert.Equal(t, models.NoDate, noDate.PublishedRaw)
	assert.Equal(t, int64(0), noDate.Published)
}

func TestDocument_RSS(t *testing.T) {
	doc := Document(mustParse(t, rssFixture))

	assert.Equal(t, models.KindRSS, doc.Kind)
	assert.Equal(t, "RSS Feed", doc.Title)
	assert.Nil(t, doc.Icon)
	assert.Nil(t, doc.Logo)
	assert.Equal(t, []string{"https://example.com/"}, doc.Links)
	require.Len(t, doc.Items, 3)

	full := doc.Items[0]
	assert.Equal(t, "Full", full.Title)
	assert.Equal(t, "https://example.com/full", full.Link)
	assert.Equal(t, "Thu, 22 Sep 2022 01:58:26 +0200", full.PublishedRaw)
	assert.Equal(t, int64(1663804706), full.Published)
	assert.Equal(t, "<p>desc</p>", full.Description)
	assert.Equal(t, "<p>kept</p>", full.Content)

	dc := doc.Items[1]
	assert.Equal(t, "2006-01-02T15:04:05Z", dc.PublishedRaw)
	assert.Equal(t, int64(1136214245), dc.Published)

	bare := doc.Items[2]
	assert.Equal(t, "", bare.Title)
	assert.Equal(t, "", bare.Link)
	assert.Equal(t, "", bare.PublishedRaw)
	assert.Equal(t, int64(0), bare.Published)
	assert.Equal(t, "no title, link or date", bare.Description)
}

func TestRSS_EmptyChannelLink(t *testing.T) {
	doc := Document(mustParse(t, `<rss version="2.0"><channel><title>t</title></channel></rss>`))

	assert.Equal(t, []string{""}, doc.Links)
	assert.Empty(t, doc.Items)
	assert.NotNil(t, doc.Items)
}

func TestFirstOf(t *testing.T) {
	assert.Equal(t, "b", firstOf(when(false, "a"), when(true, "b"), always("c")))
	assert.Equal(t, "c", firstOf(when(false, "a"), always("c")))
	assert.Equal(t, "", firstOf(when(false, "a")))
	assert.Equal(t, "", firstOf())
}

func TestFirstHref(t *testing.T) {
	assert.Equal(t, "", firstHref(nil))
	assert.Equal(t, "", firstHref([]*atom.Link{nil}))
	assert.Equal(t, "https://example.com/a", firstHref([]*atom.Link{{Href: "https://example.com/a"}, {Href: "https://example.com/b"}}))
}
