// ABOUTME: JSON serializer for canonical feed documents
// ABOUTME: Emits a stable key order, pretty-printed, with HTML left unescaped

package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jdichev/forest/internal/models"
)

const indent = "  "

type itemJSON struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Content      string `json:"content"`
	Published    int64  `json:"published"`
	PublishedRaw string `json:"publishedRaw"`
	Link         string `json:"link"`
}

// atomJSON and rssJSON differ only in the icon/logo keys; field order
// is the output key order.
type atomJSON struct {
	Type  models.Kind `json:"type"`
	Title string      `json:"title"`
	Icon  *string     `json:"icon"`
	Logo  *string     `json:"logo"`
	Links []string    `json:"links"`
	Items []itemJSON  `json:"items"`
}

type rssJSON struct {
	Type  models.Kind `json:"type"`
	Title string      `json:"title"`
	Links []string    `json:"links"`
	Items []itemJSON  `json:"items"`
}

// JSON serializes doc. Identical documents always produce identical output.
func JSON(doc *models.Document) (string, error) {
	var v any
	if doc.IsAtom() {
		v = atomJSON{
			Type:  doc.Kind,
			Title: doc.Title,
			Icon:  doc.Icon,
			Logo:  doc.Logo,
			Links: links(doc),
			Items: items(doc),
		}
	} else {
		v = rssJSON{
			Type:  doc.Kind,
			Title: doc.Title,
			Links: links(doc),
			Items: items(doc),
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode feed: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func links(doc *models.Document) []string {
	if doc.Links == nil {
		return []string{}
	}
	return doc.Links
}

func items(doc *models.Document) []itemJSON {
	out := make([]itemJSON, 0, len(doc.Items))
	for _, item := range doc.Items {
		out = append(out, itemJSON{
			Title:        item.Title,
			Description:  item.Description,
			Content:      item.Content,
			Published:    item.Published,
			PublishedRaw: item.PublishedRaw,
			Link:         item.Link,
		})
	}
	return out
}
