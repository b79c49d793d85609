// ABOUTME: Canonical feed document produced by the normalization pipeline
// ABOUTME: Carries the source variant, feed-level metadata, and the ordered items

package models

// Kind identifies which syndication grammar a document was parsed from.
type Kind string

const (
	KindAtom Kind = "atom"
	KindRSS  Kind = "rss"
)

// Document is the canonical, format-independent view of a parsed feed.
// Icon and Logo are only populated for Atom documents.
type Document struct {
	Kind  Kind
	Title string
	Icon  *string
	Logo  *string
	Links []string
	Items []Item
}

// NewDocument creates an empty Document of the given kind with non-nil slices
func NewDocument(kind Kind, title string) *Document {
	return &Document{
		Kind:  kind,
		Title: title,
		Links: []string{},
		Items: []Item{},
	}
}

// IsAtom reports whether the document came from an Atom feed
func (d *Document) IsAtom() bool {
	return d.Kind == KindAtom
}

// AddItem appends an item, preserving document order
func (d *Document) AddItem(item Item) {
	d.Items = append(d.Items, item)
}
