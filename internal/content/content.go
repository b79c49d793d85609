// ABOUTME: Terminal preview helpers for normalized feed items
// ABOUTME: Converts sanitized item HTML to Markdown, preferring full content over the description

package content

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/jdichev/forest/internal/models"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote|figure|figcaption)[^>]*>`)

// IsHTML checks if content appears to be HTML
func IsHTML(content string) bool {
	return htmlTagPattern.MatchString(content)
}

// ToMarkdown converts HTML content to Markdown.
// If the content doesn't appear to be HTML, returns it unchanged
func ToMarkdown(content string) string {
	if content == "" || !IsHTML(content) {
		return strings.TrimSpace(content)
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(markdown)
}

// ItemBody returns the Markdown body for an item: its content when the
// feed supplied one, otherwise its description.
func ItemBody(item models.Item) string {
	if body := ToMarkdown(item.Content); body != "" {
		return body
	}
	return ToMarkdown(item.Description)
}
