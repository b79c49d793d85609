// ABOUTME: Markup sanitizer for feed descriptions and content
// ABOUTME: Unwraps noscript fallback blocks, then cleans HTML with a fixed allow-list policy

package sanitize

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const noscriptMarker = "noscript"

// policy is built once; bluemonday policies are safe for concurrent Sanitize calls.
var policy = bluemonday.UGCPolicy()

// Markup unwraps a noscript block if one is present and returns the
// allow-list sanitized HTML. It never fails: malformed input is stripped.
func Markup(src string) string {
	return Clean(UnwrapNoscript(src))
}

// Clean runs src through the allow-list policy only.
func Clean(src string) string {
	return policy.Sanitize(src)
}

// UnwrapNoscript returns the interior of the first <noscript>...</noscript>
// pair, dropping everything before the open tag and after the close tag.
// The marker check and tag matching ignore case. When the text mentions
// noscript but holds no well-formed pair, src is returned unchanged.
// Tags inside comments or raw-text elements do not count.
func UnwrapNoscript(src string) string {
	if !strings.Contains(strings.ToLower(src), noscriptMarker) {
		return src
	}

	start, end, ok := noscriptSpan(src)
	if !ok {
		return src
	}
	return src[start:end]
}

// noscriptSpan scans for the first noscript open tag and the first close
// tag following it. It returns byte offsets of the interior.
func noscriptSpan(src string) (start, end int, ok bool) {
	z := html.NewTokenizer(strings.NewReader(src))
	offset := 0
	opened := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a read error; either way no closing tag was found
			return 0, 0, false
		}

		raw := z.Raw()
		next := offset + len(raw)

		switch tt {
		case html.StartTagToken:
			if !opened && isNoscript(z) {
				opened = true
				start = next
			}
		case html.EndTagToken:
			if opened && isNoscript(z) {
				return start, offset, true
			}
		}
		offset = next
	}
}

func isNoscript(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return atom.Lookup(bytes.ToLower(name)) == atom.Noscript
}
