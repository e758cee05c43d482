// Package sanitize strips markup from raw review text, leaving plain text only.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict allows no elements or attributes at all. Policies are safe for
// concurrent use once constructed.
var strict = bluemonday.StrictPolicy()

// Clean removes all markup tags and attributes from raw, returning the
// remaining text content. It never fails, handles malformed markup, and the
// result is never longer than the input.
//
// Entities are decoded before sanitizing so that entity-encoded markup
// ("&lt;script&gt;") is stripped rather than resurfacing as literal tags; the
// final decode only undoes the policy's own re-escaping, leaving plain text.
func Clean(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	decoded := html.UnescapeString(raw)
	return html.UnescapeString(strict.Sanitize(decoded))
}
