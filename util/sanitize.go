package util

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// posts and comments are plain text, so strip markup entirely
var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeText strips any HTML from user text and returns the unescaped
// plain text.
func SanitizeText(val string) string {
	return html.UnescapeString(sanitizePolicy.Sanitize(val))
}
