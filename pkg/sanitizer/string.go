package sanitizer

import (
	"html"
	"strings"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

// EscapeHTML escapes <, >, &, ' and ".
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// NewlinesToBreaks replaces every LF with an HTML <br> element.
// Run it after EscapeHTML, otherwise the inserted tags get escaped.
func NewlinesToBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

// HTMLParagraph turns plain text into an HTML fragment: line endings are
// normalized, markup is escaped and line breaks become <br>.
var HTMLParagraph = Compose(NormalizeNewlines, EscapeHTML, NewlinesToBreaks)
