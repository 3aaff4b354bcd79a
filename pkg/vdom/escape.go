package vdom

import "strings"

// htmlReplacer escapes text for safe inclusion in HTML content.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes text for safe inclusion in HTML content.
// It is also applied to tag names and attribute keys.
func EscapeHTML(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	return htmlReplacer.Replace(s)
}

// EscapeAttr escapes text for safe inclusion in a double-quoted attribute
// value. Whitespace is kept as is.
func EscapeAttr(s string) string {
	return EscapeHTML(s)
}
