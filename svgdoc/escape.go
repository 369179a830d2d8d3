package svgdoc

import "strings"

var textEscaper = strings.NewReplacer(
	`"`, "&quot;",
	"'", "&apos;",
	"`", "&apos;",
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
)

// EscapeText replaces the characters which are not allowed
// verbatim in element content. It is not idempotent: escaping
// an already escaped string escapes the ampersands again.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
