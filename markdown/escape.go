package markdown

import (
	"regexp"
	"strings"
)

// textEscaper backslash-escapes Markdown metacharacters and entity-escapes
// the HTML metacharacters. It runs in a single pass over the input, so
// backslashes introduced by one substitution are never re-escaped by
// another, and the ampersands in emitted entities stay intact.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"_", `\_`,
	"|", `\|`,
	"`", "\\`",
	"~", `\~`,
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// hyphenRunRE matches runs of three or more hyphens, which Markdown could
// read as a horizontal rule or a heading underline. Shorter runs are left
// alone.
var hyphenRunRE = regexp.MustCompile(`-{3,}`)

// escapeText makes plain text safe for Markdown and HTML-flavored Markdown
// output. It is never applied to code or HTML payloads.
func escapeText(text string) string {
	escaped := textEscaper.Replace(text)
	return hyphenRunRE.ReplaceAllStringFunc(escaped, func(run string) string {
		return strings.Repeat(`\-`, len(run))
	})
}
