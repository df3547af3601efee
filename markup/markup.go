// Package markup renders the closet's lightweight note syntax to HTML.
//
// The grammar is deliberately tiny: **text** is strong, *text* is emphasis,
// a blank line starts a new paragraph, and a single newline is a line break.
// Input is HTML-escaped before any rule is applied, so the transformation is
// total and user content can never inject markup.
package markup

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// ToHTML converts src to an HTML fragment. Empty or whitespace-only input
// yields the empty string.
func ToHTML(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	if strings.TrimSpace(src) == "" {
		return ""
	}

	escaped := html.EscapeString(src)
	// Bold before italic, otherwise ** pairs are eaten as two emphases.
	styled := boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
	styled = italicRe.ReplaceAllString(styled, "<em>$1</em>")

	var out strings.Builder
	for _, para := range strings.Split(styled, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		out.WriteString("<p>")
		out.WriteString(strings.ReplaceAll(para, "\n", "<br>"))
		out.WriteString("</p>")
	}
	return out.String()
}
