// Package mdx strips MDX constructs that have no EPUB equivalent, leaving
// plain markdown behind.
package mdx

import (
	"regexp"
	"strings"
)

// Applied in order; the later rules assume import/export noise is gone.
var (
	importLine      = regexp.MustCompile(`(?m)^import\s+.*$`)
	exportLine      = regexp.MustCompile(`(?m)^export\s+.*$`)
	selfClosingTag  = regexp.MustCompile(`<[A-Z][A-Za-z]*\s+[^>]*/>`)
	openingTag      = regexp.MustCompile(`<([A-Z][A-Za-z]*)[^>]*>`)
	bareSelfClosing = regexp.MustCompile(`<[A-Z][A-Za-z]*\s*/>`)
	leftoverTag     = regexp.MustCompile(`</?[A-Z][A-Za-z]*[^>]*>`)
	handbookLink    = regexp.MustCompile(`\[([^\]]+)\]\(/handbook/[^)]+\)`)
	internalLink    = regexp.MustCompile(`\[([^\]]+)\]\(/[^)]+\)`)
	blankRun        = regexp.MustCompile(`\n{4,}`)
)

// Clean removes component tags, import/export statements and internal link
// targets from a document body. The result contains no component-tag syntax
// and is safe input for the markdown renderer. External links are untouched.
func Clean(body string) string {
	body = importLine.ReplaceAllString(body, "")
	body = exportLine.ReplaceAllString(body, "")
	body = selfClosingTag.ReplaceAllString(body, "")
	body = unwrapPaired(body)
	body = bareSelfClosing.ReplaceAllString(body, "")
	body = leftoverTag.ReplaceAllString(body, "")
	body = handbookLink.ReplaceAllString(body, "*$1*")
	body = internalLink.ReplaceAllString(body, "$1")
	body = blankRun.ReplaceAllString(body, "\n\n\n")
	return body
}

// unwrapPaired drops paired component tags while keeping their inner content.
// RE2 has no backreferences, so the closing tag is located by name: the first
// </Name> after the opener wins. Handbook sources do not nest same-name tags.
func unwrapPaired(body string) string {
	var b strings.Builder
	for {
		loc := openingTag.FindStringSubmatchIndex(body)
		if loc == nil {
			b.WriteString(body)
			break
		}
		name := body[loc[2]:loc[3]]
		closing := "</" + name + ">"
		rest := body[loc[1]:]
		end := strings.Index(rest, closing)
		if end < 0 {
			// Unpaired opener: leave it for the leftover-tag rule.
			b.WriteString(body[:loc[1]])
			body = rest
			continue
		}
		b.WriteString(body[:loc[0]])
		b.WriteString(rest[:end])
		body = rest[end+len(closing):]
	}
	return b.String()
}
