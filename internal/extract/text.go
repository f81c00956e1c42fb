// Package extract normalizes pasted document input into plain text.
// Staff often paste straight from the legislative portal, which carries
// HTML markup along; the oracles and the prefilter want clean text.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// PlainText normalizes raw input to plain text. HTML input has its
// visible text extracted (scripts, styles and the like skipped); plain
// input only gets whitespace collapsed.
func PlainText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if looksLikeHTML(raw) {
		if doc, err := html.Parse(strings.NewReader(raw)); err == nil {
			return collapseWhitespace(visibleText(doc))
		}
	}

	return collapseWhitespace(raw)
}

var htmlTagPattern = regexp.MustCompile(`(?i)<\s*(!doctype|html|body|p|div|span|br|table|h[1-6])[\s>/]`)

func looksLikeHTML(s string) bool {
	return htmlTagPattern.MatchString(s)
}

// visibleText extracts text nodes from HTML, skipping scripts/styles
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

var whitespacePattern = regexp.MustCompile(`[ \t]+`)
var blankLinesPattern = regexp.MustCompile(`\n{3,}`)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = blankLinesPattern.ReplaceAllString(s, "\n\n")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
