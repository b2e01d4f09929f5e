// Package goquery provides a goquery-based implementation of
// entaudit.TextExtractor. It serializes the visible text of a rendered
// page, the way a browser's "body text" reads, after removing
// script/style noise and any caller-excluded subtrees.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/entaudit"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements entaudit.TextExtractor at compile time.
var _ entaudit.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts visible page text from HTML.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// nonContentSelector matches elements that never contribute visible text.
const nonContentSelector = "script, style, noscript, template"

// Text returns the visible text of the document with subtrees matching
// excludeSelectors removed before serialization. An invalid selector is
// skipped; the remaining selectors still apply.
func (e *TextExtractor) Text(rawHTML string, excludeSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", entaudit.Errorf(entaudit.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContentSelector).Remove()

	for _, s := range excludeSelectors {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		matcher, err := cascadia.Compile(s)
		if err != nil {
			continue
		}
		doc.FindMatcher(matcher).Remove()
	}

	root := doc.Find("body")
	if len(root.Nodes) == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	for _, n := range root.Nodes {
		appendText(n, &sb)
	}

	return normalize(sb.String()), nil
}

// blockTags are elements whose close forces a line break in the
// serialized text, mirroring how rendered text reads line by line.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// appendText walks the node tree writing text content, with newlines at
// block boundaries and explicit breaks.
func appendText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "br" {
			sb.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(c, sb)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n")
	}
}

// normalize collapses intra-line whitespace and drops blank lines.
func normalize(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
