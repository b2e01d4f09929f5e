// Package readability provides a Readability-based implementation of
// entaudit.TextExtractor. It applies the Firefox Reader View heuristics,
// which handle article-shaped pages that trip up density-based
// extraction.
package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/entaudit"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements entaudit.TextExtractor at compile time.
var _ entaudit.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text returns the article text of the document. Subtrees matching
// excludeSelectors are removed before extraction; an invalid selector is
// skipped without aborting the rest.
func (e *Extractor) Text(rawHTML string, excludeSelectors []string) (string, error) {
	if rawHTML == "" {
		return "", entaudit.Errorf(entaudit.EINVALID, "empty HTML input")
	}

	if len(excludeSelectors) > 0 {
		rawHTML = removeSubtrees(rawHTML, excludeSelectors)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}

// removeSubtrees drops selector-matched subtrees from the document.
// Parse failures leave the input unchanged; extraction decides what to
// do with it.
func removeSubtrees(rawHTML string, selectors []string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	for _, s := range selectors {
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

	out, err := doc.Html()
	if err != nil {
		return rawHTML
	}
	return out
}
