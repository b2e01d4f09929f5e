// Package trafilatura provides a boilerplate-stripping implementation of
// entaudit.TextExtractor. Unlike the goquery extractor, which serializes
// the whole body, this one keeps only the main content region
// (dropping nav, footer, sidebars, ads) before analysis.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/entaudit"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements entaudit.TextExtractor at compile time.
var _ entaudit.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main-content text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text returns the main-content text of the document. Subtrees matching
// excludeSelectors are removed before extraction; an invalid selector is
// skipped without aborting the rest.
func (e *Extractor) Text(rawHTML string, excludeSelectors []string) (string, error) {
	if rawHTML == "" {
		return "", errors.New("empty HTML input")
	}

	if len(excludeSelectors) > 0 {
		rawHTML = removeSubtrees(rawHTML, excludeSelectors)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
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
