package mock

import "github.com/fwojciec/entaudit"

var _ entaudit.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of entaudit.TextExtractor.
type TextExtractor struct {
	TextFn func(html string, excludeSelectors []string) (string, error)
}

func (e *TextExtractor) Text(html string, excludeSelectors []string) (string, error) {
	return e.TextFn(html, excludeSelectors)
}
