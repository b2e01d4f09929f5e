package entaudit

// TextExtractor serializes fetched HTML into the plain text the entity
// pipeline analyzes.
type TextExtractor interface {
	// Text returns the visible text of the document. Subtrees matching
	// any of the given CSS selectors are removed before serialization;
	// an invalid selector is skipped without aborting the rest.
	Text(html string, excludeSelectors []string) (string, error)
}
