package entaudit

// AnalysisItem is one unit of audit work: a page to fetch by URL, or a
// block of raw text pasted by the caller. Exactly one of URL and RawText
// is set. Items are consumed once per batch run and are not persisted.
type AnalysisItem struct {
	// Label identifies the item in results. Defaults to the URL when
	// empty and a URL is set.
	Label string `json:"label"`

	// URL is the page to fetch, for URL-sourced items.
	URL string `json:"url"`

	// RawText is caller-supplied content, for text-sourced items.
	// Raw-text items skip fetching entirely.
	RawText string `json:"rawText"`

	// TargetFocus optionally describes the intended topic of the page,
	// passed through to the audit service.
	TargetFocus string `json:"targetFocus"`
}

// Validate returns an error if the item is not a usable unit of work.
func (it *AnalysisItem) Validate() error {
	if it.URL == "" && it.RawText == "" {
		return Errorf(EINVALID, "analysis item requires a URL or raw text")
	}
	if it.URL != "" && it.RawText != "" {
		return Errorf(EINVALID, "analysis item cannot have both a URL and raw text")
	}
	return nil
}

// DisplayLabel returns the label to show in results, falling back to the
// URL for unlabeled items.
func (it *AnalysisItem) DisplayLabel() string {
	if it.Label != "" {
		return it.Label
	}
	return it.URL
}
