package entaudit

import "strings"

// Clean removes caller-specified junk phrases (cookie banners, repeated
// navigation text) from extracted page text before analysis. Every
// literal occurrence of each non-blank exclusion phrase is removed, in
// no significant order, and the result is trimmed of surrounding
// whitespace. No case folding or tokenization happens here.
func Clean(text string, exclusions []string) string {
	for _, phrase := range exclusions {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		text = strings.ReplaceAll(text, phrase, "")
	}
	return strings.TrimSpace(text)
}
