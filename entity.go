package entaudit

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RawEntity is a single entity mention as returned by the extraction
// service: a surface form and a [0,1] salience score.
type RawEntity struct {
	Name     string  `json:"name"`
	Salience float64 `json:"salience"`
}

// MergedEntity is a canonical entity produced by deduplication.
// Name is the best-cased surface form seen among the merged mentions;
// Score is the sum of their salience values.
type MergedEntity struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// CanonicalKey derives the merge key for an entity name: lowercase with a
// single trailing "s" removed. The "s" is kept when it is the only
// character so the key never becomes empty. The key is a merge identity,
// never a display form.
//
// This is deliberately naive singularization. It false-merges words like
// "glass"/"glas" and misses irregular plurals, but it matches the tuning
// of the extraction pipelines this auditor replaces, so changing it would
// silently shift scores across runs.
func CanonicalKey(name string) string {
	key := strings.ToLower(name)
	if len(key) > 1 && strings.HasSuffix(key, "s") {
		key = key[:len(key)-1]
	}
	return key
}

// startsUpper reports whether the name begins with an uppercase letter.
func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// EntityExtractor detects salient entities in plain text.
// An empty result is a valid outcome, not an error.
type EntityExtractor interface {
	// ExtractEntities returns the entities detected in text, in the
	// service's own order. Implementations truncate overly long input
	// before calling their backing service.
	ExtractEntities(ctx context.Context, text string) ([]RawEntity, error)
}
