package entaudit

import "sort"

// MaxSubEntities is the maximum number of sub-entities in a RankedResult.
const MaxSubEntities = 9

// RankedResult partitions merged entities into the single most important
// entity and up to MaxSubEntities runners-up. Main is nil when no
// entities were found; absence of data is structural, never an error.
type RankedResult struct {
	Main *MergedEntity
	Subs []MergedEntity
}

// Rank sorts merged entities by score descending and selects the main
// entity and sub-entities. The sort is stable, so ties preserve the
// deduplicator's first-insertion order. Rank is pure and total.
func Rank(merged []MergedEntity) RankedResult {
	if len(merged) == 0 {
		return RankedResult{Subs: []MergedEntity{}}
	}

	sorted := make([]MergedEntity, len(merged))
	copy(sorted, merged)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	subs := sorted[1:min(len(sorted), 1+MaxSubEntities)]

	return RankedResult{
		Main: &sorted[0],
		Subs: subs,
	}
}
