package entaudit

// Deduplicate merges near-duplicate entity mentions into canonical
// entities. Mentions sharing a CanonicalKey (casing and naive plural
// variants) collapse into one MergedEntity whose score is the sum of
// their salience values. Output order is the first-insertion order of
// each key, not yet sorted by score.
//
// The display name prefers proper-noun casing: when a later mention
// starts with an uppercase letter and the stored name does not, the
// stored name is replaced. Scores are unaffected by the swap.
//
// The sum of all output scores equals the sum of all input salience
// values, and re-merging the output (with salience = score) is a no-op.
func Deduplicate(raw []RawEntity) []MergedEntity {
	if len(raw) == 0 {
		return []MergedEntity{}
	}

	index := make(map[string]int, len(raw))
	merged := make([]MergedEntity, 0, len(raw))

	for _, e := range raw {
		key := CanonicalKey(e.Name)

		i, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, MergedEntity{Name: e.Name, Score: e.Salience})
			continue
		}

		merged[i].Score += e.Salience
		if startsUpper(e.Name) && !startsUpper(merged[i].Name) {
			merged[i].Name = e.Name
		}
	}

	return merged
}
