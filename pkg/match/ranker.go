package match

import "sort"

// Scored pairs an item with the score and rule that matched it. ID is the
// synthetic sequential id assigned by the owning engine (the item's position
// in the input, starting at 1).
type Scored[T any] struct {
	Item  T
	Score float64
	Rule  Rule
	ID    int
}

// sortKey is the composite sort key for rule-engine results. Sorting on the
// inverted score with the lower-cased key as the second component guarantees
// alphabetical order as the tie-break between equal scores.
type sortKey struct {
	invScore float64
	lowerKey string
	score    float64
}

func (k sortKey) less(other sortKey) bool {
	if k.invScore != other.invScore {
		return k.invScore < other.invScore
	}
	if k.lowerKey != other.lowerKey {
		return k.lowerKey < other.lowerKey
	}
	return k.score < other.score
}

// rankByQuality orders rule-engine results best first (or worst first when
// ascending is set). Entries with an identical sort key collapse to a single
// result, the last one seen.
func rankByQuality[T any](entries map[sortKey]Scored[T], ascending bool) []Scored[T] {
	keys := make([]sortKey, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if ascending {
			return keys[j].less(keys[i])
		}
		return keys[i].less(keys[j])
	})

	out := make([]Scored[T], 0, len(keys))
	for _, k := range keys {
		out = append(out, entries[k])
	}
	return out
}

// RankByScoreID orders indexed-engine results by (score, id), descending by
// default, ascending when requested.
func RankByScoreID[T any](results []Scored[T], ascending bool) []Scored[T] {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if ascending {
			a, b = b, a
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ID > b.ID
	})
	return results
}

// ApplyMinScore drops results whose score is not strictly greater than min.
func ApplyMinScore[T any](results []Scored[T], min float64) []Scored[T] {
	if min == 0 {
		return results
	}
	kept := results[:0]
	for _, r := range results {
		if r.Score > min {
			kept = append(kept, r)
		}
	}
	return kept
}

// Truncate limits results to max entries. Zero means unlimited.
func Truncate[T any](results []Scored[T], max int) []Scored[T] {
	if max > 0 && len(results) > max {
		return results[:max]
	}
	return results
}

// Items projects scored results to bare items.
func Items[T any](results []Scored[T]) []T {
	items := make([]T, len(results))
	for i, r := range results {
		items[i] = r.Item
	}
	return items
}
