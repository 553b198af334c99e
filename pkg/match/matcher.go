package match

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/Aman-CERP/keymatch/internal/textutil"
)

// Matcher filters an in-memory collection against free-text queries.
// The key function must be deterministic and side-effect free: it is
// re-invoked on every filter call and both engines assume a stable
// item-to-key mapping.
//
// A Matcher is not safe for concurrent use; callers that filter from
// multiple goroutines should use one Matcher per goroutine.
type Matcher[T any] struct {
	items    []T
	keyOf    func(T) string
	patterns *patternCache
}

// NewMatcher creates a matcher over items. keyOf extracts the search key
// from an item; items whose key is empty after trimming never match.
func NewMatcher[T any](items []T, keyOf func(T) string) *Matcher[T] {
	return &Matcher[T]{
		items:    items,
		keyOf:    keyOf,
		patterns: newPatternCache(DefaultPatternCacheSize),
	}
}

// Filter returns the items matching query, best first (worst first when
// opts.Ascending is set). An empty or whitespace-only query matches nothing.
func (m *Matcher[T]) Filter(query string, opts Options) []T {
	return Items(m.FilterScored(query, opts))
}

// FilterScored is Filter with score and rule reporting, useful for
// debugging the scoring cascade and for combined displays.
//
// Every word of the query must produce a positive score for an item to be
// included; the item's score is the sum of its per-word scores and its rule
// is that of the last word evaluated.
func (m *Matcher[T]) FilterScored(query string, opts Options) []Scored[T] {
	words := textutil.Words(query)
	entries := make(map[sortKey]Scored[T])

	if len(words) > 0 {
		for i, item := range m.items {
			value := strings.TrimSpace(m.keyOf(item))
			if value == "" {
				continue
			}

			total := 0.0
			rule := RuleNone
			matched := true
			for _, word := range words {
				score, r := m.scoreWord(value, word, opts)
				if score == 0 {
					matched = false
					break
				}
				total += score
				rule = r
			}
			if !matched {
				continue
			}

			// Entries with the same score and lower-cased key collapse;
			// the last one seen wins.
			key := sortKey{
				invScore: 100.0 / total,
				lowerKey: strings.ToLower(value),
				score:    total,
			}
			entries[key] = Scored[T]{Item: item, Score: total, Rule: rule, ID: i + 1}
		}
	}

	results := rankByQuality(entries, opts.Ascending)
	results = ApplyMinScore(results, opts.MinScore)
	results = Truncate(results, opts.MaxResults)

	slog.Debug("fuzzy_filter",
		slog.String("query", query),
		slog.Int("items", len(m.items)),
		slog.Int("results", len(results)))

	return results
}

// scoreWord evaluates a single query word against a search key through the
// rule cascade. Rules are tried in fixed priority order and the first
// positive score wins. Returns (0, RuleNone) when no enabled rule matches.
func (m *Matcher[T]) scoreWord(value, word string, opts Options) (float64, Rule) {
	rules := opts.rules()
	word = strings.ToLower(word)

	// Folding only applies when the word itself is pure ASCII; a non-ASCII
	// word is compared against the raw key.
	if opts.FoldDiacritics && textutil.IsASCII(word) {
		value = textutil.FoldToASCII(value)
	}
	lowerValue := strings.ToLower(value)

	// Cheap necessary condition: every distinct character of the word must
	// occur somewhere in the key.
	if !containsAllChars(lowerValue, word) {
		return 0, RuleNone
	}

	wordLen := textutil.RuneLen(word)
	valueLen := textutil.RuneLen(value)

	if rules.Has(RuleStartsWith) && strings.HasPrefix(lowerValue, word) {
		return 100.0 - float64(valueLen)/float64(wordLen), RuleStartsWith
	}

	if rules.Has(RuleCapitals) {
		caps := strings.ToLower(textutil.Capitals(value))
		if strings.HasPrefix(caps, word) {
			return 100.0 - float64(len(caps))/float64(wordLen), RuleCapitals
		}
	}

	needAtoms := rules.Has(RuleAtom) ||
		rules.Has(RuleInitialsStartsWith) ||
		rules.Has(RuleInitialsContain)
	var atoms []string
	var initials string
	if needAtoms {
		atoms = textutil.Atoms(value)
		initials = textutil.Initials(atoms)
	}

	if rules.Has(RuleAtom) && slices.Contains(atoms, word) {
		// Like substring, but scores higher: the word is a whole segment
		// of the key.
		return 100.0 - float64(valueLen)/float64(wordLen), RuleAtom
	}

	if rules.Has(RuleInitialsStartsWith) && strings.HasPrefix(initials, word) {
		return 100.0 - float64(textutil.RuneLen(initials))/float64(wordLen), RuleInitialsStartsWith
	}
	if rules.Has(RuleInitialsContain) && strings.Contains(initials, word) {
		return 95.0 - float64(textutil.RuneLen(initials))/float64(wordLen), RuleInitialsContain
	}

	if rules.Has(RuleSubstring) && strings.Contains(lowerValue, word) {
		return 90.0 - float64(valueLen)/float64(wordLen), RuleSubstring
	}

	if rules.Has(RuleAllChars) {
		if loc := m.patterns.get(word).FindStringIndex(value); loc != nil {
			// Tighter and earlier match spans score higher. Offsets are in
			// characters; the end of the span is exclusive.
			start := textutil.RuneLen(value[:loc[0]])
			span := textutil.RuneLen(value[loc[0]:loc[1]])
			return 100.0 / float64((1+start)*(span+1)), RuleAllChars
		}
	}

	return 0, RuleNone
}

// containsAllChars reports whether every distinct character of word occurs
// in value.
func containsAllChars(value, word string) bool {
	for _, c := range word {
		if !strings.ContainsRune(value, c) {
			return false
		}
	}
	return true
}
