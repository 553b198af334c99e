// Package match provides in-memory fuzzy filtering of text-bearing items
// against a free-text query. Each query word is evaluated against an item's
// search key through an ordered cascade of match rules; the first rule that
// produces a positive score wins for that word, and every word must match
// for the item to survive.
package match

// Rule identifies the match rule that produced a score. Exactly one rule
// (or none) is attributed per evaluation of an item against a query word.
type Rule int

const (
	// RuleNone means no rule matched.
	RuleNone Rule = iota

	// RuleStartsWith: the search key starts with the query word.
	RuleStartsWith

	// RuleCapitals: the capital letters and digits of the search key start
	// with the query word, e.g. "of" matches "OmniFocus".
	RuleCapitals

	// RuleAtom: the query word is exactly one of the key's atoms (segments
	// split on non-alphanumeric runs).
	RuleAtom

	// RuleInitialsStartsWith: the initials of the key's atoms start with
	// the query word, e.g. "himym" matches "how i met your mother".
	RuleInitialsStartsWith

	// RuleInitialsContain: the query word is a substring of the initials,
	// e.g. "doh" matches "The Dukes of Hazzard".
	RuleInitialsContain

	// RuleSubstring: the query word is a substring of the search key.
	RuleSubstring

	// RuleAllChars: all characters of the query word appear in the search
	// key in order, possibly non-contiguously.
	RuleAllChars
)

// String returns the rule name for display and logging.
func (r Rule) String() string {
	switch r {
	case RuleStartsWith:
		return "startswith"
	case RuleCapitals:
		return "capitals"
	case RuleAtom:
		return "atom"
	case RuleInitialsStartsWith:
		return "initials_startswith"
	case RuleInitialsContain:
		return "initials_contain"
	case RuleSubstring:
		return "substring"
	case RuleAllChars:
		return "allchars"
	default:
		return "none"
	}
}

// RuleSet is the set of enabled match rules. The zero value is the empty
// set; use AllRules or NewRuleSet to build one. Enabling a rule never
// changes the cascade order, which is fixed.
type RuleSet map[Rule]struct{}

// NewRuleSet builds a RuleSet from the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	s := make(RuleSet, len(rules))
	for _, r := range rules {
		s[r] = struct{}{}
	}
	return s
}

// AllRules returns a set containing every match rule.
func AllRules() RuleSet {
	return NewRuleSet(
		RuleStartsWith,
		RuleCapitals,
		RuleAtom,
		RuleInitialsStartsWith,
		RuleInitialsContain,
		RuleSubstring,
		RuleAllChars,
	)
}

// Has reports whether r is enabled.
func (s RuleSet) Has(r Rule) bool {
	_, ok := s[r]
	return ok
}
