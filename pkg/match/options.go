package match

// Options configures a filter call.
type Options struct {
	// Rules is the set of enabled match rules. Nil or empty enables all
	// rules (the common case for interactive filtering).
	Rules RuleSet

	// FoldDiacritics converts non-ASCII characters in search keys to ASCII
	// equivalents before comparison, provided the query word itself is pure
	// ASCII. Words containing non-ASCII characters are compared against the
	// raw key.
	FoldDiacritics bool

	// Ascending returns worst matches first instead of best first.
	Ascending bool

	// MinScore drops results whose score is not strictly greater than this
	// value. Zero keeps everything.
	MinScore float64

	// MaxResults truncates the result list after sorting and MinScore
	// filtering. Zero means unlimited.
	MaxResults int
}

// DefaultOptions returns the options used for interactive filtering:
// all rules enabled, diacritic folding on, best matches first.
func DefaultOptions() Options {
	return Options{
		Rules:          AllRules(),
		FoldDiacritics: true,
	}
}

// rules returns the effective rule set, treating empty as "all".
func (o Options) rules() RuleSet {
	if len(o.Rules) == 0 {
		return AllRules()
	}
	return o.Rules
}
