package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// delimiterRegex matches runs of characters that separate atoms within a
// search key (anything that is not an ASCII letter or digit).
var delimiterRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Words splits a query into its non-empty whitespace-delimited tokens.
func Words(query string) []string {
	return strings.Fields(query)
}

// Atoms splits value into lower-cased segments on runs of non-alphanumeric
// characters. Empty segments are dropped, so "The Dukes of Hazzard" yields
// ["the", "dukes", "of", "hazzard"].
func Atoms(value string) []string {
	parts := delimiterRegex.Split(strings.ToLower(value), -1)
	atoms := parts[:0]
	for _, p := range parts {
		if p != "" {
			atoms = append(atoms, p)
		}
	}
	return atoms
}

// Initials concatenates the first character of each atom. Atoms are
// ASCII-only by construction, so byte indexing is safe.
func Initials(atoms []string) string {
	var b strings.Builder
	b.Grow(len(atoms))
	for _, a := range atoms {
		b.WriteByte(a[0])
	}
	return b.String()
}

// Capitals returns the concatenation of the upper-case ASCII letters and
// digits in value, in order. "OmniFocus" yields "OF", "Mp3 Tag" yields "M3T".
func Capitals(value string) string {
	var b strings.Builder
	for _, r := range value {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RuneLen returns the number of characters in s. Scoring formulas are
// defined over character counts, not byte lengths.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
