package match

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPatternCacheSize bounds the number of compiled subsequence
// patterns kept per matcher. One pattern is built per distinct query word,
// so interactive use (one more pattern per keystroke) stays well under it.
const DefaultPatternCacheSize = 256

// patternCache caches compiled RuleAllChars patterns per query word.
type patternCache struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

func newPatternCache(size int) *patternCache {
	if size <= 0 {
		size = DefaultPatternCacheSize
	}
	cache, _ := lru.New[string, *regexp.Regexp](size)
	return &patternCache{cache: cache}
}

// get returns the compiled subsequence pattern for word, building and
// caching it on first use. The pattern matches when every character of word
// appears in the target in order, possibly with other characters between
// them: "kat" compiles to `(?i)[^k]*k[^a]*a[^t]*t`.
func (p *patternCache) get(word string) *regexp.Regexp {
	if re, ok := p.cache.Get(word); ok {
		return re
	}

	var b strings.Builder
	b.WriteString(`(?i)`)
	for _, c := range word {
		q := regexp.QuoteMeta(string(c))
		b.WriteString(`[^` + q + `]*` + q)
	}
	re := regexp.MustCompile(b.String())

	p.cache.Add(word, re)
	return re
}
