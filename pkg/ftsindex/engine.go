// Package ftsindex provides full-text search over larger, repeatedly
// queried collections. Items are indexed once into a persisted SQLite
// FTS4 table keyed by a content fingerprint of the dataset, then queried
// per strategy with a custom relevance function decoded from the
// provider's matchinfo statistics.
package ftsindex

import (
	"log/slog"
	"strings"

	"github.com/Aman-CERP/keymatch/internal/textutil"
	"github.com/Aman-CERP/keymatch/pkg/match"
)

// Config configures an Engine.
type Config struct {
	// CacheDir is the writable directory holding persisted indexes,
	// supplied by the hosting environment.
	CacheDir string

	// Weights scores each indexed column during relevance decoding.
	// Nil uses DefaultWeights: id column 0, content column 1.0.
	Weights []float64
}

// Options configures a search call.
type Options struct {
	// Strategies is the set of enabled query strategies: RuleSubstring,
	// RuleStartsWith, RuleAtom. Nil or empty enables all three. The
	// evaluation order is fixed regardless of set contents.
	Strategies match.RuleSet

	// Ascending returns worst matches first instead of best first.
	Ascending bool

	// MaxResults truncates the result list after sorting. Zero means
	// unlimited.
	MaxResults int
}

// DefaultStrategies returns the three indexed-engine strategies.
func DefaultStrategies() match.RuleSet {
	return match.NewRuleSet(match.RuleSubstring, match.RuleStartsWith, match.RuleAtom)
}

// Engine searches a collection through a persisted full-text index.
// The key function must be deterministic: the index is cached by a
// fingerprint of the extracted keys and reused across runs.
//
// An Engine owns a single index connection and is not safe for
// concurrent use.
type Engine[T any] struct {
	items   []T
	keyOf   func(T) string
	cache   *Cache
	weights []float64
	db      *database
}

// NewEngine creates an engine over items. The index is built lazily on
// the first search.
func NewEngine[T any](items []T, keyOf func(T) string, cfg Config) *Engine[T] {
	weights := cfg.Weights
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Engine[T]{
		items:   items,
		keyOf:   keyOf,
		cache:   NewCache(cfg.CacheDir),
		weights: weights,
	}
}

// ensure opens the persisted index for this dataset, building it first if
// no index exists for the dataset's fingerprint.
func (e *Engine[T]) ensure() error {
	if e.db != nil {
		return nil
	}

	keys := make([]string, len(e.items))
	for i, item := range e.items {
		keys[i] = e.keyOf(item)
	}

	path, built, err := e.cache.GetOrBuild(Fingerprint(keys), func(path string) error {
		db, err := openDatabase(path)
		if err != nil {
			return err
		}
		defer db.close()
		if err := db.init(); err != nil {
			return err
		}

		rows := make([]indexRow, 0, len(keys))
		for i, key := range keys {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			rows = append(rows, indexRow{id: i + 1, text: key})
		}
		return db.insertAll(rows)
	})
	if err != nil {
		return err
	}

	slog.Debug("index_ready",
		slog.String("path", path),
		slog.Bool("built", built),
		slog.Int("items", len(e.items)))

	e.db, err = openDatabase(path)
	return err
}

// Build makes sure the persisted index for this dataset exists, building
// it if needed. Search calls it implicitly; exposing it lets callers pay
// the build cost up front.
func (e *Engine[T]) Build() error {
	return e.ensure()
}

// Search returns the items matching query, best first (worst first when
// opts.Ascending is set). An empty or whitespace-only query matches
// nothing.
func (e *Engine[T]) Search(query string, opts Options) ([]T, error) {
	results, err := e.SearchScored(query, opts)
	if err != nil {
		return nil, err
	}
	return match.Items(results), nil
}

// SearchScored is Search with score and rule reporting. Scores are scaled
// by 1000 so their magnitude is comparable with the rule-based engine in
// combined displays.
//
// Each enabled strategy issues one index query, in fixed order: substring
// (per-word prefix wildcard), startswith (phrase anchored at the start of
// the key), atom (plain tokenized phrase). A row returned by more than
// one strategy keeps its first-seen occurrence, regardless of how a later
// strategy would have scored it.
func (e *Engine[T]) SearchScored(query string, opts Options) ([]match.Scored[T], error) {
	words := textutil.Words(query)
	if len(words) == 0 {
		return nil, nil
	}

	if err := e.ensure(); err != nil {
		return nil, err
	}

	strategies := opts.Strategies
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	phrase := strings.Join(words, " ")
	plan := []struct {
		rule match.Rule
		expr string
	}{
		{match.RuleSubstring, prefixExpr(words)},
		{match.RuleStartsWith, "^" + phrase},
		{match.RuleAtom, phrase},
	}

	seen := make(map[int]struct{})
	var results []match.Scored[T]
	for _, step := range plan {
		if !strategies.Has(step.rule) {
			continue
		}
		rows, err := e.db.query(step.expr, e.weights)
		if err != nil {
			return nil, err
		}
		slog.Debug("index_query",
			slog.String("strategy", step.rule.String()),
			slog.String("expr", step.expr),
			slog.Int("rows", len(rows)))

		for _, row := range rows {
			// A row can match through the indexed id column alone (a
			// numeric query word hitting a synthetic id); that column
			// carries no weight, so the row decodes to zero relevance.
			// Zero-score rows never surface, and they are not marked
			// seen: a later strategy may still match them on content.
			if row.score == 0 {
				continue
			}
			if _, dup := seen[row.id]; dup {
				continue
			}
			seen[row.id] = struct{}{}
			if row.id < 1 || row.id > len(e.items) {
				continue
			}
			results = append(results, match.Scored[T]{
				Item:  e.items[row.id-1],
				Score: row.score * 1000,
				Rule:  step.rule,
				ID:    row.id,
			})
		}
	}

	results = match.RankByScoreID(results, opts.Ascending)
	return match.Truncate(results, opts.MaxResults), nil
}

// Close releases the index connection. The persisted index stays on disk
// for reuse.
func (e *Engine[T]) Close() error {
	if e.db == nil {
		return nil
	}
	err := e.db.close()
	e.db = nil
	return err
}

// prefixExpr builds the substring-strategy expression: every word becomes
// a prefix wildcard, "duk haz" -> "duk* haz*".
func prefixExpr(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w + "*"
	}
	return strings.Join(parts, " ")
}
