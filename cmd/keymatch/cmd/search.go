package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/keymatch/internal/config"
	"github.com/Aman-CERP/keymatch/internal/dataset"
	"github.com/Aman-CERP/keymatch/internal/telemetry"
	"github.com/Aman-CERP/keymatch/internal/ui"
	"github.com/Aman-CERP/keymatch/pkg/ftsindex"
	"github.com/Aman-CERP/keymatch/pkg/match"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	data       string
	engine     string
	limit      int
	minScore   float64
	ascending  bool
	noFold     bool
	showScores bool
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search a dataset with either engine",
		Long: `Search a tab-separated dataset (id, author, title, url per row).

The fuzzy engine scores in memory through the rule cascade; the fts
engine queries a persisted full-text index, building it on first use.

Examples:
  keymatch search "kant" --data books.tsv
  keymatch search "doh" --data shows.tsv --scores
  keymatch search "kant" --data books.tsv --engine fts --limit 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "Path to the TSV dataset (required)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "Engine: fuzzy or fts (default: from config)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (0 = unlimited)")
	cmd.Flags().Float64Var(&opts.minScore, "min-score", 0, "Drop fuzzy results at or below this score")
	cmd.Flags().BoolVar(&opts.ascending, "ascending", false, "Worst matches first")
	cmd.Flags().BoolVar(&opts.noFold, "no-fold", false, "Disable diacritic folding (fuzzy engine)")
	cmd.Flags().BoolVar(&opts.showScores, "scores", false, "Show score and matched rule per result")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySearchFlags(&cfg, opts)

	records, err := dataset.LoadTSV(opts.data)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := runEngine(query, records, cfg)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	recordMetrics(cfg, telemetry.QueryEvent{
		Query:       query,
		Engine:      cfg.Search.Engine,
		ResultCount: len(results),
		Latency:     elapsed,
		Timestamp:   time.Now(),
	})

	printResults(cmd, query, records, results, elapsed, opts.showScores)
	return nil
}

// runEngine dispatches to the configured engine and returns scored
// results in display order.
func runEngine(query string, records []dataset.Record, cfg config.Config) ([]match.Scored[dataset.Record], error) {
	switch cfg.Search.Engine {
	case config.EngineFTS:
		engine := ftsindex.NewEngine(records, dataset.Record.Key, ftsindex.Config{
			CacheDir: cfg.Cache.Dir,
			Weights:  cfg.Search.Weights,
		})
		defer engine.Close()
		return engine.SearchScored(query, ftsindex.Options{
			Ascending:  cfg.Search.Ascending,
			MaxResults: cfg.Search.MaxResults,
		})
	default:
		matcher := match.NewMatcher(records, dataset.Record.Key)
		matchOpts := match.DefaultOptions()
		matchOpts.FoldDiacritics = cfg.Search.FoldDiacritics
		matchOpts.Ascending = cfg.Search.Ascending
		matchOpts.MinScore = cfg.Search.MinScore
		matchOpts.MaxResults = cfg.Search.MaxResults
		return matcher.FilterScored(query, matchOpts), nil
	}
}

func applySearchFlags(cfg *config.Config, opts searchOptions) {
	if opts.engine != "" {
		cfg.Search.Engine = opts.engine
	}
	if opts.limit > 0 {
		cfg.Search.MaxResults = opts.limit
	}
	if opts.minScore > 0 {
		cfg.Search.MinScore = opts.minScore
	}
	if opts.ascending {
		cfg.Search.Ascending = true
	}
	if opts.noFold {
		cfg.Search.FoldDiacritics = false
	}
}

// recordMetrics persists the query event; metrics are best-effort and
// never fail the search.
func recordMetrics(cfg config.Config, ev telemetry.QueryEvent) {
	store, err := telemetry.OpenStore(cfg.MetricsPath())
	if err != nil {
		slog.Debug("metrics_unavailable", slog.String("error", err.Error()))
		return
	}
	defer store.Close()
	if err := store.Record(ev); err != nil {
		slog.Debug("metrics_record_failed", slog.String("error", err.Error()))
	}
}

func printResults(cmd *cobra.Command, query string, records []dataset.Record,
	results []match.Scored[dataset.Record], elapsed time.Duration, showScores bool) {

	out := cmd.OutOrStdout()
	styles := ui.AutoStyles()

	header := fmt.Sprintf("Found %d of %d items for %q in %s",
		len(results), len(records), query, elapsed.Round(time.Microsecond))
	fmt.Fprintln(out, styles.Header.Render(header))

	for _, r := range results {
		if showScores {
			meta := fmt.Sprintf("%8.2f  %-19s ", r.Score, r.Rule)
			fmt.Fprintln(out, styles.Meta.Render(meta)+styles.Key.Render(r.Item.Key()))
		} else {
			fmt.Fprintln(out, styles.Key.Render(r.Item.Key()))
		}
	}
}
