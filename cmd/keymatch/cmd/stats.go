package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/keymatch/internal/telemetry"
	"github.com/Aman-CERP/keymatch/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show recorded query metrics",
		Long:  `Show locally recorded query metrics: per-engine counts, latency histogram, and recent zero-result queries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd)
		},
	}
}

func runStats(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := telemetry.OpenStore(cfg.MetricsPath())
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Summarize()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := ui.AutoStyles()

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("Queries: %d", summary.TotalQueries)))
	for engine, count := range summary.ByEngine {
		fmt.Fprintln(out, styles.Meta.Render(fmt.Sprintf("  %-8s %d", engine, count)))
	}

	fmt.Fprintln(out, styles.Header.Render("Latency"))
	for _, bucket := range []telemetry.LatencyBucket{
		telemetry.BucketP10, telemetry.BucketP50, telemetry.BucketP100,
		telemetry.BucketP500, telemetry.BucketP1000,
	} {
		if count := summary.LatencyBuckets[bucket]; count > 0 {
			fmt.Fprintln(out, styles.Meta.Render(fmt.Sprintf("  %-6s %d", bucket, count)))
		}
	}

	if len(summary.ZeroResultQueries) > 0 {
		fmt.Fprintln(out, styles.Header.Render("Zero-result queries"))
		for _, q := range summary.ZeroResultQueries {
			fmt.Fprintln(out, styles.Meta.Render("  "+q))
		}
	}
	return nil
}
