package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/keymatch/internal/dataset"
	"github.com/Aman-CERP/keymatch/internal/ui"
	"github.com/Aman-CERP/keymatch/pkg/ftsindex"
)

func newIndexCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Pre-build the full-text index for a dataset",
		Long: `Build the persisted full-text index for a dataset without searching.

The index is keyed by a content fingerprint of the dataset's search
keys; if an index for this dataset already exists it is reused and
nothing is built.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, data)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Path to the TSV dataset (required)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runIndex(cmd *cobra.Command, data string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := dataset.LoadTSV(data)
	if err != nil {
		return err
	}

	engine := ftsindex.NewEngine(records, dataset.Record.Key, ftsindex.Config{
		CacheDir: cfg.Cache.Dir,
		Weights:  cfg.Search.Weights,
	})
	defer engine.Close()

	start := time.Now()
	if err := engine.Build(); err != nil {
		return err
	}

	styles := ui.AutoStyles()
	msg := fmt.Sprintf("Indexed %d items in %s", len(records), time.Since(start).Round(time.Millisecond))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Header.Render(msg))
	return nil
}
