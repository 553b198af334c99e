// Package cmd provides the CLI commands for keymatch.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/keymatch/internal/config"
	"github.com/Aman-CERP/keymatch/internal/logging"
	"github.com/Aman-CERP/keymatch/pkg/version"
)

var (
	configPath     string
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the keymatch CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keymatch",
		Short: "Rank text items against a free-text query",
		Long: `keymatch ranks a collection of text-bearing items against a query.

Two engines are available: an in-memory fuzzy scorer with a cascade of
match rules (startswith, capitals, atoms, initials, substring, allchars)
for small collections, and a persisted full-text index for larger,
repeatedly queried datasets.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate("keymatch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/keymatch/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to stderr")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = func(*cobra.Command, []string) {
		if loggingCleanup != nil {
			loggingCleanup()
		}
	}

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setupLogging(*cobra.Command, []string) error {
	logCfg := logging.DefaultConfig()
	if debugMode {
		logCfg.Level = "debug"
	}
	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	loggingCleanup = cleanup
	return nil
}

// loadConfig reads the configured (or default) config file. A missing
// file yields the built-in defaults.
func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.Load(config.DefaultPath())
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
