// Package config loads and validates the keymatch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	kmerrors "github.com/Aman-CERP/keymatch/internal/errors"
)

// Engine selection values.
const (
	EngineFuzzy = "fuzzy"
	EngineFTS   = "fts"
)

// Config is the complete keymatch configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig configures the persisted index cache.
type CacheConfig struct {
	// Dir is the writable directory holding persisted indexes and query
	// metrics. Defaults to ~/.keymatch.
	Dir string `yaml:"dir"`
}

// SearchConfig configures both engines.
type SearchConfig struct {
	// Engine selects the default engine: "fuzzy" (in-memory rule cascade)
	// or "fts" (persisted full-text index).
	Engine string `yaml:"engine"`

	// FoldDiacritics folds non-ASCII search keys to ASCII for comparison
	// when the query is pure ASCII (fuzzy engine).
	FoldDiacritics bool `yaml:"fold_diacritics"`

	// Ascending returns worst matches first.
	Ascending bool `yaml:"ascending"`

	// MinScore drops fuzzy results not strictly above this score.
	MinScore float64 `yaml:"min_score"`

	// MaxResults truncates results after sorting. Zero means unlimited.
	MaxResults int `yaml:"max_results"`

	// Weights scores the indexed engine's columns during relevance
	// decoding: [id, content].
	Weights []float64 `yaml:"weights"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Dir: defaultCacheDir(),
		},
		Search: SearchConfig{
			Engine:         EngineFuzzy,
			FoldDiacritics: true,
			Weights:        []float64{0, 1.0},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path and merges it over the defaults. A missing file is not
// an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, kmerrors.New(kmerrors.ErrCodeConfigInvalid, "read config "+path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, kmerrors.New(kmerrors.ErrCodeConfigInvalid, "parse config "+path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c Config) Validate() error {
	if c.Search.Engine != EngineFuzzy && c.Search.Engine != EngineFTS {
		return kmerrors.New(kmerrors.ErrCodeConfigInvalid,
			fmt.Sprintf("unknown engine %q (want %q or %q)", c.Search.Engine, EngineFuzzy, EngineFTS), nil)
	}
	if c.Search.MinScore < 0 {
		return kmerrors.New(kmerrors.ErrCodeConfigInvalid, "min_score must not be negative", nil)
	}
	if c.Search.MaxResults < 0 {
		return kmerrors.New(kmerrors.ErrCodeConfigInvalid, "max_results must not be negative", nil)
	}
	for i, w := range c.Search.Weights {
		if w < 0 {
			return kmerrors.New(kmerrors.ErrCodeConfigInvalid,
				fmt.Sprintf("weight %d must not be negative", i), nil)
		}
	}
	return nil
}

// MetricsPath returns the query-metrics database location inside the
// cache directory.
func (c Config) MetricsPath() string {
	return filepath.Join(c.Cache.Dir, "metrics.db")
}

// DefaultPath returns the user config file location:
// $XDG_CONFIG_HOME/keymatch/config.yaml, or ~/.config/keymatch/config.yaml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "keymatch", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "keymatch", "config.yaml")
	}
	return filepath.Join(home, ".config", "keymatch", "config.yaml")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".keymatch"
	}
	return filepath.Join(home, ".keymatch")
}
