package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, EngineFuzzy, cfg.Search.Engine)
	assert.True(t, cfg.Search.FoldDiacritics)
	assert.Equal(t, []float64{0, 1.0}, cfg.Search.Weights)
	assert.NotEmpty(t, cfg.Cache.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
search:
  engine: fts
  max_results: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, EngineFTS, cfg.Search.Engine)
	assert.Equal(t, 25, cfg.Search.MaxResults)
	// Untouched fields keep defaults.
	assert.True(t, cfg.Search.FoldDiacritics)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{name: "unknown engine", mutate: func(c *Config) { c.Search.Engine = "bleve" }, wantErr: true},
		{name: "negative min score", mutate: func(c *Config) { c.Search.MinScore = -1 }, wantErr: true},
		{name: "negative max results", mutate: func(c *Config) { c.Search.MaxResults = -5 }, wantErr: true},
		{name: "negative weight", mutate: func(c *Config) { c.Search.Weights = []float64{0, -1} }, wantErr: true},
		{name: "fts engine", mutate: func(c *Config) { c.Search.Engine = EngineFTS }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMetricsPath(t *testing.T) {
	cfg := Default()
	cfg.Cache.Dir = "/data/km"

	assert.Equal(t, filepath.Join("/data/km", "metrics.db"), cfg.MetricsPath())
}
