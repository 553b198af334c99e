package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixtures creates a demo dataset and a config pointing the cache at
// a temp directory, so tests never touch the user's home.
func writeFixtures(t *testing.T) (tsvPath, cfgPath, cacheDir string) {
	t.Helper()
	dir := t.TempDir()

	tsvPath = filepath.Join(dir, "books.tsv")
	content := "1\tKant, Immanuel\tCritique of Pure Reason\thttp://example.com/1\n" +
		"2\tKafka, Franz\tThe Trial\thttp://example.com/2\n" +
		"3\tHume, David\tA Treatise of Human Nature\thttp://example.com/3\n"
	require.NoError(t, os.WriteFile(tsvPath, []byte(content), 0o644))

	cacheDir = filepath.Join(dir, "cache")
	cfgPath = filepath.Join(dir, "config.yaml")
	cfg := "cache:\n  dir: " + cacheDir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return tsvPath, cfgPath, cacheDir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSearchCommand_FuzzyEngine(t *testing.T) {
	tsv, cfg, _ := writeFixtures(t)

	out, err := runCommand(t, "search", "kant", "--data", tsv, "--config", cfg, "--scores")
	require.NoError(t, err)

	assert.Contains(t, out, "Kant, Immanuel")
	assert.Contains(t, out, "startswith")
	assert.NotContains(t, out, "Kafka")
}

func TestSearchCommand_FTSEngine(t *testing.T) {
	tsv, cfg, cacheDir := writeFixtures(t)

	out, err := runCommand(t, "search", "kant", "--data", tsv, "--config", cfg, "--engine", "fts")
	require.NoError(t, err)

	assert.Contains(t, out, "Kant, Immanuel")

	indexes, err := filepath.Glob(filepath.Join(cacheDir, "idx-*.db"))
	require.NoError(t, err)
	assert.Len(t, indexes, 1)
}

func TestSearchCommand_RequiresData(t *testing.T) {
	_, err := runCommand(t, "search", "kant")
	assert.Error(t, err)
}

func TestSearchCommand_Limit(t *testing.T) {
	tsv, cfg, _ := writeFixtures(t)

	out, err := runCommand(t, "search", "a", "--data", tsv, "--config", cfg, "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 1 of 3")
}

func TestIndexCommand_BuildsIndex(t *testing.T) {
	tsv, cfg, cacheDir := writeFixtures(t)

	out, err := runCommand(t, "index", "--data", tsv, "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "Indexed 3 items")
	indexes, err := filepath.Glob(filepath.Join(cacheDir, "idx-*.db"))
	require.NoError(t, err)
	assert.Len(t, indexes, 1)
}

func TestStatsCommand_AfterSearch(t *testing.T) {
	tsv, cfg, _ := writeFixtures(t)

	_, err := runCommand(t, "search", "kant", "--data", tsv, "--config", cfg)
	require.NoError(t, err)

	out, err := runCommand(t, "stats", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "Queries: 1")
	assert.Contains(t, out, "fuzzy")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "keymatch")
}
