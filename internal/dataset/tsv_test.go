package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTSV(t *testing.T) {
	path := writeTSV(t, "1\tKant, Immanuel\tCritique of Pure Reason\thttp://example.com/1\n"+
		"2\tKafka, Franz\tThe Trial\thttp://example.com/2\n")

	records, err := LoadTSV(path)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "Kant, Immanuel", records[0].Author)
	assert.Equal(t, "Critique of Pure Reason", records[0].Title)
	assert.Equal(t, "Kant, Immanuel Critique of Pure Reason", records[0].Key())
}

func TestLoadTSV_EmptyFile(t *testing.T) {
	records, err := LoadTSV(writeTSV(t, ""))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadTSV_WrongColumnCount(t *testing.T) {
	_, err := LoadTSV(writeTSV(t, "1\tonly-two\n"))
	assert.Error(t, err)
}

func TestLoadTSV_MissingFile(t *testing.T) {
	_, err := LoadTSV(filepath.Join(t.TempDir(), "absent.tsv"))
	assert.Error(t, err)
}
