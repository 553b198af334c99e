// Package dataset loads the tab-separated demo datasets searched by the
// CLI. Each row is (id, author, title, url); the search key joins author
// and title.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Record is one row of a demo dataset.
type Record struct {
	ID     string
	Author string
	Title  string
	URL    string
}

// Key returns the record's search key.
func (r Record) Key() string {
	return r.Author + " " + r.Title
}

// LoadTSV reads a tab-separated dataset from path.
func LoadTSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = 4
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			ID:     row[0],
			Author: row[1],
			Title:  row[2],
			URL:    row[3],
		})
	}
	return records, nil
}
