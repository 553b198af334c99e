package ftsindex

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // FTS4 with matchinfo() requires the cgo driver

	kmerrors "github.com/Aman-CERP/keymatch/internal/errors"
)

// database wraps the SQLite FTS4 virtual table that backs the indexed
// engine. The table has two full-text columns: the synthetic id and the
// extracted search key. Tokenization is delegated to the porter tokenizer.
type database struct {
	db   *sql.DB
	path string
}

// indexRow is one decoded result row.
type indexRow struct {
	id    int
	text  string
	score float64
}

func openDatabase(path string) (*database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, kmerrors.IndexIOError("open index "+path, err)
	}
	// Single connection: the store is single-writer and queries are
	// synchronous.
	db.SetMaxOpenConns(1)
	return &database{db: db, path: path}, nil
}

// init creates the FTS4 table. A lost race against another creator is
// benign idempotency, not an error.
func (d *database) init() error {
	const schema = `CREATE VIRTUAL TABLE IF NOT EXISTS search USING fts4(id, content, tokenize=porter)`
	if _, err := d.db.Exec(schema); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		return kmerrors.IndexIOError("create index schema", err)
	}
	return nil
}

// insertAll adds (id, text) pairs in one transaction. Ids already present
// are skipped, making the insert idempotent.
func (d *database) insertAll(rows []indexRow) error {
	tx, err := d.db.Begin()
	if err != nil {
		return kmerrors.IndexIOError("begin insert transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	existsStmt, err := tx.Prepare(`SELECT 1 FROM search WHERE docid = ?`)
	if err != nil {
		return kmerrors.IndexIOError("prepare exists statement", err)
	}
	defer existsStmt.Close()

	insertStmt, err := tx.Prepare(`INSERT INTO search(docid, id, content) VALUES (?, ?, ?)`)
	if err != nil {
		return kmerrors.IndexIOError("prepare insert statement", err)
	}
	defer insertStmt.Close()

	for _, row := range rows {
		var one int
		err := existsStmt.QueryRow(row.id).Scan(&one)
		switch {
		case err == nil:
			continue // duplicate id, ignore
		case err != sql.ErrNoRows:
			return kmerrors.IndexIOError(fmt.Sprintf("check id %d", row.id), err)
		}
		if _, err := insertStmt.Exec(row.id, row.id, row.text); err != nil {
			return kmerrors.IndexIOError(fmt.Sprintf("index id %d", row.id), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return kmerrors.IndexIOError("commit insert transaction", err)
	}
	return nil
}

// query runs one MATCH expression and decodes each row's relevance
// statistics with the given column weights.
func (d *database) query(expr string, weights []float64) ([]indexRow, error) {
	rows, err := d.db.Query(
		`SELECT docid, content, matchinfo(search) FROM search WHERE search MATCH ?`, expr)
	if err != nil {
		if isSyntaxError(err) {
			return nil, kmerrors.QuerySyntaxError(err)
		}
		return nil, kmerrors.IndexIOError("query index", err)
	}
	defer rows.Close()

	var out []indexRow
	for rows.Next() {
		var id int
		var text string
		var blob []byte
		if err := rows.Scan(&id, &text, &blob); err != nil {
			return nil, kmerrors.IndexIOError("scan result row", err)
		}
		out = append(out, indexRow{id: id, text: text, score: decodeRelevance(blob, weights)})
	}
	if err := rows.Err(); err != nil {
		return nil, kmerrors.IndexIOError("iterate result rows", err)
	}
	return out, nil
}

func (d *database) close() error {
	return d.db.Close()
}

// isSyntaxError reports whether the provider rejected the MATCH
// expression itself, a condition the caller can recover from by
// re-escaping the query.
func isSyntaxError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "malformed MATCH") || strings.Contains(msg, "syntax error")
}
