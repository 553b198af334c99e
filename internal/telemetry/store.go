package telemetry

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go driver, no FTS needed here
)

// maxZeroResultQueries bounds the zero-result log; older entries are
// trimmed on insert.
const maxZeroResultQueries = 100

// Store persists query metrics to a local SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) the metrics database at path.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create metrics directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open metrics store: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	-- Per-engine query counts, aggregated daily
	CREATE TABLE IF NOT EXISTS query_stats (
		date TEXT NOT NULL,
		engine TEXT NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (date, engine)
	);

	-- Latency histogram
	CREATE TABLE IF NOT EXISTS latency_stats (
		date TEXT NOT NULL,
		bucket TEXT NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (date, bucket)
	);

	-- Queries that returned nothing, newest last
	CREATE TABLE IF NOT EXISTS zero_result_queries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create metrics schema: %w", err)
	}
	return nil
}

// Record persists one query event.
func (s *Store) Record(ev QueryEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	date := ev.Timestamp.Format("2006-01-02")

	if _, err := tx.Exec(`
		INSERT INTO query_stats (date, engine, count) VALUES (?, ?, 1)
		ON CONFLICT(date, engine) DO UPDATE SET count = count + 1
	`, date, ev.Engine); err != nil {
		return fmt.Errorf("record query count: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO latency_stats (date, bucket, count) VALUES (?, ?, 1)
		ON CONFLICT(date, bucket) DO UPDATE SET count = count + 1
	`, date, string(LatencyToBucket(ev.Latency))); err != nil {
		return fmt.Errorf("record latency: %w", err)
	}

	if ev.IsZeroResult() {
		if _, err := tx.Exec(`INSERT INTO zero_result_queries (query) VALUES (?)`, ev.Query); err != nil {
			return fmt.Errorf("record zero-result query: %w", err)
		}
		if _, err := tx.Exec(`
			DELETE FROM zero_result_queries WHERE id NOT IN (
				SELECT id FROM zero_result_queries ORDER BY id DESC LIMIT ?
			)
		`, maxZeroResultQueries); err != nil {
			return fmt.Errorf("trim zero-result queries: %w", err)
		}
	}

	return tx.Commit()
}

// Summarize aggregates all recorded metrics.
func (s *Store) Summarize() (*Summary, error) {
	summary := &Summary{
		ByEngine:       make(map[string]int64),
		LatencyBuckets: make(map[LatencyBucket]int64),
	}

	rows, err := s.db.Query(`SELECT engine, SUM(count) FROM query_stats GROUP BY engine`)
	if err != nil {
		return nil, fmt.Errorf("query engine counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var engine string
		var count int64
		if err := rows.Scan(&engine, &count); err != nil {
			return nil, fmt.Errorf("scan engine count: %w", err)
		}
		summary.ByEngine[engine] = count
		summary.TotalQueries += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	buckets, err := s.db.Query(`SELECT bucket, SUM(count) FROM latency_stats GROUP BY bucket`)
	if err != nil {
		return nil, fmt.Errorf("query latency buckets: %w", err)
	}
	defer buckets.Close()
	for buckets.Next() {
		var bucket string
		var count int64
		if err := buckets.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("scan latency bucket: %w", err)
		}
		summary.LatencyBuckets[LatencyBucket(bucket)] = count
	}
	if err := buckets.Err(); err != nil {
		return nil, err
	}

	zeros, err := s.db.Query(`SELECT query FROM zero_result_queries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query zero-result list: %w", err)
	}
	defer zeros.Close()
	for zeros.Next() {
		var q string
		if err := zeros.Scan(&q); err != nil {
			return nil, fmt.Errorf("scan zero-result query: %w", err)
		}
		summary.ZeroResultQueries = append(summary.ZeroResultQueries, q)
	}
	return summary, zeros.Err()
}

// Close closes the metrics database.
func (s *Store) Close() error {
	return s.db.Close()
}
