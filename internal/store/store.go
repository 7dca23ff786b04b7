// Package store persists analysis results to a local SQLite database so
// past runs can be listed and re-examined.
package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/stylo-cli/stylo/internal/drift"
)

// ErrNotFound reports a lookup for an id with no stored record.
var ErrNotFound = errors.New("analysis not found")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    source TEXT NOT NULL,
    pattern TEXT NOT NULL,
    confidence REAL NOT NULL,
    mean_chi_squared REAL NOT NULL,
    window_count INTEGER NOT NULL,
    status TEXT NOT NULL,
    result_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// Record is one stored analysis. ResultJSON holds the full drift.Result;
// the scalar columns exist so listings do not need to unmarshal it.
type Record struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Source         string    `json:"source"`
	Pattern        string    `json:"pattern"`
	Confidence     float64   `json:"confidence"`
	MeanChiSquared float64   `json:"mean_chi_squared"`
	WindowCount    int       `json:"window_count"`
	Status         string    `json:"status"`
	ResultJSON     []byte    `json:"-"`
}

// Result unmarshals the stored drift result.
func (r *Record) Result() (*drift.Result, error) {
	var res drift.Result
	if err := json.Unmarshal(r.ResultJSON, &res); err != nil {
		return nil, fmt.Errorf("decoding stored result %s: %w", r.ID, err)
	}
	return &res, nil
}

// Store is an analysis history backed by SQLite.
type Store struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists one analysis and returns its new record id. Ids are ULIDs,
// so lexicographic order matches creation order.
func (s *Store) Save(ctx context.Context, source string, res *drift.Result) (string, error) {
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	id := ulid.MustNew(ulid.Now(), s.entropy).String()
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses
			(id, created_at, source, pattern, confidence, mean_chi_squared, window_count, status, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), source, string(res.Pattern),
		res.PatternConfidence, res.MeanChiSquared, res.WindowCount, string(res.Status),
		string(resultJSON),
	)
	if err != nil {
		return "", fmt.Errorf("saving analysis: %w", err)
	}
	return id, nil
}

// List returns the most recent analyses, newest first. ULID ids sort by
// creation time, so ordering by id is ordering by age even when two saves
// share a timestamp. A non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, created_at, source, pattern, confidence, mean_chi_squared, window_count, status, result_json
		FROM analyses ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	return records, nil
}

// Get fetches one analysis by id. Returns ErrNotFound (wrapped) when no
// record has that id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, source, pattern, confidence, mean_chi_squared, window_count, status, result_json
		FROM analyses WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var (
		rec        Record
		createdAt  string
		resultJSON string
	)
	err := s.Scan(&rec.ID, &createdAt, &rec.Source, &rec.Pattern,
		&rec.Confidence, &rec.MeanChiSquared, &rec.WindowCount, &rec.Status, &resultJSON)
	if err != nil {
		return nil, err
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing stored timestamp: %w", err)
	}
	rec.ResultJSON = []byte(resultJSON)
	return &rec, nil
}
