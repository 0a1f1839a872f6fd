// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists conversion outcomes in a local SQLite database
// so past runs can be inspected after the fact.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

const dbFile = "file2pdf.db"

// Record is one persisted conversion outcome.
type Record struct {
	ID         string    `json:"id" yaml:"id"`
	SourcePath string    `json:"source_path" yaml:"source_path"`
	OutputPath string    `json:"output_path" yaml:"output_path"`
	Success    bool      `json:"success" yaml:"success"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages the conversion history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dir/file2pdf.db, creating
// the schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		success INTEGER NOT NULL,
		error TEXT,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Add records one outcome with the current timestamp.
func (s *Store) Add(o types.Outcome) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (id, source_path, output_path, success, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.Job.ID, o.Job.SourcePath, o.Job.OutputPath, o.Success, o.Error,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording outcome for %s: %w", o.Job.SourcePath, err)
	}
	return nil
}

// AddBatch records a full outcome list, stopping at the first failure.
func (s *Store) AddBatch(outcomes []types.Outcome) error {
	for _, o := range outcomes {
		if err := s.Add(o); err != nil {
			return err
		}
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source_path, output_path, success, error, created_at
		 FROM conversions ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var errMsg sql.NullString
		var createdAt string
		if err := rows.Scan(&r.ID, &r.SourcePath, &r.OutputPath, &r.Success, &errMsg, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		r.Error = errMsg.String
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = ts
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
