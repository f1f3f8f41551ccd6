// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of validation runs so a drift can
// be traced back to the run that first reported it.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/megadroid/internal/validate"
)

const defaultLimit = 20

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at path, creating the
// parent directory and the schema when they do not exist.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			variant TEXT,
			passed INTEGER NOT NULL,
			failed_check TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			check_name TEXT NOT NULL,
			passed INTEGER NOT NULL,
			violations TEXT,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_check ON results(check_name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run is one recorded validation run.
type Run struct {
	ID          int64         `json:"id" yaml:"id"`
	StartedAt   time.Time     `json:"started_at" yaml:"started_at"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
	Variant     string        `json:"variant,omitempty" yaml:"variant,omitempty"`
	Passed      bool          `json:"passed" yaml:"passed"`
	FailedCheck string        `json:"failed_check,omitempty" yaml:"failed_check,omitempty"`
	Checks      []CheckRecord `json:"checks" yaml:"checks"`
}

// CheckRecord is the stored outcome of one check within a run.
type CheckRecord struct {
	Check      string   `json:"check" yaml:"check"`
	Passed     bool     `json:"passed" yaml:"passed"`
	Violations []string `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Record stores a batch outcome and returns the new run ID.
func (s *Store) Record(ctx context.Context, variant string, outcome validate.Outcome) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, duration_ms, variant, passed, failed_check)
		 VALUES (?, ?, ?, ?, ?)`,
		outcome.StartedAt.UTC().Format(time.RFC3339Nano),
		outcome.Duration.Milliseconds(),
		variant,
		boolToInt(outcome.Passed()),
		outcome.FailedCheck,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, position, check_name, passed, violations)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range outcome.Results {
		violationsJSON, _ := json.Marshal(r.Messages())
		if _, err := stmt.ExecContext(ctx, runID, i, r.Check, boolToInt(r.Passed), string(violationsJSON)); err != nil {
			return 0, fmt.Errorf("inserting result %s: %w", r.Check, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs, newest first. A non-positive limit uses
// the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, variant, passed, failed_check
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run         Run
			startedAt   string
			durationMS  int64
			variant     sql.NullString
			passed      int
			failedCheck sql.NullString
		)
		if err := rows.Scan(&run.ID, &startedAt, &durationMS, &variant, &passed, &failedCheck); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		run.Duration = time.Duration(durationMS) * time.Millisecond
		run.Variant = variant.String
		run.Passed = passed != 0
		run.FailedCheck = failedCheck.String
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		checks, err := s.checks(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Checks = checks
	}
	return runs, nil
}

func (s *Store) checks(ctx context.Context, runID int64) ([]CheckRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT check_name, passed, violations FROM results
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []CheckRecord
	for rows.Next() {
		var (
			rec            CheckRecord
			passed         int
			violationsJSON sql.NullString
		)
		if err := rows.Scan(&rec.Check, &passed, &violationsJSON); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		rec.Passed = passed != 0
		if violationsJSON.Valid && violationsJSON.String != "" {
			json.Unmarshal([]byte(violationsJSON.String), &rec.Violations)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
