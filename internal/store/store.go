// Package store persists a history of translation runs in SQLite. The
// history is an audit log: it is never consulted before translating, so the
// pipeline stays single-pass.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/valpere/mdtranslate/internal"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_runs (
		id TEXT PRIMARY KEY,
		input_file TEXT NOT NULL,
		output_file TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		model TEXT,
		report TEXT,
		duration_ms INTEGER,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_input ON translation_runs(input_file);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveRun records one completed translation run and returns its ID. A
// missing ID is generated. File paths are NFC-normalized so the same
// document yields one spelling across platforms; the report is stored
// verbatim.
func (s *Store) SaveRun(ctx context.Context, run internal.RunRecord) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_runs (id, input_file, output_file, target_lang, model, report, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, norm.NFC.String(run.InputFile), norm.NFC.String(run.OutputFile),
		run.TargetLang, run.Model, run.Report, run.DurationMS, run.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}

	return run.ID, nil
}

// ListRuns returns all recorded runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]internal.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_file, output_file, target_lang, model, report, duration_ms, created_at FROM translation_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []internal.RunRecord
	for rows.Next() {
		var r internal.RunRecord
		if err := rows.Scan(&r.ID, &r.InputFile, &r.OutputFile, &r.TargetLang, &r.Model, &r.Report, &r.DurationMS, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// RunStats summarises the run history.
type RunStats struct {
	TotalRuns    int
	VerifiedRuns int
}

// Stats counts recorded runs; a run is verified when it carries a report.
func (s *Store) Stats(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN report != '' THEN 1 ELSE 0 END), 0)
		FROM translation_runs`).Scan(
		&stats.TotalRuns,
		&stats.VerifiedRuns,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ClearRuns removes all history entries and reports how many were deleted.
func (s *Store) ClearRuns(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_runs`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
