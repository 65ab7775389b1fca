package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"linkedin-people-search/internal/models"
)

// ErrRunNotFound is returned when no run has the requested id
var ErrRunNotFound = errors.New("search run not found")

// RunRecord is one journaled search run
type RunRecord struct {
	RunID      string
	Term       string
	URL        string
	Mode       models.SearchMode
	Status     models.RunStatus
	Results    int
	Candidates int
	Skipped    int
	Duplicates int
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// SearchRunRepository handles search run operations
type SearchRunRepository struct {
	db *sql.DB
}

// NewSearchRunRepository creates a new search run repository
func NewSearchRunRepository(db *DB) *SearchRunRepository {
	return &SearchRunRepository{db: db.GetConn()}
}

// InsertRun stores the metadata and counters of run. Result records are not stored.
func (sr *SearchRunRepository) InsertRun(ctx context.Context, run *models.SearchRun) error {
	var lastError sql.NullString
	if run.Err != nil {
		lastError = sql.NullString{String: run.Err.Error(), Valid: true}
	}
	var finishedAt sql.NullTime
	if !run.FinishedAt.IsZero() {
		finishedAt = sql.NullTime{Time: run.FinishedAt, Valid: true}
	}

	_, err := sr.db.ExecContext(ctx, `
		INSERT INTO search_runs (
			run_id, term, url, mode, status,
			results, candidates, skipped, duplicates,
			last_error, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.Term, run.URL, string(run.Mode), string(run.Status()),
		len(run.Results), run.Candidates, run.Skipped, run.Duplicates,
		lastError, run.StartedAt, finishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.RunID, err)
	}
	return nil
}

const runColumns = `run_id, term, url, mode, status, results, candidates, skipped,
	duplicates, last_error, started_at, finished_at`

// GetRun returns the run with runID
func (sr *SearchRunRepository) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	row := sr.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM search_runs WHERE run_id = ?`, runID)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	return rec, err
}

// ListRecentRuns returns up to limit runs, newest first
func (sr *SearchRunRepository) ListRecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `SELECT ` + runColumns + ` FROM search_runs ORDER BY started_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := sr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// GetRunStats returns run counts per status plus a "total" entry
func (sr *SearchRunRepository) GetRunStats(ctx context.Context) (map[string]int, error) {
	rows, err := sr.db.QueryContext(ctx, `
		SELECT status, COUNT(*) as count
		FROM search_runs
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	total := 0
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	stats["total"] = total

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var (
		rec        RunRecord
		url        sql.NullString
		mode       string
		status     string
		lastError  sql.NullString
		finishedAt sql.NullTime
	)
	err := row.Scan(&rec.RunID, &rec.Term, &url, &mode, &status,
		&rec.Results, &rec.Candidates, &rec.Skipped, &rec.Duplicates,
		&lastError, &rec.StartedAt, &finishedAt)
	if err != nil {
		return nil, err
	}

	rec.URL = url.String
	rec.Mode = models.SearchMode(mode)
	rec.Status = models.RunStatus(status)
	rec.LastError = lastError.String
	if finishedAt.Valid {
		rec.FinishedAt = finishedAt.Time
	}
	return &rec, nil
}
