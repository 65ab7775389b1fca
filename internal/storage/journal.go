package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"linkedin-people-search/internal/database"
	"linkedin-people-search/internal/models"
)

// Journal keeps a SQLite record of every search run: term, URL, outcome and
// card counters. It never stores the results themselves.
type Journal struct {
	DB   *database.DB
	Runs *database.SearchRunRepository
}

// OpenJournal opens the journal database at dbPath, creating parent
// directories as needed
func OpenJournal(dbPath string) (*Journal, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := database.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	return &Journal{
		DB:   db,
		Runs: database.NewSearchRunRepository(db),
	}, nil
}

// RecordRun appends run to the journal
func (j *Journal) RecordRun(ctx context.Context, run *models.SearchRun) error {
	return j.Runs.InsertRun(ctx, run)
}

// Close closes the database connection
func (j *Journal) Close() error {
	return j.DB.Close()
}
