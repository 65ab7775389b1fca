package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-people-search/internal/models"
)

func TestJournalRecordsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	journal, err := OpenJournal(path)
	require.NoError(t, err)

	started := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	run := &models.SearchRun{
		RunID:          "abc",
		Term:           "data engineer",
		Mode:           models.SearchModeLinks,
		ContainerFound: true,
		StartedAt:      started,
		FinishedAt:     started.Add(time.Second),
	}
	require.NoError(t, journal.RecordRun(context.Background(), run))
	require.NoError(t, journal.Close())

	reopened, err := OpenJournal(path)
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.Runs.GetRun(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "data engineer", rec.Term)
	assert.Equal(t, models.SearchModeLinks, rec.Mode)
	assert.Equal(t, 0, rec.Results)
}
