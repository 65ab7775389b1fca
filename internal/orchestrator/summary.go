package orchestrator

import (
	"time"

	"linkedin-people-search/internal/models"
)

// Summary aggregates the outcome of a batch of runs
type Summary struct {
	Terms       int
	Succeeded   int
	NoContainer int
	Failed      int
	Results     int
	Candidates  int
	Skipped     int
	Duplicates  int
	Duration    time.Duration
}

// Summarize totals the counters of runs
func Summarize(runs []*models.SearchRun) Summary {
	var sum Summary
	for _, run := range runs {
		if run == nil {
			continue
		}
		sum.Terms++
		switch run.Status() {
		case models.RunStatusOK:
			sum.Succeeded++
		case models.RunStatusNoContainer:
			sum.NoContainer++
		case models.RunStatusFailed:
			sum.Failed++
		}
		sum.Results += len(run.Results)
		sum.Candidates += run.Candidates
		sum.Skipped += run.Skipped
		sum.Duplicates += run.Duplicates
		sum.Duration += run.Duration()
	}
	return sum
}
