package orchestrator

import (
	"context"

	"linkedin-people-search/internal/models"
)

// RunTerms checks the session, then searches each term in turn. A failed
// term is kept in the returned runs with its error and the next term still
// runs; only cancellation stops the batch early.
func (s *Scraper) RunTerms(ctx context.Context, terms []string, mode models.SearchMode, closeOnComplete bool) ([]*models.SearchRun, error) {
	if closeOnComplete {
		defer func() {
			if err := s.Close(); err != nil {
				s.log.WithError(err).Warn("failed to close browser session")
			}
		}()
	}

	if err := s.Scrape(ctx, false); err != nil {
		return nil, err
	}

	runs := make([]*models.SearchRun, 0, len(terms))
	for i, term := range terms {
		if err := ctx.Err(); err != nil {
			return runs, err
		}

		log := s.log.WithField("term", term).WithField("position", i+1)
		run, err := s.searcher.Run(ctx, term, mode)
		if err != nil {
			if ctx.Err() != nil {
				return runs, ctx.Err()
			}
			log.WithError(err).Warn("search failed, continuing with next term")
			if run == nil {
				run = &models.SearchRun{Term: term, Mode: mode, Err: err}
			}
		}
		runs = append(runs, run)
	}

	return runs, nil
}
