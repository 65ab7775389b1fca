package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"linkedin-people-search/internal/browser"
	"linkedin-people-search/internal/models"
)

// Journal records finished search runs
type Journal interface {
	RecordRun(ctx context.Context, run *models.SearchRun) error
}

// Crawler runs people searches over a single browser session. Searches are
// serialized: a second caller waits until the running search completes.
type Crawler struct {
	config    models.Config
	session   browser.Session
	extractor *ProfileExtractor
	settler   *Settler
	journal   Journal
	sem       *semaphore.Weighted
	log       logrus.FieldLogger
	now       func() time.Time
}

// New creates a Crawler. journal may be nil.
func New(config models.Config, session browser.Session, journal Journal, log logrus.FieldLogger) (*Crawler, error) {
	if session == nil {
		return nil, errors.New("browser session is required")
	}
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", config.BaseURL, err)
	}

	return &Crawler{
		config:    config,
		session:   session,
		extractor: NewProfileExtractor(base),
		settler:   NewSettler(config, log),
		journal:   journal,
		sem:       semaphore.NewWeighted(1),
		log:       log,
		now:       time.Now,
	}, nil
}

// Search returns the deduplicated profile URLs found for term, in page order
func (c *Crawler) Search(ctx context.Context, term string) ([]string, error) {
	run, err := c.Run(ctx, term, models.SearchModeLinks)
	if err != nil {
		return nil, err
	}
	return run.ProfileURLs(), nil
}

// SearchDetailed returns the deduplicated result records found for term, in page order
func (c *Crawler) SearchDetailed(ctx context.Context, term string) ([]models.SearchResult, error) {
	run, err := c.Run(ctx, term, models.SearchModeDetailed)
	if err != nil {
		return nil, err
	}
	return run.Results, nil
}

// Run performs one search and returns the run with its counters. A results
// container that never shows up is an empty run, not an error.
func (c *Crawler) Run(ctx context.Context, term string, mode models.SearchMode) (*models.SearchRun, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	run := &models.SearchRun{
		RunID:     uuid.NewString(),
		Term:      term,
		Mode:      mode,
		StartedAt: c.now(),
	}
	log := c.log.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"term":   term,
		"mode":   mode,
	})

	err := c.collect(ctx, run, log)
	run.FinishedAt = c.now()
	run.Err = err
	c.record(run, log)

	if err != nil {
		log.WithError(err).Error("search failed")
		return run, err
	}

	log.WithFields(logrus.Fields{
		"results":    len(run.Results),
		"candidates": run.Candidates,
		"skipped":    run.Skipped,
		"duplicates": run.Duplicates,
		"duration":   run.Duration(),
	}).Info("search finished")

	return run, nil
}

func (c *Crawler) collect(ctx context.Context, run *models.SearchRun, log logrus.FieldLogger) error {
	searchURL, err := SearchURL(c.config.BaseURL, run.Term)
	if err != nil {
		return err
	}
	run.URL = searchURL

	log.WithField("url", searchURL).Debug("navigating to search results")
	if err := c.session.Navigate(ctx, searchURL); err != nil {
		return err
	}

	if err := c.settler.Settle(ctx, c.session); err != nil {
		return err
	}

	container, found := c.waitForResults(ctx, log)
	if !found {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Warn("results container never appeared, treating as no results")
		return nil
	}
	run.ContainerFound = true

	if err := c.settler.Reveal(ctx, c.session, container); err != nil {
		return err
	}

	doc, err := c.session.Document(ctx)
	if err != nil {
		return err
	}

	extract := c.extractor.ExtractProfileURL
	if run.Mode == models.SearchModeDetailed {
		extract = c.extractor.ExtractProfileData
	}

	results, tally := collectCards(doc.Find(CardSelector), extract)
	run.Results = results
	run.Candidates = tally.candidates
	run.Skipped = tally.skipped
	run.Duplicates = tally.duplicates

	return nil
}

// waitForResults waits for the primary results container, then the fallback
func (c *Crawler) waitForResults(ctx context.Context, log logrus.FieldLogger) (string, bool) {
	for _, selector := range []string{ResultsContainer, ResultsContainerFallback} {
		err := c.session.WaitReady(ctx, selector, c.config.WaitTimeout)
		if err == nil {
			return selector, true
		}
		if ctx.Err() != nil {
			return "", false
		}
		if !errors.Is(err, browser.ErrTimeout) {
			log.WithError(err).WithField("selector", selector).Warn("waiting for results container failed")
			continue
		}
		log.WithField("selector", selector).Debug("results container not found")
	}
	return "", false
}

// record writes run to the journal. Journal failures never fail the search.
func (c *Crawler) record(run *models.SearchRun, log logrus.FieldLogger) {
	if c.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.journal.RecordRun(ctx, run); err != nil {
		log.WithError(err).Warn("failed to record search run")
	}
}

// Session returns the browser session the crawler drives
func (c *Crawler) Session() browser.Session {
	return c.session
}
