package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"linkedin-people-search/internal/browser"
	"linkedin-people-search/internal/crawler"
	"linkedin-people-search/internal/models"
)

// ErrNotImplemented is returned when scraping is attempted without an
// authenticated session. Anonymous browsing is not supported.
var ErrNotImplemented = errors.New("scraping without a signed-in session is not implemented")

const signedInPath = "feed/"

// Searcher runs a single people search
type Searcher interface {
	Run(ctx context.Context, term string, mode models.SearchMode) (*models.SearchRun, error)
}

// Scraper is the top-level entry point: it checks the session state and
// drives searches over the session one at a time
type Scraper struct {
	config   models.Config
	session  browser.Session
	searcher Searcher
	log      logrus.FieldLogger
}

// New creates a Scraper over session. searcher must drive the same session.
func New(config models.Config, session browser.Session, searcher Searcher, log logrus.FieldLogger) *Scraper {
	return &Scraper{
		config:   config,
		session:  session,
		searcher: searcher,
		log:      log,
	}
}

// NewFromCrawler creates a Scraper driving c and its session
func NewFromCrawler(config models.Config, c *crawler.Crawler, log logrus.FieldLogger) *Scraper {
	return New(config, c.Session(), c, log)
}

// IsSignedIn opens the home feed and reports whether the signed-in
// navigation shows up within the wait timeout
func (s *Scraper) IsSignedIn(ctx context.Context) (bool, error) {
	base, err := url.Parse(s.config.BaseURL)
	if err != nil {
		return false, fmt.Errorf("invalid base URL %q: %w", s.config.BaseURL, err)
	}
	feedURL := base.ResolveReference(&url.URL{Path: signedInPath}).String()

	if err := s.session.Navigate(ctx, feedURL); err != nil {
		return false, err
	}

	err = s.session.WaitReady(ctx, crawler.SignedInSelector, s.config.WaitTimeout)
	switch {
	case err == nil:
		return true, nil
	case ctx.Err() != nil:
		return false, ctx.Err()
	case errors.Is(err, browser.ErrTimeout):
		return false, nil
	default:
		return false, err
	}
}

// Scrape proceeds only for a signed-in session and returns ErrNotImplemented
// otherwise. With closeOnComplete the session is closed once done.
func (s *Scraper) Scrape(ctx context.Context, closeOnComplete bool) error {
	signedIn, err := s.IsSignedIn(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session state: %w", err)
	}
	if !signedIn {
		return ErrNotImplemented
	}

	s.log.Debug("session is signed in")

	if closeOnComplete {
		return s.Close()
	}
	return nil
}

// Close closes the browser session
func (s *Scraper) Close() error {
	start := time.Now()
	err := s.session.Close()
	s.log.WithField("took", time.Since(start)).Debug("browser session closed")
	return err
}
