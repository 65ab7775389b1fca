package crawler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"linkedin-people-search/internal/browser"
	"linkedin-people-search/internal/models"
)

// Settler gives lazily loaded results time to render. It is a fixed budget
// and never checks whether new content actually appeared.
type Settler struct {
	iterations int
	pause      time.Duration
	percents   []float64
	log        logrus.FieldLogger
}

// NewSettler creates a Settler from the scroll settings in config
func NewSettler(config models.Config, log logrus.FieldLogger) *Settler {
	return &Settler{
		iterations: config.ScrollIterations,
		pause:      config.ScrollPause,
		percents:   config.ScrollPercents,
		log:        log,
	}
}

// Settle scrolls to the bottom of the page and waits, a fixed number of times.
// Scroll failures are logged and skipped; only cancellation is returned.
func (s *Settler) Settle(ctx context.Context, session browser.Session) error {
	for i := 0; i < s.iterations; i++ {
		if err := session.ScrollToBottom(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.WithError(err).WithField("iteration", i+1).Warn("scroll to bottom failed")
		}
		if err := sleep(ctx, s.pause); err != nil {
			return err
		}
	}
	return nil
}

// Reveal walks the element matching selector down to each configured
// percentage of its height, waiting after every step
func (s *Settler) Reveal(ctx context.Context, session browser.Session, selector string) error {
	for _, pct := range s.percents {
		if err := session.ScrollToPercent(ctx, selector, pct); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.WithError(err).WithField("percent", pct).Debug("scroll to percent failed")
		}
		if err := sleep(ctx, s.pause); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
