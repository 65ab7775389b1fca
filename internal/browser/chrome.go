package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"linkedin-people-search/internal/models"
)

// Chrome drives a single Chrome tab through chromedp
type Chrome struct {
	ctx               context.Context
	cancel            context.CancelFunc
	navigationTimeout time.Duration
	log               logrus.FieldLogger
	closeOnce         sync.Once
}

// NewChrome starts Chrome and opens a tab configured from cfg
func NewChrome(ctx context.Context, cfg models.Config, log logrus.FieldLogger) (*Chrome, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-plugins", true),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}
	if cfg.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.UserDataDir))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(log.WithField("component", "chromedp").Debugf),
	)

	cancel := func() {
		browserCancel()
		allocCancel()
	}

	// Enable network events
	if err := chromedp.Run(browserCtx, network.Enable()); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to enable network events: %w", err)
	}

	if cfg.SessionCookie != "" {
		if err := restoreSessionCookie(browserCtx, cfg.BaseURL, cfg.SessionCookie); err != nil {
			cancel()
			return nil, err
		}
		log.Debug("session cookie restored")
	}

	return &Chrome{
		ctx:               browserCtx,
		cancel:            cancel,
		navigationTimeout: cfg.NavigationTimeout,
		log:               log,
	}, nil
}

// run executes actions on the tab, bounded by timeout when positive and
// aborted when the caller's ctx is done
func (c *Chrome) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(c.ctx)
	defer cancel()
	if timeout > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, timeout)
		defer cancelTimeout()
	}

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Navigate loads url in the tab
func (c *Chrome) Navigate(ctx context.Context, url string) error {
	if err := c.run(ctx, c.navigationTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// WaitReady waits until selector is present in the DOM
func (c *Chrome) WaitReady(ctx context.Context, selector string, timeout time.Duration) error {
	err := c.run(ctx, timeout, chromedp.WaitReady(selector, chromedp.ByQuery))
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, selector)
	}
	return err
}

// Exists reports whether selector currently matches an element
func (c *Chrome) Exists(ctx context.Context, selector string) (bool, error) {
	var exists bool
	js := fmt.Sprintf(`document.querySelector(%q) !== null`, selector)
	if err := c.run(ctx, 0, chromedp.Evaluate(js, &exists)); err != nil {
		return false, err
	}
	return exists, nil
}

// ScrollToBottom scrolls the viewport to the end of the page
func (c *Chrome) ScrollToBottom(ctx context.Context) error {
	return c.run(ctx, 0, chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil))
}

// ScrollToPercent scrolls the viewport to pct of the way through the first
// element matching selector
func (c *Chrome) ScrollToPercent(ctx context.Context, selector string, pct float64) error {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return false;
		const top = el.getBoundingClientRect().top + window.scrollY;
		window.scrollTo(0, top + el.scrollHeight * %f);
		return true;
	})()`, selector, pct)

	var found bool
	if err := c.run(ctx, 0, chromedp.Evaluate(js, &found)); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return nil
}

// Document snapshots the rendered DOM
func (c *Chrome) Document(ctx context.Context) (*goquery.Document, error) {
	var html, location string
	err := c.run(ctx, 0,
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read page HTML: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}
	if u, err := url.Parse(location); err == nil {
		doc.Url = u
	}
	return doc, nil
}

// Close shuts the browser down. Safe to call more than once.
func (c *Chrome) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = chromedp.Cancel(c.ctx)
		c.cancel()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
