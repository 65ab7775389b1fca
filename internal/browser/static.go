package browser

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Static is a Session over an already rendered HTML page, such as a saved
// results page. Waits succeed only if the selector is in the page and
// scrolling is a counted no-op.
type Static struct {
	mu      sync.Mutex
	doc     *goquery.Document
	visited []string
	scrolls int
	closed  bool
}

// NewStatic parses html into a Static session
func NewStatic(html string) (*Static, error) {
	return NewStaticFromReader(strings.NewReader(html))
}

// NewStaticFromReader parses the HTML read from r into a Static session
func NewStaticFromReader(r io.Reader) (*Static, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Static{doc: doc}, nil
}

// OpenStatic loads the HTML file at path into a Static session
func OpenStatic(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return NewStaticFromReader(f)
}

// Navigate records url and uses it as the document location
func (s *Static) Navigate(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", rawURL, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited = append(s.visited, rawURL)
	s.doc.Url = u
	return nil
}

// WaitReady returns ErrTimeout when selector is absent from the page
func (s *Static) WaitReady(ctx context.Context, selector string, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %s", ErrTimeout, selector)
	}
	return nil
}

// Exists reports whether selector matches anything in the page
func (s *Static) Exists(ctx context.Context, selector string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.doc.Find(selector).Length() > 0, nil
}

// ScrollToBottom counts the scroll
func (s *Static) ScrollToBottom(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.scrolls++
	s.mu.Unlock()
	return nil
}

// ScrollToPercent counts the scroll, or returns ErrNotFound for a missing selector
func (s *Static) ScrollToPercent(ctx context.Context, selector string, _ float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	s.mu.Lock()
	s.scrolls++
	s.mu.Unlock()
	return nil
}

// Document returns the parsed page
func (s *Static) Document(ctx context.Context) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

// Close marks the session closed
func (s *Static) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// Visited returns the URLs passed to Navigate, in order
func (s *Static) Visited() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.visited...)
}

// Scrolls returns how many scroll actions were performed
func (s *Static) Scrolls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrolls
}

// Closed reports whether Close was called
func (s *Static) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
