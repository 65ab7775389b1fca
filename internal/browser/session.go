package browser

import (
	"context"
	"errors"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrTimeout is returned when a waited-for selector does not show up in time
	ErrTimeout = errors.New("timed out waiting for element")
	// ErrNotFound is returned when an action targets a selector that matches nothing
	ErrNotFound = errors.New("element not found")
)

// Session is a handle on one browser tab. Element lookups (single, all,
// attribute, text) run against the goquery document returned by Document.
type Session interface {
	Navigate(ctx context.Context, url string) error
	WaitReady(ctx context.Context, selector string, timeout time.Duration) error
	Exists(ctx context.Context, selector string) (bool, error)
	ScrollToBottom(ctx context.Context) error
	ScrollToPercent(ctx context.Context, selector string, pct float64) error
	Document(ctx context.Context) (*goquery.Document, error)
	Close() error
}
