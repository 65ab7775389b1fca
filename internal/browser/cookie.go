package browser

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// sessionCookieName is the cookie holding an authenticated session
const sessionCookieName = "li_at"

// cookieDomain returns the cookie domain covering every subdomain of baseURL
func cookieDomain(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("invalid base URL %q", baseURL)
	}
	return "." + strings.TrimPrefix(u.Hostname(), "www."), nil
}

// restoreSessionCookie installs an existing session cookie so the tab starts
// out signed in. It does not perform any login.
func restoreSessionCookie(ctx context.Context, baseURL, value string) error {
	domain, err := cookieDomain(baseURL)
	if err != nil {
		return err
	}

	err = chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		expires := cdp.TimeSinceEpoch(time.Now().Add(365 * 24 * time.Hour))
		return network.SetCookie(sessionCookieName, value).
			WithDomain(domain).
			WithPath("/").
			WithSecure(true).
			WithHTTPOnly(true).
			WithExpires(&expires).
			Do(ctx)
	}))
	if err != nil {
		return fmt.Errorf("failed to restore session cookie: %w", err)
	}
	return nil
}
