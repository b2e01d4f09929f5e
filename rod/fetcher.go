// Package rod provides a browser-automation implementation of
// entaudit.Fetcher. Pages are rendered in headless Chrome so
// JavaScript-built content is present in the HTML the pipeline analyzes.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/entaudit"
	"github.com/go-rod/rod/lib/proto"
)

// defaultUserAgent is sent with every page load. Some sites serve empty
// shells or block pages to the headless Chrome default UA.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// settleWait gives client-side rendering a moment to finish after the
// load event before the HTML is captured.
const settleWait = 2 * time.Second

// Ensure Fetcher implements entaudit.Fetcher at compile time.
var _ entaudit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. All fetches share one managed browser instance, which is
// recycled periodically; Fetcher is safe for concurrent use.
type Fetcher struct {
	manager   *BrowserManager
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the User-Agent sent with page loads.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher backed by a managed headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager:   manager,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Fetch navigates to the URL, waits for the page to render, and returns
// the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser := f.manager.Browser()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", err
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Let client-side rendering settle; ignore instability, the page
	// may legitimately keep animating.
	_ = page.WaitStable(settleWait)

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
