// Package cache provides caching decorators for entaudit collaborators.
package cache

import (
	"context"
	"time"

	"github.com/fwojciec/entaudit"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long fetched pages stay cached.
const DefaultTTL = 15 * time.Minute

// DefaultCleanupInterval is how often expired entries are purged.
const DefaultCleanupInterval = 5 * time.Minute

// Ensure Fetcher implements entaudit.Fetcher at compile time.
var _ entaudit.Fetcher = (*Fetcher)(nil)

// Fetcher wraps an entaudit.Fetcher with an in-memory TTL cache keyed
// by URL, so batches listing the same URL more than once fetch it only
// once.
type Fetcher struct {
	next  entaudit.Fetcher
	cache *gocache.Cache
}

// Option configures a Fetcher.
type Option func(*options)

type options struct {
	ttl             time.Duration
	cleanupInterval time.Duration
}

// WithTTL sets how long fetched pages stay cached.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// NewFetcher wraps next with URL-keyed caching.
func NewFetcher(next entaudit.Fetcher, opts ...Option) *Fetcher {
	o := options{
		ttl:             DefaultTTL,
		cleanupInterval: DefaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Fetcher{
		next:  next,
		cache: gocache.New(o.ttl, o.cleanupInterval),
	}
}

// Fetch returns the cached HTML for url if present, otherwise fetches
// it through the wrapped fetcher. Failed fetches are not cached.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, found := f.cache.Get(url); found {
		return html.(string), nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	f.cache.SetDefault(url, html)
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
