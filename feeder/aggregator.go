package feeder

import (
	"context"
	"strings"
	"time"

	"siris-blog/logger"
	"siris-blog/models"
	"siris-blog/trace"
)

// Aggregator merges the static fallback post with normalized remote posts.
type Aggregator struct {
	source          Source
	cache           *Cache
	log             logger.Logger
	now             func() time.Time
	keepSourceDates bool
}

// Option customizes an Aggregator.
type Option func(*Aggregator)

// WithCache enables the TTL cache. A nil cache is ignored.
func WithCache(c *Cache) Option {
	return func(a *Aggregator) { a.cache = c }
}

// WithClock replaces time.Now for date stamping.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// WithKeepSourceDates keeps dates delivered by the feed.
func WithKeepSourceDates(keep bool) Option {
	return func(a *Aggregator) { a.keepSourceDates = keep }
}

func NewAggregator(source Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		source: source,
		log:    logger.Log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FetchPosts returns the fallback post followed by the remote posts in source order.
// Remote failures are logged and yield the fallback post alone.
func (a *Aggregator) FetchPosts(ctx context.Context) []models.Post {
	posts := []models.Post{FallbackPost()}
	return append(posts, a.remotePosts(ctx)...)
}

func (a *Aggregator) remotePosts(ctx context.Context) []models.Post {
	if a.source == nil {
		return nil
	}

	key := a.source.Key()
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}

	records, err := a.source.Fetch(ctx)
	if err != nil {
		a.log.Errorf("Failed to retrieve blog data: %v (request_id=%s)", err, trace.RequestIDFromContext(ctx))
		return nil
	}

	opts := NormalizeOptions{Now: a.now(), KeepSourceDates: a.keepSourceDates}
	posts := make([]models.Post, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Title) == "" {
			a.log.Warnf("skipping feed record %d: missing title", i)
			continue
		}
		posts = append(posts, Normalize(rec, opts))
	}

	a.cache.Put(key, posts)
	return posts
}
