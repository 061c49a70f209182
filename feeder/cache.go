package feeder

import (
	"sync"
	"time"

	"siris-blog/models"
)

type cacheEntry struct {
	posts    []models.Post
	storedAt time.Time
}

// Cache keeps normalized remote posts per feed key for a fixed ttl.
// A nil *Cache is valid and never hits.
type Cache struct {
	mu    sync.Mutex
	items map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewCache returns nil when ttl is not positive, which disables caching.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return nil
	}
	return &Cache{
		items: make(map[string]cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns a copy of the posts stored under key while they are inside the ttl window.
func (c *Cache) Get(key string) ([]models.Post, bool) {
	if c == nil {
		return nil, false
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if now.Sub(e.storedAt) > c.ttl {
		delete(c.items, key)
		return nil, false
	}
	return clonePosts(e.posts), true
}

// Put stores a copy of posts under key.
func (c *Cache) Put(key string, posts []models.Post) {
	if c == nil {
		return
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheEntry{posts: clonePosts(posts), storedAt: now}
	c.compact(now)
}

func (c *Cache) compact(now time.Time) {
	for k, e := range c.items {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.items, k)
		}
	}
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
