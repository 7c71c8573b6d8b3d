// ABOUTME: In-memory cache with TTL-based expiration for tokens and computed stats
// ABOUTME: Thread-safe cache using sync.Map with periodic cleanup and single-flight loads

package cache

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CleanupInterval is how often expired entries are swept.
const CleanupInterval = time.Minute

type entry[V any] struct {
	data      V
	expiresAt time.Time
}

// Cache stores values of type V until their TTL passes.
type Cache[V any] struct {
	store sync.Map
	ttl   time.Duration
	group singleflight.Group

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache whose entries live for ttl unless set with SetWithTTL.
// Call Close to stop the cleanup goroutine.
func New[V any](ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get returns the value for key if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return zero, false
	}

	e := val.(entry[V])
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		slog.Debug("Cache expired", "key", key)
		return zero, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

// Set stores value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.store.Store(key, entry[V]{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	})
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

// Clear removes key.
func (c *Cache[V]) Clear(key string) {
	c.store.Delete(key)
}

// GetOrLoad returns the cached value for key, or calls load once for all
// concurrent callers and caches its result. Errors are not cached.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if shared {
		slog.Debug("Cache load shared", "key", key)
	}
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len counts live entries.
func (c *Cache[V]) Len() int {
	n := 0
	now := time.Now()
	c.store.Range(func(_, val any) bool {
		if !now.After(val.(entry[V]).expiresAt) {
			n++
		}
		return true
	})
	return n
}

// Close stops the cleanup goroutine. The cache stays usable.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) startCleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep(time.Now())
		}
	}
}

func (c *Cache[V]) sweep(now time.Time) {
	c.store.Range(func(key, val any) bool {
		if now.After(val.(entry[V]).expiresAt) {
			c.store.Delete(key)
		}
		return true
	})
}
