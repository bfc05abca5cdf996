package source

import (
	"context"
	"sync"
	"time"

	"json-diff/core/reconcile"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	collection *reconcile.Collection
	loadedAt   time.Time
}

// Cached keeps collections loaded from another source for a fixed TTL.
// Concurrent loads of the same name share a single read.
type Cached struct {
	inner Source
	ttl   time.Duration
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewCached wraps inner with a cache.
func NewCached(inner Source, ttl time.Duration) *Cached {
	return &Cached{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Kind returns the kind of the wrapped source.
func (c *Cached) Kind() string {
	return c.inner.Kind()
}

// List is never cached so new files show up immediately. Cached
// collections whose name is no longer listed are dropped.
func (c *Cached) List(ctx context.Context) ([]string, error) {
	names, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.retain(names)
	return names, nil
}

// Load returns the cached collection if it is younger than the TTL.
func (c *Cached) Load(ctx context.Context, name string) (*reconcile.Collection, error) {
	if col, ok := c.lookup(name); ok {
		return col, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		// Another caller may have filled the entry while we waited.
		if col, ok := c.lookup(name); ok {
			return col, nil
		}
		col, err := c.inner.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[name] = cacheEntry{collection: col, loadedAt: c.now()}
		c.mu.Unlock()
		return col, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*reconcile.Collection), nil
}

func (c *Cached) lookup(name string) (*reconcile.Collection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name]
	if !ok || c.now().Sub(entry.loadedAt) >= c.ttl {
		return nil, false
	}
	return entry.collection, true
}

// retain drops every entry not named in names.
func (c *Cached) retain(names []string) {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for name := range c.entries {
		if _, ok := keep[name]; !ok {
			delete(c.entries, name)
		}
	}
}
