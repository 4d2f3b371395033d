// Package cache is the shared fetch cache for entity views, keyed by view
// title. At most one fetch per key is ever in flight; concurrent views
// mounting the same title join it and share the result.
package cache

import (
	"context"
	"sync"

	"github.com/apexsales/admin-console/internal/metrics"
)

type entry struct {
	done chan struct{}
	rows any
}

// Cache is safe for concurrent use. The zero value is not usable; call New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Fetch returns the cached rows for title, joining an in-flight fetch if
// one exists, or invoking fn exactly once otherwise. A nil result (failed
// fetch) is cached too; Invalidate is what forces a retry.
func Fetch[T any](c *Cache, ctx context.Context, title string, fn func(context.Context) []T) []T {
	c.mu.Lock()
	if e, ok := c.entries[title]; ok {
		select {
		case <-e.done:
			c.mu.Unlock()
			metrics.CacheFetchesTotal.WithLabelValues("hit").Inc()
		default:
			c.mu.Unlock()
			metrics.CacheFetchesTotal.WithLabelValues("join").Inc()
			<-e.done
		}
		rows, _ := e.rows.([]T)
		return rows
	}

	e := &entry{done: make(chan struct{})}
	c.entries[title] = e
	c.mu.Unlock()
	metrics.CacheFetchesTotal.WithLabelValues("miss").Inc()

	e.rows = fn(ctx)
	close(e.done)

	rows, _ := e.rows.([]T)
	return rows
}

// Invalidate marks title's cached result stale; the next Fetch for that
// title issues a new call. Waiters on an in-flight fetch still receive
// the result they joined.
func (c *Cache) Invalidate(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, title)
}

// Clear drops every cached result. Wired into logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}
