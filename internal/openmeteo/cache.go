package openmeteo

import (
	"container/list"
	"context"
	"strings"
	"sync"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, name string) (Place, error)
}

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache keyed by
// the normalized place name. Failed lookups are not cached, so a
// transient failure or a "no results" response can be retried.
type CachedGeocoder struct {
	inner      Geocoder
	maxEntries int

	mu      sync.Mutex
	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

type cacheEntry struct {
	key   string
	place Place
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner Geocoder, maxEntries int) *CachedGeocoder {
	return &CachedGeocoder{
		inner:      inner,
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *CachedGeocoder) Lookup(ctx context.Context, name string) (Place, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if place, ok := c.get(key); ok {
		return place, nil
	}

	place, err := c.inner.Lookup(ctx, name)
	if err != nil {
		return place, err
	}
	c.put(key, place)
	return place, nil
}

func (c *CachedGeocoder) get(key string) (Place, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return Place{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).place, true
}

func (c *CachedGeocoder) put(key string, place Place) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).place = place
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, place: place})
	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}
