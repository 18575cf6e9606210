package app

import (
	"sync"

	"gitlab.com/foundationdata/widgetboard/pkg/data"
)

// contentKey identifies one rendered widget body.
type contentKey struct {
	kind  string
	w, h  int
	rng   data.Range
	theme string
}

// contentCache keeps rendered widget bodies between frames so that mouse
// motion and key presses do not re-render charts whose data has not
// changed. Entries are valid for a single store version.
type contentCache struct {
	mu       sync.Mutex
	version  uint64
	entries  map[contentKey]string
	rendered int
}

// maxCacheEntries bounds the cache across many resizes of the same widgets.
const maxCacheEntries = 256

func newContentCache() *contentCache {
	return &contentCache{entries: make(map[contentKey]string)}
}

// syncVersion drops every entry when the store has moved on from version.
func (c *contentCache) syncVersion(version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version || len(c.entries) > maxCacheEntries {
		c.version = version
		c.entries = make(map[contentKey]string)
	}
}

func (c *contentCache) get(k contentKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[k]
	return s, ok
}

func (c *contentCache) put(k contentKey, s string) {
	c.mu.Lock()
	c.entries[k] = s
	c.rendered++
	c.mu.Unlock()
}

// renderCount is the number of bodies rendered since the cache was created.
func (c *contentCache) renderCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered
}
