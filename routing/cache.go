package routing

import (
	"fmt"

	"schemroute/geometry"
	"schemroute/pathfinding"
)

// routeKey uniquely identifies a routing request against one obstacle-set
// generation and constraint configuration. The registry generation changes on
// every mutation, so a hit is always exact.
type routeKey struct {
	start, end geometry.Point
	style      pathfinding.Strategy
	avoid      bool
	optimize   bool
	margin     float64
	generation uint64
}

// routeCache memoizes finished results. The engine is single-threaded by
// contract, so the cache takes no locks.
type routeCache struct {
	entries map[routeKey]Result
	maxSize int
	hits    int
	misses  int
}

func newRouteCache(maxSize int) *routeCache {
	return &routeCache{
		entries: make(map[routeKey]Result),
		maxSize: maxSize,
	}
}

func (c *routeCache) get(k routeKey) (Result, bool) {
	r, ok := c.entries[k]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return r, ok
}

func (c *routeCache) put(k routeKey, r Result) {
	if len(c.entries) >= c.maxSize && c.maxSize > 0 {
		// Stale generations dominate once obstacles move; dropping an
		// arbitrary entry is fine at this size.
		for old := range c.entries {
			delete(c.entries, old)
			break
		}
	}
	c.entries[k] = r
}

func (c *routeCache) String() string {
	hitRate := 0.0
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total) * 100
	}
	return fmt.Sprintf("routeCache[size=%d/%d, hits=%d, misses=%d, hitRate=%.1f%%]",
		len(c.entries), c.maxSize, c.hits, c.misses, hitRate)
}
