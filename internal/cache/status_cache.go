package cache

import (
	"sync"
	"time"

	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/metrics"
)

// StatusCache keeps per-provider depot status snapshots for dashboards.
// Entries may lag live occupancy by up to the TTL; allocation decisions never
// read from here.
type StatusCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	timeNow func() time.Time
}

type entry struct {
	layout   *depot.Layout
	storedAt time.Time
}

func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		timeNow: time.Now,
	}
}

func (c *StatusCache) Get(providerID string) (*depot.Layout, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, found := c.entries[providerID]
	if !found || c.timeNow().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return copyLayout(e.layout), true
}

func (c *StatusCache) Set(providerID string, layout *depot.Layout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[providerID] = entry{layout: copyLayout(layout), storedAt: c.timeNow()}
	metrics.StatusCacheItems.Set(float64(len(c.entries)))
}

// copyLayout detaches the snapshot from the caller. Corridors and Slots are
// copied too so a mutation on either side never reaches the cached entry.
func copyLayout(layout *depot.Layout) *depot.Layout {
	layoutCopy := *layout
	layoutCopy.Corridors = make([]depot.Corridor, len(layout.Corridors))
	copy(layoutCopy.Corridors, layout.Corridors)
	if layout.Slots != nil {
		layoutCopy.Slots = make(map[depot.Coordinate]depot.SlotInfo, len(layout.Slots))
		for coord, info := range layout.Slots {
			layoutCopy.Slots[coord] = info
		}
	}
	return &layoutCopy
}

func (c *StatusCache) Invalidate(providerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.entries[providerID]; found {
		delete(c.entries, providerID)
		metrics.StatusCacheItems.Set(float64(len(c.entries)))
	}
}
