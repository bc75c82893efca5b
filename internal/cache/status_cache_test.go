package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allseasons/tiredepot/internal/depot"
)

func testLayout() *depot.Layout {
	return &depot.Layout{
		ProviderID:     "provider-1",
		TotalCapacity:  4,
		AvailableSlots: 4,
		Slots:          map[depot.Coordinate]depot.SlotInfo{},
	}
}

func TestStatusCache(t *testing.T) {
	t.Run("miss on unknown provider", func(t *testing.T) {
		c := NewStatusCache(time.Minute)
		_, found := c.Get("provider-1")
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewStatusCache(time.Minute)
		c.Set("provider-1", testLayout())

		got, found := c.Get("provider-1")
		require.True(t, found)
		assert.Equal(t, 4, got.TotalCapacity)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		c := NewStatusCache(time.Minute)
		now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		c.timeNow = func() time.Time { return now }
		c.Set("provider-1", testLayout())

		now = now.Add(61 * time.Second)
		_, found := c.Get("provider-1")
		assert.False(t, found)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		c := NewStatusCache(time.Minute)
		c.Set("provider-1", testLayout())
		c.Invalidate("provider-1")

		_, found := c.Get("provider-1")
		assert.False(t, found)
	})

	t.Run("caller mutations do not leak into the cache", func(t *testing.T) {
		c := NewStatusCache(time.Minute)
		original := testLayout()
		c.Set("provider-1", original)
		original.TotalCapacity = 99

		got, found := c.Get("provider-1")
		require.True(t, found)
		assert.Equal(t, 4, got.TotalCapacity)

		got.OccupiedSlots = 7
		again, _ := c.Get("provider-1")
		assert.Equal(t, 0, again.OccupiedSlots)
	})

	t.Run("slot map and corridors are detached too", func(t *testing.T) {
		c := NewStatusCache(time.Minute)
		original := testLayout()
		original.Corridors = []depot.Corridor{{Name: "A", Racks: 2, SlotsPerRack: 2, Capacity: 4}}
		c.Set("provider-1", original)

		coord := depot.Coordinate{Corridor: "A", Rack: 1, Slot: 1}
		original.Slots[coord] = depot.SlotInfo{Status: depot.SlotOccupied}
		original.Corridors[0].Racks = 99

		got, found := c.Get("provider-1")
		require.True(t, found)
		assert.Empty(t, got.Slots)
		assert.Equal(t, 2, got.Corridors[0].Racks)

		got.Slots[coord] = depot.SlotInfo{Status: depot.SlotMaintenance}
		again, _ := c.Get("provider-1")
		assert.Empty(t, again.Slots)
	})
}
