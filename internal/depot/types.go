package depot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotOccupied    SlotStatus = "occupied"
	SlotReserved    SlotStatus = "reserved"
	SlotMaintenance SlotStatus = "maintenance"
)

func (s SlotStatus) Valid() bool {
	switch s {
	case SlotAvailable, SlotOccupied, SlotReserved, SlotMaintenance:
		return true
	}
	return false
}

// Coordinate addresses one physical storage position inside a depot.
type Coordinate struct {
	Corridor string `json:"corridor"`
	Rack     int    `json:"rack"`
	Slot     int    `json:"slot"`
}

// Location renders the human-readable form printed on labels, e.g. "A-R2-S3".
func (c Coordinate) Location() string {
	return fmt.Sprintf("%s-R%d-S%d", c.Corridor, c.Rack, c.Slot)
}

type Corridor struct {
	Name         string `json:"name"`
	Racks        int    `json:"racks"`
	SlotsPerRack int    `json:"slots_per_rack"`
	Capacity     int    `json:"capacity"`
}

type SlotInfo struct {
	Status      SlotStatus `json:"status"`
	CustodyID   *uuid.UUID `json:"custody_id,omitempty"`
	LastUpdated time.Time  `json:"last_updated"`
}

// Layout is the occupancy snapshot for one provider's depot. Slots holds only
// positions that are not in the default available state; an absent coordinate
// means available.
type Layout struct {
	ProviderID     string
	Corridors      []Corridor
	TotalCapacity  int
	OccupiedSlots  int
	AvailableSlots int
	OccupancyRate  float64
	Slots          map[Coordinate]SlotInfo
}

// Contains reports whether the coordinate addresses a real position in the
// layout.
func (l *Layout) Contains(c Coordinate) bool {
	for _, cor := range l.Corridors {
		if cor.Name != c.Corridor {
			continue
		}
		return c.Rack >= 1 && c.Rack <= cor.Racks && c.Slot >= 1 && c.Slot <= cor.SlotsPerRack
	}
	return false
}

func (l *Layout) slotStatus(c Coordinate) SlotStatus {
	if info, ok := l.Slots[c]; ok {
		return info.Status
	}
	return SlotAvailable
}
