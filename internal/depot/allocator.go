package depot

import (
	"github.com/allseasons/tiredepot/internal/apperrors"
)

// Allocator picks the next free slot in a depot. The scan order is fixed:
// corridors in declared order, then racks 1..N, then slots 1..M. First-fit is
// intentional so that placements are reproducible and sets taken in on the
// same day cluster together.
type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

func (a *Allocator) FindAvailable(layout *Layout) (Coordinate, error) {
	for _, corridor := range layout.Corridors {
		for rack := 1; rack <= corridor.Racks; rack++ {
			for slot := 1; slot <= corridor.SlotsPerRack; slot++ {
				coord := Coordinate{Corridor: corridor.Name, Rack: rack, Slot: slot}
				if layout.slotStatus(coord) == SlotAvailable {
					return coord, nil
				}
			}
		}
	}
	return Coordinate{}, apperrors.Capacityf("no free slot in depot of provider %s", layout.ProviderID)
}
