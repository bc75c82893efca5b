//go:generate mockgen -source ./registry.go -destination=./mocks/registry.go -package=mock_depot
package depot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/allseasons/tiredepot/internal/apperrors"
	"github.com/allseasons/tiredepot/internal/metrics"
	"github.com/allseasons/tiredepot/internal/repository"
)

type LayoutRepository interface {
	Replace(ctx context.Context, layout *repository.DepotLayout, corridors []*repository.DepotCorridor) error
	GetByProvider(ctx context.Context, providerID string) (*repository.DepotLayout, error)
	GetCorridors(ctx context.Context, layoutID uuid.UUID) ([]*repository.DepotCorridor, error)
}

type SlotRepository interface {
	GetStates(ctx context.Context, layoutID uuid.UUID) ([]*repository.SlotState, error)
	GetState(ctx context.Context, layoutID uuid.UUID, coord Coordinate) (*repository.SlotState, error)
	// Transition flips one slot from one status to another and adjusts the
	// layout counters in the same transaction. The prior status is a
	// condition: if the stored state no longer matches, the call fails with
	// repository.ErrSlotConflict and nothing changes.
	Transition(ctx context.Context, layoutID uuid.UUID, coord Coordinate, from, to SlotStatus, custodyID *uuid.UUID) error
}

// Registry owns the depot layout and live occupancy of every provider. All
// occupancy mutations go through MarkSlot.
type Registry struct {
	layoutRepo LayoutRepository
	slotRepo   SlotRepository
	timeNow    func() time.Time
}

func NewRegistry(layoutRepo LayoutRepository, slotRepo SlotRepository) *Registry {
	return &Registry{
		layoutRepo: layoutRepo,
		slotRepo:   slotRepo,
		timeNow:    func() time.Time { return time.Now().UTC() },
	}
}

// DefineLayout validates the corridor plan and replaces any previous layout of
// the provider wholesale, resetting every slot to available.
func (r *Registry) DefineLayout(ctx context.Context, providerID string, corridors []Corridor) (*Layout, error) {
	if providerID == "" {
		return nil, apperrors.Validationf("provider id is required")
	}
	if len(corridors) == 0 {
		return nil, apperrors.Validationf("layout must declare at least one corridor")
	}

	seen := make(map[string]struct{}, len(corridors))
	total := 0
	built := make([]Corridor, len(corridors))
	for i, c := range corridors {
		if c.Name == "" {
			return nil, apperrors.Validationf("corridor %d has no name", i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, apperrors.Validationf("duplicate corridor name %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Racks < 1 {
			return nil, apperrors.Validationf("corridor %q: racks must be >= 1, got %d", c.Name, c.Racks)
		}
		if c.SlotsPerRack < 1 {
			return nil, apperrors.Validationf("corridor %q: slots per rack must be >= 1, got %d", c.Name, c.SlotsPerRack)
		}
		built[i] = Corridor{
			Name:         c.Name,
			Racks:        c.Racks,
			SlotsPerRack: c.SlotsPerRack,
			Capacity:     c.Racks * c.SlotsPerRack,
		}
		total += built[i].Capacity
	}

	now := r.timeNow()
	layoutID := uuid.New()
	repoLayout := &repository.DepotLayout{
		ID:             layoutID,
		ProviderID:     providerID,
		TotalCapacity:  total,
		OccupiedSlots:  0,
		AvailableSlots: total,
		OccupancyRate:  0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	repoCorridors := make([]*repository.DepotCorridor, len(built))
	for i, c := range built {
		repoCorridors[i] = &repository.DepotCorridor{
			LayoutID:     layoutID,
			Position:     i,
			Name:         c.Name,
			Racks:        c.Racks,
			SlotsPerRack: c.SlotsPerRack,
			Capacity:     c.Capacity,
		}
	}

	if err := r.layoutRepo.Replace(ctx, repoLayout, repoCorridors); err != nil {
		return nil, fmt.Errorf("failed to replace layout for provider %s: %w", providerID, err)
	}

	metrics.DepotOccupancyRate.WithLabelValues(providerID).Set(0)

	return &Layout{
		ProviderID:     providerID,
		Corridors:      built,
		TotalCapacity:  total,
		OccupiedSlots:  0,
		AvailableSlots: total,
		OccupancyRate:  0,
		Slots:          map[Coordinate]SlotInfo{},
	}, nil
}

// Status returns the layout plus a fresh occupancy snapshot.
func (r *Registry) Status(ctx context.Context, providerID string) (*Layout, error) {
	repoLayout, err := r.layoutRepo.GetByProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, apperrors.NotFoundf("no depot layout defined for provider %s", providerID)
		}
		return nil, fmt.Errorf("failed to load layout for provider %s: %w", providerID, err)
	}

	repoCorridors, err := r.layoutRepo.GetCorridors(ctx, repoLayout.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load corridors for provider %s: %w", providerID, err)
	}

	states, err := r.slotRepo.GetStates(ctx, repoLayout.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot states for provider %s: %w", providerID, err)
	}

	corridors := make([]Corridor, len(repoCorridors))
	for i, c := range repoCorridors {
		corridors[i] = Corridor{
			Name:         c.Name,
			Racks:        c.Racks,
			SlotsPerRack: c.SlotsPerRack,
			Capacity:     c.Capacity,
		}
	}

	slots := make(map[Coordinate]SlotInfo, len(states))
	for _, s := range states {
		slots[Coordinate{Corridor: s.Corridor, Rack: s.Rack, Slot: s.Slot}] = SlotInfo{
			Status:      SlotStatus(s.Status),
			CustodyID:   s.CustodyID,
			LastUpdated: s.LastUpdated,
		}
	}

	return &Layout{
		ProviderID:     providerID,
		Corridors:      corridors,
		TotalCapacity:  repoLayout.TotalCapacity,
		OccupiedSlots:  repoLayout.OccupiedSlots,
		AvailableSlots: repoLayout.AvailableSlots,
		OccupancyRate:  repoLayout.OccupancyRate,
		Slots:          slots,
	}, nil
}

// MarkSlot is the only mutator of slot state and occupancy counters. Claiming
// a slot requires it not to be occupied already; freeing one requires it to be
// occupied. A caller losing the race gets a ConflictError and is expected to
// re-read and retry.
func (r *Registry) MarkSlot(ctx context.Context, providerID string, coord Coordinate, newStatus SlotStatus, custodyID *uuid.UUID) error {
	if !newStatus.Valid() {
		return apperrors.Validationf("unknown slot status %q", newStatus)
	}

	repoLayout, err := r.layoutRepo.GetByProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return apperrors.NotFoundf("no depot layout defined for provider %s", providerID)
		}
		return fmt.Errorf("failed to load layout for provider %s: %w", providerID, err)
	}

	repoCorridors, err := r.layoutRepo.GetCorridors(ctx, repoLayout.ID)
	if err != nil {
		return fmt.Errorf("failed to load corridors for provider %s: %w", providerID, err)
	}
	if !coordinateWithin(coord, repoCorridors) {
		return apperrors.Validationf("coordinate %s is outside the depot layout", coord.Location())
	}

	current := SlotAvailable
	state, err := r.slotRepo.GetState(ctx, repoLayout.ID, coord)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("failed to read slot %s: %w", coord.Location(), err)
	}
	if state != nil {
		current = SlotStatus(state.Status)
	}

	if newStatus == SlotOccupied && current == SlotOccupied {
		return apperrors.Conflictf("slot %s is already occupied", coord.Location())
	}
	if newStatus == SlotAvailable && current == SlotAvailable {
		return apperrors.Conflictf("slot %s is not occupied", coord.Location())
	}

	if err := r.slotRepo.Transition(ctx, repoLayout.ID, coord, current, newStatus, custodyID); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return apperrors.Conflictf("slot %s changed concurrently", coord.Location())
		}
		return fmt.Errorf("failed to transition slot %s: %w", coord.Location(), err)
	}

	occupied := repoLayout.OccupiedSlots
	if newStatus == SlotOccupied {
		occupied++
	} else if current == SlotOccupied {
		occupied--
	}
	metrics.DepotOccupancyRate.WithLabelValues(providerID).Set(OccupancyRate(occupied, repoLayout.TotalCapacity))

	return nil
}

// OccupancyRate returns occupied/total as a percentage clamped to [0,100].
func OccupancyRate(occupied, total int) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(occupied) / float64(total) * 100
	return math.Min(100, math.Max(0, rate))
}

func coordinateWithin(coord Coordinate, corridors []*repository.DepotCorridor) bool {
	for _, c := range corridors {
		if c.Name != coord.Corridor {
			continue
		}
		return coord.Rack >= 1 && coord.Rack <= c.Racks && coord.Slot >= 1 && coord.Slot <= c.SlotsPerRack
	}
	return false
}
