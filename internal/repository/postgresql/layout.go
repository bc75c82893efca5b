package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/allseasons/tiredepot/internal/db"
	"github.com/allseasons/tiredepot/internal/repository"
)

type LayoutRepo struct {
	db db.DB
}

func NewLayoutRepo(db db.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// Replace drops any prior layout of the provider and writes the new one in a
// single transaction. Corridor and slot rows cascade with the layout.
func (r *LayoutRepo) Replace(ctx context.Context, layout *repository.DepotLayout, corridors []*repository.DepotCorridor) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, "DELETE FROM depot_layouts WHERE provider_id = $1", layout.ProviderID); err != nil {
		return fmt.Errorf("failed to drop previous layout: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO depot_layouts (
            id, provider_id, total_capacity, occupied_slots, available_slots, occupancy_rate, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, layout.ID, layout.ProviderID, layout.TotalCapacity, layout.OccupiedSlots, layout.AvailableSlots, layout.OccupancyRate, layout.CreatedAt, layout.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert layout: %w", err)
	}

	for _, c := range corridors {
		_, err = tx.Exec(ctx, `
            INSERT INTO depot_corridors (layout_id, position, name, racks, slots_per_rack, capacity)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, c.LayoutID, c.Position, c.Name, c.Racks, c.SlotsPerRack, c.Capacity)
		if err != nil {
			return fmt.Errorf("failed to insert corridor %q: %w", c.Name, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *LayoutRepo) GetByProvider(ctx context.Context, providerID string) (*repository.DepotLayout, error) {
	var layout repository.DepotLayout
	err := r.db.Get(ctx, &layout, "SELECT * FROM depot_layouts WHERE provider_id = $1", providerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &layout, nil
}

func (r *LayoutRepo) GetCorridors(ctx context.Context, layoutID uuid.UUID) ([]*repository.DepotCorridor, error) {
	var corridors []*repository.DepotCorridor
	err := r.db.Select(ctx, &corridors, "SELECT * FROM depot_corridors WHERE layout_id = $1 ORDER BY position", layoutID)
	if err != nil {
		return nil, err
	}
	return corridors, nil
}
